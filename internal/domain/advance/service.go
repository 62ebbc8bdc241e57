package advance

import "context"

type AdvanceService interface {
	Create(ctx context.Context, req CreateAdvanceRequest) (AdvanceResponse, error)
	GetMyAdvances(ctx context.Context) (ListAdvanceResponse, error)
	List(ctx context.Context, outstandingOnly bool) (ListAdvanceResponse, error)
}
