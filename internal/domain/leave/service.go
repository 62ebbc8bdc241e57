package leave

import "context"

// LeaveService defines business logic for leave requests.
type LeaveService interface {
	Create(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)
	GetMyLeaves(ctx context.Context) (ListLeaveResponse, error)
	List(ctx context.Context, status *Status) (ListLeaveResponse, error)
	Decide(ctx context.Context, req DecideLeaveRequest) (LeaveResponse, error)
}
