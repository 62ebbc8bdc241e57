package shift

import "context"

// ShiftService manages shift templates and issues the signed QR payloads
// the punch-in flow consumes.
type ShiftService interface {
	Create(ctx context.Context, req CreateShiftRequest) (ShiftResponse, error)
	Get(ctx context.Context, id string) (ShiftResponse, error)
	List(ctx context.Context, activeOnly bool) ([]ShiftResponse, error)
	Update(ctx context.Context, req UpdateShiftRequest) (ShiftResponse, error)
	Delete(ctx context.Context, id string) error
	IssueQRToken(ctx context.Context, id string) (QRTokenResponse, error)
}
