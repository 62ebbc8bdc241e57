package payslip

import "context"

type PayslipRepository interface {
	// UpsertPreview inserts or replaces the preview row for the
	// employee-period. Fails with ErrInvalidTransition when the stored
	// row is past preview.
	UpsertPreview(ctx context.Context, p Payslip) (Payslip, error)

	GetByID(ctx context.Context, id string) (Payslip, error)
	GetByPeriod(ctx context.Context, employeeID string, month, year int) (Payslip, error)
	ListByPeriod(ctx context.Context, month, year int) ([]Payslip, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Payslip, error)

	// SetStatus advances the lifecycle, stamping generated_at or
	// paid_at as appropriate. The stored status must allow the move.
	SetStatus(ctx context.Context, id string, from, to Status) (Payslip, error)
}
