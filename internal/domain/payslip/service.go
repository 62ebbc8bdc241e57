package payslip

import "context"

// PayslipService drives the preview -> generated -> settled lifecycle.
type PayslipService interface {
	// Preview computes (or recomputes) the breakdown without freezing
	// anything. Safe to call repeatedly.
	Preview(ctx context.Context, req PeriodRequest) (PayslipResponse, error)

	// Generate freezes the payslip and commits the advance installment.
	// At most one generation per employee-period can succeed.
	Generate(ctx context.Context, req PeriodRequest) (PayslipResponse, error)

	// Settle marks a generated payslip paid and posts the cashbook
	// debit entry.
	Settle(ctx context.Context, id string) (PayslipResponse, error)

	GenerateAll(ctx context.Context, req BulkPeriodRequest) (ListPayslipResponse, error)
	GetByID(ctx context.Context, id string) (PayslipResponse, error)
	ListByPeriod(ctx context.Context, month, year int) (ListPayslipResponse, error)
	GetMyPayslips(ctx context.Context) (ListPayslipResponse, error)
}
