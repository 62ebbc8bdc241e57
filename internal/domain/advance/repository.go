package advance

import (
	"context"

	"github.com/shopspring/decimal"
)

type AdvanceRepository interface {
	Create(ctx context.Context, a SalaryAdvance) (SalaryAdvance, error)
	GetByID(ctx context.Context, id string) (SalaryAdvance, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]SalaryAdvance, error)
	List(ctx context.Context, outstandingOnly bool) ([]SalaryAdvance, error)

	// ListOutstanding returns advances with a positive balance for one
	// employee, oldest first.
	ListOutstanding(ctx context.Context, employeeID string) ([]SalaryAdvance, error)

	// CommitDeduction reduces the balance by amount if and only if the
	// advance still owes at least that much. Returns false when another
	// payroll run already claimed the installment.
	CommitDeduction(ctx context.Context, id string, amount decimal.Decimal) (bool, error)
}
