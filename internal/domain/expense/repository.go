package expense

import (
	"context"

	"github.com/shopspring/decimal"
)

type ExpenseRepository interface {
	Create(ctx context.Context, e Expense) (Expense, error)
	GetByID(ctx context.Context, id string) (Expense, error)
	ListByEmployee(ctx context.Context, employeeID string, kind *Kind) ([]Expense, error)
	List(ctx context.Context, kind *Kind, status *Status) ([]Expense, error)
	Update(ctx context.Context, e Expense) (Expense, error)

	// SumPayableForMonth totals the approved amounts of approved and
	// revalidation submissions of one kind for a payroll period.
	SumPayableForMonth(ctx context.Context, employeeID string, kind Kind, month, year int) (decimal.Decimal, error)
}
