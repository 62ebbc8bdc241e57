package expense

import "context"

// ExpenseService defines business logic for bill and audit expense
// submissions.
type ExpenseService interface {
	Create(ctx context.Context, req CreateExpenseRequest) (ExpenseResponse, error)
	GetMyExpenses(ctx context.Context, kind *Kind) (ListExpenseResponse, error)
	List(ctx context.Context, kind *Kind, status *Status) (ListExpenseResponse, error)
	Decide(ctx context.Context, kind Kind, req DecideExpenseRequest) (ExpenseResponse, error)
	Revalidate(ctx context.Context, kind Kind, req RevalidateExpenseRequest) (ExpenseResponse, error)
}
