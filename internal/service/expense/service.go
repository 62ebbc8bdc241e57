package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/expense"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/notification"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/authctx"
)

type expenseService struct {
	expenseRepo expense.ExpenseRepository
	notifier    notification.NotificationService
}

func NewExpenseService(expenseRepo expense.ExpenseRepository, notifier notification.NotificationService) expense.ExpenseService {
	return &expenseService{
		expenseRepo: expenseRepo,
		notifier:    notifier,
	}
}

func (s *expenseService) Create(ctx context.Context, req expense.CreateExpenseRequest) (expense.ExpenseResponse, error) {
	if err := req.Validate(); err != nil {
		return expense.ExpenseResponse{}, err
	}

	employeeID, err := authctx.EmployeeID(ctx)
	if err != nil {
		return expense.ExpenseResponse{}, err
	}

	items, total := req.ParsedItems()
	created, err := s.expenseRepo.Create(ctx, expense.Expense{
		EmployeeID:  employeeID,
		Kind:        expense.Kind(req.Kind),
		Month:       req.Month,
		Year:        req.Year,
		Items:       items,
		TotalAmount: total,
		Status:      expense.StatusPending,
	})
	if err != nil {
		return expense.ExpenseResponse{}, err
	}

	_ = s.notifier.NotifyAdmins(ctx, notification.TypeExpenseSubmitted,
		"Expense submitted",
		fmt.Sprintf("A %s claim of %s for %d/%d is awaiting review.",
			created.Kind, created.TotalAmount, created.Month, created.Year))

	return expense.NewExpenseResponse(created), nil
}

func (s *expenseService) GetMyExpenses(ctx context.Context, kind *expense.Kind) (expense.ListExpenseResponse, error) {
	employeeID, err := authctx.EmployeeID(ctx)
	if err != nil {
		return expense.ListExpenseResponse{}, err
	}

	expenses, err := s.expenseRepo.ListByEmployee(ctx, employeeID, kind)
	if err != nil {
		return expense.ListExpenseResponse{}, err
	}
	return expense.NewListExpenseResponse(expenses), nil
}

func (s *expenseService) List(ctx context.Context, kind *expense.Kind, status *expense.Status) (expense.ListExpenseResponse, error) {
	expenses, err := s.expenseRepo.List(ctx, kind, status)
	if err != nil {
		return expense.ListExpenseResponse{}, err
	}
	return expense.NewListExpenseResponse(expenses), nil
}

func (s *expenseService) Decide(ctx context.Context, kind expense.Kind, req expense.DecideExpenseRequest) (expense.ExpenseResponse, error) {
	if err := req.Validate(); err != nil {
		return expense.ExpenseResponse{}, err
	}

	identity, err := authctx.FromContext(ctx)
	if err != nil {
		return expense.ExpenseResponse{}, err
	}

	e, err := s.getForKind(ctx, req.ID, kind)
	if err != nil {
		return expense.ExpenseResponse{}, err
	}

	if req.Approve {
		amount := e.TotalAmount
		if parsed := req.ParsedAmount(); parsed != nil {
			amount = *parsed
		}
		if err := e.Approve(amount, req.AllowRevalidation); err != nil {
			return expense.ExpenseResponse{}, err
		}
	} else {
		if err := e.Reject(); err != nil {
			return expense.ExpenseResponse{}, err
		}
	}

	now := time.Now()
	e.DecidedBy = &identity.UserID
	e.DecidedAt = &now

	updated, err := s.expenseRepo.Update(ctx, e)
	if err != nil {
		return expense.ExpenseResponse{}, err
	}
	updated.Items = e.Items
	updated.EmployeeName = e.EmployeeName

	s.notifyDecision(ctx, updated)
	return expense.NewExpenseResponse(updated), nil
}

func (s *expenseService) Revalidate(ctx context.Context, kind expense.Kind, req expense.RevalidateExpenseRequest) (expense.ExpenseResponse, error) {
	if err := req.Validate(); err != nil {
		return expense.ExpenseResponse{}, err
	}

	e, err := s.getForKind(ctx, req.ID, kind)
	if err != nil {
		return expense.ExpenseResponse{}, err
	}

	if err := e.Revalidate(req.ParsedAmount()); err != nil {
		return expense.ExpenseResponse{}, err
	}

	updated, err := s.expenseRepo.Update(ctx, e)
	if err != nil {
		return expense.ExpenseResponse{}, err
	}
	updated.Items = e.Items
	updated.EmployeeName = e.EmployeeName

	s.notifyDecision(ctx, updated)
	return expense.NewExpenseResponse(updated), nil
}

// getForKind refuses ids that belong to the other submission kind, so
// the bills surface can never act on an audit claim.
func (s *expenseService) getForKind(ctx context.Context, id string, kind expense.Kind) (expense.Expense, error) {
	e, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return expense.Expense{}, err
	}
	if e.Kind != kind {
		return expense.Expense{}, expense.ErrExpenseNotFound
	}
	return e, nil
}

func (s *expenseService) notifyDecision(ctx context.Context, e expense.Expense) {
	_ = s.notifier.NotifyEmployee(ctx, e.EmployeeID, notification.TypeExpenseDecided,
		"Expense updated",
		fmt.Sprintf("Your %s claim for %d/%d is now %s (approved %s of %s).",
			e.Kind, e.Month, e.Year, e.Status, e.ApprovedAmount, e.TotalAmount))
}
