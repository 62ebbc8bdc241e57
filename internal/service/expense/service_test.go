package expense

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/expense"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/notification"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/authctx"
)

const (
	testExpenseID = "1b4e28ba-2fa1-11d2-883f-0016d3cca427"
	testAdminID   = "9e107d9d-3721-4b11-8f5a-6c1f4e2a7b01"
)

type stubExpenseRepo struct {
	expense.ExpenseRepository
	byID    map[string]expense.Expense
	updated *expense.Expense
}

func (s *stubExpenseRepo) GetByID(ctx context.Context, id string) (expense.Expense, error) {
	e, ok := s.byID[id]
	if !ok {
		return expense.Expense{}, expense.ErrExpenseNotFound
	}
	return e, nil
}

func (s *stubExpenseRepo) Update(ctx context.Context, e expense.Expense) (expense.Expense, error) {
	s.updated = &e
	return e, nil
}

type stubNotifier struct {
	notification.NotificationService
}

func (stubNotifier) NotifyEmployee(ctx context.Context, employeeID string, typ notification.Type, title, message string) error {
	return nil
}

func (stubNotifier) NotifyAdmins(ctx context.Context, typ notification.Type, title, message string) error {
	return nil
}

func adminContext() context.Context {
	return authctx.WithIdentity(context.Background(), authctx.Identity{
		UserID: testAdminID,
		Role:   "admin",
	})
}

func pendingExpense(kind expense.Kind) expense.Expense {
	return expense.Expense{
		ID:          testExpenseID,
		EmployeeID:  "c56a4180-65aa-42ec-a945-5fd21dec0538",
		Kind:        kind,
		Month:       8,
		Year:        2026,
		TotalAmount: decimal.NewFromInt(5000),
		Status:      expense.StatusPending,
	}
}

func TestDecideRejectsOtherKind(t *testing.T) {
	t.Parallel()

	repo := &stubExpenseRepo{byID: map[string]expense.Expense{
		testExpenseID: pendingExpense(expense.KindAudit),
	}}
	svc := NewExpenseService(repo, stubNotifier{})

	req := expense.DecideExpenseRequest{ID: testExpenseID, Approve: true}
	_, err := svc.Decide(adminContext(), expense.KindBill, req)

	assert.ErrorIs(t, err, expense.ErrExpenseNotFound)
	assert.Nil(t, repo.updated)
}

func TestDecideApprovesMatchingKind(t *testing.T) {
	t.Parallel()

	repo := &stubExpenseRepo{byID: map[string]expense.Expense{
		testExpenseID: pendingExpense(expense.KindBill),
	}}
	svc := NewExpenseService(repo, stubNotifier{})

	req := expense.DecideExpenseRequest{ID: testExpenseID, Approve: true}
	result, err := svc.Decide(adminContext(), expense.KindBill, req)
	require.NoError(t, err)

	assert.Equal(t, expense.StatusApproved, result.Status)
	assert.Equal(t, "5000.00", result.ApprovedAmount.StringFixed(2))
}

func TestRevalidateRejectsOtherKind(t *testing.T) {
	t.Parallel()

	repo := &stubExpenseRepo{byID: map[string]expense.Expense{
		testExpenseID: pendingExpense(expense.KindBill),
	}}
	svc := NewExpenseService(repo, stubNotifier{})

	req := expense.RevalidateExpenseRequest{ID: testExpenseID, AdditionalAmount: "1000"}
	_, err := svc.Revalidate(adminContext(), expense.KindAudit, req)

	assert.ErrorIs(t, err, expense.ErrExpenseNotFound)
	assert.Nil(t, repo.updated)
}
