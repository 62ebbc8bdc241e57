package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/expense"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/database"
)

type expenseRepositoryImpl struct {
	db *database.DB
}

func NewExpenseRepository(db *database.DB) expense.ExpenseRepository {
	return &expenseRepositoryImpl{db: db}
}

const expenseColumns = `x.id, x.employee_id, x.kind, x.month, x.year, x.items, x.total_amount,
		x.status, x.approved_amount, x.remaining_balance, x.decided_by, x.decided_at,
		x.created_at, x.updated_at`

func scanExpense(row pgx.Row, withEmployee bool) (expense.Expense, error) {
	var e expense.Expense
	var itemsJSON []byte

	dest := []any{
		&e.ID,
		&e.EmployeeID,
		&e.Kind,
		&e.Month,
		&e.Year,
		&itemsJSON,
		&e.TotalAmount,
		&e.Status,
		&e.ApprovedAmount,
		&e.RemainingBalance,
		&e.DecidedBy,
		&e.DecidedAt,
		&e.CreatedAt,
		&e.UpdatedAt,
	}
	if withEmployee {
		dest = append(dest, &e.EmployeeName)
	}
	if err := row.Scan(dest...); err != nil {
		return expense.Expense{}, err
	}
	if err := json.Unmarshal(itemsJSON, &e.Items); err != nil {
		return expense.Expense{}, fmt.Errorf("failed to decode expense items: %w", err)
	}
	return e, nil
}

func (r *expenseRepositoryImpl) Create(ctx context.Context, e expense.Expense) (expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	itemsJSON, err := json.Marshal(e.Items)
	if err != nil {
		return expense.Expense{}, fmt.Errorf("failed to encode expense items: %w", err)
	}

	query := `
		INSERT INTO expenses (
			employee_id, kind, month, year, items, total_amount,
			status, approved_amount, remaining_balance
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, employee_id, kind, month, year, items, total_amount,
			status, approved_amount, remaining_balance, decided_by, decided_at,
			created_at, updated_at
	`
	created, err := scanExpense(q.QueryRow(ctx, query,
		e.EmployeeID,
		e.Kind,
		e.Month,
		e.Year,
		itemsJSON,
		e.TotalAmount,
		e.Status,
		e.ApprovedAmount,
		e.RemainingBalance,
	), false)
	if err != nil {
		return expense.Expense{}, fmt.Errorf("failed to create expense: %w", err)
	}
	return created, nil
}

func (r *expenseRepositoryImpl) GetByID(ctx context.Context, id string) (expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + expenseColumns + `, e.full_name
		FROM expenses x
		JOIN employees e ON e.id = x.employee_id
		WHERE x.id = $1
	`
	ex, err := scanExpense(q.QueryRow(ctx, query, id), true)
	if err != nil {
		if err == pgx.ErrNoRows {
			return expense.Expense{}, expense.ErrExpenseNotFound
		}
		return expense.Expense{}, fmt.Errorf("failed to get expense: %w", err)
	}
	return ex, nil
}

func (r *expenseRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, kind *expense.Kind) ([]expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + expenseColumns + `, e.full_name
		FROM expenses x
		JOIN employees e ON e.id = x.employee_id
		WHERE x.employee_id = $1 AND ($2::text IS NULL OR x.kind = $2)
		ORDER BY x.year DESC, x.month DESC, x.created_at DESC
	`
	return r.queryExpenses(ctx, q, query, employeeID, kind)
}

func (r *expenseRepositoryImpl) List(ctx context.Context, kind *expense.Kind, status *expense.Status) ([]expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + expenseColumns + `, e.full_name
		FROM expenses x
		JOIN employees e ON e.id = x.employee_id
		WHERE ($1::text IS NULL OR x.kind = $1) AND ($2::text IS NULL OR x.status = $2)
		ORDER BY x.created_at DESC
	`
	return r.queryExpenses(ctx, q, query, kind, status)
}

func (r *expenseRepositoryImpl) Update(ctx context.Context, e expense.Expense) (expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE expenses x
		SET status = $1, approved_amount = $2, remaining_balance = $3,
			decided_by = $4, decided_at = $5, updated_at = NOW()
		WHERE x.id = $6
		RETURNING ` + expenseColumns

	updated, err := scanExpense(q.QueryRow(ctx, query,
		e.Status,
		e.ApprovedAmount,
		e.RemainingBalance,
		e.DecidedBy,
		e.DecidedAt,
		e.ID,
	), false)
	if err != nil {
		if err == pgx.ErrNoRows {
			return expense.Expense{}, expense.ErrExpenseNotFound
		}
		return expense.Expense{}, fmt.Errorf("failed to update expense: %w", err)
	}
	return updated, nil
}

func (r *expenseRepositoryImpl) SumPayableForMonth(ctx context.Context, employeeID string, kind expense.Kind, month, year int) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(approved_amount), 0)
		FROM expenses
		WHERE employee_id = $1 AND kind = $2 AND month = $3 AND year = $4
			AND status IN ('approved', 'revalidation')
	`
	var total decimal.Decimal
	if err := q.QueryRow(ctx, query, employeeID, kind, month, year).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum expenses: %w", err)
	}
	return total, nil
}

func (r *expenseRepositoryImpl) queryExpenses(ctx context.Context, q database.Querier, query string, args ...any) ([]expense.Expense, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []expense.Expense
	for rows.Next() {
		e, err := scanExpense(rows, true)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}
