package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/advance"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/database"
)

type advanceRepositoryImpl struct {
	db *database.DB
}

func NewAdvanceRepository(db *database.DB) advance.AdvanceRepository {
	return &advanceRepositoryImpl{db: db}
}

const advanceColumns = `s.id, s.employee_id, s.amount, s.repayment_months, s.deduct_from_month,
		s.deduct_from_year, s.monthly_deduction, s.balance_remaining, s.is_deducted,
		s.issued_at, s.created_at, s.updated_at`

func scanAdvance(row pgx.Row, withEmployee bool) (advance.SalaryAdvance, error) {
	var a advance.SalaryAdvance
	dest := []any{
		&a.ID,
		&a.EmployeeID,
		&a.Amount,
		&a.RepaymentMonths,
		&a.DeductFromMonth,
		&a.DeductFromYear,
		&a.MonthlyDeduction,
		&a.BalanceRemaining,
		&a.IsDeducted,
		&a.IssuedAt,
		&a.CreatedAt,
		&a.UpdatedAt,
	}
	if withEmployee {
		dest = append(dest, &a.EmployeeName)
	}
	err := row.Scan(dest...)
	return a, err
}

func (r *advanceRepositoryImpl) Create(ctx context.Context, a advance.SalaryAdvance) (advance.SalaryAdvance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_advances (
			employee_id, amount, repayment_months, deduct_from_month, deduct_from_year,
			monthly_deduction, balance_remaining, is_deducted, issued_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, employee_id, amount, repayment_months, deduct_from_month,
			deduct_from_year, monthly_deduction, balance_remaining, is_deducted,
			issued_at, created_at, updated_at
	`
	created, err := scanAdvance(q.QueryRow(ctx, query,
		a.EmployeeID,
		a.Amount,
		a.RepaymentMonths,
		a.DeductFromMonth,
		a.DeductFromYear,
		a.MonthlyDeduction,
		a.BalanceRemaining,
		a.IsDeducted,
		a.IssuedAt,
	), false)
	if err != nil {
		return advance.SalaryAdvance{}, fmt.Errorf("failed to create salary advance: %w", err)
	}
	return created, nil
}

func (r *advanceRepositoryImpl) GetByID(ctx context.Context, id string) (advance.SalaryAdvance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + advanceColumns + `, e.full_name
		FROM salary_advances s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.id = $1
	`
	a, err := scanAdvance(q.QueryRow(ctx, query, id), true)
	if err != nil {
		if err == pgx.ErrNoRows {
			return advance.SalaryAdvance{}, advance.ErrAdvanceNotFound
		}
		return advance.SalaryAdvance{}, fmt.Errorf("failed to get salary advance: %w", err)
	}
	return a, nil
}

func (r *advanceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]advance.SalaryAdvance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + advanceColumns + `, e.full_name
		FROM salary_advances s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.employee_id = $1
		ORDER BY s.issued_at DESC
	`
	return r.queryAdvances(ctx, q, query, employeeID)
}

func (r *advanceRepositoryImpl) List(ctx context.Context, outstandingOnly bool) ([]advance.SalaryAdvance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + advanceColumns + `, e.full_name
		FROM salary_advances s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.balance_remaining > 0 OR NOT $1
		ORDER BY s.issued_at DESC
	`
	return r.queryAdvances(ctx, q, query, outstandingOnly)
}

func (r *advanceRepositoryImpl) ListOutstanding(ctx context.Context, employeeID string) ([]advance.SalaryAdvance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + advanceColumns + `, e.full_name
		FROM salary_advances s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.employee_id = $1 AND s.balance_remaining > 0
		ORDER BY s.issued_at
	`
	return r.queryAdvances(ctx, q, query, employeeID)
}

func (r *advanceRepositoryImpl) CommitDeduction(ctx context.Context, id string, amount decimal.Decimal) (bool, error) {
	q := GetQuerier(ctx, r.db)

	// The balance guard makes the deduction at-most-once even when two
	// payroll runs race across processes.
	query := `
		UPDATE salary_advances
		SET balance_remaining = balance_remaining - $1,
			is_deducted = (balance_remaining - $1 <= 0),
			updated_at = NOW()
		WHERE id = $2 AND balance_remaining >= $1
	`
	tag, err := q.Exec(ctx, query, amount, id)
	if err != nil {
		return false, fmt.Errorf("failed to commit advance deduction: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *advanceRepositoryImpl) queryAdvances(ctx context.Context, q database.Querier, query string, args ...any) ([]advance.SalaryAdvance, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary advances: %w", err)
	}
	defer rows.Close()

	var advances []advance.SalaryAdvance
	for rows.Next() {
		a, err := scanAdvance(rows, true)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary advance: %w", err)
		}
		advances = append(advances, a)
	}
	return advances, rows.Err()
}
