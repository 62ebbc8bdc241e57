package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/payslip"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/database"
)

type payslipRepositoryImpl struct {
	db *database.DB
}

func NewPayslipRepository(db *database.DB) payslip.PayslipRepository {
	return &payslipRepositoryImpl{db: db}
}

const payslipColumns = `p.id, p.employee_id, p.month, p.year, p.breakdown, p.status,
		p.generated_at, p.paid_at, p.created_at, p.updated_at`

const payslipEmployeeColumns = `, e.full_name, e.employee_code, e.designation, e.bank_name, e.bank_account`

func scanPayslip(row pgx.Row, withEmployee bool) (payslip.Payslip, error) {
	var p payslip.Payslip
	var breakdownJSON []byte

	dest := []any{
		&p.ID,
		&p.EmployeeID,
		&p.Month,
		&p.Year,
		&breakdownJSON,
		&p.Status,
		&p.GeneratedAt,
		&p.PaidAt,
		&p.CreatedAt,
		&p.UpdatedAt,
	}
	if withEmployee {
		dest = append(dest, &p.EmployeeName, &p.EmployeeCode, &p.Designation, &p.BankName, &p.BankAccount)
	}
	if err := row.Scan(dest...); err != nil {
		return payslip.Payslip{}, err
	}
	if err := json.Unmarshal(breakdownJSON, &p.Breakdown); err != nil {
		return payslip.Payslip{}, fmt.Errorf("failed to decode payslip breakdown: %w", err)
	}
	return p, nil
}

func (r *payslipRepositoryImpl) UpsertPreview(ctx context.Context, p payslip.Payslip) (payslip.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	breakdownJSON, err := json.Marshal(p.Breakdown)
	if err != nil {
		return payslip.Payslip{}, fmt.Errorf("failed to encode payslip breakdown: %w", err)
	}

	// The WHERE guard on the conflict arm keeps generated and settled
	// rows immutable; an upsert that matches one updates nothing.
	query := `
		INSERT INTO payslips (employee_id, month, year, breakdown, status)
		VALUES ($1, $2, $3, $4, 'preview')
		ON CONFLICT (employee_id, month, year) DO UPDATE
		SET breakdown = EXCLUDED.breakdown, updated_at = NOW()
		WHERE payslips.status = 'preview'
		RETURNING id, employee_id, month, year, breakdown, status,
			generated_at, paid_at, created_at, updated_at
	`
	stored, err := scanPayslip(q.QueryRow(ctx, query,
		p.EmployeeID,
		p.Month,
		p.Year,
		breakdownJSON,
	), false)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payslip.Payslip{}, payslip.ErrInvalidTransition
		}
		return payslip.Payslip{}, fmt.Errorf("failed to upsert payslip preview: %w", err)
	}
	return stored, nil
}

func (r *payslipRepositoryImpl) GetByID(ctx context.Context, id string) (payslip.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payslipColumns + payslipEmployeeColumns + `
		FROM payslips p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.id = $1
	`
	p, err := scanPayslip(q.QueryRow(ctx, query, id), true)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payslip.Payslip{}, payslip.ErrPayslipNotFound
		}
		return payslip.Payslip{}, fmt.Errorf("failed to get payslip: %w", err)
	}
	return p, nil
}

func (r *payslipRepositoryImpl) GetByPeriod(ctx context.Context, employeeID string, month, year int) (payslip.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payslipColumns + payslipEmployeeColumns + `
		FROM payslips p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.employee_id = $1 AND p.month = $2 AND p.year = $3
	`
	p, err := scanPayslip(q.QueryRow(ctx, query, employeeID, month, year), true)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payslip.Payslip{}, payslip.ErrPayslipNotFound
		}
		return payslip.Payslip{}, fmt.Errorf("failed to get payslip by period: %w", err)
	}
	return p, nil
}

func (r *payslipRepositoryImpl) ListByPeriod(ctx context.Context, month, year int) ([]payslip.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payslipColumns + payslipEmployeeColumns + `
		FROM payslips p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.month = $1 AND p.year = $2
		ORDER BY e.employee_code
	`
	return r.queryPayslips(ctx, q, query, month, year)
}

func (r *payslipRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]payslip.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payslipColumns + payslipEmployeeColumns + `
		FROM payslips p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.employee_id = $1
		ORDER BY p.year DESC, p.month DESC
	`
	return r.queryPayslips(ctx, q, query, employeeID)
}

func (r *payslipRepositoryImpl) SetStatus(ctx context.Context, id string, from, to payslip.Status) (payslip.Payslip, error) {
	if !from.CanTransitionTo(to) {
		return payslip.Payslip{}, payslip.ErrInvalidTransition
	}

	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payslips p
		SET status = $1,
			generated_at = CASE WHEN $1 = 'generated' THEN NOW() ELSE p.generated_at END,
			paid_at = CASE WHEN $1 = 'settled' THEN NOW() ELSE p.paid_at END,
			updated_at = NOW()
		WHERE p.id = $2 AND p.status = $3
		RETURNING ` + payslipColumns

	p, err := scanPayslip(q.QueryRow(ctx, query, to, id, from), false)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payslip.Payslip{}, payslip.ErrInvalidTransition
		}
		return payslip.Payslip{}, fmt.Errorf("failed to set payslip status: %w", err)
	}
	return p, nil
}

func (r *payslipRepositoryImpl) queryPayslips(ctx context.Context, q database.Querier, query string, args ...any) ([]payslip.Payslip, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips: %w", err)
	}
	defer rows.Close()

	var payslips []payslip.Payslip
	for rows.Next() {
		p, err := scanPayslip(rows, true)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payslip: %w", err)
		}
		payslips = append(payslips, p)
	}
	return payslips, rows.Err()
}
