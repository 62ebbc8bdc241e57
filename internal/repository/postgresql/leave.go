package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/leave"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/database"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

const leaveColumns = `l.id, l.employee_id, l.from_date, l.to_date, l.days, l.reason,
		l.status, l.decided_by, l.decided_at, l.created_at, l.updated_at`

func scanLeave(row pgx.Row) (leave.LeaveRequest, error) {
	var l leave.LeaveRequest
	err := row.Scan(
		&l.ID,
		&l.EmployeeID,
		&l.FromDate,
		&l.ToDate,
		&l.Days,
		&l.Reason,
		&l.Status,
		&l.DecidedBy,
		&l.DecidedAt,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	return l, err
}

func scanLeaveWithEmployee(row pgx.Row) (leave.LeaveRequest, error) {
	var l leave.LeaveRequest
	err := row.Scan(
		&l.ID,
		&l.EmployeeID,
		&l.FromDate,
		&l.ToDate,
		&l.Days,
		&l.Reason,
		&l.Status,
		&l.DecidedBy,
		&l.DecidedAt,
		&l.CreatedAt,
		&l.UpdatedAt,
		&l.EmployeeName,
	)
	return l, err
}

func (r *leaveRepositoryImpl) Create(ctx context.Context, l leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (employee_id, from_date, to_date, days, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, employee_id, from_date, to_date, days, reason,
			status, decided_by, decided_at, created_at, updated_at
	`
	created, err := scanLeave(q.QueryRow(ctx, query,
		l.EmployeeID,
		l.FromDate,
		l.ToDate,
		l.Days,
		l.Reason,
		l.Status,
	))
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return created, nil
}

func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `, e.full_name
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id
		WHERE l.id = $1
	`
	l, err := scanLeaveWithEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	return l, nil
}

func (r *leaveRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `, e.full_name
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id
		WHERE l.employee_id = $1
		ORDER BY l.from_date DESC
	`
	return r.queryLeaves(ctx, q, query, employeeID)
}

func (r *leaveRepositoryImpl) List(ctx context.Context, status *leave.Status) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `, e.full_name
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id
		WHERE $1::text IS NULL OR l.status = $1
		ORDER BY l.created_at DESC
	`
	return r.queryLeaves(ctx, q, query, status)
}

func (r *leaveRepositoryImpl) UpdateStatus(ctx context.Context, id string, status leave.Status, decidedBy string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests l
		SET status = $1, decided_by = $2, decided_at = NOW(), updated_at = NOW()
		WHERE l.id = $3 AND l.status = 'pending'
		RETURNING ` + leaveColumns

	l, err := scanLeave(q.QueryRow(ctx, query, status, decidedBy, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveAlreadyProcessed
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to update leave status: %w", err)
	}
	return l, nil
}

func (r *leaveRepositoryImpl) ListApprovedOverlapping(ctx context.Context, employeeID string, from, to time.Time) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `, e.full_name
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id
		WHERE l.employee_id = $1 AND l.status = 'approved'
			AND l.from_date <= $3 AND l.to_date >= $2
		ORDER BY l.from_date
	`
	return r.queryLeaves(ctx, q, query, employeeID, from, to)
}

func (r *leaveRepositoryImpl) AnyApprovedCovering(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM leave_requests
			WHERE employee_id = $1 AND status = 'approved'
				AND from_date <= $2 AND to_date >= $2
		)
	`
	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, date).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check leave cover: %w", err)
	}
	return exists, nil
}

func (r *leaveRepositoryImpl) queryLeaves(ctx context.Context, q database.Querier, query string, args ...any) ([]leave.LeaveRequest, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var leaves []leave.LeaveRequest
	for rows.Next() {
		l, err := scanLeaveWithEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		leaves = append(leaves, l)
	}
	return leaves, rows.Err()
}
