package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/attendance"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `a.id, a.employee_id, a.date, a.punch_in, a.punch_out, a.work_minutes,
		a.status, a.shift_id, a.shift_name, a.shift_type, a.shift_start,
		a.conveyance_amount, a.duty_amount, a.created_at, a.updated_at`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID,
		&a.EmployeeID,
		&a.Date,
		&a.PunchIn,
		&a.PunchOut,
		&a.WorkMinutes,
		&a.Status,
		&a.ShiftID,
		&a.ShiftName,
		&a.ShiftType,
		&a.ShiftStart,
		&a.ConveyanceAmount,
		&a.DutyAmount,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}

func scanAttendanceWithEmployee(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID,
		&a.EmployeeID,
		&a.Date,
		&a.PunchIn,
		&a.PunchOut,
		&a.WorkMinutes,
		&a.Status,
		&a.ShiftID,
		&a.ShiftName,
		&a.ShiftType,
		&a.ShiftStart,
		&a.ConveyanceAmount,
		&a.DutyAmount,
		&a.CreatedAt,
		&a.UpdatedAt,
		&a.EmployeeName,
		&a.EmployeeCode,
	)
	return a, err
}

func (r *attendanceRepositoryImpl) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (
			employee_id, date, punch_in, punch_out, work_minutes, status,
			shift_id, shift_name, shift_type, shift_start,
			conveyance_amount, duty_amount
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, employee_id, date, punch_in, punch_out, work_minutes,
			status, shift_id, shift_name, shift_type, shift_start,
			conveyance_amount, duty_amount, created_at, updated_at
	`

	created, err := scanAttendance(q.QueryRow(ctx, query,
		a.EmployeeID,
		a.Date,
		a.PunchIn,
		a.PunchOut,
		a.WorkMinutes,
		a.Status,
		a.ShiftID,
		a.ShiftName,
		a.ShiftType,
		a.ShiftStart,
		a.ConveyanceAmount,
		a.DutyAmount,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}
	return created, nil
}

func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `, e.full_name, e.employee_code
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.id = $1
	`
	a, err := scanAttendanceWithEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	return a, nil
}

func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.employee_id = $1 AND a.date = $2
	`
	a, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance by date: %w", err)
	}
	return a, nil
}

func (r *attendanceRepositoryImpl) GetOpenSession(ctx context.Context, employeeID string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.employee_id = $1 AND a.punch_in IS NOT NULL AND a.punch_out IS NULL
		ORDER BY a.date DESC
		LIMIT 1
	`
	a, err := scanAttendance(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrNotCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get open session: %w", err)
	}
	return a, nil
}

func (r *attendanceRepositoryImpl) SetPunchOut(ctx context.Context, id string, punchOut time.Time, workMinutes int) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances a
		SET punch_out = $1, work_minutes = $2, updated_at = NOW()
		WHERE a.id = $3 AND a.punch_out IS NULL
		RETURNING ` + attendanceColumns

	a, err := scanAttendance(q.QueryRow(ctx, query, punchOut, workMinutes, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedOut
		}
		return attendance.Attendance{}, fmt.Errorf("failed to set punch out: %w", err)
	}
	return a, nil
}

func (r *attendanceRepositoryImpl) listMonth(ctx context.Context, employeeID *string, month, year int) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `, e.full_name, e.employee_code
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE EXTRACT(MONTH FROM a.date) = $1 AND EXTRACT(YEAR FROM a.date) = $2
			AND ($3::uuid IS NULL OR a.employee_id = $3)
		ORDER BY a.date, e.employee_code
	`
	rows, err := q.Query(ctx, query, month, year, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendanceWithEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, a)
	}
	return records, rows.Err()
}

func (r *attendanceRepositoryImpl) ListByEmployeeMonth(ctx context.Context, employeeID string, month, year int) ([]attendance.Attendance, error) {
	return r.listMonth(ctx, &employeeID, month, year)
}

func (r *attendanceRepositoryImpl) ListByMonth(ctx context.Context, month, year int) ([]attendance.Attendance, error) {
	return r.listMonth(ctx, nil, month, year)
}

func (r *attendanceRepositoryImpl) Update(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances a
		SET status = $1, conveyance_amount = $2, duty_amount = $3, updated_at = NOW()
		WHERE a.id = $4
		RETURNING ` + attendanceColumns

	updated, err := scanAttendance(q.QueryRow(ctx, query,
		a.Status,
		a.ConveyanceAmount,
		a.DutyAmount,
		a.ID,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to update attendance: %w", err)
	}
	return updated, nil
}

func (r *attendanceRepositoryImpl) ListMissingForDate(ctx context.Context, date time.Time) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id
		FROM employees e
		WHERE e.is_active = true AND e.deleted_at IS NULL
			AND NOT EXISTS (
				SELECT 1 FROM attendances a
				WHERE a.employee_id = e.id AND a.date = $1
			)
	`
	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list missing attendance: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan employee id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
