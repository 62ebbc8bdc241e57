package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/shift"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/database"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

const shiftColumns = `id, name, shift_type, start_minutes, end_minutes, grace_minutes,
		half_day_cutoff_minutes, conveyance_amount, duty_amount, is_active,
		created_at, updated_at`

func scanShift(row pgx.Row) (shift.Template, error) {
	var t shift.Template
	err := row.Scan(
		&t.ID,
		&t.Name,
		&t.Definition.Type,
		&t.Definition.Start,
		&t.Definition.End,
		&t.Definition.GraceMinutes,
		&t.Definition.HalfDayCutoffMinutes,
		&t.Definition.ConveyanceAmount,
		&t.Definition.DutyAmount,
		&t.IsActive,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	return t, err
}

func (r *shiftRepositoryImpl) Create(ctx context.Context, t shift.Template) (shift.Template, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (
			name, shift_type, start_minutes, end_minutes, grace_minutes,
			half_day_cutoff_minutes, conveyance_amount, duty_amount, is_active
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + shiftColumns

	created, err := scanShift(q.QueryRow(ctx, query,
		t.Name,
		t.Definition.Type,
		t.Definition.Start,
		t.Definition.End,
		t.Definition.GraceMinutes,
		t.Definition.HalfDayCutoffMinutes,
		t.Definition.ConveyanceAmount,
		t.Definition.DutyAmount,
		t.IsActive,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return shift.Template{}, shift.ErrShiftNameExists
		}
		return shift.Template{}, fmt.Errorf("failed to create shift: %w", err)
	}
	return created, nil
}

func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id string) (shift.Template, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE id = $1`
	t, err := scanShift(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return shift.Template{}, shift.ErrShiftNotFound
		}
		return shift.Template{}, fmt.Errorf("failed to get shift: %w", err)
	}
	return t, nil
}

func (r *shiftRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]shift.Template, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE is_active = true OR NOT $1
		ORDER BY name
	`
	rows, err := q.Query(ctx, query, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Template
	for rows.Next() {
		t, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, t)
	}
	return shifts, rows.Err()
}

func (r *shiftRepositoryImpl) Update(ctx context.Context, t shift.Template) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET name = $1, shift_type = $2, start_minutes = $3, end_minutes = $4,
			grace_minutes = $5, half_day_cutoff_minutes = $6,
			conveyance_amount = $7, duty_amount = $8, is_active = $9, updated_at = NOW()
		WHERE id = $10
	`
	tag, err := q.Exec(ctx, query,
		t.Name,
		t.Definition.Type,
		t.Definition.Start,
		t.Definition.End,
		t.Definition.GraceMinutes,
		t.Definition.HalfDayCutoffMinutes,
		t.Definition.ConveyanceAmount,
		t.Definition.DutyAmount,
		t.IsActive,
		t.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return shift.ErrShiftNameExists
		}
		return fmt.Errorf("failed to update shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}
	return nil
}

func (r *shiftRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	// Attendance rows snapshot the shift, so deactivation is enough.
	query := `UPDATE shifts SET is_active = false, updated_at = NOW() WHERE id = $1`
	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}
	return nil
}
