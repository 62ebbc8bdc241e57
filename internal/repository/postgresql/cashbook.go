package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/cashbook"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/database"
)

type cashbookRepositoryImpl struct {
	db *database.DB
}

func NewCashbookRepository(db *database.DB) cashbook.CashbookRepository {
	return &cashbookRepositoryImpl{db: db}
}

func scanEntry(row pgx.Row) (cashbook.Entry, error) {
	var e cashbook.Entry
	err := row.Scan(
		&e.ID,
		&e.Type,
		&e.Amount,
		&e.Description,
		&e.Reference,
		&e.EntryDate,
		&e.CreatedBy,
		&e.CreatedAt,
	)
	return e, err
}

func (r *cashbookRepositoryImpl) Create(ctx context.Context, e cashbook.Entry) (cashbook.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO cashbook_entries (entry_type, amount, description, reference, entry_date, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, entry_type, amount, description, reference, entry_date, created_by, created_at
	`
	created, err := scanEntry(q.QueryRow(ctx, query,
		e.Type,
		e.Amount,
		e.Description,
		e.Reference,
		e.EntryDate,
		e.CreatedBy,
	))
	if err != nil {
		return cashbook.Entry{}, fmt.Errorf("failed to create cashbook entry: %w", err)
	}
	return created, nil
}

func (r *cashbookRepositoryImpl) List(ctx context.Context, from, to *time.Time) ([]cashbook.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, entry_type, amount, description, reference, entry_date, created_by, created_at
		FROM cashbook_entries
		WHERE ($1::date IS NULL OR entry_date >= $1)
			AND ($2::date IS NULL OR entry_date <= $2)
		ORDER BY entry_date DESC, created_at DESC
	`
	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list cashbook entries: %w", err)
	}
	defer rows.Close()

	var entries []cashbook.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cashbook entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *cashbookRepositoryImpl) Summarize(ctx context.Context, from, to *time.Time) (cashbook.Summary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE entry_type = 'credit'), 0),
			COALESCE(SUM(amount) FILTER (WHERE entry_type = 'debit'), 0)
		FROM cashbook_entries
		WHERE ($1::date IS NULL OR entry_date >= $1)
			AND ($2::date IS NULL OR entry_date <= $2)
	`
	var s cashbook.Summary
	if err := q.QueryRow(ctx, query, from, to).Scan(&s.TotalCredit, &s.TotalDebit); err != nil {
		return cashbook.Summary{}, fmt.Errorf("failed to summarize cashbook: %w", err)
	}
	s.Balance = s.TotalCredit.Sub(s.TotalDebit)
	return s, nil
}
