package cashbook

import (
	"context"
	"time"
)

type CashbookRepository interface {
	Create(ctx context.Context, e Entry) (Entry, error)
	List(ctx context.Context, from, to *time.Time) ([]Entry, error)
	Summarize(ctx context.Context, from, to *time.Time) (Summary, error)
}
