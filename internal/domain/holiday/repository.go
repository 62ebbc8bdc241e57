package holiday

import (
	"context"
	"time"
)

type HolidayRepository interface {
	Create(ctx context.Context, h Holiday) (Holiday, error)
	Delete(ctx context.Context, id string) error
	ListByYear(ctx context.Context, year int) ([]Holiday, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]Holiday, error)
	ExistsOn(ctx context.Context, date time.Time) (bool, error)
}
