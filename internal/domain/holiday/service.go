package holiday

import "context"

type HolidayService interface {
	Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	Delete(ctx context.Context, id string) error
	ListByYear(ctx context.Context, year int) (ListHolidayResponse, error)
}
