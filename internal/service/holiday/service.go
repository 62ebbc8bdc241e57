package holiday

import (
	"context"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/holiday"
)

type holidayService struct {
	holidayRepo holiday.HolidayRepository
}

func NewHolidayService(holidayRepo holiday.HolidayRepository) holiday.HolidayService {
	return &holidayService{holidayRepo: holidayRepo}
}

func (s *holidayService) Create(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	created, err := s.holidayRepo.Create(ctx, holiday.Holiday{
		Name: req.Name,
		Date: req.ParsedDate(),
	})
	if err != nil {
		return holiday.HolidayResponse{}, err
	}
	return holiday.NewHolidayResponse(created), nil
}

func (s *holidayService) Delete(ctx context.Context, id string) error {
	return s.holidayRepo.Delete(ctx, id)
}

func (s *holidayService) ListByYear(ctx context.Context, year int) (holiday.ListHolidayResponse, error) {
	holidays, err := s.holidayRepo.ListByYear(ctx, year)
	if err != nil {
		return holiday.ListHolidayResponse{}, err
	}
	return holiday.NewListHolidayResponse(holidays), nil
}
