package holiday

import (
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
)

type CreateHolidayRequest struct {
	Name string `json:"name"`
	Date string `json:"date"`

	parsedDate time.Time
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "Name is required"})
	}
	if date, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
	} else {
		r.parsedDate = date
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *CreateHolidayRequest) ParsedDate() time.Time {
	return r.parsedDate
}

type HolidayResponse struct {
	ID   string    `json:"id"`
	Name string    `json:"name"`
	Date time.Time `json:"date"`
}

func NewHolidayResponse(h Holiday) HolidayResponse {
	return HolidayResponse{ID: h.ID, Name: h.Name, Date: h.Date}
}

type ListHolidayResponse struct {
	Holidays []HolidayResponse `json:"holidays"`
	Total    int               `json:"total"`
}

func NewListHolidayResponse(holidays []Holiday) ListHolidayResponse {
	out := make([]HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		out = append(out, NewHolidayResponse(h))
	}
	return ListHolidayResponse{Holidays: out, Total: len(out)}
}
