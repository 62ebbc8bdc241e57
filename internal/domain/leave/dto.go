package leave

import (
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
)

type CreateLeaveRequest struct {
	FromDate string  `json:"from_date"` // YYYY-MM-DD
	ToDate   string  `json:"to_date"`   // YYYY-MM-DD
	Reason   *string `json:"reason"`

	// Parsed during Validate
	From time.Time `json:"-"`
	To   time.Time `json:"-"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	from, okFrom := validator.IsValidDate(r.FromDate)
	if !okFrom {
		errs = append(errs, validator.ValidationError{Field: "from_date", Message: "from_date must be YYYY-MM-DD"})
	}
	to, okTo := validator.IsValidDate(r.ToDate)
	if !okTo {
		errs = append(errs, validator.ValidationError{Field: "to_date", Message: "to_date must be YYYY-MM-DD"})
	}
	if okFrom && okTo && to.Before(from) {
		errs = append(errs, validator.ValidationError{Field: "to_date", Message: "to_date must not be before from_date"})
	}

	if len(errs) > 0 {
		return errs
	}

	r.From = from
	r.To = to
	return nil
}

// DayCount is the inclusive number of calendar days requested.
func (r *CreateLeaveRequest) DayCount() int {
	return int(r.To.Sub(r.From).Hours()/24) + 1
}

type DecideLeaveRequest struct {
	ID      string `json:"-"`
	Approve bool   `json:"approve"`
}

type LeaveResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	FromDate     string  `json:"from_date"`
	ToDate       string  `json:"to_date"`
	Days         int     `json:"days"`
	Reason       *string `json:"reason,omitempty"`
	Status       string  `json:"status"`
}

type ListLeaveResponse struct {
	Data []LeaveResponse `json:"data"`
}
