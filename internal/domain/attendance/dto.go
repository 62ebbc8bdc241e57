package attendance

import (
	"github.com/shopspring/decimal"

	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
)

type PunchInRequest struct {
	QRToken string `json:"qr_token"`
}

func (r *PunchInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.QRToken) {
		errs = append(errs, validator.ValidationError{Field: "qr_token", Message: "qr_token is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAttendanceRequest struct {
	ID               string           `json:"-"`
	Status           *string          `json:"status"`
	ConveyanceAmount *decimal.Decimal `json:"conveyance_amount"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != nil && !Status(*r.Status).Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be full_day, half_day, absent or leave"})
	}
	if r.ConveyanceAmount != nil && r.ConveyanceAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "conveyance_amount", Message: "conveyance_amount must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID               string          `json:"id"`
	EmployeeID       string          `json:"employee_id"`
	EmployeeName     *string         `json:"employee_name,omitempty"`
	Date             string          `json:"date"`
	PunchIn          *string         `json:"punch_in,omitempty"`
	PunchOut         *string         `json:"punch_out,omitempty"`
	WorkMinutes      *int            `json:"work_minutes,omitempty"`
	Status           string          `json:"status"`
	ShiftName        *string         `json:"shift_name,omitempty"`
	ConveyanceAmount decimal.Decimal `json:"conveyance_amount"`
	DutyAmount       decimal.Decimal `json:"duty_amount"`
}

type MonthFilter struct {
	EmployeeID string
	Month      int
	Year       int
}

func (f *MonthFilter) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMonth(f.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be between 1 and 12"})
	}
	if !validator.IsValidYear(f.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "year is out of range"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListAttendanceResponse struct {
	Data []AttendanceResponse `json:"data"`
}
