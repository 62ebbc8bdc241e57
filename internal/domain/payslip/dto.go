package payslip

import (
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
)

type PeriodRequest struct {
	EmployeeID string `json:"employee_id"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`
}

func (r PeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "Invalid employee ID"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "Month must be between 1 and 12"})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "Year is out of range"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BulkPeriodRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r BulkPeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "Month must be between 1 and 12"})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "Year is out of range"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayslipResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName *string         `json:"employee_name,omitempty"`
	EmployeeCode *string         `json:"employee_code,omitempty"`
	Designation  *string         `json:"designation,omitempty"`
	Month        int             `json:"month"`
	Year         int             `json:"year"`
	Breakdown    SalaryBreakdown `json:"breakdown"`
	Status       Status          `json:"status"`
	GeneratedAt  *time.Time      `json:"generated_at,omitempty"`
	PaidAt       *time.Time      `json:"paid_at,omitempty"`
}

func NewPayslipResponse(p Payslip) PayslipResponse {
	return PayslipResponse{
		ID:           p.ID,
		EmployeeID:   p.EmployeeID,
		EmployeeName: p.EmployeeName,
		EmployeeCode: p.EmployeeCode,
		Designation:  p.Designation,
		Month:        p.Month,
		Year:         p.Year,
		Breakdown:    p.Breakdown,
		Status:       p.Status,
		GeneratedAt:  p.GeneratedAt,
		PaidAt:       p.PaidAt,
	}
}

type ListPayslipResponse struct {
	Payslips []PayslipResponse `json:"payslips"`
	Total    int               `json:"total"`
}

func NewListPayslipResponse(payslips []Payslip) ListPayslipResponse {
	out := make([]PayslipResponse, 0, len(payslips))
	for _, p := range payslips {
		out = append(out, NewPayslipResponse(p))
	}
	return ListPayslipResponse{Payslips: out, Total: len(out)}
}
