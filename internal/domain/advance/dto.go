package advance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
)

type CreateAdvanceRequest struct {
	EmployeeID      string `json:"employee_id"`
	Amount          string `json:"amount"`
	RepaymentMonths int    `json:"repayment_months"`
	DeductFromMonth int    `json:"deduct_from_month"`
	DeductFromYear  int    `json:"deduct_from_year"`

	parsedAmount decimal.Decimal
}

func (r *CreateAdvanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "Invalid employee ID"})
	}
	amount, err := decimal.NewFromString(r.Amount)
	if err != nil || !amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "Amount must be a positive number"})
	} else {
		r.parsedAmount = amount
	}
	if r.RepaymentMonths < 1 || r.RepaymentMonths > 36 {
		errs = append(errs, validator.ValidationError{Field: "repayment_months", Message: "Repayment months must be between 1 and 36"})
	}
	if !validator.IsValidMonth(r.DeductFromMonth) {
		errs = append(errs, validator.ValidationError{Field: "deduct_from_month", Message: "Deduct-from month must be between 1 and 12"})
	}
	if !validator.IsValidYear(r.DeductFromYear) {
		errs = append(errs, validator.ValidationError{Field: "deduct_from_year", Message: "Deduct-from year is out of range"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *CreateAdvanceRequest) ParsedAmount() decimal.Decimal {
	return r.parsedAmount
}

type AdvanceResponse struct {
	ID               string          `json:"id"`
	EmployeeID       string          `json:"employee_id"`
	EmployeeName     *string         `json:"employee_name,omitempty"`
	Amount           decimal.Decimal `json:"amount"`
	RepaymentMonths  int             `json:"repayment_months"`
	DeductFromMonth  int             `json:"deduct_from_month"`
	DeductFromYear   int             `json:"deduct_from_year"`
	MonthlyDeduction decimal.Decimal `json:"monthly_deduction"`
	BalanceRemaining decimal.Decimal `json:"balance_remaining"`
	IssuedAt         time.Time       `json:"issued_at"`
	CreatedAt        time.Time       `json:"created_at"`
}

func NewAdvanceResponse(a SalaryAdvance) AdvanceResponse {
	return AdvanceResponse{
		ID:               a.ID,
		EmployeeID:       a.EmployeeID,
		EmployeeName:     a.EmployeeName,
		Amount:           a.Amount,
		RepaymentMonths:  a.RepaymentMonths,
		DeductFromMonth:  a.DeductFromMonth,
		DeductFromYear:   a.DeductFromYear,
		MonthlyDeduction: a.MonthlyDeduction,
		BalanceRemaining: a.BalanceRemaining,
		IssuedAt:         a.IssuedAt,
		CreatedAt:        a.CreatedAt,
	}
}

type ListAdvanceResponse struct {
	Advances []AdvanceResponse `json:"advances"`
	Total    int               `json:"total"`
}

func NewListAdvanceResponse(advances []SalaryAdvance) ListAdvanceResponse {
	out := make([]AdvanceResponse, 0, len(advances))
	for _, a := range advances {
		out = append(out, NewAdvanceResponse(a))
	}
	return ListAdvanceResponse{Advances: out, Total: len(out)}
}
