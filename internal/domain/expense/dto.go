package expense

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
)

type ItemRequest struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
}

type CreateExpenseRequest struct {
	Kind  string        `json:"kind"`
	Month int           `json:"month"`
	Year  int           `json:"year"`
	Items []ItemRequest `json:"items"`

	parsedItems []Item
	total       decimal.Decimal
}

func (r *CreateExpenseRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Kind, []string{string(KindBill), string(KindAudit)}) {
		errs = append(errs, validator.ValidationError{Field: "kind", Message: "Kind must be bill or audit"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "Month must be between 1 and 12"})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "Year is out of range"})
	}
	if len(r.Items) == 0 {
		errs = append(errs, validator.ValidationError{Field: "items", Message: "At least one item is required"})
	}

	r.parsedItems = r.parsedItems[:0]
	r.total = decimal.Zero
	for i, it := range r.Items {
		if validator.IsEmpty(it.Description) {
			errs = append(errs, validator.ValidationError{Field: "items", Message: "Item description is required"})
			continue
		}
		amount, err := decimal.NewFromString(it.Amount)
		if err != nil || !amount.IsPositive() {
			errs = append(errs, validator.ValidationError{Field: "items", Message: "Item amount must be a positive number"})
			continue
		}
		r.parsedItems = append(r.parsedItems, Item{Description: r.Items[i].Description, Amount: amount})
		r.total = r.total.Add(amount)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ParsedItems returns the validated item lines. Call Validate first.
func (r *CreateExpenseRequest) ParsedItems() ([]Item, decimal.Decimal) {
	return r.parsedItems, r.total
}

type DecideExpenseRequest struct {
	ID                string `json:"-"`
	Approve           bool   `json:"approve"`
	ApprovedAmount    string `json:"approved_amount,omitempty"`
	AllowRevalidation bool   `json:"allow_revalidation,omitempty"`

	parsedAmount *decimal.Decimal
}

func (r *DecideExpenseRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "Invalid expense ID"})
	}
	if r.Approve && !validator.IsEmpty(r.ApprovedAmount) {
		amount, err := decimal.NewFromString(r.ApprovedAmount)
		if err != nil || amount.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "approved_amount", Message: "Approved amount must be a non-negative number"})
		} else {
			r.parsedAmount = &amount
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ParsedAmount returns the explicit approval amount, or nil when the
// full total should be approved.
func (r *DecideExpenseRequest) ParsedAmount() *decimal.Decimal {
	return r.parsedAmount
}

type RevalidateExpenseRequest struct {
	ID               string `json:"-"`
	AdditionalAmount string `json:"additional_amount"`

	parsedAmount decimal.Decimal
}

func (r *RevalidateExpenseRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "Invalid expense ID"})
	}
	amount, err := decimal.NewFromString(r.AdditionalAmount)
	if err != nil || !amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "additional_amount", Message: "Additional amount must be a positive number"})
	} else {
		r.parsedAmount = amount
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *RevalidateExpenseRequest) ParsedAmount() decimal.Decimal {
	return r.parsedAmount
}

type ExpenseResponse struct {
	ID               string          `json:"id"`
	EmployeeID       string          `json:"employee_id"`
	EmployeeName     *string         `json:"employee_name,omitempty"`
	Kind             Kind            `json:"kind"`
	Month            int             `json:"month"`
	Year             int             `json:"year"`
	Items            []Item          `json:"items"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	Status           Status          `json:"status"`
	ApprovedAmount   decimal.Decimal `json:"approved_amount"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
	DecidedAt        *time.Time      `json:"decided_at,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

func NewExpenseResponse(e Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:               e.ID,
		EmployeeID:       e.EmployeeID,
		EmployeeName:     e.EmployeeName,
		Kind:             e.Kind,
		Month:            e.Month,
		Year:             e.Year,
		Items:            e.Items,
		TotalAmount:      e.TotalAmount,
		Status:           e.Status,
		ApprovedAmount:   e.ApprovedAmount,
		RemainingBalance: e.RemainingBalance,
		DecidedAt:        e.DecidedAt,
		CreatedAt:        e.CreatedAt,
	}
}

type ListExpenseResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Total    int               `json:"total"`
}

func NewListExpenseResponse(expenses []Expense) ListExpenseResponse {
	out := make([]ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, NewExpenseResponse(e))
	}
	return ListExpenseResponse{Expenses: out, Total: len(out)}
}
