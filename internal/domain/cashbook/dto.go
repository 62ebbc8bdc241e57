package cashbook

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
)

type CreateEntryRequest struct {
	Type        string `json:"type"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
	EntryDate   string `json:"entry_date"`

	parsedAmount decimal.Decimal
	parsedDate   time.Time
}

func (r *CreateEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Type, []string{string(EntryCredit), string(EntryDebit)}) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "Type must be credit or debit"})
	}
	amount, err := decimal.NewFromString(r.Amount)
	if err != nil || !amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "Amount must be a positive number"})
	} else {
		r.parsedAmount = amount
	}
	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "Description is required"})
	}
	if date, ok := validator.IsValidDate(r.EntryDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "entry_date", Message: "entry_date must be YYYY-MM-DD"})
	} else {
		r.parsedDate = date
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *CreateEntryRequest) Parsed() (decimal.Decimal, time.Time) {
	return r.parsedAmount, r.parsedDate
}

type EntryResponse struct {
	ID          string          `json:"id"`
	Type        EntryType       `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Reference   *string         `json:"reference,omitempty"`
	EntryDate   time.Time       `json:"entry_date"`
	CreatedAt   time.Time       `json:"created_at"`
}

func NewEntryResponse(e Entry) EntryResponse {
	return EntryResponse{
		ID:          e.ID,
		Type:        e.Type,
		Amount:      e.Amount,
		Description: e.Description,
		Reference:   e.Reference,
		EntryDate:   e.EntryDate,
		CreatedAt:   e.CreatedAt,
	}
}

type ListEntryResponse struct {
	Entries []EntryResponse `json:"entries"`
	Summary Summary         `json:"summary"`
	Total   int             `json:"total"`
}

func NewListEntryResponse(entries []Entry, summary Summary) ListEntryResponse {
	out := make([]EntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, NewEntryResponse(e))
	}
	return ListEntryResponse{Entries: out, Summary: summary, Total: len(out)}
}
