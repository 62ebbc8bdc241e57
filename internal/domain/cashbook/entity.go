package cashbook

import (
	"time"

	"github.com/shopspring/decimal"
)

type EntryType string

const (
	EntryCredit EntryType = "credit"
	EntryDebit  EntryType = "debit"
)

// Entry is one line of the company cash ledger. Payroll settlement
// posts debit entries automatically with a payslip reference; admins
// can record arbitrary entries by hand.
type Entry struct {
	ID          string
	Type        EntryType
	Amount      decimal.Decimal
	Description string
	Reference   *string
	EntryDate   time.Time
	CreatedBy   string
	CreatedAt   time.Time
}

type Summary struct {
	TotalCredit decimal.Decimal `json:"total_credit"`
	TotalDebit  decimal.Decimal `json:"total_debit"`
	Balance     decimal.Decimal `json:"balance"`
}
