package expense

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind separates travel/conveyance bills from audit expense claims. Both
// run the same approval state machine but feed different payslip lines
// and are never merged.
type Kind string

const (
	KindBill  Kind = "bill"
	KindAudit Kind = "audit"
)

type Status string

const (
	StatusPending      Status = "pending"
	StatusApproved     Status = "approved"
	StatusRevalidation Status = "revalidation"
	StatusRejected     Status = "rejected"
)

// Item is one line of a submission, stored as JSONB.
type Item struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

type Expense struct {
	ID               string
	EmployeeID       string
	Kind             Kind
	Month            int
	Year             int
	Items            []Item
	TotalAmount      decimal.Decimal
	Status           Status
	ApprovedAmount   decimal.Decimal
	RemainingBalance decimal.Decimal
	DecidedBy        *string
	DecidedAt        *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Joined fields
	EmployeeName *string
}

// Approve settles a pending submission. A partial amount leaves a
// remaining balance; with allowRevalidation the remainder stays
// re-enterable through Revalidate, otherwise it is informational only.
func (e *Expense) Approve(amount decimal.Decimal, allowRevalidation bool) error {
	if e.Status != StatusPending {
		return ErrAlreadyProcessed
	}
	if amount.IsNegative() || amount.GreaterThan(e.TotalAmount) {
		return ErrInvalidApprovalAmount
	}

	e.ApprovedAmount = amount
	e.RemainingBalance = e.TotalAmount.Sub(amount)

	if e.RemainingBalance.IsZero() || !allowRevalidation {
		e.Status = StatusApproved
	} else {
		e.Status = StatusRevalidation
	}
	return nil
}

// Reject closes a pending submission with nothing approved.
func (e *Expense) Reject() error {
	if e.Status != StatusPending {
		return ErrAlreadyProcessed
	}
	e.Status = StatusRejected
	e.ApprovedAmount = decimal.Zero
	e.RemainingBalance = decimal.Zero
	return nil
}

// Revalidate approves an additional slice of the remaining balance. The
// submission returns to approved only once the balance reaches zero;
// otherwise it stays open for further rounds.
func (e *Expense) Revalidate(additional decimal.Decimal) error {
	if e.Status != StatusRevalidation {
		return ErrNotInRevalidation
	}
	if !additional.IsPositive() || additional.GreaterThan(e.RemainingBalance) {
		return ErrInvalidApprovalAmount
	}

	e.ApprovedAmount = e.ApprovedAmount.Add(additional)
	e.RemainingBalance = e.RemainingBalance.Sub(additional)
	if e.RemainingBalance.IsZero() {
		e.Status = StatusApproved
	}
	return nil
}

// PayableAmount is the portion that counts toward the payslip: the
// already-approved amount of approved or revalidation submissions.
// Pending remainder never counts.
func (e Expense) PayableAmount() decimal.Decimal {
	switch e.Status {
	case StatusApproved, StatusRevalidation:
		return e.ApprovedAmount
	}
	return decimal.Zero
}
