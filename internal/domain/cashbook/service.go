package cashbook

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type CashbookService interface {
	CreateEntry(ctx context.Context, req CreateEntryRequest) (EntryResponse, error)
	List(ctx context.Context, from, to *time.Time) (ListEntryResponse, error)

	// PostPayrollDebit records the payout of a settled payslip. The
	// reference ties the entry back to the payslip row.
	PostPayrollDebit(ctx context.Context, amount decimal.Decimal, description, reference, createdBy string) error
}
