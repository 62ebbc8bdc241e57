package expense

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBill(total int64) *Expense {
	return &Expense{
		Kind:        KindBill,
		Month:       2,
		Year:        2025,
		TotalAmount: decimal.NewFromInt(total),
		Status:      StatusPending,
	}
}

func TestApproveFullAmount(t *testing.T) {
	t.Parallel()

	b := newBill(10000)
	require.NoError(t, b.Approve(decimal.NewFromInt(10000), false))

	assert.Equal(t, StatusApproved, b.Status)
	assert.True(t, b.RemainingBalance.IsZero())
	assert.True(t, b.PayableAmount().Equal(decimal.NewFromInt(10000)))
}

func TestApprovePartialWithoutRevalidation(t *testing.T) {
	t.Parallel()

	b := newBill(10000)
	require.NoError(t, b.Approve(decimal.NewFromInt(6000), false))

	// Remaining balance is informational only; the bill is closed.
	assert.Equal(t, StatusApproved, b.Status)
	assert.True(t, b.RemainingBalance.Equal(decimal.NewFromInt(4000)))
	assert.ErrorIs(t, b.Revalidate(decimal.NewFromInt(1000)), ErrNotInRevalidation)
}

func TestRevalidationRoundTrip(t *testing.T) {
	t.Parallel()

	b := newBill(10000)
	require.NoError(t, b.Approve(decimal.NewFromInt(6000), true))

	assert.Equal(t, StatusRevalidation, b.Status)
	assert.True(t, b.RemainingBalance.Equal(decimal.NewFromInt(4000)))

	require.NoError(t, b.Revalidate(decimal.NewFromInt(2000)))
	assert.Equal(t, StatusRevalidation, b.Status)
	assert.True(t, b.ApprovedAmount.Equal(decimal.NewFromInt(8000)))
	assert.True(t, b.RemainingBalance.Equal(decimal.NewFromInt(2000)))

	require.NoError(t, b.Revalidate(decimal.NewFromInt(2000)))
	assert.Equal(t, StatusApproved, b.Status)
	assert.True(t, b.ApprovedAmount.Equal(decimal.NewFromInt(10000)))
	assert.True(t, b.RemainingBalance.IsZero())
}

func TestRevalidateRejectsBadAmounts(t *testing.T) {
	t.Parallel()

	b := newBill(10000)
	require.NoError(t, b.Approve(decimal.NewFromInt(6000), true))

	assert.ErrorIs(t, b.Revalidate(decimal.NewFromInt(5000)), ErrInvalidApprovalAmount)
	assert.ErrorIs(t, b.Revalidate(decimal.Zero), ErrInvalidApprovalAmount)
	assert.ErrorIs(t, b.Revalidate(decimal.NewFromInt(-10)), ErrInvalidApprovalAmount)

	// State untouched after failed rounds.
	assert.True(t, b.ApprovedAmount.Equal(decimal.NewFromInt(6000)))
	assert.True(t, b.RemainingBalance.Equal(decimal.NewFromInt(4000)))
}

func TestApproveGuards(t *testing.T) {
	t.Parallel()

	b := newBill(10000)
	assert.ErrorIs(t, b.Approve(decimal.NewFromInt(10001), true), ErrInvalidApprovalAmount)

	require.NoError(t, b.Approve(decimal.NewFromInt(10000), false))
	assert.ErrorIs(t, b.Approve(decimal.NewFromInt(1), false), ErrAlreadyProcessed)
	assert.ErrorIs(t, b.Reject(), ErrAlreadyProcessed)
}

func TestPayableAmountByStatus(t *testing.T) {
	t.Parallel()

	pending := newBill(5000)
	assert.True(t, pending.PayableAmount().IsZero())

	rejected := newBill(5000)
	require.NoError(t, rejected.Reject())
	assert.True(t, rejected.PayableAmount().IsZero())

	open := newBill(5000)
	require.NoError(t, open.Approve(decimal.NewFromInt(3000), true))
	// Only the already-approved portion counts while revalidation is open.
	assert.True(t, open.PayableAmount().Equal(decimal.NewFromInt(3000)))
}
