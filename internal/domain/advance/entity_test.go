package advance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewSalaryAdvance(t *testing.T) {
	t.Parallel()

	a := NewSalaryAdvance("emp-1", decimal.NewFromInt(10000), 3, 10, 2026, time.Now())

	assert.Equal(t, "3333.33", a.MonthlyDeduction.StringFixed(2))
	assert.Equal(t, "10000.00", a.BalanceRemaining.StringFixed(2))
	assert.Equal(t, 10, a.DeductFromMonth)
	assert.Equal(t, 2026, a.DeductFromYear)
	assert.False(t, a.IsDeducted)
}

func TestCoversPeriod(t *testing.T) {
	t.Parallel()

	a := NewSalaryAdvance("emp-1", decimal.NewFromInt(12000), 12, 10, 2026, time.Now())

	tests := []struct {
		name  string
		month int
		year  int
		want  bool
	}{
		{"month before start", 9, 2026, false},
		{"issue month before start", 8, 2026, false},
		{"start month", 10, 2026, true},
		{"month after start", 11, 2026, true},
		{"next year", 1, 2027, true},
		{"previous year same month", 10, 2025, false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, a.CoversPeriod(tt.month, tt.year))
		})
	}
}

func TestDueInstallment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		balance string
		monthly string
		want    string
	}{
		{"full installment", "10000", "3333.33", "3333.33"},
		{"final installment absorbs remainder", "3333.34", "3333.33", "3333.33"},
		{"balance below installment", "1200.50", "3333.33", "1200.50"},
		{"zero balance", "0", "3333.33", "0.00"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a := SalaryAdvance{
				BalanceRemaining: decimal.RequireFromString(tt.balance),
				MonthlyDeduction: decimal.RequireFromString(tt.monthly),
			}
			assert.Equal(t, tt.want, a.DueInstallment().StringFixed(2))
		})
	}
}
