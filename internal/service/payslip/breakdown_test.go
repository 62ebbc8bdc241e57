package payslip

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComponentsSumToBaseSalary(t *testing.T) {
	t.Parallel()

	// Salaries chosen so that 60% and 24% round in different directions.
	for _, salary := range []string{"50000", "33333", "41667.55", "1", "99999.99"} {
		in := BreakdownInput{BaseSalary: money(salary), Month: 1, Year: 2025}
		b := ComputeBreakdown(in)

		sum := b.Basic.Add(b.HRA).Add(b.SpecialAllowance)
		assert.True(t, sum.Equal(b.BaseSalary), "salary %s: %s + %s + %s = %s",
			salary, b.Basic, b.HRA, b.SpecialAllowance, sum)
	}
}

func TestDailyRateTracksCalendar(t *testing.T) {
	t.Parallel()
	salary := money("50000")

	feb := ComputeBreakdown(BreakdownInput{BaseSalary: salary, Month: 2, Year: 2025})
	assert.Equal(t, 28, feb.DaysInMonth)
	assert.True(t, feb.DailyRate.Equal(money("1785.71")), "got %s", feb.DailyRate)

	leap := ComputeBreakdown(BreakdownInput{BaseSalary: salary, Month: 2, Year: 2024})
	assert.Equal(t, 29, leap.DaysInMonth)
	assert.True(t, leap.DailyRate.Equal(money("1724.14")), "got %s", leap.DailyRate)

	dec := ComputeBreakdown(BreakdownInput{BaseSalary: salary, Month: 12, Year: 2025})
	assert.Equal(t, 31, dec.DaysInMonth)
	assert.True(t, dec.DailyRate.Equal(money("1612.90")), "got %s", dec.DailyRate)
}

func TestAttendanceAdjustment(t *testing.T) {
	t.Parallel()

	in := BreakdownInput{
		BaseSalary: money("50000"),
		Month:      12,
		Year:       2025,
		FullDays:   20,
		HalfDays:   3,
		AbsentDays: 2,
	}
	b := ComputeBreakdown(in)

	// (3*0.5 + 2) * 1612.90 = 3.5 * 1612.90 = 5645.15, negated
	assert.True(t, b.AttendanceAdjustment.Equal(money("-5645.15")), "got %s", b.AttendanceAdjustment)
}

func TestPerfectAttendanceHasNoAdjustment(t *testing.T) {
	t.Parallel()

	in := BreakdownInput{
		BaseSalary: money("50000"),
		Month:      6,
		Year:       2025,
		FullDays:   22,
		LeaveDays:  4,
	}
	b := ComputeBreakdown(in)

	assert.True(t, b.AttendanceAdjustment.IsZero())
	assert.True(t, b.NetPayable.Equal(b.BaseSalary), "got %s", b.NetPayable)
}

func TestNetPayable(t *testing.T) {
	t.Parallel()

	in := BreakdownInput{
		BaseSalary:       money("50000"),
		Month:            12,
		Year:             2025,
		FullDays:         24,
		HalfDays:         2,
		AbsentDays:       1,
		Conveyance:       money("2500"),
		ExtraConveyance:  money("1200"),
		AuditExpenses:    money("800"),
		AdvanceDeduction: money("5000"),
	}
	b := ComputeBreakdown(in)

	// gross = 50000 + 2500 + 1200 + 800 = 54500
	assert.True(t, b.GrossEarnings.Equal(money("54500")), "got %s", b.GrossEarnings)

	// adjustment = -(2*0.5 + 1) * 1612.90 = -3225.80
	assert.True(t, b.AttendanceAdjustment.Equal(money("-3225.80")), "got %s", b.AttendanceAdjustment)

	// net = 54500 - 3225.80 - 5000 = 46274.20
	assert.True(t, b.NetPayable.Equal(money("46274.20")), "got %s", b.NetPayable)
	assert.True(t, b.TotalDeductions.Equal(money("5000")))
}

func TestComputeBreakdownIsDeterministic(t *testing.T) {
	t.Parallel()

	in := BreakdownInput{
		BaseSalary:       money("37450.75"),
		Month:            2,
		Year:             2025,
		FullDays:         18,
		HalfDays:         4,
		AbsentDays:       2,
		Conveyance:       money("1900"),
		AdvanceDeduction: money("1500"),
	}
	first := ComputeBreakdown(in)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ComputeBreakdown(in))
	}
}
