package payslip

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/payslip"
)

var (
	basicRate = decimal.NewFromFloat(0.60)
	hraRate   = decimal.NewFromFloat(0.24)
	half      = decimal.NewFromFloat(0.5)
)

// BreakdownInput carries the aggregated month of data the computation
// runs on. The counts come from attendance rows, the money totals from
// approved expenses and outstanding advances.
type BreakdownInput struct {
	BaseSalary decimal.Decimal
	Month      int
	Year       int

	FullDays     int
	HalfDays     int
	AbsentDays   int
	LeaveDays    int
	HolidayCount int

	// Conveyance is the sum of the per-day conveyance amounts, which
	// already carry the full/half/absent multiplier.
	Conveyance      decimal.Decimal
	ExtraConveyance decimal.Decimal
	AuditExpenses   decimal.Decimal

	LeaveAdjustment  decimal.Decimal
	AdvanceDeduction decimal.Decimal
}

// DaysInMonth returns the number of calendar days in the given month.
func DaysInMonth(month, year int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ComputeBreakdown derives the full salary breakdown from one month of
// aggregated inputs. It is deterministic: the same input always yields
// the same breakdown, which is what makes preview recomputation safe.
//
// The split is basic 60% and HRA 24%, with the special allowance defined
// as the remainder so the three components always sum exactly to the
// base salary regardless of rounding.
func ComputeBreakdown(in BreakdownInput) payslip.SalaryBreakdown {
	basic := in.BaseSalary.Mul(basicRate).Round(2)
	hra := in.BaseSalary.Mul(hraRate).Round(2)
	special := in.BaseSalary.Sub(basic).Sub(hra)

	daysInMonth := DaysInMonth(in.Month, in.Year)
	dailyRate := in.BaseSalary.Div(decimal.NewFromInt(int64(daysInMonth))).Round(2)

	// Half days dock half a day's pay, absents a full day. Leave days
	// are paid, so they never enter this term.
	missedDays := decimal.NewFromInt(int64(in.HalfDays)).Mul(half).
		Add(decimal.NewFromInt(int64(in.AbsentDays)))
	attendanceAdjustment := missedDays.Mul(dailyRate).Round(2).Neg()

	gross := basic.Add(hra).Add(special).
		Add(in.Conveyance).
		Add(in.ExtraConveyance).
		Add(in.AuditExpenses)

	deductions := in.AdvanceDeduction
	net := gross.Add(attendanceAdjustment).Add(in.LeaveAdjustment).Sub(deductions).Round(2)

	return payslip.SalaryBreakdown{
		BaseSalary:       in.BaseSalary,
		Basic:            basic,
		HRA:              hra,
		SpecialAllowance: special,

		DaysInMonth:  daysInMonth,
		FullDays:     in.FullDays,
		HalfDays:     in.HalfDays,
		AbsentDays:   in.AbsentDays,
		LeaveDays:    in.LeaveDays,
		HolidayCount: in.HolidayCount,

		DailyRate:            dailyRate,
		AttendanceAdjustment: attendanceAdjustment,
		LeaveAdjustment:      in.LeaveAdjustment,

		Conveyance:      in.Conveyance,
		ExtraConveyance: in.ExtraConveyance,
		AuditExpenses:   in.AuditExpenses,

		GrossEarnings:    gross,
		AdvanceDeduction: in.AdvanceDeduction,
		TotalDeductions:  deductions,
		NetPayable:       net,
	}
}
