package advance

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryAdvance is a lump sum paid out ahead of salary and recovered in
// equal monthly installments through payroll.
type SalaryAdvance struct {
	ID               string
	EmployeeID       string
	Amount           decimal.Decimal
	RepaymentMonths  int
	DeductFromMonth  int
	DeductFromYear   int
	MonthlyDeduction decimal.Decimal
	BalanceRemaining decimal.Decimal
	IsDeducted       bool
	IssuedAt         time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Joined fields
	EmployeeName *string
}

// NewSalaryAdvance splits the amount over the repayment window starting
// at the deduct-from period. The installment is rounded to 2dp; the
// final installment absorbs the rounding remainder because deductions
// stop at zero balance.
func NewSalaryAdvance(employeeID string, amount decimal.Decimal, repaymentMonths, deductFromMonth, deductFromYear int, issuedAt time.Time) SalaryAdvance {
	monthly := amount.Div(decimal.NewFromInt(int64(repaymentMonths))).Round(2)
	return SalaryAdvance{
		EmployeeID:       employeeID,
		Amount:           amount,
		RepaymentMonths:  repaymentMonths,
		DeductFromMonth:  deductFromMonth,
		DeductFromYear:   deductFromYear,
		MonthlyDeduction: monthly,
		BalanceRemaining: amount,
		IssuedAt:         issuedAt,
	}
}

// CoversPeriod reports whether repayment has started by the given
// payroll period. Payroll runs for earlier months never touch the
// advance.
func (a SalaryAdvance) CoversPeriod(month, year int) bool {
	if year != a.DeductFromYear {
		return year > a.DeductFromYear
	}
	return month >= a.DeductFromMonth
}

// DueInstallment is what this advance contributes to the next payroll
// run: the monthly installment capped at the outstanding balance.
func (a SalaryAdvance) DueInstallment() decimal.Decimal {
	if a.BalanceRemaining.LessThan(a.MonthlyDeduction) {
		return a.BalanceRemaining
	}
	return a.MonthlyDeduction
}
