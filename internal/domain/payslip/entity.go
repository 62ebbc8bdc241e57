package payslip

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryBreakdown is the full earnings and deductions picture for one
// employee-month. All money values carry 2dp.
type SalaryBreakdown struct {
	BaseSalary       decimal.Decimal `json:"base_salary"`
	Basic            decimal.Decimal `json:"basic"`
	HRA              decimal.Decimal `json:"hra"`
	SpecialAllowance decimal.Decimal `json:"special_allowance"`

	DaysInMonth  int `json:"days_in_month"`
	FullDays     int `json:"full_days"`
	HalfDays     int `json:"half_days"`
	AbsentDays   int `json:"absent_days"`
	LeaveDays    int `json:"leave_days"`
	HolidayCount int `json:"holiday_count"`

	DailyRate            decimal.Decimal `json:"daily_rate"`
	AttendanceAdjustment decimal.Decimal `json:"attendance_adjustment"`
	LeaveAdjustment      decimal.Decimal `json:"leave_adjustment"`

	Conveyance      decimal.Decimal `json:"conveyance"`
	ExtraConveyance decimal.Decimal `json:"extra_conveyance"`
	AuditExpenses   decimal.Decimal `json:"audit_expenses"`

	GrossEarnings    decimal.Decimal `json:"gross_earnings"`
	AdvanceDeduction decimal.Decimal `json:"advance_deduction"`
	TotalDeductions  decimal.Decimal `json:"total_deductions"`
	NetPayable       decimal.Decimal `json:"net_payable"`
}

type Payslip struct {
	ID          string
	EmployeeID  string
	Month       int
	Year        int
	Breakdown   SalaryBreakdown
	Status      Status
	GeneratedAt *time.Time
	PaidAt      *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
	Designation  *string
	BankName     *string
	BankAccount  *string
}
