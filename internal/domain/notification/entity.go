package notification

import "time"

type Type string

const (
	TypeLeaveDecided     Type = "leave_decided"
	TypeExpenseDecided   Type = "expense_decided"
	TypePayslipGenerated Type = "payslip_generated"
	TypePayslipSettled   Type = "payslip_settled"
	TypeLeaveRequested   Type = "leave_requested"
	TypeExpenseSubmitted Type = "expense_submitted"
)

type Notification struct {
	ID        string
	UserID    string
	Type      Type
	Title     string
	Message   string
	IsRead    bool
	CreatedAt time.Time
}
