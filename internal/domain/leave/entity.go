package leave

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

type LeaveRequest struct {
	ID         string
	EmployeeID string
	FromDate   time.Time
	ToDate     time.Time
	Days       int
	Reason     *string
	Status     Status
	DecidedBy  *string
	DecidedAt  *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	EmployeeName *string
}

// Covers reports whether the request spans the given calendar date.
func (l LeaveRequest) Covers(date time.Time) bool {
	d := date.Truncate(24 * time.Hour)
	return !d.Before(l.FromDate.Truncate(24*time.Hour)) && !d.After(l.ToDate.Truncate(24*time.Hour))
}
