package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// Create inserts the punch-in row. The (employee_id, date) key is
	// unique; a conflicting insert returns ErrAlreadyCheckedIn.
	Create(ctx context.Context, a Attendance) (Attendance, error)

	GetByID(ctx context.Context, id string) (Attendance, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Attendance, error)

	// GetOpenSession returns the employee's punched-in row without a
	// punch-out, newest first.
	GetOpenSession(ctx context.Context, employeeID string) (Attendance, error)

	SetPunchOut(ctx context.Context, id string, punchOut time.Time, workMinutes int) (Attendance, error)

	ListByEmployeeMonth(ctx context.Context, employeeID string, month, year int) ([]Attendance, error)
	ListByMonth(ctx context.Context, month, year int) ([]Attendance, error)

	// Update applies an admin override to status/conveyance.
	Update(ctx context.Context, a Attendance) (Attendance, error)

	// ListMissingForDate returns active employee ids without any
	// attendance row on the given date (used by the absent-marker job).
	ListMissingForDate(ctx context.Context, date time.Time) ([]string, error)
}
