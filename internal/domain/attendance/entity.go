package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is the classification assigned at punch-in. It is written once
// and never auto-recomputed; only an admin override may change it.
type Status string

const (
	StatusFullDay Status = "full_day"
	StatusHalfDay Status = "half_day"
	StatusAbsent  Status = "absent"
	StatusLeave   Status = "leave"
)

// Valid reports whether s is a known attendance status.
func (s Status) Valid() bool {
	switch s {
	case StatusFullDay, StatusHalfDay, StatusAbsent, StatusLeave:
		return true
	}
	return false
}

// Attendance is one row per employee per calendar date. The shift fields
// are a snapshot of the QR definition at scan time, so later edits to the
// shift template never change past records.
type Attendance struct {
	ID          string
	EmployeeID  string
	Date        time.Time // calendar date, midnight UTC
	PunchIn     *time.Time
	PunchOut    *time.Time
	WorkMinutes *int
	Status      Status

	// Shift snapshot
	ShiftID    *string
	ShiftName  *string
	ShiftType  *string
	ShiftStart *string // "HH:MM"

	// ConveyanceAmount is already multiplied by the status multiplier
	// (full 1.0, half 0.5, absent 0).
	ConveyanceAmount decimal.Decimal
	DutyAmount       decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}
