package shift

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/timeclock"
)

type ShiftType string

const (
	TypeDay   ShiftType = "day"
	TypeNight ShiftType = "night"
)

// Definition is the timing and allowance rule set a QR code is minted
// from. Once embedded in an attendance record it is never recomputed.
type Definition struct {
	Type                 ShiftType
	Start                timeclock.Minutes
	End                  timeclock.Minutes
	GraceMinutes         int
	HalfDayCutoffMinutes int
	ConveyanceAmount     decimal.Decimal
	DutyAmount           decimal.Decimal
}

// IsOvernight reports whether the shift crosses midnight.
func (d Definition) IsOvernight() bool {
	return d.Type == TypeNight
}

// Template is a stored, named shift the admin issues QR codes for.
type Template struct {
	ID         string
	Name       string
	Definition Definition
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
