package attendance

import (
	"github.com/shopspring/decimal"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/attendance"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/shift"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/timeclock"
)

// Classify maps a punch-in scan time to an attendance status using the
// shift the QR code was minted for.
//
// Two deadlines hang off the shift start: the grace deadline (start +
// grace) and the half-day deadline (start + cutoff). On or before the
// grace deadline the day is full; after it but on or before the half-day
// deadline the day is half; later scans count as absent. For night
// shifts both the scan and the start are folded onto an extended axis
// first, so a 05:50 scan correctly lands after a 21:00 start.
func Classify(scan timeclock.Minutes, def shift.Definition) attendance.Status {
	start := def.Start
	if def.IsOvernight() {
		scan = timeclock.NormalizeOvernight(scan)
		start = timeclock.NormalizeOvernight(start)
	}

	graceDeadline := start.Add(def.GraceMinutes)
	halfDayDeadline := start.Add(def.HalfDayCutoffMinutes)

	switch {
	case scan <= graceDeadline:
		return attendance.StatusFullDay
	case scan <= halfDayDeadline:
		return attendance.StatusHalfDay
	default:
		return attendance.StatusAbsent
	}
}

// ConveyanceFor scales the shift's conveyance allowance by the status:
// full day pays it whole, half day pays half, absent and leave pay
// nothing.
func ConveyanceFor(status attendance.Status, base decimal.Decimal) decimal.Decimal {
	switch status {
	case attendance.StatusFullDay:
		return base
	case attendance.StatusHalfDay:
		return base.Div(decimal.NewFromInt(2)).Round(2)
	default:
		return decimal.Zero
	}
}
