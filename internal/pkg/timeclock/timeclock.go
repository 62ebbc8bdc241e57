// Package timeclock provides minute-of-day arithmetic for shift timing.
//
// Night shifts start late in the clock and end after midnight, so raw
// time-of-day comparison breaks across the day boundary. Every comparison
// here is done in minutes on a single 24h+ axis instead.
package timeclock

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Minutes is a point on the shift axis, counted in minutes. Plain
// times-of-day sit in [0, 1440); values normalized for a night shift may
// exceed 1440 (e.g. 05:50 next-day becomes 29:50 = 1790).
type Minutes int

const (
	// MinutesPerDay is one full clock rotation.
	MinutesPerDay Minutes = 24 * 60

	// Noon splits the clock for night-shift normalization: any
	// time-of-day before noon belongs to the calendar day after the
	// shift started.
	Noon Minutes = 12 * 60
)

// FromClock builds a Minutes value from an hour and minute of day.
func FromClock(hour, minute int) Minutes {
	return Minutes(hour*60 + minute)
}

// FromTime extracts the minute-of-day from a wall-clock time.
func FromTime(t time.Time) Minutes {
	return FromClock(t.Hour(), t.Minute())
}

// Parse reads a "HH:MM" string into a minute-of-day value.
func Parse(s string) (Minutes, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time of day %q: expected HH:MM", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	return FromClock(hour, minute), nil
}

// NormalizeOvernight maps a time-of-day onto the extended axis of a shift
// that crosses midnight: anything before noon is treated as the next
// calendar day. Both the scan time and the shift start must pass through
// this before they are compared.
func NormalizeOvernight(m Minutes) Minutes {
	if m < Noon {
		return m + MinutesPerDay
	}
	return m
}

// Add offsets a point on the axis by a number of minutes.
func (m Minutes) Add(delta int) Minutes {
	return m + Minutes(delta)
}

// Clock formats the value as "HH:MM", folding extended-axis values back
// onto the 24h clock.
func (m Minutes) Clock() string {
	folded := m % MinutesPerDay
	if folded < 0 {
		folded += MinutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", folded/60, folded%60)
}
