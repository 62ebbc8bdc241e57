package holiday

import "time"

// Holiday is a company-wide non-working day. The absent-marker job and
// payroll both skip these dates.
type Holiday struct {
	ID        string
	Name      string
	Date      time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
