package attendance

import "context"

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// PunchIn validates the scanned QR payload, classifies the scan
	// against the embedded shift and writes the day's record.
	PunchIn(ctx context.Context, req PunchInRequest) (AttendanceResponse, error)

	// PunchOut closes the open session and records worked minutes.
	PunchOut(ctx context.Context) (AttendanceResponse, error)

	// GetMyAttendance retrieves the authenticated employee's records.
	GetMyAttendance(ctx context.Context, month, year int) (ListAttendanceResponse, error)

	// ListAttendance retrieves a month of records (admin).
	ListAttendance(ctx context.Context, filter MonthFilter) (ListAttendanceResponse, error)

	// UpdateAttendance applies an admin override to a record.
	UpdateAttendance(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)
}
