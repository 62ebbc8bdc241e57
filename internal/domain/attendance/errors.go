package attendance

import "errors"

var (
	// Punch-in errors
	ErrAlreadyCheckedIn = errors.New("you have already checked in today")
	ErrInvalidQRCode    = errors.New("attendance QR code is invalid or expired")

	// Punch-out errors
	ErrNotCheckedIn      = errors.New("you have not checked in yet")
	ErrAlreadyCheckedOut = errors.New("you have already checked out")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
