package leave

import "errors"

var (
	ErrLeaveRequestNotFound  = errors.New("leave request not found")
	ErrLeaveAlreadyProcessed = errors.New("leave request already approved or rejected")
	ErrInvalidDateRange      = errors.New("leave to_date must not be before from_date")
)
