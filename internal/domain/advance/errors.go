package advance

import "errors"

var (
	ErrAdvanceNotFound = errors.New("salary advance not found")
	ErrOutstandingOwed = errors.New("employee still has an outstanding advance")
)
