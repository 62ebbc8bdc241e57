package shift

import "errors"

var (
	ErrShiftNotFound   = errors.New("shift template not found")
	ErrShiftNameExists = errors.New("shift template name already exists")
	ErrShiftInactive   = errors.New("shift template is inactive")
)
