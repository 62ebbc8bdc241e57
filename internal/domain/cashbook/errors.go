package cashbook

import "errors"

var ErrEntryNotFound = errors.New("cashbook entry not found")
