package expense

import "errors"

var (
	ErrExpenseNotFound       = errors.New("expense submission not found")
	ErrAlreadyProcessed      = errors.New("expense submission already processed")
	ErrNotInRevalidation     = errors.New("expense submission is not open for revalidation")
	ErrInvalidApprovalAmount = errors.New("approval amount is outside the allowed range")
)
