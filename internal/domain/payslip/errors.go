package payslip

import "errors"

var (
	ErrPayslipNotFound     = errors.New("payslip not found")
	ErrInvalidTransition   = errors.New("payslip status transition not allowed")
	ErrNotGenerated        = errors.New("payslip must be generated before settlement")
	ErrNoAttendanceRecords = errors.New("no attendance records found for this period")
)
