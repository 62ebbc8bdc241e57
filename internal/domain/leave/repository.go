package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	Create(ctx context.Context, l LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	List(ctx context.Context, status *Status) ([]LeaveRequest, error)
	UpdateStatus(ctx context.Context, id string, status Status, decidedBy string) (LeaveRequest, error)

	// ListApprovedOverlapping returns approved requests touching the
	// [from, to] date window (payroll aggregation and the absent-marker
	// job both use it).
	ListApprovedOverlapping(ctx context.Context, employeeID string, from, to time.Time) ([]LeaveRequest, error)
	AnyApprovedCovering(ctx context.Context, employeeID string, date time.Time) (bool, error)
}
