package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/leave"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/notification"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/authctx"
)

type leaveService struct {
	leaveRepo leave.LeaveRepository
	notifier  notification.NotificationService
}

func NewLeaveService(leaveRepo leave.LeaveRepository, notifier notification.NotificationService) leave.LeaveService {
	return &leaveService{
		leaveRepo: leaveRepo,
		notifier:  notifier,
	}
}

func (s *leaveService) Create(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	employeeID, err := authctx.EmployeeID(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	created, err := s.leaveRepo.Create(ctx, leave.LeaveRequest{
		EmployeeID: employeeID,
		FromDate:   req.From,
		ToDate:     req.To,
		Days:       req.DayCount(),
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	_ = s.notifier.NotifyAdmins(ctx, notification.TypeLeaveRequested,
		"Leave requested",
		fmt.Sprintf("A leave request for %d day(s) from %s is awaiting review.",
			created.Days, created.FromDate.Format(time.DateOnly)))

	return toResponse(created), nil
}

func (s *leaveService) GetMyLeaves(ctx context.Context) (leave.ListLeaveResponse, error) {
	employeeID, err := authctx.EmployeeID(ctx)
	if err != nil {
		return leave.ListLeaveResponse{}, err
	}

	leaves, err := s.leaveRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return leave.ListLeaveResponse{}, err
	}
	return toListResponse(leaves), nil
}

func (s *leaveService) List(ctx context.Context, status *leave.Status) (leave.ListLeaveResponse, error) {
	leaves, err := s.leaveRepo.List(ctx, status)
	if err != nil {
		return leave.ListLeaveResponse{}, err
	}
	return toListResponse(leaves), nil
}

func (s *leaveService) Decide(ctx context.Context, req leave.DecideLeaveRequest) (leave.LeaveResponse, error) {
	identity, err := authctx.FromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	// GetByID first so a missing request reads as not-found, not as
	// already-processed.
	existing, err := s.leaveRepo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	status := leave.StatusRejected
	if req.Approve {
		status = leave.StatusApproved
	}

	decided, err := s.leaveRepo.UpdateStatus(ctx, req.ID, status, identity.UserID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	decided.EmployeeName = existing.EmployeeName

	s.notifyDecision(ctx, decided)
	return toResponse(decided), nil
}

func (s *leaveService) notifyDecision(ctx context.Context, l leave.LeaveRequest) {
	verdict := "rejected"
	if l.Status == leave.StatusApproved {
		verdict = "approved"
	}
	_ = s.notifier.NotifyEmployee(ctx, l.EmployeeID, notification.TypeLeaveDecided,
		"Leave "+verdict,
		fmt.Sprintf("Your leave request from %s to %s was %s.",
			l.FromDate.Format(time.DateOnly), l.ToDate.Format(time.DateOnly), verdict))
}

func toResponse(l leave.LeaveRequest) leave.LeaveResponse {
	return leave.LeaveResponse{
		ID:           l.ID,
		EmployeeID:   l.EmployeeID,
		EmployeeName: l.EmployeeName,
		FromDate:     l.FromDate.Format(time.DateOnly),
		ToDate:       l.ToDate.Format(time.DateOnly),
		Days:         l.Days,
		Reason:       l.Reason,
		Status:       string(l.Status),
	}
}

func toListResponse(leaves []leave.LeaveRequest) leave.ListLeaveResponse {
	data := make([]leave.LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		data = append(data, toResponse(l))
	}
	return leave.ListLeaveResponse{Data: data}
}
