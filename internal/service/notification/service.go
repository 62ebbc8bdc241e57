package notification

import (
	"context"
	"log/slog"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/notification"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/user"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/authctx"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/sse"
)

type notificationService struct {
	notificationRepo notification.NotificationRepository
	userRepo         user.UserRepository
	hub              *sse.Hub
	logger           *slog.Logger
}

func NewNotificationService(
	notificationRepo notification.NotificationRepository,
	userRepo user.UserRepository,
	hub *sse.Hub,
	logger *slog.Logger,
) notification.NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		hub:              hub,
		logger:           logger,
	}
}

func (s *notificationService) Notify(ctx context.Context, userID string, typ notification.Type, title, message string) error {
	created, err := s.notificationRepo.Create(ctx, notification.Notification{
		UserID:  userID,
		Type:    typ,
		Title:   title,
		Message: message,
	})
	if err != nil {
		return err
	}

	s.hub.Publish(sse.Event{
		UserID: userID,
		Event:  "notification",
		Data:   notification.NewNotificationResponse(created),
	})
	return nil
}

func (s *notificationService) NotifyEmployee(ctx context.Context, employeeID string, typ notification.Type, title, message string) error {
	u, err := s.userRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		// Employees without a login account simply get no notification.
		return nil
	}
	return s.Notify(ctx, u.ID, typ, title, message)
}

func (s *notificationService) NotifyAdmins(ctx context.Context, typ notification.Type, title, message string) error {
	admins, err := s.userRepo.ListAdmins(ctx)
	if err != nil {
		return err
	}
	for _, admin := range admins {
		if err := s.Notify(ctx, admin.ID, typ, title, message); err != nil {
			s.logger.Warn("admin notification failed",
				slog.String("user_id", admin.ID),
				slog.Any("error", err))
		}
	}
	return nil
}

func (s *notificationService) ListMine(ctx context.Context) (notification.ListNotificationResponse, error) {
	identity, err := authctx.FromContext(ctx)
	if err != nil {
		return notification.ListNotificationResponse{}, err
	}

	notifications, err := s.notificationRepo.ListByUser(ctx, identity.UserID, 50)
	if err != nil {
		return notification.ListNotificationResponse{}, err
	}
	return notification.NewListNotificationResponse(notifications), nil
}

func (s *notificationService) MarkRead(ctx context.Context, id string) error {
	identity, err := authctx.FromContext(ctx)
	if err != nil {
		return err
	}
	return s.notificationRepo.MarkRead(ctx, id, identity.UserID)
}

func (s *notificationService) MarkAllRead(ctx context.Context) error {
	identity, err := authctx.FromContext(ctx)
	if err != nil {
		return err
	}
	return s.notificationRepo.MarkAllRead(ctx, identity.UserID)
}
