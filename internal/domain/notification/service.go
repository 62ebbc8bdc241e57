package notification

import "context"

// NotificationService persists notifications and pushes them to live
// SSE subscribers.
type NotificationService interface {
	Notify(ctx context.Context, userID string, typ Type, title, message string) error

	// NotifyEmployee resolves the employee's login account first; an
	// employee without one is silently skipped.
	NotifyEmployee(ctx context.Context, employeeID string, typ Type, title, message string) error
	NotifyAdmins(ctx context.Context, typ Type, title, message string) error
	ListMine(ctx context.Context) (ListNotificationResponse, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
}
