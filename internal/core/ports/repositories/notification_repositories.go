package repositories

import (
	"context"

	"github.com/taskforcepro/wallet_backend/internal/core/domain"
)

// NotificationReader defines read operations for budget notifications.
type NotificationReader interface {
	// FindNotificationByID retrieves a specific notification owned by userID.
	FindNotificationByID(ctx context.Context, userID, notificationID string) (*domain.BudgetNotification, error)

	// ListNotifications retrieves notifications owned by userID, newest
	// first, optionally restricted to unread ones.
	ListNotifications(ctx context.Context, userID string, unreadOnly bool) ([]domain.BudgetNotification, error)
}

// NotificationWriter defines write operations for budget notifications.
type NotificationWriter interface {
	// SaveNotification persists a new notification. Only the posting
	// workflow's budget evaluation calls this.
	SaveNotification(ctx context.Context, notification domain.BudgetNotification) error

	// MarkNotificationRead sets read = true. Idempotent: marking an
	// already-read notification succeeds.
	MarkNotificationRead(ctx context.Context, userID, notificationID string) error
}

// NotificationRepositoryFacade combines all notification repository interfaces.
type NotificationRepositoryFacade interface {
	NotificationReader
	NotificationWriter
}
