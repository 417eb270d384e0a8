package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taskforcepro/wallet_backend/internal/core/domain"
	portsrepo "github.com/taskforcepro/wallet_backend/internal/core/ports/repositories"
	portssvc "github.com/taskforcepro/wallet_backend/internal/core/ports/services"
	"github.com/taskforcepro/wallet_backend/internal/middleware"
)

// notificationService exposes budget notifications to the user. Creation
// happens exclusively inside the posting workflow; this service only reads
// and flips the read flag.
type notificationService struct {
	notificationRepo portsrepo.NotificationRepositoryFacade
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(notificationRepo portsrepo.NotificationRepositoryFacade) portssvc.NotificationSvcFacade {
	return &notificationService{notificationRepo: notificationRepo}
}

// Ensure notificationService implements the portssvc.NotificationSvcFacade interface
var _ portssvc.NotificationSvcFacade = (*notificationService)(nil)

// ListNotifications retrieves notifications for the user, newest first.
func (s *notificationService) ListNotifications(ctx context.Context, userID string, unreadOnly bool) ([]domain.BudgetNotification, error) {
	notifications, err := s.notificationRepo.ListNotifications(ctx, userID, unreadOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

// MarkNotificationRead sets read = true and returns the updated
// notification. Idempotent: marking an already-read notification succeeds
// and simply returns it with read still true.
func (s *notificationService) MarkNotificationRead(ctx context.Context, userID, notificationID string) (*domain.BudgetNotification, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.notificationRepo.MarkNotificationRead(ctx, userID, notificationID); err != nil {
		return nil, err
	}

	notification, err := s.notificationRepo.FindNotificationByID(ctx, userID, notificationID)
	if err != nil {
		return nil, err
	}

	logger.Info("Notification marked read", slog.String("notification_id", notificationID))
	return notification, nil
}
