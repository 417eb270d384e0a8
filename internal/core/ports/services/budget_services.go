package services

import (
	"context"

	"github.com/taskforcepro/wallet_backend/internal/core/domain"
	"github.com/taskforcepro/wallet_backend/internal/dto"
)

// BudgetSvcFacade defines the budget operations exposed to handlers.
type BudgetSvcFacade interface {
	CreateBudget(ctx context.Context, userID string, req dto.CreateBudgetRequest) (*domain.Budget, error)
	GetBudgetByID(ctx context.Context, userID, budgetID string) (*domain.Budget, error)
	ListBudgets(ctx context.Context, userID string) ([]domain.Budget, error)
	UpdateBudget(ctx context.Context, userID, budgetID string, req dto.UpdateBudgetRequest) (*domain.Budget, error)
	DeleteBudget(ctx context.Context, userID, budgetID string) error
}

// NotificationSvcFacade defines the notification operations exposed to handlers.
type NotificationSvcFacade interface {
	ListNotifications(ctx context.Context, userID string, unreadOnly bool) ([]domain.BudgetNotification, error)

	// MarkNotificationRead flips the read flag. Idempotent: a second call on
	// the same id succeeds and leaves read = true.
	MarkNotificationRead(ctx context.Context, userID, notificationID string) (*domain.BudgetNotification, error)
}
