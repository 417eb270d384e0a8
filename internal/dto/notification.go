package dto

import (
	"time"

	"github.com/taskforcepro/wallet_backend/internal/core/domain"
)

// NotificationResponse defines the data returned for a budget notification.
type NotificationResponse struct {
	NotificationID string    `json:"notificationID"`
	BudgetID       string    `json:"budgetID"`
	Message        string    `json:"message"`
	Read           bool      `json:"read"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ToNotificationResponse converts a domain.BudgetNotification.
func ToNotificationResponse(n *domain.BudgetNotification) NotificationResponse {
	return NotificationResponse{
		NotificationID: n.NotificationID,
		BudgetID:       n.BudgetID,
		Message:        n.Message,
		Read:           n.Read,
		CreatedAt:      n.CreatedAt,
	}
}

// ToListNotificationResponse converts a slice of domain.BudgetNotification.
func ToListNotificationResponse(notifications []domain.BudgetNotification) []NotificationResponse {
	res := make([]NotificationResponse, len(notifications))
	for i, n := range notifications {
		res[i] = ToNotificationResponse(&n)
	}
	return res
}
