package domain

import "time"

// BudgetNotification is created only by the posting workflow's budget
// evaluation step, never directly by a client. Message and CreatedAt are
// immutable once created; Read is the single user-mutable field.
type BudgetNotification struct {
	NotificationID string    `json:"notificationID"` // Primary Key (UUID)
	UserID         string    `json:"userID"`         // FK -> users.user_id (Not Null)
	BudgetID       string    `json:"budgetID"`       // FK -> budgets.budget_id (Not Null)
	Message        string    `json:"message"`
	Read           bool      `json:"read"`
	CreatedAt      time.Time `json:"createdAt"`
}
