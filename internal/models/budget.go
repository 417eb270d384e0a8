package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget mirrors the budgets table.
type Budget struct {
	BudgetID              string          `db:"budget_id"`
	UserID                string          `db:"user_id"`
	CategoryID            string          `db:"category_id"`
	Limit                 decimal.Decimal `db:"limit_amount"`
	StartDate             time.Time       `db:"start_date"`
	EndDate               time.Time       `db:"end_date"`
	NotificationThreshold decimal.Decimal `db:"notification_threshold"`
	CreatedAt             time.Time       `db:"created_at"`
}

// BudgetNotification mirrors the budget_notifications table.
type BudgetNotification struct {
	NotificationID string    `db:"notification_id"`
	UserID         string    `db:"user_id"`
	BudgetID       string    `db:"budget_id"`
	Message        string    `db:"message"`
	Read           bool      `db:"read"`
	CreatedAt      time.Time `db:"created_at"`
}
