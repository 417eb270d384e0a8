package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/taskforcepro/wallet_backend/internal/core/domain"
)

// CreateBudgetRequest defines the data needed to create a budget. StartDate
// and EndDate are calendar dates; a time-of-day component is ignored.
// NotificationThreshold is a percentage of the limit; when omitted the
// default of 80 applies.
type CreateBudgetRequest struct {
	CategoryID            string           `json:"categoryID" binding:"required"`
	Limit                 decimal.Decimal  `json:"limit" binding:"required,positivedecimal"`
	StartDate             time.Time        `json:"startDate" binding:"required"`
	EndDate               time.Time        `json:"endDate" binding:"required"`
	NotificationThreshold *decimal.Decimal `json:"notificationThreshold"`
}

// UpdateBudgetRequest defines the data allowed for updating a budget.
type UpdateBudgetRequest struct {
	Limit                 *decimal.Decimal `json:"limit"`
	StartDate             *time.Time       `json:"startDate"`
	EndDate               *time.Time       `json:"endDate"`
	NotificationThreshold *decimal.Decimal `json:"notificationThreshold"`
}

// BudgetResponse defines the data returned for a budget.
type BudgetResponse struct {
	BudgetID              string          `json:"budgetID"`
	CategoryID            string          `json:"categoryID"`
	Limit                 decimal.Decimal `json:"limit"`
	StartDate             time.Time       `json:"startDate"`
	EndDate               time.Time       `json:"endDate"`
	NotificationThreshold decimal.Decimal `json:"notificationThreshold"`
	CreatedAt             time.Time       `json:"createdAt"`
}

// ToBudgetResponse converts a domain.Budget to BudgetResponse.
func ToBudgetResponse(b *domain.Budget) BudgetResponse {
	return BudgetResponse{
		BudgetID:              b.BudgetID,
		CategoryID:            b.CategoryID,
		Limit:                 b.Limit,
		StartDate:             b.StartDate,
		EndDate:               b.EndDate,
		NotificationThreshold: b.NotificationThreshold,
		CreatedAt:             b.CreatedAt,
	}
}

// ToListBudgetResponse converts a slice of domain.Budget.
func ToListBudgetResponse(budgets []domain.Budget) []BudgetResponse {
	res := make([]BudgetResponse, len(budgets))
	for i, b := range budgets {
		res[i] = ToBudgetResponse(&b)
	}
	return res
}
