package mapping

import (
	"github.com/taskforcepro/wallet_backend/internal/core/domain"
	"github.com/taskforcepro/wallet_backend/internal/models"
)

// ToModelBudget converts a domain.Budget for DB storage.
func ToModelBudget(d domain.Budget) models.Budget {
	return models.Budget{
		BudgetID:              d.BudgetID,
		UserID:                d.UserID,
		CategoryID:            d.CategoryID,
		Limit:                 d.Limit,
		StartDate:             d.StartDate,
		EndDate:               d.EndDate,
		NotificationThreshold: d.NotificationThreshold,
		CreatedAt:             d.CreatedAt,
	}
}

// ToDomainBudget converts a models.Budget from the DB.
func ToDomainBudget(m models.Budget) domain.Budget {
	return domain.Budget{
		BudgetID:              m.BudgetID,
		UserID:                m.UserID,
		CategoryID:            m.CategoryID,
		Limit:                 m.Limit,
		StartDate:             m.StartDate,
		EndDate:               m.EndDate,
		NotificationThreshold: m.NotificationThreshold,
		CreatedAt:             m.CreatedAt,
	}
}

// ToModelNotification converts a domain.BudgetNotification for DB storage.
func ToModelNotification(d domain.BudgetNotification) models.BudgetNotification {
	return models.BudgetNotification{
		NotificationID: d.NotificationID,
		UserID:         d.UserID,
		BudgetID:       d.BudgetID,
		Message:        d.Message,
		Read:           d.Read,
		CreatedAt:      d.CreatedAt,
	}
}

// ToDomainNotification converts a models.BudgetNotification from the DB.
func ToDomainNotification(m models.BudgetNotification) domain.BudgetNotification {
	return domain.BudgetNotification{
		NotificationID: m.NotificationID,
		UserID:         m.UserID,
		BudgetID:       m.BudgetID,
		Message:        m.Message,
		Read:           m.Read,
		CreatedAt:      m.CreatedAt,
	}
}
