package repositories

import (
	"context"
	"time"

	"github.com/taskforcepro/wallet_backend/internal/core/domain"
)

// BudgetReader defines read operations for budget data.
type BudgetReader interface {
	// FindBudgetByID retrieves a specific budget owned by userID.
	FindBudgetByID(ctx context.Context, userID, budgetID string) (*domain.Budget, error)

	// ListBudgets retrieves all budgets owned by userID, ordered by start date.
	ListBudgets(ctx context.Context, userID string) ([]domain.Budget, error)

	// FindBudgetForCategoryAndDate retrieves the budget for the category
	// whose [start_date, end_date] covers date, or nil if none exists.
	FindBudgetForCategoryAndDate(ctx context.Context, userID, categoryID string, date time.Time) (*domain.Budget, error)

	// FindOverlappingBudget returns any budget for the same category whose
	// inclusive range intersects [start, end], excluding excludeBudgetID
	// (pass "" on create). Returns nil when no overlap exists.
	FindOverlappingBudget(ctx context.Context, userID, categoryID string, start, end time.Time, excludeBudgetID string) (*domain.Budget, error)
}

// BudgetWriter defines write operations for budget data.
type BudgetWriter interface {
	// SaveBudget persists a new budget.
	SaveBudget(ctx context.Context, budget domain.Budget) error

	// UpdateBudget updates limit, dates and threshold of a budget.
	UpdateBudget(ctx context.Context, budget domain.Budget) error

	// DeleteBudget removes a budget owned by userID.
	DeleteBudget(ctx context.Context, userID, budgetID string) error
}

// BudgetRepositoryFacade combines all budget-related repository interfaces.
type BudgetRepositoryFacade interface {
	BudgetReader
	BudgetWriter
}
