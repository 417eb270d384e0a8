package repositories

import (
	"context"

	"github.com/taskforcepro/wallet_backend/internal/core/domain"
)

// CategoryReader defines read operations for category data.
type CategoryReader interface {
	// FindCategoryByID retrieves a specific category owned by userID.
	FindCategoryByID(ctx context.Context, userID, categoryID string) (*domain.Category, error)

	// ListCategories retrieves all categories owned by userID, ordered by name.
	ListCategories(ctx context.Context, userID string) ([]domain.Category, error)

	// ListChildCategories retrieves the direct children of a category
	// (one level, by parent pointer).
	ListChildCategories(ctx context.Context, userID, parentID string) ([]domain.Category, error)
}

// CategoryWriter defines write operations for category data.
type CategoryWriter interface {
	// SaveCategory persists a new category.
	SaveCategory(ctx context.Context, category domain.Category) error

	// UpdateCategory updates name, parent and description.
	UpdateCategory(ctx context.Context, category domain.Category) error

	// DeleteCategory removes a category owned by userID. Implementations must
	// fail with ErrConflict while transactions or budgets reference it.
	DeleteCategory(ctx context.Context, userID, categoryID string) error
}

// CategoryRepositoryFacade combines all category-related repository interfaces.
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
