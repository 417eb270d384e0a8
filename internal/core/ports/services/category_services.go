package services

import (
	"context"

	"github.com/taskforcepro/wallet_backend/internal/core/domain"
	"github.com/taskforcepro/wallet_backend/internal/dto"
)

// CategorySvcFacade defines the category operations exposed to handlers.
type CategorySvcFacade interface {
	CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.Category, error)
	GetCategoryByID(ctx context.Context, userID, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context, userID string) ([]domain.Category, error)
	ListChildCategories(ctx context.Context, userID, parentID string) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, userID, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error)
	// DeleteCategory removes a category; fails with ErrConflict while
	// transactions or budgets reference it (restrict policy).
	DeleteCategory(ctx context.Context, userID, categoryID string) error
}
