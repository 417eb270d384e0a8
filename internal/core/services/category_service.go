package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/taskforcepro/wallet_backend/internal/apperrors"
	"github.com/taskforcepro/wallet_backend/internal/core/domain"
	portsrepo "github.com/taskforcepro/wallet_backend/internal/core/ports/repositories"
	portssvc "github.com/taskforcepro/wallet_backend/internal/core/ports/services"
	"github.com/taskforcepro/wallet_backend/internal/dto"
	"github.com/taskforcepro/wallet_backend/internal/middleware"
)

// categoryService provides category management operations.
type categoryService struct {
	categoryRepo    portsrepo.CategoryRepositoryFacade
	transactionRepo portsrepo.TransactionReader
	budgetRepo      portsrepo.BudgetReader
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade, transactionRepo portsrepo.TransactionReader, budgetRepo portsrepo.BudgetReader) portssvc.CategorySvcFacade {
	return &categoryService{
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
	}
}

// Ensure categoryService implements the portssvc.CategorySvcFacade interface
var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

// CreateCategory creates a new category, optionally as a child of an
// existing one owned by the same user.
func (s *categoryService) CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.Category, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", apperrors.ErrValidation)
	}

	if req.ParentID != nil {
		// Parent must exist and belong to the same user.
		if _, err := s.categoryRepo.FindCategoryByID(ctx, userID, *req.ParentID); err != nil {
			return nil, fmt.Errorf("parent category: %w", err)
		}
	}

	category := domain.Category{
		CategoryID:  uuid.NewString(),
		UserID:      userID,
		Name:        name,
		ParentID:    req.ParentID,
		Description: req.Description,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		logger.Error("Failed to save category", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save category: %w", err)
	}

	logger.Info("Category created successfully", slog.String("category_id", category.CategoryID))
	return &category, nil
}

// GetCategoryByID retrieves a single category owned by the user.
func (s *categoryService) GetCategoryByID(ctx context.Context, userID, categoryID string) (*domain.Category, error) {
	return s.categoryRepo.FindCategoryByID(ctx, userID, categoryID)
}

// ListCategories retrieves all categories owned by the user.
func (s *categoryService) ListCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	categories, err := s.categoryRepo.ListCategories(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// ListChildCategories retrieves the direct children of a category.
func (s *categoryService) ListChildCategories(ctx context.Context, userID, parentID string) ([]domain.Category, error) {
	if _, err := s.categoryRepo.FindCategoryByID(ctx, userID, parentID); err != nil {
		return nil, err
	}
	children, err := s.categoryRepo.ListChildCategories(ctx, userID, parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list child categories: %w", err)
	}
	return children, nil
}

// UpdateCategory updates a category's name and parent.
func (s *categoryService) UpdateCategory(ctx context.Context, userID, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	category, err := s.categoryRepo.FindCategoryByID(ctx, userID, categoryID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: category name must not be empty", apperrors.ErrValidation)
		}
		category.Name = name
	}

	if req.ParentID != nil {
		if *req.ParentID == categoryID {
			return nil, fmt.Errorf("%w: category cannot be its own parent", apperrors.ErrValidation)
		}
		if _, err := s.categoryRepo.FindCategoryByID(ctx, userID, *req.ParentID); err != nil {
			return nil, fmt.Errorf("parent category: %w", err)
		}
		category.ParentID = req.ParentID
	}

	if req.Description != nil {
		category.Description = *req.Description
	}

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		logger.Error("Failed to update category", slog.String("category_id", categoryID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return category, nil
}

// DeleteCategory removes a category. Restrict policy: the delete fails with
// ErrConflict while transactions reference the category, while a budget
// covers it, or while it still has child categories.
func (s *categoryService) DeleteCategory(ctx context.Context, userID, categoryID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.categoryRepo.FindCategoryByID(ctx, userID, categoryID); err != nil {
		return err
	}

	hasTxns, err := s.transactionRepo.HasTransactionsForCategory(ctx, userID, categoryID)
	if err != nil {
		return fmt.Errorf("failed to check category transactions: %w", err)
	}
	if hasTxns {
		return fmt.Errorf("%w: category has transactions; delete them first", apperrors.ErrConflict)
	}

	children, err := s.categoryRepo.ListChildCategories(ctx, userID, categoryID)
	if err != nil {
		return fmt.Errorf("failed to check child categories: %w", err)
	}
	if len(children) > 0 {
		return fmt.Errorf("%w: category has child categories; delete or re-parent them first", apperrors.ErrConflict)
	}

	budgets, err := s.budgetRepo.ListBudgets(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to check category budgets: %w", err)
	}
	for _, b := range budgets {
		if b.CategoryID == categoryID {
			return fmt.Errorf("%w: category has a budget; delete it first", apperrors.ErrConflict)
		}
	}

	if err := s.categoryRepo.DeleteCategory(ctx, userID, categoryID); err != nil {
		logger.Error("Failed to delete category", slog.String("category_id", categoryID), slog.String("error", err.Error()))
		return err
	}

	logger.Info("Category deleted", slog.String("category_id", categoryID))
	return nil
}
