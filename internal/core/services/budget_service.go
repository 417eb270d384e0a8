package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/taskforcepro/wallet_backend/internal/apperrors"
	"github.com/taskforcepro/wallet_backend/internal/core/domain"
	portsrepo "github.com/taskforcepro/wallet_backend/internal/core/ports/repositories"
	portssvc "github.com/taskforcepro/wallet_backend/internal/core/ports/services"
	"github.com/taskforcepro/wallet_backend/internal/dto"
	"github.com/taskforcepro/wallet_backend/internal/middleware"
)

var (
	ErrBudgetOverlap       = errors.New("budget date range overlaps an existing budget for this category")
	ErrBudgetDatesInverted = errors.New("budget start date must not be after end date")
)

// budgetService provides budget management operations.
type budgetService struct {
	budgetRepo   portsrepo.BudgetRepositoryFacade
	categoryRepo portsrepo.CategoryReader
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(budgetRepo portsrepo.BudgetRepositoryFacade, categoryRepo portsrepo.CategoryReader) portssvc.BudgetSvcFacade {
	return &budgetService{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
	}
}

// Ensure budgetService implements the portssvc.BudgetSvcFacade interface
var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

// validateBudgetRange checks the date and amount invariants shared by
// create and update.
func (s *budgetService) validateBudgetRange(limit decimal.Decimal, start, end time.Time, threshold decimal.Decimal) error {
	if limit.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: budget limit must be positive", apperrors.ErrValidation)
	}
	if start.After(end) {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrBudgetDatesInverted)
	}
	if threshold.LessThanOrEqual(decimal.Zero) || threshold.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("%w: notification threshold must be within (0, 100]", apperrors.ErrValidation)
	}
	return nil
}

// checkOverlap enforces the single-budget-per-category-per-period invariant.
// Touching endpoints count as overlapping.
func (s *budgetService) checkOverlap(ctx context.Context, userID, categoryID string, start, end time.Time, excludeBudgetID string) error {
	existing, err := s.budgetRepo.FindOverlappingBudget(ctx, userID, categoryID, start, end, excludeBudgetID)
	if err != nil {
		return fmt.Errorf("failed to check budget overlap: %w", err)
	}
	if existing != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrConflict, ErrBudgetOverlap)
	}
	return nil
}

// CreateBudget creates a budget for a category over an inclusive date range.
func (s *budgetService) CreateBudget(ctx context.Context, userID string, req dto.CreateBudgetRequest) (*domain.Budget, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.categoryRepo.FindCategoryByID(ctx, userID, req.CategoryID); err != nil {
		return nil, fmt.Errorf("budget category: %w", err)
	}

	threshold := domain.DefaultNotificationThreshold
	if req.NotificationThreshold != nil {
		threshold = *req.NotificationThreshold
	}

	// Budget bounds are calendar dates.
	startDate := domain.DateOnly(req.StartDate)
	endDate := domain.DateOnly(req.EndDate)

	if err := s.validateBudgetRange(req.Limit, startDate, endDate, threshold); err != nil {
		return nil, err
	}

	if err := s.checkOverlap(ctx, userID, req.CategoryID, startDate, endDate, ""); err != nil {
		return nil, err
	}

	budget := domain.Budget{
		BudgetID:              uuid.NewString(),
		UserID:                userID,
		CategoryID:            req.CategoryID,
		Limit:                 req.Limit,
		StartDate:             startDate,
		EndDate:               endDate,
		NotificationThreshold: threshold,
		CreatedAt:             time.Now().UTC(),
	}

	if err := s.budgetRepo.SaveBudget(ctx, budget); err != nil {
		logger.Error("Failed to save budget", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save budget: %w", err)
	}

	logger.Info("Budget created successfully", slog.String("budget_id", budget.BudgetID), slog.String("category_id", budget.CategoryID))
	return &budget, nil
}

// GetBudgetByID retrieves a single budget owned by the user.
func (s *budgetService) GetBudgetByID(ctx context.Context, userID, budgetID string) (*domain.Budget, error) {
	return s.budgetRepo.FindBudgetByID(ctx, userID, budgetID)
}

// ListBudgets retrieves all budgets owned by the user.
func (s *budgetService) ListBudgets(ctx context.Context, userID string) ([]domain.Budget, error) {
	budgets, err := s.budgetRepo.ListBudgets(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	return budgets, nil
}

// UpdateBudget updates limit, dates and threshold. The overlap invariant is
// re-checked against the updated range, excluding the budget itself.
func (s *budgetService) UpdateBudget(ctx context.Context, userID, budgetID string, req dto.UpdateBudgetRequest) (*domain.Budget, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	budget, err := s.budgetRepo.FindBudgetByID(ctx, userID, budgetID)
	if err != nil {
		return nil, err
	}

	if req.Limit != nil {
		budget.Limit = *req.Limit
	}
	if req.StartDate != nil {
		budget.StartDate = domain.DateOnly(*req.StartDate)
	}
	if req.EndDate != nil {
		budget.EndDate = domain.DateOnly(*req.EndDate)
	}
	if req.NotificationThreshold != nil {
		budget.NotificationThreshold = *req.NotificationThreshold
	}

	if err := s.validateBudgetRange(budget.Limit, budget.StartDate, budget.EndDate, budget.NotificationThreshold); err != nil {
		return nil, err
	}

	if err := s.checkOverlap(ctx, userID, budget.CategoryID, budget.StartDate, budget.EndDate, budgetID); err != nil {
		return nil, err
	}

	if err := s.budgetRepo.UpdateBudget(ctx, *budget); err != nil {
		logger.Error("Failed to update budget", slog.String("budget_id", budgetID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	return budget, nil
}

// DeleteBudget removes a budget.
func (s *budgetService) DeleteBudget(ctx context.Context, userID, budgetID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.budgetRepo.DeleteBudget(ctx, userID, budgetID); err != nil {
		return err
	}

	logger.Info("Budget deleted", slog.String("budget_id", budgetID))
	return nil
}
