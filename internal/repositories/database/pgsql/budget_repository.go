package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/taskforcepro/wallet_backend/internal/apperrors"
	"github.com/taskforcepro/wallet_backend/internal/core/domain"
	portsrepo "github.com/taskforcepro/wallet_backend/internal/core/ports/repositories"
	"github.com/taskforcepro/wallet_backend/internal/models"
	"github.com/taskforcepro/wallet_backend/internal/utils/mapping"
)

type PgxBudgetRepository struct {
	BaseRepository
}

// newPgxBudgetRepository creates a new repository for budget data.
func newPgxBudgetRepository(pool *pgxpool.Pool) *PgxBudgetRepository {
	return &PgxBudgetRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxBudgetRepository implements portsrepo.BudgetRepositoryFacade
var _ portsrepo.BudgetRepositoryFacade = (*PgxBudgetRepository)(nil)

const budgetColumns = `budget_id, user_id, category_id, limit_amount, start_date, end_date, notification_threshold, created_at`

func scanBudget(row pgx.Row) (models.Budget, error) {
	var m models.Budget
	err := row.Scan(
		&m.BudgetID,
		&m.UserID,
		&m.CategoryID,
		&m.Limit,
		&m.StartDate,
		&m.EndDate,
		&m.NotificationThreshold,
		&m.CreatedAt,
	)
	return m, err
}

// SaveBudget inserts a new budget. Overlap with existing budgets is checked
// by the service first; the budgets_no_overlap exclusion constraint catches
// the race between two concurrent creates and surfaces as ErrConflict here.
func (r *PgxBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	modelBudget := mapping.ToModelBudget(budget)

	query := `
		INSERT INTO budgets (` + budgetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelBudget.BudgetID,
		modelBudget.UserID,
		modelBudget.CategoryID,
		modelBudget.Limit,
		modelBudget.StartDate,
		modelBudget.EndDate,
		modelBudget.NotificationThreshold,
		modelBudget.CreatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // Unique violation
				return fmt.Errorf("%w: budget with ID %s already exists", apperrors.ErrDuplicate, modelBudget.BudgetID)
			case "23503": // Foreign key violation
				return fmt.Errorf("%w: category not found", apperrors.ErrNotFound)
			case "23P01": // Exclusion violation
				return fmt.Errorf("%w: budget date range overlaps an existing budget for this category", apperrors.ErrConflict)
			}
		}
		return fmt.Errorf("failed to save budget %s: %w", modelBudget.BudgetID, err)
	}
	return nil
}

// FindBudgetByID retrieves a budget by its ID, scoped to the owner.
func (r *PgxBudgetRepository) FindBudgetByID(ctx context.Context, userID, budgetID string) (*domain.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets WHERE budget_id = $1 AND user_id = $2;`

	modelBudget, err := scanBudget(r.Pool.QueryRow(ctx, query, budgetID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find budget by ID %s: %w", budgetID, err)
	}

	domainBudget := mapping.ToDomainBudget(modelBudget)
	return &domainBudget, nil
}

// ListBudgets retrieves every budget owned by the user, ordered by start date.
func (r *PgxBudgetRepository) ListBudgets(ctx context.Context, userID string) ([]domain.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets WHERE user_id = $1 ORDER BY start_date, category_id;`

	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets for user %s: %w", userID, err)
	}
	defer rows.Close()

	budgets := []domain.Budget{}
	for rows.Next() {
		modelBudget, err := scanBudget(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan budget row: %w", err)
		}
		budgets = append(budgets, mapping.ToDomainBudget(modelBudget))
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating budget rows: %w", rows.Err())
	}

	return budgets, nil
}

// FindBudgetForCategoryAndDate retrieves the budget for the category whose
// inclusive [start_date, end_date] covers the date, or nil when none exists.
func (r *PgxBudgetRepository) FindBudgetForCategoryAndDate(ctx context.Context, userID, categoryID string, date time.Time) (*domain.Budget, error) {
	query := `
		SELECT ` + budgetColumns + `
		FROM budgets
		WHERE user_id = $1 AND category_id = $2 AND start_date <= $3 AND end_date >= $3
		LIMIT 1;
	`
	modelBudget, err := scanBudget(r.Pool.QueryRow(ctx, query, userID, categoryID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find budget for category %s: %w", categoryID, err)
	}

	domainBudget := mapping.ToDomainBudget(modelBudget)
	return &domainBudget, nil
}

// FindOverlappingBudget returns any budget for the same category whose
// inclusive range intersects [start, end], excluding excludeBudgetID.
// Touching endpoints count as overlapping.
func (r *PgxBudgetRepository) FindOverlappingBudget(ctx context.Context, userID, categoryID string, start, end time.Time, excludeBudgetID string) (*domain.Budget, error) {
	query := `
		SELECT ` + budgetColumns + `
		FROM budgets
		WHERE user_id = $1 AND category_id = $2
		  AND start_date <= $4 AND end_date >= $3
		  AND budget_id != $5
		LIMIT 1;
	`
	modelBudget, err := scanBudget(r.Pool.QueryRow(ctx, query, userID, categoryID, start, end, excludeBudgetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find overlapping budget for category %s: %w", categoryID, err)
	}

	domainBudget := mapping.ToDomainBudget(modelBudget)
	return &domainBudget, nil
}

// UpdateBudget updates limit, dates and threshold.
func (r *PgxBudgetRepository) UpdateBudget(ctx context.Context, budget domain.Budget) error {
	modelBudget := mapping.ToModelBudget(budget)

	query := `
		UPDATE budgets
		SET limit_amount = $3, start_date = $4, end_date = $5, notification_threshold = $6
		WHERE budget_id = $1 AND user_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		modelBudget.BudgetID,
		modelBudget.UserID,
		modelBudget.Limit,
		modelBudget.StartDate,
		modelBudget.EndDate,
		modelBudget.NotificationThreshold,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23P01" {
			return fmt.Errorf("%w: budget date range overlaps an existing budget for this category", apperrors.ErrConflict)
		}
		return fmt.Errorf("failed to execute update budget %s: %w", modelBudget.BudgetID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteBudget removes a budget. Notifications referencing it are removed by
// the schema's cascade; they are historical artifacts of the budget itself.
func (r *PgxBudgetRepository) DeleteBudget(ctx context.Context, userID, budgetID string) error {
	query := `DELETE FROM budgets WHERE budget_id = $1 AND user_id = $2;`

	cmdTag, err := r.Pool.Exec(ctx, query, budgetID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete budget %s: %w", budgetID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
