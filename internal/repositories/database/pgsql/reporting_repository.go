package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/taskforcepro/wallet_backend/internal/core/domain"
	portsrepo "github.com/taskforcepro/wallet_backend/internal/core/ports/repositories"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// GetPeriodSummary returns income/expense totals for [from, to]. Transfers
// move money between the user's own accounts and are excluded.
func (r *reportingRepository) GetPeriodSummary(ctx context.Context, userID string, from, to time.Time) (*domain.PeriodSummary, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN type = 'IN' THEN amount ELSE 0 END), 0) AS total_income,
			COALESCE(SUM(CASE WHEN type = 'OUT' THEN amount ELSE 0 END), 0) AS total_expense
		FROM transactions
		WHERE user_id = $1 AND date BETWEEN $2 AND $3
	`

	summary := domain.PeriodSummary{From: from, To: to}
	err := r.Pool.QueryRow(ctx, query, userID, from, to).Scan(
		&summary.TotalIncome,
		&summary.TotalExpense,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying period summary: %w", err)
	}

	summary.Net = summary.TotalIncome.Sub(summary.TotalExpense)
	return &summary, nil
}

// GetCategoryBreakdown returns expense totals per category for [from, to],
// largest first. Uncategorized expenses are not part of the breakdown.
func (r *reportingRepository) GetCategoryBreakdown(ctx context.Context, userID string, from, to time.Time) ([]domain.CategorySpend, error) {
	query := `
		SELECT
			c.category_id,
			c.name AS category_name,
			SUM(t.amount) AS total
		FROM transactions t
		JOIN categories c ON t.category_id = c.category_id
		WHERE t.user_id = $1
			AND t.type = 'OUT'
			AND t.date BETWEEN $2 AND $3
		GROUP BY c.category_id, c.name
		ORDER BY total DESC
	`

	rows, err := r.Pool.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying category breakdown: %w", err)
	}
	defer rows.Close()

	var result []domain.CategorySpend
	for rows.Next() {
		var row domain.CategorySpend
		if err := rows.Scan(&row.CategoryID, &row.CategoryName, &row.Total); err != nil {
			return nil, fmt.Errorf("error scanning category breakdown row: %w", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category breakdown rows: %w", err)
	}

	if len(result) == 0 {
		// Return empty slice instead of nil
		return []domain.CategorySpend{}, nil
	}

	return result, nil
}

// GetDailyExpenseSeries returns per-day expense totals for [from, to].
// Days with no expenses are absent from the series.
func (r *reportingRepository) GetDailyExpenseSeries(ctx context.Context, userID string, from, to time.Time) ([]domain.DailyTotal, error) {
	query := `
		SELECT
			date_trunc('day', date) AS day,
			SUM(amount) AS total
		FROM transactions
		WHERE user_id = $1
			AND type = 'OUT'
			AND date BETWEEN $2 AND $3
		GROUP BY day
		ORDER BY day
	`

	rows, err := r.Pool.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying daily expense series: %w", err)
	}
	defer rows.Close()

	var result []domain.DailyTotal
	for rows.Next() {
		var row domain.DailyTotal
		if err := rows.Scan(&row.Date, &row.Total); err != nil {
			return nil, fmt.Errorf("error scanning daily expense row: %w", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating daily expense rows: %w", err)
	}

	if len(result) == 0 {
		return []domain.DailyTotal{}, nil
	}

	return result, nil
}
