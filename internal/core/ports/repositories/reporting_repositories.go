package repositories

import (
	"context"
	"time"

	"github.com/taskforcepro/wallet_backend/internal/core/domain"
)

// ReportingRepository defines the read-side aggregation queries. Pure
// rollups: no invariant beyond correct summation.
type ReportingRepository interface {
	// GetPeriodSummary returns income/expense totals for [from, to].
	GetPeriodSummary(ctx context.Context, userID string, from, to time.Time) (*domain.PeriodSummary, error)

	// GetCategoryBreakdown returns expense totals per category for [from, to].
	GetCategoryBreakdown(ctx context.Context, userID string, from, to time.Time) ([]domain.CategorySpend, error)

	// GetDailyExpenseSeries returns per-day expense totals for [from, to].
	GetDailyExpenseSeries(ctx context.Context, userID string, from, to time.Time) ([]domain.DailyTotal, error)
}
