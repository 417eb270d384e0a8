package services

import (
	"context"
	"time"

	"github.com/taskforcepro/wallet_backend/internal/core/domain"
)

// ReportingSvcFacade exposes the read-side rollups.
type ReportingSvcFacade interface {
	GetPeriodSummary(ctx context.Context, userID string, from, to time.Time) (*domain.PeriodSummary, error)
	GetCategoryBreakdown(ctx context.Context, userID string, from, to time.Time) ([]domain.CategorySpend, error)
	GetDailyExpenseSeries(ctx context.Context, userID string, from, to time.Time) ([]domain.DailyTotal, error)
}
