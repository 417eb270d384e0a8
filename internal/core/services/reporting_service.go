package services

import (
	"context"
	"fmt"
	"time"

	"github.com/taskforcepro/wallet_backend/internal/apperrors"
	"github.com/taskforcepro/wallet_backend/internal/core/domain"
	portsrepo "github.com/taskforcepro/wallet_backend/internal/core/ports/repositories"
	portssvc "github.com/taskforcepro/wallet_backend/internal/core/ports/services"
)

// reportingService exposes the read-side rollups.
type reportingService struct {
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo}
}

// Ensure reportingService implements the portssvc.ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func validatePeriod(from, to time.Time) error {
	if from.After(to) {
		return fmt.Errorf("%w: from must not be after to", apperrors.ErrValidation)
	}
	return nil
}

// GetPeriodSummary returns income/expense totals for [from, to].
func (s *reportingService) GetPeriodSummary(ctx context.Context, userID string, from, to time.Time) (*domain.PeriodSummary, error) {
	if err := validatePeriod(from, to); err != nil {
		return nil, err
	}
	return s.reportingRepo.GetPeriodSummary(ctx, userID, from, to)
}

// GetCategoryBreakdown returns expense totals per category for [from, to].
func (s *reportingService) GetCategoryBreakdown(ctx context.Context, userID string, from, to time.Time) ([]domain.CategorySpend, error) {
	if err := validatePeriod(from, to); err != nil {
		return nil, err
	}
	return s.reportingRepo.GetCategoryBreakdown(ctx, userID, from, to)
}

// GetDailyExpenseSeries returns per-day expense totals for [from, to].
func (s *reportingService) GetDailyExpenseSeries(ctx context.Context, userID string, from, to time.Time) ([]domain.DailyTotal, error) {
	if err := validatePeriod(from, to); err != nil {
		return nil, err
	}
	return s.reportingRepo.GetDailyExpenseSeries(ctx, userID, from, to)
}
