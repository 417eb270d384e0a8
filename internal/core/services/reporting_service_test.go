package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/taskforcepro/wallet_backend/internal/apperrors"
	"github.com/taskforcepro/wallet_backend/internal/core/domain"
	portssvc "github.com/taskforcepro/wallet_backend/internal/core/ports/services"
	"github.com/taskforcepro/wallet_backend/internal/core/services"
)

// MockReportingRepository is a mock type for the ReportingRepository interface
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetPeriodSummary(ctx context.Context, userID string, from, to time.Time) (*domain.PeriodSummary, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PeriodSummary), args.Error(1)
}

func (m *MockReportingRepository) GetCategoryBreakdown(ctx context.Context, userID string, from, to time.Time) ([]domain.CategorySpend, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategorySpend), args.Error(1)
}

func (m *MockReportingRepository) GetDailyExpenseSeries(ctx context.Context, userID string, from, to time.Time) ([]domain.DailyTotal, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyTotal), args.Error(1)
}

type ReportingServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	service           portssvc.ReportingSvcFacade

	userID string
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.service = services.NewReportingService(suite.mockReportingRepo)
	suite.userID = uuid.NewString()
}

func (suite *ReportingServiceTestSuite) TestGetPeriodSummary_Success() {
	ctx := context.Background()
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	summary := &domain.PeriodSummary{
		TotalIncome:  decimal.NewFromInt(1000),
		TotalExpense: decimal.NewFromInt(400),
		Net:          decimal.NewFromInt(600),
	}
	suite.mockReportingRepo.On("GetPeriodSummary", mock.Anything, suite.userID, from, to).Return(summary, nil).Once()

	got, err := suite.service.GetPeriodSummary(ctx, suite.userID, from, to)

	suite.Require().NoError(err)
	suite.True(got.Net.Equal(decimal.NewFromInt(600)))
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestInvertedPeriodRejected() {
	ctx := context.Background()
	from := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	_, err := suite.service.GetPeriodSummary(ctx, suite.userID, from, to)
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.GetCategoryBreakdown(ctx, suite.userID, from, to)
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.GetDailyExpenseSeries(ctx, suite.userID, from, to)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockReportingRepo.AssertNotCalled(suite.T(), "GetPeriodSummary", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
