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
	"github.com/taskforcepro/wallet_backend/internal/dto"
)

type BudgetServiceTestSuite struct {
	suite.Suite
	mockBudgetRepo   *MockBudgetRepository
	mockCategoryRepo *MockCategoryRepository
	service          portssvc.BudgetSvcFacade

	userID     string
	categoryID string
}

func (suite *BudgetServiceTestSuite) SetupTest() {
	suite.mockBudgetRepo = new(MockBudgetRepository)
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.service = services.NewBudgetService(suite.mockBudgetRepo, suite.mockCategoryRepo)
	suite.userID = uuid.NewString()
	suite.categoryID = uuid.NewString()
}

func (suite *BudgetServiceTestSuite) expectCategory() {
	category := &domain.Category{CategoryID: suite.categoryID, UserID: suite.userID, Name: "Groceries"}
	suite.mockCategoryRepo.On("FindCategoryByID", mock.Anything, suite.userID, suite.categoryID).Return(category, nil)
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_DefaultsThreshold() {
	ctx := context.Background()
	suite.expectCategory()
	suite.mockBudgetRepo.On("FindOverlappingBudget", mock.Anything, suite.userID, suite.categoryID, mock.Anything, mock.Anything, "").Return(nil, nil).Once()
	suite.mockBudgetRepo.On("SaveBudget", mock.Anything, mock.AnythingOfType("domain.Budget")).Return(nil).Once()

	req := dto.CreateBudgetRequest{
		CategoryID: suite.categoryID,
		Limit:      decimal.NewFromInt(500),
		StartDate:  time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC),
	}

	budget, err := suite.service.CreateBudget(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(budget)
	suite.True(budget.NotificationThreshold.Equal(domain.DefaultNotificationThreshold))
	suite.mockBudgetRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_NormalizesDatesToDay() {
	ctx := context.Background()
	suite.expectCategory()

	startDay := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	endDay := time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC)
	suite.mockBudgetRepo.On("FindOverlappingBudget", mock.Anything, suite.userID, suite.categoryID, startDay, endDay, "").Return(nil, nil).Once()
	suite.mockBudgetRepo.On("SaveBudget", mock.Anything, mock.MatchedBy(func(b domain.Budget) bool {
		return b.StartDate.Equal(startDay) && b.EndDate.Equal(endDay)
	})).Return(nil).Once()

	// Clients may send full RFC3339 timestamps; only the calendar day counts.
	req := dto.CreateBudgetRequest{
		CategoryID: suite.categoryID,
		Limit:      decimal.NewFromInt(500),
		StartDate:  time.Date(2025, 4, 1, 9, 15, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 4, 30, 23, 45, 0, 0, time.UTC),
	}

	budget, err := suite.service.CreateBudget(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.True(budget.StartDate.Equal(startDay))
	suite.True(budget.EndDate.Equal(endDay))
	suite.mockBudgetRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_OverlapRejected() {
	ctx := context.Background()
	suite.expectCategory()
	existing := &domain.Budget{BudgetID: uuid.NewString(), CategoryID: suite.categoryID}
	suite.mockBudgetRepo.On("FindOverlappingBudget", mock.Anything, suite.userID, suite.categoryID, mock.Anything, mock.Anything, "").Return(existing, nil).Once()

	req := dto.CreateBudgetRequest{
		CategoryID: suite.categoryID,
		Limit:      decimal.NewFromInt(500),
		StartDate:  time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC),
	}

	_, err := suite.service.CreateBudget(ctx, suite.userID, req)

	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockBudgetRepo.AssertNotCalled(suite.T(), "SaveBudget", mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_InvertedDatesRejected() {
	ctx := context.Background()
	suite.expectCategory()

	req := dto.CreateBudgetRequest{
		CategoryID: suite.categoryID,
		Limit:      decimal.NewFromInt(500),
		StartDate:  time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
	}

	_, err := suite.service.CreateBudget(ctx, suite.userID, req)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorContains(err, services.ErrBudgetDatesInverted.Error())
	suite.mockBudgetRepo.AssertNotCalled(suite.T(), "SaveBudget", mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_ThresholdOutOfRangeRejected() {
	ctx := context.Background()
	suite.expectCategory()
	threshold := decimal.NewFromInt(150)

	req := dto.CreateBudgetRequest{
		CategoryID:            suite.categoryID,
		Limit:                 decimal.NewFromInt(500),
		StartDate:             time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		EndDate:               time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC),
		NotificationThreshold: &threshold,
	}

	_, err := suite.service.CreateBudget(ctx, suite.userID, req)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_MissingCategoryRejected() {
	ctx := context.Background()
	suite.mockCategoryRepo.On("FindCategoryByID", mock.Anything, suite.userID, suite.categoryID).
		Return(nil, apperrors.ErrNotFound)

	req := dto.CreateBudgetRequest{
		CategoryID: suite.categoryID,
		Limit:      decimal.NewFromInt(500),
		StartDate:  time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC),
	}

	_, err := suite.service.CreateBudget(ctx, suite.userID, req)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *BudgetServiceTestSuite) TestUpdateBudget_ReChecksOverlapExcludingSelf() {
	ctx := context.Background()
	budgetID := uuid.NewString()
	existing := &domain.Budget{
		BudgetID:              budgetID,
		UserID:                suite.userID,
		CategoryID:            suite.categoryID,
		Limit:                 decimal.NewFromInt(500),
		StartDate:             time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		EndDate:               time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC),
		NotificationThreshold: decimal.NewFromInt(80),
	}

	suite.mockBudgetRepo.On("FindBudgetByID", mock.Anything, suite.userID, budgetID).Return(existing, nil).Once()
	suite.mockBudgetRepo.On("FindOverlappingBudget", mock.Anything, suite.userID, suite.categoryID, mock.Anything, mock.Anything, budgetID).Return(nil, nil).Once()
	suite.mockBudgetRepo.On("UpdateBudget", mock.Anything, mock.MatchedBy(func(b domain.Budget) bool {
		return b.Limit.Equal(decimal.NewFromInt(750))
	})).Return(nil).Once()

	newLimit := decimal.NewFromInt(750)
	updated, err := suite.service.UpdateBudget(ctx, suite.userID, budgetID, dto.UpdateBudgetRequest{Limit: &newLimit})

	suite.Require().NoError(err)
	suite.True(updated.Limit.Equal(newLimit))
	suite.mockBudgetRepo.AssertExpectations(suite.T())
}

func TestBudgetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}
