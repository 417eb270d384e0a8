package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/taskforcepro/wallet_backend/internal/apperrors"
	"github.com/taskforcepro/wallet_backend/internal/core/domain"
	portssvc "github.com/taskforcepro/wallet_backend/internal/core/ports/services"
	"github.com/taskforcepro/wallet_backend/internal/core/services"
	"github.com/taskforcepro/wallet_backend/internal/dto"
)

type CategoryServiceTestSuite struct {
	suite.Suite
	mockCategoryRepo *MockCategoryRepository
	mockTxnRepo      *MockTransactionRepository
	mockBudgetRepo   *MockBudgetRepository
	service          portssvc.CategorySvcFacade

	userID string
}

func (suite *CategoryServiceTestSuite) SetupTest() {
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockBudgetRepo = new(MockBudgetRepository)
	suite.service = services.NewCategoryService(suite.mockCategoryRepo, suite.mockTxnRepo, suite.mockBudgetRepo)
	suite.userID = uuid.NewString()
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_Success() {
	ctx := context.Background()
	suite.mockCategoryRepo.On("SaveCategory", mock.Anything, mock.AnythingOfType("domain.Category")).Return(nil).Once()

	category, err := suite.service.CreateCategory(ctx, suite.userID, dto.CreateCategoryRequest{Name: "Groceries"})

	suite.Require().NoError(err)
	suite.NotEmpty(category.CategoryID)
	suite.Equal(suite.userID, category.UserID)
	suite.Nil(category.ParentID)
	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_MissingParentRejected() {
	ctx := context.Background()
	parentID := uuid.NewString()
	suite.mockCategoryRepo.On("FindCategoryByID", mock.Anything, suite.userID, parentID).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateCategory(ctx, suite.userID, dto.CreateCategoryRequest{Name: "Sub", ParentID: &parentID})

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockCategoryRepo.AssertNotCalled(suite.T(), "SaveCategory", mock.Anything, mock.Anything)
}

func (suite *CategoryServiceTestSuite) TestUpdateCategory_SelfParentRejected() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	existing := &domain.Category{CategoryID: categoryID, UserID: suite.userID, Name: "Groceries"}
	suite.mockCategoryRepo.On("FindCategoryByID", mock.Anything, suite.userID, categoryID).Return(existing, nil).Once()

	_, err := suite.service.UpdateCategory(ctx, suite.userID, categoryID, dto.UpdateCategoryRequest{ParentID: &categoryID})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCategoryRepo.AssertNotCalled(suite.T(), "UpdateCategory", mock.Anything, mock.Anything)
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory_BlockedByTransactions() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	existing := &domain.Category{CategoryID: categoryID, UserID: suite.userID, Name: "Groceries"}
	suite.mockCategoryRepo.On("FindCategoryByID", mock.Anything, suite.userID, categoryID).Return(existing, nil).Once()
	suite.mockTxnRepo.On("HasTransactionsForCategory", mock.Anything, suite.userID, categoryID).Return(true, nil).Once()

	err := suite.service.DeleteCategory(ctx, suite.userID, categoryID)

	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockCategoryRepo.AssertNotCalled(suite.T(), "DeleteCategory", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory_BlockedByChildren() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	existing := &domain.Category{CategoryID: categoryID, UserID: suite.userID, Name: "Groceries"}
	child := domain.Category{CategoryID: uuid.NewString(), UserID: suite.userID, Name: "Produce", ParentID: &categoryID}

	suite.mockCategoryRepo.On("FindCategoryByID", mock.Anything, suite.userID, categoryID).Return(existing, nil).Once()
	suite.mockTxnRepo.On("HasTransactionsForCategory", mock.Anything, suite.userID, categoryID).Return(false, nil).Once()
	suite.mockCategoryRepo.On("ListChildCategories", mock.Anything, suite.userID, categoryID).Return([]domain.Category{child}, nil).Once()

	err := suite.service.DeleteCategory(ctx, suite.userID, categoryID)

	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory_BlockedByBudget() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	existing := &domain.Category{CategoryID: categoryID, UserID: suite.userID, Name: "Groceries"}
	budget := domain.Budget{BudgetID: uuid.NewString(), UserID: suite.userID, CategoryID: categoryID}

	suite.mockCategoryRepo.On("FindCategoryByID", mock.Anything, suite.userID, categoryID).Return(existing, nil).Once()
	suite.mockTxnRepo.On("HasTransactionsForCategory", mock.Anything, suite.userID, categoryID).Return(false, nil).Once()
	suite.mockCategoryRepo.On("ListChildCategories", mock.Anything, suite.userID, categoryID).Return([]domain.Category{}, nil).Once()
	suite.mockBudgetRepo.On("ListBudgets", mock.Anything, suite.userID).Return([]domain.Budget{budget}, nil).Once()

	err := suite.service.DeleteCategory(ctx, suite.userID, categoryID)

	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *CategoryServiceTestSuite) TestDeleteCategory_Success() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	existing := &domain.Category{CategoryID: categoryID, UserID: suite.userID, Name: "Groceries"}

	suite.mockCategoryRepo.On("FindCategoryByID", mock.Anything, suite.userID, categoryID).Return(existing, nil).Once()
	suite.mockTxnRepo.On("HasTransactionsForCategory", mock.Anything, suite.userID, categoryID).Return(false, nil).Once()
	suite.mockCategoryRepo.On("ListChildCategories", mock.Anything, suite.userID, categoryID).Return([]domain.Category{}, nil).Once()
	suite.mockBudgetRepo.On("ListBudgets", mock.Anything, suite.userID).Return([]domain.Budget{}, nil).Once()
	suite.mockCategoryRepo.On("DeleteCategory", mock.Anything, suite.userID, categoryID).Return(nil).Once()

	err := suite.service.DeleteCategory(ctx, suite.userID, categoryID)

	suite.Require().NoError(err)
	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

func TestCategoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}
