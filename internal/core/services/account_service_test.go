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

type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockTxnRepo     *MockTransactionRepository
	service         portssvc.AccountSvcFacade

	userID string
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.service = services.NewAccountService(suite.mockAccountRepo, suite.mockTxnRepo)
	suite.userID = uuid.NewString()
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Name:           "Savings",
		InitialBalance: decimal.NewFromInt(1200),
	}

	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.NotEmpty(account.AccountID)
	suite.Equal(suite.userID, account.UserID)
	suite.Equal("Savings", account.Name)
	suite.True(account.Balance.Equal(decimal.NewFromInt(1200)))
	suite.WithinDuration(time.Now(), account.CreatedAt, time.Second)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_BlankNameRejected() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{Name: "   "}

	_, err := suite.service.CreateAccount(ctx, suite.userID, req)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_RenamesOnly() {
	ctx := context.Background()
	accountID := uuid.NewString()
	existing := &domain.Account{
		AccountID: accountID,
		UserID:    suite.userID,
		Name:      "Old Name",
		Balance:   decimal.NewFromInt(300),
	}

	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.userID, accountID).Return(existing, nil).Once()
	suite.mockAccountRepo.On("UpdateAccount", mock.Anything, mock.MatchedBy(func(a domain.Account) bool {
		// The balance must ride along untouched.
		return a.Name == "New Name" && a.Balance.Equal(decimal.NewFromInt(300))
	})).Return(nil).Once()

	newName := "New Name"
	account, err := suite.service.UpdateAccount(ctx, suite.userID, accountID, dto.UpdateAccountRequest{Name: &newName})

	suite.Require().NoError(err)
	suite.Equal("New Name", account.Name)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_BlockedByTransactions() {
	ctx := context.Background()
	accountID := uuid.NewString()
	existing := &domain.Account{AccountID: accountID, UserID: suite.userID, Name: "Checking"}

	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.userID, accountID).Return(existing, nil).Once()
	suite.mockTxnRepo.On("HasTransactionsForAccount", mock.Anything, suite.userID, accountID).Return(true, nil).Once()

	err := suite.service.DeleteAccount(ctx, suite.userID, accountID)

	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "DeleteAccount", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_Success() {
	ctx := context.Background()
	accountID := uuid.NewString()
	existing := &domain.Account{AccountID: accountID, UserID: suite.userID, Name: "Checking"}

	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.userID, accountID).Return(existing, nil).Once()
	suite.mockTxnRepo.On("HasTransactionsForAccount", mock.Anything, suite.userID, accountID).Return(false, nil).Once()
	suite.mockAccountRepo.On("DeleteAccount", mock.Anything, suite.userID, accountID).Return(nil).Once()

	err := suite.service.DeleteAccount(ctx, suite.userID, accountID)

	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccount_NotFoundPassesThrough() {
	ctx := context.Background()
	accountID := uuid.NewString()
	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.userID, accountID).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetAccountByID(ctx, suite.userID, accountID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
