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
	"github.com/taskforcepro/wallet_backend/internal/utils"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

func (suite *UserServiceTestSuite) TestRegisterUser_NormalizesEmail() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByEmail", mock.Anything, "jane@example.com").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "jane@example.com" && u.AuthProvider == domain.ProviderLocal && u.PasswordHash != ""
	})).Return(nil).Once()

	user, err := suite.service.RegisterUser(ctx, dto.RegisterUserRequest{
		Name:     "Jane",
		Email:    "  Jane@Example.COM ",
		Password: "hunter2hunter2",
	})

	suite.Require().NoError(err)
	suite.Equal("jane@example.com", user.Email)
	suite.NotEqual("hunter2hunter2", user.PasswordHash)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterUser_DuplicateEmailRejected() {
	ctx := context.Background()
	existing := &domain.User{UserID: uuid.NewString(), Email: "jane@example.com"}
	suite.mockUserRepo.On("FindUserByEmail", mock.Anything, "jane@example.com").Return(existing, nil).Once()

	_, err := suite.service.RegisterUser(ctx, dto.RegisterUserRequest{
		Name:     "Jane",
		Email:    "jane@example.com",
		Password: "hunter2hunter2",
	})

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-password")
	suite.Require().NoError(err)

	user := &domain.User{
		UserID:       uuid.NewString(),
		Email:        "jane@example.com",
		PasswordHash: hash,
		AuthProvider: domain.ProviderLocal,
	}
	suite.mockUserRepo.On("FindUserByEmail", mock.Anything, "jane@example.com").Return(user, nil).Once()

	_, err = suite.service.AuthenticateUser(ctx, "jane@example.com", "wrong-password")

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-password")
	suite.Require().NoError(err)

	user := &domain.User{
		UserID:       uuid.NewString(),
		Email:        "jane@example.com",
		PasswordHash: hash,
		AuthProvider: domain.ProviderLocal,
	}
	suite.mockUserRepo.On("FindUserByEmail", mock.Anything, "jane@example.com").Return(user, nil).Once()

	authenticated, err := suite.service.AuthenticateUser(ctx, "jane@example.com", "correct-password")

	suite.Require().NoError(err)
	suite.Equal(user.UserID, authenticated.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_GoogleUserCannotPasswordLogin() {
	ctx := context.Background()
	user := &domain.User{
		UserID:       uuid.NewString(),
		Email:        "jane@example.com",
		AuthProvider: domain.ProviderGoogle,
	}
	suite.mockUserRepo.On("FindUserByEmail", mock.Anything, "jane@example.com").Return(user, nil).Once()

	_, err := suite.service.AuthenticateUser(ctx, "jane@example.com", "anything")

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUser_LinksExistingByEmail() {
	ctx := context.Background()
	providerID := "google-sub-123"
	existing := &domain.User{
		UserID:       uuid.NewString(),
		Email:        "jane@example.com",
		AuthProvider: domain.ProviderLocal,
	}

	suite.mockUserRepo.On("FindUserByProviderID", mock.Anything, domain.ProviderGoogle, providerID).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByEmail", mock.Anything, "jane@example.com").Return(existing, nil).Once()

	user, err := suite.service.FindOrCreateGoogleUser(ctx, providerID, "jane@example.com", "Jane")

	suite.Require().NoError(err)
	suite.Equal(existing.UserID, user.UserID)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUser_CreatesNewUser() {
	ctx := context.Background()
	providerID := "google-sub-456"

	suite.mockUserRepo.On("FindUserByProviderID", mock.Anything, domain.ProviderGoogle, providerID).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByEmail", mock.Anything, "new@example.com").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		return u.AuthProvider == domain.ProviderGoogle && u.ProviderID == providerID && u.Email == "new@example.com"
	})).Return(nil).Once()

	user, err := suite.service.FindOrCreateGoogleUser(ctx, providerID, "new@example.com", "New User")

	suite.Require().NoError(err)
	suite.Equal(domain.ProviderGoogle, user.AuthProvider)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
