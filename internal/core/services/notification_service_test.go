package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/taskforcepro/wallet_backend/internal/apperrors"
	"github.com/taskforcepro/wallet_backend/internal/core/domain"
	portssvc "github.com/taskforcepro/wallet_backend/internal/core/ports/services"
	"github.com/taskforcepro/wallet_backend/internal/core/services"
)

type NotificationServiceTestSuite struct {
	suite.Suite
	mockNotificationRepo *MockNotificationRepository
	service              portssvc.NotificationSvcFacade

	userID string
}

func (suite *NotificationServiceTestSuite) SetupTest() {
	suite.mockNotificationRepo = new(MockNotificationRepository)
	suite.service = services.NewNotificationService(suite.mockNotificationRepo)
	suite.userID = uuid.NewString()
}

func (suite *NotificationServiceTestSuite) TestListNotifications_UnreadOnly() {
	ctx := context.Background()
	unread := domain.BudgetNotification{
		NotificationID: uuid.NewString(),
		UserID:         suite.userID,
		BudgetID:       uuid.NewString(),
		Message:        "Budget exceeded for Groceries. Limit: 100.00, Spent: 110.00",
		CreatedAt:      time.Now().UTC(),
	}
	suite.mockNotificationRepo.On("ListNotifications", mock.Anything, suite.userID, true).
		Return([]domain.BudgetNotification{unread}, nil).Once()

	notifications, err := suite.service.ListNotifications(ctx, suite.userID, true)

	suite.Require().NoError(err)
	suite.Len(notifications, 1)
	suite.False(notifications[0].Read)
	suite.mockNotificationRepo.AssertExpectations(suite.T())
}

func (suite *NotificationServiceTestSuite) TestMarkNotificationRead_ReturnsUpdated() {
	ctx := context.Background()
	notificationID := uuid.NewString()
	updated := &domain.BudgetNotification{
		NotificationID: notificationID,
		UserID:         suite.userID,
		Read:           true,
	}

	suite.mockNotificationRepo.On("MarkNotificationRead", mock.Anything, suite.userID, notificationID).Return(nil).Once()
	suite.mockNotificationRepo.On("FindNotificationByID", mock.Anything, suite.userID, notificationID).Return(updated, nil).Once()

	notification, err := suite.service.MarkNotificationRead(ctx, suite.userID, notificationID)

	suite.Require().NoError(err)
	suite.True(notification.Read)
	suite.mockNotificationRepo.AssertExpectations(suite.T())
}

func (suite *NotificationServiceTestSuite) TestMarkNotificationRead_NotFound() {
	ctx := context.Background()
	notificationID := uuid.NewString()
	suite.mockNotificationRepo.On("MarkNotificationRead", mock.Anything, suite.userID, notificationID).
		Return(apperrors.ErrNotFound).Once()

	_, err := suite.service.MarkNotificationRead(ctx, suite.userID, notificationID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockNotificationRepo.AssertNotCalled(suite.T(), "FindNotificationByID", mock.Anything, mock.Anything, mock.Anything)
}

func TestNotificationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationServiceTestSuite))
}
