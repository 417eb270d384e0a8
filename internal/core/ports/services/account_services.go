package services

import (
	"context"

	"github.com/taskforcepro/wallet_backend/internal/core/domain"
	"github.com/taskforcepro/wallet_backend/internal/dto"
)

// AccountSvcFacade defines the account operations exposed to handlers and
// to the posting workflow. Every call is scoped to the authenticated user.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.Account, error)
	GetAccountByID(ctx context.Context, userID, accountID string) (*domain.Account, error)
	ListAccounts(ctx context.Context, userID string) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, userID, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)
	// DeleteAccount removes an account; fails with ErrConflict while
	// transactions still reference it (restrict policy).
	DeleteAccount(ctx context.Context, userID, accountID string) error
}
