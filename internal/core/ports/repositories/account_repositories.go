package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/taskforcepro/wallet_backend/internal/core/domain"
)

// AccountReader defines read operations for account data. All lookups are
// owner-scoped: an account belonging to another user is reported as not found.
type AccountReader interface {
	// FindAccountByID retrieves a specific account owned by userID.
	FindAccountByID(ctx context.Context, userID, accountID string) (*domain.Account, error)

	// ListAccounts retrieves all accounts owned by userID, ordered by name.
	ListAccounts(ctx context.Context, userID string) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data.
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount updates an existing account's name. Balance is never
	// written here; only the posting workflow mutates it.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeleteAccount removes an account owned by userID. Implementations must
	// fail with ErrConflict while transactions still reference the account.
	DeleteAccount(ctx context.Context, userID, accountID string) error
}

// AccountPostingSupport defines the operations the posting workflow needs to
// mutate balances atomically.
type AccountPostingSupport interface {
	// FindAccountsByIDsForUpdate selects the accounts and locks their rows
	// for update. Must be called within a transaction. All requested
	// accounts must exist and belong to userID or ErrNotFound is returned.
	FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, userID string, accountIDs []string) (map[string]domain.Account, error)

	// ApplyBalanceChangesInTx applies per-account balance deltas within tx.
	ApplyBalanceChangesInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal, now time.Time) error
}

// AccountRepositoryFacade combines all account-related repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountPostingSupport
}
