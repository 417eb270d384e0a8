package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/taskforcepro/wallet_backend/internal/core/domain"
)

// TransactionFilter narrows a transaction listing. Nil fields are ignored.
type TransactionFilter struct {
	AccountID  *string
	CategoryID *string
	Type       *domain.TransactionType
	DateFrom   *time.Time
	DateTo     *time.Time
	AmountMin  *decimal.Decimal
	AmountMax  *decimal.Decimal
}

// TransactionReader defines read operations for transaction data.
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction owned by userID.
	FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a filtered, cursor-paginated list of
	// transactions owned by userID, newest first. It returns the
	// transactions, a token for the next page, and an error.
	ListTransactions(ctx context.Context, userID string, filter TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error)

	// SumExpensesByCategory returns the total of Expense transactions for a
	// category within the inclusive date range [from, to].
	SumExpensesByCategory(ctx context.Context, userID, categoryID string, from, to time.Time) (decimal.Decimal, error)

	// HasTransactionsForAccount reports whether any transaction references
	// the account as source or transfer destination.
	HasTransactionsForAccount(ctx context.Context, userID, accountID string) (bool, error)

	// HasTransactionsForCategory reports whether any transaction references
	// the category.
	HasTransactionsForCategory(ctx context.Context, userID, categoryID string) (bool, error)
}

// TransactionWriter defines write operations for transaction data. Postings
// are immutable: there is no update operation.
type TransactionWriter interface {
	// SaveTransaction inserts the transaction and applies balanceChanges to
	// the affected accounts in one database transaction. Either everything
	// commits or nothing does.
	SaveTransaction(ctx context.Context, txn domain.Transaction, balanceChanges map[string]decimal.Decimal) error

	// DeleteTransaction removes the transaction row and applies
	// balanceChanges (the inverse of the original posting) atomically.
	DeleteTransaction(ctx context.Context, txn domain.Transaction, balanceChanges map[string]decimal.Decimal) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
