package services

import (
	"context"

	"github.com/taskforcepro/wallet_backend/internal/core/domain"
	"github.com/taskforcepro/wallet_backend/internal/dto"
)

// PostingResult is the outcome of posting a transaction. The posting itself
// either fully succeeded or the call returned an error; budget evaluation is
// a secondary outcome that never rolls the posting back.
type PostingResult struct {
	Transaction domain.Transaction

	// Notification is set when this posting crossed the budget's
	// notification trigger amount.
	Notification *domain.BudgetNotification

	// BudgetEvaluationErr is non-nil when the posting committed but budget
	// evaluation failed afterwards. Callers must surface it rather than
	// treat the posting as an unqualified success.
	BudgetEvaluationErr error
}

// TransactionSvcFacade is the posting workflow: the only sanctioned way to
// create a Transaction and mutate account balances.
type TransactionSvcFacade interface {
	// PostTransaction validates the request, applies the balance effect
	// atomically with the transaction insert, then evaluates the relevant
	// budget (Expense postings with a category only).
	PostTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*PostingResult, error)

	GetTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)

	// DeleteTransaction removes a posting and reverses its balance effect
	// atomically with the delete.
	DeleteTransaction(ctx context.Context, userID, transactionID string) error
}
