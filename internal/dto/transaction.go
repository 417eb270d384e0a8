package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/taskforcepro/wallet_backend/internal/core/domain"
)

// CreateTransactionRequest defines the data needed to post a transaction.
// ToAccountID is required for TRANSFER and forbidden otherwise; CategoryID
// is optional and ignored for transfers.
type CreateTransactionRequest struct {
	AccountID   string                 `json:"accountID" binding:"required"`
	CategoryID  *string                `json:"categoryID"`
	Amount      decimal.Decimal        `json:"amount" binding:"required,positivedecimal"`
	Date        time.Time              `json:"date" binding:"required"`
	Description string                 `json:"description"`
	Type        domain.TransactionType `json:"type" binding:"required,transactiontype"`
	ToAccountID *string                `json:"toAccountID"`
}

// ListTransactionsParams captures the filters and pagination inputs for
// listing transactions. All filters are optional and combine with AND.
type ListTransactionsParams struct {
	AccountID  *string                 `form:"accountID"`
	CategoryID *string                 `form:"categoryID"`
	Type       *domain.TransactionType `form:"type"`
	DateFrom   *time.Time              `form:"dateFrom" time_format:"2006-01-02"`
	DateTo     *time.Time              `form:"dateTo" time_format:"2006-01-02"`
	AmountMin  *decimal.Decimal        `form:"amountMin"`
	AmountMax  *decimal.Decimal        `form:"amountMax"`
	Limit      int                     `form:"limit"`
	NextToken  *string                 `form:"nextToken"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string                 `json:"transactionID"`
	AccountID     string                 `json:"accountID"`
	CategoryID    *string                `json:"categoryID,omitempty"`
	Amount        decimal.Decimal        `json:"amount"`
	Date          time.Time              `json:"date"`
	Description   string                 `json:"description"`
	Type          domain.TransactionType `json:"type"`
	ToAccountID   *string                `json:"toAccountID,omitempty"`
	CreatedAt     time.Time              `json:"createdAt"`
}

// ListTransactionsResponse wraps a page of transactions along with the
// token for fetching the next page.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// PostingResponse is returned after a successful posting. Notification is
// present only when the posting pushed a budget past its trigger amount.
// BudgetEvaluationError reports a budget check that failed after the
// transaction was already committed.
type PostingResponse struct {
	Transaction           TransactionResponse   `json:"transaction"`
	Notification          *NotificationResponse `json:"notification,omitempty"`
	BudgetEvaluationError *string               `json:"budgetEvaluationError,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		AccountID:     txn.AccountID,
		CategoryID:    txn.CategoryID,
		Amount:        txn.Amount,
		Date:          txn.Date,
		Description:   txn.Description,
		Type:          txn.Type,
		ToAccountID:   txn.ToAccountID,
		CreatedAt:     txn.CreatedAt,
	}
}

// ToListTransactionsResponse converts a page of domain transactions.
func ToListTransactionsResponse(txns []domain.Transaction, nextToken *string) *ListTransactionsResponse {
	res := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		res[i] = ToTransactionResponse(&txn)
	}
	return &ListTransactionsResponse{Transactions: res, NextToken: nextToken}
}
