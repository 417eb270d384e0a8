package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType determines the sign behavior of a transaction's amount.
type TransactionType string

const (
	Income   TransactionType = "IN"
	Expense  TransactionType = "OUT"
	Transfer TransactionType = "TRANSFER"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	switch t {
	case Income, Expense, Transfer:
		return true
	}
	return false
}

// Transaction is an immutable posting against one account (two for
// transfers). Amount is always stored positive; the balance effect is
// encoded by Type. Once created a transaction's effect on balances has been
// applied; there is no update operation, and deletion reverses the balance
// effect atomically with the row delete.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	UserID        string          `json:"userID"`        // FK -> users.user_id (Not Null)
	AccountID     string          `json:"accountID"`     // FK -> accounts.account_id (Not Null)
	CategoryID    *string         `json:"categoryID,omitempty"`
	Amount        decimal.Decimal `json:"amount"` // Positive magnitude
	Date          time.Time       `json:"date"`
	Description   string          `json:"description"`
	Type          TransactionType `json:"type"`
	ToAccountID   *string         `json:"toAccountID,omitempty"` // Required iff Type == Transfer

	CreatedAt time.Time `json:"createdAt"`
}

// BalanceChanges returns the net balance delta per account id this
// transaction implies when posted. Negate the deltas to reverse it.
func (t Transaction) BalanceChanges() map[string]decimal.Decimal {
	changes := make(map[string]decimal.Decimal, 2)
	switch t.Type {
	case Income:
		changes[t.AccountID] = t.Amount
	case Expense:
		changes[t.AccountID] = t.Amount.Neg()
	case Transfer:
		changes[t.AccountID] = t.Amount.Neg()
		if t.ToAccountID != nil {
			changes[*t.ToAccountID] = t.Amount
		}
	}
	return changes
}
