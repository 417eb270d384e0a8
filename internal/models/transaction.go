package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType mirrors the transaction type column values.
type TransactionType string

const (
	Income   TransactionType = "IN"
	Expense  TransactionType = "OUT"
	Transfer TransactionType = "TRANSFER"
)

// Transaction mirrors the transactions table. CategoryID and ToAccountID
// are nullable; Amount is always positive.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	UserID        string          `db:"user_id"`
	AccountID     string          `db:"account_id"`
	CategoryID    *string         `db:"category_id"`
	Amount        decimal.Decimal `db:"amount"`
	Date          time.Time       `db:"date"`
	Description   string          `db:"description"`
	Type          TransactionType `db:"type"`
	ToAccountID   *string         `db:"to_account_id"`
	CreatedAt     time.Time       `db:"created_at"`
}
