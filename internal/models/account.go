package models

import "github.com/shopspring/decimal"

// Account mirrors the accounts table.
type Account struct {
	AccountID string          `db:"account_id"`
	UserID    string          `db:"user_id"`
	Name      string          `db:"name"`
	Balance   decimal.Decimal `db:"balance"`
	AuditFields
}
