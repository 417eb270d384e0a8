package domain

import (
	"github.com/shopspring/decimal"
)

// Account represents a source of funds owned by a single user.
//
// Balance is the sum of all posted transactions affecting the account
// (income adds, expense subtracts, outgoing transfer subtracts, incoming
// transfer adds). It is mutated exclusively by the posting workflow; no
// other code path writes it after creation.
type Account struct {
	AccountID string          `json:"accountID"` // Primary Key (UUID)
	UserID    string          `json:"userID"`    // FK -> users.user_id (Not Null)
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance"` // Currency minor-unit precision (2 dp)
	AuditFields
}
