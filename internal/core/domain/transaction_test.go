package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/taskforcepro/wallet_backend/internal/core/domain"
)

func stringPtr(s string) *string {
	return &s
}

func TestTransactionType_Valid(t *testing.T) {
	tests := []struct {
		name string
		typ  domain.TransactionType
		want bool
	}{
		{name: "income", typ: domain.Income, want: true},
		{name: "expense", typ: domain.Expense, want: true},
		{name: "transfer", typ: domain.Transfer, want: true},
		{name: "empty", typ: domain.TransactionType(""), want: false},
		{name: "lowercase", typ: domain.TransactionType("in"), want: false},
		{name: "unknown", typ: domain.TransactionType("WITHDRAWAL"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.typ.Valid())
		})
	}
}

func TestTransaction_BalanceChanges(t *testing.T) {
	tests := []struct {
		name        string
		transaction domain.Transaction
		want        map[string]decimal.Decimal
	}{
		{
			name: "income credits the account",
			transaction: domain.Transaction{
				AccountID: "acc-1",
				Amount:    decimal.NewFromInt(100),
				Type:      domain.Income,
			},
			want: map[string]decimal.Decimal{"acc-1": decimal.NewFromInt(100)},
		},
		{
			name: "expense debits the account",
			transaction: domain.Transaction{
				AccountID: "acc-1",
				Amount:    decimal.NewFromInt(40),
				Type:      domain.Expense,
			},
			want: map[string]decimal.Decimal{"acc-1": decimal.NewFromInt(-40)},
		},
		{
			name: "transfer moves between accounts",
			transaction: domain.Transaction{
				AccountID:   "acc-1",
				ToAccountID: stringPtr("acc-2"),
				Amount:      decimal.NewFromInt(75),
				Type:        domain.Transfer,
			},
			want: map[string]decimal.Decimal{
				"acc-1": decimal.NewFromInt(-75),
				"acc-2": decimal.NewFromInt(75),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.transaction.BalanceChanges()
			assert.Len(t, got, len(tt.want))
			for accountID, want := range tt.want {
				assert.True(t, got[accountID].Equal(want), "account %s: want %s got %s", accountID, want, got[accountID])
			}
		})
	}
}
