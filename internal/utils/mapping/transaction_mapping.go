package mapping

import (
	"github.com/taskforcepro/wallet_backend/internal/core/domain"
	"github.com/taskforcepro/wallet_backend/internal/models"
)

// ToModelTransaction converts a domain.Transaction for DB storage.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		UserID:        d.UserID,
		AccountID:     d.AccountID,
		CategoryID:    d.CategoryID,
		Amount:        d.Amount,
		Date:          d.Date,
		Description:   d.Description,
		Type:          models.TransactionType(d.Type),
		ToAccountID:   d.ToAccountID,
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainTransaction converts a models.Transaction from the DB.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		UserID:        m.UserID,
		AccountID:     m.AccountID,
		CategoryID:    m.CategoryID,
		Amount:        m.Amount,
		Date:          m.Date,
		Description:   m.Description,
		Type:          domain.TransactionType(m.Type),
		ToAccountID:   m.ToAccountID,
		CreatedAt:     m.CreatedAt,
	}
}

// ToDomainTransactionSlice converts a slice of models.Transaction.
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
