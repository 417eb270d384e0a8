package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/taskforcepro/wallet_backend/internal/apperrors"
	"github.com/taskforcepro/wallet_backend/internal/core/domain"
	portsrepo "github.com/taskforcepro/wallet_backend/internal/core/ports/repositories"
	"github.com/taskforcepro/wallet_backend/internal/models"
	"github.com/taskforcepro/wallet_backend/internal/utils/mapping"
	"github.com/taskforcepro/wallet_backend/internal/utils/pagination"
)

type PgxTransactionRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountPostingSupport
}

// newPgxTransactionRepository creates a new repository for transaction data.
// It needs the account repository for the balance side of a posting.
func newPgxTransactionRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountPostingSupport) *PgxTransactionRepository {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, user_id, account_id, category_id, amount, date, description, type, to_account_id, created_at`

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.UserID,
		&m.AccountID,
		&m.CategoryID,
		&m.Amount,
		&m.Date,
		&m.Description,
		&m.Type,
		&m.ToAccountID,
		&m.CreatedAt,
	)
	return m, err
}

// SaveTransaction inserts the transaction row and applies the balance deltas
// to the affected accounts inside a single database transaction. Either the
// row and every balance update commit together, or none of them do.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, balanceChanges map[string]decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	// Ignored if the transaction commits first.
	defer r.Rollback(ctx, tx)

	modelTxn := mapping.ToModelTransaction(txn)

	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, query,
		modelTxn.TransactionID,
		modelTxn.UserID,
		modelTxn.AccountID,
		modelTxn.CategoryID,
		modelTxn.Amount,
		modelTxn.Date,
		modelTxn.Description,
		modelTxn.Type,
		modelTxn.ToAccountID,
		modelTxn.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // Unique violation
				return fmt.Errorf("%w: transaction with ID %s already exists", apperrors.ErrDuplicate, modelTxn.TransactionID)
			case "23503": // Foreign key violation
				return fmt.Errorf("%w: referenced account or category not found", apperrors.ErrNotFound)
			}
		}
		return apperrors.NewAppError(500, "failed to insert transaction "+modelTxn.TransactionID, err)
	}

	if err := r.applyBalanceChanges(ctx, tx, txn.UserID, balanceChanges, txn.CreatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// DeleteTransaction removes the transaction row and applies balanceChanges
// (the inverse of the original posting) atomically.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, txn domain.Transaction, balanceChanges map[string]decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `DELETE FROM transactions WHERE transaction_id = $1 AND user_id = $2;`

	cmdTag, err := tx.Exec(ctx, query, txn.TransactionID, txn.UserID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete transaction "+txn.TransactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := r.applyBalanceChanges(ctx, tx, txn.UserID, balanceChanges, time.Now().UTC()); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// applyBalanceChanges locks the affected account rows and applies the deltas
// within tx.
func (r *PgxTransactionRepository) applyBalanceChanges(ctx context.Context, tx pgx.Tx, userID string, balanceChanges map[string]decimal.Decimal, now time.Time) error {
	accountIDs := make([]string, 0, len(balanceChanges))
	for accID := range balanceChanges {
		accountIDs = append(accountIDs, accID)
	}

	if _, err := r.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, userID, accountIDs); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return apperrors.NewAppError(500, "failed to lock accounts for update", err)
	}

	if err := r.accountRepo.ApplyBalanceChangesInTx(ctx, tx, balanceChanges, now); err != nil {
		return apperrors.NewAppError(500, "failed to update account balances", err)
	}

	return nil
}

// FindTransactionByID retrieves a transaction by its ID, scoped to the owner.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1 AND user_id = $2;`

	modelTxn, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}

	domainTxn := mapping.ToDomainTransaction(modelTxn)
	return &domainTxn, nil
}

// ListTransactions retrieves a filtered, token-paginated page of transactions,
// newest first. Ordering is (date DESC, created_at DESC); the token encodes
// the cursor position after the last returned row.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, userID string, filter portsrepo.TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE user_id = $1`
	args := []interface{}{userID}

	addCond := func(cond string, value interface{}) {
		args = append(args, value)
		query += " AND " + cond + "$" + strconv.Itoa(len(args))
	}

	if filter.AccountID != nil {
		args = append(args, *filter.AccountID)
		p := strconv.Itoa(len(args))
		query += " AND (account_id = $" + p + " OR to_account_id = $" + p + ")"
	}
	if filter.CategoryID != nil {
		addCond("category_id = ", *filter.CategoryID)
	}
	if filter.Type != nil {
		addCond("type = ", string(*filter.Type))
	}
	if filter.DateFrom != nil {
		addCond("date >= ", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		addCond("date <= ", *filter.DateTo)
	}
	if filter.AmountMin != nil {
		addCond("amount >= ", *filter.AmountMin)
	}
	if filter.AmountMax != nil {
		addCond("amount <= ", *filter.AmountMax)
	}

	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		// Tuple comparison keeps the cursor stable under the compound order.
		args = append(args, lastDate, lastCreatedAt)
		query += " AND (date, created_at) < ($" + strconv.Itoa(len(args)-1) + ", $" + strconv.Itoa(len(args)) + ")"
	}

	args = append(args, fetchLimit)
	query += " ORDER BY date DESC, created_at DESC LIMIT $" + strconv.Itoa(len(args)) + ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query transactions for user "+userID, err)
	}
	defer rows.Close()

	transactions := make([]models.Transaction, 0, fetchLimit)
	for rows.Next() {
		modelTxn, err := scanTransaction(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan transaction row", err)
		}
		transactions = append(transactions, modelTxn)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating transaction rows", err)
	}

	var nextTokenVal *string
	if len(transactions) > limit {
		lastTxn := transactions[limit-1] // The last item actually included in this page
		token := pagination.EncodeToken(lastTxn.Date, lastTxn.CreatedAt)
		nextTokenVal = &token
		transactions = transactions[:limit]
	}

	return mapping.ToDomainTransactionSlice(transactions), nextTokenVal, nil
}

// SumExpensesByCategory totals Expense transactions for the category within
// the inclusive date range [from, to].
func (r *PgxTransactionRepository) SumExpensesByCategory(ctx context.Context, userID, categoryID string, from, to time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE user_id = $1 AND category_id = $2 AND type = $3 AND date >= $4 AND date <= $5;
	`
	var total decimal.Decimal
	err := r.Pool.QueryRow(ctx, query, userID, categoryID, string(domain.Expense), from, to).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum expenses for category %s: %w", categoryID, err)
	}
	return total, nil
}

// HasTransactionsForAccount reports whether any transaction references the
// account as source or transfer destination.
func (r *PgxTransactionRepository) HasTransactionsForAccount(ctx context.Context, userID, accountID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM transactions
			WHERE user_id = $1 AND (account_id = $2 OR to_account_id = $2)
		);
	`
	var exists bool
	if err := r.Pool.QueryRow(ctx, query, userID, accountID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check transactions for account %s: %w", accountID, err)
	}
	return exists, nil
}

// HasTransactionsForCategory reports whether any transaction references the
// category.
func (r *PgxTransactionRepository) HasTransactionsForCategory(ctx context.Context, userID, categoryID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM transactions
			WHERE user_id = $1 AND category_id = $2
		);
	`
	var exists bool
	if err := r.Pool.QueryRow(ctx, query, userID, categoryID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check transactions for category %s: %w", categoryID, err)
	}
	return exists, nil
}
