package pgsql

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskforcepro/wallet_backend/internal/apperrors"
	"github.com/taskforcepro/wallet_backend/internal/core/domain"
)

// fakeTx records commit/rollback calls so tests can assert which one ended
// the database transaction.
type fakeTx struct {
	execErr    error
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }

func (t *fakeTx) Commit(ctx context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	if t.committed {
		return pgx.ErrTxClosed
	}
	t.rolledBack = true
	return nil
}

func (t *fakeTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if t.execErr != nil {
		return pgconn.CommandTag{}, t.execErr
	}
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (t *fakeTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}

func (t *fakeTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }

func (t *fakeTx) LargeObjects() pgx.LargeObjects { return pgx.LargeObjects{} }

func (t *fakeTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}

func (t *fakeTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (t *fakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }

func (t *fakeTx) Conn() *pgx.Conn { return nil }

// fakePool hands out a fakeTx from Begin and lets tests fail direct Execs.
type fakePool struct {
	tx      *fakeTx
	execErr error
}

func (p *fakePool) Begin(ctx context.Context) (pgx.Tx, error) { return p.tx, nil }

func (p *fakePool) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if p.execErr != nil {
		return pgconn.CommandTag{}, p.execErr
	}
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (p *fakePool) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (p *fakePool) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }

// stubPostingSupport implements the account side of a posting with
// injectable failures.
type stubPostingSupport struct {
	findErr  error
	applyErr error
	applied  map[string]decimal.Decimal
}

func (s *stubPostingSupport) FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, userID string, accountIDs []string) (map[string]domain.Account, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	accounts := make(map[string]domain.Account, len(accountIDs))
	for _, id := range accountIDs {
		accounts[id] = domain.Account{AccountID: id, UserID: userID}
	}
	return accounts, nil
}

func (s *stubPostingSupport) ApplyBalanceChangesInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal, now time.Time) error {
	if s.applyErr != nil {
		return s.applyErr
	}
	s.applied = balanceChanges
	return nil
}

func transferFixture() domain.Transaction {
	toAccountID := uuid.NewString()
	return domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        uuid.NewString(),
		AccountID:     uuid.NewString(),
		Amount:        decimal.NewFromInt(75),
		Date:          time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Type:          domain.Transfer,
		ToAccountID:   &toAccountID,
		CreatedAt:     time.Now().UTC(),
	}
}

func TestSaveTransaction_RollsBackWhenBalanceUpdateFails(t *testing.T) {
	tx := &fakeTx{}
	support := &stubPostingSupport{applyErr: errors.New("balance update rejected")}
	repo := &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: &fakePool{tx: tx}},
		accountRepo:    support,
	}

	txn := transferFixture()
	err := repo.SaveTransaction(context.Background(), txn, txn.BalanceChanges())

	require.Error(t, err)
	assert.True(t, tx.rolledBack, "a failed balance update must roll the posting back")
	assert.False(t, tx.committed, "a failed balance update must never commit")
}

func TestSaveTransaction_RollsBackWhenAccountLockFails(t *testing.T) {
	tx := &fakeTx{}
	support := &stubPostingSupport{findErr: apperrors.ErrNotFound}
	repo := &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: &fakePool{tx: tx}},
		accountRepo:    support,
	}

	txn := transferFixture()
	err := repo.SaveTransaction(context.Background(), txn, txn.BalanceChanges())

	require.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.True(t, tx.rolledBack)
	assert.False(t, tx.committed)
}

func TestSaveTransaction_CommitsWhenBalanceUpdateSucceeds(t *testing.T) {
	tx := &fakeTx{}
	support := &stubPostingSupport{}
	repo := &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: &fakePool{tx: tx}},
		accountRepo:    support,
	}

	txn := transferFixture()
	err := repo.SaveTransaction(context.Background(), txn, txn.BalanceChanges())

	require.NoError(t, err)
	assert.True(t, tx.committed)
	assert.False(t, tx.rolledBack)
	assert.Len(t, support.applied, 2, "both sides of the transfer reach the balance update")
}

func TestDeleteTransaction_RollsBackWhenReversalFails(t *testing.T) {
	tx := &fakeTx{}
	support := &stubPostingSupport{applyErr: errors.New("balance update rejected")}
	repo := &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: &fakePool{tx: tx}},
		accountRepo:    support,
	}

	txn := transferFixture()
	reversal := map[string]decimal.Decimal{
		txn.AccountID:    txn.Amount,
		*txn.ToAccountID: txn.Amount.Neg(),
	}
	err := repo.DeleteTransaction(context.Background(), txn, reversal)

	require.Error(t, err)
	assert.True(t, tx.rolledBack, "a failed reversal must keep the transaction row")
	assert.False(t, tx.committed)
}
