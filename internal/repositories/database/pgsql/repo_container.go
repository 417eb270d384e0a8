package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/taskforcepro/wallet_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	userRepo := newPgxUserRepository(dbPool)
	accountRepo := newPgxAccountRepository(dbPool)
	categoryRepo := newPgxCategoryRepository(dbPool)
	transactionRepo := newPgxTransactionRepository(dbPool, accountRepo)
	budgetRepo := newPgxBudgetRepository(dbPool)
	notificationRepo := newPgxNotificationRepository(dbPool)
	reportingRepo := newReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		UserRepo:         userRepo,
		AccountRepo:      accountRepo,
		CategoryRepo:     categoryRepo,
		TransactionRepo:  transactionRepo,
		BudgetRepo:       budgetRepo,
		NotificationRepo: notificationRepo,
		ReportingRepo:    reportingRepo,
	}
}
