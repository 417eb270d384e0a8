package services

import (
	portsrepo "github.com/taskforcepro/wallet_backend/internal/core/ports/repositories"
	portssvc "github.com/taskforcepro/wallet_backend/internal/core/ports/services"
	"github.com/taskforcepro/wallet_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg, container.User)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)

	container.Account = NewAccountService(repos.AccountRepo, repos.TransactionRepo)
	container.Category = NewCategoryService(repos.CategoryRepo, repos.TransactionRepo, repos.BudgetRepo)
	container.Budget = NewBudgetService(repos.BudgetRepo, repos.CategoryRepo)
	container.Notification = NewNotificationService(repos.NotificationRepo)

	// The posting workflow sits on top of everything else: it validates
	// against accounts and categories, persists through the transaction
	// repository and notifies through budgets.
	container.Transaction = NewTransactionService(
		repos.TransactionRepo,
		repos.AccountRepo,
		repos.CategoryRepo,
		repos.BudgetRepo,
		repos.NotificationRepo,
	)

	container.Reporting = NewReportingService(repos.ReportingRepo)

	return container
}
