package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/taskforcepro/wallet_backend/internal/apperrors"
	"github.com/taskforcepro/wallet_backend/internal/core/domain"
	portsrepo "github.com/taskforcepro/wallet_backend/internal/core/ports/repositories"
	portssvc "github.com/taskforcepro/wallet_backend/internal/core/ports/services"
	"github.com/taskforcepro/wallet_backend/internal/dto"
	"github.com/taskforcepro/wallet_backend/internal/middleware"
)

var (
	ErrAmountNotPositive   = errors.New("transaction amount must be positive")
	ErrUnknownType         = errors.New("unknown transaction type")
	ErrTransferNeedsTarget = errors.New("transfer requires a destination account")
	ErrTransferSameAccount = errors.New("transfer source and destination must differ")
	ErrTargetOnNonTransfer = errors.New("destination account is only valid for transfers")
	ErrCategoryOnTransfer  = errors.New("transfers cannot carry a category")
)

// transactionService implements the posting workflow. It is the only
// sanctioned path that creates transactions and mutates account balances.
type transactionService struct {
	transactionRepo  portsrepo.TransactionRepositoryFacade
	accountRepo      portsrepo.AccountReader
	categoryRepo     portsrepo.CategoryReader
	budgetRepo       portsrepo.BudgetReader
	notificationRepo portsrepo.NotificationWriter
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(
	transactionRepo portsrepo.TransactionRepositoryFacade,
	accountRepo portsrepo.AccountReader,
	categoryRepo portsrepo.CategoryReader,
	budgetRepo portsrepo.BudgetReader,
	notificationRepo portsrepo.NotificationWriter,
) portssvc.TransactionSvcFacade {
	return &transactionService{
		transactionRepo:  transactionRepo,
		accountRepo:      accountRepo,
		categoryRepo:     categoryRepo,
		budgetRepo:       budgetRepo,
		notificationRepo: notificationRepo,
	}
}

// Ensure transactionService implements the portssvc.TransactionSvcFacade interface
var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// validatePostingRequest applies every check that must pass before any state
// is touched. A failure here leaves accounts, transactions and budgets
// exactly as they were.
func (s *transactionService) validatePostingRequest(ctx context.Context, userID string, req dto.CreateTransactionRequest) error {
	if !req.Type.Valid() {
		return fmt.Errorf("%w: %s %q", apperrors.ErrValidation, ErrUnknownType, req.Type)
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrAmountNotPositive)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: transaction date is required", apperrors.ErrValidation)
	}

	switch req.Type {
	case domain.Transfer:
		if req.ToAccountID == nil || *req.ToAccountID == "" {
			return fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrTransferNeedsTarget)
		}
		if *req.ToAccountID == req.AccountID {
			return fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrTransferSameAccount)
		}
		if req.CategoryID != nil {
			return fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrCategoryOnTransfer)
		}
	default:
		if req.ToAccountID != nil {
			return fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrTargetOnNonTransfer)
		}
	}

	// Every referenced entity must exist and belong to the caller.
	if _, err := s.accountRepo.FindAccountByID(ctx, userID, req.AccountID); err != nil {
		return fmt.Errorf("source account: %w", err)
	}
	if req.ToAccountID != nil {
		if _, err := s.accountRepo.FindAccountByID(ctx, userID, *req.ToAccountID); err != nil {
			return fmt.Errorf("destination account: %w", err)
		}
	}
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindCategoryByID(ctx, userID, *req.CategoryID); err != nil {
			return fmt.Errorf("category: %w", err)
		}
	}

	return nil
}

// PostTransaction runs the posting workflow: validate, persist the
// transaction together with its balance effect in one database transaction,
// then evaluate the relevant budget. Budget evaluation runs after the commit
// and never rolls the posting back; its failure is reported in the result.
func (s *transactionService) PostTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*portssvc.PostingResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.validatePostingRequest(ctx, userID, req); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        userID,
		AccountID:     req.AccountID,
		CategoryID:    req.CategoryID,
		Amount:        req.Amount,
		Date:          domain.DateOnly(req.Date),
		Description:   req.Description,
		Type:          req.Type,
		ToAccountID:   req.ToAccountID,
		CreatedAt:     now,
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn, txn.BalanceChanges()); err != nil {
		logger.Error("Failed to save transaction", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	logger.Info("Transaction posted",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)),
		slog.String("amount", txn.Amount.String()),
	)

	result := &portssvc.PostingResult{Transaction: txn}

	// Budget evaluation applies only to categorized expenses.
	if txn.Type == domain.Expense && txn.CategoryID != nil {
		notification, err := s.evaluateBudget(ctx, txn)
		if err != nil {
			logger.Error("Budget evaluation failed after posting",
				slog.String("transaction_id", txn.TransactionID),
				slog.String("error", err.Error()),
			)
			result.BudgetEvaluationErr = err
		} else {
			result.Notification = notification
		}
	}

	return result, nil
}

// evaluateBudget locates the budget whose range covers the posted expense and
// creates a notification when this posting pushed cumulative spending across
// the budget's trigger amount. Edge-triggered: postings that merely keep the
// total above the trigger produce nothing.
func (s *transactionService) evaluateBudget(ctx context.Context, txn domain.Transaction) (*domain.BudgetNotification, error) {
	budget, err := s.budgetRepo.FindBudgetForCategoryAndDate(ctx, txn.UserID, *txn.CategoryID, txn.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to find budget: %w", err)
	}
	if budget == nil {
		return nil, nil
	}

	// The posting is already committed, so the sum over the budget's own
	// window includes this transaction.
	spent, err := s.transactionRepo.SumExpensesByCategory(ctx, txn.UserID, *txn.CategoryID, budget.StartDate, budget.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to sum category expenses: %w", err)
	}

	trigger := budget.TriggerAmount()
	previous := spent.Sub(txn.Amount)
	if spent.LessThanOrEqual(trigger) || previous.GreaterThan(trigger) {
		return nil, nil
	}

	category, err := s.categoryRepo.FindCategoryByID(ctx, txn.UserID, *txn.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load category for notification: %w", err)
	}

	var message string
	if spent.GreaterThan(budget.Limit) {
		message = fmt.Sprintf("Budget exceeded for %s. Limit: %s, Spent: %s", category.Name, budget.Limit.StringFixed(2), spent.StringFixed(2))
	} else {
		message = fmt.Sprintf("Budget threshold reached for %s. Limit: %s, Spent: %s", category.Name, budget.Limit.StringFixed(2), spent.StringFixed(2))
	}

	notification := domain.BudgetNotification{
		NotificationID: uuid.NewString(),
		UserID:         txn.UserID,
		BudgetID:       budget.BudgetID,
		Message:        message,
		Read:           false,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.notificationRepo.SaveNotification(ctx, notification); err != nil {
		return nil, fmt.Errorf("failed to save notification: %w", err)
	}

	return &notification, nil
}

func dateOnlyPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := domain.DateOnly(*t)
	return &d
}

// GetTransactionByID retrieves a single transaction owned by the user.
func (s *transactionService) GetTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	return s.transactionRepo.FindTransactionByID(ctx, userID, transactionID)
}

// ListTransactions retrieves a filtered, token-paginated page of the user's
// transactions.
func (s *transactionService) ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	if params.AmountMin != nil && params.AmountMax != nil && params.AmountMin.GreaterThan(*params.AmountMax) {
		return nil, fmt.Errorf("%w: amountMin must not exceed amountMax", apperrors.ErrValidation)
	}
	if params.DateFrom != nil && params.DateTo != nil && params.DateFrom.After(*params.DateTo) {
		return nil, fmt.Errorf("%w: dateFrom must not be after dateTo", apperrors.ErrValidation)
	}

	filter := portsrepo.TransactionFilter{
		AccountID:  params.AccountID,
		CategoryID: params.CategoryID,
		Type:       params.Type,
		DateFrom:   dateOnlyPtr(params.DateFrom),
		DateTo:     dateOnlyPtr(params.DateTo),
		AmountMin:  params.AmountMin,
		AmountMax:  params.AmountMax,
	}

	txns, nextToken, err := s.transactionRepo.ListTransactions(ctx, userID, filter, params.Limit, params.NextToken)
	if err != nil {
		return nil, err
	}

	return dto.ToListTransactionsResponse(txns, nextToken), nil
}

// DeleteTransaction removes a posting and reverses its balance effect in the
// same database transaction as the row delete.
func (s *transactionService) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	txn, err := s.transactionRepo.FindTransactionByID(ctx, userID, transactionID)
	if err != nil {
		return err
	}

	reversal := make(map[string]decimal.Decimal, 2)
	for accountID, delta := range txn.BalanceChanges() {
		reversal[accountID] = delta.Neg()
	}

	if err := s.transactionRepo.DeleteTransaction(ctx, *txn, reversal); err != nil {
		logger.Error("Failed to delete transaction", slog.String("transaction_id", transactionID), slog.String("error", err.Error()))
		return err
	}

	logger.Info("Transaction deleted and balance effect reversed", slog.String("transaction_id", transactionID))
	return nil
}
