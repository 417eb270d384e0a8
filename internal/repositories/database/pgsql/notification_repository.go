package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/taskforcepro/wallet_backend/internal/apperrors"
	"github.com/taskforcepro/wallet_backend/internal/core/domain"
	portsrepo "github.com/taskforcepro/wallet_backend/internal/core/ports/repositories"
	"github.com/taskforcepro/wallet_backend/internal/models"
	"github.com/taskforcepro/wallet_backend/internal/utils/mapping"
)

type PgxNotificationRepository struct {
	BaseRepository
}

// newPgxNotificationRepository creates a new repository for budget notifications.
func newPgxNotificationRepository(pool *pgxpool.Pool) *PgxNotificationRepository {
	return &PgxNotificationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxNotificationRepository implements portsrepo.NotificationRepositoryFacade
var _ portsrepo.NotificationRepositoryFacade = (*PgxNotificationRepository)(nil)

const notificationColumns = `notification_id, user_id, budget_id, message, read, created_at`

func scanNotification(row pgx.Row) (models.BudgetNotification, error) {
	var m models.BudgetNotification
	err := row.Scan(
		&m.NotificationID,
		&m.UserID,
		&m.BudgetID,
		&m.Message,
		&m.Read,
		&m.CreatedAt,
	)
	return m, err
}

// SaveNotification inserts a new notification.
func (r *PgxNotificationRepository) SaveNotification(ctx context.Context, notification domain.BudgetNotification) error {
	modelNotif := mapping.ToModelNotification(notification)

	query := `
		INSERT INTO budget_notifications (` + notificationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelNotif.NotificationID,
		modelNotif.UserID,
		modelNotif.BudgetID,
		modelNotif.Message,
		modelNotif.Read,
		modelNotif.CreatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // Unique violation
				return fmt.Errorf("%w: notification with ID %s already exists", apperrors.ErrDuplicate, modelNotif.NotificationID)
			}
		}
		return fmt.Errorf("failed to save notification %s: %w", modelNotif.NotificationID, err)
	}
	return nil
}

// FindNotificationByID retrieves a notification by its ID, scoped to the owner.
func (r *PgxNotificationRepository) FindNotificationByID(ctx context.Context, userID, notificationID string) (*domain.BudgetNotification, error) {
	query := `SELECT ` + notificationColumns + ` FROM budget_notifications WHERE notification_id = $1 AND user_id = $2;`

	modelNotif, err := scanNotification(r.Pool.QueryRow(ctx, query, notificationID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find notification by ID %s: %w", notificationID, err)
	}

	domainNotif := mapping.ToDomainNotification(modelNotif)
	return &domainNotif, nil
}

// ListNotifications retrieves notifications owned by the user, newest first.
func (r *PgxNotificationRepository) ListNotifications(ctx context.Context, userID string, unreadOnly bool) ([]domain.BudgetNotification, error) {
	query := `SELECT ` + notificationColumns + ` FROM budget_notifications WHERE user_id = $1`
	if unreadOnly {
		query += ` AND read = FALSE`
	}
	query += ` ORDER BY created_at DESC;`

	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications for user %s: %w", userID, err)
	}
	defer rows.Close()

	notifications := []domain.BudgetNotification{}
	for rows.Next() {
		modelNotif, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification row: %w", err)
		}
		notifications = append(notifications, mapping.ToDomainNotification(modelNotif))
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating notification rows: %w", rows.Err())
	}

	return notifications, nil
}

// MarkNotificationRead sets read = true. Marking an already-read notification
// is a no-op success; only a missing row is an error.
func (r *PgxNotificationRepository) MarkNotificationRead(ctx context.Context, userID, notificationID string) error {
	query := `
		UPDATE budget_notifications
		SET read = TRUE
		WHERE notification_id = $1 AND user_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, notificationID, userID)
	if err != nil {
		return fmt.Errorf("failed to mark notification %s read: %w", notificationID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
