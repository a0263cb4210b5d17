package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/outfique/backend/internal/domain"
)

var _ domain.NotificationRepository = (*NotificationRepository)(nil)

// NotificationRepository implements domain.NotificationRepository on PostgreSQL
type NotificationRepository struct {
	db DBTX
}

// NewNotificationRepository creates a notification repository over db
func NewNotificationRepository(db DBTX) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// ListByUser returns the user's latest notifications, newest first
func (r *NotificationRepository) ListByUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	query := `
		SELECT id, user_id, type, actor, message, is_read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 100
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to query notifications: %w", err)
	}
	defer rows.Close()

	results := make([]domain.Notification, 0)
	for rows.Next() {
		var (
			n    domain.Notification
			kind string
		)
		if err := rows.Scan(&n.ID, &n.UserID, &kind, &n.Actor, &n.Message, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan notification row: %w", err)
		}
		n.Type = domain.NotificationType(kind)
		results = append(results, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: failed to iterate notification rows: %w", err)
	}

	return results, nil
}

// Create stores n. A zero CreatedAt is filled in by the database.
func (r *NotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	query := `
		INSERT INTO notifications (user_id, type, actor, message, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, COALESCE($6::timestamptz, now()))
		RETURNING id, created_at
	`

	var createdAt *time.Time
	if !n.CreatedAt.IsZero() {
		createdAt = &n.CreatedAt
	}

	err := r.db.QueryRowContext(ctx, query,
		n.UserID, string(n.Type), n.Actor, n.Message, n.IsRead, createdAt,
	).Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		return fmt.Errorf("postgres: failed to save notification: %w", err)
	}

	return nil
}

// MarkAllRead flags the user's unread notifications and returns how many changed
func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE notifications SET is_read = TRUE WHERE user_id = $1 AND is_read = FALSE`, userID)
	if err != nil {
		return 0, fmt.Errorf("postgres: failed to mark notifications read: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("postgres: failed to count updated notifications: %w", err)
	}
	return n, nil
}
