package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outfique/backend/internal/domain"
)

func TestNotificationRepository_CreateAndList(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewNotificationRepository(db)
	ctx := context.Background()
	now := time.Date(2024, 5, 2, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO notifications`).
		WithArgs("u1", "suggestion", "outfique_ai", "New outfit suggestions available", false, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("n1", now))

	n := &domain.Notification{
		UserID:  "u1",
		Type:    domain.NotificationSuggestion,
		Actor:   "outfique_ai",
		Message: "New outfit suggestions available",
	}
	require.NoError(t, repo.Create(ctx, n))
	assert.Equal(t, "n1", n.ID)
	assert.Equal(t, now, n.CreatedAt)

	mock.ExpectQuery(`SELECT id, user_id, type, actor, message, is_read, created_at\s+FROM notifications`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "type", "actor", "message", "is_read", "created_at"}).
			AddRow("n1", "u1", "suggestion", "outfique_ai", "New outfit suggestions available", false, now))

	list, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, domain.NotificationSuggestion, list[0].Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepository_MarkAllRead(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewNotificationRepository(db)

	mock.ExpectExec(`UPDATE notifications SET is_read = TRUE`).
		WithArgs("u1").
		WillReturnResult(sqlmock.NewResult(0, 2))

	changed, err := repo.MarkAllRead(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), changed)

	mock.ExpectExec(`UPDATE notifications`).WillReturnError(errors.New("db down"))
	_, err = repo.MarkAllRead(context.Background(), "u1")
	assert.Error(t, err)
}

func TestNotificationRepository_CreateKeepsTimestamp(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewNotificationRepository(db)
	at := time.Date(2024, 6, 1, 7, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO notifications \(user_id, type, actor, message, is_read, created_at\)\s+VALUES \(\$1, \$2, \$3, \$4, \$5, COALESCE\(\$6::timestamptz, now\(\)\)\)`).
		WithArgs("u1", "follow", "urban_chic", "started following you", true, at).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("n2", at))

	n := &domain.Notification{
		UserID:    "u1",
		Type:      domain.NotificationFollow,
		Actor:     "urban_chic",
		Message:   "started following you",
		IsRead:    true,
		CreatedAt: at,
	}
	require.NoError(t, repo.Create(context.Background(), n))
	assert.Equal(t, at, n.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}
