package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outfique/backend/internal/domain"
)

func TestMemoryWardrobeRepository(t *testing.T) {
	repo := NewMemoryWardrobeRepository()
	ctx := context.Background()

	first, err := repo.Insert(ctx, "u1", domain.NewWardrobeItem{Name: "Tee", Category: "T-shirt", Season: domain.SeasonSummer})
	require.NoError(t, err)
	second, err := repo.Insert(ctx, "u1", domain.NewWardrobeItem{Name: "Parka", Category: "Coat", Season: domain.SeasonWinter})
	require.NoError(t, err)
	_, err = repo.Insert(ctx, "u2", domain.NewWardrobeItem{Name: "Other", Category: "Hat", Season: domain.SeasonAll})
	require.NoError(t, err)

	assert.NotEmpty(t, first.ID)
	assert.Equal(t, "u1", first.UserID)

	items, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, second.ID, items[0].ID, "newest first")
	assert.Equal(t, first.ID, items[1].ID)

	require.NoError(t, repo.Delete(ctx, first.ID))
	require.NoError(t, repo.Delete(ctx, "missing"))

	items, err = repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, second.ID, items[0].ID)

	others, err := repo.ListByUser(ctx, "u2")
	require.NoError(t, err)
	assert.Len(t, others, 1)
}

func TestMemoryNotificationRepository(t *testing.T) {
	repo := NewMemoryNotificationRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Notification{UserID: "u1", Type: domain.NotificationLike, Message: "liked your outfit post"}))
	require.NoError(t, repo.Create(ctx, &domain.Notification{UserID: "u1", Type: domain.NotificationFollow, Message: "started following you", IsRead: true}))
	require.NoError(t, repo.Create(ctx, &domain.Notification{UserID: "u2", Type: domain.NotificationLike}))

	list, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, domain.NotificationFollow, list[0].Type)
	assert.NotEmpty(t, list[0].ID)
	assert.False(t, list[0].CreatedAt.IsZero())

	changed, err := repo.MarkAllRead(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), changed)

	list, _ = repo.ListByUser(ctx, "u1")
	for _, n := range list {
		assert.True(t, n.IsRead)
	}

	other, _ := repo.ListByUser(ctx, "u2")
	assert.False(t, other[0].IsRead)
}
