package postgres

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/outfique/backend/internal/domain"
)

var (
	_ domain.WardrobeRepository     = (*MemoryWardrobeRepository)(nil)
	_ domain.NotificationRepository = (*MemoryNotificationRepository)(nil)
)

// MemoryWardrobeRepository keeps wardrobe items in process memory.
// Used when no database is configured.
type MemoryWardrobeRepository struct {
	mu    sync.RWMutex
	items []domain.WardrobeItem // newest first
	now   func() time.Time
}

// NewMemoryWardrobeRepository creates an empty in-memory wardrobe
func NewMemoryWardrobeRepository() *MemoryWardrobeRepository {
	return &MemoryWardrobeRepository{now: time.Now}
}

// ListByUser returns the user's items, newest first
func (r *MemoryWardrobeRepository) ListByUser(_ context.Context, userID string) ([]domain.WardrobeItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.WardrobeItem, 0)
	for _, item := range r.items {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	return out, nil
}

// Insert stores a new item owned by userID at the front of the list
func (r *MemoryWardrobeRepository) Insert(_ context.Context, userID string, in domain.NewWardrobeItem) (domain.WardrobeItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now().UTC()
	item := domain.WardrobeItem{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      in.Name,
		Category:  in.Category,
		Color:     in.Color,
		Season:    in.Season,
		ImageURL:  in.ImageURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.items = append([]domain.WardrobeItem{item}, r.items...)
	return item, nil
}

// Delete removes the item with id; a missing id is a no-op
func (r *MemoryWardrobeRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, item := range r.items {
		if item.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			break
		}
	}
	return nil
}

// Health always returns nil in memory mode
func (r *MemoryWardrobeRepository) Health(context.Context) error {
	return nil
}

// MemoryNotificationRepository keeps notifications in process memory
type MemoryNotificationRepository struct {
	mu    sync.RWMutex
	items []domain.Notification // newest first
	now   func() time.Time
}

// NewMemoryNotificationRepository creates an empty in-memory inbox
func NewMemoryNotificationRepository() *MemoryNotificationRepository {
	return &MemoryNotificationRepository{now: time.Now}
}

// ListByUser returns the user's notifications, newest first
func (r *MemoryNotificationRepository) ListByUser(_ context.Context, userID string) ([]domain.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Notification, 0)
	for _, n := range r.items {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

// Create stores n, filling ID and CreatedAt when empty
func (r *MemoryNotificationRepository) Create(_ context.Context, n *domain.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = r.now().UTC()
	}
	r.items = append([]domain.Notification{*n}, r.items...)
	return nil
}

// MarkAllRead flags the user's unread notifications and returns how many changed
func (r *MemoryNotificationRepository) MarkAllRead(_ context.Context, userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var changed int64
	for i := range r.items {
		if r.items[i].UserID == userID && !r.items[i].IsRead {
			r.items[i].IsRead = true
			changed++
		}
	}
	return changed, nil
}
