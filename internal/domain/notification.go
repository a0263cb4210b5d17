package domain

import (
	"context"
	"time"
)

// NotificationType classifies activity notifications
type NotificationType string

const (
	NotificationLike       NotificationType = "like"
	NotificationComment    NotificationType = "comment"
	NotificationFollow     NotificationType = "follow"
	NotificationSuggestion NotificationType = "suggestion"
)

// Notification is an activity entry in the user's inbox
type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	Type      NotificationType `json:"type"`
	Actor     string           `json:"actor"`
	Message   string           `json:"message"`
	IsRead    bool             `json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
}

// NotificationRepository persists notifications per user
type NotificationRepository interface {
	// ListByUser returns notifications newest first
	ListByUser(ctx context.Context, userID string) ([]Notification, error)

	// Create stores n, filling ID and CreatedAt when empty
	Create(ctx context.Context, n *Notification) error

	// MarkAllRead flags every notification of the user as read and returns how many changed
	MarkAllRead(ctx context.Context, userID string) (int64, error)
}

// Notice is a transient user-facing message (a toast)
type Notice struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Destructive bool      `json:"destructive"`
	CreatedAt   time.Time `json:"created_at"`
}

// Notifier receives user-facing notices
type Notifier interface {
	Notify(ctx context.Context, n Notice)
}
