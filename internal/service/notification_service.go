package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/outfique/backend/internal/domain"
)

// SuggestionMessage is the text of the daily suggestion notification
const SuggestionMessage = "New outfit suggestions available based on today's weather"

// NotificationService manages the signed-in user's activity inbox
type NotificationService struct {
	repo   NotificationRepository
	users  UserSource
	logger *slog.Logger
	now    func() time.Time
}

// NewNotificationService creates a new notification service
func NewNotificationService(repo NotificationRepository, users UserSource, logger *slog.Logger) *NotificationService {
	if logger == nil {
		logger = slog.Default()
	}
	return &NotificationService{repo: repo, users: users, logger: logger, now: time.Now}
}

// List returns the current user's notifications, newest first
func (s *NotificationService) List(ctx context.Context) ([]domain.Notification, error) {
	user := s.users.CurrentUser()
	if user == nil {
		return nil, domain.ErrAuthRequired
	}
	items, err := s.repo.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("notifications: failed to list: %w", err)
	}
	if items == nil {
		items = []domain.Notification{}
	}
	return items, nil
}

// MarkAllRead flags the current user's notifications as read
func (s *NotificationService) MarkAllRead(ctx context.Context) (int64, error) {
	user := s.users.CurrentUser()
	if user == nil {
		return 0, domain.ErrAuthRequired
	}
	n, err := s.repo.MarkAllRead(ctx, user.ID)
	if err != nil {
		return 0, fmt.Errorf("notifications: failed to mark read: %w", err)
	}
	return n, nil
}

// Push adds a notification to the current user's inbox
func (s *NotificationService) Push(ctx context.Context, kind domain.NotificationType, actor, message string) (domain.Notification, error) {
	user := s.users.CurrentUser()
	if user == nil {
		return domain.Notification{}, domain.ErrAuthRequired
	}
	n := domain.Notification{UserID: user.ID, Type: kind, Actor: actor, Message: message}
	if err := s.repo.Create(ctx, &n); err != nil {
		return domain.Notification{}, fmt.Errorf("notifications: failed to create: %w", err)
	}
	s.logger.Info("notification pushed", "user_id", user.ID, "type", kind)
	return n, nil
}

// OnUserChange gives a user with an empty inbox some sample activity
func (s *NotificationService) OnUserChange(ctx context.Context, user *domain.User) {
	if user == nil {
		return
	}
	existing, err := s.repo.ListByUser(ctx, user.ID)
	if err != nil {
		s.logger.Error("failed to read inbox", "user_id", user.ID, "error", err)
		return
	}
	if len(existing) > 0 {
		return
	}

	// oldest first so the inbox reads newest first
	now := s.now()
	samples := []domain.Notification{
		{Type: domain.NotificationSuggestion, Actor: "outfique_ai", Message: SuggestionMessage, IsRead: true, CreatedAt: now.Add(-5 * time.Hour)},
		{Type: domain.NotificationFollow, Actor: "urban_chic", Message: "started following you", IsRead: true, CreatedAt: now.Add(-3 * time.Hour)},
		{Type: domain.NotificationComment, Actor: "style_maven", Message: `commented on your post: "Love this color combination!"`, CreatedAt: now.Add(-time.Hour)},
		{Type: domain.NotificationLike, Actor: "fashionista_jane", Message: "liked your outfit post", CreatedAt: now.Add(-2 * time.Minute)},
	}
	for i := range samples {
		samples[i].UserID = user.ID
		if err := s.repo.Create(ctx, &samples[i]); err != nil {
			s.logger.Error("failed to seed inbox", "user_id", user.ID, "error", err)
			return
		}
	}
}
