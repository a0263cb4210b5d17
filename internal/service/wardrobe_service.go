package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/outfique/backend/internal/domain"
	"github.com/outfique/backend/internal/metrics"
	"github.com/outfique/backend/pkg/utils"
)

// WardrobeService holds the signed-in user's wardrobe and mirrors mutations to the store
type WardrobeService struct {
	repo     WardrobeRepository
	users    UserSource
	notifier domain.Notifier
	logger   *slog.Logger

	mu      sync.RWMutex
	owner   string
	items   []domain.WardrobeItem
	loading bool
	err     string
}

// NewWardrobeService creates a wardrobe service. It starts in the loading state until the first Fetch.
func NewWardrobeService(repo WardrobeRepository, users UserSource, notifier domain.Notifier, logger *slog.Logger) *WardrobeService {
	if logger == nil {
		logger = slog.Default()
	}
	return &WardrobeService{
		repo:     repo,
		users:    users,
		notifier: notifier,
		logger:   logger,
		items:    []domain.WardrobeItem{},
		loading:  true,
	}
}

// OnUserChange refetches for the new identity; register it with AuthService.Subscribe
func (s *WardrobeService) OnUserChange(ctx context.Context, _ *domain.User) {
	if err := s.Fetch(ctx); err != nil {
		s.logger.Error("wardrobe refetch failed", "error", err)
	}
}

// Refetch reloads the wardrobe for the current user
func (s *WardrobeService) Refetch(ctx context.Context) error {
	return s.Fetch(ctx)
}

// Fetch loads the current user's items, newest first.
// Without a user the list is cleared. On failure the previous items stay in place.
func (s *WardrobeService) Fetch(ctx context.Context) error {
	user := s.users.CurrentUser()
	if user == nil {
		s.mu.Lock()
		s.owner = ""
		s.items = []domain.WardrobeItem{}
		s.loading = false
		s.mu.Unlock()
		return nil
	}

	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	items, err := s.repo.ListByUser(ctx, user.ID)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	// a sign-out or account switch happened while the query ran
	if current := s.users.CurrentUser(); current == nil || current.ID != user.ID {
		return nil
	}

	if err != nil {
		s.err = err.Error()
		return fmt.Errorf("wardrobe: failed to fetch items: %w", err)
	}

	if items == nil {
		items = []domain.WardrobeItem{}
	}
	s.owner = user.ID
	s.items = items
	s.err = ""
	return nil
}

// Add stores a new item for the current user and prepends it to the list
func (s *WardrobeService) Add(ctx context.Context, in domain.NewWardrobeItem) (domain.WardrobeItem, error) {
	user := s.users.CurrentUser()
	if user == nil {
		s.notify(ctx, domain.Notice{
			Title:       "Authentication required",
			Description: "Please sign in to add items to your wardrobe",
			Destructive: true,
		})
		return domain.WardrobeItem{}, domain.ErrAuthRequired
	}

	if err := in.Validate(); err != nil {
		s.notify(ctx, domain.Notice{Title: "Error adding item", Description: err.Error(), Destructive: true})
		return domain.WardrobeItem{}, err
	}

	item, err := s.repo.Insert(ctx, user.ID, in)
	metrics.WardrobeMutations.WithLabelValues("add", metrics.Result(err)).Inc()
	if err != nil {
		s.setErr(err)
		s.notify(ctx, domain.Notice{Title: "Error adding item", Description: err.Error(), Destructive: true})
		return domain.WardrobeItem{}, fmt.Errorf("wardrobe: failed to add item: %w", err)
	}

	s.mu.Lock()
	if s.owner == "" || s.owner == user.ID {
		s.owner = user.ID
		s.items = append([]domain.WardrobeItem{item}, s.items...)
	}
	s.mu.Unlock()

	s.notify(ctx, domain.Notice{
		Title:       "Item added!",
		Description: "Your wardrobe item has been added successfully",
	})
	return item, nil
}

// Delete removes an item from the store and, on success, from the list
func (s *WardrobeService) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	metrics.WardrobeMutations.WithLabelValues("delete", metrics.Result(err)).Inc()
	if err != nil {
		s.setErr(err)
		s.notify(ctx, domain.Notice{Title: "Error removing item", Description: err.Error(), Destructive: true})
		return fmt.Errorf("wardrobe: failed to delete item: %w", err)
	}

	s.mu.Lock()
	kept := make([]domain.WardrobeItem, 0, len(s.items))
	for _, item := range s.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	s.items = kept
	s.mu.Unlock()

	s.notify(ctx, domain.Notice{
		Title:       "Item removed",
		Description: "Item has been removed from your wardrobe",
	})
	return nil
}

// Items returns a copy of the held items
func (s *WardrobeService) Items() []domain.WardrobeItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.WardrobeItem, len(s.items))
	copy(out, s.items)
	return out
}

// Snapshot returns the current state as seen by the UI
func (s *WardrobeService) Snapshot() domain.WardrobeState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]domain.WardrobeItem, len(s.items))
	copy(items, s.items)
	return domain.WardrobeState{Items: items, Loading: s.loading, Error: s.err}
}

// BySeason returns items for season, including year-round items
func (s *WardrobeService) BySeason(season domain.Season) []domain.WardrobeItem {
	return s.filter(func(item domain.WardrobeItem) bool {
		return item.Season == season || item.Season == domain.SeasonAll
	})
}

// ByCategory returns items whose category contains category, ignoring case
func (s *WardrobeService) ByCategory(category string) []domain.WardrobeItem {
	return s.filter(func(item domain.WardrobeItem) bool {
		return utils.ContainsFold(item.Category, category)
	})
}

func (s *WardrobeService) filter(keep func(domain.WardrobeItem) bool) []domain.WardrobeItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.WardrobeItem{}
	for _, item := range s.items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

func (s *WardrobeService) setErr(err error) {
	s.mu.Lock()
	s.err = err.Error()
	s.mu.Unlock()
	s.logger.Error("wardrobe store error", "error", err)
}

func (s *WardrobeService) notify(ctx context.Context, n domain.Notice) {
	if s.notifier != nil {
		s.notifier.Notify(ctx, n)
	}
}

