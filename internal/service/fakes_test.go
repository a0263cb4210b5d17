package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/outfique/backend/internal/domain"
)

var errStore = errors.New("store unavailable")

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// staticUsers is a UserSource whose user can be swapped by tests
type staticUsers struct {
	mu   sync.Mutex
	user *domain.User
}

func (s *staticUsers) CurrentUser() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *staticUsers) set(u *domain.User) {
	s.mu.Lock()
	s.user = u
	s.mu.Unlock()
}

// recordingNotifier captures notices in order
type recordingNotifier struct {
	mu      sync.Mutex
	notices []domain.Notice
}

func (r *recordingNotifier) Notify(_ context.Context, n domain.Notice) {
	r.mu.Lock()
	r.notices = append(r.notices, n)
	r.mu.Unlock()
}

func (r *recordingNotifier) titles() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.notices))
	for i, n := range r.notices {
		out[i] = n.Title
	}
	return out
}

func (r *recordingNotifier) last() domain.Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.notices[len(r.notices)-1]
}

// stubWardrobeRepo serves canned items and counts calls
type stubWardrobeRepo struct {
	mu        sync.Mutex
	items     map[string][]domain.WardrobeItem
	listErr   error
	insertErr error
	deleteErr error
	inserts   int
	deletes   []string
	onList    func(userID string)
}

func (r *stubWardrobeRepo) ListByUser(_ context.Context, userID string) ([]domain.WardrobeItem, error) {
	if r.onList != nil {
		r.onList(userID)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	return append([]domain.WardrobeItem(nil), r.items[userID]...), nil
}

func (r *stubWardrobeRepo) Insert(_ context.Context, userID string, in domain.NewWardrobeItem) (domain.WardrobeItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inserts++
	if r.insertErr != nil {
		return domain.WardrobeItem{}, r.insertErr
	}
	return domain.WardrobeItem{
		ID:       "new-" + in.Name,
		UserID:   userID,
		Name:     in.Name,
		Category: in.Category,
		Season:   in.Season,
	}, nil
}

func (r *stubWardrobeRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deletes = append(r.deletes, id)
	return r.deleteErr
}

func (r *stubWardrobeRepo) Health(context.Context) error { return nil }

// stubWeather returns a fixed snapshot per city, optionally with an error
type stubWeather struct {
	snapshots map[string]domain.WeatherSnapshot
	err       error
	block     map[string]chan struct{}
}

func (s *stubWeather) GetCurrentWeather(_ context.Context, city string) (domain.WeatherSnapshot, error) {
	if ch, ok := s.block[city]; ok {
		<-ch
	}
	return s.snapshots[city], s.err
}

// failingSessionStore fails every call
type failingSessionStore struct{}

func (failingSessionStore) Get(context.Context, string) ([]byte, error) { return nil, errStore }
func (failingSessionStore) Set(context.Context, string, []byte) error { return errStore }
func (failingSessionStore) Delete(context.Context, string) error { return errStore }

// rejectingProvider refuses all credentials
type rejectingProvider struct{}

func (rejectingProvider) Authenticate(context.Context, domain.Credentials) (*domain.User, error) {
	return nil, errors.New("invalid credentials")
}
