package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/outfique/backend/internal/domain"
)

// SessionKey is the session store key holding the signed-in user
const SessionKey = "outfique_user"

// UserObserver is called after the signed-in identity changes.
// user is nil after logout.
type UserObserver func(ctx context.Context, user *domain.User)

// AuthService holds the single signed-in user of this process
type AuthService struct {
	provider domain.IdentityProvider
	store    domain.SessionStore
	logger   *slog.Logger

	mu        sync.RWMutex
	user      *domain.User
	observers []UserObserver
}

// NewAuthService creates an auth service; call Load to restore a persisted session
func NewAuthService(provider domain.IdentityProvider, store domain.SessionStore, logger *slog.Logger) *AuthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{provider: provider, store: store, logger: logger}
}

// Subscribe registers an observer for identity changes
func (s *AuthService) Subscribe(fn UserObserver) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

// Load restores the persisted user, if any.
// Unreadable session data is discarded and treated as signed out.
func (s *AuthService) Load(ctx context.Context) error {
	raw, err := s.store.Get(ctx, SessionKey)
	if err != nil {
		return fmt.Errorf("auth: failed to read session: %w", err)
	}
	if raw == nil {
		return nil
	}

	var user domain.User
	if err := json.Unmarshal(raw, &user); err != nil {
		s.logger.Warn("discarding unreadable session", "error", err)
		if err := s.store.Delete(ctx, SessionKey); err != nil {
			s.logger.Error("failed to clear session", "error", err)
		}
		return nil
	}

	s.setUser(ctx, &user)
	s.logger.Info("session restored", "user_id", user.ID)
	return nil
}

// CurrentUser returns a copy of the signed-in user, or nil
func (s *AuthService) CurrentUser() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// IsAuthenticated reports whether a user is signed in
func (s *AuthService) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// Login signs in with email and password
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	return s.authenticate(ctx, domain.Credentials{
		Kind:     domain.CredentialLogin,
		Email:    email,
		Password: password,
	})
}

// Signup registers and signs in a new account
func (s *AuthService) Signup(ctx context.Context, username, email, password string) (*domain.User, error) {
	return s.authenticate(ctx, domain.Credentials{
		Kind:     domain.CredentialSignup,
		Username: username,
		Email:    email,
		Password: password,
	})
}

func (s *AuthService) authenticate(ctx context.Context, creds domain.Credentials) (*domain.User, error) {
	user, err := s.provider.Authenticate(ctx, creds)
	if err != nil {
		return nil, &domain.AuthError{Reason: err.Error()}
	}
	if user == nil {
		return nil, &domain.AuthError{Reason: "identity provider returned no user"}
	}

	s.persist(ctx, user)
	s.setUser(ctx, user)
	s.logger.Info("signed in", "user_id", user.ID, "username", user.Username)

	out := *user
	return &out, nil
}

// Logout forgets the signed-in user
func (s *AuthService) Logout(ctx context.Context) {
	if err := s.store.Delete(ctx, SessionKey); err != nil {
		s.logger.Error("failed to clear session", "error", err)
	}
	s.setUser(ctx, nil)
}

// UpdateProfile merges upd into the signed-in user.
// Returns false when nobody is signed in.
func (s *AuthService) UpdateProfile(ctx context.Context, upd domain.ProfileUpdate) (*domain.User, bool) {
	s.mu.Lock()
	if s.user == nil {
		s.mu.Unlock()
		return nil, false
	}
	updated := upd.Apply(*s.user)
	s.user = &updated
	s.mu.Unlock()

	s.persist(ctx, &updated)

	out := updated
	return &out, true
}

func (s *AuthService) persist(ctx context.Context, user *domain.User) {
	raw, err := json.Marshal(user)
	if err != nil {
		s.logger.Error("failed to encode session", "error", err)
		return
	}
	if err := s.store.Set(ctx, SessionKey, raw); err != nil {
		s.logger.Error("failed to write session", "error", err)
	}
}

// setUser swaps the held user and notifies observers when the id changed
func (s *AuthService) setUser(ctx context.Context, user *domain.User) {
	s.mu.Lock()
	prevID := ""
	if s.user != nil {
		prevID = s.user.ID
	}
	var held *domain.User
	if user != nil {
		u := *user
		held = &u
	}
	s.user = held
	observers := make([]UserObserver, len(s.observers))
	copy(observers, s.observers)
	s.mu.Unlock()

	nextID := ""
	if held != nil {
		nextID = held.ID
	}
	if prevID == nextID {
		return
	}

	for _, fn := range observers {
		var arg *domain.User
		if held != nil {
			u := *held
			arg = &u
		}
		fn(ctx, arg)
	}
}
