package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/outfique/backend/internal/domain"
)

// MockIdentityProvider accepts any credentials and synthesizes a user from them
type MockIdentityProvider struct {
	now func() time.Time
}

// NewMockIdentityProvider creates a provider that always succeeds
func NewMockIdentityProvider() *MockIdentityProvider {
	return &MockIdentityProvider{now: time.Now}
}

// Authenticate implements domain.IdentityProvider
func (p *MockIdentityProvider) Authenticate(ctx context.Context, creds domain.Credentials) (*domain.User, error) {
	switch creds.Kind {
	case domain.CredentialSignup:
		return &domain.User{
			ID:          strconv.FormatInt(p.now().UnixMilli(), 10),
			Username:    creds.Username,
			Email:       creds.Email,
			DisplayName: creds.Username,
			Bio:         "New to fashion world 🌟",
		}, nil
	default:
		name, _, _ := strings.Cut(creds.Email, "@")
		return &domain.User{
			ID:          "1",
			Username:    name,
			Email:       creds.Email,
			DisplayName: name,
			Bio:         "Fashion enthusiast 👗",
		}, nil
	}
}
