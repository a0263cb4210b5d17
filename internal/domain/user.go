package domain

import "context"

// User is the signed-in account held by the session
type User struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	DisplayName    string `json:"displayName"`
	Bio            string `json:"bio"`
	ProfilePicture string `json:"profilePicture,omitempty"`
	IsPremium      bool   `json:"isPremium"`
}

// ProfileUpdate carries the fields a profile edit may change.
// Nil fields are left untouched.
type ProfileUpdate struct {
	Username       *string `json:"username,omitempty"`
	DisplayName    *string `json:"displayName,omitempty"`
	Bio            *string `json:"bio,omitempty"`
	ProfilePicture *string `json:"profilePicture,omitempty"`
	IsPremium      *bool   `json:"isPremium,omitempty"`
}

// Apply merges the non-nil fields of u into a copy of user
func (u ProfileUpdate) Apply(user User) User {
	if u.Username != nil {
		user.Username = *u.Username
	}
	if u.DisplayName != nil {
		user.DisplayName = *u.DisplayName
	}
	if u.Bio != nil {
		user.Bio = *u.Bio
	}
	if u.ProfilePicture != nil {
		user.ProfilePicture = *u.ProfilePicture
	}
	if u.IsPremium != nil {
		user.IsPremium = *u.IsPremium
	}
	return user
}

// CredentialKind tells the identity provider which flow is being run
type CredentialKind int

const (
	CredentialLogin CredentialKind = iota
	CredentialSignup
)

// Credentials is what the user typed into the login or signup form
type Credentials struct {
	Kind     CredentialKind
	Username string
	Email    string
	Password string
}

// IdentityProvider turns credentials into a user.
// Implementations can be swapped (mock, OAuth, hosted auth) without touching the session holder.
type IdentityProvider interface {
	Authenticate(ctx context.Context, creds Credentials) (*User, error)
}

// SessionStore persists small values for the local session, keyed by name.
// Get returns (nil, nil) when the key is absent.
type SessionStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
