package domain

import "errors"

var (
	// ErrAuthRequired is returned when an operation needs a signed-in user
	ErrAuthRequired = errors.New("authentication required")

	// ErrNotFound is returned when a referenced entity does not exist
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput wraps validation failures
	ErrInvalidInput = errors.New("invalid input")
)

// InvalidInputError describes which input was rejected
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string { return "invalid input: " + e.Reason }

func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }

// NewInvalidInput builds an error matching ErrInvalidInput
func NewInvalidInput(reason string) error {
	return &InvalidInputError{Reason: reason}
}

// AuthError is returned when the identity provider rejects credentials
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string { return "auth: " + e.Reason }
