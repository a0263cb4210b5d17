package domain

import (
	"context"
	"strings"
	"time"
)

// Season is the time of year a wardrobe item is meant for
type Season string

const (
	SeasonSummer Season = "summer"
	SeasonWinter Season = "winter"
	SeasonSpring Season = "spring"
	SeasonAutumn Season = "autumn"
	SeasonAll    Season = "all" // worn year-round, matches every season
)

// Valid reports whether s is one of the known seasons
func (s Season) Valid() bool {
	switch s {
	case SeasonSummer, SeasonWinter, SeasonSpring, SeasonAutumn, SeasonAll:
		return true
	}
	return false
}

// WardrobeItem is a piece of clothing saved by a user
type WardrobeItem struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Color     *string   `json:"color,omitempty"`
	Season    Season    `json:"season"`
	ImageURL  *string   `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewWardrobeItem is the user-supplied part of a wardrobe item
type NewWardrobeItem struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Color    *string `json:"color,omitempty"`
	Season   Season  `json:"season"`
	ImageURL *string `json:"image_url,omitempty"`
}

// Validate checks the fields the store requires
func (n NewWardrobeItem) Validate() error {
	if strings.TrimSpace(n.Name) == "" {
		return NewInvalidInput("name is required")
	}
	if strings.TrimSpace(n.Category) == "" {
		return NewInvalidInput("category is required")
	}
	if !n.Season.Valid() {
		return NewInvalidInput("season must be one of summer, winter, spring, autumn, all")
	}
	return nil
}

// WardrobeRepository is the remote table holding wardrobe items.
// Row-level ownership is enforced by the backend.
type WardrobeRepository interface {
	// ListByUser returns the user's items, newest first
	ListByUser(ctx context.Context, userID string) ([]WardrobeItem, error)

	// Insert stores a new item owned by userID and returns the stored row
	Insert(ctx context.Context, userID string, item NewWardrobeItem) (WardrobeItem, error)

	// Delete removes the item with the given id. Deleting a missing id is not an error.
	Delete(ctx context.Context, id string) error

	// Health checks backend connectivity
	Health(ctx context.Context) error
}

// WardrobeState is a point-in-time view of the wardrobe data
type WardrobeState struct {
	Items   []WardrobeItem `json:"items"`
	Loading bool           `json:"loading"`
	Error   string         `json:"error,omitempty"`
}
