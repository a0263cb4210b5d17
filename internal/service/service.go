package service

import (
	"context"

	"github.com/outfique/backend/internal/domain"
)

// Repositories are re-exported from domain for convenience
type (
	WardrobeRepository     = domain.WardrobeRepository
	NotificationRepository = domain.NotificationRepository
)

// UserSource exposes the signed-in user, nil when signed out
type UserSource interface {
	CurrentUser() *domain.User
}

// WeatherProvider looks up current weather for a city.
// A failed lookup still returns a usable snapshot alongside the error.
type WeatherProvider interface {
	GetCurrentWeather(ctx context.Context, city string) (domain.WeatherSnapshot, error)
}
