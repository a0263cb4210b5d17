package service

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/outfique/backend/internal/domain"
)

// WeatherTracker remembers the latest weather lookup.
// Every lookup is numbered; only the most recently started one may update the state.
type WeatherTracker struct {
	provider WeatherProvider
	logger   *slog.Logger

	mu    sync.Mutex
	seq   uint64
	state domain.WeatherState
}

// NewWeatherTracker creates a tracker over provider
func NewWeatherTracker(provider WeatherProvider, logger *slog.Logger) *WeatherTracker {
	if logger == nil {
		logger = slog.Default()
	}
	return &WeatherTracker{provider: provider, logger: logger}
}

// Lookup fetches weather for city and records it.
// Blank cities are ignored and the current state is returned unchanged.
// The returned state always describes this lookup, even when a newer one superseded it.
func (t *WeatherTracker) Lookup(ctx context.Context, city string) domain.WeatherState {
	city = strings.TrimSpace(city)
	if city == "" {
		return t.State()
	}

	t.mu.Lock()
	t.seq++
	seq := t.seq
	t.state.City = city
	t.state.Loading = true
	t.mu.Unlock()

	snapshot, err := t.provider.GetCurrentWeather(ctx, city)

	result := domain.WeatherState{City: city, Snapshot: &snapshot}
	if err != nil {
		result.Error = err.Error()
		t.logger.Warn("weather lookup failed, using fallback", "city", city, "error", err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if seq != t.seq {
		t.logger.Debug("discarding stale weather result", "city", city)
		return result
	}
	t.state = result
	return result
}

// State returns a copy of the latest recorded state
func (t *WeatherTracker) State() domain.WeatherState {
	t.mu.Lock()
	defer t.mu.Unlock()
	st := t.state
	if st.Snapshot != nil {
		snap := *st.Snapshot
		st.Snapshot = &snap
	}
	return st
}
