package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outfique/backend/internal/domain"
)

func TestWeatherTracker_Lookup(t *testing.T) {
	provider := &stubWeather{snapshots: map[string]domain.WeatherSnapshot{
		"Paris": {Location: "Paris", Condition: "Rain"},
	}}
	tracker := NewWeatherTracker(provider, discardLogger())

	got := tracker.Lookup(context.Background(), "  Paris ")

	require.NotNil(t, got.Snapshot)
	assert.Equal(t, "Paris", got.City)
	assert.Equal(t, "Rain", got.Snapshot.Condition)
	assert.False(t, got.Loading)
	assert.Empty(t, got.Error)
	assert.Equal(t, got, tracker.State())
}

func TestWeatherTracker_IgnoresBlankCity(t *testing.T) {
	provider := &stubWeather{snapshots: map[string]domain.WeatherSnapshot{
		"Paris": {Location: "Paris", Condition: "Rain"},
	}}
	tracker := NewWeatherTracker(provider, discardLogger())
	tracker.Lookup(context.Background(), "Paris")

	got := tracker.Lookup(context.Background(), "   ")

	assert.Equal(t, "Paris", got.City)
	require.NotNil(t, got.Snapshot)
}

func TestWeatherTracker_RecordsErrorWithFallback(t *testing.T) {
	provider := &stubWeather{
		snapshots: map[string]domain.WeatherSnapshot{"Nowhere": {Location: "Nowhere", Condition: "Clear"}},
		err:       errors.New("weather: data not found"),
	}
	tracker := NewWeatherTracker(provider, discardLogger())

	got := tracker.Lookup(context.Background(), "Nowhere")

	require.NotNil(t, got.Snapshot)
	assert.Equal(t, "Nowhere", got.Snapshot.Location)
	assert.Equal(t, "weather: data not found", got.Error)
}

func TestWeatherTracker_StaleLookupDoesNotOverwrite(t *testing.T) {
	release := make(chan struct{})
	provider := &stubWeather{
		snapshots: map[string]domain.WeatherSnapshot{
			"London": {Location: "London", Condition: "Drizzle"},
			"Paris":  {Location: "Paris", Condition: "Clear"},
		},
		block: map[string]chan struct{}{"London": release},
	}
	tracker := NewWeatherTracker(provider, discardLogger())

	done := make(chan domain.WeatherState)
	go func() { done <- tracker.Lookup(context.Background(), "London") }()

	assert.Eventually(t, func() bool {
		st := tracker.State()
		return st.City == "London" && st.Loading
	}, time.Second, 5*time.Millisecond)

	latest := tracker.Lookup(context.Background(), "Paris")
	assert.Equal(t, "Paris", latest.Snapshot.Location)

	close(release)
	stale := <-done
	assert.Equal(t, "London", stale.Snapshot.Location)

	st := tracker.State()
	assert.Equal(t, "Paris", st.City)
	assert.Equal(t, "Paris", st.Snapshot.Location)
	assert.False(t, st.Loading)
}
