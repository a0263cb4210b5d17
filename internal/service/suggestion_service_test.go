package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outfique/backend/internal/domain"
)

type fixedItems []domain.WardrobeItem

func (f fixedItems) Items() []domain.WardrobeItem { return f }

func TestSuggestionService_ForCity(t *testing.T) {
	provider := &stubWeather{snapshots: map[string]domain.WeatherSnapshot{
		"Bergen": {Location: "Bergen", Condition: "Rain", Icon: "🌧️"},
	}}
	wardrobe := fixedItems{
		item("1", "Yellow raincoat", "Coat", domain.SeasonAutumn),
		item("2", "Sandals", "Shoes", domain.SeasonSummer),
		item("3", "Chelsea boots", "Boots", domain.SeasonAll),
	}
	svc := NewSuggestionService(NewWeatherTracker(provider, discardLogger()), wardrobe)

	got := svc.ForCity(context.Background(), "Bergen")

	require.NotNil(t, got.Weather)
	assert.Equal(t, "Rain", got.Weather.Condition)
	assert.Empty(t, got.WeatherError)
	assert.Contains(t, got.OutfitIdeas, "Rain boots")
	assert.Equal(t, []string{"3", "1"}, ids(got.Recommended))
}

func TestSuggestionService_FallbackKeepsError(t *testing.T) {
	provider := &stubWeather{
		snapshots: map[string]domain.WeatherSnapshot{"Atlantis": {Location: "Atlantis", Condition: "Clear"}},
		err:       errors.New("weather: data not found"),
	}
	svc := NewSuggestionService(NewWeatherTracker(provider, discardLogger()), fixedItems{})

	got := svc.ForCity(context.Background(), "Atlantis")

	require.NotNil(t, got.Weather)
	assert.Equal(t, "weather: data not found", got.WeatherError)
	assert.NotEmpty(t, got.OutfitIdeas)
	assert.NotNil(t, got.Recommended)
	assert.Empty(t, got.Recommended)
}

func TestSuggestionService_NoWeatherYet(t *testing.T) {
	svc := NewSuggestionService(NewWeatherTracker(&stubWeather{}, discardLogger()), fixedItems{})

	got := svc.ForCity(context.Background(), " ")

	assert.Nil(t, got.Weather)
	assert.NotNil(t, got.OutfitIdeas)
	assert.NotNil(t, got.Recommended)
}

func TestSuggestionService_OutfitIdeasAreACopy(t *testing.T) {
	provider := &stubWeather{snapshots: map[string]domain.WeatherSnapshot{
		"Bergen": {Location: "Bergen", Condition: "Rain"},
	}}
	svc := NewSuggestionService(NewWeatherTracker(provider, discardLogger()), fixedItems{})

	first := svc.ForCity(context.Background(), "Bergen")
	require.NotEmpty(t, first.OutfitIdeas)
	want := first.OutfitIdeas[0]
	first.OutfitIdeas[0] = "mutated"

	again := svc.ForCity(context.Background(), "Bergen")
	assert.Equal(t, want, again.OutfitIdeas[0])
}
