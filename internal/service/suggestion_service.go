package service

import (
	"context"

	"github.com/outfique/backend/internal/domain"
	"github.com/outfique/backend/internal/recommend"
)

// ItemSource exposes the wardrobe items recommendations are drawn from
type ItemSource interface {
	Items() []domain.WardrobeItem
}

// SuggestionService combines the weather and the wardrobe into outfit suggestions
type SuggestionService struct {
	tracker  *WeatherTracker
	wardrobe ItemSource
}

// NewSuggestionService creates a new suggestion service
func NewSuggestionService(tracker *WeatherTracker, wardrobe ItemSource) *SuggestionService {
	return &SuggestionService{tracker: tracker, wardrobe: wardrobe}
}

// ForCity looks up the weather for city and picks matching wardrobe items.
// A blank city reuses the last lookup.
func (s *SuggestionService) ForCity(ctx context.Context, city string) domain.Suggestions {
	state := s.tracker.Lookup(ctx, city)

	out := domain.Suggestions{
		Weather:      state.Snapshot,
		WeatherError: state.Error,
		OutfitIdeas:  []string{},
		Recommended:  []domain.WardrobeItem{},
	}
	if state.Snapshot == nil {
		return out
	}

	condition := state.Snapshot.Condition
	if outfit, ok := recommend.Lookup(condition); ok {
		out.OutfitIdeas = append([]string(nil), outfit.Suggestions...)
	}
	out.Recommended = recommend.For(condition, s.wardrobe.Items())
	return out
}
