// Package recommend picks wardrobe items that suit a weather condition.
package recommend

import (
	"github.com/outfique/backend/internal/domain"
	"github.com/outfique/backend/pkg/utils"
)

// MaxItems caps how many wardrobe items are recommended at once
const MaxItems = 5

// Outfit describes what to wear for one weather condition
type Outfit struct {
	Suggestions []string      // generic ideas shown to the user
	Categories  []string      // keywords matched against item category or name, in priority order
	Season      domain.Season // items of this season (or "all") are eligible
}

// outfits is keyed by the provider's condition label
var outfits = map[string]Outfit{
	"Clear": {
		Suggestions: []string{"Light cotton t-shirt", "Denim shorts", "Sandals", "Sunglasses", "Sun hat"},
		Categories:  []string{"t-shirt", "shorts", "dress", "sandals", "hat"},
		Season:      domain.SeasonSummer,
	},
	"Clouds": {
		Suggestions: []string{"Light sweater", "Jeans", "Sneakers", "Light jacket", "Casual top"},
		Categories:  []string{"sweater", "jeans", "jacket", "sneakers", "top"},
		Season:      domain.SeasonSpring,
	},
	"Rain": {
		Suggestions: []string{"Waterproof jacket", "Rain boots", "Umbrella", "Quick-dry pants", "Hood or cap"},
		Categories:  []string{"jacket", "boots", "coat", "pants", "cap"},
		Season:      domain.SeasonAutumn,
	},
	"Drizzle": {
		Suggestions: []string{"Light rain jacket", "Water-resistant sneakers", "Layered top", "Jeans"},
		Categories:  []string{"jacket", "hoodie", "sneakers", "jeans"},
		Season:      domain.SeasonAutumn,
	},
	"Thunderstorm": {
		Suggestions: []string{"Waterproof coat", "Rain boots", "Dark jeans", "Warm layer"},
		Categories:  []string{"coat", "jacket", "boots", "jeans"},
		Season:      domain.SeasonAutumn,
	},
	"Snow": {
		Suggestions: []string{"Insulated coat", "Wool sweater", "Snow boots", "Scarf", "Gloves"},
		Categories:  []string{"coat", "sweater", "boots", "scarf", "gloves"},
		Season:      domain.SeasonWinter,
	},
	"Mist": {
		Suggestions: []string{"Light cardigan", "Comfortable jeans", "Light scarf", "Versatile shoes"},
		Categories:  []string{"cardigan", "jacket", "jeans", "scarf"},
		Season:      domain.SeasonAutumn,
	},
	"Fog": {
		Suggestions: []string{"Light cardigan", "Comfortable jeans", "Light scarf", "Versatile shoes"},
		Categories:  []string{"cardigan", "jacket", "jeans", "scarf"},
		Season:      domain.SeasonAutumn,
	},
	"Haze": {
		Suggestions: []string{"Breathable shirt", "Light trousers", "Sunglasses", "Cap"},
		Categories:  []string{"shirt", "trousers", "pants", "cap"},
		Season:      domain.SeasonSummer,
	},
}

// Lookup returns the outfit entry for condition
func Lookup(condition string) (Outfit, bool) {
	o, ok := outfits[condition]
	return o, ok
}

// For returns up to MaxItems wardrobe items for the weather condition.
//
// Items are first limited to the condition's season (or "all"), then grouped
// by category keyword in table order. An item matching several keywords shows
// up once per keyword.
func For(condition string, items []domain.WardrobeItem) []domain.WardrobeItem {
	result := make([]domain.WardrobeItem, 0, MaxItems)

	outfit, ok := outfits[condition]
	if !ok || len(items) == 0 {
		return result
	}

	seasonal := make([]domain.WardrobeItem, 0, len(items))
	for _, item := range items {
		if item.Season == outfit.Season || item.Season == domain.SeasonAll {
			seasonal = append(seasonal, item)
		}
	}

	for _, keyword := range outfit.Categories {
		for _, item := range seasonal {
			if utils.ContainsFold(item.Category, keyword) || utils.ContainsFold(item.Name, keyword) {
				result = append(result, item)
			}
		}
	}

	if len(result) > MaxItems {
		result = result[:MaxItems]
	}
	return result
}
