package domain

// Suggestions aggregates what the suggestions page shows for one city
type Suggestions struct {
	Weather      *WeatherSnapshot `json:"weather"`
	WeatherError string           `json:"weather_error,omitempty"`
	OutfitIdeas  []string         `json:"outfit_ideas"`
	Recommended  []WardrobeItem   `json:"recommended"`
}
