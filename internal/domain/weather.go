package domain

// WeatherSnapshot represents current weather for a city
type WeatherSnapshot struct {
	Location    string `json:"location"`
	Temperature int    `json:"temperature"`
	Condition   string `json:"condition"`
	Humidity    int    `json:"humidity"`
	WindSpeed   int    `json:"windSpeed"`
	Icon        string `json:"icon"`
}

// WeatherState is the last lookup result as seen by the UI.
// Snapshot and Error can both be set: a failed lookup still yields fallback data.
type WeatherState struct {
	City     string           `json:"city"`
	Snapshot *WeatherSnapshot `json:"weather"`
	Loading  bool             `json:"loading"`
	Error    string           `json:"error,omitempty"`
}
