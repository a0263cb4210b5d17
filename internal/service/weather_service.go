package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/outfique/backend/internal/domain"
	"github.com/outfique/backend/internal/metrics"
	"github.com/outfique/backend/pkg/utils"
)

// DefaultWeatherBaseURL is the OpenWeatherMap API root
const DefaultWeatherBaseURL = "https://api.openweathermap.org"

// fallbackConditions are drawn from when the provider cannot be reached
var fallbackConditions = []string{"Clear", "Clouds", "Rain", "Drizzle"}

var conditionIcons = map[string]string{
	"Clear":        "☀️",
	"Clouds":       "☁️",
	"Rain":         "🌧️",
	"Drizzle":      "🌦️",
	"Thunderstorm": "⛈️",
	"Snow":         "❄️",
	"Mist":         "🌫️",
	"Fog":          "🌫️",
	"Haze":         "🌫️",
}

const defaultIcon = "🌤️"

// IconFor returns the display icon for a provider condition
func IconFor(condition string) string {
	if icon, ok := conditionIcons[condition]; ok {
		return icon
	}
	return defaultIcon
}

// WeatherService handles weather data fetching
type WeatherService struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client

	randMu sync.Mutex
	rand   utils.IntSource
}

// NewWeatherService creates a new weather service
func NewWeatherService(apiKey, baseURL string, timeout time.Duration) *WeatherService {
	if baseURL == "" {
		baseURL = DefaultWeatherBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &WeatherService{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// OpenWeatherResponse represents the OpenWeatherMap API response
type OpenWeatherResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"` // m/s with units=metric
	} `json:"wind"`
}

// GetCurrentWeather fetches current weather for city.
// When the provider fails, a generated snapshot for city is returned together with the error.
func (s *WeatherService) GetCurrentWeather(ctx context.Context, city string) (domain.WeatherSnapshot, error) {
	snapshot, err := s.fetch(ctx, city)
	if err != nil {
		metrics.WeatherLookups.WithLabelValues("fallback").Inc()
		return s.fallbackWeather(city), err
	}
	metrics.WeatherLookups.WithLabelValues("live").Inc()
	return snapshot, nil
}

func (s *WeatherService) fetch(ctx context.Context, city string) (domain.WeatherSnapshot, error) {
	if s.apiKey == "" {
		return domain.WeatherSnapshot{}, errors.New("weather: no API key configured")
	}

	query := url.Values{}
	query.Set("q", city)
	query.Set("appid", s.apiKey)
	query.Set("units", "metric")
	endpoint := s.baseURL + "/data/2.5/weather?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.WeatherSnapshot{}, fmt.Errorf("weather: failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return domain.WeatherSnapshot{}, fmt.Errorf("weather: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.WeatherSnapshot{}, fmt.Errorf("weather: data not found for %q (status %d)", city, resp.StatusCode)
	}

	var owResp OpenWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&owResp); err != nil {
		return domain.WeatherSnapshot{}, fmt.Errorf("weather: failed to decode response: %w", err)
	}
	if len(owResp.Weather) == 0 {
		return domain.WeatherSnapshot{}, errors.New("weather: response has no conditions")
	}

	condition := owResp.Weather[0].Main
	return domain.WeatherSnapshot{
		Location:    owResp.Name,
		Temperature: utils.RoundInt(owResp.Main.Temp),
		Condition:   condition,
		Humidity:    owResp.Main.Humidity,
		WindSpeed:   utils.RoundInt(owResp.Wind.Speed * 3.6),
		Icon:        IconFor(condition),
	}, nil
}

// fallbackWeather returns a plausible random snapshot for city
func (s *WeatherService) fallbackWeather(city string) domain.WeatherSnapshot {
	s.randMu.Lock()
	defer s.randMu.Unlock()

	condition := utils.Pick(s.rand, fallbackConditions)
	return domain.WeatherSnapshot{
		Location:    city,
		Temperature: utils.RandRange(s.rand, 5, 35),
		Condition:   condition,
		Humidity:    utils.RandRange(s.rand, 30, 80),
		WindSpeed:   utils.RandRange(s.rand, 5, 25),
		Icon:        IconFor(condition),
	}
}
