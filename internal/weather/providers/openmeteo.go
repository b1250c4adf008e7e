package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-now/internal/weather"
)

// DefaultForecastURL is the Open-Meteo forecast endpoint.
const DefaultForecastURL = "https://api.open-meteo.com/v1/forecast"

const (
	hourlyVariables = "temperature_2m,relativehumidity_2m,cloudcover,surface_pressure"
	dailyVariables  = "temperature_2m_max,temperature_2m_min"
)

// OpenMeteoProvider implements weather.Fetcher for Open-Meteo.
type OpenMeteoProvider struct {
	name    string
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

// NewOpenMeteoProvider creates a fetcher. An empty baseURL selects DefaultForecastURL.
func NewOpenMeteoProvider(client *http.Client, baseURL string) *OpenMeteoProvider {
	if baseURL == "" {
		baseURL = DefaultForecastURL
	}
	return &OpenMeteoProvider{
		name:    "openmeteo",
		baseURL: baseURL,
		client:  client,
		circuit: newCircuitBreaker("openmeteo", 30*time.Second),
	}
}

// Forecast fetches current weather plus hourly and daily series. The server
// picks the timezone from the coordinates.
func (p *OpenMeteoProvider) Forecast(ctx context.Context, lat, lon float64) (weather.Snapshot, error) {
	values := url.Values{}
	values.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	values.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	values.Set("current_weather", "true")
	values.Set("hourly", hourlyVariables)
	values.Set("daily", dailyVariables)
	values.Set("timezone", "auto")

	u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
	resp, err := doRequest(ctx, p.client, p.circuit, p.name, u)
	if err != nil {
		return weather.Snapshot{}, fmt.Errorf("%w: %w", weather.ErrWeatherFetch, err)
	}
	defer resp.Body.Close()

	var snapshot weather.Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snapshot); err != nil {
		return weather.Snapshot{}, fmt.Errorf("%w: decode response: %v", weather.ErrWeatherFetch, err)
	}
	return snapshot, nil
}
