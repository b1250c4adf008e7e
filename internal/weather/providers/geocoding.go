package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-now/internal/weather"
)

// DefaultGeocodingURL is the Open-Meteo geocoding search endpoint.
const DefaultGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"

// GeocodingProvider implements weather.Resolver on the Open-Meteo geocoding API.
type GeocodingProvider struct {
	name    string
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

// NewGeocodingProvider creates a resolver. An empty baseURL selects DefaultGeocodingURL.
func NewGeocodingProvider(client *http.Client, baseURL string) *GeocodingProvider {
	if baseURL == "" {
		baseURL = DefaultGeocodingURL
	}
	return &GeocodingProvider{
		name:    "geocoding",
		baseURL: baseURL,
		client:  client,
		circuit: newCircuitBreaker("geocoding", 30*time.Second),
	}
}

// Resolve returns the first candidate for name. Only one result is requested.
func (p *GeocodingProvider) Resolve(ctx context.Context, name string) (weather.Place, error) {
	values := url.Values{}
	values.Set("name", name)
	values.Set("count", "1")
	values.Set("language", "en")
	values.Set("format", "json")

	u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
	resp, err := doRequest(ctx, p.client, p.circuit, p.name, u)
	if err != nil {
		return weather.Place{}, fmt.Errorf("%w: %w", weather.ErrLocationLookup, err)
	}
	defer resp.Body.Close()

	var payload struct {
		Results []weather.Place `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.Place{}, fmt.Errorf("%w: decode response: %v", weather.ErrLocationLookup, err)
	}

	if len(payload.Results) == 0 {
		return weather.Place{}, fmt.Errorf("%w for %q", weather.ErrNoResults, name)
	}
	return payload.Results[0], nil
}
