package weather

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrLocationLookup covers every failure of the geocoding step.
	ErrLocationLookup = errors.New("failed to fetch location")
	// ErrNoResults is a location lookup that returned an empty result set.
	ErrNoResults = fmt.Errorf("%w: no results", ErrLocationLookup)
	// ErrWeatherFetch covers every failure of the forecast step.
	ErrWeatherFetch = errors.New("failed to fetch weather")
)

// Resolver turns a free-text place name into the first matching Place.
type Resolver interface {
	Resolve(ctx context.Context, name string) (Place, error)
}

// Fetcher retrieves current and short-horizon forecast weather for coordinates.
type Fetcher interface {
	Forecast(ctx context.Context, lat, lon float64) (Snapshot, error)
}

// UserMessage maps a search error to the text shown to the end user.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNoResults):
		return "No results for that city"
	case errors.Is(err, ErrLocationLookup):
		return "Failed to fetch location"
	case errors.Is(err, ErrWeatherFetch):
		return "Failed to fetch weather"
	default:
		return "Something went wrong"
	}
}
