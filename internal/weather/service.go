package weather

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/i474232898/weather-now/internal/metrics"
)

// Service runs the two-step search: resolve the place, then fetch its forecast.
type Service struct {
	resolver Resolver
	fetcher  Fetcher
}

// NewService creates a new Service.
func NewService(resolver Resolver, fetcher Fetcher) *Service {
	return &Service{
		resolver: resolver,
		fetcher:  fetcher,
	}
}

// Search resolves query and fetches weather for the first match. The forecast
// request is only issued after the lookup succeeds. Errors are always one of
// the ErrLocationLookup or ErrWeatherFetch kinds.
func (s *Service) Search(ctx context.Context, query string) (Result, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Result{}, fmt.Errorf("%w: empty query", ErrLocationLookup)
	}

	place, err := s.resolver.Resolve(ctx, query)
	if err != nil {
		if !errors.Is(err, ErrLocationLookup) {
			err = fmt.Errorf("%w: %v", ErrLocationLookup, err)
		}
		log.Printf("DEBUG: location lookup for %q failed: %v", query, err)
		metrics.SearchesTotal.WithLabelValues(metrics.OutcomeLookupFailed).Inc()
		return Result{}, err
	}

	snapshot, err := s.fetcher.Forecast(ctx, place.Latitude, place.Longitude)
	if err != nil {
		if !errors.Is(err, ErrWeatherFetch) {
			err = fmt.Errorf("%w: %v", ErrWeatherFetch, err)
		}
		log.Printf("DEBUG: weather fetch for %s failed: %v", place.Label(), err)
		metrics.SearchesTotal.WithLabelValues(metrics.OutcomeFetchFailed).Inc()
		return Result{}, err
	}

	metrics.SearchesTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	return Result{Place: place, Weather: snapshot}, nil
}
