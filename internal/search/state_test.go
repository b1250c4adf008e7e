package search

import (
	"testing"

	"github.com/i474232898/weather-now/internal/weather"
)

var londonResult = weather.Result{
	Place:   weather.Place{ID: 1, Name: "London", Latitude: 51.5, Longitude: -0.12},
	Weather: weather.Snapshot{Current: &weather.CurrentWeather{Temperature: 15, WeatherCode: 3}},
}

func TestReduceLifecycle(t *testing.T) {
	var s State
	if s.Status() != StatusIdle {
		t.Fatalf("zero state should be idle, got %s", s.Status())
	}

	s, ok := Reduce(s, Submitted{Seq: 1, Query: "London"})
	if !ok || s.Status() != StatusLoading || s.Query != "London" {
		t.Fatalf("expected loading state, got %+v", s)
	}

	s, ok = Reduce(s, Succeeded{Seq: 1, Result: londonResult})
	if !ok || s.Status() != StatusSuccess {
		t.Fatalf("expected success state, got %+v", s)
	}
	if s.Result == nil || s.Result.Place.Name != "London" || s.Result.Weather.Current == nil {
		t.Fatalf("success must carry place and weather together, got %+v", s.Result)
	}

	s, ok = Reduce(s, Submitted{Seq: 2, Query: "Atlantis"})
	if !ok || s.Result != nil || s.Error != "" || !s.Loading {
		t.Fatalf("a new submission must clear the previous result, got %+v", s)
	}

	s, ok = Reduce(s, Failed{Seq: 2, Message: "No results for that city"})
	if !ok || s.Status() != StatusError || s.Result != nil {
		t.Fatalf("expected error state without result, got %+v", s)
	}

	s, _ = Reduce(s, Submitted{Seq: 3, Query: "Paris"})
	if s.Error != "" {
		t.Fatalf("a new submission must clear the previous error, got %+v", s)
	}
}

func TestReduceDiscardsStaleCompletion(t *testing.T) {
	s, _ := Reduce(State{}, Submitted{Seq: 1, Query: "London"})
	s, _ = Reduce(s, Submitted{Seq: 2, Query: "Paris"})

	next, ok := Reduce(s, Succeeded{Seq: 1, Result: londonResult})
	if ok {
		t.Fatal("completion for an outdated submission must be discarded")
	}
	if next != s {
		t.Fatalf("state changed on a discarded event: %+v", next)
	}

	next, ok = Reduce(s, Failed{Seq: 1, Message: "Failed to fetch weather"})
	if ok || next.Error != "" {
		t.Fatalf("stale failure must be discarded, got %+v", next)
	}
}

func TestReduceIgnoresCompletionWhenNotLoading(t *testing.T) {
	s, _ := Reduce(State{}, Submitted{Seq: 1, Query: "London"})
	s, _ = Reduce(s, Failed{Seq: 1, Message: "Failed to fetch location"})

	if _, ok := Reduce(s, Succeeded{Seq: 1, Result: londonResult}); ok {
		t.Fatal("a second completion for the same submission must be discarded")
	}
}
