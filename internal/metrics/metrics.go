package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Search outcomes.
const (
	OutcomeSuccess      = "success"
	OutcomeLookupFailed = "lookup_failed"
	OutcomeFetchFailed  = "fetch_failed"
)

var (
	SearchesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "weathernow_searches_total",
		Help: "Total searches by outcome",
	}, []string{"outcome"})
	StaleResultsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "weathernow_stale_results_total",
		Help: "Search completions discarded because a newer search was issued",
	})
	UpstreamRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "weathernow_upstream_requests_total",
		Help: "Upstream API requests by upstream and result",
	}, []string{"upstream", "result"})
	UpstreamDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "weathernow_upstream_duration_ms",
		Help:    "Upstream API call duration in milliseconds",
		Buckets: []float64{10, 25, 50, 100, 200, 500, 1000, 2500, 5000},
	}, []string{"upstream"})
)

func init() {
	prometheus.MustRegister(SearchesTotal)
	prometheus.MustRegister(StaleResultsTotal)
	prometheus.MustRegister(UpstreamRequestsTotal)
	prometheus.MustRegister(UpstreamDurationMs)
}

// Handler exposes the registered metrics for scraping.
func Handler() http.Handler { return promhttp.Handler() }
