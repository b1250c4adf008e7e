package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-now/internal/metrics"
)

var (
	errUnexpected   = errors.New("unexpected status code")
	errCircuitOpen  = errors.New("circuit breaker open")
	errNoHTTPClient = errors.New("http client not configured")
)

// newCircuitBreaker returns the breaker guarding one upstream. It trips after
// five consecutive failures and probes again after timeout.
func newCircuitBreaker(name string, timeout time.Duration) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    1 * time.Minute,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})
}

// doRequest executes a single GET through the circuit breaker. There are no
// retries: a failed call is reported to the caller as is. Any non-2xx status
// is an error and the response body is closed. A cancelled caller is not an
// upstream failure and never counts towards tripping the breaker.
func doRequest(
	ctx context.Context,
	client *http.Client,
	cb *gobreaker.CircuitBreaker,
	upstream string,
	rawURL string,
) (*http.Response, error) {
	if client == nil {
		return nil, errNoHTTPClient
	}
	if err := ctx.Err(); errors.Is(err, context.Canceled) {
		return nil, err
	}

	var cancelled error
	start := time.Now()
	result, err := cb.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				cancelled = err
				return nil, nil
			}
			return nil, err
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			resp.Body.Close()
			return nil, fmt.Errorf("%w: %d", errUnexpected, resp.StatusCode)
		}
		return resp, nil
	})
	metrics.UpstreamDurationMs.WithLabelValues(upstream).Observe(float64(time.Since(start).Milliseconds()))

	if cancelled != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(upstream, "cancelled").Inc()
		return nil, cancelled
	}

	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(upstream, "error").Inc()
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %v", errCircuitOpen, err)
		}
		return nil, err
	}
	metrics.UpstreamRequestsTotal.WithLabelValues(upstream, "ok").Inc()

	resp, ok := result.(*http.Response)
	if !ok {
		return nil, fmt.Errorf("unexpected result type from circuit breaker")
	}
	return resp, nil
}
