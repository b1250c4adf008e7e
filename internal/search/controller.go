package search

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/i474232898/weather-now/internal/metrics"
	"github.com/i474232898/weather-now/internal/weather"
)

// ErrEmptyQuery is returned for blank submissions. No search is issued and the
// state is left untouched.
var ErrEmptyQuery = errors.New("query must not be empty")

// fallbackMessage is shown when a search fails in an unexpected way.
const fallbackMessage = "Something went wrong"

// Searcher runs one lookup-then-fetch search.
type Searcher interface {
	Search(ctx context.Context, query string) (weather.Result, error)
}

// Controller owns the widget's single State and drives it through Reduce.
type Controller struct {
	mu    sync.RWMutex
	state State
	seq   uint64

	searcher     Searcher
	defaultQuery string
	activate     sync.Once

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewController creates a controller in the idle state.
func NewController(searcher Searcher, defaultQuery string) *Controller {
	ctx, cancel := context.WithCancel(context.Background())
	return &Controller{
		searcher:     searcher,
		defaultQuery: defaultQuery,
		ctx:          ctx,
		cancel:       cancel,
	}
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Activate issues the automatic search for the default query. Only the first
// call has any effect.
func (c *Controller) Activate() {
	c.activate.Do(func() {
		if _, err := c.SubmitAsync(c.defaultQuery); err != nil {
			log.Printf("INFO: no default query configured; widget starts idle")
		}
	})
}

// Submit runs a search to completion and returns the resulting state. If a
// newer search was issued meanwhile, the returned state is the newer one.
func (c *Controller) Submit(ctx context.Context, query string) (State, error) {
	seq, query, err := c.begin(query)
	if err != nil {
		return c.State(), err
	}
	c.run(ctx, seq, query)
	return c.State(), nil
}

// SubmitAsync moves to loading and runs the search in the background. The
// returned state is the loading state.
func (c *Controller) SubmitAsync(query string) (State, error) {
	seq, query, err := c.begin(query)
	if err != nil {
		return c.State(), err
	}
	loading := c.State()

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.run(c.ctx, seq, query)
	}()
	return loading, nil
}

// Refresh re-submits the current query in the background. It does nothing
// while a search is in flight or before any query was submitted.
func (c *Controller) Refresh() bool {
	st := c.State()
	if st.Loading || strings.TrimSpace(st.Query) == "" {
		return false
	}
	_, err := c.SubmitAsync(st.Query)
	return err == nil
}

// Wait blocks until all background searches have completed.
func (c *Controller) Wait() {
	c.wg.Wait()
}

// Close cancels in-flight background searches and waits for them.
func (c *Controller) Close() {
	c.cancel()
	c.wg.Wait()
}

func (c *Controller) begin(query string) (uint64, string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return 0, "", ErrEmptyQuery
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	ev := Submitted{Seq: c.seq, Query: query, TraceID: uuid.NewString()}
	c.state, _ = Reduce(c.state, ev)
	log.Printf("DEBUG: search %d (%s) started for %q", ev.Seq, ev.TraceID, query)
	return ev.Seq, query, nil
}

func (c *Controller) run(ctx context.Context, seq uint64, query string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("ERROR: search %d panicked: %v", seq, r)
			c.complete(Failed{Seq: seq, Message: fallbackMessage})
		}
	}()

	result, err := c.searcher.Search(ctx, query)
	if err != nil {
		c.complete(Failed{Seq: seq, Message: weather.UserMessage(err)})
		return
	}
	c.complete(Succeeded{Seq: seq, Result: result})
}

func (c *Controller) complete(ev Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, applied := Reduce(c.state, ev)
	if !applied {
		metrics.StaleResultsTotal.Inc()
		log.Printf("DEBUG: discarding stale search completion; latest is %d", c.state.Seq)
		return
	}
	c.state = next
}
