package search

import (
	"github.com/i474232898/weather-now/internal/weather"
)

// Status is the lifecycle phase of the widget's search.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// State is the widget's search state. It is replaced wholesale on every
// transition; at most one of Error and Result is set.
type State struct {
	Query   string          `json:"query"`
	Loading bool            `json:"loading"`
	Error   string          `json:"error,omitempty"`
	Result  *weather.Result `json:"result,omitempty"`

	// Seq identifies the latest issued submission.
	Seq     uint64 `json:"seq"`
	TraceID string `json:"traceId,omitempty"`
}

// Status derives the lifecycle phase from the state fields.
func (s State) Status() Status {
	switch {
	case s.Loading:
		return StatusLoading
	case s.Error != "":
		return StatusError
	case s.Result != nil:
		return StatusSuccess
	default:
		return StatusIdle
	}
}

// Event is a state transition input.
type Event interface {
	isEvent()
}

// Submitted starts a new search.
type Submitted struct {
	Seq     uint64
	Query   string
	TraceID string
}

// Succeeded completes search Seq with a result.
type Succeeded struct {
	Seq    uint64
	Result weather.Result
}

// Failed completes search Seq with a user-facing message.
type Failed struct {
	Seq     uint64
	Message string
}

func (Submitted) isEvent() {}
func (Succeeded) isEvent() {}
func (Failed) isEvent()    {}

// Reduce applies e to s and reports whether the event was applied. Completions
// for anything other than the latest in-flight submission are discarded.
func Reduce(s State, e Event) (State, bool) {
	switch ev := e.(type) {
	case Submitted:
		return State{
			Query:   ev.Query,
			Loading: true,
			Seq:     ev.Seq,
			TraceID: ev.TraceID,
		}, true
	case Succeeded:
		if !s.Loading || ev.Seq != s.Seq {
			return s, false
		}
		result := ev.Result
		return State{
			Query:   s.Query,
			Result:  &result,
			Seq:     s.Seq,
			TraceID: s.TraceID,
		}, true
	case Failed:
		if !s.Loading || ev.Seq != s.Seq {
			return s, false
		}
		return State{
			Query:   s.Query,
			Error:   ev.Message,
			Seq:     s.Seq,
			TraceID: s.TraceID,
		}, true
	default:
		return s, false
	}
}
