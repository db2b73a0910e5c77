package aggregator

import (
	"time"

	"source.hodakov.me/hdkv/mediaconvert/internal/domains/dispatcher/dto"
	tdto "source.hodakov.me/hdkv/mediaconvert/internal/domains/transcoder/dto"
)

// Aggregator folds outcomes into a run summary as they arrive. It is not
// safe for concurrent use: the dispatcher feeds it from one goroutine.
type Aggregator struct {
	succeeded int
	failures  []string
}

func New(expected int) *Aggregator {
	return &Aggregator{
		failures: make([]string, 0, min(expected, 64)),
	}
}

// Add records one outcome and returns how many outcomes were seen so far.
func (a *Aggregator) Add(outcome *tdto.Outcome) int {
	if outcome.Success {
		a.succeeded++
	} else {
		a.failures = append(a.failures, outcome.Message)
	}

	return a.Completed()
}

func (a *Aggregator) Completed() int {
	return a.succeeded + len(a.failures)
}

// Summary returns a snapshot. Failures keep arrival order and are never
// deduplicated.
func (a *Aggregator) Summary(duration time.Duration) *dto.Summary {
	failures := make([]string, len(a.failures))
	copy(failures, a.failures)

	return &dto.Summary{
		Total:     a.Completed(),
		Succeeded: a.succeeded,
		Failures:  failures,
		Duration:  duration,
	}
}

// Aggregate reduces a complete sequence of outcomes.
func Aggregate(outcomes []*tdto.Outcome, duration time.Duration) *dto.Summary {
	aggregator := New(len(outcomes))
	for _, outcome := range outcomes {
		aggregator.Add(outcome)
	}

	return aggregator.Summary(duration)
}
