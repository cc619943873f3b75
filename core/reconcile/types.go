package reconcile

import (
	"context"
	"time"
)

// Task is one independent unit of a fan-out. Run stores its own result
// through a closure; only its error is collected by the engine.
type Task struct {
	// Name identifies the task in outcomes and logs (e.g., "wait_times").
	Name string

	// Run performs the work. It receives a context bounded by the task timeout.
	Run func(ctx context.Context) error
}

// Outcome records how a single task settled.
type Outcome struct {
	// Name is the task name.
	Name string `json:"name"`

	// Err is the task error, nil on success. Timeouts surface as
	// context.DeadlineExceeded.
	Err error `json:"-"`

	// Duration is how long the task ran.
	Duration time.Duration `json:"duration"`
}

// OK reports whether the task succeeded.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Outcomes is the settled result of a fan-out, in task order.
type Outcomes []Outcome

// Failed returns the outcomes that carry an error.
func (o Outcomes) Failed() Outcomes {
	var failed Outcomes
	for _, outcome := range o {
		if !outcome.OK() {
			failed = append(failed, outcome)
		}
	}
	return failed
}

// Get returns the outcome for the named task.
func (o Outcomes) Get(name string) (Outcome, bool) {
	for _, outcome := range o {
		if outcome.Name == name {
			return outcome, true
		}
	}
	return Outcome{}, false
}

// Summary provides aggregate counts for one reconciliation pass.
type Summary struct {
	// Accepted counts records written to the cache.
	Accepted int `json:"accepted"`

	// Dropped counts records rejected for missing identity (id or name).
	Dropped int `json:"dropped"`

	// Unmatched counts incoming records whose join key matched no cached entry.
	Unmatched int `json:"unmatched"`
}

// Add returns the element-wise sum of two summaries.
func (s Summary) Add(other Summary) Summary {
	return Summary{
		Accepted:  s.Accepted + other.Accepted,
		Dropped:   s.Dropped + other.Dropped,
		Unmatched: s.Unmatched + other.Unmatched,
	}
}
