package checks

import (
	"context"
	"errors"
	"time"

	"park-sync/core/reconcile"
	"park-sync/feature/park/source"
	parksync "park-sync/feature/park/sync"
)

// SourceReport describes one probe of an upstream source.
type SourceReport struct {
	Status     string `json:"status"` // "ok", "error", "not_configured"
	Records    int    `json:"records"`
	Error      string `json:"error,omitempty"`
	DurationMs int64  `json:"duration_ms"`
}

// CheckSources fetches every source once for park, concurrently, and
// reports per-source reachability. Payloads are discarded.
func CheckSources(ctx context.Context, set source.Set, park string, timeout time.Duration) map[string]SourceReport {
	counts := make([]int, 3)
	tasks := []reconcile.Task{
		{Name: parksync.SourceBasic, Run: func(ctx context.Context) error {
			if set.Basic == nil {
				return source.ErrNotConfigured
			}
			data, err := set.Basic.FetchBasic(ctx, park)
			counts[0] = len(data.Attractions) + len(data.Performances)
			return err
		}},
		{Name: parksync.SourceWaitTimes, Run: func(ctx context.Context) error {
			if set.WaitTimes == nil {
				return source.ErrNotConfigured
			}
			records, err := set.WaitTimes.FetchWaitTimes(ctx, park)
			counts[1] = len(records)
			return err
		}},
		{Name: parksync.SourceSchedules, Run: func(ctx context.Context) error {
			if set.Schedules == nil {
				return source.ErrNotConfigured
			}
			records, err := set.Schedules.FetchSchedules(ctx, park)
			counts[2] = len(records)
			return err
		}},
	}

	outcomes := reconcile.SettleAll(ctx, timeout, tasks...)
	report := make(map[string]SourceReport, len(outcomes))
	for i, o := range outcomes {
		r := SourceReport{Status: "ok", Records: counts[i], DurationMs: o.Duration.Milliseconds()}
		switch {
		case errors.Is(o.Err, source.ErrNotConfigured):
			r = SourceReport{Status: "not_configured", Error: o.Err.Error(), DurationMs: r.DurationMs}
		case o.Err != nil:
			r = SourceReport{Status: "error", Error: o.Err.Error(), DurationMs: r.DurationMs}
		}
		report[o.Name] = r
	}
	return report
}
