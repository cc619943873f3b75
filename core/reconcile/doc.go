// Package reconcile provides the source-independent building blocks used to
// merge several independently failing data sources into one cache.
//
// # Components
//
// 1. SettleAll: a fan-out that starts every Task concurrently and waits until
// each one has either succeeded, failed or timed out. Unlike a fail-fast
// errgroup, no failure cancels the siblings; the caller receives one Outcome
// per task and decides what a failure means (usually "use an empty payload").
//
// 2. JoinKey and Index: the key strategy for matching records across sources
// that do not share an identifier scheme. Today the park sources join on
// display name (NameKey); keeping the strategy behind a function type lets it
// change in one place.
//
// 3. Summary: the accepted/dropped/unmatched counters every pass reports.
//
// # Usage Example
//
//	var waits []models.WaitTimeRecord
//	outcomes := reconcile.SettleAll(ctx, 10*time.Second,
//	    reconcile.Task{Name: "wait_times", Run: func(ctx context.Context) (err error) {
//	        waits, err = src.FetchWaitTimes(ctx, parkID)
//	        return err
//	    }},
//	)
//	for _, failed := range outcomes.Failed() {
//	    log.Warn("source failed", zap.String("source", failed.Name), zap.Error(failed.Err))
//	}
package reconcile
