package reconcile

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// SettleAll runs every task concurrently and waits until all of them have
// settled. A failing or timed-out task never cancels its siblings; each
// outcome is reported independently, in task order.
//
// A positive timeout bounds each task separately. Panics inside a task are
// recovered and reported as that task's error.
func SettleAll(ctx context.Context, timeout time.Duration, tasks ...Task) Outcomes {
	outcomes := make(Outcomes, len(tasks))

	var wg sync.WaitGroup
	wg.Add(len(tasks))

	for i, task := range tasks {
		go func(i int, task Task) {
			defer wg.Done()
			outcomes[i] = runTask(ctx, timeout, task)
		}(i, task)
	}

	wg.Wait()
	return outcomes
}

func runTask(ctx context.Context, timeout time.Duration, task Task) (outcome Outcome) {
	outcome.Name = task.Name
	start := time.Now()

	taskCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		taskCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	defer func() {
		outcome.Duration = time.Since(start)
		if r := recover(); r != nil {
			outcome.Err = fmt.Errorf("task %s panicked: %v", task.Name, r)
		}
	}()

	err := task.Run(taskCtx)
	if err == nil && taskCtx.Err() != nil {
		// A task that ignored its deadline still counts as timed out.
		err = taskCtx.Err()
	}
	outcome.Err = err
	return outcome
}
