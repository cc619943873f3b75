package reconcile

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSettleAll_PartialFailure tests that a failing task does not prevent siblings from completing.
func TestSettleAll_PartialFailure(t *testing.T) {
	var basic, waits []string

	outcomes := SettleAll(context.Background(), time.Second,
		Task{Name: "basic", Run: func(ctx context.Context) error {
			basic = []string{"a"}
			return nil
		}},
		Task{Name: "wait_times", Run: func(ctx context.Context) error {
			return errors.New("upstream 502")
		}},
		Task{Name: "schedules", Run: func(ctx context.Context) error {
			waits = []string{"b", "c"}
			return nil
		}},
	)

	require.Len(t, outcomes, 3)
	assert.Equal(t, "basic", outcomes[0].Name)
	assert.True(t, outcomes[0].OK())
	assert.False(t, outcomes[1].OK())
	assert.EqualError(t, outcomes[1].Err, "upstream 502")
	assert.True(t, outcomes[2].OK())
	assert.Equal(t, []string{"a"}, basic)
	assert.Equal(t, []string{"b", "c"}, waits)

	failed := outcomes.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, "wait_times", failed[0].Name)
}

// TestSettleAll_Timeout tests that a slow task times out independently of fast ones.
func TestSettleAll_Timeout(t *testing.T) {
	var fastDone atomic.Bool

	outcomes := SettleAll(context.Background(), 20*time.Millisecond,
		Task{Name: "slow", Run: func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		}},
		Task{Name: "fast", Run: func(ctx context.Context) error {
			fastDone.Store(true)
			return nil
		}},
	)

	slow, ok := outcomes.Get("slow")
	require.True(t, ok)
	assert.ErrorIs(t, slow.Err, context.DeadlineExceeded)

	fast, ok := outcomes.Get("fast")
	require.True(t, ok)
	assert.True(t, fast.OK())
	assert.True(t, fastDone.Load())
}

// TestSettleAll_IgnoredDeadline tests that a task returning nil after its deadline is still a failure.
func TestSettleAll_IgnoredDeadline(t *testing.T) {
	outcomes := SettleAll(context.Background(), 10*time.Millisecond,
		Task{Name: "stubborn", Run: func(ctx context.Context) error {
			time.Sleep(30 * time.Millisecond)
			return nil
		}},
	)

	assert.ErrorIs(t, outcomes[0].Err, context.DeadlineExceeded)
}

// TestSettleAll_Panic tests that a panicking task is reported as an error.
func TestSettleAll_Panic(t *testing.T) {
	outcomes := SettleAll(context.Background(), 0,
		Task{Name: "boom", Run: func(ctx context.Context) error {
			panic("nil map")
		}},
		Task{Name: "fine", Run: func(ctx context.Context) error { return nil }},
	)

	assert.Error(t, outcomes[0].Err)
	assert.Contains(t, outcomes[0].Err.Error(), "boom")
	assert.True(t, outcomes[1].OK())
}

func TestSettleAll_Empty(t *testing.T) {
	outcomes := SettleAll(context.Background(), time.Second)
	assert.Empty(t, outcomes)
	assert.Empty(t, outcomes.Failed())
}

func TestSummary_Add(t *testing.T) {
	s := Summary{Accepted: 1, Dropped: 2}.Add(Summary{Accepted: 3, Unmatched: 4})
	assert.Equal(t, Summary{Accepted: 4, Dropped: 2, Unmatched: 4}, s)
}
