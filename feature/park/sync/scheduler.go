package sync

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Syncer runs sync cycles for a park. Coordinator implements it.
type Syncer interface {
	FullSync(ctx context.Context, parkID string) (*Report, error)
	DeltaSync(ctx context.Context, parkID string) (*Report, error)
}

// Scheduler drives the active park: a full sync on start, then a delta sync
// on every tick of a fixed interval.
//
// Concurrent requests for the same cycle kind and park share one execution.
// Cycles of different kinds may overlap; each cache pass is atomic and the
// later pass wins.
type Scheduler struct {
	syncer   Syncer
	interval time.Duration
	logger   *zap.Logger

	mu   sync.Mutex
	park string
	stop chan struct{}

	flight singleflight.Group
	loops  sync.WaitGroup
}

// NewScheduler creates a stopped scheduler.
func NewScheduler(syncer Syncer, interval time.Duration, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{syncer: syncer, interval: interval, logger: logger}
}

// SetActivePark changes the park targeted by later cycles. It does not sync.
func (s *Scheduler) SetActivePark(parkID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.park != parkID {
		s.logger.Info("Active park changed", zap.String("from", s.park), zap.String("to", parkID))
	}
	s.park = parkID
}

// ActivePark returns the park targeted by cycles.
func (s *Scheduler) ActivePark() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.park
}

// Running reports whether the delta timer is armed.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stop != nil
}

// Start clears any armed timer, runs a full sync and arms the delta timer.
// The timer is armed even when the full sync is skipped.
func (s *Scheduler) Start(ctx context.Context) (*Report, error) {
	s.Stop()
	report, err := s.run(ctx, CycleFull)
	s.arm()
	return report, err
}

// Stop disarms the timer. A cycle already in flight completes; cached data
// is kept.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stop != nil {
		close(s.stop)
		s.stop = nil
		s.logger.Info("Updates stopped")
	}
}

// Resume runs a full sync and arms the timer unless one is already running.
// Calling it repeatedly never stacks timers.
func (s *Scheduler) Resume(ctx context.Context) (*Report, error) {
	report, err := s.run(ctx, CycleFull)
	s.arm()
	return report, err
}

// ForceFullSync runs a full sync now without touching the timer.
func (s *Scheduler) ForceFullSync(ctx context.Context) (*Report, error) {
	return s.run(ctx, CycleFull)
}

// Shutdown disarms the timer and waits for the timer goroutine to exit.
func (s *Scheduler) Shutdown(ctx context.Context) error {
	s.Stop()
	done := make(chan struct{})
	go func() {
		s.loops.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// arm starts the timer goroutine if none is running.
func (s *Scheduler) arm() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stop != nil {
		return
	}
	stop := make(chan struct{})
	s.stop = stop
	s.loops.Add(1)
	go s.loop(stop)
	s.logger.Info("Updates started", zap.Duration("interval", s.interval))
}

func (s *Scheduler) loop(stop <-chan struct{}) {
	defer s.loops.Done()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			select {
			case <-stop:
				return
			default:
			}
			// A tick never cancels a cycle midway; stop takes effect before the next one.
			_, _ = s.run(context.Background(), CycleDelta)
		}
	}
}

// run executes one cycle for the active park, sharing it with concurrent
// callers asking for the same cycle.
func (s *Scheduler) run(ctx context.Context, cycle Cycle) (*Report, error) {
	park := s.ActivePark()
	if park == "" {
		s.logger.Info("Sync skipped", zap.String("cycle", string(cycle)), zap.Error(ErrNoActivePark))
		return nil, ErrNoActivePark
	}

	v, err, shared := s.flight.Do(park+"/"+string(cycle), func() (interface{}, error) {
		if cycle == CycleFull {
			return s.syncer.FullSync(ctx, park)
		}
		return s.syncer.DeltaSync(ctx, park)
	})
	if shared {
		s.logger.Debug("Joined in-flight sync", zap.String("park_id", park), zap.String("cycle", string(cycle)))
	}
	if err != nil {
		return nil, err
	}
	return v.(*Report), nil
}
