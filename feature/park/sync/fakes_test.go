package sync_test

import (
	"context"
	"sync"
	"time"

	"park-sync/feature/park/models"
	"park-sync/feature/park/notify"
	"park-sync/feature/park/source"
)

var parkZone = time.FixedZone("CST", 8*3600)

func elevenAM() time.Time {
	return time.Date(2024, 5, 1, 11, 0, 0, 0, parkZone)
}

// fakeUpstream serves canned payloads for all three source kinds.
type fakeUpstream struct {
	mu sync.Mutex

	basic       models.BasicData
	basicErr    error
	waits       []models.WaitTimeRecord
	waitErr     error
	schedules   []models.ScheduleRecord
	scheduleErr error

	// hang makes the named source block until its context ends.
	hang  string
	calls map[string]int
}

func (f *fakeUpstream) set() source.Set {
	return source.Set{Basic: f, WaitTimes: f, Schedules: f}
}

func (f *fakeUpstream) enter(ctx context.Context, name string) error {
	f.mu.Lock()
	if f.calls == nil {
		f.calls = make(map[string]int)
	}
	f.calls[name]++
	hang := f.hang == name
	f.mu.Unlock()
	if hang {
		<-ctx.Done()
		return ctx.Err()
	}
	return nil
}

func (f *fakeUpstream) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeUpstream) FetchBasic(ctx context.Context, _ string) (models.BasicData, error) {
	if err := f.enter(ctx, "basic"); err != nil {
		return models.BasicData{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.basic, f.basicErr
}

func (f *fakeUpstream) FetchWaitTimes(ctx context.Context, _ string) ([]models.WaitTimeRecord, error) {
	if err := f.enter(ctx, "wait_times"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.waits, f.waitErr
}

func (f *fakeUpstream) FetchSchedules(ctx context.Context, _ string) ([]models.ScheduleRecord, error) {
	if err := f.enter(ctx, "schedules"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.schedules, f.scheduleErr
}

// recorder collects every signal published on a bus.
type recorder struct {
	mu      sync.Mutex
	signals []notify.Signal
}

func record(bus *notify.Bus) *recorder {
	r := &recorder{}
	bus.SubscribeAll(func(s notify.Signal) {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.signals = append(r.signals, s)
	})
	return r
}

func (r *recorder) events() []notify.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]notify.Event, 0, len(r.signals))
	for _, s := range r.signals {
		out = append(out, s.Event)
	}
	return out
}

func (r *recorder) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.signals = nil
}
