package park

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"park-sync/feature/park/normalize"
	"park-sync/feature/park/notify"
	"park-sync/feature/park/source"
	"park-sync/feature/park/store"
	parksync "park-sync/feature/park/sync"
)

// Options configures the park feature.
type Options struct {
	Sources source.Set
	// Bus receives change signals. A new one is created when nil.
	Bus *notify.Bus
	// Location is the park's time zone for show time comparisons.
	Location *time.Location
	// Clock overrides the wall clock. Its result is converted to Location.
	Clock         func() time.Time
	DeltaInterval time.Duration
	FetchTimeout  time.Duration
	ActivePark    string
	Logger        *zap.Logger
}

// Feature implements the loader.Feature interface.
type Feature struct {
	service   *Service
	handler   *Handler
	scheduler *parksync.Scheduler
	sync      *parksync.Coordinator
}

// NewFeature wires store, normalizer, coordinator and scheduler.
func NewFeature(opts Options) *Feature {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	bus := opts.Bus
	if bus == nil {
		bus = notify.NewBus(logger)
	}

	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	st := store.New()
	n := normalize.New(normalize.WithClock(func() time.Time { return clock().In(loc) }))
	coord := parksync.NewCoordinator(opts.Sources, st, n, bus, opts.FetchTimeout, logger)
	scheduler := parksync.NewScheduler(coord, opts.DeltaInterval, logger)
	scheduler.SetActivePark(opts.ActivePark)

	svc := NewService(st, n, scheduler, bus, logger)
	return &Feature{
		service:   svc,
		handler:   NewHandler(svc),
		scheduler: scheduler,
		sync:      coord,
	}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "park"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service returns the feature's service.
func (f *Feature) Service() *Service {
	return f.service
}

// Scheduler returns the feature's scheduler.
func (f *Feature) Scheduler() *parksync.Scheduler {
	return f.scheduler
}

// Coordinator returns the feature's sync coordinator.
func (f *Feature) Coordinator() *parksync.Coordinator {
	return f.sync
}
