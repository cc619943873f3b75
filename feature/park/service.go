package park

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"park-sync/feature/park/models"
	"park-sync/feature/park/normalize"
	"park-sync/feature/park/notify"
	"park-sync/feature/park/store"
	parksync "park-sync/feature/park/sync"
)

// ErrInvalidPark is returned for an empty park id.
var ErrInvalidPark = errors.New("invalid park id")

// Status describes the scheduler state.
type Status struct {
	ActivePark string   `json:"activePark"`
	Running    bool     `json:"running"`
	Parks      []string `json:"cachedParks"`
}

// Service exposes the caches of the active park and the update controls.
type Service struct {
	store      *store.Store
	normalizer *normalize.Normalizer
	scheduler  *parksync.Scheduler
	bus        *notify.Bus
	logger     *zap.Logger
}

// NewService creates a park service.
func NewService(st *store.Store, n *normalize.Normalizer, scheduler *parksync.Scheduler, bus *notify.Bus, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:      st,
		normalizer: n,
		scheduler:  scheduler,
		bus:        bus,
		logger:     logger,
	}
}

// ActivePark returns the park being refreshed.
func (s *Service) ActivePark() string {
	return s.scheduler.ActivePark()
}

// SetActivePark switches the refreshed park. The new park's caches fill on
// the next cycle.
func (s *Service) SetActivePark(parkID string) error {
	parkID = strings.TrimSpace(parkID)
	if parkID == "" {
		return ErrInvalidPark
	}
	s.scheduler.SetActivePark(parkID)
	return nil
}

// Status returns the scheduler state.
func (s *Service) Status() Status {
	return Status{
		ActivePark: s.scheduler.ActivePark(),
		Running:    s.scheduler.Running(),
		Parks:      s.store.Parks(),
	}
}

// QueueTime returns one attraction of the active park. itemID may be a
// string or a number.
func (s *Service) QueueTime(itemID any) (models.AttractionEntry, bool) {
	return s.store.Attraction(s.ActivePark(), itemID)
}

// QueueTimes returns every attraction of the active park.
func (s *Service) QueueTimes() map[string]models.AttractionEntry {
	return s.store.Attractions(s.ActivePark())
}

// Performance returns one performance of the active park with its countdown
// and show colors recomputed for the current time.
func (s *Service) Performance(itemID any) (models.PerformanceEntry, bool) {
	entry, ok := s.store.Performance(s.ActivePark(), itemID)
	if !ok {
		return entry, false
	}
	return s.normalizer.Refresh(entry), true
}

// Performances returns every performance of the active park as last synced.
func (s *Service) Performances() map[string]models.PerformanceEntry {
	return s.store.Performances(s.ActivePark())
}

// Subscribe registers fn for one kind of change signal.
func (s *Service) Subscribe(event notify.Event, fn notify.Listener) *notify.Subscription {
	return s.bus.Subscribe(event, fn)
}

// StartUpdates runs a full sync and (re)arms the delta timer.
func (s *Service) StartUpdates(ctx context.Context) (*parksync.Report, error) {
	return s.scheduler.Start(ctx)
}

// StopUpdates disarms the delta timer. Cached data is kept.
func (s *Service) StopUpdates() {
	s.scheduler.Stop()
}

// ResumeUpdates runs a full sync and arms the timer if it is not running.
func (s *Service) ResumeUpdates(ctx context.Context) (*parksync.Report, error) {
	return s.scheduler.Resume(ctx)
}

// ForceFullSync runs a full sync of the active park now.
func (s *Service) ForceFullSync(ctx context.Context) (*parksync.Report, error) {
	return s.scheduler.ForceFullSync(ctx)
}

// Reset drops both caches of a park.
func (s *Service) Reset(parkID string) {
	s.store.Reset(parkID)
	s.logger.Info("Park cache reset", zap.String("park_id", parkID))
}
