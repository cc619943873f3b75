package sync

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"park-sync/core/logger"
	"park-sync/core/reconcile"
	"park-sync/feature/park/fallback"
	"park-sync/feature/park/models"
	"park-sync/feature/park/normalize"
	"park-sync/feature/park/notify"
	"park-sync/feature/park/source"
	"park-sync/feature/park/store"
)

// ErrNoActivePark is returned when a cycle is requested without a park.
var ErrNoActivePark = errors.New("no active park")

// Cycle is the kind of a sync cycle.
type Cycle string

const (
	CycleFull  Cycle = "full"
	CycleDelta Cycle = "delta"
)

// Source task names.
const (
	SourceBasic     = "basic"
	SourceWaitTimes = "wait_times"
	SourceSchedules = "schedules"
)

// Report describes one completed sync cycle.
type Report struct {
	CycleID      string            `json:"cycleId"`
	Park         string            `json:"parkId"`
	Cycle        Cycle             `json:"cycle"`
	Attractions  reconcile.Summary `json:"attractions"`
	Performances reconcile.Summary `json:"performances"`
	// Fallback lists the caches rebuilt by the fallback reconciler.
	Fallback []string           `json:"fallback,omitempty"`
	Sources  reconcile.Outcomes `json:"sources"`
	Failed   []string           `json:"failed,omitempty"`
	Started  time.Time          `json:"started"`
	Duration time.Duration      `json:"duration"`
}

// Coordinator fetches the sources of one cycle in parallel and writes the
// result to the store.
type Coordinator struct {
	sources    source.Set
	store      *store.Store
	normalizer *normalize.Normalizer
	fallback   *fallback.Reconciler
	bus        *notify.Bus
	timeout    time.Duration
	logger     *zap.Logger
}

// NewCoordinator creates a coordinator. timeout bounds each source call.
func NewCoordinator(sources source.Set, st *store.Store, n *normalize.Normalizer, bus *notify.Bus, timeout time.Duration, logger *zap.Logger) *Coordinator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Coordinator{
		sources:    sources,
		store:      st,
		normalizer: n,
		fallback:   fallback.New(n.Now, logger),
		bus:        bus,
		timeout:    timeout,
		logger:     logger,
	}
}

type payload struct {
	basic     models.BasicData
	waits     []models.WaitTimeRecord
	schedules []models.ScheduleRecord
}

func (c *Coordinator) begin(parkID string, cycle Cycle) (*Report, *zap.Logger) {
	report := &Report{
		CycleID: uuid.NewString(),
		Park:    parkID,
		Cycle:   cycle,
		Started: time.Now(),
	}
	return report, logger.WithCycle(c.logger, parkID, string(cycle), report.CycleID)
}

// fetch runs the given source tasks and keeps only the payloads of the ones
// that succeeded.
func (c *Coordinator) fetch(ctx context.Context, parkID string, cycle Cycle, report *Report, log *zap.Logger) payload {
	var basic models.BasicData
	var waits []models.WaitTimeRecord
	var schedules []models.ScheduleRecord

	tasks := []reconcile.Task{
		{Name: SourceWaitTimes, Run: func(ctx context.Context) (err error) {
			waits, err = c.sources.WaitTimes.FetchWaitTimes(ctx, parkID)
			return err
		}},
		{Name: SourceSchedules, Run: func(ctx context.Context) (err error) {
			schedules, err = c.sources.Schedules.FetchSchedules(ctx, parkID)
			return err
		}},
	}
	if cycle == CycleFull {
		tasks = append([]reconcile.Task{{Name: SourceBasic, Run: func(ctx context.Context) (err error) {
			basic, err = c.sources.Basic.FetchBasic(ctx, parkID)
			return err
		}}}, tasks...)
	}

	outcomes := reconcile.SettleAll(ctx, c.timeout, tasks...)
	report.Sources = outcomes

	var out payload
	for _, outcome := range outcomes {
		if !outcome.OK() {
			report.Failed = append(report.Failed, outcome.Name)
			log.Warn("Source fetch failed",
				zap.String("source", outcome.Name),
				zap.Duration("duration", outcome.Duration),
				zap.Error(outcome.Err))
			continue
		}
		switch outcome.Name {
		case SourceBasic:
			out.basic = basic
		case SourceWaitTimes:
			out.waits = waits
		case SourceSchedules:
			out.schedules = schedules
		}
	}
	return out
}

// FullSync refreshes identity and state of every item of parkID from all
// three sources. A payload the normalizer rejects is rebuilt from basic data
// by the fallback reconciler, independently per cache.
func (c *Coordinator) FullSync(ctx context.Context, parkID string) (*Report, error) {
	if parkID == "" {
		c.logger.Info("Sync skipped", zap.String("cycle", string(CycleFull)), zap.Error(ErrNoActivePark))
		return nil, ErrNoActivePark
	}
	report, log := c.begin(parkID, CycleFull)
	log.Debug("Sync started")

	data := c.fetch(ctx, parkID, CycleFull, report, log)

	if plan, err := c.normalizer.PlanAttractions(data.basic.Attractions, data.waits); err != nil {
		log.Warn("Attraction normalization failed, using fallback", zap.Error(err))
		report.Fallback = append(report.Fallback, "attractions")
		c.store.MutateAttractions(parkID, func(t *store.AttractionTable) {
			report.Attractions = c.fallback.Attractions(t, data.basic.Attractions)
		})
	} else {
		c.store.MutateAttractions(parkID, func(t *store.AttractionTable) {
			report.Attractions = c.normalizer.ApplyAttractions(t, plan)
		})
	}

	if plan, err := c.normalizer.PlanPerformances(data.basic.Performances, data.schedules); err != nil {
		log.Warn("Performance normalization failed, using fallback", zap.Error(err))
		report.Fallback = append(report.Fallback, "performances")
		c.store.MutatePerformances(parkID, func(t *store.PerformanceTable) {
			report.Performances = c.fallback.Performances(t, data.basic.Performances)
		})
	} else {
		c.store.MutatePerformances(parkID, func(t *store.PerformanceTable) {
			report.Performances = c.normalizer.ApplyPerformances(t, plan)
		})
	}

	c.finish(report, log)
	return report, nil
}

// DeltaSync refreshes queue and schedule state of already cached items.
// Incoming records that match no cached item are discarded, and a rejected
// payload leaves its cache untouched.
func (c *Coordinator) DeltaSync(ctx context.Context, parkID string) (*Report, error) {
	if parkID == "" {
		c.logger.Info("Sync skipped", zap.String("cycle", string(CycleDelta)), zap.Error(ErrNoActivePark))
		return nil, ErrNoActivePark
	}
	report, log := c.begin(parkID, CycleDelta)
	log.Debug("Sync started")

	data := c.fetch(ctx, parkID, CycleDelta, report, log)

	if plan, err := c.normalizer.PlanWaitTimes(data.waits); err != nil {
		log.Warn("Wait time normalization failed", zap.Error(err))
	} else if len(plan.Updates) > 0 {
		c.store.MutateAttractions(parkID, func(t *store.AttractionTable) {
			report.Attractions = c.normalizer.ApplyAttractions(t, plan)
		})
	}

	if plan, err := c.normalizer.PlanSchedules(data.schedules); err != nil {
		log.Warn("Schedule normalization failed", zap.Error(err))
	} else if len(plan.Updates) > 0 {
		c.store.MutatePerformances(parkID, func(t *store.PerformanceTable) {
			report.Performances = c.normalizer.ApplyPerformances(t, plan)
		})
	}

	c.finish(report, log)
	return report, nil
}

// finish emits at most one signal per cache and logs the cycle summary.
func (c *Coordinator) finish(report *Report, log *zap.Logger) {
	report.Duration = time.Since(report.Started)

	if dropped := report.Attractions.Dropped + report.Performances.Dropped; dropped > 0 {
		log.Debug("Records dropped for missing identity", zap.Int("count", dropped))
	}

	at := time.Now()
	if report.Attractions.Accepted > 0 {
		c.bus.Publish(notify.Signal{
			Park:    report.Park,
			Event:   notify.QueueTimeUpdated,
			CycleID: report.CycleID,
			Count:   report.Attractions.Accepted,
			At:      at,
		})
	}
	if report.Performances.Accepted > 0 {
		c.bus.Publish(notify.Signal{
			Park:    report.Park,
			Event:   notify.PerformanceTimeUpdated,
			CycleID: report.CycleID,
			Count:   report.Performances.Accepted,
			At:      at,
		})
	}

	log.Info("Sync completed",
		zap.Int("attractions", report.Attractions.Accepted),
		zap.Int("performances", report.Performances.Accepted),
		zap.Int("unmatched", report.Attractions.Unmatched+report.Performances.Unmatched),
		zap.Strings("failed_sources", report.Failed),
		zap.Strings("fallback", report.Fallback),
		zap.Duration("duration", report.Duration))
}
