package normalize

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"park-sync/core/reconcile"
	"park-sync/feature/park/models"
	"park-sync/feature/park/store"
)

// ErrMalformedRecord is returned when a record cannot be interpreted.
var ErrMalformedRecord = errors.New("malformed record")

// Normalizer turns raw source payloads into canonical cache entries.
//
// Work is split in two steps. Plan* validates and interprets a whole payload
// without touching the cache and fails as a unit. Apply* commits a plan inside
// a store mutation and cannot fail, so a malformed payload never leaves a
// half-written cache behind.
type Normalizer struct {
	now func() time.Time
	key reconcile.JoinKey
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithClock sets the clock. Its location is the park's local time zone.
func WithClock(now func() time.Time) Option {
	return func(n *Normalizer) {
		n.now = now
	}
}

// WithJoinKey replaces the name-join strategy.
func WithJoinKey(key reconcile.JoinKey) Option {
	return func(n *Normalizer) {
		n.key = key
	}
}

// New creates a Normalizer joining by NameKey on the local clock.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{now: time.Now, key: reconcile.NameKey}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Now returns the current park-local time.
func (n *Normalizer) Now() time.Time {
	return n.now()
}

// AttractionSeed is a validated basic-data attraction.
type AttractionSeed struct {
	ID   string
	Name string
	// Queue is nil when the record carries no queue information.
	Queue *QueueState
}

// AttractionPlan is the interpreted content of one attraction pass.
type AttractionPlan struct {
	Seeds []AttractionSeed
	// Updates maps a join key to the queue state reported for that name.
	Updates map[string]QueueState
	At      time.Time
	Dropped int
}

// PlanAttractions interprets a full sync: basic records seed identity and
// wait records update queue state by name.
func (n *Normalizer) PlanAttractions(basic []models.RawAttraction, waits []models.WaitTimeRecord) (*AttractionPlan, error) {
	plan, err := n.PlanWaitTimes(waits)
	if err != nil {
		return nil, err
	}

	for _, raw := range basic {
		id, name := strings.TrimSpace(raw.ID), strings.TrimSpace(raw.Name)
		if id == "" || name == "" {
			plan.Dropped++
			continue
		}
		seed := AttractionSeed{ID: id, Name: name}
		if raw.Wait != nil || raw.Closed || raw.Status != "" {
			queue, err := ClassifyWait(raw.Wait, raw.Closed, raw.Status)
			if err != nil {
				return nil, fmt.Errorf("attraction %s: %w", id, err)
			}
			seed.Queue = &queue
		}
		plan.Seeds = append(plan.Seeds, seed)
	}
	return plan, nil
}

// PlanWaitTimes interprets a wait-time payload on its own.
func (n *Normalizer) PlanWaitTimes(waits []models.WaitTimeRecord) (*AttractionPlan, error) {
	indexed, skipped := reconcile.Index(waits, func(r models.WaitTimeRecord) string { return r.Name }, n.key)

	plan := &AttractionPlan{
		Updates: make(map[string]QueueState, len(indexed)),
		At:      n.now(),
		Dropped: skipped,
	}
	for key, record := range indexed {
		queue, err := ClassifyWait(record.Wait, record.Closed, record.Status)
		if err != nil {
			return nil, fmt.Errorf("wait time %q: %w", record.Name, err)
		}
		plan.Updates[key] = queue
	}
	return plan, nil
}

// ApplyAttractions commits a plan to t. Seeds create or rename entries;
// updates only reach entries already present after seeding. Unmatched
// updates are discarded and counted.
func (n *Normalizer) ApplyAttractions(t *store.AttractionTable, plan *AttractionPlan) reconcile.Summary {
	summary := reconcile.Summary{Dropped: plan.Dropped}
	touched := make(map[string]struct{})

	for _, seed := range plan.Seeds {
		entry, existed := t.Get(seed.ID)
		if !existed {
			entry = t.Ensure(seed.ID)
		}
		entry.ID = seed.ID
		entry.Name = seed.Name
		switch {
		case seed.Queue != nil:
			seed.Queue.ApplyTo(entry, plan.At)
		case !existed:
			QueueState{Status: models.StatusUnknown}.ApplyTo(entry, plan.At)
		}
		touched[seed.ID] = struct{}{}
	}

	byName := n.nameIndex(func(fn func(id, name string)) {
		t.Each(func(id string, e *models.AttractionEntry) { fn(id, e.Name) })
	})
	for key, queue := range plan.Updates {
		ids, ok := byName[key]
		if !ok {
			summary.Unmatched++
			continue
		}
		for _, id := range ids {
			entry, _ := t.Get(id)
			queue.ApplyTo(entry, plan.At)
			touched[id] = struct{}{}
		}
	}

	summary.Accepted = len(touched)
	return summary
}

// PerformanceSeed is a validated basic-data performance.
type PerformanceSeed struct {
	ID   string
	Name string
	// Schedule is nil when the record carries no schedule information.
	Schedule *ScheduleState
}

// PerformancePlan is the interpreted content of one performance pass.
type PerformancePlan struct {
	Seeds   []PerformanceSeed
	Updates map[string]ScheduleState
	At      time.Time
	Dropped int
}

// PlanPerformances interprets a full sync: basic records seed identity and
// schedule records update show times by name.
func (n *Normalizer) PlanPerformances(basic []models.RawPerformance, schedules []models.ScheduleRecord) (*PerformancePlan, error) {
	plan, err := n.PlanSchedules(schedules)
	if err != nil {
		return nil, err
	}

	for _, raw := range basic {
		id, name := strings.TrimSpace(raw.ID), strings.TrimSpace(raw.Name)
		if id == "" || name == "" {
			plan.Dropped++
			continue
		}
		seed := PerformanceSeed{ID: id, Name: name}
		if HasScheduleInfo(len(raw.ShowTimes), raw.Closed, raw.Status) {
			slots, err := ParseSlots(raw.ShowTimes, plan.At.Location())
			if err != nil {
				return nil, fmt.Errorf("performance %s: %w", id, err)
			}
			schedule := ClassifySchedule(raw.Closed, raw.Status, slots)
			seed.Schedule = &schedule
		}
		plan.Seeds = append(plan.Seeds, seed)
	}
	return plan, nil
}

// PlanSchedules interprets a schedule payload on its own.
func (n *Normalizer) PlanSchedules(schedules []models.ScheduleRecord) (*PerformancePlan, error) {
	indexed, skipped := reconcile.Index(schedules, func(r models.ScheduleRecord) string { return r.Name }, n.key)

	plan := &PerformancePlan{
		Updates: make(map[string]ScheduleState, len(indexed)),
		At:      n.now(),
		Dropped: skipped,
	}
	for key, record := range indexed {
		slots, err := ParseSlots(record.ShowTimes, plan.At.Location())
		if err != nil {
			return nil, fmt.Errorf("schedule %q: %w", record.Name, err)
		}
		plan.Updates[key] = ClassifySchedule(record.Closed, record.Status, slots)
	}
	return plan, nil
}

// ApplyPerformances commits a plan to t with the same rules as ApplyAttractions.
func (n *Normalizer) ApplyPerformances(t *store.PerformanceTable, plan *PerformancePlan) reconcile.Summary {
	summary := reconcile.Summary{Dropped: plan.Dropped}
	touched := make(map[string]struct{})

	for _, seed := range plan.Seeds {
		entry, existed := t.Get(seed.ID)
		if !existed {
			entry = t.Ensure(seed.ID)
		}
		entry.ID = seed.ID
		entry.Name = seed.Name
		switch {
		case seed.Schedule != nil:
			seed.Schedule.ApplyTo(entry, plan.At)
		case !existed:
			UnknownSchedule(entry, plan.At)
		}
		touched[seed.ID] = struct{}{}
	}

	byName := n.nameIndex(func(fn func(id, name string)) {
		t.Each(func(id string, e *models.PerformanceEntry) { fn(id, e.Name) })
	})
	for key, schedule := range plan.Updates {
		ids, ok := byName[key]
		if !ok {
			summary.Unmatched++
			continue
		}
		for _, id := range ids {
			entry, _ := t.Get(id)
			schedule.ApplyTo(entry, plan.At)
			touched[id] = struct{}{}
		}
	}

	summary.Accepted = len(touched)
	return summary
}

// Refresh recomputes the time-dependent fields of a cached performance as of
// now. Closed and not-yet-scheduled entries are returned unchanged.
func (n *Normalizer) Refresh(e models.PerformanceEntry) models.PerformanceEntry {
	if e.Status != models.StatusOpen {
		return e
	}
	now := n.now()
	out := e.Clone()
	ScheduleState{Status: models.StatusOpen, Slots: slotsFromShowTimes(e.ShowTimes, now.Location())}.ApplyTo(&out, now)
	out.UpdateTime = e.UpdateTime
	return out
}

// nameIndex groups cached entry ids by join key of their name.
func (n *Normalizer) nameIndex(each func(fn func(id, name string))) map[string][]string {
	index := make(map[string][]string)
	each(func(id, name string) {
		if k := n.key(name); k != "" {
			index[k] = append(index[k], id)
		}
	})
	return index
}
