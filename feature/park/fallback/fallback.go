package fallback

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"park-sync/core/reconcile"
	"park-sync/feature/park/models"
	"park-sync/feature/park/normalize"
	"park-sync/feature/park/store"
)

// Reconciler rebuilds cache entries from basic data alone when the normal
// pass rejects a payload. It never fails: unreadable values degrade to
// unknown instead of aborting the pass.
type Reconciler struct {
	now    func() time.Time
	logger *zap.Logger
}

// New creates a Reconciler using the given park-local clock.
func New(now func() time.Time, logger *zap.Logger) *Reconciler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reconciler{now: now, logger: logger}
}

// Attractions overwrites t with one entry per identifiable basic record.
func (r *Reconciler) Attractions(t *store.AttractionTable, raws []models.RawAttraction) reconcile.Summary {
	var summary reconcile.Summary
	at := r.now()
	for _, raw := range raws {
		id, name := strings.TrimSpace(raw.ID), strings.TrimSpace(raw.Name)
		if id == "" || name == "" {
			summary.Dropped++
			continue
		}
		queue, err := normalize.ClassifyWait(raw.Wait, raw.Closed, raw.Status)
		if err != nil {
			r.logger.Debug("Fallback wait unreadable", zap.String("id", id), zap.Error(err))
			queue = normalize.QueueState{Status: models.StatusUnknown}
		}
		entry := models.AttractionEntry{ID: id, Name: name}
		queue.ApplyTo(&entry, at)
		t.Put(id, entry)
		summary.Accepted++
	}
	return summary
}

// Performances overwrites t with one entry per identifiable basic record.
// Malformed show times are skipped individually; a record left with no
// schedule information is unknown, as in the normal pass.
func (r *Reconciler) Performances(t *store.PerformanceTable, raws []models.RawPerformance) reconcile.Summary {
	var summary reconcile.Summary
	now := r.now()
	for _, raw := range raws {
		id, name := strings.TrimSpace(raw.ID), strings.TrimSpace(raw.Name)
		if id == "" || name == "" {
			summary.Dropped++
			continue
		}
		slots := make([]normalize.Slot, 0, len(raw.ShowTimes))
		for _, show := range raw.ShowTimes {
			slot, err := normalize.ParseSlot(show, now.Location())
			if err != nil {
				r.logger.Debug("Fallback show time unreadable", zap.String("id", id), zap.Error(err))
				continue
			}
			slots = append(slots, slot)
		}
		entry := models.PerformanceEntry{ID: id, Name: name}
		if normalize.HasScheduleInfo(len(slots), raw.Closed, raw.Status) {
			normalize.ClassifySchedule(raw.Closed, raw.Status, slots).ApplyTo(&entry, now)
		} else {
			normalize.UnknownSchedule(&entry, now)
		}
		t.Put(id, entry)
		summary.Accepted++
	}
	return summary
}
