package fallback_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"park-sync/core/reconcile"
	"park-sync/feature/park/fallback"
	"park-sync/feature/park/models"
	"park-sync/feature/park/store"
)

func clock() time.Time {
	return time.Date(2024, 5, 1, 11, 0, 0, 0, time.UTC)
}

func TestReconciler_Attractions(t *testing.T) {
	s := store.New()
	r := fallback.New(clock, nil)

	var summary reconcile.Summary
	s.MutateAttractions("p", func(tbl *store.AttractionTable) {
		summary = r.Attractions(tbl, []models.RawAttraction{
			{ID: "1", Name: "A", Wait: 25},
			{ID: "2", Name: "B", Wait: "later"},
			{ID: "3", Name: "C", Wait: -1},
			{ID: "", Name: "D", Wait: 5},
		})
	})
	assert.Equal(t, reconcile.Summary{Accepted: 3, Dropped: 1}, summary)

	a, _ := s.Attraction("p", "1")
	assert.Equal(t, 25, a.QueueTime)
	assert.Equal(t, models.ColorOrange, a.ColorTheme)

	b, _ := s.Attraction("p", "2")
	assert.Equal(t, models.StatusUnknown, b.Status)
	assert.Equal(t, models.WaitLabel(models.LabelUnknown), b.WaitTime)

	c, _ := s.Attraction("p", "3")
	assert.Equal(t, models.StatusClosed, c.Status)
}

func TestReconciler_OverwritesEntries(t *testing.T) {
	s := store.New()
	s.MutateAttractions("p", func(tbl *store.AttractionTable) {
		tbl.Put("1", models.AttractionEntry{ID: "1", Name: "Old", QueueTime: 90})
	})

	r := fallback.New(clock, nil)
	s.MutateAttractions("p", func(tbl *store.AttractionTable) {
		r.Attractions(tbl, []models.RawAttraction{{ID: "1", Name: "New"}})
	})

	e, _ := s.Attraction("p", "1")
	assert.Equal(t, "New", e.Name)
	assert.Equal(t, 0, e.QueueTime)
}

func TestReconciler_Performances(t *testing.T) {
	s := store.New()
	r := fallback.New(clock, nil)

	var summary reconcile.Summary
	s.MutatePerformances("p", func(tbl *store.PerformanceTable) {
		summary = r.Performances(tbl, []models.RawPerformance{
			{ID: "P1", Name: "Parade", ShowTimes: []models.RawShowTime{{Time: "bad"}, {Time: "12:00"}}},
			{ID: "P2", Name: "Fireworks", Closed: true},
			{ID: "P3"},
		})
	})
	assert.Equal(t, reconcile.Summary{Accepted: 2, Dropped: 1}, summary)

	parade, ok := s.Performance("p", "P1")
	require.True(t, ok)
	require.Len(t, parade.ShowTimes, 1)
	require.NotNil(t, parade.NextShow)
	assert.Equal(t, "12:00", *parade.NextShow)
	assert.Equal(t, models.WaitMinutes(60), parade.TimeToNext)

	fireworks, _ := s.Performance("p", "P2")
	assert.Equal(t, models.StatusClosed, fireworks.Status)
}

func TestReconciler_PerformancesWithoutScheduleAreUnknown(t *testing.T) {
	s := store.New()
	r := fallback.New(clock, nil)

	s.MutatePerformances("p", func(tbl *store.PerformanceTable) {
		r.Performances(tbl, []models.RawPerformance{
			{ID: "9", Name: "Show"},
			{ID: "10", Name: "Stage", ShowTimes: []models.RawShowTime{{Time: "TBD"}}},
			{ID: "11", Name: "Finale", Status: "open"},
		})
	})

	for _, id := range []string{"9", "10"} {
		e, ok := s.Performance("p", id)
		require.True(t, ok, id)
		assert.Equal(t, models.StatusUnknown, e.Status, id)
		assert.Equal(t, models.WaitLabel(models.LabelUnknown), e.TimeToNext, id)
		assert.Empty(t, e.ShowTimes, id)
		assert.Equal(t, models.ColorGray, e.ColorTheme, id)
	}

	finale, _ := s.Performance("p", "11")
	assert.Equal(t, models.StatusOpen, finale.Status)
	assert.Equal(t, models.WaitLabel(models.LabelEndedForToday), finale.TimeToNext)
}
