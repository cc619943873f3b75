package store_test

import (
	"sync"
	"testing"

	"park-sync/feature/park/models"
	"park-sync/feature/park/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_MissingParkAndItem(t *testing.T) {
	s := store.New()

	_, ok := s.Attraction("sh", "1")
	assert.False(t, ok)
	_, ok = s.Performance("sh", 1)
	assert.False(t, ok)
	assert.Empty(t, s.Attractions("sh"))
	assert.Empty(t, s.Performances("sh"))
	assert.Empty(t, s.Parks(), "reads must not create caches")

	s.MutateAttractions("sh", func(t *store.AttractionTable) {})
	assert.Equal(t, []string{"sh"}, s.Parks())

	_, ok = s.Attraction("sh", "404")
	assert.False(t, ok)
}

func TestStore_IDRepresentations(t *testing.T) {
	s := store.New()
	s.MutateAttractions("sh", func(tbl *store.AttractionTable) {
		tbl.Put("101", models.AttractionEntry{ID: "101", Name: "Space Mountain"})
	})

	for _, id := range []any{"101", 101, int64(101), float64(101), " 101"} {
		e, ok := s.Attraction("sh", id)
		require.True(t, ok, "id %v", id)
		assert.Equal(t, "Space Mountain", e.Name)
	}
}

func TestStore_MergeKeepsOtherFields(t *testing.T) {
	s := store.New()
	s.MutateAttractions("sh", func(tbl *store.AttractionTable) {
		e := tbl.Ensure("1")
		e.ID = "1"
		e.Name = "A"
		e.QueueTime = 10
	})
	s.MutateAttractions("sh", func(tbl *store.AttractionTable) {
		e := tbl.Ensure("1")
		e.QueueTime = 25
	})

	e, ok := s.Attraction("sh", "1")
	require.True(t, ok)
	assert.Equal(t, "A", e.Name)
	assert.Equal(t, 25, e.QueueTime)
}

func TestStore_ReadsAreCopies(t *testing.T) {
	s := store.New()
	next := "14:00"
	s.MutatePerformances("sh", func(tbl *store.PerformanceTable) {
		tbl.Put("7", models.PerformanceEntry{
			ID:        "7",
			Name:      "Parade",
			ShowTimes: []models.ShowTime{{Time: "14:00", Valid: true}},
			NextShow:  &next,
		})
	})

	e, ok := s.Performance("sh", "7")
	require.True(t, ok)
	e.ShowTimes[0].Time = "99:99"
	*e.NextShow = "99:99"
	e.Name = "Changed"

	again, _ := s.Performance("sh", "7")
	assert.Equal(t, "Parade", again.Name)
	assert.Equal(t, "14:00", again.ShowTimes[0].Time)
	assert.Equal(t, "14:00", *again.NextShow)

	all := s.Performances("sh")
	require.Contains(t, all, "7")
	all["7"].ShowTimes[0].Time = "00:00"
	again, _ = s.Performance("sh", "7")
	assert.Equal(t, "14:00", again.ShowTimes[0].Time)
}

func TestStore_ResetIsPerPark(t *testing.T) {
	s := store.New()
	for _, park := range []string{"sh", "hk"} {
		s.MutateAttractions(park, func(tbl *store.AttractionTable) {
			tbl.Put("1", models.AttractionEntry{ID: "1", Name: "A"})
		})
	}

	s.Reset("sh")

	assert.Empty(t, s.Attractions("sh"))
	assert.Len(t, s.Attractions("hk"), 1)
	assert.Equal(t, []string{"hk"}, s.Parks())
}

func TestTable_EachSorted(t *testing.T) {
	s := store.New()
	var ids []string
	s.MutateAttractions("sh", func(tbl *store.AttractionTable) {
		tbl.Put("b", models.AttractionEntry{})
		tbl.Put("a", models.AttractionEntry{})
		tbl.Put("c", models.AttractionEntry{})
		tbl.Each(func(id string, _ *models.AttractionEntry) {
			ids = append(ids, id)
		})
		assert.Equal(t, 3, tbl.Len())
	})
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := store.New()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			s.MutateAttractions("sh", func(tbl *store.AttractionTable) {
				tbl.Ensure("1").QueueTime = i
			})
		}(i)
		go func() {
			defer wg.Done()
			_ = s.Attractions("sh")
		}()
	}
	wg.Wait()

	_, ok := s.Attraction("sh", "1")
	assert.True(t, ok)
}
