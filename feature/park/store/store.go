package store

import (
	"sort"
	"sync"

	"park-sync/core/utils"
	"park-sync/feature/park/models"
)

// AttractionTable is a park's queue-time cache.
type AttractionTable = Table[models.AttractionEntry]

// PerformanceTable is a park's performance-time cache.
type PerformanceTable = Table[models.PerformanceEntry]

type parkCaches struct {
	queue *AttractionTable
	perf  *PerformanceTable
}

// Store holds the queue-time and performance-time caches of every park.
// Entries are never evicted; they are overwritten in place by sync passes and
// live until Reset or process exit.
type Store struct {
	mu    sync.RWMutex
	parks map[string]*parkCaches
}

// New creates an empty store.
func New() *Store {
	return &Store{parks: make(map[string]*parkCaches)}
}

// caches returns the park's caches, creating them on first write.
// Must be called with the write lock held.
func (s *Store) caches(parkID string) *parkCaches {
	c, ok := s.parks[parkID]
	if !ok {
		c = &parkCaches{
			queue: newTable[models.AttractionEntry](),
			perf:  newTable[models.PerformanceEntry](),
		}
		s.parks[parkID] = c
	}
	return c
}

// MutateAttractions runs fn against the park's queue-time cache. The whole
// pass is applied under the store lock, so readers never observe half of it.
func (s *Store) MutateAttractions(parkID string, fn func(t *AttractionTable)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.caches(parkID).queue)
}

// MutatePerformances runs fn against the park's performance-time cache.
func (s *Store) MutatePerformances(parkID string, fn func(t *PerformanceTable)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.caches(parkID).perf)
}

// Attraction returns a copy of one queue-time entry. itemID may be a string or
// any numeric type; 101, 101.0 and "101" address the same entry.
func (s *Store) Attraction(parkID string, itemID any) (models.AttractionEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.parks[parkID]
	if !ok {
		return models.AttractionEntry{}, false
	}
	e, ok := c.queue.Get(utils.ToKey(itemID))
	if !ok {
		return models.AttractionEntry{}, false
	}
	return *e, true
}

// Attractions returns a copy of the park's queue-time cache.
func (s *Store) Attractions(parkID string) map[string]models.AttractionEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]models.AttractionEntry)
	if c, ok := s.parks[parkID]; ok {
		c.queue.Each(func(id string, e *models.AttractionEntry) {
			out[id] = *e
		})
	}
	return out
}

// Performance returns a copy of one performance-time entry.
func (s *Store) Performance(parkID string, itemID any) (models.PerformanceEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.parks[parkID]
	if !ok {
		return models.PerformanceEntry{}, false
	}
	e, ok := c.perf.Get(utils.ToKey(itemID))
	if !ok {
		return models.PerformanceEntry{}, false
	}
	return e.Clone(), true
}

// Performances returns a copy of the park's performance-time cache.
func (s *Store) Performances(parkID string) map[string]models.PerformanceEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]models.PerformanceEntry)
	if c, ok := s.parks[parkID]; ok {
		c.perf.Each(func(id string, e *models.PerformanceEntry) {
			out[id] = e.Clone()
		})
	}
	return out
}

// Reset drops both caches of a park. The next write recreates them empty.
func (s *Store) Reset(parkID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.parks, parkID)
}

// Parks returns the ids of parks that have caches, sorted.
func (s *Store) Parks() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.parks))
	for id := range s.parks {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
