package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/orchid/internal/catalog"
)

// Snapshot represents the latest catalog data available to the UI.
type Snapshot struct {
	Categories          []catalog.Category
	HasCatalog          bool
	Loading             bool
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive failed fetches
}

// IsOffline returns true when the store has been unreachable for multiple fetches.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// ItemCount returns the number of items across all categories.
func (s Snapshot) ItemCount() int {
	n := 0
	for _, c := range s.Categories {
		n += len(c.Items)
	}
	return n
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
	inflight int
}

// Update replaces the stored categories. When err is non-nil the previous data
// is kept but the error is recorded for visibility.
func (s *Store) Update(categories []catalog.Category, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastUpdated = time.Now()
	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return
	}

	s.snapshot.Categories = catalog.CloneCategories(categories)
	s.snapshot.HasCatalog = true
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
}

// BeginLoading marks a fetch as in flight.
func (s *Store) BeginLoading() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inflight++
	s.snapshot.Loading = true
}

// EndLoading marks one fetch as finished. Loading stays set while others run.
func (s *Store) EndLoading() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inflight > 0 {
		s.inflight--
	}
	s.snapshot.Loading = s.inflight > 0
}

// Category returns a copy of the category with id.
func (s *Store) Category(id string) (catalog.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.snapshot.Categories {
		if c.ID == id {
			return c.Clone(), true
		}
	}
	return catalog.Category{}, false
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Categories = catalog.CloneCategories(s.snapshot.Categories)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
