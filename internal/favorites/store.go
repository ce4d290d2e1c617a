package favorites

import (
	"fmt"
	"sync"

	"github.com/five82/orchid/internal/catalog"
)

// Store is the single in-memory owner of the favorites set. Every screen that
// reads or changes favorites shares one Store, and every change is written
// through to the Cache.
type Store struct {
	cache Cache

	mu    sync.RWMutex
	items []catalog.Item
}

// NewStore returns an empty Store backed by cache. Call Reload to read the
// persisted set.
func NewStore(cache Cache) *Store {
	return &Store{cache: cache}
}

// Reload replaces the in-memory set with the persisted one. On failure the
// current set is kept.
func (s *Store) Reload() error {
	items, err := s.cache.Read()
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.items = catalog.CloneItems(items)
	s.mu.Unlock()
	return nil
}

// Items returns a copy of the current favorites in insertion order.
func (s *Store) Items() []catalog.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return catalog.CloneItems(s.items)
}

// Len reports how many items are favorited.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Contains reports whether an item with id is favorited.
func (s *Store) Contains(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return indexOf(s.items, id) >= 0
}

// Toggle removes the item when present, otherwise appends a snapshot of it.
// It reports whether the item is favorited afterwards.
func (s *Store) Toggle(item catalog.Item) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var next []catalog.Item
	added := false
	if idx := indexOf(s.items, item.ID); idx >= 0 {
		next = without(s.items, idx)
	} else {
		next = append(catalog.CloneItems(s.items), item)
		added = true
	}
	if err := s.commitLocked(next); err != nil {
		return !added, err
	}
	return added, nil
}

// Remove drops the item with id. Removing an absent id is a no-op.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := indexOf(s.items, id)
	if idx < 0 {
		return nil
	}
	return s.commitLocked(without(s.items, idx))
}

// Set replaces the whole favorites set.
func (s *Store) Set(items []catalog.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commitLocked(catalog.CloneItems(items))
}

// commitLocked persists next and only then makes it current.
func (s *Store) commitLocked(next []catalog.Item) error {
	if err := s.cache.Write(next); err != nil {
		return fmt.Errorf("save favorites: %w", err)
	}
	s.items = next
	return nil
}

func indexOf(items []catalog.Item, id string) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func without(items []catalog.Item, idx int) []catalog.Item {
	out := make([]catalog.Item, 0, len(items)-1)
	out = append(out, items[:idx]...)
	return append(out, items[idx+1:]...)
}
