// Package favorites keeps the locally persisted set of favorited items.
//
// Entries are full item snapshots, not references into the remote catalog, so
// a favorite outlives remote edits and deletions.
package favorites

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/five82/orchid/internal/catalog"
	"github.com/five82/orchid/internal/config"
)

// Cache persists the full favorites sequence.
type Cache interface {
	Read() ([]catalog.Item, error)
	Write(items []catalog.Item) error
}

// FileCache stores favorites as a JSON array in a single file.
type FileCache struct {
	path string
}

// NewFileCache returns a cache for path, which config has already resolved.
// An empty path uses the configured default.
func NewFileCache(path string) *FileCache {
	if strings.TrimSpace(path) == "" {
		path = config.Default().FavoritesPath
	}
	return &FileCache{path: path}
}

// Path returns the resolved file location.
func (c *FileCache) Path() string {
	return c.path
}

// Read returns the persisted favorites. A missing file is an empty set.
func (c *FileCache) Read() ([]catalog.Item, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []catalog.Item{}, nil
		}
		return nil, fmt.Errorf("read favorites: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return []catalog.Item{}, nil
	}
	var items []catalog.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse favorites: %w", err)
	}
	if items == nil {
		items = []catalog.Item{}
	}
	return items, nil
}

// Write replaces the persisted favorites with items.
func (c *FileCache) Write(items []catalog.Item) error {
	if items == nil {
		items = []catalog.Item{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal favorites: %w", err)
	}

	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create favorites dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".favorites-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write favorites: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close favorites: %w", err)
	}
	if err := os.Rename(tmpName, c.path); err != nil {
		return fmt.Errorf("replace favorites: %w", err)
	}
	return nil
}

// MemoryCache is an in-process Cache, mainly for tests.
type MemoryCache struct {
	mu       sync.Mutex
	items    []catalog.Item
	writes   int
	ReadErr  error
	WriteErr error
}

// Read returns a copy of the stored items.
func (m *MemoryCache) Read() ([]catalog.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	if m.items == nil {
		return []catalog.Item{}, nil
	}
	return catalog.CloneItems(m.items), nil
}

// Write stores a copy of items.
func (m *MemoryCache) Write(items []catalog.Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.items = catalog.CloneItems(items)
	m.writes++
	return nil
}

// Writes reports how many successful writes happened.
func (m *MemoryCache) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
