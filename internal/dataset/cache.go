// Package dataset memoizes loader output per input file path so repeated
// dashboard renders skip redundant file reads and parsing. Entries are
// stamped with the source file's modification time and reloaded when it
// changes, so a long-running server never serves stale tables.
package dataset

import (
	"fmt"
	"os"
	"sync"
	"time"
)

type entry[T any] struct {
	modTime time.Time
	value   T
}

// Cache memoizes the output of a load function keyed by file path.
type Cache[T any] struct {
	mu      sync.RWMutex
	load    func(path string) (T, error)
	entries map[string]entry[T]
}

// NewCache creates a cache around the given load function.
func NewCache[T any](load func(path string) (T, error)) *Cache[T] {
	return &Cache[T]{
		load:    load,
		entries: make(map[string]entry[T]),
	}
}

// Get returns the cached value for path, loading it on first use or when the
// file's modification time has changed since the cached load.
func (c *Cache[T]) Get(path string) (T, error) {
	var zero T

	info, err := os.Stat(path)
	if err != nil {
		return zero, fmt.Errorf("dataset: failed to stat %s: %w", path, err)
	}

	c.mu.RLock()
	e, ok := c.entries[path]
	c.mu.RUnlock()
	if ok && e.modTime.Equal(info.ModTime()) {
		return e.value, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another request may have reloaded while we waited for the lock.
	if e, ok := c.entries[path]; ok && e.modTime.Equal(info.ModTime()) {
		return e.value, nil
	}

	value, err := c.load(path)
	if err != nil {
		return zero, err
	}

	c.entries[path] = entry[T]{modTime: info.ModTime(), value: value}
	return value, nil
}

// Invalidate drops the cached entry for path, forcing the next Get to reload.
func (c *Cache[T]) Invalidate(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, path)
}
