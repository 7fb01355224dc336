package cache

import (
	"context"
	"sync"
	"time"
)

// MemoryBackend implements Backend with an in-process map. It is the default
// backend: fast, bounded, and empty on restart.
type MemoryBackend struct {
	mu         sync.RWMutex
	entries    map[Key]memoryEntry
	maxEntries int
}

type memoryEntry struct {
	text     string
	storedAt time.Time
}

// MemoryBackendConfig configures the memory backend.
type MemoryBackendConfig struct {
	// MaxEntries bounds the number of cached datasets. The oldest entry is
	// evicted when the bound is reached. Default: 1024.
	MaxEntries int
}

// NewMemoryBackend creates a memory backend with default settings.
func NewMemoryBackend() *MemoryBackend {
	return NewMemoryBackendWithConfig(MemoryBackendConfig{})
}

// NewMemoryBackendWithConfig creates a memory backend with custom settings.
func NewMemoryBackendWithConfig(cfg MemoryBackendConfig) *MemoryBackend {
	if cfg.MaxEntries <= 0 {
		cfg.MaxEntries = 1024
	}
	return &MemoryBackend{
		entries:    make(map[Key]memoryEntry),
		maxEntries: cfg.MaxEntries,
	}
}

// Get implements Backend.
func (m *MemoryBackend) Get(ctx context.Context, key Key) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[key]
	if !ok {
		return "", false, nil
	}
	return e.text, true, nil
}

// Put implements Backend.
func (m *MemoryBackend) Put(ctx context.Context, key Key, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.entries[key]; !exists && len(m.entries) >= m.maxEntries {
		m.evictOldestLocked()
	}
	m.entries[key] = memoryEntry{text: text, storedAt: time.Now()}
	return nil
}

// Delete implements Backend.
func (m *MemoryBackend) Delete(ctx context.Context, key Key) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

// InvalidateMass implements Backend.
func (m *MemoryBackend) InvalidateMass(ctx context.Context, mass int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key := range m.entries {
		if key.Mass == mass {
			delete(m.entries, key)
		}
	}
	return nil
}

// Cleanup implements Backend.
func (m *MemoryBackend) Cleanup(ctx context.Context, olderThan time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for key, e := range m.entries {
		if e.storedAt.Before(olderThan) {
			delete(m.entries, key)
			removed++
		}
	}
	return removed, nil
}

// Close implements Backend.
func (m *MemoryBackend) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[Key]memoryEntry)
	return nil
}

// Len returns the number of cached entries.
func (m *MemoryBackend) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

func (m *MemoryBackend) evictOldestLocked() {
	var oldest Key
	var oldestAt time.Time
	first := true
	for key, e := range m.entries {
		if first || e.storedAt.Before(oldestAt) {
			oldest = key
			oldestAt = e.storedAt
			first = false
		}
	}
	if !first {
		delete(m.entries, oldest)
	}
}
