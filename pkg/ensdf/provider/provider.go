package provider

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrNotFound is returned when a provider holds no dataset matching the
// requested nuclide and name.
var ErrNotFound = errors.New("dataset not found")

// Provider retrieves raw ENSDF dataset text. Implementations read from the
// local filesystem, a network source, or memory; retrieval is synchronous
// and implementations must be safe for concurrent use.
//
// Providers deal only in raw text: parsing is the caller's concern.
type Provider interface {
	// Dataset returns the raw text of the named dataset for a nuclide.
	Dataset(ctx context.Context, mass, protons int, name string) (string, error)

	// AdoptedLevels returns the raw text of the nuclide's adopted levels
	// dataset ("ADOPTED LEVELS" or "ADOPTED LEVELS, GAMMAS").
	AdoptedLevels(ctx context.Context, mass, protons int) (string, error)

	// DatasetNames returns the identifiers of every dataset known for a
	// mass number, in source order.
	DatasetNames(ctx context.Context, mass int) ([]string, error)
}

// MemoryProvider is a Provider backed by an in-memory map. It is intended
// for tests and for callers that obtain dataset text out of band.
type MemoryProvider struct {
	mu       sync.RWMutex
	datasets map[memoryKey]string
	order    map[int][]memoryKey
}

type memoryKey struct {
	mass    int
	protons int
	name    string
}

// NewMemoryProvider creates an empty in-memory provider.
func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{
		datasets: make(map[memoryKey]string),
		order:    make(map[int][]memoryKey),
	}
}

// Add registers a dataset's raw text under a nuclide and dataset name.
func (m *MemoryProvider) Add(mass, protons int, name, text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := memoryKey{mass, protons, name}
	if _, exists := m.datasets[key]; !exists {
		m.order[mass] = append(m.order[mass], key)
	}
	m.datasets[key] = text
}

// Dataset implements Provider.
func (m *MemoryProvider) Dataset(ctx context.Context, mass, protons int, name string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	text, ok := m.datasets[memoryKey{mass, protons, name}]
	if !ok {
		return "", fmt.Errorf("dataset %q for mass %d: %w", name, mass, ErrNotFound)
	}
	return text, nil
}

// AdoptedLevels implements Provider. It returns the dataset registered under
// "ADOPTED LEVELS", or the first dataset whose name begins with that prefix.
func (m *MemoryProvider) AdoptedLevels(ctx context.Context, mass, protons int) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if text, ok := m.datasets[memoryKey{mass, protons, adoptedLevels}]; ok {
		return text, nil
	}
	for _, key := range m.order[mass] {
		if key.protons == protons && hasAdoptedPrefix(key.name) {
			return m.datasets[key], nil
		}
	}
	return "", fmt.Errorf("adopted levels for mass %d: %w", mass, ErrNotFound)
}

// DatasetNames implements Provider.
func (m *MemoryProvider) DatasetNames(ctx context.Context, mass int) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var names []string
	for _, key := range m.order[mass] {
		names = append(names, key.name)
	}
	return names, nil
}
