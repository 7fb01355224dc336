package cache

import (
	"context"
	"time"
)

// Key identifies a cached dataset by nuclide and dataset name.
type Key struct {
	// Mass is the mass number.
	Mass int

	// Protons is the proton number, or -1 for a bare mass identifier.
	Protons int

	// Name is the dataset identifier, e.g. "ADOPTED LEVELS, GAMMAS".
	Name string
}

// Backend stores raw dataset text previously retrieved from a provider.
// Implementations must be safe for concurrent use.
type Backend interface {
	// Get returns the cached text for a key. The second result is false on
	// a cache miss; a miss is not an error.
	Get(ctx context.Context, key Key) (string, bool, error)

	// Put stores the text for a key, replacing any existing entry.
	Put(ctx context.Context, key Key, text string) error

	// Delete removes the entry for a key. No-op when the entry is absent.
	Delete(ctx context.Context, key Key) error

	// InvalidateMass removes every entry for a mass number. It is called
	// when a distribution file changes on disk.
	InvalidateMass(ctx context.Context, mass int) error

	// Cleanup removes entries stored before the given time and returns the
	// number removed.
	Cleanup(ctx context.Context, olderThan time.Time) (int, error)

	// Close releases the backend's resources. The backend must not be used
	// after Close.
	Close() error
}
