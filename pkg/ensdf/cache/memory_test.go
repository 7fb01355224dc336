package cache

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func TestMemoryBackendGetPut(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBackend()
	key := Key{Mass: 60, Protons: 28, Name: "ADOPTED LEVELS, GAMMAS"}

	if _, ok, err := b.Get(ctx, key); err != nil || ok {
		t.Fatalf("Get(empty) = ok %v, err %v; want miss", ok, err)
	}

	if err := b.Put(ctx, key, "dataset text"); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	text, ok, err := b.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !ok || text != "dataset text" {
		t.Errorf("Get() = (%q, %v), want cached text", text, ok)
	}

	// A second put for the same key replaces the entry.
	if err := b.Put(ctx, key, "revised text"); err != nil {
		t.Fatalf("Put(overwrite) error = %v", err)
	}
	text, _, _ = b.Get(ctx, key)
	if text != "revised text" {
		t.Errorf("Get() after overwrite = %q, want %q", text, "revised text")
	}
	if b.Len() != 1 {
		t.Errorf("Len() = %d, want 1", b.Len())
	}
}

func TestMemoryBackendDelete(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBackend()
	key := Key{Mass: 60, Protons: 27, Name: "ADOPTED LEVELS"}
	if err := b.Put(ctx, key, "text"); err != nil {
		t.Fatal(err)
	}
	if err := b.Delete(ctx, key); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, ok, _ := b.Get(ctx, key); ok {
		t.Error("Get() after Delete() hit, want miss")
	}
	// Deleting a missing key is not an error.
	if err := b.Delete(ctx, key); err != nil {
		t.Errorf("Delete(missing) error = %v", err)
	}
}

func TestMemoryBackendInvalidateMass(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBackend()
	b.Put(ctx, Key{Mass: 60, Protons: 28, Name: "ADOPTED LEVELS"}, "ni")
	b.Put(ctx, Key{Mass: 60, Protons: 27, Name: "ADOPTED LEVELS"}, "co")
	b.Put(ctx, Key{Mass: 58, Protons: 28, Name: "ADOPTED LEVELS"}, "ni58")

	if err := b.InvalidateMass(ctx, 60); err != nil {
		t.Fatalf("InvalidateMass() error = %v", err)
	}
	if b.Len() != 1 {
		t.Errorf("Len() after invalidate = %d, want 1", b.Len())
	}
	if _, ok, _ := b.Get(ctx, Key{Mass: 58, Protons: 28, Name: "ADOPTED LEVELS"}); !ok {
		t.Error("entry for the untouched mass chain was evicted")
	}
}

func TestMemoryBackendEviction(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBackendWithConfig(MemoryBackendConfig{MaxEntries: 3})
	for i := 0; i < 3; i++ {
		key := Key{Mass: 60 + i, Protons: 28, Name: "ADOPTED LEVELS"}
		if err := b.Put(ctx, key, fmt.Sprintf("text %d", i)); err != nil {
			t.Fatal(err)
		}
		// Distinct timestamps so the eviction order is deterministic.
		time.Sleep(time.Millisecond)
	}

	if err := b.Put(ctx, Key{Mass: 70, Protons: 28, Name: "ADOPTED LEVELS"}, "newest"); err != nil {
		t.Fatal(err)
	}
	if b.Len() != 3 {
		t.Fatalf("Len() = %d, want bound of 3 held", b.Len())
	}
	if _, ok, _ := b.Get(ctx, Key{Mass: 60, Protons: 28, Name: "ADOPTED LEVELS"}); ok {
		t.Error("oldest entry survived eviction")
	}
	if _, ok, _ := b.Get(ctx, Key{Mass: 70, Protons: 28, Name: "ADOPTED LEVELS"}); !ok {
		t.Error("newest entry missing after eviction")
	}
}

func TestMemoryBackendCleanup(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBackend()
	b.Put(ctx, Key{Mass: 60, Protons: 28, Name: "ADOPTED LEVELS"}, "ni")
	b.Put(ctx, Key{Mass: 60, Protons: 27, Name: "ADOPTED LEVELS"}, "co")

	// Everything was stored just now, so a cutoff in the past removes
	// nothing and a cutoff in the future removes everything.
	removed, err := b.Cleanup(ctx, time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("Cleanup() error = %v", err)
	}
	if removed != 0 {
		t.Errorf("Cleanup(past cutoff) removed %d, want 0", removed)
	}

	removed, err = b.Cleanup(ctx, time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("Cleanup() error = %v", err)
	}
	if removed != 2 {
		t.Errorf("Cleanup(future cutoff) removed %d, want 2", removed)
	}
	if b.Len() != 0 {
		t.Errorf("Len() after cleanup = %d, want 0", b.Len())
	}
}

func TestMemoryBackendClose(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBackend()
	b.Put(ctx, Key{Mass: 60, Protons: 28, Name: "ADOPTED LEVELS"}, "ni")
	if err := b.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if b.Len() != 0 {
		t.Errorf("Len() after Close() = %d, want 0", b.Len())
	}
}
