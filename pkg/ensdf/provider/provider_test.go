package provider

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// padCard pads a card image to the full 80 columns.
func padCard(s string) string {
	if len(s) >= 80 {
		return s
	}
	return s + strings.Repeat(" ", 80-len(s))
}

// header builds a dataset identification card for a nuclide and name.
func header(nucid, name string) string {
	buf := []byte(strings.Repeat(" ", 80))
	copy(buf[0:], nucid)
	copy(buf[9:], name)
	return string(buf)
}

func TestMemoryProvider(t *testing.T) {
	ctx := context.Background()
	p := NewMemoryProvider()
	p.Add(60, 28, "ADOPTED LEVELS, GAMMAS", "adopted text\n")
	p.Add(60, 28, "60CO B- DECAY", "decay text\n")
	p.Add(60, 27, "ADOPTED LEVELS", "cobalt text\n")

	text, err := p.Dataset(ctx, 60, 28, "60CO B- DECAY")
	if err != nil {
		t.Fatalf("Dataset() error = %v", err)
	}
	if text != "decay text\n" {
		t.Errorf("Dataset() = %q, want %q", text, "decay text\n")
	}

	if _, err := p.Dataset(ctx, 60, 28, "MISSING"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Dataset(missing) error = %v, want ErrNotFound", err)
	}

	// The "ADOPTED LEVELS, GAMMAS" variant satisfies an adopted-levels
	// lookup.
	text, err = p.AdoptedLevels(ctx, 60, 28)
	if err != nil {
		t.Fatalf("AdoptedLevels() error = %v", err)
	}
	if text != "adopted text\n" {
		t.Errorf("AdoptedLevels() = %q, want %q", text, "adopted text\n")
	}

	names, err := p.DatasetNames(ctx, 60)
	if err != nil {
		t.Fatalf("DatasetNames() error = %v", err)
	}
	if len(names) != 3 {
		t.Errorf("len(DatasetNames()) = %d, want 3", len(names))
	}
	if names[0] != "ADOPTED LEVELS, GAMMAS" {
		t.Errorf("names[0] = %q, want registration order preserved", names[0])
	}
}

func writeMassFile(t *testing.T, dir string, mass int, datasets ...[]string) {
	t.Helper()
	var blocks []string
	for _, cards := range datasets {
		blocks = append(blocks, strings.Join(cards, "\n"))
	}
	content := strings.Join(blocks, "\n\n") + "\n"
	if err := os.WriteFile(filepath.Join(dir, MassFileName(mass)), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestFileProvider(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	writeMassFile(t, dir, 60,
		[]string{header(" 60NI", "ADOPTED LEVELS, GAMMAS"), padCard(" 60NI  L 0.0")},
		[]string{header(" 60CO", "ADOPTED LEVELS"), padCard(" 60CO  L 0.0")},
		[]string{header(" 60NI", "60CO B- DECAY"), padCard(" 60NI  L 0.0")},
	)

	p, err := NewFileProvider(dir)
	if err != nil {
		t.Fatalf("NewFileProvider() error = %v", err)
	}

	text, err := p.Dataset(ctx, 60, 28, "60CO B- DECAY")
	if err != nil {
		t.Fatalf("Dataset() error = %v", err)
	}
	if !strings.HasPrefix(text, header(" 60NI", "60CO B- DECAY")) {
		t.Errorf("Dataset() text starts %q, want the decay header", text[:20])
	}

	// Nickel and cobalt adopted datasets are distinct blocks in the same
	// mass chain.
	niText, err := p.AdoptedLevels(ctx, 60, 28)
	if err != nil {
		t.Fatalf("AdoptedLevels(ni) error = %v", err)
	}
	coText, err := p.AdoptedLevels(ctx, 60, 27)
	if err != nil {
		t.Fatalf("AdoptedLevels(co) error = %v", err)
	}
	if niText == coText {
		t.Error("nickel and cobalt lookups returned the same block")
	}

	names, err := p.DatasetNames(ctx, 60)
	if err != nil {
		t.Fatalf("DatasetNames() error = %v", err)
	}
	want := []string{"ADOPTED LEVELS, GAMMAS", "ADOPTED LEVELS", "60CO B- DECAY"}
	if len(names) != len(want) {
		t.Fatalf("DatasetNames() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestFileProviderNotFound(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	writeMassFile(t, dir, 60,
		[]string{header(" 60NI", "ADOPTED LEVELS")},
	)

	p, err := NewFileProvider(dir)
	if err != nil {
		t.Fatalf("NewFileProvider() error = %v", err)
	}

	if _, err := p.Dataset(ctx, 60, 28, "MISSING"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Dataset(missing) error = %v, want ErrNotFound", err)
	}
	if _, err := p.AdoptedLevels(ctx, 61, 28); !errors.Is(err, ErrNotFound) {
		t.Errorf("AdoptedLevels(missing mass) error = %v, want ErrNotFound", err)
	}
}

func TestNewFileProviderErrors(t *testing.T) {
	if _, err := NewFileProvider(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("NewFileProvider(missing) error = nil, want error")
	}

	file := filepath.Join(t.TempDir(), "plain")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileProvider(file); err == nil {
		t.Error("NewFileProvider(file) error = nil, want error")
	}
}

func TestMassFileName(t *testing.T) {
	tests := []struct {
		mass int
		want string
	}{
		{1, "ensdf.001"},
		{60, "ensdf.060"},
		{294, "ensdf.294"},
	}
	for _, tt := range tests {
		if got := MassFileName(tt.mass); got != tt.want {
			t.Errorf("MassFileName(%d) = %q, want %q", tt.mass, got, tt.want)
		}
	}
}

func TestMassFromFileName(t *testing.T) {
	tests := []struct {
		name string
		mass int
		ok   bool
	}{
		{"ensdf.060", 60, true},
		{"ensdf.001", 1, true},
		{"ensdf.abc", 0, false},
		{"readme.txt", 0, false},
		{"ensdf.000", 0, false},
	}
	for _, tt := range tests {
		mass, ok := massFromFileName(tt.name)
		if ok != tt.ok || mass != tt.mass {
			t.Errorf("massFromFileName(%q) = (%d, %v), want (%d, %v)",
				tt.name, mass, ok, tt.mass, tt.ok)
		}
	}
}
