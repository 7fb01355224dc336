package ensdf

import (
	"context"
	"errors"
	"strings"
	"testing"

	"nucleura/helios/pkg/ensdf/cache"
	"nucleura/helios/pkg/ensdf/provider"
	"nucleura/helios/pkg/ensdf/record"
)

// card assembles an 80-column card image from text fragments placed at
// fixed byte columns.
func card(fragments ...fragment) string {
	buf := []byte(strings.Repeat(" ", 80))
	for _, f := range fragments {
		copy(buf[f.col:], f.text)
	}
	return string(buf)
}

type fragment struct {
	col  int
	text string
}

func at(col int, text string) fragment {
	return fragment{col: col, text: text}
}

// adoptedNickel is a minimal adopted-levels dataset for 60NI with a
// ground state and one excited level.
func adoptedNickel() string {
	return strings.Join([]string{
		card(at(0, " 60NI"), at(9, "ADOPTED LEVELS, GAMMAS")),
		card(at(0, " 60NI"), at(7, "L"), at(9, "0.0"), at(21, "0+"), at(39, "STABLE")),
		card(at(0, " 60NI"), at(7, "L"), at(9, "1332.508"), at(21, "2+")),
	}, "\n") + "\n"
}

// adoptedCobalt is a 60CO adopted-levels dataset whose excited state at
// 58.59 keV is flagged metastable.
func adoptedCobalt() string {
	return strings.Join([]string{
		card(at(0, " 60CO"), at(9, "ADOPTED LEVELS")),
		card(at(0, " 60CO"), at(7, "L"), at(9, "0.0"), at(21, "5+"), at(39, "1925.28 D")),
		card(at(0, " 60CO"), at(7, "L"), at(9, "58.59"), at(21, "2+"), at(39, "10.467 MIN"), at(77, "M")),
		card(at(0, " 60CO"), at(7, "L"), at(9, "277.2"), at(21, "4+")),
	}, "\n") + "\n"
}

// countingProvider wraps a Provider and counts fetches, so tests can
// observe whether the cache short-circuited the provider.
type countingProvider struct {
	inner           provider.Provider
	datasetCalls    int
	adoptedCalls    int
	nameListedCalls int
}

func (c *countingProvider) Dataset(ctx context.Context, mass, protons int, name string) (string, error) {
	c.datasetCalls++
	return c.inner.Dataset(ctx, mass, protons, name)
}

func (c *countingProvider) AdoptedLevels(ctx context.Context, mass, protons int) (string, error) {
	c.adoptedCalls++
	return c.inner.AdoptedLevels(ctx, mass, protons)
}

func (c *countingProvider) DatasetNames(ctx context.Context, mass int) ([]string, error) {
	c.nameListedCalls++
	return c.inner.DatasetNames(ctx, mass)
}

func newTestProvider() *provider.MemoryProvider {
	p := provider.NewMemoryProvider()
	p.Add(60, 28, "ADOPTED LEVELS, GAMMAS", adoptedNickel())
	p.Add(60, 27, "ADOPTED LEVELS", adoptedCobalt())
	return p
}

func TestServiceDataset(t *testing.T) {
	svc := NewService(newTestProvider())

	ds, err := svc.Dataset(context.Background(), 60, 28, "ADOPTED LEVELS, GAMMAS")
	if err != nil {
		t.Fatalf("Dataset() error = %v", err)
	}
	if ds.NucID != "60NI" {
		t.Errorf("NucID = %q, want %q", ds.NucID, "60NI")
	}
	if len(ds.Levels) != 2 {
		t.Errorf("len(Levels) = %d, want 2", len(ds.Levels))
	}
}

func TestServiceDatasetNotFound(t *testing.T) {
	svc := NewService(newTestProvider())

	_, err := svc.Dataset(context.Background(), 60, 28, "MISSING")
	if !errors.Is(err, provider.ErrNotFound) {
		t.Errorf("Dataset(missing) error = %v, want ErrNotFound", err)
	}
}

func TestServiceAdoptedLevelsCaching(t *testing.T) {
	cp := &countingProvider{inner: newTestProvider()}
	svc := NewService(cp, WithCache(cache.NewMemoryBackend()))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ds, err := svc.AdoptedLevels(ctx, 60, 28)
		if err != nil {
			t.Fatalf("AdoptedLevels() call %d error = %v", i, err)
		}
		if ds.NucID != "60NI" {
			t.Errorf("NucID = %q, want %q", ds.NucID, "60NI")
		}
	}

	if cp.adoptedCalls != 1 {
		t.Errorf("provider fetches = %d, want 1 with cache attached", cp.adoptedCalls)
	}
}

func TestServiceDatasetCaching(t *testing.T) {
	cp := &countingProvider{inner: newTestProvider()}
	svc := NewService(cp, WithCache(cache.NewMemoryBackend()))
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := svc.Dataset(ctx, 60, 27, "ADOPTED LEVELS"); err != nil {
			t.Fatalf("Dataset() call %d error = %v", i, err)
		}
	}
	if cp.datasetCalls != 1 {
		t.Errorf("provider fetches = %d, want 1 with cache attached", cp.datasetCalls)
	}
}

func TestServiceInvalidateMass(t *testing.T) {
	cp := &countingProvider{inner: newTestProvider()}
	svc := NewService(cp, WithCache(cache.NewMemoryBackend()))
	ctx := context.Background()

	if _, err := svc.AdoptedLevels(ctx, 60, 28); err != nil {
		t.Fatal(err)
	}
	if err := svc.InvalidateMass(ctx, 60); err != nil {
		t.Fatalf("InvalidateMass() error = %v", err)
	}
	if _, err := svc.AdoptedLevels(ctx, 60, 28); err != nil {
		t.Fatal(err)
	}
	if cp.adoptedCalls != 2 {
		t.Errorf("provider fetches = %d, want 2 after invalidation", cp.adoptedCalls)
	}
}

func TestServiceInvalidateMassWithoutCache(t *testing.T) {
	svc := NewService(newTestProvider())
	if err := svc.InvalidateMass(context.Background(), 60); err != nil {
		t.Errorf("InvalidateMass() without cache error = %v", err)
	}
}

func TestServiceDatasetNames(t *testing.T) {
	svc := NewService(newTestProvider())

	names, err := svc.DatasetNames(context.Background(), 60)
	if err != nil {
		t.Fatalf("DatasetNames() error = %v", err)
	}
	if len(names) != 2 {
		t.Errorf("len(names) = %d, want 2", len(names))
	}
}

func TestServiceParseError(t *testing.T) {
	p := provider.NewMemoryProvider()
	p.Add(60, 28, "BROKEN", card(at(0, " 60NI"), at(9, "BROKEN"))+"\nshort line\n")
	svc := NewService(p)

	if _, err := svc.Dataset(context.Background(), 60, 28, "BROKEN"); err == nil {
		t.Error("Dataset(broken) error = nil, want parse error")
	}
}

func TestServiceNucleus(t *testing.T) {
	svc := NewService(newTestProvider())

	n, err := svc.Nucleus(context.Background(), 60, 27)
	if err != nil {
		t.Fatalf("Nucleus() error = %v", err)
	}

	id, err := n.ID()
	if err != nil {
		t.Fatalf("ID() error = %v", err)
	}
	if id != "60CO" {
		t.Errorf("ID() = %q, want %q", id, "60CO")
	}

	gs := n.GroundState()
	if gs == nil || gs.Energy.Value != 0 {
		t.Fatalf("GroundState() = %+v, want the 0.0 level", gs)
	}

	isomers := n.Isomers()
	if len(isomers) != 2 {
		t.Fatalf("len(Isomers()) = %d, want ground state plus 60COm", len(isomers))
	}
	if !isomers[1].Metastable {
		t.Error("Isomers()[1].Metastable = false, want true")
	}
	if isomers[1].Energy.Value != 58.59 {
		t.Errorf("Isomers()[1].Energy = %v, want 58.59", isomers[1].Energy.Value)
	}
}

func TestNucleusEmpty(t *testing.T) {
	n := NewNucleus(60, 28, &record.Dataset{})
	if n.GroundState() != nil {
		t.Error("GroundState() != nil for an empty dataset")
	}
	if n.Isomers() != nil {
		t.Error("Isomers() != nil for an empty dataset")
	}

	n = NewNucleus(60, 28, nil)
	if n.Levels() != nil || n.Gammas() != nil {
		t.Error("Levels()/Gammas() != nil with no dataset")
	}
}
