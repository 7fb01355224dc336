package provider

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"nucleura/helios/pkg/ensdf/nuclide"
)

// adoptedLevels is the canonical identifier of a nuclide's adopted levels
// dataset. Evaluations with gammas use the longer "ADOPTED LEVELS, GAMMAS".
const adoptedLevels = "ADOPTED LEVELS"

// FileProvider reads datasets from a directory holding the standard ENSDF
// distribution files: one file per mass number named "ensdf.NNN", with the
// datasets of that mass chain separated by blank lines.
//
// Files are re-read on every call; callers that want caching wrap the
// provider with a cache backend.
type FileProvider struct {
	root string
}

// NewFileProvider creates a provider reading from the given directory.
func NewFileProvider(root string) (*FileProvider, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("ensdf distribution directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("ensdf distribution path %q is not a directory", root)
	}
	return &FileProvider{root: root}, nil
}

// Root returns the distribution directory this provider reads from.
func (f *FileProvider) Root() string { return f.root }

// Dataset implements Provider.
func (f *FileProvider) Dataset(ctx context.Context, mass, protons int, name string) (string, error) {
	nucid, err := nuclide.ID(mass, protons)
	if err != nil {
		return "", err
	}
	blocks, err := f.massChain(ctx, mass)
	if err != nil {
		return "", err
	}
	for _, b := range blocks {
		if b.nucid == nucid && strings.EqualFold(b.id, strings.TrimSpace(name)) {
			return b.text, nil
		}
	}
	return "", fmt.Errorf("dataset %q for %s: %w", name, nucid, ErrNotFound)
}

// AdoptedLevels implements Provider. It accepts both the bare
// "ADOPTED LEVELS" identifier and the "ADOPTED LEVELS, GAMMAS" variant.
func (f *FileProvider) AdoptedLevels(ctx context.Context, mass, protons int) (string, error) {
	nucid, err := nuclide.ID(mass, protons)
	if err != nil {
		return "", err
	}
	blocks, err := f.massChain(ctx, mass)
	if err != nil {
		return "", err
	}
	for _, b := range blocks {
		if b.nucid == nucid && hasAdoptedPrefix(b.id) {
			return b.text, nil
		}
	}
	return "", fmt.Errorf("adopted levels for %s: %w", nucid, ErrNotFound)
}

// DatasetNames implements Provider.
func (f *FileProvider) DatasetNames(ctx context.Context, mass int) ([]string, error) {
	blocks, err := f.massChain(ctx, mass)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(blocks))
	for _, b := range blocks {
		names = append(names, b.id)
	}
	return names, nil
}

// block is one dataset's raw text with its identifying header fields.
type block struct {
	nucid string
	id    string
	text  string
}

// massChain reads and splits the distribution file for one mass number.
func (f *FileProvider) massChain(ctx context.Context, mass int) ([]block, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := filepath.Join(f.root, MassFileName(mass))
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("mass chain %d: %w", mass, ErrNotFound)
		}
		return nil, fmt.Errorf("mass chain %d: %w", mass, err)
	}
	return splitBlocks(string(data)), nil
}

// splitBlocks splits a distribution file into datasets on blank lines.
func splitBlocks(data string) []block {
	var blocks []block
	var lines []string

	flush := func() {
		if len(lines) == 0 {
			return
		}
		header := lines[0]
		blocks = append(blocks, block{
			nucid: headerField(header, 0, 5),
			id:    headerField(header, 9, 39),
			text:  strings.Join(lines, "\n") + "\n",
		})
		lines = nil
	}

	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		lines = append(lines, line)
	}
	flush()
	return blocks
}

// MassFileName returns the distribution file name for a mass number,
// e.g. MassFileName(60) == "ensdf.060".
func MassFileName(mass int) string {
	return fmt.Sprintf("ensdf.%03d", mass)
}

func hasAdoptedPrefix(name string) bool {
	return strings.HasPrefix(strings.ToUpper(strings.TrimSpace(name)), adoptedLevels)
}

func headerField(line string, a, b int) string {
	if a >= len(line) {
		return ""
	}
	if b > len(line) {
		b = len(line)
	}
	return strings.TrimSpace(line[a:b])
}
