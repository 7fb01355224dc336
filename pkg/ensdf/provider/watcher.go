package provider

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches an ENSDF distribution directory for updated mass-chain
// files and reports the affected mass numbers, so callers can invalidate
// cached datasets. Events are debounced per file to absorb editors and
// download tools that write in bursts.
type Watcher struct {
	watcher  *fsnotify.Watcher
	root     string
	debounce time.Duration

	mu      sync.Mutex
	running bool
	timers  map[int]*time.Timer
}

// NewWatcher creates a watcher for the provider's distribution directory.
func NewWatcher(p *FileProvider) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	return &Watcher{
		watcher:  w,
		root:     p.Root(),
		debounce: 250 * time.Millisecond,
		timers:   make(map[int]*time.Timer),
	}, nil
}

// SetDebounce changes the per-file debounce interval. Must be called
// before Watch.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Watch blocks until the context is cancelled, invoking onChange with the
// mass number of each distribution file that is written, created, renamed,
// or removed.
func (w *Watcher) Watch(ctx context.Context, onChange func(mass int)) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.mu.Unlock()

	if err := w.watcher.Add(w.root); err != nil {
		return fmt.Errorf("watch %q: %w", w.root, err)
	}
	defer w.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			mass, ok := massFromFileName(filepath.Base(event.Name))
			if !ok {
				continue
			}
			w.schedule(mass, onChange)
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			// Watch errors are transient; keep watching.
		}
	}
}

// schedule arms (or re-arms) the debounce timer for one mass number.
func (w *Watcher) schedule(mass int, onChange func(mass int)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if t, ok := w.timers[mass]; ok {
		t.Stop()
	}
	w.timers[mass] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.timers, mass)
		w.mu.Unlock()
		onChange(mass)
	})
}

// massFromFileName extracts the mass number from a distribution file name
// such as "ensdf.060".
func massFromFileName(name string) (int, bool) {
	rest, ok := strings.CutPrefix(name, "ensdf.")
	if !ok {
		return 0, false
	}
	mass, err := strconv.Atoi(rest)
	if err != nil || mass <= 0 {
		return 0, false
	}
	return mass, true
}
