package gen

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the delay between observing a fixture change and
// rewriting it. Batches editor-style replace sequences into one write.
const DefaultDebounce = 100 * time.Millisecond

// Watcher keeps a generated fixture directory pristine: any catalog
// file that is removed or modified out from under a consuming test
// suite is rewritten from the catalog.
type Watcher struct {
	gen      *Generator
	debounce time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending map[string]bool
}

// NewWatcher returns a Watcher over the generator's directory.
func NewWatcher(g *Generator, debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		gen:      g,
		debounce: debounce,
		pending:  make(map[string]bool),
	}
}

// Run watches the fixture directory via fsnotify until ctx is
// cancelled. The directory must already exist; run the generator
// first.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(w.gen.Dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.gen.Dir, err)
	}
	logger.Info().Str("dir", w.gen.Dir).Msg("watching fixtures")

	for {
		select {
		case <-ctx.Done():
			w.stopTimer()
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			name := filepath.Base(event.Name)
			if _, known := w.gen.Catalog.Lookup(name); !known {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Remove|fsnotify.Rename|fsnotify.Create) == 0 {
				continue
			}
			w.mark(name)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error().Err(err).Str("dir", w.gen.Dir).Msg("watch error")
		}
	}
}

func (w *Watcher) mark(name string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.pending[name] = true
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.flush)
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
}

// flush rewrites every pending fixture that no longer matches its
// catalog payload. The content check also swallows the events our own
// rewrites generate, so the loop settles.
func (w *Watcher) flush() {
	w.mu.Lock()
	names := w.pending
	w.pending = make(map[string]bool)
	w.mu.Unlock()

	for name := range names {
		entry, ok := w.gen.Catalog.Lookup(name)
		if !ok {
			continue
		}
		if onDisk, err := os.ReadFile(filepath.Join(w.gen.Dir, name)); err == nil && bytes.Equal(onDisk, entry.Payload) {
			continue
		}
		if _, err := w.gen.WriteEntry(entry); err != nil {
			logger.Error().Err(err).Str("file", name).Msg("restore failed")
			continue
		}
		logger.Info().Str("file", name).Msg("fixture restored")
	}
}
