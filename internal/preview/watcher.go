package preview

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/RandomArtist22/MA104-Notes/internal/logfields"
)

// debounceWindow coalesces editor save bursts into one rebuild.
const debounceWindow = 300 * time.Millisecond

// Watcher triggers rebuilds when files under the source directory change.
type Watcher struct {
	root    string
	rebuild func(ctx context.Context) error
}

// NewWatcher creates a watcher over root invoking rebuild after each settled
// burst of changes.
func NewWatcher(root string, rebuild func(ctx context.Context) error) *Watcher {
	return &Watcher{root: root, rebuild: rebuild}
}

// Run watches until the context is cancelled. Rebuild failures are logged and
// watching continues; the next change gets another chance.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := addDirsRecursive(watcher, w.root); err != nil {
		return err
	}

	rebuildReq, trigger := debounced()
	w.startRebuildWorker(ctx, rebuildReq)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(watcher, ev, trigger)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Watcher error", logfields.Error(err))
		}
	}
}

// handleEvent filters noise and arms the debounce trigger. Newly created
// directories are added to the watch set so nested notes are seen.
func (w *Watcher) handleEvent(watcher *fsnotify.Watcher, ev fsnotify.Event, trigger func()) {
	if shouldIgnoreEvent(ev.Name) {
		return
	}
	if ev.Op&fsnotify.Create == fsnotify.Create {
		if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
			_ = addDirsRecursive(watcher, ev.Name)
		}
	}
	slog.Debug("File change detected", logfields.Path(ev.Name), slog.String("op", ev.Op.String()))
	trigger()
}

// debounced returns a capacity-one request channel and a trigger that
// enqueues one request per quiet window.
func debounced() (chan struct{}, func()) {
	var mu sync.Mutex
	var timer *time.Timer
	rebuildReq := make(chan struct{}, 1)

	trigger := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(debounceWindow, func() {
			select {
			case rebuildReq <- struct{}{}:
			default:
			}
		})
	}

	return rebuildReq, trigger
}

// startRebuildWorker serializes rebuilds. A change arriving mid-rebuild
// queues exactly one follow-up.
func (w *Watcher) startRebuildWorker(ctx context.Context, rebuildReq chan struct{}) {
	var mu sync.Mutex
	running := false
	pending := false

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-rebuildReq:
				if !ok {
					return
				}
				mu.Lock()
				if running {
					pending = true
					mu.Unlock()
					continue
				}
				running = true
				mu.Unlock()

				slog.Info("Change detected, rebuilding site")
				if err := w.rebuild(ctx); err != nil {
					slog.Warn("Rebuild failed", logfields.Error(err))
				}

				mu.Lock()
				running = false
				if pending {
					pending = false
					mu.Unlock()
					select {
					case rebuildReq <- struct{}{}:
					default:
					}
				} else {
					mu.Unlock()
				}
			}
		}
	}()
}

func addDirsRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if strings.HasPrefix(filepath.Base(path), ".") && path != root {
				return filepath.SkipDir
			}
			if err := w.Add(path); err != nil {
				slog.Warn("Watch add failed", logfields.Path(path), logfields.Error(err))
			}
		}
		return nil
	})
}

// shouldIgnoreEvent returns true for filesystem events that should not trigger rebuilds.
func shouldIgnoreEvent(path string) bool {
	base := filepath.Base(path)

	if strings.HasPrefix(base, ".") {
		return true
	}

	// Editor temp and swap files
	if strings.HasSuffix(base, "~") ||
		strings.HasSuffix(base, ".swp") ||
		strings.HasSuffix(base, ".swx") ||
		strings.HasPrefix(base, ".#") ||
		strings.HasPrefix(base, "#") && strings.HasSuffix(base, "#") {
		return true
	}

	if base == "Thumbs.db" {
		return true
	}

	return false
}
