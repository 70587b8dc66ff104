// Package watch follows a curriculum workspace on disk: it debounces
// filesystem events on lesson files, rescans coverage when a batch
// settles, and reports drift against the manifest when one is attached.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"gotheory/internal/logging"
	"gotheory/internal/tracker"
)

// Stats tracks watcher activity.
type Stats struct {
	FilesCreated  int
	FilesModified int
	FilesDeleted  int
	Rescans       int
	Errors        int
	LastEventTime time.Time
	LastEventPath string
	LastEventType string
}

// Update is delivered to the OnChange callback after a settled batch.
type Update struct {
	Changed  []string // settled paths, workspace-relative where possible
	Coverage tracker.Coverage
	Drifts   []tracker.Drift // nil when no manifest is attached
}

// Options configures a Watcher.
type Options struct {
	Root     string
	Manifest *tracker.Manifest // optional drift detection
	Debounce time.Duration     // settle window, default 500ms
	OnChange func(Update)      // optional, called from the watch goroutine
}

// Watcher watches the curriculum tree for changes.
type Watcher struct {
	mu          sync.RWMutex
	watcher     *fsnotify.Watcher
	root        string
	manifest    *tracker.Manifest
	onChange    func(Update)
	debounceMap map[string]time.Time
	debounceDur time.Duration
	stopCh      chan struct{}
	doneCh      chan struct{}
	running     bool

	stats Stats
}

// New creates a watcher for the workspace root.
func New(opts Options) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}
	return &Watcher{
		watcher:     fsw,
		root:        opts.Root,
		manifest:    opts.Manifest,
		onChange:    opts.OnChange,
		debounceMap: make(map[string]time.Time),
		debounceDur: debounce,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}, nil
}

// Start adds the workspace tree to the watch set and begins the event
// loop. Non-blocking; Stop or context cancellation ends it.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := os.MkdirAll(w.root, 0755); err != nil {
		logging.WatchWarn("create root %s: %v (continuing)", w.root, err)
	}
	w.addTree(w.root)

	go w.run(ctx)
	return nil
}

// Stop ends the event loop and closes the underlying watcher.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	if err := w.watcher.Close(); err != nil {
		logging.WatchError("close watcher: %v", err)
	}
	logging.Watch("watcher stopped")
}

// IsWatching reports whether the event loop is running.
func (w *Watcher) IsWatching() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.running
}

// GetStats returns a copy of the current statistics.
func (w *Watcher) GetStats() Stats {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.stats
}

// WatchList returns the directories currently being watched.
func (w *Watcher) WatchList() []string {
	return w.watcher.WatchList()
}

// addTree walks root and watches every directory except state and VCS
// trees. fsnotify watches are per-directory, not recursive.
func (w *Watcher) addTree(root string) {
	filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		name := d.Name()
		if path != root && strings.HasPrefix(name, ".") {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			logging.WatchWarn("watch %s: %v", path, err)
		}
		return nil
	})
	logging.Watch("watching %d directories under %s", len(w.watcher.WatchList()), root)
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.tickInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logging.Watch("context cancelled")
			return

		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logging.WatchError("%v", err)
			w.mu.Lock()
			w.stats.Errors++
			w.mu.Unlock()

		case <-ticker.C:
			w.flushSettled()
		}
	}
}

// tickInterval keeps the flush responsive for short debounce windows.
func (w *Watcher) tickInterval() time.Duration {
	interval := w.debounceDur / 5
	if interval < 10*time.Millisecond {
		interval = 10 * time.Millisecond
	}
	if interval > 100*time.Millisecond {
		interval = 100 * time.Millisecond
	}
	return interval
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	// New directories join the watch set: a fresh topic dir appears as
	// a create on the root watch.
	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if !strings.HasPrefix(filepath.Base(event.Name), ".") {
				w.addTree(event.Name)
			}
			return
		}
	}

	if !isCurriculumFile(event.Name) {
		return
	}

	var eventType string
	switch {
	case event.Op&fsnotify.Create != 0:
		eventType = "create"
	case event.Op&fsnotify.Write != 0:
		eventType = "modify"
	case event.Op&fsnotify.Remove != 0:
		eventType = "delete"
	case event.Op&fsnotify.Rename != 0:
		eventType = "rename"
	default:
		return // chmod etc.
	}

	logging.WatchDebug("%s %s", eventType, event.Name)

	w.mu.Lock()
	w.stats.LastEventTime = time.Now()
	w.stats.LastEventPath = event.Name
	w.stats.LastEventType = eventType
	switch eventType {
	case "create":
		w.stats.FilesCreated++
	case "modify":
		w.stats.FilesModified++
	case "delete", "rename":
		w.stats.FilesDeleted++
	}
	w.debounceMap[event.Name] = time.Now()
	w.mu.Unlock()
}

// flushSettled rescans once every path in a batch has been quiet for
// the debounce window.
func (w *Watcher) flushSettled() {
	w.mu.Lock()
	now := time.Now()
	var settled []string
	for path, eventTime := range w.debounceMap {
		if now.Sub(eventTime) >= w.debounceDur {
			settled = append(settled, path)
			delete(w.debounceMap, path)
		}
	}
	w.mu.Unlock()

	if len(settled) == 0 {
		return
	}
	w.rescan(settled)
}

func (w *Watcher) rescan(settled []string) {
	cov, err := tracker.Scan(w.root)
	if err != nil {
		logging.WatchError("rescan: %v", err)
		w.mu.Lock()
		w.stats.Errors++
		w.mu.Unlock()
		return
	}

	update := Update{Coverage: cov}
	for _, p := range settled {
		if rel, err := filepath.Rel(w.root, p); err == nil {
			update.Changed = append(update.Changed, filepath.ToSlash(rel))
		} else {
			update.Changed = append(update.Changed, p)
		}
	}

	logging.Watch("%d files settled, coverage %d/%d",
		len(settled), cov.TheoryFound, cov.TheoryExpected)

	if w.manifest != nil {
		drifts, err := w.manifest.DetectDrift(w.root)
		if err != nil {
			logging.WatchError("drift: %v", err)
			w.mu.Lock()
			w.stats.Errors++
			w.mu.Unlock()
		} else {
			update.Drifts = drifts
			for _, d := range drifts {
				logging.Watch("drift %s: %s", d.Kind, d.RelPath)
				logging.Audit().Drift(d.RelPath, string(d.Kind))
			}
		}
	}

	w.mu.Lock()
	w.stats.Rescans++
	onChange := w.onChange
	w.mu.Unlock()

	if onChange != nil {
		onChange(update)
	}
}

// isCurriculumFile reports whether a path is part of the generated
// curriculum: theory lessons, context files, the index, or example
// programs under an examples directory.
func isCurriculumFile(path string) bool {
	base := filepath.Base(path)
	switch base {
	case "theory.md", "claude.md", "README.md":
		return true
	}
	if strings.HasSuffix(base, ".go") {
		return filepath.Base(filepath.Dir(path)) == "examples"
	}
	return false
}
