package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/goleak"

	"gotheory/internal/tracker"
)

// newTestWatcher builds a watcher with a short debounce so tests
// settle quickly, delivering updates on the returned channel.
func newTestWatcher(t *testing.T, root string, manifest *tracker.Manifest) (*Watcher, chan Update) {
	t.Helper()

	updates := make(chan Update, 16)
	w, err := New(Options{
		Root:     root,
		Manifest: manifest,
		Debounce: 50 * time.Millisecond,
		OnChange: func(u Update) { updates <- u },
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return w, updates
}

func waitUpdate(t *testing.T, updates chan Update) Update {
	t.Helper()
	select {
	case u := <-updates:
		return u
	case <-time.After(5 * time.Second):
		t.Fatal("no update within 5s")
		return Update{}
	}
}

func TestWatcherStartStop(t *testing.T) {
	defer goleak.VerifyNone(t)

	root := t.TempDir()
	w, _ := newTestWatcher(t, root, nil)

	if w.IsWatching() {
		t.Error("watching before Start")
	}
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if !w.IsWatching() {
		t.Error("not watching after Start")
	}
	if len(w.WatchList()) == 0 {
		t.Error("empty watch list after Start")
	}

	w.Stop()
	if w.IsWatching() {
		t.Error("still watching after Stop")
	}

	// Second Stop is a no-op.
	w.Stop()
}

func TestWatcherCreatesRoot(t *testing.T) {
	defer goleak.VerifyNone(t)

	root := filepath.Join(t.TempDir(), "workspace")
	w, _ := newTestWatcher(t, root, nil)
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	if _, err := os.Stat(root); err != nil {
		t.Errorf("root not created: %v", err)
	}
}

func TestWatcherDetectsTheoryWrite(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "07_maps", "basic")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}

	w, updates := newTestWatcher(t, root, nil)
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	path := filepath.Join(dir, "theory.md")
	if err := os.WriteFile(path, []byte("# Maps - Basic Level\n"), 0644); err != nil {
		t.Fatal(err)
	}

	u := waitUpdate(t, updates)
	found := false
	for _, c := range u.Changed {
		if c == "07_maps/basic/theory.md" {
			found = true
		}
	}
	if !found {
		t.Errorf("changed paths %v missing theory file", u.Changed)
	}
	if u.Coverage.TheoryFound != 1 {
		t.Errorf("coverage found = %d, want 1", u.Coverage.TheoryFound)
	}
	if u.Drifts != nil {
		t.Errorf("drifts without manifest = %v, want nil", u.Drifts)
	}

	stats := w.GetStats()
	if stats.FilesCreated == 0 && stats.FilesModified == 0 {
		t.Error("no create or modify recorded in stats")
	}
	if stats.Rescans == 0 {
		t.Error("no rescan recorded in stats")
	}
	if stats.LastEventPath != path {
		t.Errorf("LastEventPath = %q, want %q", stats.LastEventPath, path)
	}
}

func TestWatcherIgnoresUnrelatedFiles(t *testing.T) {
	root := t.TempDir()
	w, updates := newTestWatcher(t, root, nil)
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	for _, name := range []string{"notes.txt", "scratch.md", "theory.md.bak"} {
		if err := os.WriteFile(filepath.Join(root, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case u := <-updates:
		t.Errorf("unexpected update for unrelated files: %v", u.Changed)
	case <-time.After(300 * time.Millisecond):
	}

	stats := w.GetStats()
	if stats.FilesCreated != 0 || stats.FilesModified != 0 {
		t.Errorf("stats counted unrelated files: %+v", stats)
	}
}

func TestWatcherFollowsNewTopicDir(t *testing.T) {
	root := t.TempDir()
	w, updates := newTestWatcher(t, root, nil)
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	dir := filepath.Join(root, "03_functions", "advanced", "examples")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}

	// Give the create event time to extend the watch set before
	// writing inside the new tree.
	deadline := time.Now().Add(3 * time.Second)
	for {
		watched := false
		for _, d := range w.WatchList() {
			if d == dir {
				watched = true
			}
		}
		if watched {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("examples dir never watched, list = %v", w.WatchList())
		}
		time.Sleep(20 * time.Millisecond)
	}

	src := "package main\n\nfunc main() {}\n"
	if err := os.WriteFile(filepath.Join(dir, "closures.go"), []byte(src), 0644); err != nil {
		t.Fatal(err)
	}

	u := waitUpdate(t, updates)
	found := false
	for _, c := range u.Changed {
		if c == "03_functions/advanced/examples/closures.go" {
			found = true
		}
	}
	if !found {
		t.Errorf("changed paths %v missing example in new dir", u.Changed)
	}
}

func TestWatcherReportsDrift(t *testing.T) {
	root := t.TempDir()
	manifest, err := tracker.OpenManifest(filepath.Join(root, ".gotheory"))
	if err != nil {
		t.Fatalf("OpenManifest: %v", err)
	}
	defer manifest.Close()

	// Record a file, then change it on disk behind the manifest's back.
	rel := "01_basics_and_syntax/basic/theory.md"
	abs := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(abs), 0755); err != nil {
		t.Fatal(err)
	}
	original := []byte("# Go Basics and Syntax - Basic Level\n")
	if err := os.WriteFile(abs, original, 0644); err != nil {
		t.Fatal(err)
	}
	if err := manifest.BeginRun("run-1", "test"); err != nil {
		t.Fatal(err)
	}
	err = manifest.RecordFile(tracker.FileEntry{
		RelPath: rel,
		Topic:   "01_basics_and_syntax",
		Level:   "basic",
		Kind:    "theory",
		SHA256:  tracker.HashBytes(original),
		Size:    int64(len(original)),
		RunID:   "run-1",
	})
	if err != nil {
		t.Fatal(err)
	}

	w, updates := newTestWatcher(t, root, manifest)
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(abs, []byte("# Edited by hand\n"), 0644); err != nil {
		t.Fatal(err)
	}

	u := waitUpdate(t, updates)
	foundDrift := false
	for _, d := range u.Drifts {
		if d.RelPath == rel && d.Kind == tracker.DriftModified {
			foundDrift = true
		}
	}
	if !foundDrift {
		t.Errorf("drifts %v missing modified %s", u.Drifts, rel)
	}
}

func TestWatcherContextCancel(t *testing.T) {
	root := t.TempDir()
	w, _ := newTestWatcher(t, root, nil)

	ctx, cancel := context.WithCancel(context.Background())
	if err := w.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	cancel()

	// The loop exits on its own; Stop must still return promptly.
	done := make(chan struct{})
	go func() {
		w.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("Stop blocked after context cancel")
	}
}

func TestIsCurriculumFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want bool
	}{
		{"ws/07_maps/basic/theory.md", true},
		{"ws/07_maps/claude.md", true},
		{"ws/README.md", true},
		{"ws/07_maps/basic/examples/maps.go", true},
		{"ws/07_maps/basic/maps.go", false},
		{"ws/07_maps/basic/theory.txt", false},
		{"ws/notes.md", false},
		{"ws/.gotheory/config.json", false},
	}
	for _, tt := range tests {
		if got := isCurriculumFile(tt.path); got != tt.want {
			t.Errorf("isCurriculumFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
