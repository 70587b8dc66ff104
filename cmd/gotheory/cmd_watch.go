package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"gotheory/cmd/gotheory/ui"
	"gotheory/internal/tracker"
	"gotheory/internal/watch"
)

var watchInterval time.Duration

// watchCmd follows the workspace and reports coverage changes
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the workspace and report coverage changes",
	Long: `Watches the curriculum tree for changes to lesson files. When a burst
of edits settles, the coverage scan reruns and the new count is printed;
with a manifest present, drifted files are listed too.

Runs until interrupted.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 0, "Periodic full rescan in addition to event-driven scans (0 disables)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	styles := ui.DefaultStyles()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Drift detection only works against an existing manifest; watch
	// should not conjure state dirs in a tree that was never generated.
	var manifest *tracker.Manifest
	if cfg.Manifest.Enabled {
		dbPath := filepath.Join(manifestStateDir(cfg), tracker.ManifestFile)
		if _, err := os.Stat(dbPath); err == nil {
			m, err := tracker.OpenManifest(manifestStateDir(cfg))
			if err != nil {
				return fmt.Errorf("open manifest: %w", err)
			}
			defer m.Close()
			manifest = m
		}
	}

	w, err := watch.New(watch.Options{
		Root:     cfg.Root,
		Manifest: manifest,
		Debounce: cfg.GetWatchDebounce(),
		OnChange: func(u watch.Update) { printUpdate(styles, u) },
	})
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Start(ctx); err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}

	cov, err := tracker.Scan(cfg.Root)
	if err != nil {
		w.Stop()
		return fmt.Errorf("initial scan: %w", err)
	}
	fmt.Printf("Watching %s — %d/%d theory files (%.1f%%)\n",
		cfg.Root, cov.TheoryFound, cov.TheoryExpected, cov.Percent())
	if manifest == nil {
		fmt.Println(styles.Muted.Render("No manifest found; drift detection is off."))
	}
	fmt.Println(styles.Muted.Render("Press Ctrl+C to stop."))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	if watchInterval > 0 {
		ticker := time.NewTicker(watchInterval)
		defer ticker.Stop()
	loop:
		for {
			select {
			case <-sigCh:
				break loop
			case <-ticker.C:
				cov, err := tracker.Scan(cfg.Root)
				if err != nil {
					fmt.Printf("%s rescan: %v\n", stamp(), err)
					continue
				}
				fmt.Printf("%s periodic rescan — %d/%d theory files (%.1f%%)\n",
					stamp(), cov.TheoryFound, cov.TheoryExpected, cov.Percent())
			}
		}
	} else {
		<-sigCh
	}

	w.Stop()

	stats := w.GetStats()
	fmt.Printf("\nWatcher stats: %d created, %d modified, %d deleted, %d rescans, %d errors\n",
		stats.FilesCreated, stats.FilesModified, stats.FilesDeleted, stats.Rescans, stats.Errors)
	return nil
}

// printUpdate reports one settled batch.
func printUpdate(styles ui.Styles, u watch.Update) {
	fmt.Printf("%s %d file(s) changed — %d/%d theory files (%.1f%%)\n",
		stamp(), len(u.Changed), u.Coverage.TheoryFound, u.Coverage.TheoryExpected, u.Coverage.Percent())
	for _, d := range u.Drifts {
		fmt.Printf("           %s %s\n", styles.Warning.Render("drift "+string(d.Kind)), d.RelPath)
	}
}

func stamp() string {
	return "[" + time.Now().Format("15:04:05") + "]"
}
