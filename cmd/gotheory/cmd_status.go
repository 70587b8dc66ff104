package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gotheory/cmd/gotheory/ui"
	"gotheory/internal/curriculum"
	"gotheory/internal/tracker"
)

// statusCmd reports workspace coverage and drift
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show curriculum coverage and manifest drift",
	RunE:  showStatus,
}

func showStatus(cmd *cobra.Command, args []string) error {
	styles := ui.DefaultStyles()

	cov, err := tracker.Scan(cfg.Root)
	if err != nil {
		return fmt.Errorf("scan workspace: %w", err)
	}

	fmt.Println(styles.Title.Render("Curriculum Status"))
	fmt.Println(styles.RenderDivider(60))
	fmt.Printf("Root: %s\n\n", cov.Root)

	printCoverageGrid(styles, cov)

	fmt.Println()
	line := fmt.Sprintf("Theory files: %d/%d (%.1f%%)", cov.TheoryFound, cov.TheoryExpected, cov.Percent())
	if cov.Complete() {
		fmt.Println(styles.Success.Render(line))
	} else {
		fmt.Println(styles.Warning.Render(line))
	}

	if len(cov.MissingFiles) > 0 {
		fmt.Println("\nMissing:")
		for _, path := range cov.MissingFiles {
			fmt.Printf("  %s %s\n", styles.Error.Render("✗"), path)
		}
	}
	if len(cov.OrphanDirs) > 0 {
		fmt.Println("\nDirectories matching no topic:")
		for _, dir := range cov.OrphanDirs {
			fmt.Printf("  %s %s\n", styles.Warning.Render("?"), dir)
		}
	}

	return showManifestStatus(styles)
}

// printCoverageGrid prints one row per topic with a mark per level.
func printCoverageGrid(styles ui.Styles, cov tracker.Coverage) {
	fmt.Printf("  %-3s %-28s %-8s %-13s %s\n", "##", "Topic", "basic", "intermediate", "advanced")

	for _, tc := range cov.ByTopic {
		marks := make([]string, 0, 3)
		for _, level := range curriculum.AllLevels() {
			switch {
			case !tc.Topic.HasLevel(level):
				marks = append(marks, styles.Muted.Render("—"))
			case tc.Found[level]:
				marks = append(marks, styles.Success.Render("✓"))
			default:
				marks = append(marks, styles.Error.Render("✗"))
			}
		}
		// The marks carry ANSI escapes, so pad the visible column by hand.
		fmt.Printf("  %-3s %-28s %s        %s             %s\n",
			tc.Topic.Number, truncate(tc.Topic.Title, 28), marks[0], marks[1], marks[2])
	}
}

// showManifestStatus prints the last run and current drift when a
// manifest database exists.
func showManifestStatus(styles ui.Styles) error {
	if !cfg.Manifest.Enabled {
		return nil
	}

	manifest, err := tracker.OpenManifest(manifestStateDir(cfg))
	if err != nil {
		return fmt.Errorf("open manifest: %w", err)
	}
	defer manifest.Close()

	last, err := manifest.LastRun()
	if err != nil {
		return fmt.Errorf("read manifest: %w", err)
	}
	if last == nil {
		fmt.Println(styles.Muted.Render("\nNo generation runs recorded yet."))
		return nil
	}

	fmt.Println("\nManifest:")
	fmt.Printf("  Last run:  %s (%d files, %d bytes, version %s)\n",
		last.StartedAt.Format("2006-01-02 15:04:05"), last.FilesWritten, last.BytesWritten, last.ToolVersion)
	runs, err := manifest.RunCount()
	if err == nil {
		fmt.Printf("  Total runs: %d\n", runs)
	}

	drifts, err := manifest.DetectDrift(cfg.Root)
	if err != nil {
		return fmt.Errorf("detect drift: %w", err)
	}
	if len(drifts) == 0 {
		fmt.Printf("  %s\n", styles.Success.Render("No drift: workspace matches the last run."))
		return nil
	}

	fmt.Printf("  %s\n", styles.Warning.Render(fmt.Sprintf("Drift: %d file(s)", len(drifts))))
	for _, d := range drifts {
		fmt.Printf("    %-9s %s\n", d.Kind, d.RelPath)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}
