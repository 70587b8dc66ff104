package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gotheory/internal/curriculum"
	"gotheory/internal/scaffold"
)

var (
	generateLevels []string
	generateForce  bool
	generateDryRun bool
	generateJobs   int
)

// generateCmd writes the embedded curriculum into the workspace
var generateCmd = &cobra.Command{
	Use:   "generate [topic...]",
	Short: "Generate curriculum files into the workspace",
	Long: `Writes the embedded lesson library into the curriculum root: theory
documents, runnable examples, per-topic context files, and the index.

Existing files are left alone unless --force is given, so a partially
generated workspace only receives what is missing.

Examples:
  gotheory generate                   # everything that is missing
  gotheory generate maps concurrency  # only those topics
  gotheory generate 07 --level advanced
  gotheory generate --dry-run         # show the plan, write nothing`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringSliceVarP(&generateLevels, "level", "l", nil, "Limit to levels (basic, intermediate, advanced)")
	generateCmd.Flags().BoolVarP(&generateForce, "force", "f", false, "Overwrite existing files")
	generateCmd.Flags().BoolVar(&generateDryRun, "dry-run", false, "Show the plan without writing")
	generateCmd.Flags().IntVarP(&generateJobs, "jobs", "j", 0, "Concurrent file writers (default: config)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("Received shutdown signal")
		cancel()
	}()

	levels, err := parseLevelFlags(generateLevels, cfg.Levels)
	if err != nil {
		return err
	}

	jobs := generateJobs
	if jobs <= 0 {
		jobs = cfg.Generate.Jobs
	}

	opts := scaffold.Options{
		Root:        cfg.Root,
		Topics:      args,
		Levels:      levels,
		Force:       generateForce || cfg.Generate.Force,
		DryRun:      generateDryRun,
		Jobs:        jobs,
		ToolVersion: Version,
		Out:         os.Stdout,
	}
	// A dry run must not create state on disk.
	if !generateDryRun {
		manifest, err := openManifest(cfg)
		if err != nil {
			return err
		}
		if manifest != nil {
			defer manifest.Close()
			opts.Manifest = manifest
		}
	}

	logger.Debug("starting generation",
		zap.String("root", cfg.Root),
		zap.Strings("topics", args),
		zap.Int("jobs", jobs))

	result, err := scaffold.NewGenerator(opts).Run(ctx)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	if !result.Success {
		return fmt.Errorf("generation finished with %d problem(s)", len(result.Warnings))
	}

	logger.Info("generation complete",
		zap.Int("files", len(result.FilesCreated)),
		zap.Int64("bytes", result.BytesWritten),
		zap.Duration("took", result.Duration))
	return nil
}

// parseLevelFlags turns --level flags (or the configured defaults) into
// curriculum levels.
func parseLevelFlags(flags, fallback []string) ([]curriculum.Level, error) {
	raw := flags
	if len(raw) == 0 {
		raw = fallback
	}
	var levels []curriculum.Level
	for _, s := range raw {
		l, err := curriculum.ParseLevel(s)
		if err != nil {
			return nil, err
		}
		levels = append(levels, l)
	}
	return levels, nil
}
