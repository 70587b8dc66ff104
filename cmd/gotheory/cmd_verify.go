package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gotheory/cmd/gotheory/ui"
	"gotheory/internal/tracker"
	"gotheory/internal/verify"
)

var verifyRunExamples bool

// verifyCmd checks the lesson library and the workspace
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify lessons, examples, and workspace state",
	Long: `Checks that every registry topic has its lessons and examples, that
every example parses as a main program, and that the workspace matches
the manifest. With --run-examples, allowlisted examples are executed in
an embedded interpreter and must finish cleanly.

Exits non-zero when any check fails.`,
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().BoolVar(&verifyRunExamples, "run-examples", false, "Execute examples in the embedded interpreter")
}

func runVerify(cmd *cobra.Command, args []string) error {
	styles := ui.DefaultStyles()
	failures := 0

	// Lesson library
	issues := verify.CheckLessons()
	issues = append(issues, verify.CheckExampleSyntax()...)
	for _, issue := range issues {
		switch issue.Severity {
		case verify.SeverityError:
			fmt.Printf("  %s %s\n", styles.Error.Render("✗"), issue)
		default:
			fmt.Printf("  %s %s\n", styles.Warning.Render("!"), issue)
		}
	}
	errCount := len(verify.Errors(issues))
	failures += errCount
	printCheck(styles, "lesson library", errCount == 0,
		fmt.Sprintf("%d errors, %d warnings", errCount, len(issues)-errCount))

	// Workspace
	drifted, err := verifyWorkspace(styles)
	if err != nil {
		return err
	}
	failures += drifted

	// Example execution
	runExamples := cfg.Verify.RunExamples
	if cmd.Flags().Changed("run-examples") {
		runExamples = verifyRunExamples
	}
	if runExamples {
		failed, err := runAllExamples(styles)
		if err != nil {
			return err
		}
		failures += failed
	}

	if failures > 0 {
		return fmt.Errorf("verification failed: %d problem(s)", failures)
	}
	fmt.Println(styles.Success.Render("\nAll checks passed."))
	return nil
}

// verifyWorkspace reports coverage and drift, returning the drift
// count. Incomplete coverage is stated but not failed: filling it is
// generate's job, while drift means generated files were altered.
func verifyWorkspace(styles ui.Styles) (int, error) {
	var manifest *tracker.Manifest
	if cfg.Manifest.Enabled {
		dbPath := filepath.Join(manifestStateDir(cfg), tracker.ManifestFile)
		if _, err := os.Stat(dbPath); err == nil {
			m, err := tracker.OpenManifest(manifestStateDir(cfg))
			if err != nil {
				return 0, fmt.Errorf("open manifest: %w", err)
			}
			defer m.Close()
			manifest = m
		}
	}

	report, err := verify.VerifyWorkspace(cfg.Root, manifest)
	if err != nil {
		return 0, fmt.Errorf("verify workspace: %w", err)
	}

	detail := fmt.Sprintf("%d/%d theory files", report.Coverage.TheoryFound, report.Coverage.TheoryExpected)
	if manifest != nil {
		detail += fmt.Sprintf(", %d drifted", len(report.Drifts))
	}
	printCheck(styles, "workspace", len(report.Drifts) == 0, detail)

	for _, d := range report.Drifts {
		fmt.Printf("    %s %s\n", styles.Warning.Render(string(d.Kind)), d.RelPath)
	}
	return len(report.Drifts), nil
}

// runAllExamples executes the embedded examples and returns how many
// failed.
func runAllExamples(styles ui.Styles) (int, error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	fmt.Println("\nRunning examples:")
	runner := verify.NewRunner(cfg.GetVerifyTimeout())
	results, err := runner.RunAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("run examples: %w", err)
	}

	for _, res := range results {
		fmt.Println(verify.FormatResult(res))
	}

	ran, skipped, failed := verify.Tally(results)
	logger.Debug("example run finished",
		zap.Int("ran", ran), zap.Int("skipped", skipped), zap.Int("failed", failed))
	printCheck(styles, "examples", failed == 0,
		fmt.Sprintf("%d ran, %d skipped, %d failed", ran, skipped, failed))
	return failed, nil
}

// printCheck prints one PASS/FAIL line.
func printCheck(styles ui.Styles, name string, ok bool, detail string) {
	mark := styles.Success.Render("PASS")
	if !ok {
		mark = styles.Error.Render("FAIL")
	}
	fmt.Printf("%s  %-16s %s\n", mark, name, detail)
}
