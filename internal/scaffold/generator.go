package scaffold

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"gotheory/internal/curriculum"
	"gotheory/internal/logging"
	"gotheory/internal/tracker"
)

// Progress is one update on the progress channel.
type Progress struct {
	Phase   string  // plan, directories, write, manifest, done
	Message string
	Percent float64 // 0.0 - 1.0
	IsError bool
}

// Result summarizes a generation run.
type Result struct {
	Success      bool
	DryRun       bool
	FilesCreated []string
	FilesSkipped int
	BytesWritten int64
	Duration     time.Duration
	Warnings     []string
	RunID        string // empty when no manifest was attached
}

// Options configures a generation run.
type Options struct {
	Root        string
	Topics      []string           // topic selectors, empty = all
	Levels      []curriculum.Level // empty = all
	Force       bool
	DryRun      bool
	Jobs        int // concurrent writers, <=0 picks a default
	ToolVersion string

	ProgressChan chan Progress     // optional, never blocked on
	Manifest     *tracker.Manifest // optional run/file recording
	Out          io.Writer         // banner and progress lines, nil = discard
}

// Generator writes a planned workspace to disk.
type Generator struct {
	opts  Options
	out   io.Writer
	runID string // fixed before workers start

	mu       sync.Mutex
	created  []string
	warnings []string
	bytes    int64
	failed   int
}

// NewGenerator returns a generator for the given options.
func NewGenerator(opts Options) *Generator {
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	if opts.Jobs <= 0 {
		opts.Jobs = runtime.NumCPU()
		if opts.Jobs > 8 {
			opts.Jobs = 8
		}
		if opts.Jobs < 2 {
			opts.Jobs = 2
		}
	}
	if opts.ToolVersion == "" {
		opts.ToolVersion = "dev"
	}
	return &Generator{opts: opts, out: out}
}

// sendProgress sends a progress update if a channel is configured.
func (g *Generator) sendProgress(phase, message string, percent float64) {
	if g.opts.ProgressChan != nil {
		select {
		case g.opts.ProgressChan <- Progress{Phase: phase, Message: message, Percent: percent}:
		default:
			// Don't block if channel is full
		}
	}
}

// Run executes the full generation: plan, directories, concurrent
// writes, manifest record, summary. Cancellation aborts between files,
// never mid-write; whatever was written before the abort is recorded.
func (g *Generator) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	result := &Result{DryRun: g.opts.DryRun}

	g.sendProgress("plan", "Planning workspace...", 0.0)
	plan, err := BuildPlan(g.opts)
	if err != nil {
		g.sendProgress("plan", err.Error(), 0.0)
		return nil, err
	}

	cov, err := tracker.Scan(g.opts.Root)
	if err != nil {
		return nil, fmt.Errorf("scan workspace: %w", err)
	}
	g.printBanner(cov, plan)
	logging.Scaffold("plan: %d create, %d overwrite, %d skip under %s (levels=%s)",
		plan.Creates, plan.Overwrites, plan.Skips, g.opts.Root, formatLevels(g.opts.Levels))

	pending := plan.Pending()
	result.FilesSkipped = plan.Skips

	if len(pending) == 0 {
		fmt.Fprintln(g.out, "Nothing to generate - every planned file already exists.")
		fmt.Fprintln(g.out, "Use --force to regenerate.")
		result.Success = true
		result.Duration = time.Since(start)
		g.sendProgress("done", "Nothing to generate", 1.0)
		return result, nil
	}

	if g.opts.DryRun {
		for _, pf := range pending {
			fmt.Fprintf(g.out, "  would %s %s\n", pf.Action, pf.RelPath)
		}
		fmt.Fprintf(g.out, "\nDry run: %d files would be written.\n", len(pending))
		result.Success = true
		result.Duration = time.Since(start)
		g.sendProgress("done", "Dry run complete", 1.0)
		return result, nil
	}

	g.sendProgress("directories", "Creating directories...", 0.05)
	if err := g.makeDirs(plan); err != nil {
		return nil, err
	}

	if g.opts.Manifest != nil {
		g.runID = uuid.NewString()
		result.RunID = g.runID
		if err := g.opts.Manifest.BeginRun(g.runID, g.opts.ToolVersion); err != nil {
			return nil, fmt.Errorf("begin manifest run: %w", err)
		}
	}
	logging.Audit().RunStart(g.runID, g.opts.Root, len(pending))

	runErr := g.writeFiles(ctx, pending)

	if g.opts.Manifest != nil {
		g.mu.Lock()
		files, bytes := len(g.created), g.bytes
		g.mu.Unlock()
		g.sendProgress("manifest", "Recording run...", 0.95)
		if err := g.opts.Manifest.FinishRun(result.RunID, files, bytes); err != nil {
			g.addWarning(fmt.Sprintf("finish manifest run: %v", err))
		}
	}

	g.mu.Lock()
	result.FilesCreated = append(result.FilesCreated, g.created...)
	result.Warnings = append(result.Warnings, g.warnings...)
	result.BytesWritten = g.bytes
	failed := g.failed
	g.mu.Unlock()
	sort.Strings(result.FilesCreated)

	result.Duration = time.Since(start)
	result.Success = runErr == nil && failed == 0

	errMsg := ""
	if runErr != nil {
		errMsg = runErr.Error()
	}
	logging.Audit().RunComplete(g.runID, len(result.FilesCreated), result.FilesSkipped,
		result.Duration.Milliseconds(), result.Success, errMsg)

	if runErr != nil {
		g.sendProgress("done", "Generation aborted", 1.0)
		fmt.Fprintf(g.out, "\nGeneration aborted: %v (%d files written)\n", runErr, len(result.FilesCreated))
		return result, runErr
	}

	g.printSummary(result)
	g.sendProgress("done", "Generation complete", 1.0)
	logging.Scaffold("run complete: %d files, %d bytes, %v",
		len(result.FilesCreated), result.BytesWritten, result.Duration)
	return result, nil
}

// makeDirs creates every parent directory up front so the concurrent
// writers never race on MkdirAll.
func (g *Generator) makeDirs(plan *Plan) error {
	dirs := make(map[string]bool)
	for _, pf := range plan.Pending() {
		dirs[filepath.Dir(filepath.Join(g.opts.Root, filepath.FromSlash(pf.RelPath)))] = true
	}
	sorted := make([]string, 0, len(dirs))
	for d := range dirs {
		sorted = append(sorted, d)
	}
	sort.Strings(sorted)
	for _, d := range sorted {
		if err := os.MkdirAll(d, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", d, err)
		}
	}
	return nil
}

// writeFiles writes the pending files with a bounded worker pool.
func (g *Generator) writeFiles(ctx context.Context, pending []PlannedFile) error {
	eg, egCtx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, g.opts.Jobs)

	total := len(pending)
	var done int

	for _, pf := range pending {
		pf := pf
		eg.Go(func() error {
			select {
			case sem <- struct{}{}:
			case <-egCtx.Done():
				return egCtx.Err()
			}
			defer func() { <-sem }()

			if err := egCtx.Err(); err != nil {
				return err
			}

			g.writeOne(pf)

			g.mu.Lock()
			done++
			percent := 0.10 + 0.85*float64(done)/float64(total)
			g.mu.Unlock()
			g.sendProgress("write", pf.RelPath, percent)
			return nil
		})
	}
	return eg.Wait()
}

// writeOne resolves, writes, echoes, and records a single file. Write
// failures become warnings so the rest of the run continues.
func (g *Generator) writeOne(pf PlannedFile) {
	text, err := resolveContent(pf)
	if err != nil {
		g.fail(pf, fmt.Sprintf("resolve %s: %v", pf.RelPath, err))
		return
	}

	abs := filepath.Join(g.opts.Root, filepath.FromSlash(pf.RelPath))
	if err := os.WriteFile(abs, []byte(text), 0644); err != nil {
		g.fail(pf, fmt.Sprintf("write %s: %v", pf.RelPath, err))
		return
	}

	g.echo(pf)
	logging.ScaffoldDebug("%s %s (%d bytes)", pf.Action, pf.RelPath, len(text))
	logging.Audit().FileOp(logging.AuditFileWrite, pf.RelPath, auditTopic(pf), string(pf.Level), int64(len(text)), "")

	g.mu.Lock()
	g.created = append(g.created, pf.RelPath)
	g.bytes += int64(len(text))
	g.mu.Unlock()

	if g.opts.Manifest != nil {
		entry := tracker.FileEntry{
			RelPath: pf.RelPath,
			Kind:    string(pf.Kind),
			SHA256:  tracker.HashBytes([]byte(text)),
			Size:    int64(len(text)),
		}
		if pf.Kind != KindIndex {
			entry.Topic = pf.Topic.Dir()
		}
		if pf.Level != "" {
			entry.Level = string(pf.Level)
		}
		entry.RunID = g.runID
		if err := g.opts.Manifest.RecordFile(entry); err != nil {
			g.addWarning(fmt.Sprintf("record %s: %v", pf.RelPath, err))
		}
	}
}

func (g *Generator) fail(pf PlannedFile, msg string) {
	g.addWarning(msg)
	g.sendError(msg)
	logging.ScaffoldError("%s", msg)
	logging.Audit().FileOp(logging.AuditFileError, pf.RelPath, auditTopic(pf), string(pf.Level), 0, msg)
	g.mu.Lock()
	g.failed++
	g.mu.Unlock()
}

func (g *Generator) addWarning(msg string) {
	g.mu.Lock()
	g.warnings = append(g.warnings, msg)
	g.mu.Unlock()
}

// auditTopic names the topic for audit entries. The index file belongs
// to no topic.
func auditTopic(pf PlannedFile) string {
	if pf.Kind == KindIndex {
		return ""
	}
	return pf.Topic.Dir()
}

func (g *Generator) sendError(msg string) {
	if g.opts.ProgressChan != nil {
		select {
		case g.opts.ProgressChan <- Progress{Phase: "write", Message: msg, IsError: true}:
		default:
		}
	}
}

// echo prints the original per-file progress line: theory files echo as
// topic/level, everything else as the full relative path.
func (g *Generator) echo(pf PlannedFile) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if pf.Kind == KindTheory {
		fmt.Fprintf(g.out, "  ✓ %s/%s\n", pf.Topic.Dir(), pf.Level)
		return
	}
	fmt.Fprintf(g.out, "  ✓ %s\n", pf.RelPath)
}

const bannerRule = "======================================================================"

// printBanner prints the startup banner with the current coverage.
func (g *Generator) printBanner(cov tracker.Coverage, plan *Plan) {
	fmt.Fprintln(g.out, bannerRule)
	fmt.Fprintln(g.out, "GO THEORY CURRICULUM GENERATOR")
	fmt.Fprintln(g.out, "Comprehensive learning materials with C/C++ comparisons")
	fmt.Fprintln(g.out, bannerRule)
	fmt.Fprintln(g.out)
	fmt.Fprintf(g.out, "Status: %d/%d theory files exist\n", cov.TheoryFound, cov.TheoryExpected)
	if pending := len(plan.Pending()); pending > 0 {
		fmt.Fprintf(g.out, "Generating %d remaining files...\n", pending)
	}
	fmt.Fprintln(g.out)
}

// printSummary prints the completion block and next steps.
func (g *Generator) printSummary(result *Result) {
	fmt.Fprintln(g.out)
	fmt.Fprintln(g.out, bannerRule)
	fmt.Fprintln(g.out, "GENERATION COMPLETE!")
	fmt.Fprintln(g.out, bannerRule)
	fmt.Fprintln(g.out)
	fmt.Fprintln(g.out, "All theory files created with:")
	fmt.Fprintln(g.out, "  • Detailed explanations")
	fmt.Fprintln(g.out, "  • C/C++ comparisons")
	fmt.Fprintln(g.out, "  • Design rationale")
	fmt.Fprintln(g.out, "  • Code examples")
	fmt.Fprintln(g.out, "  • Performance implications")
	fmt.Fprintln(g.out)
	fmt.Fprintln(g.out, "Start learning from:")
	first := curriculum.All()[0]
	fmt.Fprintf(g.out, "  cd %s\n", first.Dir())
	fmt.Fprintln(g.out, "  cat claude.md  # Context file for working with Claude")
	fmt.Fprintf(g.out, "  cd %s && cat theory.md\n", curriculum.LevelBasic)
	fmt.Fprintln(g.out)
	if len(result.Warnings) > 0 {
		fmt.Fprintf(g.out, "Warnings (%d):\n", len(result.Warnings))
		for _, w := range result.Warnings {
			fmt.Fprintf(g.out, "  ! %s\n", w)
		}
		fmt.Fprintln(g.out)
	}
	fmt.Fprintf(g.out, "Wrote %d files (%s) in %s.\n",
		len(result.FilesCreated), formatBytes(result.BytesWritten),
		result.Duration.Round(time.Millisecond))
}

func formatBytes(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	}
	return fmt.Sprintf("%d B", n)
}

// formatLevels renders a level filter for log lines.
func formatLevels(levels []curriculum.Level) string {
	if len(levels) == 0 {
		return "all"
	}
	parts := make([]string, len(levels))
	for i, l := range levels {
		parts[i] = string(l)
	}
	return strings.Join(parts, ",")
}
