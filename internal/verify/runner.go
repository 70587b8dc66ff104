package verify

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"

	"gotheory/internal/content"
	"gotheory/internal/curriculum"
	"gotheory/internal/logging"
)

// RunResult is the outcome of interpreting one example program.
type RunResult struct {
	Topic      string
	Level      curriculum.Level
	Name       string
	Output     string
	Err        error
	Skipped    bool
	SkipReason string
	Duration   time.Duration
}

// Passed reports whether the example ran to completion.
func (r RunResult) Passed() bool {
	return !r.Skipped && r.Err == nil
}

// Runner interprets example programs instead of shelling out to the Go
// toolchain, so verification needs no compiler on the machine and a
// broken example cannot hang a build.
//
// Only stdlib-pure examples are interpreted. Programs that touch the
// surrounding machine (os, io, runtime tuning, unsafe) are skipped, not
// failed: their syntax was already checked, and their behavior depends
// on state the sandbox does not provide.
type Runner struct {
	timeout time.Duration
	allowed map[string]bool
}

// NewRunner returns a runner with the given per-example timeout.
// A zero timeout means 10 seconds.
func NewRunner(timeout time.Duration) *Runner {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Runner{
		timeout: timeout,
		allowed: map[string]bool{
			"bytes":         true,
			"cmp":           true,
			"encoding/json": true,
			"errors":        true,
			"fmt":           true,
			"maps":          true,
			"math":          true,
			"slices":        true,
			"sort":          true,
			"strconv":       true,
			"strings":       true,
			"sync":          true,
			"sync/atomic":   true,
			"time":          true,
			"unicode":       true,
			"unicode/utf8":  true,

			// Deliberately absent: os, os/exec, io, bufio, net,
			// runtime, runtime/debug, reflect, unsafe, go/*.
		},
	}
}

// RunExample interprets a single example and captures its output.
func (r *Runner) RunExample(ctx context.Context, topic curriculum.Topic, level curriculum.Level, ex content.Example) RunResult {
	result := RunResult{Topic: topic.Dir(), Level: level, Name: ex.Name}
	start := time.Now()
	defer func() { result.Duration = time.Since(start) }()

	paths, err := imports(ex.Source)
	if err != nil {
		result.Err = fmt.Errorf("parse imports: %w", err)
		return result
	}
	if off := r.offLimits(paths); off != "" {
		result.Skipped = true
		result.SkipReason = "imports " + off
		logging.VerifyDebug("skip %s/%s/%s: %s", result.Topic, level, ex.Name, result.SkipReason)
		return result
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var out bytes.Buffer
	i := interp.New(interp.Options{Stdout: &out, Stderr: &out})
	if err := i.Use(stdlib.Symbols); err != nil {
		result.Err = fmt.Errorf("load stdlib symbols: %w", err)
		return result
	}

	if _, err := i.Eval(ex.Source); err != nil {
		result.Err = fmt.Errorf("eval: %w", err)
		result.Output = out.String()
		return result
	}

	mainVal, err := i.Eval("main.main")
	if err != nil {
		result.Err = fmt.Errorf("main not found: %w", err)
		return result
	}
	mainFn, ok := mainVal.Interface().(func())
	if !ok {
		result.Err = fmt.Errorf("main has wrong signature")
		return result
	}

	// Run in a goroutine so a spinning example hits the timeout instead
	// of wedging verification. The goroutine itself cannot be killed;
	// the allowlist keeps examples short-lived and side-effect free.
	done := make(chan error, 1)
	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				done <- fmt.Errorf("panic: %v", rec)
				return
			}
			done <- nil
		}()
		mainFn()
	}()

	select {
	case err := <-done:
		result.Err = err
		result.Output = out.String()
	case <-ctx.Done():
		result.Err = fmt.Errorf("example did not finish: %w", ctx.Err())
		result.Output = out.String()
	}
	return result
}

// RunLevel interprets every example of one topic/level.
func (r *Runner) RunLevel(ctx context.Context, topic curriculum.Topic, level curriculum.Level) ([]RunResult, error) {
	examples, err := content.Examples(topic, level)
	if err != nil {
		return nil, err
	}
	results := make([]RunResult, 0, len(examples))
	for _, ex := range examples {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res := r.RunExample(ctx, topic, level, ex)
		if !res.Skipped {
			path := topic.ExamplesRelDir(level) + "/" + ex.Name
			detail := ""
			if res.Err != nil {
				detail = res.Err.Error()
			}
			logging.Audit().VerifyResult(path, res.Err == nil, detail)
		}
		results = append(results, res)
	}
	return results, nil
}

// RunAll interprets the whole embedded library in registry order.
func (r *Runner) RunAll(ctx context.Context) ([]RunResult, error) {
	var results []RunResult
	for _, topic := range curriculum.All() {
		for _, level := range topic.Levels() {
			levelResults, err := r.RunLevel(ctx, topic, level)
			results = append(results, levelResults...)
			if err != nil {
				return results, err
			}
		}
	}

	ran, skipped, failed := Tally(results)
	logging.Verify("example run: %d ran, %d skipped, %d failed", ran, skipped, failed)
	return results, nil
}

// offLimits returns the first import outside the sandbox, or "".
func (r *Runner) offLimits(paths []string) string {
	for _, p := range paths {
		if !r.allowed[p] {
			return p
		}
	}
	return ""
}

// Tally summarizes run results.
func Tally(results []RunResult) (ran, skipped, failed int) {
	for _, res := range results {
		switch {
		case res.Skipped:
			skipped++
		case res.Err != nil:
			failed++
		default:
			ran++
		}
	}
	return ran, skipped, failed
}

// FormatResult renders one result as a report line.
func FormatResult(res RunResult) string {
	loc := fmt.Sprintf("%s/%s/%s", res.Topic, res.Level, res.Name)
	switch {
	case res.Skipped:
		return fmt.Sprintf("  - %s (skipped: %s)", loc, res.SkipReason)
	case res.Err != nil:
		return fmt.Sprintf("  ✗ %s: %v", loc, res.Err)
	default:
		lines := strings.Count(res.Output, "\n")
		return fmt.Sprintf("  ✓ %s (%d output lines, %s)", loc, lines, res.Duration.Round(time.Millisecond))
	}
}
