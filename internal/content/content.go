// Package content holds the embedded curriculum library: theory lessons
// and runnable example programs for every topic and level. The markdown
// and Go sources live under _lessons/ so the build never compiles them.
package content

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gotheory/internal/curriculum"
	"gotheory/internal/logging"
)

//go:embed all:_lessons
var lessonsFS embed.FS

const lessonsRoot = "_lessons"

// Example is one runnable example program for a topic/level.
type Example struct {
	Name   string // File name, e.g. maps.go
	Source string
}

// Stats summarizes the embedded library.
type Stats struct {
	Lessons  int   // theory.md files
	Examples int   // example .go files
	Bytes    int64 // total embedded content size
}

func theoryPath(topic curriculum.Topic, level curriculum.Level) string {
	return path.Join(lessonsRoot, topic.Dir(), string(level), "theory.md")
}

func examplesPath(topic curriculum.Topic, level curriculum.Level) string {
	return path.Join(lessonsRoot, topic.Dir(), string(level), "examples")
}

// Theory returns the theory lesson for a topic and level.
func Theory(topic curriculum.Topic, level curriculum.Level) (string, error) {
	if !topic.HasLevel(level) {
		return "", fmt.Errorf("topic %s has no %s level", topic.Dir(), level)
	}
	data, err := lessonsFS.ReadFile(theoryPath(topic, level))
	if err != nil {
		return "", fmt.Errorf("no theory for %s/%s: %w", topic.Dir(), level, err)
	}
	logging.ContentDebug("theory %s/%s (%d bytes)", topic.Dir(), level, len(data))
	return string(data), nil
}

// Examples returns the example programs for a topic and level, sorted by name.
func Examples(topic curriculum.Topic, level curriculum.Level) ([]Example, error) {
	if !topic.HasLevel(level) {
		return nil, fmt.Errorf("topic %s has no %s level", topic.Dir(), level)
	}
	dir := examplesPath(topic, level)
	entries, err := lessonsFS.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("no examples for %s/%s: %w", topic.Dir(), level, err)
	}

	var examples []Example
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".go") {
			continue
		}
		data, err := lessonsFS.ReadFile(path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read example %s: %w", entry.Name(), err)
		}
		examples = append(examples, Example{Name: entry.Name(), Source: string(data)})
	}

	sort.Slice(examples, func(i, j int) bool { return examples[i].Name < examples[j].Name })
	logging.ContentDebug("examples %s/%s: %d programs", topic.Dir(), level, len(examples))
	return examples, nil
}

// Has reports whether a theory lesson exists for a topic and level.
func Has(topic curriculum.Topic, level curriculum.Level) bool {
	if !topic.HasLevel(level) {
		return false
	}
	_, err := fs.Stat(lessonsFS, theoryPath(topic, level))
	return err == nil
}

// LibraryStats walks the embedded tree and counts lessons and examples.
func LibraryStats() (Stats, error) {
	var stats Stats
	err := fs.WalkDir(lessonsFS, lessonsRoot, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		stats.Bytes += info.Size()
		switch {
		case d.Name() == "theory.md":
			stats.Lessons++
		case strings.HasSuffix(d.Name(), ".go"):
			stats.Examples++
		}
		return nil
	})
	if err != nil {
		return Stats{}, fmt.Errorf("walk embedded lessons: %w", err)
	}
	return stats, nil
}
