// Package tracker reports the state of a curriculum workspace: which of
// the expected theory files exist, what the last generation run wrote,
// and whether anything on disk has drifted from the recorded manifest.
package tracker

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"gotheory/internal/curriculum"
	"gotheory/internal/logging"
)

// TopicCoverage is the scan result for one registry topic.
type TopicCoverage struct {
	Topic   curriculum.Topic
	Dir     string // directory actually found on disk, "" when absent
	Found   map[curriculum.Level]bool
	Missing []string // workspace-relative theory paths not on disk
}

// Complete reports whether every enabled level has its theory file.
func (tc TopicCoverage) Complete() bool {
	return len(tc.Missing) == 0
}

// Coverage is the result of scanning a workspace root.
type Coverage struct {
	Root           string
	TheoryFound    int
	TheoryExpected int
	ByLevel        map[curriculum.Level]int
	ByTopic        []TopicCoverage
	MissingFiles   []string
	OrphanDirs     []string // numbered dirs matching no registry topic
}

// Complete reports whether the workspace holds every expected theory file.
func (c Coverage) Complete() bool {
	return c.TheoryFound >= c.TheoryExpected
}

// Remaining returns how many theory files are still missing.
func (c Coverage) Remaining() int {
	return c.TheoryExpected - c.TheoryFound
}

// Percent returns coverage as 0-100.
func (c Coverage) Percent() float64 {
	if c.TheoryExpected == 0 {
		return 100
	}
	return float64(c.TheoryFound) / float64(c.TheoryExpected) * 100
}

// Scan inspects root and reports which expected theory files exist.
// Topic directories are matched by their numeric prefix, so a renamed
// topic dir still counts toward its number. A missing root is a fresh
// workspace, not an error: the scan reports zero coverage.
func Scan(root string) (Coverage, error) {
	timer := logging.StartTimer(logging.CategoryTracker, "coverage scan")
	cov, err := scanRoot(root)
	elapsed := timer.Stop()
	if err != nil {
		logging.TrackerError("scan %s: %v", root, err)
		return cov, err
	}
	logging.Tracker("scan %s: %d/%d theory files", root, cov.TheoryFound, cov.TheoryExpected)
	logging.Audit().Scan(root, cov.TheoryFound, cov.TheoryExpected, elapsed.Milliseconds())
	return cov, nil
}

func scanRoot(root string) (Coverage, error) {
	cov := Coverage{
		Root:           root,
		TheoryExpected: curriculum.ExpectedTheoryCount(),
		ByLevel:        make(map[curriculum.Level]int),
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			for _, topic := range curriculum.All() {
				cov.ByTopic = append(cov.ByTopic, missingTopic(topic, &cov))
			}
			return cov, nil
		}
		return Coverage{}, err
	}

	// Index numbered directories by their two-digit prefix. First match
	// wins when duplicates exist; ReadDir returns sorted order.
	byNumber := make(map[string]string)
	var numbered []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if len(name) < 3 || name[2] != '_' || !isDigits(name[:2]) {
			continue
		}
		numbered = append(numbered, name)
		if _, dup := byNumber[name[:2]]; !dup {
			byNumber[name[:2]] = name
		}
	}

	claimed := make(map[string]bool)
	for _, topic := range curriculum.All() {
		dir, ok := byNumber[topic.Number]
		if !ok {
			cov.ByTopic = append(cov.ByTopic, missingTopic(topic, &cov))
			continue
		}
		claimed[dir] = true

		tc := TopicCoverage{
			Topic: topic,
			Dir:   dir,
			Found: make(map[curriculum.Level]bool),
		}
		for _, level := range topic.Levels() {
			theory := filepath.Join(root, dir, string(level), "theory.md")
			if info, err := os.Stat(theory); err == nil && !info.IsDir() {
				tc.Found[level] = true
				cov.TheoryFound++
				cov.ByLevel[level]++
			} else {
				rel := topic.TheoryRelPath(level)
				tc.Missing = append(tc.Missing, rel)
				cov.MissingFiles = append(cov.MissingFiles, rel)
			}
		}
		cov.ByTopic = append(cov.ByTopic, tc)
	}

	for _, dir := range numbered {
		if !claimed[dir] {
			cov.OrphanDirs = append(cov.OrphanDirs, dir)
		}
	}
	sort.Strings(cov.OrphanDirs)

	return cov, nil
}

func missingTopic(topic curriculum.Topic, cov *Coverage) TopicCoverage {
	tc := TopicCoverage{Topic: topic, Found: make(map[curriculum.Level]bool)}
	for _, level := range topic.Levels() {
		rel := topic.TheoryRelPath(level)
		tc.Missing = append(tc.Missing, rel)
		cov.MissingFiles = append(cov.MissingFiles, rel)
	}
	return tc
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

// ExpectedWorkspaceFiles returns the workspace-relative paths a complete
// curriculum contains, excluding example programs: theory files, the
// per-topic context file, and the index. Used by drift detection to
// decide what counts as untracked.
func ExpectedWorkspaceFiles() []string {
	var paths []string
	for _, topic := range curriculum.All() {
		paths = append(paths, topic.ContextRelPath())
		for _, level := range topic.Levels() {
			paths = append(paths, topic.TheoryRelPath(level))
		}
	}
	paths = append(paths, "README.md")
	sort.Strings(paths)
	return paths
}
