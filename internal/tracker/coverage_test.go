package tracker

import (
	"os"
	"path/filepath"
	"testing"

	"gotheory/internal/curriculum"
)

// writeTheory creates dir/level/theory.md under root.
func writeTheory(t *testing.T, root, dir string, level curriculum.Level) {
	t.Helper()
	path := filepath.Join(root, dir, string(level), "theory.md")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("# Theory\n"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestScanMissingRoot(t *testing.T) {
	t.Parallel()

	cov, err := Scan(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}

	if cov.TheoryFound != 0 {
		t.Errorf("TheoryFound = %d, want 0", cov.TheoryFound)
	}
	if cov.TheoryExpected != curriculum.ExpectedTheoryCount() {
		t.Errorf("TheoryExpected = %d, want %d", cov.TheoryExpected, curriculum.ExpectedTheoryCount())
	}
	if cov.Complete() {
		t.Error("empty workspace reported complete")
	}
	if len(cov.MissingFiles) != cov.TheoryExpected {
		t.Errorf("MissingFiles = %d entries, want %d", len(cov.MissingFiles), cov.TheoryExpected)
	}
	if len(cov.ByTopic) != curriculum.Count() {
		t.Errorf("ByTopic = %d entries, want %d", len(cov.ByTopic), curriculum.Count())
	}
}

func TestScanPartialWorkspace(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	topic, _ := curriculum.ByNumber("01")
	writeTheory(t, root, topic.Dir(), curriculum.LevelBasic)
	writeTheory(t, root, topic.Dir(), curriculum.LevelIntermediate)

	cov, err := Scan(root)
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}

	if cov.TheoryFound != 2 {
		t.Errorf("TheoryFound = %d, want 2", cov.TheoryFound)
	}
	if cov.ByLevel[curriculum.LevelBasic] != 1 || cov.ByLevel[curriculum.LevelIntermediate] != 1 {
		t.Errorf("ByLevel = %v", cov.ByLevel)
	}
	if cov.Remaining() != cov.TheoryExpected-2 {
		t.Errorf("Remaining = %d", cov.Remaining())
	}

	first := cov.ByTopic[0]
	if first.Topic.Number != "01" {
		t.Fatalf("ByTopic[0] is %s, want 01", first.Topic.Number)
	}
	if !first.Found[curriculum.LevelBasic] || first.Found[curriculum.LevelAdvanced] {
		t.Errorf("topic 01 Found = %v", first.Found)
	}
	if first.Complete() {
		t.Error("topic 01 reported complete with advanced missing")
	}
}

func TestScanCompleteWorkspace(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	for _, topic := range curriculum.All() {
		for _, level := range topic.Levels() {
			writeTheory(t, root, topic.Dir(), level)
		}
	}

	cov, err := Scan(root)
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}

	if !cov.Complete() {
		t.Errorf("complete workspace not detected: %d/%d, missing %v",
			cov.TheoryFound, cov.TheoryExpected, cov.MissingFiles)
	}
	if cov.Percent() != 100 {
		t.Errorf("Percent = %v, want 100", cov.Percent())
	}
}

func TestScanMatchesByNumberPrefix(t *testing.T) {
	t.Parallel()

	// A renamed topic dir still counts toward its number.
	root := t.TempDir()
	writeTheory(t, root, "07_hash_tables", curriculum.LevelBasic)

	cov, err := Scan(root)
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}

	if cov.TheoryFound != 1 {
		t.Errorf("TheoryFound = %d, want 1", cov.TheoryFound)
	}
	for _, tc := range cov.ByTopic {
		if tc.Topic.Number == "07" {
			if tc.Dir != "07_hash_tables" {
				t.Errorf("topic 07 Dir = %q", tc.Dir)
			}
			if !tc.Found[curriculum.LevelBasic] {
				t.Error("topic 07 basic not found through renamed dir")
			}
		}
	}
	if len(cov.OrphanDirs) != 0 {
		t.Errorf("OrphanDirs = %v, want none", cov.OrphanDirs)
	}
}

func TestScanReportsOrphans(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	for _, dir := range []string{"21_extras", "99_scratch", "notes", ".gotheory"} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0755); err != nil {
			t.Fatal(err)
		}
	}

	cov, err := Scan(root)
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}

	want := []string{"21_extras", "99_scratch"}
	if len(cov.OrphanDirs) != len(want) {
		t.Fatalf("OrphanDirs = %v, want %v", cov.OrphanDirs, want)
	}
	for i, dir := range want {
		if cov.OrphanDirs[i] != dir {
			t.Errorf("OrphanDirs[%d] = %q, want %q", i, cov.OrphanDirs[i], dir)
		}
	}
}

func TestExpectedWorkspaceFiles(t *testing.T) {
	t.Parallel()

	paths := ExpectedWorkspaceFiles()

	// 60 theory + 20 context + README.
	want := curriculum.ExpectedTheoryCount() + curriculum.Count() + 1
	if len(paths) != want {
		t.Errorf("len = %d, want %d", len(paths), want)
	}

	seen := make(map[string]bool)
	for _, p := range paths {
		if seen[p] {
			t.Errorf("duplicate path %q", p)
		}
		seen[p] = true
	}
	if !seen["README.md"] {
		t.Error("README.md missing")
	}
	if !seen["01_basics_and_syntax/claude.md"] {
		t.Error("context file missing")
	}
}
