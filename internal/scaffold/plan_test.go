package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"gotheory/internal/curriculum"
)

func TestBuildPlanFreshRoot(t *testing.T) {
	t.Parallel()

	plan, err := BuildPlan(Options{Root: filepath.Join(t.TempDir(), "ws")})
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}

	if plan.Skips != 0 || plan.Overwrites != 0 {
		t.Errorf("fresh root: skips=%d overwrites=%d", plan.Skips, plan.Overwrites)
	}
	if plan.Creates != len(plan.Files) {
		t.Errorf("creates=%d files=%d", plan.Creates, len(plan.Files))
	}

	// 60 theory + 20 context + index, plus at least one example per level.
	min := curriculum.ExpectedTheoryCount()*2 + curriculum.Count() + 1
	if len(plan.Files) < min {
		t.Errorf("planned %d files, want >= %d", len(plan.Files), min)
	}

	// Deterministic order: context first per topic, theory before its
	// examples, index last.
	if plan.Files[0].RelPath != "01_basics_and_syntax/claude.md" {
		t.Errorf("first planned file = %s", plan.Files[0].RelPath)
	}
	if plan.Files[1].RelPath != "01_basics_and_syntax/basic/theory.md" {
		t.Errorf("second planned file = %s", plan.Files[1].RelPath)
	}
	last := plan.Files[len(plan.Files)-1]
	if last.Kind != KindIndex || last.RelPath != "README.md" {
		t.Errorf("last planned file = %+v", last)
	}

	for i := 1; i < len(plan.Files); i++ {
		prev, cur := plan.Files[i-1], plan.Files[i]
		if prev.Kind == KindIndex {
			t.Errorf("index not last: followed by %s", cur.RelPath)
		}
		if cur.Kind != KindIndex && cur.Topic.Number < prev.Topic.Number {
			t.Errorf("topic order broken at %s after %s", cur.RelPath, prev.RelPath)
		}
	}
}

func TestBuildPlanSkipsExisting(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	existing := filepath.Join(root, "01_basics_and_syntax", "basic", "theory.md")
	if err := os.MkdirAll(filepath.Dir(existing), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(existing, []byte("user content"), 0644); err != nil {
		t.Fatal(err)
	}

	plan, err := BuildPlan(Options{Root: root})
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	if plan.Skips != 1 {
		t.Errorf("skips = %d, want 1", plan.Skips)
	}
	for _, pf := range plan.Files {
		if pf.RelPath == "01_basics_and_syntax/basic/theory.md" {
			if pf.Action != ActionSkip || pf.Reason != "exists" {
				t.Errorf("existing file planned as %s (%s)", pf.Action, pf.Reason)
			}
		} else if pf.Action != ActionCreate {
			t.Errorf("%s planned as %s, want create", pf.RelPath, pf.Action)
		}
	}

	// Force turns the skip into an overwrite.
	plan, err = BuildPlan(Options{Root: root, Force: true})
	if err != nil {
		t.Fatalf("BuildPlan force: %v", err)
	}
	if plan.Skips != 0 || plan.Overwrites != 1 {
		t.Errorf("force: skips=%d overwrites=%d", plan.Skips, plan.Overwrites)
	}
	if got := len(plan.Pending()); got != len(plan.Files) {
		t.Errorf("force pending = %d, want %d", got, len(plan.Files))
	}
}

func TestBuildPlanTopicFilter(t *testing.T) {
	t.Parallel()

	plan, err := BuildPlan(Options{
		Root:   t.TempDir(),
		Topics: []string{"maps", "7", "13_concurrency"}, // 7 and maps are the same topic
	})
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}

	topics := make(map[string]bool)
	for _, pf := range plan.Files {
		if pf.Kind == KindIndex {
			continue
		}
		topics[pf.Topic.Number] = true
		if pf.Topic.Number != "07" && pf.Topic.Number != "13" {
			t.Errorf("unexpected topic %s in filtered plan", pf.Topic.Number)
		}
	}
	if !topics["07"] || !topics["13"] {
		t.Errorf("filtered plan topics = %v", topics)
	}

	// Index rides along even for filtered runs.
	if plan.Files[len(plan.Files)-1].Kind != KindIndex {
		t.Error("filtered plan missing index")
	}
}

func TestBuildPlanFilteredFileList(t *testing.T) {
	t.Parallel()

	plan, err := BuildPlan(Options{
		Root:   t.TempDir(),
		Topics: []string{"maps"},
		Levels: []curriculum.Level{curriculum.LevelBasic},
	})
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}

	got := make([]string, 0, len(plan.Files))
	for _, pf := range plan.Files {
		got = append(got, pf.RelPath)
	}
	want := []string{
		"07_maps/claude.md",
		"07_maps/basic/theory.md",
		"07_maps/basic/examples/maps.go",
		"README.md",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("planned files mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildPlanLevelFilter(t *testing.T) {
	t.Parallel()

	plan, err := BuildPlan(Options{
		Root:   t.TempDir(),
		Levels: []curriculum.Level{curriculum.LevelAdvanced},
	})
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}

	theory := 0
	for _, pf := range plan.Files {
		switch pf.Kind {
		case KindTheory:
			theory++
			if pf.Level != curriculum.LevelAdvanced {
				t.Errorf("level filter leaked %s for %s", pf.Level, pf.RelPath)
			}
		case KindExample:
			if pf.Level != curriculum.LevelAdvanced {
				t.Errorf("level filter leaked example %s", pf.RelPath)
			}
		}
	}
	if theory != curriculum.Count() {
		t.Errorf("advanced theory files = %d, want %d", theory, curriculum.Count())
	}
}

func TestBuildPlanErrors(t *testing.T) {
	t.Parallel()

	if _, err := BuildPlan(Options{}); err == nil {
		t.Error("empty root accepted")
	}

	if _, err := BuildPlan(Options{Root: t.TempDir(), Topics: []string{"no_such_topic"}}); err == nil {
		t.Error("unknown topic accepted")
	} else if !strings.Contains(err.Error(), "no_such_topic") {
		t.Errorf("error does not name the topic: %v", err)
	}

	file := filepath.Join(t.TempDir(), "root-as-file")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := BuildPlan(Options{Root: file}); err == nil {
		t.Error("file root accepted")
	}
}

func TestResolveContent(t *testing.T) {
	t.Parallel()

	topic, _ := curriculum.ByNumber("07")

	theory, err := resolveContent(PlannedFile{
		Topic: topic, Level: curriculum.LevelBasic, Kind: KindTheory,
	})
	if err != nil {
		t.Fatalf("theory: %v", err)
	}
	if !strings.HasPrefix(theory, "# ") || !strings.Contains(theory, "C/C++") {
		t.Error("theory content shape wrong")
	}

	ctx, err := resolveContent(PlannedFile{Topic: topic, Kind: KindContext})
	if err != nil {
		t.Fatalf("context: %v", err)
	}
	if !strings.Contains(ctx, "Topic Context") {
		t.Error("context content shape wrong")
	}

	idx, err := resolveContent(PlannedFile{Kind: KindIndex})
	if err != nil {
		t.Fatalf("index: %v", err)
	}
	if !strings.Contains(idx, "# Go Theory Curriculum") {
		t.Error("index content shape wrong")
	}

	_, err = resolveContent(PlannedFile{
		RelPath: topic.ExamplesRelDir(curriculum.LevelBasic) + "/missing.go",
		Topic:   topic, Level: curriculum.LevelBasic, Kind: KindExample,
	})
	if err == nil {
		t.Error("missing example resolved")
	}
}
