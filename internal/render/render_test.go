package render

import (
	"strings"
	"testing"

	"gotheory/internal/curriculum"
)

func TestContextFile(t *testing.T) {
	topic, ok := curriculum.ByNumber("07")
	if !ok {
		t.Fatal("topic 07 not found")
	}

	page, err := ContextFile(topic)
	if err != nil {
		t.Fatalf("ContextFile: %v", err)
	}

	wantFragments := []string{
		"# Maps - Topic Context",
		"comprehensive Go theory for **Maps**",
		"## Directory Structure",
		"- `basic/` - Fundamental concepts with C/C++ comparisons",
		"- `intermediate/` - Advanced usage patterns and design decisions",
		"- `advanced/` - Deep dives into implementation and optimization",
		"## How to Use This Context",
		"When working with Claude:",
		"## Key Questions to Explore",
		"Start with `basic/theory.md` and progress through the levels.",
	}
	for _, frag := range wantFragments {
		if !strings.Contains(page, frag) {
			t.Errorf("context page missing %q", frag)
		}
	}

	if !strings.HasPrefix(page, "# ") {
		t.Errorf("context page must open with an h1, got %q", firstLine(page))
	}
	if !strings.HasSuffix(page, "\n") {
		t.Error("context page must end with a newline")
	}
}

func TestContextFileEveryTopic(t *testing.T) {
	for _, topic := range curriculum.All() {
		page, err := ContextFile(topic)
		if err != nil {
			t.Fatalf("ContextFile(%s): %v", topic.Dir(), err)
		}
		if want := "# " + topic.Title + " - Topic Context"; firstLine(page) != want {
			t.Errorf("%s: first line = %q, want %q", topic.Dir(), firstLine(page), want)
		}
		// One structure bullet per enabled level.
		if got := strings.Count(page, "\n- `"); got < len(topic.Levels()) {
			t.Errorf("%s: %d level bullets, want >= %d", topic.Dir(), got, len(topic.Levels()))
		}
	}
}

func TestCurriculumReadme(t *testing.T) {
	page, err := CurriculumReadme(curriculum.All())
	if err != nil {
		t.Fatalf("CurriculumReadme: %v", err)
	}

	if firstLine(page) != "# Go Theory Curriculum" {
		t.Errorf("first line = %q", firstLine(page))
	}
	if !strings.Contains(page, "20 topics, 60 theory files") {
		t.Error("readme missing the topic/lesson counts")
	}

	// Every topic appears as a table row linking its directory and lessons.
	for _, topic := range curriculum.All() {
		row := "| " + topic.Number + " | [" + topic.Title + "](" + topic.Dir() + "/) |"
		if !strings.Contains(page, row) {
			t.Errorf("readme missing row for %s", topic.Dir())
		}
		if !strings.Contains(page, "("+topic.TheoryRelPath(curriculum.LevelBasic)+")") {
			t.Errorf("readme missing basic link for %s", topic.Dir())
		}
	}

	if !strings.Contains(page, "## Study Path") {
		t.Error("readme missing study path section")
	}
}

func TestCurriculumReadmeSubset(t *testing.T) {
	topic, _ := curriculum.ByNumber("13")
	page, err := CurriculumReadme([]curriculum.Topic{topic})
	if err != nil {
		t.Fatalf("CurriculumReadme: %v", err)
	}
	if !strings.Contains(page, "1 topics, 3 theory files") {
		t.Errorf("subset counts wrong:\n%s", firstLines(page, 3))
	}
	if strings.Contains(page, "01_basics_and_syntax") {
		t.Error("subset readme leaked topics outside the slice")
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func firstLines(s string, n int) string {
	lines := strings.SplitN(s, "\n", n+1)
	if len(lines) > n {
		lines = lines[:n]
	}
	return strings.Join(lines, "\n")
}
