package content

import (
	"strings"
	"testing"

	"gotheory/internal/curriculum"
)

func TestEveryTopicLevelHasTheory(t *testing.T) {
	for _, topic := range curriculum.All() {
		for _, level := range topic.Levels() {
			theory, err := Theory(topic, level)
			if err != nil {
				t.Errorf("Theory(%s, %s): %v", topic.Dir(), level, err)
				continue
			}
			if !strings.HasPrefix(theory, "# ") {
				t.Errorf("%s/%s theory missing title header", topic.Dir(), level)
			}
			firstLine, _, _ := strings.Cut(theory, "\n")
			if !strings.Contains(firstLine, "Level") {
				t.Errorf("%s/%s title %q missing level suffix", topic.Dir(), level, firstLine)
			}
			if !strings.Contains(theory, "C/C++") {
				t.Errorf("%s/%s theory has no C/C++ comparison", topic.Dir(), level)
			}
		}
	}
}

func TestEveryTopicLevelHasExamples(t *testing.T) {
	for _, topic := range curriculum.All() {
		for _, level := range topic.Levels() {
			examples, err := Examples(topic, level)
			if err != nil {
				t.Errorf("Examples(%s, %s): %v", topic.Dir(), level, err)
				continue
			}
			if len(examples) == 0 {
				t.Errorf("%s/%s has no examples", topic.Dir(), level)
			}
			for _, ex := range examples {
				if !strings.Contains(ex.Source, "package main") {
					t.Errorf("%s/%s/%s is not a main package", topic.Dir(), level, ex.Name)
				}
				if !strings.Contains(ex.Source, "func main()") {
					t.Errorf("%s/%s/%s has no main function", topic.Dir(), level, ex.Name)
				}
			}
		}
	}
}

func TestHas(t *testing.T) {
	topic, err := curriculum.ByNumber("01")
	if err != nil {
		t.Fatal(err)
	}
	if !Has(topic, curriculum.LevelBasic) {
		t.Error("expected 01/basic theory to exist")
	}
	if Has(topic, curriculum.Level("expert")) {
		t.Error("unknown level should not report content")
	}
}

func TestTheoryUnknownLevel(t *testing.T) {
	topic, err := curriculum.ByNumber("07")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Theory(topic, curriculum.Level("expert")); err == nil {
		t.Error("expected error for unknown level")
	}
	if _, err := Examples(topic, curriculum.Level("expert")); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestLibraryStats(t *testing.T) {
	stats, err := LibraryStats()
	if err != nil {
		t.Fatalf("LibraryStats: %v", err)
	}
	if want := curriculum.ExpectedTheoryCount(); stats.Lessons != want {
		t.Errorf("Lessons = %d, want %d", stats.Lessons, want)
	}
	if stats.Examples < stats.Lessons {
		t.Errorf("Examples = %d, want at least one per lesson (%d)", stats.Examples, stats.Lessons)
	}
	if stats.Bytes == 0 {
		t.Error("embedded library reports zero bytes")
	}
}
