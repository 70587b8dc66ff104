package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"gotheory/internal/curriculum"
)

func TestNewBrowseModelListsEveryLesson(t *testing.T) {
	model := NewBrowseModel("notty", 80, "")

	want := curriculum.ExpectedTheoryCount()
	if got := len(model.list.Items()); got != want {
		t.Fatalf("list has %d items, want %d", got, want)
	}

	first, ok := model.list.Items()[0].(lessonItem)
	if !ok {
		t.Fatal("item 0 is not a lessonItem")
	}
	if first.topic.Number != "01" || first.level != curriculum.LevelBasic {
		t.Errorf("first item = %s/%s, want 01/basic", first.topic.Number, first.level)
	}
	if model.current != first.key() {
		t.Errorf("initial pending lesson = %q, want %q", model.current, first.key())
	}
}

func TestNewBrowseModelPreselect(t *testing.T) {
	model := NewBrowseModel("notty", 80, "maps")

	sel, ok := model.list.SelectedItem().(lessonItem)
	if !ok {
		t.Fatal("no selection")
	}
	if sel.topic.Name != "maps" || sel.level != curriculum.LevelBasic {
		t.Errorf("preselected %s/%s, want maps/basic", sel.topic.Name, sel.level)
	}
}

func TestLessonItemFilterValue(t *testing.T) {
	topic, ok := curriculum.Find("maps")
	if !ok {
		t.Fatal("maps topic missing")
	}
	item := lessonItem{topic: topic, level: curriculum.LevelAdvanced}

	fv := item.FilterValue()
	for _, want := range []string{"07_maps", "Maps", "advanced"} {
		if !strings.Contains(fv, want) {
			t.Errorf("FilterValue %q missing %q", fv, want)
		}
	}
}

func TestBrowseTabTogglesFocus(t *testing.T) {
	model := NewBrowseModel("notty", 80, "")
	model.SetSize(120, 40)

	if model.focusViewport {
		t.Fatal("viewport focused before tab")
	}
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !model.focusViewport {
		t.Error("tab did not focus viewport")
	}
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyTab})
	if model.focusViewport {
		t.Error("second tab did not return focus to list")
	}
}

func TestBrowseQuitKey(t *testing.T) {
	model := NewBrowseModel("notty", 80, "")
	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q produced no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}

func TestBrowseAppliesRenderedLesson(t *testing.T) {
	model := NewBrowseModel("notty", 80, "")
	model.SetSize(120, 40)

	// A render for a lesson that is no longer selected is dropped.
	model, _ = model.Update(lessonRenderedMsg{key: "07_maps/basic", content: "stale"})
	if !model.loading {
		t.Error("stale render cleared the loading state")
	}

	model, _ = model.Update(lessonRenderedMsg{key: model.current, content: "RENDERED LESSON"})
	if model.loading {
		t.Error("matching render left the model loading")
	}
	if !strings.Contains(model.viewport.View(), "RENDERED LESSON") {
		t.Error("viewport does not show the rendered lesson")
	}
}

func TestBrowseViewLayout(t *testing.T) {
	model := NewBrowseModel("notty", 80, "")

	if model.View() != "loading..." {
		t.Error("zero-size view should be the loading placeholder")
	}

	model.SetSize(120, 40)
	model, _ = model.Update(lessonRenderedMsg{key: model.current, content: "BODY"})
	view := model.View()
	if !strings.Contains(view, "tab: focus") {
		t.Error("view missing help footer")
	}
	if !strings.Contains(view, "BODY") {
		t.Error("view missing lesson pane content")
	}
}

func TestRenderMarkdown(t *testing.T) {
	out, err := RenderMarkdown("# Maps\n\nSome *body* text.\n", "notty", 60)
	if err != nil {
		t.Fatalf("RenderMarkdown: %v", err)
	}
	if !strings.Contains(out, "Maps") {
		t.Errorf("rendered output %q missing heading text", out)
	}
}
