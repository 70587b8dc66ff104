package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"gotheory/internal/content"
	"gotheory/internal/curriculum"
)

// lessonItem adapts one topic/level lesson to list.Item.
type lessonItem struct {
	topic curriculum.Topic
	level curriculum.Level
}

func (i lessonItem) Title() string {
	return fmt.Sprintf("%s %s", i.topic.Number, i.topic.Title)
}

func (i lessonItem) Description() string {
	examples, err := content.Examples(i.topic, i.level)
	if err != nil || len(examples) == 0 {
		return string(i.level)
	}
	return fmt.Sprintf("%s · %d examples", i.level, len(examples))
}

func (i lessonItem) FilterValue() string {
	return i.topic.Dir() + " " + i.topic.Title + " " + string(i.level)
}

func (i lessonItem) key() string {
	return i.topic.Dir() + "/" + string(i.level)
}

// lessonRenderedMsg carries an asynchronously rendered lesson.
type lessonRenderedMsg struct {
	key     string
	content string
	err     error
}

// BrowseModel is the lesson browser: a lesson list on the left and the
// glamour-rendered theory document on the right.
type BrowseModel struct {
	width  int
	height int

	list     list.Model
	viewport viewport.Model
	spin     spinner.Model

	focusViewport bool
	loading       bool
	current       string // key of the lesson the viewport shows or awaits

	wrapWidth int    // configured word wrap column
	styleName string // glamour style: auto, dark, light, notty

	styles Styles
}

// NewBrowseModel builds the browser. startTopic optionally preselects a
// topic by number, name, or directory.
func NewBrowseModel(styleName string, wrapWidth int, startTopic string) BrowseModel {
	items := make([]list.Item, 0, curriculum.ExpectedTheoryCount())
	selectIdx := 0
	for _, topic := range curriculum.All() {
		for _, level := range topic.Levels() {
			if startTopic != "" {
				if match, ok := curriculum.Find(startTopic); ok && match.Dir() == topic.Dir() && level == curriculum.LevelBasic {
					selectIdx = len(items)
				}
			}
			items = append(items, lessonItem{topic: topic, level: level})
		}
	}

	styles := DefaultStyles()

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = fmt.Sprintf("Lessons (%d)", len(items))
	l.SetShowHelp(false)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = lipgloss.NewStyle().Bold(true).Foreground(styles.Theme.Primary)
	l.Select(selectIdx)

	vp := viewport.New(0, 0)
	vp.SetContent("Select a lesson.")

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	// Init renders the initial selection on a copy of the model, so the
	// pending key and loading flag have to be established here.
	return BrowseModel{
		list:      l,
		viewport:  vp,
		spin:      sp,
		loading:   true,
		current:   items[selectIdx].(lessonItem).key(),
		wrapWidth: wrapWidth,
		styleName: styleName,
		styles:    styles,
	}
}

// Init starts the spinner and renders the initial selection.
func (m BrowseModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.renderSelected())
}

// renderSelected renders the selected lesson off the update loop.
func (m *BrowseModel) renderSelected() tea.Cmd {
	sel, ok := m.list.SelectedItem().(lessonItem)
	if !ok {
		return nil
	}
	m.loading = true
	m.current = sel.key()

	wrap := m.lessonWrap()
	styleName := m.styleName
	return func() tea.Msg {
		theory, err := content.Theory(sel.topic, sel.level)
		if err != nil {
			return lessonRenderedMsg{key: sel.key(), err: err}
		}
		rendered, err := RenderMarkdown(theory, styleName, wrap)
		if err != nil {
			return lessonRenderedMsg{key: sel.key(), err: err}
		}
		return lessonRenderedMsg{key: sel.key(), content: rendered}
	}
}

// lessonWrap bounds the configured wrap column by the viewport width.
func (m BrowseModel) lessonWrap() int {
	wrap := m.wrapWidth
	if wrap <= 0 {
		wrap = 80
	}
	if m.viewport.Width > 2 && wrap > m.viewport.Width-2 {
		wrap = m.viewport.Width - 2
	}
	return wrap
}

// Update handles messages.
func (m BrowseModel) Update(msg tea.Msg) (BrowseModel, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		// Wrap width changed with the pane, re-render.
		cmds = append(cmds, m.renderSelected())

	case spinner.TickMsg:
		if m.loading {
			m.spin, cmd = m.spin.Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case lessonRenderedMsg:
		if msg.key != m.current {
			return m, nil // stale render from a fast selection change
		}
		m.loading = false
		if msg.err != nil {
			m.viewport.SetContent(m.styles.Error.Render(fmt.Sprintf("render failed: %v", msg.err)))
		} else {
			m.viewport.SetContent(msg.content)
		}
		m.viewport.GotoTop()
		return m, nil

	case tea.KeyMsg:
		if m.list.FilterState() != list.Filtering {
			switch msg.String() {
			case "tab":
				m.focusViewport = !m.focusViewport
				return m, nil
			case "q", "ctrl+c":
				return m, tea.Quit
			}
		}
	}

	before := m.current

	_, isKey := msg.(tea.KeyMsg)
	updateList := !isKey || !m.focusViewport || m.list.FilterState() == list.Filtering
	updateViewport := !isKey || (m.focusViewport && m.list.FilterState() != list.Filtering)

	if updateList {
		m.list, cmd = m.list.Update(msg)
		cmds = append(cmds, cmd)
	}
	if updateViewport {
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	if sel, ok := m.list.SelectedItem().(lessonItem); ok && sel.key() != before {
		cmds = append(cmds, m.spin.Tick, m.renderSelected())
	}

	return m, tea.Batch(cmds...)
}

// View renders the split layout: list 35%, lesson 65%.
func (m BrowseModel) View() string {
	if m.width == 0 {
		return "loading..."
	}

	listPaneWidth := int(float64(m.width) * 0.35)
	viewPaneWidth := m.width - listPaneWidth

	baseStyle := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder())

	focusedBorder := m.styles.Theme.Accent
	blurredBorder := m.styles.Theme.Border

	var listStyle, viewStyle lipgloss.Style
	if m.focusViewport {
		listStyle = baseStyle.BorderForeground(blurredBorder)
		viewStyle = baseStyle.BorderForeground(focusedBorder)
	} else {
		listStyle = baseStyle.BorderForeground(focusedBorder)
		viewStyle = baseStyle.BorderForeground(blurredBorder)
	}

	lessonPane := m.viewport.View()
	if m.loading {
		lessonPane = fmt.Sprintf("%s Rendering lesson...", m.spin.View())
	}

	listView := listStyle.Width(listPaneWidth - 4).Render(m.list.View())
	contentView := viewStyle.Width(viewPaneWidth - 4).Render(lessonPane)

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, listView, contentView)
	help := m.styles.Muted.Render(" tab: focus · /: filter · ↑/↓: move · q: quit")

	return lipgloss.JoinVertical(lipgloss.Left, mainView, help)
}

// SetSize updates the layout for a new terminal size.
func (m *BrowseModel) SetSize(w, h int) {
	m.width = w
	m.height = h

	// Border(2) + Padding(2) per pane horizontally, Border(2) vertically.
	chromeW := 4
	chromeH := 2
	paneH := h - 3 - chromeH

	listPaneWidth := int(float64(w) * 0.35)
	viewPaneWidth := w - listPaneWidth

	m.list.SetSize(listPaneWidth-chromeW, paneH)
	m.viewport.Width = viewPaneWidth - chromeW
	m.viewport.Height = paneH
}

// App wraps the browser page as a standalone bubbletea program.
type App struct {
	Browse BrowseModel
}

func (a App) Init() tea.Cmd {
	return a.Browse.Init()
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.Browse, cmd = a.Browse.Update(msg)
	return a, cmd
}

func (a App) View() string {
	return a.Browse.View()
}

// RenderMarkdown renders markdown for the terminal with the configured
// glamour style and word wrap.
func RenderMarkdown(markdown, styleName string, wrap int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(wrap)}
	switch styleName {
	case "", "auto":
		opts = append(opts, glamour.WithAutoStyle())
	default:
		opts = append(opts, glamour.WithStandardStyle(styleName))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("markdown renderer: %w", err)
	}
	return r.Render(markdown)
}
