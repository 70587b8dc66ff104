package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"gotheory/cmd/gotheory/ui"
)

// browseCmd opens the interactive lesson browser
var browseCmd = &cobra.Command{
	Use:   "browse [topic]",
	Short: "Browse lessons interactively",
	Long: `Opens a terminal browser over the embedded lesson library: the lesson
list on the left, the rendered theory document on the right. Tab moves
focus between panes, / filters the list, q quits.

An optional topic argument preselects that topic.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	start := ""
	if len(args) > 0 {
		start = args[0]
	}

	app := ui.App{Browse: ui.NewBrowseModel(cfg.Render.Style, cfg.Render.Width, start)}
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browser failed: %w", err)
	}
	return nil
}
