package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gotheory/cmd/gotheory/ui"
	"gotheory/internal/content"
	"gotheory/internal/curriculum"
)

var previewRaw bool

// previewCmd renders one embedded lesson to the terminal
var previewCmd = &cobra.Command{
	Use:   "preview <topic> [level]",
	Short: "Render a lesson in the terminal",
	Long: `Renders an embedded theory document with terminal markdown styling.
The topic may be given by number, name, or directory; the level defaults
to basic.

Examples:
  gotheory preview maps
  gotheory preview 13 advanced
  gotheory preview 07_maps intermediate --raw`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().BoolVar(&previewRaw, "raw", false, "Print bare markdown without styling")
}

func runPreview(cmd *cobra.Command, args []string) error {
	topic, ok := curriculum.Find(args[0])
	if !ok {
		return fmt.Errorf("unknown topic %q (try 'gotheory topics')", args[0])
	}

	level := curriculum.LevelBasic
	if len(args) > 1 {
		l, err := curriculum.ParseLevel(args[1])
		if err != nil {
			return err
		}
		level = l
	}
	if !topic.HasLevel(level) {
		return fmt.Errorf("topic %s has no %s level", topic.Dir(), level)
	}

	theory, err := content.Theory(topic, level)
	if err != nil {
		return fmt.Errorf("load lesson: %w", err)
	}

	if previewRaw {
		fmt.Print(theory)
		return nil
	}

	rendered, err := ui.RenderMarkdown(theory, cfg.Render.Style, cfg.Render.Width)
	if err != nil {
		return fmt.Errorf("render lesson: %w", err)
	}
	fmt.Print(rendered)
	return nil
}
