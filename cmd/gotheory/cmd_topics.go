package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"gotheory/cmd/gotheory/ui"
	"gotheory/internal/curriculum"
)

// topicsCmd lists the curriculum registry
var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List every curriculum topic",
	RunE:  listTopics,
}

func listTopics(cmd *cobra.Command, args []string) error {
	styles := ui.DefaultStyles()

	fmt.Println(styles.Title.Render(fmt.Sprintf("Curriculum Topics (%d)", curriculum.Count())))
	fmt.Println(styles.RenderDivider(72))
	fmt.Printf("%-4s %-28s %-28s %s\n", "#", "Directory", "Title", "Levels")

	for _, topic := range curriculum.All() {
		levels := make([]string, 0, 3)
		for _, l := range topic.Levels() {
			levels = append(levels, string(l))
		}
		fmt.Printf("%-4s %-28s %-28s %s\n",
			topic.Number, topic.Dir(), truncate(topic.Title, 28), strings.Join(levels, ", "))
	}

	fmt.Printf("\n%d theory files expected for a complete workspace.\n", curriculum.ExpectedTheoryCount())
	return nil
}
