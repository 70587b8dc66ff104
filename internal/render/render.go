// Package render assembles the curriculum pages whose text is derived
// from topic metadata rather than stored verbatim: the per-topic
// claude.md working-context file and the top-level README index.
package render

import (
	"fmt"
	"strings"
	"text/template"

	"gotheory/internal/curriculum"
	"gotheory/internal/logging"
)

const contextTemplate = `# {{.Title}} - Topic Context

This directory contains comprehensive Go theory for **{{.Title}}** with detailed comparisons to C/C++ and design rationale.

## Directory Structure

{{range .Levels}}- ` + "`{{.Dir}}/`" + ` - {{.Blurb}}
{{end}}
## Learning Approach

Each subdirectory contains:
- ` + "`theory.md`" + ` - Detailed theoretical explanations
- ` + "`examples/`" + ` - Practical code examples
- Comparisons to C/C++ throughout
- Design rationale for Go's choices

## How to Use This Context

When working with Claude:
1. Open this topic directory as your working context
2. Reference the theory files as needed
3. Run examples to understand concepts
4. Ask Claude questions specific to this topic

## Key Questions to Explore

- Why did Go choose this design vs C/C++?
- What problems does this solve?
- What are the trade-offs?
- How does this enable better software engineering?

Start with ` + "`{{.Start}}/theory.md`" + ` and progress through the levels.
`

const readmeTemplate = `# Go Theory Curriculum

Comprehensive Go learning materials with detailed C/C++ comparisons and design rationale. {{.TopicCount}} topics, {{.LessonCount}} theory files, every one explaining not just how Go works but why it was designed that way.

## Topics

| # | Topic | Levels |
|---|-------|--------|
{{range .Rows}}| {{.Number}} | [{{.Title}}]({{.Dir}}/) | {{.Links}} |
{{end}}
## Study Path

Work through the topics in order; each builds on the ones before it. Within a topic:

1. Read ` + "`basic/theory.md`" + ` for the fundamentals and the C/C++ contrast
2. Run the programs under ` + "`examples/`" + ` and match their output to the theory
3. Move up through ` + "`intermediate/`" + ` and ` + "`advanced/`" + ` once the basics settle
4. Open the topic's ` + "`claude.md`" + ` as working context when studying with Claude

## Levels

- **basic** - Fundamental concepts with C/C++ comparisons
- **intermediate** - Advanced usage patterns and design decisions
- **advanced** - Deep dives into implementation and optimization
`

var (
	contextTmpl = template.Must(template.New("context").Parse(contextTemplate))
	readmeTmpl  = template.Must(template.New("readme").Parse(readmeTemplate))
)

// levelBlurbs are the one-line level descriptions used on every page.
var levelBlurbs = map[curriculum.Level]string{
	curriculum.LevelBasic:        "Fundamental concepts with C/C++ comparisons",
	curriculum.LevelIntermediate: "Advanced usage patterns and design decisions",
	curriculum.LevelAdvanced:     "Deep dives into implementation and optimization",
}

type contextLevel struct {
	Dir   string
	Blurb string
}

// ContextFile renders the per-topic claude.md working-context page.
func ContextFile(topic curriculum.Topic) (string, error) {
	levels := topic.Levels()
	data := struct {
		Title  string
		Levels []contextLevel
		Start  string
	}{
		Title: topic.Title,
		Start: string(levels[0]),
	}
	for _, l := range levels {
		data.Levels = append(data.Levels, contextLevel{Dir: string(l), Blurb: levelBlurbs[l]})
	}

	var sb strings.Builder
	if err := contextTmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("render context for %s: %w", topic.Dir(), err)
	}
	logging.RenderDebug("context file %s (%d bytes)", topic.Dir(), sb.Len())
	return sb.String(), nil
}

type readmeRow struct {
	Number string
	Title  string
	Dir    string
	Links  string
}

// CurriculumReadme renders the top-level README.md index for the given
// topics, normally curriculum.All().
func CurriculumReadme(topics []curriculum.Topic) (string, error) {
	lessons := 0
	rows := make([]readmeRow, 0, len(topics))
	for _, t := range topics {
		links := make([]string, 0, 3)
		for _, l := range t.Levels() {
			links = append(links, fmt.Sprintf("[%s](%s)", l, t.TheoryRelPath(l)))
			lessons++
		}
		rows = append(rows, readmeRow{
			Number: t.Number,
			Title:  t.Title,
			Dir:    t.Dir(),
			Links:  strings.Join(links, " · "),
		})
	}

	data := struct {
		TopicCount  int
		LessonCount int
		Rows        []readmeRow
	}{
		TopicCount:  len(topics),
		LessonCount: lessons,
		Rows:        rows,
	}

	var sb strings.Builder
	if err := readmeTmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("render curriculum readme: %w", err)
	}
	logging.RenderDebug("curriculum readme: %d topics, %d bytes", len(topics), sb.Len())
	return sb.String(), nil
}
