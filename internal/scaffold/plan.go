// Package scaffold plans and writes curriculum workspaces: which files
// a generation run should create, and the concurrent writer that puts
// them on disk and records them in the manifest.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gotheory/internal/content"
	"gotheory/internal/curriculum"
	"gotheory/internal/render"
)

// Action is what the generator will do with a planned file.
type Action string

const (
	ActionCreate    Action = "create"
	ActionSkip      Action = "skip"
	ActionOverwrite Action = "overwrite"
)

// Kind classifies a planned file.
type Kind string

const (
	KindTheory  Kind = "theory"
	KindExample Kind = "example"
	KindContext Kind = "context"
	KindIndex   Kind = "index"
)

// PlannedFile is one file a generation run will visit.
type PlannedFile struct {
	RelPath string // workspace-relative, forward slashes
	Topic   curriculum.Topic
	Level   curriculum.Level // "" for context and index files
	Kind    Kind
	Action  Action
	Reason  string // set for skips
}

// Plan is the full ordered list of files a run will visit.
type Plan struct {
	Root       string
	Files      []PlannedFile
	Creates    int
	Skips      int
	Overwrites int
}

// Pending returns the files the run will actually write.
func (p Plan) Pending() []PlannedFile {
	var pending []PlannedFile
	for _, f := range p.Files {
		if f.Action != ActionSkip {
			pending = append(pending, f)
		}
	}
	return pending
}

// selectTopics resolves the topic filter. Empty means every topic.
func selectTopics(filters []string) ([]curriculum.Topic, error) {
	if len(filters) == 0 {
		return curriculum.All(), nil
	}
	seen := make(map[string]bool)
	var topics []curriculum.Topic
	for _, f := range filters {
		topic, ok := curriculum.Find(f)
		if !ok {
			return nil, fmt.Errorf("unknown topic %q", f)
		}
		if seen[topic.Number] {
			continue
		}
		seen[topic.Number] = true
		topics = append(topics, topic)
	}
	sort.Slice(topics, func(i, j int) bool { return topics[i].Number < topics[j].Number })
	return topics, nil
}

// selectLevels resolves the level filter. Empty means every level.
func selectLevels(filters []curriculum.Level) map[curriculum.Level]bool {
	selected := make(map[curriculum.Level]bool)
	if len(filters) == 0 {
		for _, l := range curriculum.AllLevels() {
			selected[l] = true
		}
		return selected
	}
	for _, l := range filters {
		selected[l] = true
	}
	return selected
}

// BuildPlan walks the registry against the workspace and decides, per
// file, whether the run creates, overwrites, or skips it. Order is
// deterministic: topics by number, context file first, then levels in
// pedagogical order with theory before examples, index last.
func BuildPlan(opts Options) (*Plan, error) {
	if opts.Root == "" {
		return nil, fmt.Errorf("workspace root required")
	}
	if info, err := os.Stat(opts.Root); err == nil && !info.IsDir() {
		return nil, fmt.Errorf("workspace root %s is a file", opts.Root)
	}

	topics, err := selectTopics(opts.Topics)
	if err != nil {
		return nil, err
	}
	levels := selectLevels(opts.Levels)

	plan := &Plan{Root: opts.Root}
	add := func(pf PlannedFile) {
		pf.Action, pf.Reason = decide(opts, pf.RelPath)
		switch pf.Action {
		case ActionCreate:
			plan.Creates++
		case ActionSkip:
			plan.Skips++
		case ActionOverwrite:
			plan.Overwrites++
		}
		plan.Files = append(plan.Files, pf)
	}

	for _, topic := range topics {
		add(PlannedFile{RelPath: topic.ContextRelPath(), Topic: topic, Kind: KindContext})

		for _, level := range topic.Levels() {
			if !levels[level] {
				continue
			}
			add(PlannedFile{
				RelPath: topic.TheoryRelPath(level),
				Topic:   topic,
				Level:   level,
				Kind:    KindTheory,
			})

			examples, err := content.Examples(topic, level)
			if err != nil {
				return nil, fmt.Errorf("plan examples for %s/%s: %w", topic.Dir(), level, err)
			}
			for _, ex := range examples {
				add(PlannedFile{
					RelPath: topic.ExamplesRelDir(level) + "/" + ex.Name,
					Topic:   topic,
					Level:   level,
					Kind:    KindExample,
				})
			}
		}
	}

	// The index always lists the full curriculum, so it is written even
	// for filtered runs.
	add(PlannedFile{RelPath: "README.md", Kind: KindIndex})

	return plan, nil
}

// decide maps file existence and the force flag to an action.
func decide(opts Options, relPath string) (Action, string) {
	abs := filepath.Join(opts.Root, filepath.FromSlash(relPath))
	if _, err := os.Stat(abs); err == nil {
		if opts.Force {
			return ActionOverwrite, ""
		}
		return ActionSkip, "exists"
	}
	return ActionCreate, ""
}

// resolveContent produces the bytes for a planned file.
func resolveContent(pf PlannedFile) (string, error) {
	switch pf.Kind {
	case KindTheory:
		return content.Theory(pf.Topic, pf.Level)
	case KindExample:
		examples, err := content.Examples(pf.Topic, pf.Level)
		if err != nil {
			return "", err
		}
		name := filepath.Base(filepath.FromSlash(pf.RelPath))
		for _, ex := range examples {
			if ex.Name == name {
				return ex.Source, nil
			}
		}
		return "", fmt.Errorf("no embedded example %s for %s/%s", name, pf.Topic.Dir(), pf.Level)
	case KindContext:
		return render.ContextFile(pf.Topic)
	case KindIndex:
		return render.CurriculumReadme(curriculum.All())
	}
	return "", fmt.Errorf("unknown file kind %q", pf.Kind)
}
