// Package curriculum defines the fixed Go theory curriculum: twenty numbered
// topics, each taught at up to three levels (basic, intermediate, advanced).
// The registry is the single source of truth for which directories and theory
// files a complete curriculum workspace contains.
package curriculum

import (
	"fmt"
	"strings"
)

// Level identifies one tier of a topic.
type Level string

const (
	LevelBasic        Level = "basic"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// AllLevels returns the levels in pedagogical order.
func AllLevels() []Level {
	return []Level{LevelBasic, LevelIntermediate, LevelAdvanced}
}

// ParseLevel converts user input into a Level.
func ParseLevel(s string) (Level, error) {
	switch Level(strings.ToLower(strings.TrimSpace(s))) {
	case LevelBasic:
		return LevelBasic, nil
	case LevelIntermediate:
		return LevelIntermediate, nil
	case LevelAdvanced:
		return LevelAdvanced, nil
	}
	return "", fmt.Errorf("unknown level %q (valid: basic, intermediate, advanced)", s)
}

// Topic is one entry of the curriculum registry.
type Topic struct {
	Number string // zero-padded, "01".."20"
	Name   string // snake_case directory suffix
	Title  string // display title

	HasIntermediate bool
	HasAdvanced     bool
}

// Dir returns the workspace directory name, e.g. "01_basics_and_syntax".
func (t Topic) Dir() string {
	return t.Number + "_" + t.Name
}

// HasLevel reports whether the topic is taught at the given level.
// Every topic has a basic level.
func (t Topic) HasLevel(l Level) bool {
	switch l {
	case LevelBasic:
		return true
	case LevelIntermediate:
		return t.HasIntermediate
	case LevelAdvanced:
		return t.HasAdvanced
	}
	return false
}

// Levels returns the enabled levels in pedagogical order.
func (t Topic) Levels() []Level {
	levels := []Level{LevelBasic}
	if t.HasIntermediate {
		levels = append(levels, LevelIntermediate)
	}
	if t.HasAdvanced {
		levels = append(levels, LevelAdvanced)
	}
	return levels
}

// TheoryRelPath returns the workspace-relative path of the theory file for a
// level, e.g. "01_basics_and_syntax/basic/theory.md".
func (t Topic) TheoryRelPath(l Level) string {
	return t.Dir() + "/" + string(l) + "/theory.md"
}

// ExamplesRelDir returns the workspace-relative examples directory for a level.
func (t Topic) ExamplesRelDir(l Level) string {
	return t.Dir() + "/" + string(l) + "/examples"
}

// ContextRelPath returns the workspace-relative path of the per-topic
// claude.md working-context file.
func (t Topic) ContextRelPath() string {
	return t.Dir() + "/claude.md"
}

// topics is the registry. Order matters: commands iterate it as the canonical
// study sequence.
var topics = []Topic{
	{Number: "01", Name: "basics_and_syntax", Title: "Basics and Syntax", HasIntermediate: true, HasAdvanced: true},
	{Number: "02", Name: "data_types_and_variables", Title: "Data Types and Variables", HasIntermediate: true, HasAdvanced: true},
	{Number: "03", Name: "operators_and_expressions", Title: "Operators and Expressions", HasIntermediate: true, HasAdvanced: true},
	{Number: "04", Name: "control_flow", Title: "Control Flow", HasIntermediate: true, HasAdvanced: true},
	{Number: "05", Name: "functions", Title: "Functions", HasIntermediate: true, HasAdvanced: true},
	{Number: "06", Name: "arrays_and_slices", Title: "Arrays and Slices", HasIntermediate: true, HasAdvanced: true},
	{Number: "07", Name: "maps", Title: "Maps", HasIntermediate: true, HasAdvanced: true},
	{Number: "08", Name: "structs", Title: "Structs", HasIntermediate: true, HasAdvanced: true},
	{Number: "09", Name: "pointers", Title: "Pointers", HasIntermediate: true, HasAdvanced: true},
	{Number: "10", Name: "methods_and_interfaces", Title: "Methods and Interfaces", HasIntermediate: true, HasAdvanced: true},
	{Number: "11", Name: "error_handling", Title: "Error Handling", HasIntermediate: true, HasAdvanced: true},
	{Number: "12", Name: "packages_and_modules", Title: "Packages and Modules", HasIntermediate: true, HasAdvanced: true},
	{Number: "13", Name: "concurrency", Title: "Concurrency", HasIntermediate: true, HasAdvanced: true},
	{Number: "14", Name: "channels", Title: "Channels", HasIntermediate: true, HasAdvanced: true},
	{Number: "15", Name: "file_io", Title: "File I/O", HasIntermediate: true, HasAdvanced: true},
	{Number: "16", Name: "testing", Title: "Testing", HasIntermediate: true, HasAdvanced: true},
	{Number: "17", Name: "reflection", Title: "Reflection", HasIntermediate: true, HasAdvanced: true},
	{Number: "18", Name: "generics", Title: "Generics", HasIntermediate: true, HasAdvanced: true},
	{Number: "19", Name: "memory_management", Title: "Memory Management", HasIntermediate: true, HasAdvanced: true},
	{Number: "20", Name: "advanced_patterns", Title: "Advanced Patterns", HasIntermediate: true, HasAdvanced: true},
}

// All returns the registry in study order. The caller gets a copy; the
// registry itself is immutable.
func All() []Topic {
	out := make([]Topic, len(topics))
	copy(out, topics)
	return out
}

// Count returns the number of topics.
func Count() int {
	return len(topics)
}

// ExpectedTheoryCount returns how many theory files a complete workspace
// holds (one per topic per enabled level).
func ExpectedTheoryCount() int {
	n := 0
	for _, t := range topics {
		n += len(t.Levels())
	}
	return n
}

// ByNumber looks a topic up by number. Accepts both "7" and "07".
func ByNumber(num string) (Topic, bool) {
	num = strings.TrimSpace(num)
	if len(num) == 1 {
		num = "0" + num
	}
	for _, t := range topics {
		if t.Number == num {
			return t, true
		}
	}
	return Topic{}, false
}

// ByName looks a topic up by its snake_case name.
func ByName(name string) (Topic, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, t := range topics {
		if t.Name == name {
			return t, true
		}
	}
	return Topic{}, false
}

// ByDir looks a topic up by its workspace directory name.
func ByDir(dir string) (Topic, bool) {
	for _, t := range topics {
		if t.Dir() == dir {
			return t, true
		}
	}
	return Topic{}, false
}

// Find resolves a topic from any user-facing identifier: number ("7", "07"),
// name ("maps"), or directory ("07_maps").
func Find(q string) (Topic, bool) {
	if t, ok := ByNumber(q); ok {
		return t, true
	}
	if t, ok := ByName(q); ok {
		return t, true
	}
	if t, ok := ByDir(strings.TrimSuffix(q, "/")); ok {
		return t, true
	}
	return Topic{}, false
}
