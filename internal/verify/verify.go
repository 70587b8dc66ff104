// Package verify checks the curriculum from two sides: the embedded
// library (every lesson present and well-formed, every example a valid
// Go program) and a generated workspace (coverage plus drift).
package verify

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strings"

	"gotheory/internal/content"
	"gotheory/internal/curriculum"
	"gotheory/internal/logging"
)

// Severity grades an issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is one problem found in the embedded library.
type Issue struct {
	Topic    string // topic directory
	Level    curriculum.Level
	File     string // file within the topic, "" for level-wide issues
	Problem  string
	Severity Severity
}

func (i Issue) String() string {
	loc := i.Topic
	if i.Level != "" {
		loc += "/" + string(i.Level)
	}
	if i.File != "" {
		loc += "/" + i.File
	}
	return fmt.Sprintf("[%s] %s: %s", i.Severity, loc, i.Problem)
}

// Errors filters issues down to hard failures.
func Errors(issues []Issue) []Issue {
	var out []Issue
	for _, i := range issues {
		if i.Severity == SeverityError {
			out = append(out, i)
		}
	}
	return out
}

// CheckLessons walks the registry and verifies every enabled
// topic/level has a well-formed embedded lesson and at least one
// example program. It returns every problem found rather than failing
// on the first, so callers can report the full list.
func CheckLessons() []Issue {
	var issues []Issue
	add := func(topic curriculum.Topic, level curriculum.Level, file, problem string, sev Severity) {
		issues = append(issues, Issue{
			Topic: topic.Dir(), Level: level, File: file,
			Problem: problem, Severity: sev,
		})
	}

	for _, topic := range curriculum.All() {
		for _, level := range topic.Levels() {
			theory, err := content.Theory(topic, level)
			if err != nil {
				add(topic, level, "theory.md", "lesson missing from library", SeverityError)
				continue
			}
			if strings.TrimSpace(theory) == "" {
				add(topic, level, "theory.md", "lesson is empty", SeverityError)
				continue
			}

			heading := firstLine(theory)
			if !strings.HasPrefix(heading, "# ") {
				add(topic, level, "theory.md",
					fmt.Sprintf("first line %q is not an h1 heading", heading), SeverityError)
			} else if !strings.Contains(heading, topic.Title) {
				add(topic, level, "theory.md",
					fmt.Sprintf("heading %q does not name the topic", heading), SeverityError)
			}
			if !strings.Contains(theory, "C/C++") {
				add(topic, level, "theory.md", "lesson has no C/C++ comparison", SeverityWarning)
			}

			examples, err := content.Examples(topic, level)
			if err != nil || len(examples) == 0 {
				add(topic, level, "", "no example programs", SeverityError)
			}
		}
	}

	logging.Verify("lesson check: %d issues", len(issues))
	return issues
}

// CheckExampleSyntax parses every embedded example and verifies it is a
// runnable program: valid Go, package main, a main function.
func CheckExampleSyntax() []Issue {
	var issues []Issue

	for _, topic := range curriculum.All() {
		for _, level := range topic.Levels() {
			examples, err := content.Examples(topic, level)
			if err != nil {
				continue // CheckLessons reports the missing level
			}
			for _, ex := range examples {
				for _, problem := range checkProgram(ex.Source) {
					issues = append(issues, Issue{
						Topic: topic.Dir(), Level: level, File: ex.Name,
						Problem: problem, Severity: SeverityError,
					})
				}
			}
		}
	}

	logging.Verify("syntax check: %d issues", len(issues))
	return issues
}

// checkProgram returns the problems that make source not a runnable
// example program.
func checkProgram(source string) []string {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "example.go", source, parser.ParseComments)
	if err != nil {
		return []string{fmt.Sprintf("parse error: %v", err)}
	}

	var problems []string
	if file.Name == nil || file.Name.Name != "main" {
		problems = append(problems, "not package main")
	}

	hasMain := false
	ast.Inspect(file, func(n ast.Node) bool {
		if fn, ok := n.(*ast.FuncDecl); ok {
			if fn.Name.Name == "main" && fn.Recv == nil {
				hasMain = true
			}
		}
		return true
	})
	if !hasMain {
		problems = append(problems, "no main function")
	}

	return problems
}

// imports returns the import paths of a parsed example, or the parse
// error. Used by the runner to decide whether a program fits the
// interpreter sandbox.
func imports(source string) ([]string, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "example.go", source, parser.ImportsOnly)
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(file.Imports))
	for _, imp := range file.Imports {
		paths = append(paths, strings.Trim(imp.Path.Value, `"`))
	}
	return paths, nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
