package verify

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gotheory/internal/curriculum"
	"gotheory/internal/tracker"
)

func TestCheckLessonsLibraryIsClean(t *testing.T) {
	issues := CheckLessons()
	if errs := Errors(issues); len(errs) != 0 {
		for _, i := range errs {
			t.Errorf("%s", i)
		}
	}
}

func TestCheckExampleSyntaxLibraryIsClean(t *testing.T) {
	issues := CheckExampleSyntax()
	if len(issues) != 0 {
		for _, i := range issues {
			t.Errorf("%s", i)
		}
	}
}

func TestCheckProgram(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{
			name:   "valid program",
			source: "package main\n\nimport \"fmt\"\n\nfunc main() { fmt.Println(\"hi\") }\n",
			want:   nil,
		},
		{
			name:   "wrong package",
			source: "package lib\n\nfunc main() {}\n",
			want:   []string{"not package main"},
		},
		{
			name:   "no main function",
			source: "package main\n\nfunc helper() {}\n",
			want:   []string{"no main function"},
		},
		{
			name:   "method named main does not count",
			source: "package main\n\ntype t struct{}\n\nfunc (t) main() {}\n",
			want:   []string{"no main function"},
		},
		{
			name:   "syntax error",
			source: "package main\n\nfunc main() {\n",
			want:   []string{"parse error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := checkProgram(tt.source)
			if len(got) != len(tt.want) {
				t.Fatalf("problems = %v, want %v", got, tt.want)
			}
			for i := range got {
				if !strings.Contains(got[i], tt.want[i]) {
					t.Errorf("problem %d = %q, want it to mention %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestImports(t *testing.T) {
	t.Parallel()

	paths, err := imports("package main\n\nimport (\n\t\"fmt\"\n\t\"os\"\n)\n\nfunc main() {}\n")
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 2 || paths[0] != "fmt" || paths[1] != "os" {
		t.Errorf("imports = %v", paths)
	}

	if _, err := imports("not go at all"); err == nil {
		t.Error("invalid source parsed")
	}
}

func TestIssueString(t *testing.T) {
	t.Parallel()

	i := Issue{
		Topic: "07_maps", Level: curriculum.LevelBasic, File: "maps.go",
		Problem: "parse error", Severity: SeverityError,
	}
	if got := i.String(); got != "[error] 07_maps/basic/maps.go: parse error" {
		t.Errorf("String() = %q", got)
	}
}

func TestVerifyWorkspace(t *testing.T) {
	t.Parallel()

	root := t.TempDir()

	report, err := VerifyWorkspace(root, nil)
	if err != nil {
		t.Fatalf("VerifyWorkspace: %v", err)
	}
	if report.Coverage.TheoryFound != 0 {
		t.Errorf("TheoryFound = %d", report.Coverage.TheoryFound)
	}
	if report.Drifts != nil {
		t.Error("drifts reported without a manifest")
	}
	if report.Clean() {
		t.Error("empty workspace reported clean")
	}

	// With a manifest, an edited recorded file shows up as drift.
	manifest, err := tracker.OpenManifest(filepath.Join(root, ".gotheory"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { manifest.Close() })

	rel := "01_basics_and_syntax/basic/theory.md"
	abs := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(abs), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(abs, []byte("edited"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := manifest.BeginRun("run-1", "test"); err != nil {
		t.Fatal(err)
	}
	err = manifest.RecordFile(tracker.FileEntry{
		RelPath: rel, Kind: "theory",
		SHA256: tracker.HashBytes([]byte("original")), Size: 8, RunID: "run-1",
	})
	if err != nil {
		t.Fatal(err)
	}

	report, err = VerifyWorkspace(root, manifest)
	if err != nil {
		t.Fatal(err)
	}
	if len(report.Drifts) != 1 || report.Drifts[0].Kind != tracker.DriftModified {
		t.Errorf("drifts = %v", report.Drifts)
	}
}
