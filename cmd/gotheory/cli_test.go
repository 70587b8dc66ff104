package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gotheory/internal/config"
	"gotheory/internal/tracker"
)

// setTestConfig points the global config at a temp workspace and
// restores everything afterwards.
func setTestConfig(t *testing.T, root string) {
	t.Helper()

	oldCfg, oldLogger := cfg, logger
	logger = zap.NewNop()
	cfg = config.DefaultConfig()
	cfg.Root = root
	cfg.Verify.RunExamples = false
	t.Cleanup(func() {
		cfg, logger = oldCfg, oldLogger
	})
}

func resetGenerateFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		generateLevels = nil
		generateForce = false
		generateDryRun = false
		generateJobs = 0
	})
}

func TestInitCmd(t *testing.T) {
	ws := t.TempDir()
	setTestConfig(t, ws)

	if err := runInit(&cobra.Command{}, nil); err != nil {
		t.Fatalf("runInit failed: %v", err)
	}

	for _, path := range []string{
		filepath.Join(ws, ".gotheory", "config.yaml"),
		filepath.Join(ws, ".gotheory", "config.json"),
		filepath.Join(ws, ".gotheory", ".gitignore"),
		filepath.Join(ws, ".gotheory", "logs"),
	} {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("%s was not created: %v", path, err)
		}
	}

	// Second run is a no-op, not an error.
	if err := runInit(&cobra.Command{}, nil); err != nil {
		t.Errorf("runInit second run failed: %v", err)
	}
}

func TestInitWritesRelativeRoot(t *testing.T) {
	ws := t.TempDir()
	setTestConfig(t, ws)

	if err := runInit(&cobra.Command{}, nil); err != nil {
		t.Fatalf("runInit failed: %v", err)
	}

	loaded, err := config.Load(filepath.Join(ws, ".gotheory", "config.yaml"))
	if err != nil {
		t.Fatalf("load written config: %v", err)
	}
	if loaded.Root != "." {
		t.Errorf("written config root = %q, want \".\"", loaded.Root)
	}
}

func TestGenerateCmd(t *testing.T) {
	ws := t.TempDir()
	setTestConfig(t, ws)
	resetGenerateFlags(t)

	if err := runGenerate(&cobra.Command{}, nil); err != nil {
		t.Fatalf("runGenerate failed: %v", err)
	}

	cov, err := tracker.Scan(ws)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if !cov.Complete() {
		t.Errorf("coverage %d/%d after full generate", cov.TheoryFound, cov.TheoryExpected)
	}

	if _, err := os.Stat(filepath.Join(ws, "README.md")); err != nil {
		t.Error("index was not written")
	}
	if _, err := os.Stat(filepath.Join(ws, ".gotheory", "manifest.db")); err != nil {
		t.Error("manifest database was not created")
	}
}

func TestGenerateDryRun(t *testing.T) {
	ws := t.TempDir()
	setTestConfig(t, ws)
	resetGenerateFlags(t)
	generateDryRun = true

	if err := runGenerate(&cobra.Command{}, nil); err != nil {
		t.Fatalf("runGenerate dry run failed: %v", err)
	}

	entries, err := os.ReadDir(ws)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("dry run wrote into the workspace: %v", entries)
	}
}

func TestGenerateTopicFilter(t *testing.T) {
	ws := t.TempDir()
	setTestConfig(t, ws)
	resetGenerateFlags(t)

	if err := runGenerate(&cobra.Command{}, []string{"maps"}); err != nil {
		t.Fatalf("runGenerate failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(ws, "07_maps", "basic", "theory.md")); err != nil {
		t.Error("maps theory missing after filtered generate")
	}
	if _, err := os.Stat(filepath.Join(ws, "13_concurrency")); err == nil {
		t.Error("filtered generate leaked another topic")
	}
}

func TestGenerateUnknownTopic(t *testing.T) {
	ws := t.TempDir()
	setTestConfig(t, ws)
	resetGenerateFlags(t)

	if err := runGenerate(&cobra.Command{}, []string{"quantum_entanglement"}); err == nil {
		t.Error("unknown topic did not fail")
	}
}

func TestStatusCmd(t *testing.T) {
	ws := t.TempDir()
	setTestConfig(t, ws)
	resetGenerateFlags(t)

	// Fresh workspace: no runs recorded yet.
	if err := showStatus(&cobra.Command{}, nil); err != nil {
		t.Fatalf("showStatus on empty workspace failed: %v", err)
	}

	if err := runGenerate(&cobra.Command{}, []string{"maps"}); err != nil {
		t.Fatalf("runGenerate failed: %v", err)
	}
	if err := showStatus(&cobra.Command{}, nil); err != nil {
		t.Fatalf("showStatus after generate failed: %v", err)
	}
}

func TestTopicsCmd(t *testing.T) {
	setTestConfig(t, t.TempDir())
	if err := listTopics(&cobra.Command{}, nil); err != nil {
		t.Fatalf("listTopics failed: %v", err)
	}
}

func TestPreviewCmd(t *testing.T) {
	setTestConfig(t, t.TempDir())

	oldRaw := previewRaw
	previewRaw = true
	defer func() { previewRaw = oldRaw }()

	if err := runPreview(&cobra.Command{}, []string{"maps"}); err != nil {
		t.Fatalf("runPreview failed: %v", err)
	}
	if err := runPreview(&cobra.Command{}, []string{"maps", "advanced"}); err != nil {
		t.Fatalf("runPreview with level failed: %v", err)
	}

	if err := runPreview(&cobra.Command{}, []string{"no_such_topic"}); err == nil {
		t.Error("unknown topic did not fail")
	}
	if err := runPreview(&cobra.Command{}, []string{"maps", "expert"}); err == nil {
		t.Error("unknown level did not fail")
	}
}

func TestVerifyCmdLibraryOnly(t *testing.T) {
	ws := t.TempDir()
	setTestConfig(t, ws)

	// The embedded library is complete, the workspace is empty, and
	// example execution is disabled: verification passes.
	if err := runVerify(verifyCmd, nil); err != nil {
		t.Fatalf("runVerify failed: %v", err)
	}
}

func TestVerifyCmdReportsDrift(t *testing.T) {
	ws := t.TempDir()
	setTestConfig(t, ws)
	resetGenerateFlags(t)

	if err := runGenerate(&cobra.Command{}, []string{"maps"}); err != nil {
		t.Fatalf("runGenerate failed: %v", err)
	}

	// Hand-edit a generated file behind the manifest's back.
	edited := filepath.Join(ws, "07_maps", "basic", "theory.md")
	if err := os.WriteFile(edited, []byte("# tampered\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := runVerify(verifyCmd, nil); err == nil {
		t.Error("drifted workspace did not fail verification")
	}
}

func TestParseLevelFlags(t *testing.T) {
	levels, err := parseLevelFlags([]string{"advanced"}, []string{"basic"})
	if err != nil {
		t.Fatalf("parseLevelFlags: %v", err)
	}
	if len(levels) != 1 || string(levels[0]) != "advanced" {
		t.Errorf("levels = %v, want [advanced]", levels)
	}

	levels, err = parseLevelFlags(nil, []string{"basic", "intermediate"})
	if err != nil {
		t.Fatalf("parseLevelFlags fallback: %v", err)
	}
	if len(levels) != 2 {
		t.Errorf("fallback levels = %v, want two", levels)
	}

	if _, err := parseLevelFlags([]string{"expert"}, nil); err == nil {
		t.Error("invalid level did not fail")
	}
}

func TestLoadConfigRootOverride(t *testing.T) {
	ws := t.TempDir()
	t.Setenv("GOTHEORY_ROOT", "")

	oldRoot, oldPath := rootDir, configPath
	rootDir, configPath = ws, ""
	defer func() { rootDir, configPath = oldRoot, oldPath }()

	c, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if c.Root != ws {
		t.Errorf("root = %q, want %q", c.Root, ws)
	}
}

func TestManifestStateDir(t *testing.T) {
	c := config.DefaultConfig()
	c.Root = "/work"
	got := manifestStateDir(c)
	want := filepath.Join("/work", ".gotheory")
	if got != want {
		t.Errorf("manifestStateDir = %q, want %q", got, want)
	}

	c.Manifest.Path = "/abs/state/manifest.db"
	if got := manifestStateDir(c); got != filepath.Join("/abs", "state") {
		t.Errorf("absolute manifest path resolved to %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 28); got != "short" {
		t.Errorf("truncate(short) = %q", got)
	}
	if got := truncate("a very long topic title that overflows", 10); got != "a very ..." {
		t.Errorf("truncate long = %q", got)
	}
}
