package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Name != "gotheory" {
		t.Errorf("expected Name=gotheory, got %s", cfg.Name)
	}
	if cfg.Root != "." {
		t.Errorf("expected Root=., got %s", cfg.Root)
	}
	if len(cfg.Levels) != 3 {
		t.Errorf("expected 3 levels, got %d", len(cfg.Levels))
	}
	if cfg.Generate.Jobs != 4 {
		t.Errorf("expected Generate.Jobs=4, got %d", cfg.Generate.Jobs)
	}
	if !cfg.Manifest.Enabled {
		t.Error("expected Manifest.Enabled=true by default")
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")

	cfg := DefaultConfig()
	cfg.Root = "/tmp/curriculum"
	cfg.Generate.Jobs = 8
	cfg.Render.Style = "dark"

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Root != "/tmp/curriculum" {
		t.Errorf("expected Root=/tmp/curriculum, got %s", loaded.Root)
	}
	if loaded.Generate.Jobs != 8 {
		t.Errorf("expected Generate.Jobs=8, got %d", loaded.Generate.Jobs)
	}
	if loaded.Render.Style != "dark" {
		t.Errorf("expected Render.Style=dark, got %s", loaded.Render.Style)
	}
}

func TestConfig_LoadMissingFileReturnsDefaults(t *testing.T) {
	loaded, err := Load(filepath.Join(t.TempDir(), "no-such-config.yaml"))
	if err != nil {
		t.Fatalf("Load of missing file should not error: %v", err)
	}
	if loaded.Name != "gotheory" {
		t.Errorf("expected default Name=gotheory, got %s", loaded.Name)
	}
	if loaded.Generate.Jobs != 4 {
		t.Errorf("expected default Generate.Jobs=4, got %d", loaded.Generate.Jobs)
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got error: %v", err)
	}

	cfg.Levels = []string{"basic", "expert"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for unknown level")
	}

	cfg = DefaultConfig()
	cfg.Generate.Jobs = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for jobs < 1")
	}

	cfg = DefaultConfig()
	cfg.Render.Width = 10
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for width < 20")
	}

	cfg = DefaultConfig()
	cfg.Render.Style = "neon"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for invalid style")
	}
}

func TestConfig_Helpers(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.GetWatchDebounce() == 0 {
		t.Error("GetWatchDebounce should return non-zero duration")
	}
	if cfg.GetVerifyTimeout() == 0 {
		t.Error("GetVerifyTimeout should return non-zero duration")
	}

	// Unparseable durations fall back to defaults
	cfg.Watch.Debounce = "not-a-duration"
	if cfg.GetWatchDebounce() == 0 {
		t.Error("GetWatchDebounce should fall back on parse failure")
	}
}

func TestLoggingConfig_IsCategoryEnabled(t *testing.T) {
	lc := &LoggingConfig{DebugMode: false}
	if lc.IsCategoryEnabled("scaffold") {
		t.Error("categories should be disabled when debug_mode=false")
	}

	lc = &LoggingConfig{DebugMode: true}
	if !lc.IsCategoryEnabled("scaffold") {
		t.Error("categories should default to enabled when debug_mode=true")
	}

	lc = &LoggingConfig{
		DebugMode:  true,
		Categories: map[string]bool{"scaffold": false, "tracker": true},
	}
	if lc.IsCategoryEnabled("scaffold") {
		t.Error("scaffold should be disabled")
	}
	if !lc.IsCategoryEnabled("tracker") {
		t.Error("tracker should be enabled")
	}
	if !lc.IsCategoryEnabled("watch") {
		t.Error("unlisted category should default to enabled")
	}
}

// =============================================================================
// USER CONFIG TESTS
// =============================================================================

func TestFindWorkspaceRoot_PrefersGotheoryDir(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, ".gotheory"), 0o755); err != nil {
		t.Fatalf("mkdir .gotheory: %v", err)
	}
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir nested: %v", err)
	}

	origWD, _ := os.Getwd()
	if err := os.Chdir(nested); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(origWD) })

	got, err := FindWorkspaceRoot()
	if err != nil {
		t.Fatalf("FindWorkspaceRoot: %v", err)
	}
	if got != root {
		t.Fatalf("FindWorkspaceRoot=%q, want %q", got, root)
	}
}

func TestFindWorkspaceRoot_FallsBackToGoMod(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "go.mod"), []byte("module example.com/test\n\ngo 1.22\n"), 0o644); err != nil {
		t.Fatalf("write go.mod: %v", err)
	}
	nested := filepath.Join(root, "subdir")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir nested: %v", err)
	}

	origWD, _ := os.Getwd()
	if err := os.Chdir(nested); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(origWD) })

	got, err := FindWorkspaceRoot()
	if err != nil {
		t.Fatalf("FindWorkspaceRoot: %v", err)
	}
	if got != root {
		t.Fatalf("FindWorkspaceRoot=%q, want %q", got, root)
	}
}

func TestDefaultUserConfigPath_UsesWorkspaceRoot(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, ".gotheory"), 0o755); err != nil {
		t.Fatalf("mkdir .gotheory: %v", err)
	}
	nested := filepath.Join(root, "x", "y")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir nested: %v", err)
	}

	origWD, _ := os.Getwd()
	if err := os.Chdir(nested); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(origWD) })

	got := DefaultUserConfigPath()
	want := filepath.Join(root, ".gotheory", "config.json")
	if got != want {
		t.Fatalf("DefaultUserConfigPath=%q, want %q", got, want)
	}
}

func TestLoadUserConfig_SaveRoundTrip(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, ".gotheory", "config.json")

	cfg := &UserConfig{
		Theme:       "dark",
		RenderStyle: "dark",
		Logging: LoggingConfig{
			Level:      "debug",
			DebugMode:  true,
			Categories: map[string]bool{"scaffold": true, "watch": false},
		},
	}
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := LoadUserConfig(path)
	if err != nil {
		t.Fatalf("LoadUserConfig: %v", err)
	}
	if loaded.Theme != cfg.Theme || loaded.RenderStyle != cfg.RenderStyle {
		t.Fatalf("round-trip mismatch: got=%+v want=%+v", loaded, cfg)
	}
	if !loaded.Logging.DebugMode {
		t.Error("expected debug_mode to survive round trip")
	}
	if loaded.Logging.IsCategoryEnabled("watch") {
		t.Error("expected watch category to stay disabled")
	}
}

func TestLoadUserConfig_MissingFileReturnsEmpty(t *testing.T) {
	loaded, err := LoadUserConfig(filepath.Join(t.TempDir(), ".gotheory", "config.json"))
	if err != nil {
		t.Fatalf("LoadUserConfig of missing file should not error: %v", err)
	}
	if loaded.Logging.DebugMode {
		t.Error("missing file should produce zero-value config")
	}
}
