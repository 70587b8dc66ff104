package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvOverrides_Root(t *testing.T) {
	t.Run("GOTHEORY_ROOT overrides configured root", func(t *testing.T) {
		t.Setenv("GOTHEORY_ROOT", "/srv/curriculum")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "/srv/curriculum", cfg.Root)
	})

	t.Run("empty GOTHEORY_ROOT leaves root alone", func(t *testing.T) {
		t.Setenv("GOTHEORY_ROOT", "")

		cfg := DefaultConfig()
		cfg.Root = "/configured"
		cfg.applyEnvOverrides()

		assert.Equal(t, "/configured", cfg.Root)
	})
}

func TestEnvOverrides_Manifest(t *testing.T) {
	t.Setenv("GOTHEORY_DB", "/var/lib/gotheory/manifest.db")

	cfg := DefaultConfig()
	cfg.applyEnvOverrides()

	assert.Equal(t, "/var/lib/gotheory/manifest.db", cfg.Manifest.Path)
}

func TestEnvOverrides_Jobs(t *testing.T) {
	t.Run("valid value overrides", func(t *testing.T) {
		t.Setenv("GOTHEORY_JOBS", "16")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, 16, cfg.Generate.Jobs)
	})

	t.Run("non-numeric value is ignored", func(t *testing.T) {
		t.Setenv("GOTHEORY_JOBS", "many")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, 4, cfg.Generate.Jobs)
	})

	t.Run("zero and negative values are ignored", func(t *testing.T) {
		t.Setenv("GOTHEORY_JOBS", "0")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, 4, cfg.Generate.Jobs)
	})
}

func TestEnvOverrides_Style(t *testing.T) {
	t.Setenv("GOTHEORY_STYLE", "notty")

	cfg := DefaultConfig()
	cfg.applyEnvOverrides()

	assert.Equal(t, "notty", cfg.Render.Style)
}

func TestEnvOverrides_AppliedOnLoad(t *testing.T) {
	t.Setenv("GOTHEORY_ROOT", "/env/root")
	t.Setenv("GOTHEORY_JOBS", "2")

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")

	cfg := DefaultConfig()
	cfg.Root = "/file/root"
	cfg.Generate.Jobs = 9
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)

	// Env wins over the file
	assert.Equal(t, "/env/root", loaded.Root)
	assert.Equal(t, 2, loaded.Generate.Jobs)
}

func TestEnvOverrides_AppliedOnMissingFile(t *testing.T) {
	t.Setenv("GOTHEORY_STYLE", "light")

	loaded, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "light", loaded.Render.Style)
}
