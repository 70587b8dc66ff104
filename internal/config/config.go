package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all gotheory configuration.
type Config struct {
	// Core settings
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Curriculum output root
	Root string `yaml:"root"`

	// Levels to generate (basic, intermediate, advanced)
	Levels []string `yaml:"levels"`

	// Generation settings
	Generate GenerateConfig `yaml:"generate"`

	// Manifest database
	Manifest ManifestConfig `yaml:"manifest"`

	// Terminal rendering
	Render RenderConfig `yaml:"render"`

	// Filesystem watcher
	Watch WatchConfig `yaml:"watch"`

	// Content verification
	Verify VerifyConfig `yaml:"verify"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// GenerateConfig configures the scaffold engine.
type GenerateConfig struct {
	Jobs  int  `yaml:"jobs"`  // Concurrent file writers
	Force bool `yaml:"force"` // Overwrite existing files
}

// ManifestConfig configures the SQLite generation manifest.
type ManifestConfig struct {
	Path    string `yaml:"path"`
	Enabled bool   `yaml:"enabled"`
}

// RenderConfig configures terminal markdown rendering.
type RenderConfig struct {
	Width int    `yaml:"width"` // Word wrap column
	Style string `yaml:"style"` // auto, dark, light, notty
}

// WatchConfig configures the filesystem watcher.
type WatchConfig struct {
	Debounce string `yaml:"debounce"` // Settle window for burst events
}

// VerifyConfig configures content verification.
type VerifyConfig struct {
	Timeout     string `yaml:"timeout"`      // Per-example interpreter timeout
	RunExamples bool   `yaml:"run_examples"` // Execute examples, not just parse them
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level      string          `yaml:"level" json:"level,omitempty"`           // debug, info, warn, error
	Format     string          `yaml:"format" json:"format,omitempty"`         // json, text
	File       string          `yaml:"file" json:"file,omitempty"`             // legacy single file
	DebugMode  bool            `yaml:"debug_mode" json:"debug_mode,omitempty"` // Master toggle - false = no logging (production)
	Categories map[string]bool `yaml:"categories" json:"categories,omitempty"` // Per-category toggles
}

// IsCategoryEnabled returns whether logging is enabled for a category.
// Returns false if debug_mode is false (production mode).
// Returns true if debug_mode is true and category is enabled (or not specified).
func (c *LoggingConfig) IsCategoryEnabled(category string) bool {
	if !c.DebugMode {
		return false
	}
	if c.Categories == nil {
		return true // All enabled by default in debug mode
	}
	enabled, exists := c.Categories[category]
	if !exists {
		return true // Enable by default if not specified
	}
	return enabled
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "gotheory",
		Version: "1.0.0",

		Root:   ".",
		Levels: []string{"basic", "intermediate", "advanced"},

		Generate: GenerateConfig{
			Jobs:  4,
			Force: false,
		},

		Manifest: ManifestConfig{
			Path:    filepath.Join(".gotheory", "manifest.db"),
			Enabled: true,
		},

		Render: RenderConfig{
			Width: 80,
			Style: "auto",
		},

		Watch: WatchConfig{
			Debounce: "500ms",
		},

		Verify: VerifyConfig{
			Timeout:     "10s",
			RunExamples: true,
		},

		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			File:   "gotheory.log",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return defaults if config file doesn't exist
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Override with environment variables
	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if root := os.Getenv("GOTHEORY_ROOT"); root != "" {
		c.Root = root
	}
	if path := os.Getenv("GOTHEORY_DB"); path != "" {
		c.Manifest.Path = path
	}
	if jobs := os.Getenv("GOTHEORY_JOBS"); jobs != "" {
		if n, err := strconv.Atoi(jobs); err == nil && n > 0 {
			c.Generate.Jobs = n
		}
	}
	if style := os.Getenv("GOTHEORY_STYLE"); style != "" {
		c.Render.Style = style
	}
}

// GetWatchDebounce returns the watcher debounce window as a duration.
func (c *Config) GetWatchDebounce() time.Duration {
	d, err := time.ParseDuration(c.Watch.Debounce)
	if err != nil {
		return 500 * time.Millisecond
	}
	return d
}

// GetVerifyTimeout returns the per-example verification timeout as a duration.
func (c *Config) GetVerifyTimeout() time.Duration {
	d, err := time.ParseDuration(c.Verify.Timeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}

// ValidLevels lists all supported curriculum levels.
var ValidLevels = []string{"basic", "intermediate", "advanced"}

// ValidStyles lists all supported render styles.
var ValidStyles = []string{"auto", "dark", "light", "notty"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Root == "" {
		return fmt.Errorf("curriculum root not configured")
	}

	if len(c.Levels) == 0 {
		return fmt.Errorf("no levels configured (valid: %v)", ValidLevels)
	}
	for _, level := range c.Levels {
		valid := false
		for _, v := range ValidLevels {
			if level == v {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("invalid level: %s (valid: %v)", level, ValidLevels)
		}
	}

	if c.Generate.Jobs < 1 {
		return fmt.Errorf("generate.jobs must be at least 1, got %d", c.Generate.Jobs)
	}

	if c.Render.Width < 20 {
		return fmt.Errorf("render.width must be at least 20, got %d", c.Render.Width)
	}

	validStyle := false
	for _, s := range ValidStyles {
		if c.Render.Style == s {
			validStyle = true
			break
		}
	}
	if !validStyle {
		return fmt.Errorf("invalid render style: %s (valid: %v)", c.Render.Style, ValidStyles)
	}

	return nil
}
