package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"gotheory/internal/config"
	"gotheory/internal/logging"
	"gotheory/internal/tracker"
)

// Version is the tool version recorded with every manifest run.
const Version = "1.0.0"

var (
	// Global flags
	verbose    bool
	rootDir    string
	configPath string

	// Logger
	logger *zap.Logger

	// Loaded configuration
	cfg *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "gotheory",
	Short: "gotheory - Go theory curriculum generator",
	Long: `gotheory manages a complete Go learning curriculum: 20 topics from
basics and syntax through advanced patterns, three levels deep, with
C/C++ comparisons for engineers arriving from systems languages.

The lesson library is embedded in the binary. Generation writes it into
a workspace tree, records every file in a manifest, and later runs can
tell generated files apart from hand-edited ones.

Run 'gotheory generate' to write the curriculum into the current
directory, or 'gotheory browse' to read lessons in the terminal.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logger
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		cfg, err = loadConfig()
		if err != nil {
			return err
		}

		// The category file logger lives under the workspace state dir
		// and stays silent unless debug_mode is on there.
		if err := logging.Initialize(cfg.Root); err != nil {
			logger.Warn("file logging unavailable", zap.Error(err))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.CloseAll()
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "root", "r", "", "Curriculum root directory (default: config root)")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: <root>/.gotheory/config.yaml)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(initCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig resolves the config file, applies the --root override, and
// validates the result.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		base := rootDir
		if base == "" {
			base = "."
		}
		path = filepath.Join(base, ".gotheory", "config.yaml")
	}

	c, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}

	if rootDir != "" {
		c.Root = rootDir
	}
	if c.Root == "" {
		c.Root = "."
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return c, nil
}

// manifestStateDir returns the directory holding the manifest database,
// resolved against the curriculum root.
func manifestStateDir(c *config.Config) string {
	path := c.Manifest.Path
	if !filepath.IsAbs(path) {
		path = filepath.Join(c.Root, path)
	}
	return filepath.Dir(path)
}

// openManifest opens the manifest when enabled. Returns nil without
// error when the manifest is switched off.
func openManifest(c *config.Config) (*tracker.Manifest, error) {
	if !c.Manifest.Enabled {
		return nil, nil
	}
	m, err := tracker.OpenManifest(manifestStateDir(c))
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	return m, nil
}
