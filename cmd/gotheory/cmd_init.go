package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"gotheory/cmd/gotheory/ui"
	"gotheory/internal/config"
)

// initCmd prepares the workspace state directory
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the curriculum workspace",
	Long: `Creates the .gotheory/ state directory with the default configuration.

This command:
  1. Creates .gotheory/ and its logs directory
  2. Writes the default config.yaml for editing
  3. Writes the logging gate (config.json, debug_mode off)
  4. Adds a .gitignore so local state stays out of version control

Run it once per workspace; generation works without it using defaults.`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	styles := ui.DefaultStyles()

	stateDir := filepath.Join(cfg.Root, ".gotheory")
	configFile := filepath.Join(stateDir, "config.yaml")

	if _, err := os.Stat(configFile); err == nil {
		fmt.Println("Workspace already initialized. Use 'gotheory status' to view coverage.")
		fmt.Println("To reinitialize, delete the .gotheory/ directory first.")
		return nil
	}

	dirs := []string{
		stateDir,
		filepath.Join(stateDir, "logs"), // category debug logs
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	// The config is colocated with the workspace, so the root it names
	// is always the directory above it.
	saved := *cfg
	saved.Root = "."
	if err := saved.Save(configFile); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	// The logging gate starts with debug mode off; flipping it on routes
	// category logs into .gotheory/logs/.
	gate := &config.UserConfig{
		Logging: config.LoggingConfig{
			DebugMode: false,
			Level:     "info",
		},
	}
	if err := gate.Save(filepath.Join(stateDir, "config.json")); err != nil {
		return fmt.Errorf("write logging config: %w", err)
	}

	gitignorePath := filepath.Join(stateDir, ".gitignore")
	gitignoreContent := `# gotheory local state
manifest.db
manifest.db-journal
manifest.db-wal
manifest.db-shm
logs/
*.log
`
	if err := os.WriteFile(gitignorePath, []byte(gitignoreContent), 0644); err != nil {
		return fmt.Errorf("failed to create .gitignore: %w", err)
	}

	for _, created := range []string{
		filepath.Join(stateDir, "logs") + string(os.PathSeparator),
		configFile,
		filepath.Join(stateDir, "config.json"),
		gitignorePath,
	} {
		fmt.Printf("  %s %s\n", styles.Success.Render("✓"), created)
	}

	fmt.Println("\nWorkspace initialized. Next steps:")
	fmt.Println("  gotheory generate      # write the curriculum")
	fmt.Println("  gotheory status        # check coverage")
	return nil
}
