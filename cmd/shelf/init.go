// Init command: scaffold configuration and the vault directory.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the configuration directory, default config and schema, and the vault",
	Long: `Init creates the configuration directory with a default config.yaml
and schema.yaml, and creates the vault directory. Existing files are
left untouched, so init is safe to re-run.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	configDir, err := resolveConfigDir()
	if err != nil {
		return err
	}
	if err := ensureConfigDir(configDir); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := ensureDefaultFile(filepath.Join(configDir, configFileExt), defaultConfigYAML); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	if err := ensureDefaultFile(filepath.Join(configDir, schemaFileExt), defaultSchemaYAML); err != nil {
		return fmt.Errorf("writing default schema: %w", err)
	}
	if err := os.MkdirAll(cfg.VaultDir, 0o755); err != nil {
		return fmt.Errorf("creating vault directory: %w", err)
	}

	fmt.Printf("config:  %s\n", configDir)
	fmt.Printf("schema:  %s\n", filepath.Join(configDir, schemaFileExt))
	fmt.Printf("vault:   %s\n", cfg.VaultDir)
	return nil
}
