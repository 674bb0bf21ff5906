// Root command for the shelf CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/bibliofile/bibliofile/internal/paths"
	"github.com/bibliofile/bibliofile/pkg/bibliofile"
	"github.com/bibliofile/bibliofile/pkg/types"
)

// Global flag values.
var (
	flagConfigDir string
	flagVault     string
	flagJSON      bool
)

// appConfig holds the effective configuration for the current
// invocation, resolved once by PersistentPreRunE and passed into call
// sites from here; there is no process-wide mutable settings object
// beyond this resolved value.
type appConfig struct {
	VaultDir   string
	SchemaFile string
	Prefs      types.Preferences
}

var cfg appConfig

var rootCmd = &cobra.Command{
	Use:     "shelf",
	Short:   "Shelf browses a catalog of markdown documents through a configurable schema",
	Version: bibliofile.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" {
			return nil
		}
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}
		loaded, err := loadConfig(configDir)
		if err != nil {
			return err
		}
		cfg = loaded
		cfg.VaultDir, err = paths.ResolveVaultDir(flagVault, cfg.VaultDir)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagVault, "vault", "", "catalog document directory (default: $(CWD)/catalog)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(groupCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(fieldsCmd)
	rootCmd.AddCommand(valuesCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(exportCmd)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > BIBLIOFILE_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
