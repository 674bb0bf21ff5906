// Config loading for the shelf CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/bibliofile/bibliofile/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"
	schemaFileExt  = "schema.yaml"

	cfgKeyVaultDir   = "vault_dir"
	cfgKeySchemaFile = "schema_file"
	cfgKeyPrefs      = "preferences"
)

// defaultConfigYAML is written to config.yaml by shelf init.
const defaultConfigYAML = `# Shelf configuration

# Catalog document directory (optional; overridable by --vault flag)
# vault_dir:

# Catalog schema file (default: schema.yaml next to this file)
# schema_file:

preferences:
  items_per_page: 25
  default_sort_column: ""
  default_sort_desc: false
  compact_mode: false
`

// loadConfig reads config.yaml from the config directory using Viper.
// A missing config.yaml is not an error: defaults apply until shelf
// init writes one.
func loadConfig(configDir string) (appConfig, error) {
	v := viper.New()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetDefault(cfgKeyPrefs+".items_per_page", types.DefaultPreferences().ItemsPerPage)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return appConfig{}, fmt.Errorf("read config: %w", err)
		}
	}

	var prefs types.Preferences
	if err := v.UnmarshalKey(cfgKeyPrefs, &prefs); err != nil {
		return appConfig{}, fmt.Errorf("parse preferences: %w", err)
	}
	if prefs.ItemsPerPage == 0 {
		prefs.ItemsPerPage = types.DefaultPreferences().ItemsPerPage
	}
	if err := prefs.Validate(); err != nil {
		return appConfig{}, fmt.Errorf("invalid preferences: %w", err)
	}

	schemaFile := v.GetString(cfgKeySchemaFile)
	if schemaFile == "" {
		schemaFile = filepath.Join(configDir, schemaFileExt)
	}

	return appConfig{
		VaultDir:   v.GetString(cfgKeyVaultDir),
		SchemaFile: schemaFile,
		Prefs:      prefs,
	}, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultFile writes content to path unless the file already exists.
func ensureDefaultFile(path, content string) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
