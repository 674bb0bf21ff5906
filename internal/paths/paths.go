// Package paths resolves the configuration directory and the vault
// (catalog document) directory.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultVaultDirName is the CWD-relative vault used when nothing else
// names one.
const DefaultVaultDirName = "catalog"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "BIBLIOFILE_CONFIG_DIR"
	EnvVaultDir  = "BIBLIOFILE_VAULT_DIR"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/bibliofile (fallback ~/.config/bibliofile)
// macOS:   ~/Library/Application Support/bibliofile
// Windows: %APPDATA%/bibliofile
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "bibliofile"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "bibliofile"), nil
	default:
		// macOS and Windows use os.UserConfigDir which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "bibliofile"), nil
	}
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > BIBLIOFILE_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveVaultDir returns the vault directory following the precedence
// chain: flag > config.yaml value > BIBLIOFILE_VAULT_DIR env > the
// CWD-relative default $(CWD)/catalog.
func ResolveVaultDir(flag, configYAMLValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	if env := os.Getenv(EnvVaultDir); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultVaultDirName), nil
}
