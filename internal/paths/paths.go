// Package paths resolves the configuration directory and the data directory
// that holds the library file.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// AppName names the per-user configuration directory.
const AppName = "shelf"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "SHELF_CONFIG_DIR"
	EnvDataDir   = "SHELF_DATA_DIR"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
	getwd         func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
	getwd:         os.Getwd,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/shelf (fallback ~/.config/shelf)
// macOS:   ~/Library/Application Support/shelf
// Windows: %APPDATA%/shelf
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, AppName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", AppName), nil
	default:
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, AppName), nil
	}
}

// ResolveConfigDir returns the configuration directory following the precedence
// chain: flag > SHELF_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDataDir returns the data directory following the precedence chain:
// flag > SHELF_DATA_DIR env > configValue > current working directory.
//
// The working directory default keeps library.txt next to where shelf is run.
func ResolveDataDir(flag, configValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		return filepath.Abs(env)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	return platformDir.getwd()
}
