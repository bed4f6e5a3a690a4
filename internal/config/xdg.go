// Package config provides XDG path helpers.
package config

import (
	"os"
	"path/filepath"
)

const appName = "barchart"

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// DefaultConfigDir returns the directory holding barchart config files.
func DefaultConfigDir() string {
	return filepath.Join(XDGConfigHome(), appName)
}

// DefaultConfigPath returns the config file in DefaultConfigDir, resolved
// with FindConfigPath.
func DefaultConfigPath() string {
	return FindConfigPath(DefaultConfigDir())
}

// FindConfigPath returns the first existing config file in dir, preferring
// TOML over YAML. It falls back to the TOML path when none exists.
func FindConfigPath(dir string) string {
	for _, name := range []string{"config.toml", "config.yaml", "config.yml"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return filepath.Join(dir, "config.toml")
}
