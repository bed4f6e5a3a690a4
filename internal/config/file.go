// Package config provides configuration helpers and config file parsing.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
)

// FileConfig represents the config file.
type FileConfig struct {
	Chart ChartConfig `toml:"chart" yaml:"chart"`
}

// ChartConfig maps chart-related settings. Nil fields were not set.
type ChartConfig struct {
	Mode        *string `toml:"mode"          yaml:"mode"`
	Sort        *string `toml:"sort"          yaml:"sort"`
	Reverse     *bool   `toml:"reverse"       yaml:"reverse"`
	Numeric     *bool   `toml:"numeric"       yaml:"numeric"`
	Percentage  *bool   `toml:"percentage"    yaml:"percentage"`
	Lines       *int    `toml:"lines"         yaml:"lines"`
	MaxKeyWidth *int    `toml:"max-key-width" yaml:"max-key-width"`
	Dot         *string `toml:"dot"           yaml:"dot"`
	Encoding    *string `toml:"encoding"      yaml:"encoding"`
	Color       *string `toml:"color"         yaml:"color"`
	BarColor    *string `toml:"bar-color"     yaml:"bar-color"`
}

// LoadConfig reads a TOML or YAML config from the given path, chosen by file
// extension. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return FileConfig{}, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
		}
	default:
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
		}
	}
	return cfg, nil
}
