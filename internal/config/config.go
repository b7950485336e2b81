// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for schemediff.
//
// Supports both TOML and JSON configuration formats, with sensible
// defaults. Configuration file locations (in order of precedence):
//   - ~/.schemediff/config.toml
//   - ~/.schemediff/config.json
//   - Built-in defaults
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete schemediff configuration.
type Config struct {
	Scheme SchemeConfig `toml:"scheme" json:"scheme"`
	UI     UIConfig     `toml:"ui" json:"ui"`
}

// SchemeConfig contains scheme source configuration.
type SchemeConfig struct {
	// DefaultPath is the built-in scheme file used when no path is
	// given, and the baseline when one path is given.
	DefaultPath string `toml:"default_path" json:"default_path"`
}

// UIConfig contains output configuration.
type UIConfig struct {
	// Color controls colored output: "auto", "always", "never".
	// "auto" (default) follows TTY detection and NO_COLOR.
	Color string `toml:"color" json:"color"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with built-in default values.
func Default() *Config {
	defaultScheme := ""
	if dir, err := ConfigDir(); err == nil {
		defaultScheme = filepath.Join(dir, "default.icls")
	}
	return &Config{
		Scheme: SchemeConfig{DefaultPath: defaultScheme},
		UI:     UIConfig{Color: "auto"},
	}
}

// =============================================================================
// CONFIG FILE LOCATIONS
// =============================================================================

// ConfigDir returns the schemediff configuration directory.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".schemediff"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file(s).
// Tries TOML first, then JSON, and falls back to defaults.
func Load() (*Config, error) {
	cfg := Default()

	tomlPath, err := ConfigPathTOML()
	if err == nil {
		if _, statErr := os.Stat(tomlPath); statErr == nil {
			if err := LoadTOML(cfg, tomlPath); err != nil {
				return nil, fmt.Errorf("failed to load TOML config: %w", err)
			}
			if err := cfg.Validate(); err != nil {
				return nil, fmt.Errorf("invalid config: %w", err)
			}
			return cfg, nil
		}
	}

	jsonPath, err := ConfigPathJSON()
	if err == nil {
		if _, statErr := os.Stat(jsonPath); statErr == nil {
			if err := LoadJSON(cfg, jsonPath); err != nil {
				return nil, fmt.Errorf("failed to load JSON config: %w", err)
			}
			if err := cfg.Validate(); err != nil {
				return nil, fmt.Errorf("invalid config: %w", err)
			}
			return cfg, nil
		}
	}

	return cfg, nil
}

// LoadTOML loads configuration from a TOML file into cfg.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	cfg.fillDefaults()
	return nil
}

// LoadJSON loads configuration from a JSON file into cfg.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	cfg.fillDefaults()
	return nil
}

// LoadFromPath loads configuration from a specific file path with
// validation. Files ending in .json are decoded as JSON, everything
// else as TOML.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if strings.HasSuffix(path, ".json") {
		if err := LoadJSON(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load JSON config from %s: %w", path, err)
		}
	} else {
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// fillDefaults replaces zero values with built-in defaults.
func (c *Config) fillDefaults() {
	def := Default()
	if c.Scheme.DefaultPath == "" {
		c.Scheme.DefaultPath = def.Scheme.DefaultPath
	}
	if c.UI.Color == "" {
		c.UI.Color = def.UI.Color
	}
}

// Validate checks that the configuration values are usable.
func (c *Config) Validate() error {
	switch c.UI.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("ui.color must be one of auto, always, never (got: %s)", c.UI.Color)
	}
	if c.Scheme.DefaultPath == "" {
		return fmt.Errorf("scheme.default_path must not be empty")
	}
	return nil
}
