// Package config loads editkit configuration from a YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Workspace struct {
		Root string `yaml:"root"`
	} `yaml:"workspace"`

	Tools ToolsConfig `yaml:"tools"`

	Log struct {
		Path        string `yaml:"path"`        // empty disables logging
		Development bool   `yaml:"development"` // readable encoder instead of production JSON
	} `yaml:"log"`
}

// ToolsConfig holds per-tool configuration.
type ToolsConfig struct {
	Edit EditToolConfig `yaml:"edit"`
}

// EditToolConfig configures the edit and multiedit tools.
type EditToolConfig struct {
	MaxFileSizeKB int `yaml:"max_file_size_kb"` // refuse to load files larger than this
	LockTimeoutMS int `yaml:"lock_timeout_ms"`  // how long to wait for a contended file lock
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.Tools.Edit.MaxFileSizeKB = 1024
	cfg.Tools.Edit.LockTimeoutMS = 5000
	return cfg
}

// Load reads and parses the config file at path. A missing file is not an
// error: defaults are returned so the tool works out of the box.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	// Convert workspace root to absolute path
	if cfg.Workspace.Root != "" {
		absRoot, err := filepath.Abs(cfg.Workspace.Root)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve workspace root: %w", err)
		}
		cfg.Workspace.Root = absRoot
	}

	if cfg.Tools.Edit.MaxFileSizeKB == 0 {
		cfg.Tools.Edit.MaxFileSizeKB = 1024
	}
	if cfg.Tools.Edit.LockTimeoutMS == 0 {
		cfg.Tools.Edit.LockTimeoutMS = 5000
	}

	return &cfg, nil
}
