package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dlcarv/keycomp/internal/rootmap"
)

// Display modes for rendering differences.
const (
	DisplayGrouped = "grouped"
	DisplayFull    = "full"
	DisplayBoth    = "both"
)

// Config represents the complete configuration for keycomp
type Config struct {
	// SamplesDir is the directory holding the JSON documents to compare.
	// Empty means "./samples" resolved at runtime.
	SamplesDir string `yaml:"samples_dir"`
	// Display selects the default view: grouped, full, or both.
	Display string `yaml:"display"`
	// NoColor disables colored output.
	NoColor bool `yaml:"no_color"`
	// RootMap holds extra legacy-root rename entries. They are merged
	// over the built-in table and win on conflict.
	RootMap map[string]string `yaml:"root_map"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Display: DisplayGrouped,
		RootMap: make(map[string]string),
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults
	cfg := NewConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	switch cfg.Display {
	case DisplayGrouped, DisplayFull, DisplayBoth:
	default:
		return nil, fmt.Errorf("invalid display mode %q: must be %s, %s or %s",
			cfg.Display, DisplayGrouped, DisplayFull, DisplayBoth)
	}

	return cfg, nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".keycomp.yml", ".keycomp.yaml", "keycomp.yml", "keycomp.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Search up the directory tree
	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return ""
}

// Table returns the rename table in effect: the built-in legacy mapping
// with any configured entries merged over it.
func (c *Config) Table() rootmap.Table {
	table := make(rootmap.Table, len(rootmap.DefaultTable)+len(c.RootMap))
	for old, current := range rootmap.DefaultTable {
		table[old] = current
	}
	for old, current := range c.RootMap {
		table[old] = current
	}
	return table
}
