// Package config provides construction-time configuration for a
// BPlusTree/Table pair, loadable from YAML.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the tunables a caller might want to externalize rather than
// hard-code at construction time.
type Config struct {
	FanOut        int `yaml:"fan_out"`
	RowsPerBucket int `yaml:"rows_per_bucket"`
}

// DefaultConfig returns the spec's stated defaults: fan-out 20, 100 rows
// per bucket.
func DefaultConfig() *Config {
	return &Config{
		FanOut:        20,
		RowsPerBucket: 100,
	}
}

// LoadConfig reads and parses a YAML config file at configPath.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig writes config to configPath as YAML, creating parent
// directories as needed.
func SaveConfig(config *Config, configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate reports whether config's values satisfy the engine's own
// constructor preconditions (fan-out at least 4, a positive bucket size).
func (c *Config) Validate() error {
	if c.FanOut < 4 {
		return fmt.Errorf("config: fan_out must be >= 4, got %d", c.FanOut)
	}
	if c.RowsPerBucket <= 0 {
		return fmt.Errorf("config: rows_per_bucket must be positive, got %d", c.RowsPerBucket)
	}
	return nil
}
