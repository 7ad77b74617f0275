// Package config loads project-level settings for the assertkit CLI.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the assertkit configuration
type Config struct {
	Reporter string   `yaml:"reporter,omitempty"` // console, json, junit or tap
	Tags     []string `yaml:"tags,omitempty"`
	Bail     *bool    `yaml:"bail,omitempty"`
	Verbose  *bool    `yaml:"verbose,omitempty"`
	NoColor  *bool    `yaml:"noColor,omitempty"`

	// History is the path of the SQLite run history. Empty disables
	// recording.
	History string `yaml:"history,omitempty"`

	// Probe settings used by `assertkit run --repeat`.
	Repeat int     `yaml:"repeat,omitempty"`
	Rate   float64 `yaml:"rate,omitempty"`
}

// BoolPtr returns a pointer to a bool value
func BoolPtr(b bool) *bool {
	return &b
}

// getBool returns the value of a bool pointer, or the default if nil
func getBool(b *bool, defaultVal bool) bool {
	if b == nil {
		return defaultVal
	}
	return *b
}

// GetBail returns the bail setting, defaulting to false
func (c *Config) GetBail() bool {
	return getBool(c.Bail, false)
}

// GetVerbose returns the verbose setting, defaulting to false
func (c *Config) GetVerbose() bool {
	return getBool(c.Verbose, false)
}

// GetNoColor returns the no color setting, defaulting to false
func (c *Config) GetNoColor() bool {
	return getBool(c.NoColor, false)
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Reporter: "console",
	}
}

// ConfigFilenames contains the possible config file names
var ConfigFilenames = []string{
	".assertkit.yaml",
	".assertkit.yml",
	"assertkit.yaml",
	"assertkit.yml",
}

// LoadConfig loads configuration from the specified path or searches
// the current directory for one of ConfigFilenames.
func LoadConfig(path string) (*Config, error) {
	if path != "" {
		return loadConfigFromFile(path)
	}
	return FindAndLoadConfig(".")
}

// FindAndLoadConfig searches for a config file in the given directory.
// Defaults are returned when no file exists.
func FindAndLoadConfig(dir string) (*Config, error) {
	for _, filename := range ConfigFilenames {
		configPath := filepath.Join(dir, filename)
		if _, err := os.Stat(configPath); err == nil {
			return loadConfigFromFile(configPath)
		}
	}
	return DefaultConfig(), nil
}

func loadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}
	return config, nil
}

// Merge merges another config into this one, with other taking precedence
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}

	result := *c // Copy

	if other.Reporter != "" {
		result.Reporter = other.Reporter
	}
	if len(other.Tags) > 0 {
		result.Tags = other.Tags
	}
	if other.History != "" {
		result.History = other.History
	}
	if other.Repeat > 0 {
		result.Repeat = other.Repeat
	}
	if other.Rate > 0 {
		result.Rate = other.Rate
	}

	// Boolean flags - only override if explicitly set in other config
	if other.Bail != nil {
		result.Bail = other.Bail
	}
	if other.Verbose != nil {
		result.Verbose = other.Verbose
	}
	if other.NoColor != nil {
		result.NoColor = other.NoColor
	}

	return &result
}

// SaveConfig saves the configuration to a file
func (c *Config) SaveConfig(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
