// Package config provides configuration management for dtag.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/open-doc-collective/doctag/pkg/format"
	"github.com/open-doc-collective/doctag/pkg/tag"
)

// Abbreviation is one ordered name→text entry. A YAML sequence keeps the
// order the user wrote them in, which a mapping would not.
type Abbreviation struct {
	Name string `yaml:"name"`
	Text string `yaml:"text"`
}

// Config holds the dtag configuration.
type Config struct {
	Format        string         `yaml:"format,omitempty"`
	MaxDepth      int            `yaml:"max_depth,omitempty"`
	Abbreviations []Abbreviation `yaml:"abbreviations,omitempty"`
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	if _, err := format.ForName(c.Format); err != nil {
		return err
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must not be negative")
	}
	for _, a := range c.Abbreviations {
		if a.Name == "" {
			return fmt.Errorf("abbreviation name must not be empty")
		}
	}
	return nil
}

// AbbreviationTable builds the engine's abbreviation table in config order.
func (c *Config) AbbreviationTable() *tag.Abbreviations {
	abbrevs := tag.NewAbbreviations()
	for _, a := range c.Abbreviations {
		abbrevs.Add(a.Name, a.Text)
	}
	return abbrevs
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables override existing values only if set and non-empty.
func (c *Config) LoadFromEnv() {
	if f := os.Getenv("DTAG_FORMAT"); f != "" {
		c.Format = f
	}
	if d := os.Getenv("DTAG_MAX_DEPTH"); d != "" {
		if n, err := strconv.Atoi(d); err == nil {
			c.MaxDepth = n
		}
	}
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	// Try XDG config directory first
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "dtag", "config.yml")
	}

	// Fall back to ~/.config/dtag/config.yml
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".dtag", "config.yml")
	}

	return filepath.Join(home, ".config", "dtag", "config.yml")
}

// Save writes the configuration to the specified path.
func (c *Config) Save(path string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Load reads the configuration from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadWithEnv loads configuration from file and overrides with environment
// variables. A missing file is not an error: defaults plus env apply.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		cfg = &Config{}
	}

	cfg.LoadFromEnv()
	return cfg, nil
}
