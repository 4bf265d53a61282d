package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	FormatLatex = "latex"
	FormatText  = "text"
)

// Config holds the per-run settings. It is read once at startup; nothing
// reloads it between input lines.
type Config struct {
	// Steps selects the all-steps table; false renders only the final column.
	Steps bool `yaml:"steps"`
	// Format is either "latex" or "text".
	Format string `yaml:"format"`
	// MaxVariables caps the distinct variables per expression. Tables grow
	// as 2^n rows, so this is the only thing standing between a typo and an
	// unbounded render.
	MaxVariables int `yaml:"max-variables"`
	// Prompt is printed before each line when running interactively.
	Prompt string `yaml:"prompt"`

	Path string `yaml:"-"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Steps:        true,
		Format:       FormatLatex,
		MaxVariables: 24,
		Prompt:       ">> ",
	}
}

// LoadConfig reads a config file from the given path. A missing file is
// reported with an error satisfying os.IsNotExist so callers can fall back
// to DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	config.Path = path
	if err := yaml.Unmarshal(content, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return config, nil
}

// Validate checks values a yaml decode can't.
func (c *Config) Validate() error {
	if c.Format != FormatLatex && c.Format != FormatText {
		return fmt.Errorf("unknown format '%s', expected '%s' or '%s'", c.Format, FormatLatex, FormatText)
	}
	if c.MaxVariables < 1 {
		return fmt.Errorf("max-variables must be at least 1, got %d", c.MaxVariables)
	}
	return nil
}

// Write persists the config to its Path.
func (c *Config) Write() error {
	absPath, err := filepath.Abs(c.Path)
	if err != nil {
		// only used to make the file easier to find, best effort
		absPath = c.Path
	}

	content, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(absPath, content, 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", absPath, err)
	}

	return nil
}
