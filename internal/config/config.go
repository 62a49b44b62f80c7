// Package config loads the optional quizview configuration file. Every
// field has a working default; the file only overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ignaciourbina/quizview/internal/loader"
	"github.com/ignaciourbina/quizview/internal/quizcsv"
)

// Config holds the user-tunable settings.
type Config struct {
	// MaxFileBytes is the input size ceiling enforced before parsing.
	MaxFileBytes int64 `yaml:"max_file_bytes"`

	// Parser defaults, see quizcsv.Options.
	DefaultPoints         int    `yaml:"default_points"`
	InputBoxRows          int    `yaml:"input_box_rows"`
	InputBoxCols          int    `yaml:"input_box_cols"`
	PlaceholderChoiceText string `yaml:"placeholder_choice_text"`
}

// Default returns the built-in settings.
func Default() Config {
	opts := quizcsv.DefaultOptions()
	return Config{
		MaxFileBytes:          loader.DefaultMaxSize,
		DefaultPoints:         opts.DefaultPoints,
		InputBoxRows:          opts.InputBoxRows,
		InputBoxCols:          opts.InputBoxCols,
		PlaceholderChoiceText: opts.PlaceholderChoiceText,
	}
}

// ParserOptions converts the config into parser options.
func (c Config) ParserOptions() quizcsv.Options {
	return quizcsv.Options{
		DefaultPoints:         c.DefaultPoints,
		InputBoxRows:          c.InputBoxRows,
		InputBoxCols:          c.InputBoxCols,
		PlaceholderChoiceText: c.PlaceholderChoiceText,
	}
}

// Path resolves the config file location:
// $XDG_CONFIG_HOME/quizview/config.yaml, falling back to
// ~/.config/quizview/config.yaml.
func Path() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "quizview", "config.yaml"), nil
}

// Load reads and applies the config file at path over the defaults.
// A missing file is not an error: the defaults are returned as-is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg.normalize(), nil
}

// LoadDefault loads the config from the standard location.
func LoadDefault() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), err
	}
	return Load(path)
}

// normalize replaces out-of-range values with defaults so a sparse or
// sloppy file cannot disable the parser.
func (c Config) normalize() Config {
	def := Default()
	if c.MaxFileBytes <= 0 {
		c.MaxFileBytes = def.MaxFileBytes
	}
	if c.DefaultPoints <= 0 {
		c.DefaultPoints = def.DefaultPoints
	}
	if c.InputBoxRows <= 0 {
		c.InputBoxRows = def.InputBoxRows
	}
	if c.InputBoxCols <= 0 {
		c.InputBoxCols = def.InputBoxCols
	}
	if c.PlaceholderChoiceText == "" {
		c.PlaceholderChoiceText = def.PlaceholderChoiceText
	}
	return c
}
