// Package config loads and validates the explorer configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the main configuration, read from TOML.
type Config struct {
	// Theme names a palette: mocha, latte, nord, plain, or auto.
	Theme string `toml:"theme"`

	Table   TableConfig   `toml:"table"`
	Binary  BinaryConfig  `toml:"binary"`
	Preview PreviewConfig `toml:"preview"`
}

// TableConfig tunes the record view.
type TableConfig struct {
	// MaxColumnWidth caps a single column; 0 means use the width tier's cap.
	MaxColumnWidth int `toml:"max_column_width"`
	// ShowIndex adds a row-number gutter to row-oriented tables.
	ShowIndex bool `toml:"show_index"`
	// Padding is the space between columns.
	Padding int `toml:"padding"`
	// AbbreviationLimit caps inline cell rendering, in runes.
	AbbreviationLimit int `toml:"abbreviation_limit"`
}

// BinaryConfig tunes the hex view.
type BinaryConfig struct {
	// BytesPerLine must be 8, 16, or 32.
	BytesPerLine int `toml:"bytes_per_line"`
}

// PreviewConfig tunes the text preview view.
type PreviewConfig struct {
	Wrap bool `toml:"wrap"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Theme: "auto",
		Table: TableConfig{
			ShowIndex:         true,
			Padding:           2,
			AbbreviationLimit: 100,
		},
		Binary: BinaryConfig{
			BytesPerLine: 16,
		},
		Preview: PreviewConfig{
			Wrap: true,
		},
	}
}

// DefaultPath returns the config file location, honoring XDG_CONFIG_HOME.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "peek", "config.toml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "peek", "config.toml")
}

// Load reads the config at path, or the default path when empty. A missing
// file is not an error; the defaults are returned.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if theme := os.Getenv("PEEK_THEME"); theme != "" {
		cfg.Theme = theme
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the views cannot render with.
func (c *Config) Validate() error {
	switch c.Binary.BytesPerLine {
	case 8, 16, 32:
	default:
		return fmt.Errorf("binary.bytes_per_line must be 8, 16, or 32 (got %d)", c.Binary.BytesPerLine)
	}
	if c.Table.Padding < 0 {
		return fmt.Errorf("table.padding must not be negative (got %d)", c.Table.Padding)
	}
	if c.Table.MaxColumnWidth < 0 {
		return fmt.Errorf("table.max_column_width must not be negative (got %d)", c.Table.MaxColumnWidth)
	}
	if c.Table.AbbreviationLimit < 0 {
		return fmt.Errorf("table.abbreviation_limit must not be negative (got %d)", c.Table.AbbreviationLimit)
	}
	return nil
}
