package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault_Validates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default() does not validate: %v", err)
	}
}

func TestLoad_MissingDefaultFileFallsBack(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("PEEK_THEME", "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Binary.BytesPerLine != 16 {
		t.Errorf("BytesPerLine = %d, want default 16", cfg.Binary.BytesPerLine)
	}
}

func TestLoad_MissingExplicitFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("Load() with explicit missing path should fail")
	}
}

func TestLoad_ParsesAndFillsDefaults(t *testing.T) {
	t.Setenv("PEEK_THEME", "")
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
theme = "nord"

[table]
max_column_width = 40

[binary]
bytes_per_line = 8
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Theme != "nord" {
		t.Errorf("Theme = %q, want nord", cfg.Theme)
	}
	if cfg.Table.MaxColumnWidth != 40 {
		t.Errorf("MaxColumnWidth = %d, want 40", cfg.Table.MaxColumnWidth)
	}
	if cfg.Binary.BytesPerLine != 8 {
		t.Errorf("BytesPerLine = %d, want 8", cfg.Binary.BytesPerLine)
	}
	// Untouched section keeps defaults.
	if cfg.Table.Padding != 2 {
		t.Errorf("Padding = %d, want default 2", cfg.Table.Padding)
	}
}

func TestLoad_EnvThemeOverride(t *testing.T) {
	t.Setenv("PEEK_THEME", "latte")
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`theme = "nord"`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Theme != "latte" {
		t.Errorf("Theme = %q, want env override latte", cfg.Theme)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}, wantErr: false},
		{name: "bad bytes per line", mutate: func(c *Config) { c.Binary.BytesPerLine = 7 }, wantErr: true},
		{name: "bytes per line 32", mutate: func(c *Config) { c.Binary.BytesPerLine = 32 }, wantErr: false},
		{name: "negative padding", mutate: func(c *Config) { c.Table.Padding = -1 }, wantErr: true},
		{name: "negative column cap", mutate: func(c *Config) { c.Table.MaxColumnWidth = -5 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
