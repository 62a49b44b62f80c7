package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "default_points: 2\ninput_box_cols: 60\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DefaultPoints != 2 || cfg.InputBoxCols != 60 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.InputBoxRows != Default().InputBoxRows {
		t.Errorf("unset field changed: %+v", cfg)
	}
}

func TestLoad_NormalizesBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "default_points: -3\nmax_file_bytes: 0\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DefaultPoints != Default().DefaultPoints {
		t.Errorf("DefaultPoints = %d, want normalized default", cfg.DefaultPoints)
	}
	if cfg.MaxFileBytes != Default().MaxFileBytes {
		t.Errorf("MaxFileBytes = %d, want normalized default", cfg.MaxFileBytes)
	}
}

func TestLoad_BadYAMLIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(":\n  - not yaml"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected a parse error")
	}
}

func TestParserOptions_RoundTrip(t *testing.T) {
	cfg := Default()
	opts := cfg.ParserOptions()
	if opts.DefaultPoints != cfg.DefaultPoints || opts.InputBoxCols != cfg.InputBoxCols {
		t.Errorf("options = %+v, config = %+v", opts, cfg)
	}
}
