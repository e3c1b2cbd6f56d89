package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"docstyle/internal/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Analysis.MaxSep != 2 {
		t.Errorf("expected MaxSep=2, got %d", cfg.Analysis.MaxSep)
	}
	if !cfg.Analysis.UseBuiltinStopWords {
		t.Error("expected built-in stop words by default")
	}
	if cfg.Report.Format != "text" {
		t.Errorf("expected Format=text, got %s", cfg.Report.Format)
	}
	if cfg.Report.PairSamples != 5 {
		t.Errorf("expected PairSamples=5, got %d", cfg.Report.PairSamples)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoad_NonExistent(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	if err != nil {
		t.Errorf("expected no error for non-existent file, got %v", err)
	}
	if cfg == nil {
		t.Error("expected default config, got nil")
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "docstyle.yaml")

	content := `
analysis:
  max_sep: 4
  stop_words: testDocuments/stop.txt
report:
  format: json
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Analysis.MaxSep != 4 {
		t.Errorf("expected MaxSep=4, got %d", cfg.Analysis.MaxSep)
	}
	if cfg.Analysis.StopWords != "testDocuments/stop.txt" {
		t.Errorf("unexpected StopWords %q", cfg.Analysis.StopWords)
	}
	if cfg.Report.Format != "json" {
		t.Errorf("expected Format=json, got %s", cfg.Report.Format)
	}
	if cfg.Report.PairSamples != 5 {
		t.Errorf("expected unset PairSamples to keep default, got %d", cfg.Report.PairSamples)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "docstyle.yaml")
	if err := os.WriteFile(configPath, []byte("analysis: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(configPath); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadFromDir(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(tmpDir, ".docstyle"), 0755); err != nil {
		t.Fatal(err)
	}
	configPath := filepath.Join(tmpDir, ".docstyle", "config.yaml")

	content := `
matrix:
  includes:
    - "docs/*.md"
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromDir(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cfg.Matrix.Includes) != 1 || cfg.Matrix.Includes[0] != "docs/*.md" {
		t.Errorf("expected includes [docs/*.md], got %v", cfg.Matrix.Includes)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docstyle.yaml")

	cfg := DefaultConfig()
	cfg.Analysis.MaxSep = 7
	if err := cfg.Save(path); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Analysis.MaxSep != 7 {
		t.Errorf("expected MaxSep=7, got %d", loaded.Analysis.MaxSep)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		wantOK bool
	}{
		{"defaults", func(*Config) {}, true},
		{"zero max sep", func(c *Config) { c.Analysis.MaxSep = 0 }, false},
		{"negative max sep", func(c *Config) { c.Analysis.MaxSep = -3 }, false},
		{"bad format", func(c *Config) { c.Report.Format = "xml" }, false},
		{"negative samples", func(c *Config) { c.Report.PairSamples = -1 }, false},
		{"zero samples", func(c *Config) { c.Report.PairSamples = 0 }, false},
		{"one sample", func(c *Config) { c.Report.PairSamples = 1 }, true},
		{"table format", func(c *Config) { c.Report.Format = "table" }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantOK && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tc.wantOK && err == nil {
				t.Error("expected validation error")
			}
		})
	}

	cfg := DefaultConfig()
	cfg.Analysis.MaxSep = 0
	if err := cfg.Validate(); !errors.Is(err, domain.ErrInvalidSeparation) {
		t.Errorf("expected ErrInvalidSeparation, got %v", err)
	}
}
