package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"docstyle/internal/domain"
)

// Config holds all configuration for docstyle.
type Config struct {
	Analysis AnalysisConfig `yaml:"analysis"`
	Report   ReportConfig   `yaml:"report"`
	Matrix   MatrixConfig   `yaml:"matrix"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// AnalysisConfig holds the analysis parameters.
type AnalysisConfig struct {
	MaxSep              int    `yaml:"max_sep"`
	StopWords           string `yaml:"stop_words"`             // Stop-word file; empty uses the built-in list
	UseBuiltinStopWords bool   `yaml:"use_builtin_stop_words"` // Only consulted when StopWords is empty
	Concurrent          bool   `yaml:"concurrent"`
}

// ReportConfig holds report rendering configuration.
type ReportConfig struct {
	Format      string `yaml:"format"`       // "text", "json", "table"
	Output      string `yaml:"output"`       // empty writes to stdout
	PairSamples int    `yaml:"pair_samples"` // pairs shown at each end of the listing, at least 1
}

// MatrixConfig holds corpus selection for pairwise comparison.
type MatrixConfig struct {
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
	Env   string `yaml:"env"` // "local" or "prod"
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			MaxSep:              2,
			UseBuiltinStopWords: true,
			Concurrent:          true,
		},
		Report: ReportConfig{
			Format:      "text",
			PairSamples: 5,
		},
		Matrix: MatrixConfig{
			Includes: []string{"**/*.txt"},
			Excludes: []string{"**/.git/**", "**/vendor/**", "**/node_modules/**", "**/stop.txt"},
		},
		Logging: LoggingConfig{
			Level: "warn",
			Env:   "local",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for docstyle.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "docstyle.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".docstyle", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects settings the analysis cannot run with.
func (c *Config) Validate() error {
	if c.Analysis.MaxSep < 1 {
		return fmt.Errorf("analysis.max_sep=%d: %w", c.Analysis.MaxSep, domain.ErrInvalidSeparation)
	}
	switch c.Report.Format {
	case "text", "json", "table":
	default:
		return fmt.Errorf("report.format: unsupported value %q", c.Report.Format)
	}
	if c.Report.PairSamples < 1 {
		return fmt.Errorf("report.pair_samples must be at least 1, got %d", c.Report.PairSamples)
	}
	return nil
}
