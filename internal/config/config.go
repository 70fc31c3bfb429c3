// Package config provides configuration management for the cleaning pipeline.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingInputDir          = errors.New("pipeline.input_dir is required")
	ErrMissingOutputDir         = errors.New("pipeline.output_dir is required")
	ErrNoDatasets               = errors.New("at least one dataset is required")
	ErrNoEnabledDatasets        = errors.New("at least one dataset must be enabled")
	ErrDatasetMissingName       = errors.New("dataset name is required")
	ErrDatasetMissingInputFile  = errors.New("dataset input_file is required")
	ErrDatasetMissingOutputFile = errors.New("dataset output_file is required")
	ErrInvalidHashLength        = errors.New("anonymize.hash_length must be between 1 and 64")
	ErrInvalidLogLevel          = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrInvalidPeriod            = errors.New("metrics.period must be one of: day, week, month, year")
	ErrInvalidVelocityWindow    = errors.New("metrics.velocity_window_days must be at least 1")
)

// Config represents the complete pipeline configuration.
type Config struct {
	Pipeline PipelineConfig `yaml:"pipeline"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// PipelineConfig contains cleaning-pipeline settings.
type PipelineConfig struct {
	InputDir    string          `yaml:"input_dir"`
	OutputDir   string          `yaml:"output_dir"`
	ReportDir   string          `yaml:"report_dir"`
	SkipMissing bool            `yaml:"skip_missing"`
	Datasets    []DatasetConfig `yaml:"datasets"`
	Anonymize   AnonymizeConfig `yaml:"anonymize"`
	Logging     LoggingConfig   `yaml:"logging"`
}

// DatasetConfig describes one raw export to clean.
type DatasetConfig struct {
	Name        string `yaml:"name"`
	InputFile   string `yaml:"input_file"`
	OutputFile  string `yaml:"output_file"`
	Description string `yaml:"description"`
	Enabled     bool   `yaml:"enabled"`
}

// AnonymizeConfig controls PII hashing.
type AnonymizeConfig struct {
	// HashLength is the hex-prefix length of anonymized tokens. Short
	// prefixes keep output readable but raise collision odds past a few
	// tens of thousands of distinct values.
	HashLength int `yaml:"hash_length"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// MetricsConfig contains settings for the metrics calculator.
type MetricsConfig struct {
	// Owner is the account owner's display name as it appears in the
	// message export's from/to columns.
	Owner              string `yaml:"owner"`
	Period             string `yaml:"period"`
	VelocityWindowDays int    `yaml:"velocity_window_days"`
}

// DefaultConfig returns the standard six-dataset pipeline configuration.
func DefaultConfig() *Config {
	return &Config{
		Pipeline: PipelineConfig{
			InputDir:  "data/raw",
			OutputDir: "data/cleaned",
			ReportDir: "outputs",
			Datasets: []DatasetConfig{
				{Name: "invitations", InputFile: "Invitations.csv", OutputFile: "invitations_cleaned.csv", Description: "Top of funnel - connection requests", Enabled: true},
				{Name: "connections", InputFile: "Connections.csv", OutputFile: "connections_cleaned.csv", Description: "Network growth - accepted connections", Enabled: true},
				{Name: "messages", InputFile: "messages.csv", OutputFile: "messages_cleaned.csv", Description: "Mid funnel - direct messaging conversations", Enabled: true},
				{Name: "guide_messages", InputFile: "guide_messages.csv", OutputFile: "guide_messages_cleaned.csv", Description: "Platform engagement - guided messages", Enabled: true},
				{Name: "learning_messages", InputFile: "learning_coach_messages.csv", OutputFile: "learning_messages_cleaned.csv", Description: "Learning engagement - coach interactions", Enabled: true},
				{Name: "comments", InputFile: "Comments.csv", OutputFile: "comments_cleaned.csv", Description: "Engagement layer - public comments", Enabled: true},
			},
			Anonymize: AnonymizeConfig{HashLength: 8},
			Logging:   LoggingConfig{Level: "info"},
		},
		Metrics: MetricsConfig{
			Period:             "month",
			VelocityWindowDays: 30,
		},
	}
}

// LoadConfig loads configuration from YAML file.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// SaveConfig saves configuration to YAML file.
func (c *Config) SaveConfig(filepath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func (c *Config) applyDefaults() {
	if c.Pipeline.ReportDir == "" {
		c.Pipeline.ReportDir = "outputs"
	}

	if c.Pipeline.Anonymize.HashLength == 0 {
		c.Pipeline.Anonymize.HashLength = 8
	}

	if c.Pipeline.Logging.Level == "" {
		c.Pipeline.Logging.Level = "info"
	}

	if c.Metrics.Period == "" {
		c.Metrics.Period = "month"
	}

	if c.Metrics.VelocityWindowDays == 0 {
		c.Metrics.VelocityWindowDays = 30
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Pipeline.InputDir == "" {
		return ErrMissingInputDir
	}

	if c.Pipeline.OutputDir == "" {
		return ErrMissingOutputDir
	}

	if len(c.Pipeline.Datasets) == 0 {
		return ErrNoDatasets
	}

	enabledCount := 0

	for i, ds := range c.Pipeline.Datasets {
		if ds.Name == "" {
			return fmt.Errorf("%w: dataset[%d]", ErrDatasetMissingName, i)
		}

		if ds.InputFile == "" {
			return fmt.Errorf("%w: dataset[%d]", ErrDatasetMissingInputFile, i)
		}

		if ds.OutputFile == "" {
			return fmt.Errorf("%w: dataset[%d]", ErrDatasetMissingOutputFile, i)
		}

		if ds.Enabled {
			enabledCount++
		}
	}

	if enabledCount == 0 {
		return ErrNoEnabledDatasets
	}

	if c.Pipeline.Anonymize.HashLength < 1 || c.Pipeline.Anonymize.HashLength > 64 {
		return ErrInvalidHashLength
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Pipeline.Logging.Level] {
		return ErrInvalidLogLevel
	}

	validPeriods := map[string]bool{"day": true, "week": true, "month": true, "year": true}
	if !validPeriods[c.Metrics.Period] {
		return ErrInvalidPeriod
	}

	if c.Metrics.VelocityWindowDays < 1 {
		return ErrInvalidVelocityWindow
	}

	return nil
}

// GetEnabledDatasets returns only enabled datasets.
func (c *Config) GetEnabledDatasets() []DatasetConfig {
	var enabled []DatasetConfig

	for _, ds := range c.Pipeline.Datasets {
		if ds.Enabled {
			enabled = append(enabled, ds)
		}
	}

	return enabled
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Datasets: %d, InputDir: %s, OutputDir: %s, SkipMissing: %t}",
		len(c.Pipeline.Datasets),
		c.Pipeline.InputDir,
		c.Pipeline.OutputDir,
		c.Pipeline.SkipMissing,
	)
}
