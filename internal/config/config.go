package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Paths    PathsConfig    `yaml:"paths" envconfig:"PATHS"`
	Pipeline PipelineConfig `yaml:"pipeline" envconfig:"PIPELINE"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"omitempty,oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" validate:"omitempty,oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"omitempty,oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// PathsConfig contains file system paths configuration
type PathsConfig struct {
	DataDir string `yaml:"data_dir" envconfig:"DATA_DIR"`
	LogsDir string `yaml:"logs_dir" envconfig:"LOGS_DIR"`
}

// PipelineConfig contains pipeline behavior configuration
type PipelineConfig struct {
	// RequiredColumns is the record-cleaner required-field set. Empty means
	// the default set {Brand Name, Price, Spec Score, Rating, Tag}.
	RequiredColumns []string `yaml:"required_columns" envconfig:"REQUIRED_COLUMNS"`
	// TopN is the row count for the top-brands-by-spec-score export.
	TopN int `yaml:"top_n" envconfig:"TOP_N" validate:"min=0"`
	// Sequential processes the launched and upcoming branches one at a time
	// instead of concurrently.
	Sequential bool `yaml:"sequential" envconfig:"SEQUENTIAL"`
}

// Load loads configuration from environment variables and an optional config file.
// Environment variables (MOBILE_ prefix) take precedence over the file; both
// layer over the built-in defaults.
func Load(configFile string) (*Config, error) {
	var cfg Config

	// Load from environment variables first
	if err := envconfig.Process("MOBILE", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	// Load from config file if it exists
	if configFile == "" {
		configFile = "config.yaml"
	}
	if _, err := os.Stat(configFile); err == nil {
		fileConfig, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = mergeConfigs(*fileConfig, cfg)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Default returns the built-in configuration without consulting the
// environment or any file.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(path string) (*Config, error) {
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

// mergeConfigs merges file config with env config, env taking precedence
func mergeConfigs(fileCfg, envCfg Config) Config {
	merged := fileCfg

	if envCfg.Logging.Level != "" {
		merged.Logging.Level = envCfg.Logging.Level
	}
	if envCfg.Logging.Format != "" {
		merged.Logging.Format = envCfg.Logging.Format
	}
	if envCfg.Logging.Output != "" {
		merged.Logging.Output = envCfg.Logging.Output
	}
	if envCfg.Logging.FilePath != "" {
		merged.Logging.FilePath = envCfg.Logging.FilePath
	}
	if envCfg.Paths.DataDir != "" {
		merged.Paths.DataDir = envCfg.Paths.DataDir
	}
	if envCfg.Paths.LogsDir != "" {
		merged.Paths.LogsDir = envCfg.Paths.LogsDir
	}
	if len(envCfg.Pipeline.RequiredColumns) > 0 {
		merged.Pipeline.RequiredColumns = envCfg.Pipeline.RequiredColumns
	}
	if envCfg.Pipeline.TopN != 0 {
		merged.Pipeline.TopN = envCfg.Pipeline.TopN
	}
	if envCfg.Pipeline.Sequential {
		merged.Pipeline.Sequential = true
	}

	return merged
}

// applyDefaults fills zero values with their documented defaults
func (c *Config) applyDefaults() {
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "json"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "console"
	}
	if c.Paths.DataDir == "" {
		c.Paths.DataDir = DefaultDataDir
	}
	if c.Paths.LogsDir == "" {
		c.Paths.LogsDir = DefaultLogsDir
	}
	if c.Logging.FilePath == "" {
		c.Logging.FilePath = filepath.Join(c.Paths.LogsDir, DefaultLogFile)
	}
	if len(c.Pipeline.RequiredColumns) == 0 {
		c.Pipeline.RequiredColumns = DefaultRequiredColumns()
	}
	if c.Pipeline.TopN == 0 {
		c.Pipeline.TopN = DefaultTopN
	}
}

// validate checks the configuration against struct-level rules
func (c *Config) validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return err
	}
	return nil
}
