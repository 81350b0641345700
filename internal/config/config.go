package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Workbook WorkbookConfig `yaml:"workbook" envconfig:"WORKBOOK"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"console"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/pipeline.log"`
}

// WorkbookConfig contains workbook ingestion configuration
type WorkbookConfig struct {
	// DealsSheet and TeamsSheet override heuristic sheet detection when set.
	DealsSheet string `yaml:"deals_sheet" envconfig:"DEALS_SHEET"`
	TeamsSheet string `yaml:"teams_sheet" envconfig:"TEAMS_SHEET"`
}

// Load loads configuration from environment variables and an optional
// YAML config file. Environment variables take precedence over the file.
func Load(configFile string) (*Config, error) {
	var cfg Config

	// Load from environment variables first (applies defaults)
	if err := envconfig.Process("CRM", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	// Load from config file if it exists
	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			fileConfig, err := loadFromFile(configFile)
			if err != nil {
				return nil, fmt.Errorf("failed to load config from file: %w", err)
			}
			cfg = mergeConfigs(*fileConfig, cfg)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeConfigs merges file config with env config. File values fill in
// fields the environment left at their defaults or empty.
func mergeConfigs(fileConfig, envConfig Config) Config {
	if os.Getenv("CRM_LOGGING_LEVEL") == "" && fileConfig.Logging.Level != "" {
		envConfig.Logging.Level = fileConfig.Logging.Level
	}
	if os.Getenv("CRM_LOGGING_FORMAT") == "" && fileConfig.Logging.Format != "" {
		envConfig.Logging.Format = fileConfig.Logging.Format
	}
	if os.Getenv("CRM_LOGGING_OUTPUT") == "" && fileConfig.Logging.Output != "" {
		envConfig.Logging.Output = fileConfig.Logging.Output
	}
	if os.Getenv("CRM_LOGGING_FILE_PATH") == "" && fileConfig.Logging.FilePath != "" {
		envConfig.Logging.FilePath = fileConfig.Logging.FilePath
	}
	if envConfig.Workbook.DealsSheet == "" {
		envConfig.Workbook.DealsSheet = fileConfig.Workbook.DealsSheet
	}
	if envConfig.Workbook.TeamsSheet == "" {
		envConfig.Workbook.TeamsSheet = fileConfig.Workbook.TeamsSheet
	}

	return envConfig
}

// validate checks the configuration for invalid values
func (c *Config) validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format: %s", c.Logging.Format)
	}

	return nil
}
