package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Output  OutputConfig  `yaml:"output" envconfig:"OUTPUT"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn warning error"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=stdout file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// OutputConfig controls where and how result datasets are written.
type OutputConfig struct {
	Dir      string   `yaml:"dir" envconfig:"DIR" validate:"required"`
	Formats  []string `yaml:"formats" envconfig:"FORMATS" validate:"min=1,dive,oneof=csv json xlsx"`
	ExcelBOM bool     `yaml:"excel_bom" envconfig:"EXCEL_BOM"`
}

// Load builds the configuration in three layers: built-in defaults, then
// the YAML file at path (skipped when path is empty and no file exists in
// a common location), then environment overrides with the COMPARE_ prefix.
// Later layers win. The merged result is validated before being returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	// Without default tags envconfig only touches fields whose variable is
	// actually set, so env wins over both file and defaults.
	if err := envconfig.Process("COMPARE", cfg); err != nil {
		return nil, fmt.Errorf("failed to apply env overrides: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    "info",
			Output:   "stdout",
			FilePath: "logs/app.log",
		},
		Output: OutputConfig{
			Dir:      "output",
			Formats:  []string{"csv"},
			ExcelBOM: true,
		},
	}
}

// findConfigFile checks common locations for a config file.
func findConfigFile() string {
	locations := []string{
		"config.yaml",
		"configs/config.yaml",
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}
	return ""
}

func (c *Config) validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return err
	}
	if c.Logging.Output != "stdout" && c.Logging.FilePath == "" {
		return fmt.Errorf("logging file_path required when output is %q", c.Logging.Output)
	}
	return nil
}
