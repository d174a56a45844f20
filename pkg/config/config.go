// Package config provides the configuration system for terracell.
// Settings load from an optional YAML file with environment variable
// overrides (TERRACELL_ prefix), and every field has a working default
// so the zero configuration is usable.
package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/gisforge/terracell/pkg/errors"
)

// Config is the root configuration for the terracell tool.
type Config struct {
	// Logging controls the zap logger.
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`

	// Raster holds defaults for raster buffers and files.
	Raster RasterConfig `yaml:"raster" mapstructure:"raster"`

	// History holds settings for map history records.
	History HistoryConfig `yaml:"history" mapstructure:"history"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	// Level is the minimum level to emit (debug, info, warn, error).
	Level string `yaml:"level" mapstructure:"level"`
	// Encoding selects json or console output.
	Encoding string `yaml:"encoding" mapstructure:"encoding"`
	// Development enables colored, stack-traced output.
	Development bool `yaml:"development" mapstructure:"development"`
}

// RasterConfig holds raster defaults.
type RasterConfig struct {
	// CellType is the default cell encoding for new buffers
	// (int32, float32 or float64).
	CellType string `yaml:"cell_type" mapstructure:"cell_type"`
	// Columns is the default row width in cells.
	Columns int `yaml:"columns" mapstructure:"columns"`
}

// HistoryConfig holds history record settings.
type HistoryConfig struct {
	// Dir is where history records are read and written.
	Dir string `yaml:"dir" mapstructure:"dir"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    "info",
			Encoding: "console",
		},
		Raster: RasterConfig{
			CellType: "float64",
			Columns:  1024,
		},
		History: HistoryConfig{
			Dir: ".",
		},
	}
}

// Load reads configuration from the given YAML file, layering
// environment overrides (TERRACELL_LOGGING_LEVEL and friends) on top
// of the defaults. An empty path loads defaults and environment only.
func Load(path string) (*Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.encoding", def.Logging.Encoding)
	v.SetDefault("logging.development", def.Logging.Development)
	v.SetDefault("raster.cell_type", def.Raster.CellType)
	v.SetDefault("raster.columns", def.Raster.Columns)
	v.SetDefault("history.dir", def.History.Dir)

	v.SetEnvPrefix("TERRACELL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeConfig, "failed to read config file").
				WithDetail("path", path)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig, "failed to parse config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field-level constraints.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Raster.CellType) {
	case "int32", "float32", "float64", "cell", "fcell", "dcell":
	default:
		return errors.New(errors.ErrorTypeConfig, "invalid raster cell type").
			WithDetail("cell_type", c.Raster.CellType)
	}
	if c.Raster.Columns <= 0 {
		return errors.New(errors.ErrorTypeConfig, "raster columns must be positive").
			WithDetail("columns", c.Raster.Columns)
	}
	return nil
}

// Save writes the configuration to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeConfig, "failed to marshal config")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, errors.ErrorTypeFile, "failed to write config file").
			WithDetail("path", path)
	}
	return nil
}
