package config

import (
	"fmt"

	"github.com/soltixdb/tsread/internal/types"
)

// DefaultDynamicDataSize is the default number of elements per column chunk
const DefaultDynamicDataSize = 1000

// Config represents the complete read-path configuration
type Config struct {
	Read    ReadConfig    `mapstructure:"read"`
	Logging LoggingConfig `mapstructure:"logging"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// ReadConfig controls how decoded columns are buffered
type ReadConfig struct {
	// DynamicDataSize is the chunk capacity of every column buffer built from this config.
	// It is read once per buffer; changing it does not affect existing buffers.
	DynamicDataSize int    `mapstructure:"dynamic_data_size"`
	RecordTime      bool   `mapstructure:"record_time"` // Keep a time track next to the values
	DefaultDataType string `mapstructure:"default_data_type"`
}

// MetricsConfig represents prometheus metrics configuration
type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Namespace string `mapstructure:"namespace"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level      string `mapstructure:"level"`       // debug, info, warn, error
	Format     string `mapstructure:"format"`      // json, console
	OutputPath string `mapstructure:"output_path"` // stdout, stderr, file path
	TimeFormat string `mapstructure:"time_format"` // RFC3339, Unix, Kitchen
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.Read.Validate(); err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	if err := c.Metrics.Validate(); err != nil {
		return fmt.Errorf("metrics config: %w", err)
	}

	return nil
}

// Validate validates read configuration
func (c *ReadConfig) Validate() error {
	if c.DynamicDataSize <= 0 {
		return fmt.Errorf("read.dynamic_data_size must be positive, got %d", c.DynamicDataSize)
	}

	if c.DefaultDataType != "" {
		if _, err := types.ParseDataType(c.DefaultDataType); err != nil {
			return fmt.Errorf("read.default_data_type: %w", err)
		}
	}

	return nil
}

// Validate validates metrics configuration
func (c *MetricsConfig) Validate() error {
	if c.Enabled && c.Namespace == "" {
		return fmt.Errorf("metrics.namespace is required when metrics are enabled")
	}
	return nil
}

// Validate validates logging configuration
func (c *LoggingConfig) Validate() error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLevels[c.Level] {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}

	validFormats := map[string]bool{
		"json":    true,
		"console": true,
	}

	if !validFormats[c.Format] {
		return fmt.Errorf("logging.format must be 'json' or 'console'")
	}

	return nil
}
