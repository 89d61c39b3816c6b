// Package config provides configuration management for zebras readers,
// writers and the command line tool.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/goccy/go-json"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// Config represents the global configuration for zebras operations
type Config struct {
	// CSV Configuration
	CSVDelimiter string `json:"csv_delimiter" yaml:"csv_delimiter"` // Field delimiter, a single character
	CSVHeader    bool   `json:"csv_header" yaml:"csv_header"`       // First CSV row holds column names

	// Output Configuration
	MissingText        string `json:"missing_text" yaml:"missing_text"`               // Text printed for missing values
	FloatPrecision     int    `json:"float_precision" yaml:"float_precision"`         // Decimals for printed numbers (-1 = shortest)
	ParquetCompression string `json:"parquet_compression" yaml:"parquet_compression"` // Parquet codec name

	// Debugging Configuration
	LogLevel          string `json:"log_level" yaml:"log_level"`                   // debug, info, warn or error
	VerboseLogging    bool   `json:"verbose_logging" yaml:"verbose_logging"`       // Force debug logging
	MetricsCollection bool   `json:"metrics_collection" yaml:"metrics_collection"` // Enable metrics collection
}

// Global configuration instance
var (
	globalConfig Config
	configMutex  sync.RWMutex
)

// Default configuration values
const (
	DefaultCSVDelimiter       = ","
	DefaultMissingText        = "NA"
	DefaultFloatPrecision     = -1
	DefaultParquetCompression = "snappy"
	DefaultLogLevel           = "info"

	envPrefix = "ZEBRAS_"
)

// ParquetCodecs lists the accepted parquet_compression values.
var ParquetCodecs = []string{"uncompressed", "snappy", "gzip", "brotli", "zstd", "lz4"}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Initialize global configuration with defaults
func init() {
	globalConfig = NewConfig()
}

// NewConfig creates a new configuration with default values
func NewConfig() Config {
	return Config{
		CSVDelimiter: DefaultCSVDelimiter,
		CSVHeader:    true,

		MissingText:        DefaultMissingText,
		FloatPrecision:     DefaultFloatPrecision,
		ParquetCompression: DefaultParquetCompression,

		LogLevel:          DefaultLogLevel,
		VerboseLogging:    false,
		MetricsCollection: false,
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	if utf8.RuneCountInString(c.CSVDelimiter) != 1 {
		return fmt.Errorf("CSVDelimiter must be a single character, got %q", c.CSVDelimiter)
	}
	if r := c.Delimiter(); r == '"' || r == '\n' || r == '\r' || r == utf8.RuneError {
		return fmt.Errorf("CSVDelimiter %q is not a valid delimiter", c.CSVDelimiter)
	}

	if c.FloatPrecision < -1 {
		return fmt.Errorf("FloatPrecision must be -1 or greater, got %d", c.FloatPrecision)
	}

	if !slices.Contains(ParquetCodecs, strings.ToLower(c.ParquetCompression)) {
		return fmt.Errorf("ParquetCompression must be one of %s, got %q",
			strings.Join(ParquetCodecs, ", "), c.ParquetCompression)
	}

	if _, ok := logLevels[strings.ToLower(c.LogLevel)]; !ok {
		return fmt.Errorf("LogLevel must be one of debug, info, warn, error, got %q", c.LogLevel)
	}

	return nil
}

// WithDefaults returns a new configuration with default values filled in for empty strings
func (c Config) WithDefaults() Config {
	defaults := NewConfig()

	if c.CSVDelimiter == "" {
		c.CSVDelimiter = defaults.CSVDelimiter
	}
	if c.MissingText == "" {
		c.MissingText = defaults.MissingText
	}
	if c.ParquetCompression == "" {
		c.ParquetCompression = defaults.ParquetCompression
	}
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}

	// Numeric and boolean fields are left alone: zero precision and a
	// disabled header are meaningful. The loaders start from NewConfig so
	// absent keys keep their defaults.

	return c
}

// Delimiter returns the CSV delimiter as a rune.
func (c Config) Delimiter() rune {
	r, _ := utf8.DecodeRuneInString(c.CSVDelimiter)
	return r
}

// SlogLevel maps LogLevel to a slog level. VerboseLogging forces debug.
func (c Config) SlogLevel() slog.Level {
	if c.VerboseLogging {
		return slog.LevelDebug
	}
	if level, ok := logLevels[strings.ToLower(c.LogLevel)]; ok {
		return level
	}
	return slog.LevelInfo
}

// SetGlobalConfig sets the global configuration
func SetGlobalConfig(config Config) {
	configMutex.Lock()
	defer configMutex.Unlock()
	globalConfig = config
}

// GetGlobalConfig returns the current global configuration
func GetGlobalConfig() Config {
	configMutex.RLock()
	defer configMutex.RUnlock()
	return globalConfig
}

// LoadFromJSON loads configuration from JSON data
func LoadFromJSON(data []byte) (Config, error) {
	config := NewConfig()
	if err := json.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("parsing JSON configuration: %w", err)
	}
	return config.WithDefaults(), nil
}

// LoadFromFile loads configuration from a JSON or YAML file
func LoadFromFile(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file %s: %w", filename, err)
	}

	config := NewConfig()
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".json":
		err = json.Unmarshal(data, &config)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	default:
		return Config{}, fmt.Errorf("unsupported config file format: %s", ext)
	}

	if err != nil {
		return Config{}, fmt.Errorf("parsing config file %s: %w", filename, err)
	}

	return config.WithDefaults(), nil
}

// LoadFromEnv loads configuration from ZEBRAS_* environment variables.
// Unparseable values are ignored.
func LoadFromEnv() Config {
	return NewConfig().WithEnv()
}

// WithEnv returns a copy of c with every ZEBRAS_* variable that is set
// applied on top.
func (c Config) WithEnv() Config {
	config := c

	envString("CSV_DELIMITER", &config.CSVDelimiter)
	envBool("CSV_HEADER", &config.CSVHeader)
	envString("MISSING_TEXT", &config.MissingText)
	if val := os.Getenv(envPrefix + "FLOAT_PRECISION"); val != "" {
		if parsed, err := cast.ToIntE(val); err == nil {
			config.FloatPrecision = parsed
		}
	}
	envString("PARQUET_COMPRESSION", &config.ParquetCompression)
	envString("LOG_LEVEL", &config.LogLevel)
	envBool("VERBOSE_LOGGING", &config.VerboseLogging)
	envBool("METRICS_COLLECTION", &config.MetricsCollection)

	return config
}

func envString(name string, dst *string) {
	if val := os.Getenv(envPrefix + name); val != "" {
		*dst = val
	}
}

func envBool(name string, dst *bool) {
	if val := os.Getenv(envPrefix + name); val != "" {
		if parsed, err := cast.ToBoolE(val); err == nil {
			*dst = parsed
		}
	}
}
