package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/paveg/zebras/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_DefaultValues(t *testing.T) {
	config := config.NewConfig()

	assert.Equal(t, ",", config.CSVDelimiter)
	assert.True(t, config.CSVHeader)
	assert.Equal(t, "NA", config.MissingText)
	assert.Equal(t, -1, config.FloatPrecision)
	assert.Equal(t, "snappy", config.ParquetCompression)
	assert.Equal(t, "info", config.LogLevel)
	assert.False(t, config.VerboseLogging)
	assert.False(t, config.MetricsCollection)
	assert.NoError(t, config.Validate())
}

func TestConfig_Validation(t *testing.T) {
	valid := config.NewConfig()

	tests := []struct {
		name          string
		mutate        func(*config.Config)
		expectedError string
	}{
		{
			name:   "valid config",
			mutate: func(*config.Config) {},
		},
		{
			name:   "tab delimiter",
			mutate: func(c *config.Config) { c.CSVDelimiter = "\t" },
		},
		{
			name:          "multi character delimiter",
			mutate:        func(c *config.Config) { c.CSVDelimiter = ";;" },
			expectedError: `CSVDelimiter must be a single character, got ";;"`,
		},
		{
			name:          "quote delimiter",
			mutate:        func(c *config.Config) { c.CSVDelimiter = `"` },
			expectedError: `CSVDelimiter "\"" is not a valid delimiter`,
		},
		{
			name:          "negative precision",
			mutate:        func(c *config.Config) { c.FloatPrecision = -2 },
			expectedError: "FloatPrecision must be -1 or greater, got -2",
		},
		{
			name:          "unknown codec",
			mutate:        func(c *config.Config) { c.ParquetCompression = "lzo" },
			expectedError: `ParquetCompression must be one of uncompressed, snappy, gzip, brotli, zstd, lz4, got "lzo"`,
		},
		{
			name:          "unknown log level",
			mutate:        func(c *config.Config) { c.LogLevel = "trace" },
			expectedError: `LogLevel must be one of debug, info, warn, error, got "trace"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.expectedError == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.expectedError)
			}
		})
	}
}

func TestConfig_LoadFromJSON(t *testing.T) {
	jsonData := `{
		"csv_delimiter": ";",
		"float_precision": 2,
		"csv_header": false,
		"metrics_collection": true
	}`

	cfg, err := config.LoadFromJSON([]byte(jsonData))
	require.NoError(t, err)

	assert.Equal(t, ";", cfg.CSVDelimiter)
	assert.Equal(t, 2, cfg.FloatPrecision)
	assert.False(t, cfg.CSVHeader)
	assert.True(t, cfg.MetricsCollection)
	assert.Equal(t, "NA", cfg.MissingText) // Absent keys keep defaults

	_, err = config.LoadFromJSON([]byte("{"))
	assert.Error(t, err)
}

func TestConfig_LoadFromFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("json", func(t *testing.T) {
		path := filepath.Join(dir, "zebras.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"missing_text": "-", "verbose_logging": true}`), 0o600))

		cfg, err := config.LoadFromFile(path)
		require.NoError(t, err)
		assert.Equal(t, "-", cfg.MissingText)
		assert.True(t, cfg.VerboseLogging)
		assert.Equal(t, -1, cfg.FloatPrecision)
	})

	t.Run("yaml", func(t *testing.T) {
		path := filepath.Join(dir, "zebras.yaml")
		yamlData := "csv_delimiter: \"|\"\nfloat_precision: 0\nlog_level: debug\n"
		require.NoError(t, os.WriteFile(path, []byte(yamlData), 0o600))

		cfg, err := config.LoadFromFile(path)
		require.NoError(t, err)
		assert.Equal(t, "|", cfg.CSVDelimiter)
		assert.Equal(t, 0, cfg.FloatPrecision)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.True(t, cfg.CSVHeader)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := filepath.Join(dir, "zebras.toml")
		require.NoError(t, os.WriteFile(path, []byte("x = 1"), 0o600))

		_, err := config.LoadFromFile(path)
		assert.EqualError(t, err, "unsupported config file format: .toml")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.LoadFromFile(filepath.Join(dir, "absent.json"))
		assert.Error(t, err)
	})
}

func TestConfig_LoadFromEnv(t *testing.T) {
	t.Setenv("ZEBRAS_CSV_DELIMITER", "\t")
	t.Setenv("ZEBRAS_CSV_HEADER", "false")
	t.Setenv("ZEBRAS_FLOAT_PRECISION", "3")
	t.Setenv("ZEBRAS_METRICS_COLLECTION", "true")
	t.Setenv("ZEBRAS_VERBOSE_LOGGING", "not-a-bool")

	config := config.LoadFromEnv()

	assert.Equal(t, "\t", config.CSVDelimiter)
	assert.False(t, config.CSVHeader)
	assert.Equal(t, 3, config.FloatPrecision)
	assert.True(t, config.MetricsCollection)
	assert.False(t, config.VerboseLogging)
}

func TestConfig_WithEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zebras.yaml")
	require.NoError(t, os.WriteFile(path, []byte("missing_text: \"?\"\nlog_level: warn\n"), 0o600))
	t.Setenv("ZEBRAS_LOG_LEVEL", "debug")

	cfg, err := config.LoadFromFile(path)
	require.NoError(t, err)
	cfg = cfg.WithEnv()

	assert.Equal(t, "?", cfg.MissingText)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestConfig_WithDefaults(t *testing.T) {
	config := config.Config{
		MissingText: "?",
		// Other fields left as zero values
	}

	configWithDefaults := config.WithDefaults()

	assert.Equal(t, "?", configWithDefaults.MissingText) // Should preserve set value
	assert.Equal(t, ",", configWithDefaults.CSVDelimiter)
	assert.Equal(t, "snappy", configWithDefaults.ParquetCompression)
	assert.Equal(t, 0, configWithDefaults.FloatPrecision) // Zero value, would need to be set explicitly
	assert.False(t, configWithDefaults.CSVHeader)
}

func TestConfig_SlogLevel(t *testing.T) {
	cfg := config.NewConfig()
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())

	cfg.LogLevel = "WARN"
	assert.Equal(t, slog.LevelWarn, cfg.SlogLevel())

	cfg.VerboseLogging = true
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestConfig_Delimiter(t *testing.T) {
	cfg := config.NewConfig()
	assert.Equal(t, ',', cfg.Delimiter())

	cfg.CSVDelimiter = "\t"
	assert.Equal(t, '\t', cfg.Delimiter())
}

func TestGlobalConfig_SetAndGet(t *testing.T) {
	originalConfig := config.GetGlobalConfig()
	defer config.SetGlobalConfig(originalConfig)

	newConfig := config.NewConfig()
	newConfig.MissingText = "null"

	config.SetGlobalConfig(newConfig)
	retrievedConfig := config.GetGlobalConfig()

	assert.Equal(t, "null", retrievedConfig.MissingText)
}
