package config

import (
	"os"
	"strings"

	"tabstat/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	LogLevel string
	Table    TableConfig
	Analyze  AnalyzeConfig
}

// TableConfig drives the spreadsheet formatting pipeline
type TableConfig struct {
	InputFile       string   `yaml:"input"`
	OutputFile      string   `yaml:"output"`
	Sheet           string   `yaml:"sheet"`
	DropColumns     []string `yaml:"drop_columns"`
	PlaceColumn     string   `yaml:"place_column"`
	CurrencyColumn  string   `yaml:"currency_column"`
	PlaceExceptions []string `yaml:"place_exceptions"`
}

// AnalyzeConfig holds where the interactive analyzer writes its artifacts
type AnalyzeConfig struct {
	ExportDir    string
	ExportPrefix string
	ChartDir     string
	ChartPrefix  string
}

// Defaults mirror the layout of the spreadsheets this tool was built for
const (
	// DefaultSheet is empty: the first worksheet is read whatever its name
	DefaultSheet          = ""
	DefaultPlaceColumn    = "TRAVEL"
	DefaultCurrencyColumn = "PRICE"
	DefaultExportPrefix   = "dados_exportados"
	DefaultChartPrefix    = "analise_grafica"
)

// DefaultDropColumns are removed when TABSTAT_DROP_COLUMNS is unset
var DefaultDropColumns = []string{"TICKET"}

// DefaultPlaceExceptions are kept lower case inside place names
var DefaultPlaceExceptions = []string{"de", "da", "do", "dos", "das", "e"}

// Load reads configuration from environment variables. When TABSTAT_RULES
// names a YAML file its table rules override the environment.
func Load() (*Config, error) {
	config := &Config{
		LogLevel: getEnvOrDefault("LOG_LEVEL", "INFO"),
		Table:    *loadTableConfig(),
		Analyze:  *loadAnalyzeConfig(),
	}

	if rulesPath := os.Getenv("TABSTAT_RULES"); rulesPath != "" {
		if err := config.ApplyRulesFile(rulesPath); err != nil {
			return nil, errors.Wrap(err, "failed to load rules file")
		}
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadTableConfig() *TableConfig {
	return &TableConfig{
		InputFile:       getEnvOrDefault("TABSTAT_INPUT", ""),
		OutputFile:      getEnvOrDefault("TABSTAT_OUTPUT", ""),
		Sheet:           getEnvOrDefault("TABSTAT_SHEET", DefaultSheet),
		DropColumns:     getEnvListOrDefault("TABSTAT_DROP_COLUMNS", DefaultDropColumns),
		PlaceColumn:     getEnvOrDefault("TABSTAT_PLACE_COLUMN", DefaultPlaceColumn),
		CurrencyColumn:  getEnvOrDefault("TABSTAT_CURRENCY_COLUMN", DefaultCurrencyColumn),
		PlaceExceptions: getEnvListOrDefault("TABSTAT_PLACE_EXCEPTIONS", DefaultPlaceExceptions),
	}
}

func loadAnalyzeConfig() *AnalyzeConfig {
	return &AnalyzeConfig{
		ExportDir:    getEnvOrDefault("TABSTAT_EXPORT_DIR", "."),
		ExportPrefix: getEnvOrDefault("TABSTAT_EXPORT_PREFIX", DefaultExportPrefix),
		ChartDir:     getEnvOrDefault("TABSTAT_CHART_DIR", "."),
		ChartPrefix:  getEnvOrDefault("TABSTAT_CHART_PREFIX", DefaultChartPrefix),
	}
}

func validateConfig(config *Config) error {
	if config.Analyze.ExportPrefix == "" || config.Analyze.ChartPrefix == "" {
		return errors.ConfigInvalid("artifact prefixes must not be empty")
	}
	return nil
}

// ValidateFiles checks the input and output paths needed by the formatting pipeline
func (c *TableConfig) ValidateFiles() error {
	if c.InputFile == "" {
		return errors.ConfigInvalid("input file is required (TABSTAT_INPUT or --input)")
	}
	if c.OutputFile == "" {
		return errors.ConfigInvalid("output file is required (TABSTAT_OUTPUT or --output)")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvListOrDefault splits a comma-separated variable. An explicitly empty
// value ("") is not distinguishable from unset and yields the default.
func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return append([]string(nil), defaultValue...)
	}
	return SplitList(value)
}

// SplitList splits a comma-separated list, trimming blanks
func SplitList(value string) []string {
	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}
