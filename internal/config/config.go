package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Pipeline PipelineConfig `yaml:"pipeline" envconfig:"PIPELINE"`
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Paths    PathsConfig    `yaml:"paths" envconfig:"PATHS"`
}

// PipelineConfig contains settings for the consolidation pipeline
type PipelineConfig struct {
	Sources SourcesConfig `yaml:"sources" envconfig:"SOURCES"`

	// LongDelayDays is the delta_days threshold above which a delivery
	// counts as a long delay. Deliveries in (0, LongDelayDays] are short
	// delays and anything at or below zero is on time.
	LongDelayDays float64 `yaml:"long_delay_days" envconfig:"LONG_DELAY_DAYS" default:"3"`

	// OutputFile is the name of the consolidated CSV written to the
	// reports directory.
	OutputFile string `yaml:"output_file" envconfig:"OUTPUT_FILE" default:"oilst_processed.csv"`
}

// SourcesConfig names the raw input files expected inside the data directory
type SourcesConfig struct {
	Customers   string `yaml:"customers" envconfig:"CUSTOMERS" default:"olist_customers_dataset.xlsx"`
	Geolocation string `yaml:"geolocation" envconfig:"GEOLOCATION" default:"olist_geolocation_dataset.csv"`
	Items       string `yaml:"items" envconfig:"ITEMS" default:"olist_order_items_dataset.csv"`
	Payments    string `yaml:"payments" envconfig:"PAYMENTS" default:"olist_order_payments_dataset.csv"`
	Orders      string `yaml:"orders" envconfig:"ORDERS" default:"olist_orders_dataset.csv"`
	States      string `yaml:"states" envconfig:"STATES" default:"states_abbreviations.json"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/app.log"`
}

// PathsConfig contains file system paths configuration
type PathsConfig struct {
	DataDir    string `yaml:"data_dir" envconfig:"DATA_DIR" default:"data"`
	ReportsDir string `yaml:"reports_dir" envconfig:"REPORTS_DIR" default:"reports"`
	LogsDir    string `yaml:"logs_dir" envconfig:"LOGS_DIR" default:"logs"`
}

// Load loads configuration from environment variables and an optional
// config file. Environment variables take precedence over file values.
func Load() (*Config, error) {
	var cfg Config

	// Load from config file first if one exists
	if configFile := getConfigFilePath(); configFile != "" {
		fileCfg, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = *fileCfg
	}

	// Environment variables override file values and fill defaults
	if err := envconfig.Process("OILST", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
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

// validate validates the configuration
func (c *Config) validate() error {
	if c.Pipeline.LongDelayDays <= 0 {
		return fmt.Errorf("pipeline long delay threshold must be positive, got %g", c.Pipeline.LongDelayDays)
	}

	if c.Pipeline.OutputFile == "" {
		return fmt.Errorf("pipeline output file must not be empty")
	}

	switch c.Logging.Format {
	case "json", "text":
	default:
		return fmt.Errorf("invalid logging format: %s", c.Logging.Format)
	}

	switch c.Logging.Output {
	case "console", "file", "both":
	default:
		return fmt.Errorf("invalid logging output: %s", c.Logging.Output)
	}

	if c.Logging.Output != "console" && c.Logging.FilePath == "" {
		return fmt.Errorf("logging file path required for output %q", c.Logging.Output)
	}

	return nil
}

// getConfigFilePath returns the path to the config file
func getConfigFilePath() string {
	// Check for config file in common locations
	locations := []string{
		"config.yaml",
		"configs/config.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return "" // No config file found, use env vars only
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Pipeline: PipelineConfig{
			Sources: SourcesConfig{
				Customers:   "olist_customers_dataset.xlsx",
				Geolocation: "olist_geolocation_dataset.csv",
				Items:       "olist_order_items_dataset.csv",
				Payments:    "olist_order_payments_dataset.csv",
				Orders:      "olist_orders_dataset.csv",
				States:      "states_abbreviations.json",
			},
			LongDelayDays: 3,
			OutputFile:    "oilst_processed.csv",
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "both",
			FilePath: "logs/app.log",
		},
		Paths: PathsConfig{
			DataDir:    "data",
			ReportsDir: "reports",
			LogsDir:    "logs",
		},
	}
}
