package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	Scraper ScraperConfig
	Search  SearchConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	AuthToken      string   `mapstructure:"auth_token"`
}

// ScraperConfig holds structured-data provider configuration
type ScraperConfig struct {
	APIKey              string        `mapstructure:"api_key"`
	BaseURL             string        `mapstructure:"base_url"`
	CountryCode         string        `mapstructure:"country_code"`
	OutputFormat        string        `mapstructure:"output_format"`
	Timeout             time.Duration `mapstructure:"timeout"`
	MaxIdleConns        int           `mapstructure:"max_idle_conns"`
	MaxIdleConnsPerHost int           `mapstructure:"max_idle_conns_per_host"`
	RequestsPerSecond   float64       `mapstructure:"requests_per_second"`
	Burst               int           `mapstructure:"burst"`
}

// SearchConfig holds search orchestration configuration
type SearchConfig struct {
	DefaultTopN       int   `mapstructure:"default_top_n"`
	DetailConcurrency int64 `mapstructure:"detail_concurrency"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/shopsearch/")

	// Environment variable settings
	v.SetEnvPrefix("SHOPSEARCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Provider defaults
	v.SetDefault("scraper.base_url", "https://api.scraperapi.com/structured/amazon")
	v.SetDefault("scraper.country_code", "br")
	v.SetDefault("scraper.output_format", "markdown")
	v.SetDefault("scraper.timeout", "30s")
	v.SetDefault("scraper.max_idle_conns", 50)
	v.SetDefault("scraper.max_idle_conns_per_host", 10)
	v.SetDefault("scraper.requests_per_second", 5)
	v.SetDefault("scraper.burst", 10)

	// Search defaults
	v.SetDefault("search.default_top_n", 5)
	v.SetDefault("search.detail_concurrency", 3)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Scraper.APIKey == "" {
		return fmt.Errorf("provider API key is required (set SHOPSEARCH_SCRAPER_API_KEY)")
	}

	if config.Scraper.OutputFormat != "" && config.Scraper.OutputFormat != "markdown" {
		return fmt.Errorf("output format must be 'markdown' or empty, got: %s", config.Scraper.OutputFormat)
	}

	if config.Search.DetailConcurrency < 1 {
		return fmt.Errorf("detail concurrency must be at least 1, got: %d", config.Search.DetailConcurrency)
	}

	if config.Search.DefaultTopN < 1 {
		return fmt.Errorf("default top N must be at least 1, got: %d", config.Search.DefaultTopN)
	}

	return nil
}
