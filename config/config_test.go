package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("SHOPSEARCH_SERVER_PORT")
		os.Unsetenv("SHOPSEARCH_SERVER_ENVIRONMENT")
		os.Unsetenv("SHOPSEARCH_SERVER_AUTH_TOKEN")
		os.Unsetenv("SHOPSEARCH_SCRAPER_API_KEY")
		os.Unsetenv("SHOPSEARCH_SCRAPER_BASE_URL")
		os.Unsetenv("SHOPSEARCH_SCRAPER_COUNTRY_CODE")
		os.Unsetenv("SHOPSEARCH_SCRAPER_OUTPUT_FORMAT")
		os.Unsetenv("SHOPSEARCH_SCRAPER_TIMEOUT")
		os.Unsetenv("SHOPSEARCH_SEARCH_DEFAULT_TOP_N")
		os.Unsetenv("SHOPSEARCH_SEARCH_DETAIL_CONCURRENCY")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		// Set required API key
		os.Setenv("SHOPSEARCH_SCRAPER_API_KEY", "test-key")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		// Check defaults
		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.Scraper.BaseURL != "https://api.scraperapi.com/structured/amazon" {
			t.Errorf("Scraper.BaseURL = %s, want the structured amazon endpoint", cfg.Scraper.BaseURL)
		}
		if cfg.Scraper.CountryCode != "br" {
			t.Errorf("Scraper.CountryCode = %s, want br", cfg.Scraper.CountryCode)
		}
		if cfg.Scraper.OutputFormat != "markdown" {
			t.Errorf("Scraper.OutputFormat = %s, want markdown", cfg.Scraper.OutputFormat)
		}
		if cfg.Scraper.Timeout != 30*time.Second {
			t.Errorf("Scraper.Timeout = %v, want 30s", cfg.Scraper.Timeout)
		}
		if cfg.Search.DefaultTopN != 5 {
			t.Errorf("Search.DefaultTopN = %d, want 5", cfg.Search.DefaultTopN)
		}
		if cfg.Search.DetailConcurrency != 3 {
			t.Errorf("Search.DetailConcurrency = %d, want 3", cfg.Search.DetailConcurrency)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("SHOPSEARCH_SERVER_PORT", "9090")
		os.Setenv("SHOPSEARCH_SERVER_ENVIRONMENT", "production")
		os.Setenv("SHOPSEARCH_SERVER_AUTH_TOKEN", "secret-token")
		os.Setenv("SHOPSEARCH_SCRAPER_API_KEY", "custom-api-key")
		os.Setenv("SHOPSEARCH_SCRAPER_BASE_URL", "https://custom.api.com")
		os.Setenv("SHOPSEARCH_SCRAPER_COUNTRY_CODE", "us")
		os.Setenv("SHOPSEARCH_SCRAPER_TIMEOUT", "10s")
		os.Setenv("SHOPSEARCH_SEARCH_DEFAULT_TOP_N", "10")
		os.Setenv("SHOPSEARCH_SEARCH_DETAIL_CONCURRENCY", "8")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if cfg.Server.AuthToken != "secret-token" {
			t.Errorf("Server.AuthToken = %s, want secret-token", cfg.Server.AuthToken)
		}
		if cfg.Scraper.APIKey != "custom-api-key" {
			t.Errorf("Scraper.APIKey = %s, want custom-api-key", cfg.Scraper.APIKey)
		}
		if cfg.Scraper.BaseURL != "https://custom.api.com" {
			t.Errorf("Scraper.BaseURL = %s, want https://custom.api.com", cfg.Scraper.BaseURL)
		}
		if cfg.Scraper.CountryCode != "us" {
			t.Errorf("Scraper.CountryCode = %s, want us", cfg.Scraper.CountryCode)
		}
		if cfg.Scraper.Timeout != 10*time.Second {
			t.Errorf("Scraper.Timeout = %v, want 10s", cfg.Scraper.Timeout)
		}
		if cfg.Search.DefaultTopN != 10 {
			t.Errorf("Search.DefaultTopN = %d, want 10", cfg.Search.DefaultTopN)
		}
		if cfg.Search.DetailConcurrency != 8 {
			t.Errorf("Search.DetailConcurrency = %d, want 8", cfg.Search.DetailConcurrency)
		}
	})

	t.Run("fails validation when API key is missing", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for missing API key")
		}
		if err != nil && err.Error() != "invalid configuration: provider API key is required (set SHOPSEARCH_SCRAPER_API_KEY)" {
			t.Errorf("Load() error = %v, want 'provider API key is required'", err)
		}
	})

	t.Run("fails validation for unsupported output format", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("SHOPSEARCH_SCRAPER_API_KEY", "test-key")
		os.Setenv("SHOPSEARCH_SCRAPER_OUTPUT_FORMAT", "html")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for unsupported output format")
		}
	})

	t.Run("fails validation for zero detail concurrency", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("SHOPSEARCH_SCRAPER_API_KEY", "test-key")
		os.Setenv("SHOPSEARCH_SEARCH_DETAIL_CONCURRENCY", "0")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for zero concurrency")
		}
	})
}

func TestValidate(t *testing.T) {
	validConfig := func() *Config {
		return &Config{
			Scraper: ScraperConfig{
				APIKey:       "test-key",
				BaseURL:      "https://api.scraperapi.com/structured/amazon",
				OutputFormat: "markdown",
			},
			Search: SearchConfig{
				DefaultTopN:       5,
				DetailConcurrency: 3,
			},
		}
	}

	t.Run("validates successfully with all required fields", func(t *testing.T) {
		err := validate(validConfig())
		if err != nil {
			t.Errorf("validate() error = %v, want nil", err)
		}
	})

	t.Run("empty output format is allowed", func(t *testing.T) {
		cfg := validConfig()
		cfg.Scraper.OutputFormat = ""

		err := validate(cfg)
		if err != nil {
			t.Errorf("validate() error = %v, want nil for empty output format", err)
		}
	})

	t.Run("fails when API key is empty", func(t *testing.T) {
		cfg := validConfig()
		cfg.Scraper.APIKey = ""

		err := validate(cfg)
		if err == nil {
			t.Error("validate() error = nil, want error for empty API key")
		}
	})

	t.Run("fails for unsupported output format", func(t *testing.T) {
		cfg := validConfig()
		cfg.Scraper.OutputFormat = "json"

		err := validate(cfg)
		if err == nil {
			t.Error("validate() error = nil, want error for unsupported output format")
		}
	})

	t.Run("fails for non-positive detail concurrency", func(t *testing.T) {
		cfg := validConfig()
		cfg.Search.DetailConcurrency = 0

		err := validate(cfg)
		if err == nil {
			t.Error("validate() error = nil, want error for zero concurrency")
		}
	})

	t.Run("fails for non-positive default top N", func(t *testing.T) {
		cfg := validConfig()
		cfg.Search.DefaultTopN = 0

		err := validate(cfg)
		if err == nil {
			t.Error("validate() error = nil, want error for zero top N")
		}
	})
}
