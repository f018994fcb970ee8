package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Search    SearchConfig
	Scraper   ScraperConfig
	Cache     CacheConfig
	Benchmark BenchmarkConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// SearchConfig holds web-search provider configuration
type SearchConfig struct {
	APIKey    string        `mapstructure:"api_key"`
	BaseURL   string        `mapstructure:"base_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	RateDelay time.Duration `mapstructure:"rate_delay"`
	MaxRetry  int           `mapstructure:"max_retry"`
}

// ScraperConfig holds fetch-orchestration configuration
type ScraperConfig struct {
	MaxWorkers      int           `mapstructure:"max_workers"`
	OverallTimeout  time.Duration `mapstructure:"overall_timeout"`
	MaxAttempts     int           `mapstructure:"max_attempts"`
	PageLoadTimeout time.Duration `mapstructure:"page_load_timeout"`
	Headless        bool          `mapstructure:"headless"`
}

// CacheConfig holds result-cache configuration
type CacheConfig struct {
	Type     string        `mapstructure:"type"` // "memory" or "redis"
	RedisURL string        `mapstructure:"redis_url"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// BenchmarkConfig holds the benchmark score database configuration
type BenchmarkConfig struct {
	SQLitePath string `mapstructure:"sqlite_path"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	// Load .env file if it exists (for local development)
	if err := loadEnvFile(); err != nil {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/techadvisor/")

	// Environment variable settings
	v.SetEnvPrefix("TECHADVISOR")
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

	// Search defaults (Brave Search API)
	v.SetDefault("search.base_url", "https://api.search.brave.com/res/v1/web/search")
	v.SetDefault("search.timeout", "8s")
	v.SetDefault("search.rate_delay", "1100ms")
	v.SetDefault("search.max_retry", 2)

	// Scraper defaults
	v.SetDefault("scraper.max_workers", 4)
	v.SetDefault("scraper.overall_timeout", "30s")
	v.SetDefault("scraper.max_attempts", 15)
	v.SetDefault("scraper.page_load_timeout", "35s")
	v.SetDefault("scraper.headless", true)

	// Cache defaults
	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.ttl", "1h")

	// Benchmark defaults
	v.SetDefault("benchmark.sqlite_path", "benchmarks.db")
}

// loadEnvFile loads environment variables from a .env file if present.
// Existing environment variables are never overridden.
func loadEnvFile() error {
	file, err := os.Open(".env")
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		if _, exists := os.LookupEnv(key); !exists {
			os.Setenv(key, value)
		}
	}

	return scanner.Err()
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Cache.Type != "memory" && config.Cache.Type != "redis" {
		return fmt.Errorf("cache type must be 'memory' or 'redis', got: %s", config.Cache.Type)
	}

	if config.Cache.Type == "redis" && config.Cache.RedisURL == "" {
		return fmt.Errorf("Redis URL is required when cache type is 'redis'")
	}

	if config.Scraper.MaxWorkers < 1 {
		return fmt.Errorf("scraper max_workers must be at least 1, got: %d", config.Scraper.MaxWorkers)
	}

	if config.Scraper.MaxAttempts < 1 {
		return fmt.Errorf("scraper max_attempts must be at least 1, got: %d", config.Scraper.MaxAttempts)
	}

	return nil
}
