package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Cache     CacheConfig
	Matching  MatchingConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// DatabaseConfig holds SQLite configuration
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// CacheConfig holds match-result cache configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// MatchingConfig holds buyer-matching configuration
type MatchingConfig struct {
	// MinMatchPercentage is the cutoff below which scored profiles are
	// dropped from match results.
	MinMatchPercentage int `mapstructure:"min_match_percentage"`
}

// RateLimitConfig holds per-client rate limiting configuration
type RateLimitConfig struct {
	PerIPRate  float64 `mapstructure:"per_ip_rate"`
	PerIPBurst int     `mapstructure:"per_ip_burst"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/dealbridge/")

	v.SetEnvPrefix("DEALBRIDGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional; env vars and defaults cover everything.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	v.SetDefault("database.path", "data/dealbridge.db")

	v.SetDefault("cache.ttl", "2m")

	v.SetDefault("matching.min_match_percentage", 40)

	v.SetDefault("ratelimit.per_ip_rate", 10.0)
	v.SetDefault("ratelimit.per_ip_burst", 20)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Database.Path == "" {
		return fmt.Errorf("database path is required (set DEALBRIDGE_DATABASE_PATH)")
	}

	if config.Matching.MinMatchPercentage < 0 || config.Matching.MinMatchPercentage > 100 {
		return fmt.Errorf("matching min_match_percentage must be between 0 and 100, got: %d",
			config.Matching.MinMatchPercentage)
	}

	if config.RateLimit.PerIPRate <= 0 {
		return fmt.Errorf("ratelimit per_ip_rate must be positive, got: %f", config.RateLimit.PerIPRate)
	}

	return nil
}
