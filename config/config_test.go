package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Server.Port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Server.Environment != "development" {
		t.Errorf("Server.Environment = %q, want development", cfg.Server.Environment)
	}
	if cfg.Database.Path != "data/dealbridge.db" {
		t.Errorf("Database.Path = %q, want data/dealbridge.db", cfg.Database.Path)
	}
	if cfg.Cache.TTL != 2*time.Minute {
		t.Errorf("Cache.TTL = %v, want 2m", cfg.Cache.TTL)
	}
	if cfg.Matching.MinMatchPercentage != 40 {
		t.Errorf("Matching.MinMatchPercentage = %d, want 40", cfg.Matching.MinMatchPercentage)
	}
	if cfg.RateLimit.PerIPRate != 10.0 {
		t.Errorf("RateLimit.PerIPRate = %v, want 10", cfg.RateLimit.PerIPRate)
	}
	if cfg.RateLimit.PerIPBurst != 20 {
		t.Errorf("RateLimit.PerIPBurst = %d, want 20", cfg.RateLimit.PerIPBurst)
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		t.Error("Server.AllowedOrigins is empty, want a default origin")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DEALBRIDGE_SERVER_PORT", "9090")
	t.Setenv("DEALBRIDGE_SERVER_ENVIRONMENT", "production")
	t.Setenv("DEALBRIDGE_DATABASE_PATH", "/tmp/override.db")
	t.Setenv("DEALBRIDGE_CACHE_TTL", "30s")
	t.Setenv("DEALBRIDGE_MATCHING_MIN_MATCH_PERCENTAGE", "60")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("Server.Port = %q, want 9090", cfg.Server.Port)
	}
	if cfg.Server.Environment != "production" {
		t.Errorf("Server.Environment = %q, want production", cfg.Server.Environment)
	}
	if cfg.Database.Path != "/tmp/override.db" {
		t.Errorf("Database.Path = %q, want /tmp/override.db", cfg.Database.Path)
	}
	if cfg.Cache.TTL != 30*time.Second {
		t.Errorf("Cache.TTL = %v, want 30s", cfg.Cache.TTL)
	}
	if cfg.Matching.MinMatchPercentage != 60 {
		t.Errorf("Matching.MinMatchPercentage = %d, want 60", cfg.Matching.MinMatchPercentage)
	}
}

func TestLoadValidation(t *testing.T) {
	t.Run("match percentage above 100 is rejected", func(t *testing.T) {
		t.Setenv("DEALBRIDGE_MATCHING_MIN_MATCH_PERCENTAGE", "150")

		if _, err := Load(); err == nil {
			t.Error("expected validation error for min_match_percentage = 150")
		}
	})

	t.Run("non-positive rate limit is rejected", func(t *testing.T) {
		t.Setenv("DEALBRIDGE_RATELIMIT_PER_IP_RATE", "-1")

		if _, err := Load(); err == nil {
			t.Error("expected validation error for per_ip_rate = -1")
		}
	})
}
