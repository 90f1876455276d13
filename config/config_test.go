package config

import (
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "MONGODB_URI", "MONGODB_DB", "REDIS_URL", "JWT_SECRET",
		"SEARCH_DEBOUNCE_MS", "SEARCH_LATENCY_MS", "PRICING_CACHE_TTL", "CORS_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()

	if cfg.Port != ":8080" {
		t.Errorf("port: expected :8080, got %q", cfg.Port)
	}
	if cfg.MongoURI != "mongodb://localhost:27017" {
		t.Errorf("mongo uri: got %q", cfg.MongoURI)
	}
	if cfg.SearchDebounce != 400*time.Millisecond || cfg.SearchLatency != 200*time.Millisecond {
		t.Errorf("search delays: got %s / %s", cfg.SearchDebounce, cfg.SearchLatency)
	}
	if cfg.PricingCacheTTL != 10*time.Minute {
		t.Errorf("cache ttl: got %s", cfg.PricingCacheTTL)
	}
	if string(cfg.JWTSecret) != devSecret {
		t.Errorf("expected dev secret fallback")
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Errorf("cors origins: got %v", cfg.CORSOrigins)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("SEARCH_DEBOUNCE_MS", "50")
	t.Setenv("SEARCH_LATENCY_MS", "bogus")
	t.Setenv("PRICING_CACHE_TTL", "90s")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg := FromEnv()

	if cfg.Port != ":9000" {
		t.Errorf("port: got %q", cfg.Port)
	}
	if cfg.SearchDebounce != 50*time.Millisecond {
		t.Errorf("debounce: got %s", cfg.SearchDebounce)
	}
	if cfg.SearchLatency != 200*time.Millisecond {
		t.Errorf("invalid latency should fall back, got %s", cfg.SearchLatency)
	}
	if cfg.PricingCacheTTL != 90*time.Second {
		t.Errorf("cache ttl: got %s", cfg.PricingCacheTTL)
	}
	if string(cfg.JWTSecret) != "s3cret" {
		t.Errorf("secret: got %q", cfg.JWTSecret)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://b.example" {
		t.Errorf("cors origins: got %v", cfg.CORSOrigins)
	}
}
