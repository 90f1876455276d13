// Package config reads runtime settings from the environment (and .env when present).
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const devSecret = "dev-only-secret"

type Config struct {
	Port          string
	MongoURI      string
	MongoDB       string
	RedisURL      string
	RedisPassword string
	JWTSecret     []byte
	CORSOrigins   []string

	SearchDebounce  time.Duration
	SearchLatency   time.Duration
	PricingCacheTTL time.Duration
}

// Load reads .env if present and builds a Config from the environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment without touching .env.
func FromEnv() Config {
	cfg := Config{
		Port:            port(os.Getenv("PORT")),
		MongoURI:        envOr("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDB:         envOr("MONGODB_DB", "cookly"),
		RedisURL:        os.Getenv("REDIS_URL"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		SearchDebounce:  millis("SEARCH_DEBOUNCE_MS", 400*time.Millisecond),
		SearchLatency:   millis("SEARCH_LATENCY_MS", 200*time.Millisecond),
		PricingCacheTTL: duration("PRICING_CACHE_TTL", 10*time.Minute),
		CORSOrigins:     []string{"*"},
	}

	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.CORSOrigins = nil
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Println("JWT_SECRET is not set; using the development secret")
		secret = devSecret
	}
	cfg.JWTSecret = []byte(secret)

	return cfg
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func port(v string) string {
	if v == "" {
		return ":8080"
	}
	if v[0] != ':' {
		return ":" + v
	}
	return v
}

func millis(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		log.Printf("config: ignoring invalid %s=%q", key, v)
		return fallback
	}
	return time.Duration(n) * time.Millisecond
}

func duration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		log.Printf("config: ignoring invalid %s=%q", key, v)
		return fallback
	}
	return d
}
