package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds serve-mode settings loaded from the environment.
type Config struct {
	ListenAddr     string
	FetchTimeout   time.Duration
	CacheBackend   string // "in_memory" or "memcached"
	CacheTTL       time.Duration
	MemcachedAddrs string
	RateLimitRPS   int
	RateLimitBurst int
	LogLevel       string
}

// loadConfig reads configuration from a .env file (if present) and the
// process environment.
func loadConfig() (*Config, error) {
	// Best effort; a missing .env file is not an error.
	godotenv.Load()

	cfg := &Config{
		ListenAddr:     getEnv("LISTEN_ADDR", ":8080"),
		FetchTimeout:   getEnvAsDuration("FETCH_TIMEOUT", 10*time.Second),
		CacheBackend:   getEnv("CACHE_BACKEND", "in_memory"),
		CacheTTL:       getEnvAsDuration("CACHE_TTL", 5*time.Minute),
		MemcachedAddrs: getEnv("MEMCACHED_ADDRS", "localhost:11211"),
		RateLimitRPS:   getEnvAsInt("RATE_LIMIT_RPS", 0),
		RateLimitBurst: getEnvAsInt("RATE_LIMIT_BURST", 0),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}

	if cfg.CacheBackend != "in_memory" && cfg.CacheBackend != "memcached" {
		return nil, fmt.Errorf("unknown CACHE_BACKEND %q", cfg.CacheBackend)
	}
	if cfg.RateLimitRPS > 0 && cfg.RateLimitBurst <= 0 {
		cfg.RateLimitBurst = cfg.RateLimitRPS
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
