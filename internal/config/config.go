package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all facade configuration.
type Config struct {
	DBPath         string
	AppToken       string // Socrata app token; empty means anonymous reads
	AdapterTimeout time.Duration
	SyncTimeout    time.Duration
	Concurrency    int
	LogLevel       string
	TablesPath     string // optional YAML overriding weight/keyword/cost tables
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		DBPath:         getenv("FACADE_DB", "facade.db"),
		AppToken:       os.Getenv("FACADE_APP_TOKEN"),
		AdapterTimeout: getenvDuration("FACADE_ADAPTER_TIMEOUT", 30*time.Second),
		SyncTimeout:    getenvDuration("FACADE_SYNC_TIMEOUT", 2*time.Minute),
		Concurrency:    getenvInt("FACADE_CONCURRENCY", 0),
		LogLevel:       getenv("FACADE_LOG_LEVEL", "info"),
		TablesPath:     os.Getenv("FACADE_TABLES"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
