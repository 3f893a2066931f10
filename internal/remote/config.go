package remote

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the upstream catalog API.
type Config struct {
	Enabled           bool
	LogCalls          bool
	BaseURL           string
	TimeoutMs         int
	MaxRetries        int
	RequestsPerSecond float64
}

// DefaultConfig returns a Config with sensible defaults.
// The upstream API is disabled by default; the bundled catalog is used.
func DefaultConfig() Config {
	return Config{
		Enabled:           false,
		LogCalls:          false,
		BaseURL:           "http://localhost:8000/api",
		TimeoutMs:         10000,
		MaxRetries:        0,
		RequestsPerSecond: 5,
	}
}

// LoadConfig reads API configuration from environment variables,
// falling back to defaults for any unset or invalid values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("ROADMAP_API_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("ROADMAP_API_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("ROADMAP_API_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("ROADMAP_API_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("ROADMAP_API_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("ROADMAP_API_RPS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			cfg.RequestsPerSecond = f
		}
	}

	return cfg
}

// Timeout returns the per-call timeout as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}
