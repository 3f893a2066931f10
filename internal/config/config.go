// Package config reads process configuration from ROADMAP_* environment
// variables.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/TPSE31/career-roadmap/internal/domain"
	"github.com/TPSE31/career-roadmap/internal/remote"
)

// StoreKind selects the completion persistence backend.
type StoreKind string

const (
	StoreSQLite StoreKind = "sqlite"
	StoreRedis  StoreKind = "redis"
)

// RedisConfig locates the Redis server used when Store is StoreRedis.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Config holds all configuration for the roadmap binary.
type Config struct {
	DBPath      string
	SessionID   string
	Store       StoreKind
	Redis       RedisConfig
	CatalogFile string
	LogUseCases bool
	MetricsFile string
	API         remote.Config
}

// DefaultConfig returns a Config with sensible defaults. The database lives
// under ~/.roadmap; if the home directory cannot be found it falls back to
// the working directory.
func DefaultConfig() Config {
	return Config{
		DBPath:    defaultDBPath(),
		SessionID: domain.DefaultSessionID,
		Store:     StoreSQLite,
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		API: remote.DefaultConfig(),
	}
}

// LoadConfig reads configuration from environment variables,
// falling back to defaults for any unset or invalid values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("ROADMAP_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := strings.TrimSpace(os.Getenv("ROADMAP_SESSION")); v != "" {
		cfg.SessionID = v
	}
	if v := os.Getenv("ROADMAP_STORE"); v != "" {
		switch k := StoreKind(strings.ToLower(v)); k {
		case StoreSQLite, StoreRedis:
			cfg.Store = k
		}
	}
	if v := os.Getenv("ROADMAP_REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("ROADMAP_REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("ROADMAP_REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.Redis.DB = n
		}
	}
	if v := os.Getenv("ROADMAP_CATALOG_FILE"); v != "" {
		cfg.CatalogFile = v
	}
	if v := os.Getenv("ROADMAP_LOG_USE_CASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("ROADMAP_METRICS_FILE"); v != "" {
		cfg.MetricsFile = v
	}

	cfg.API = remote.LoadConfig()
	return cfg
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".roadmap", "roadmap.db")
	}
	return filepath.Join(home, ".roadmap", "roadmap.db")
}
