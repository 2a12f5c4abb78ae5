package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Storage backends the server can run on
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
	StorageSQLite = "sqlite"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Client  ClientConfig
}

// ServerConfig holds the REST API listener configuration
type ServerConfig struct {
	Addr            string        `env:"COMPANION_ADDR" envDefault:":8080"`
	MapsFile        string        `env:"COMPANION_MAPS_FILE"`
	ShutdownTimeout time.Duration `env:"COMPANION_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// StorageConfig selects and configures the persistence backend
type StorageConfig struct {
	Backend    string `env:"COMPANION_STORAGE" envDefault:"memory"`
	RedisURL   string `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	SQLitePath string `env:"COMPANION_SQLITE_PATH" envDefault:"companion.db"`
}

// ClientConfig holds what the CLI needs to reach the API
type ClientConfig struct {
	APIURL  string        `env:"COMPANION_API_URL" envDefault:"http://localhost:8080"`
	User    string        `env:"COMPANION_USER"`
	Timeout time.Duration `env:"COMPANION_HTTP_TIMEOUT" envDefault:"10s"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.Storage.Backend = strings.ToLower(strings.TrimSpace(cfg.Storage.Backend))
	switch cfg.Storage.Backend {
	case StorageMemory, StorageRedis, StorageSQLite:
	default:
		return nil, fmt.Errorf("COMPANION_STORAGE must be one of %s, %s, %s; got %q",
			StorageMemory, StorageRedis, StorageSQLite, cfg.Storage.Backend)
	}

	return cfg, nil
}
