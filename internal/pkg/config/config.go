package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8000"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Database DatabaseConfig
}

// DatabaseConfig keeps the deployment's original variable names. Both may be
// empty: the service starts without a store and answers in degraded mode.
type DatabaseConfig struct {
	URL  string `env:"DATABASE_URL"`
	Name string `env:"DATABASE_NAME"`
}

// Configured reports whether enough settings exist to attempt a connection.
func (d DatabaseConfig) Configured() bool {
	return d.URL != "" && d.Name != ""
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
