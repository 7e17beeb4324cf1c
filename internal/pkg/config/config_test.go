package config

import (
	"context"
	"os"
	"testing"
)

// unsetenv clears a variable for the test and restores it afterwards;
// t.Setenv alone leaves the variable set-but-empty, which envconfig treats
// differently from unset.
func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	unsetenv(t, "PORT", "ENV", "LOG_LEVEL", "DATABASE_URL", "DATABASE_NAME")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Port != "8000" {
		t.Fatalf("expected default port 8000, got %q", cfg.Port)
	}
	if cfg.Database.Configured() {
		t.Fatalf("database must not report configured with empty settings")
	}
}

func TestLoad_DatabaseConfigured(t *testing.T) {
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017")
	t.Setenv("DATABASE_NAME", "passaqui")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !cfg.Database.Configured() {
		t.Fatalf("expected database configured")
	}
	if cfg.Database.URL != "mongodb://localhost:27017" || cfg.Database.Name != "passaqui" {
		t.Fatalf("unexpected database config: %+v", cfg.Database)
	}
}

func TestDatabaseConfig_PartialSettings(t *testing.T) {
	partial := DatabaseConfig{URL: "mongodb://localhost:27017"}
	if partial.Configured() {
		t.Fatalf("URL alone must not count as configured")
	}
}
