package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		// Setenv registers the restore; Unsetenv leaves the key absent for the test.
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	unsetEnv(t, "DB_DRIVER", "PORT", "DB_CONN_MAX_LIFETIME", "GIN_MODE")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.DatabaseDriver != DriverPostgres {
		t.Fatalf("expected postgres driver, got %q", cfg.DatabaseDriver)
	}
	if cfg.ConnMaxLifetime != time.Hour {
		t.Fatalf("expected 1h conn lifetime, got %v", cfg.ConnMaxLifetime)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", DriverMemory)
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("SHUTDOWN_TIMEOUT", "5s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DatabaseDriver != DriverMemory {
		t.Fatalf("expected memory driver, got %q", cfg.DatabaseDriver)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "http://b.test" {
		t.Fatalf("unexpected origins: %v", cfg.AllowedOrigins)
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Fatalf("expected 5s shutdown timeout, got %v", cfg.ShutdownTimeout)
	}
}

func TestLoadRejectsUnknownGinMode(t *testing.T) {
	t.Setenv("GIN_MODE", "verbose")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown gin mode")
	}
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

func TestLoadParseError(t *testing.T) {
	unsetEnv(t, "DB_DRIVER")
	t.Setenv("DB_MAX_OPEN_CONNS", "lots")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestGetEnvFallback(t *testing.T) {
	t.Setenv("PROYECTOS_TEST_VALUE", "set")

	if got := GetEnv("PROYECTOS_TEST_VALUE", "x"); got != "set" {
		t.Fatalf("expected set, got %q", got)
	}
	if got := GetEnv("PROYECTOS_TEST_MISSING", "x"); got != "x" {
		t.Fatalf("expected fallback, got %q", got)
	}
}
