package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("expected port 8080, got %q", cfg.Port)
	}
	if cfg.Store.Backend != BackendSQLite {
		t.Errorf("expected sqlite backend, got %q", cfg.Store.Backend)
	}
	if cfg.Store.DatabaseURL != "annotations.db" {
		t.Errorf("unexpected database url %q", cfg.Store.DatabaseURL)
	}
	if cfg.Redis.Addr != "" {
		t.Errorf("redis should be disabled by default, got %q", cfg.Redis.Addr)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("unexpected shutdown timeout %v", cfg.ShutdownTimeout)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Errorf("unexpected CORS origins %v", cfg.CORSOrigins)
	}
	if !cfg.IsDevelopment() {
		t.Errorf("expected development env by default")
	}
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"PORT":               "9090",
		"STORE_BACKEND":      "postgres",
		"DATABASE_URL":       "postgres://u:p@localhost/annotations",
		"REDIS_ADDR":         "localhost:6379",
		"CORS_ALLOW_ORIGINS": "http://localhost:3000,https://app.example.com",
		"BCRYPT_COST":        "12",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Port != "9090" || cfg.Store.Backend != BackendPostgres || cfg.BcryptCost != 12 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Errorf("unexpected redis addr %q", cfg.Redis.Addr)
	}
	if len(cfg.CORSOrigins) != 2 {
		t.Errorf("expected 2 CORS origins, got %v", cfg.CORSOrigins)
	}
}

func TestLoadFrom_UnknownBackend(t *testing.T) {
	_, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"STORE_BACKEND": "cassandra",
	}))
	if err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}
