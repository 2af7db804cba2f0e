package config

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg := Load()
	if cfg.Port != "8000" {
		t.Errorf("expected default port 8000, got %s", cfg.Port)
	}
	if cfg.Storage.Driver != StorageMongo {
		t.Errorf("expected mongo driver, got %s", cfg.Storage.Driver)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Errorf("expected 24h token ttl, got %s", cfg.TokenTTL)
	}
	if cfg.Mongo.MaxPoolSize != 50 || cfg.Redis.Timeout != 5*time.Second {
		t.Errorf("unexpected pool/timeout defaults: %d %s", cfg.Mongo.MaxPoolSize, cfg.Redis.Timeout)
	}
	if !cfg.IsDevelopment() {
		t.Errorf("expected development env by default")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("STORAGE_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/test.db")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://littlelemon.com,http://localhost:3000")

	cfg := Load()
	if cfg.Storage.Driver != StorageSQLite || cfg.SQLite.Path != "/tmp/test.db" || cfg.Redis.DB != 3 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "http://localhost:3000" {
		t.Fatalf("expected two CORS origins, got %v", cfg.CORSOrigins)
	}
}

func TestLoad_MissingSecretPanics(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	os.Unsetenv("JWT_SECRET")
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic without JWT_SECRET")
		}
	}()
	Load()
}

func TestValidate_UnknownDriver(t *testing.T) {
	cfg := &Config{TokenTTL: time.Hour, Storage: StorageConfig{Driver: "cassandra"}}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

func TestLoadClient_Defaults(t *testing.T) {
	cfg, err := LoadClient(context.Background())
	if err != nil {
		t.Fatalf("LoadClient: %v", err)
	}
	if cfg.BaseURL != "http://localhost:8000" || cfg.Username != "demo_user" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}
