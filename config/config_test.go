package config

import (
	"os"
	"testing"
	"time"
)

func writeEnv(t *testing.T, contents string) {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(dir+"/.env", []byte(contents), 0o600); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}
	t.Chdir(dir)
}

func TestLoadConfig(t *testing.T) {
	writeEnv(t, `APP_PORT=8080
APP_ENV=test
DB_HOST=localhost
DB_PORT=5432
DB_USER=clinic
DB_PASSWORD=secret
DB_NAME=clinicore
REDIS_HOST=localhost
REDIS_PORT=6379
REDIS_DB=1
JWT_SECRET=test-secret
JWT_ACCESS_EXPIRY=15m
STORAGE_BUCKET=medical-images
STORAGE_REGION=us-east-1
STORAGE_USE_PATH_STYLE=true
`)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.App.Port != "8080" {
		t.Errorf("expected port 8080, got %s", cfg.App.Port)
	}
	if cfg.DB.Name != "clinicore" {
		t.Errorf("expected db name clinicore, got %s", cfg.DB.Name)
	}
	if cfg.Redis.DB != 1 {
		t.Errorf("expected redis db 1, got %d", cfg.Redis.DB)
	}
	if cfg.JWT.AccessExpiry != 15*time.Minute {
		t.Errorf("expected 15m access expiry, got %s", cfg.JWT.AccessExpiry)
	}
	if !cfg.Storage.UsePathStyle {
		t.Error("expected path-style storage addressing")
	}
}

func TestLoadConfigDefaultExpiry(t *testing.T) {
	writeEnv(t, `APP_PORT=8080
JWT_SECRET=test-secret
`)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.JWT.AccessExpiry != 30*time.Minute {
		t.Errorf("expected 30m default access expiry, got %s", cfg.JWT.AccessExpiry)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error when .env is missing")
	}
}
