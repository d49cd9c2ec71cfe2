package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/meharsulaiman/threads-backend/pkg/crypto"
	"github.com/meharsulaiman/threads-backend/pkg/token"
)

const testSecret = "secretshouldbeatleast32charslong"

func TestLoad_EnvOnly(t *testing.T) {
	t.Setenv("THREADS_JWT_SECRET", testSecret)
	t.Setenv("THREADS_DATABASE_URL", "postgres://localhost:5432/threads")
	t.Setenv("THREADS_ADDR", ":8080")
	t.Setenv("THREADS_TOKEN_TTL", "24h")
	t.Setenv("THREADS_BCRYPT_COST", "12")
	t.Setenv("THREADS_LOG_FORMAT", "text")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Addr)
	}
	if cfg.DatabaseURL != "postgres://localhost:5432/threads" {
		t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
	}
	if cfg.JWTSecret != testSecret {
		t.Errorf("JWTSecret = %q", cfg.JWTSecret)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Errorf("TokenTTL = %v, want 24h", cfg.TokenTTL)
	}
	if cfg.BcryptCost != 12 {
		t.Errorf("BcryptCost = %d, want 12", cfg.BcryptCost)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %q, want text", cfg.LogFormat)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("THREADS_JWT_SECRET", testSecret)
	t.Setenv("THREADS_DATABASE_URL", "postgres://localhost:5432/threads")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Addr != ":5000" {
		t.Errorf("Addr = %q, want :5000", cfg.Addr)
	}
	if cfg.TokenTTL != token.DefaultTTL {
		t.Errorf("TokenTTL = %v, want %v", cfg.TokenTTL, token.DefaultTTL)
	}
	if cfg.BcryptCost != crypto.DefaultCost {
		t.Errorf("BcryptCost = %d, want %d", cfg.BcryptCost, crypto.DefaultCost)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want json", cfg.LogFormat)
	}
}

func TestLoad_MissingSecretFailsFast(t *testing.T) {
	t.Setenv("THREADS_DATABASE_URL", "postgres://localhost:5432/threads")

	_, err := Load("")
	if !errors.Is(err, ErrSecretRequired) {
		t.Errorf("Load() error = %v, want ErrSecretRequired", err)
	}
}

func TestLoad_MissingDatabaseURLFailsFast(t *testing.T) {
	t.Setenv("THREADS_JWT_SECRET", testSecret)

	_, err := Load("")
	if !errors.Is(err, ErrDatabaseURLRequired) {
		t.Errorf("Load() error = %v, want ErrDatabaseURLRequired", err)
	}
}

func TestLoad_FileWithEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := "addr: \":3000\"\njwt:\n  secret: " + testSecret + "\ndatabase:\n  url: postgres://filehost/threads\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	t.Setenv("THREADS_DATABASE_URL", "postgres://envhost/threads")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Addr != ":3000" {
		t.Errorf("Addr = %q, want :3000 from file", cfg.Addr)
	}
	if cfg.DatabaseURL != "postgres://envhost/threads" {
		t.Errorf("DatabaseURL = %q, want env override to win", cfg.DatabaseURL)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load() with a missing config file should fail")
	}
}
