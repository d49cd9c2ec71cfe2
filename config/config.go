// Package config loads process configuration from an optional YAML file
// with THREADS_ environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/meharsulaiman/threads-backend/pkg/crypto"
	"github.com/meharsulaiman/threads-backend/pkg/token"
)

const envPrefix = "THREADS_"

var (
	ErrSecretRequired      = errors.New("jwt secret is required (THREADS_JWT_SECRET)")
	ErrDatabaseURLRequired = errors.New("database url is required (THREADS_DATABASE_URL)")
)

// Config carries all process configuration. It is constructed once at
// startup and handed to constructors; nothing reads the environment after
// Load returns.
type Config struct {
	Addr        string
	DatabaseURL string
	JWTSecret   string
	TokenTTL    time.Duration
	BcryptCost  int
	LogFormat   string
}

// Load reads the YAML file at path (skipped when path is empty), then
// applies environment overrides, then validates. The JWT secret and
// database URL have no defaults: a process without them must not start.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	// THREADS_JWT_SECRET -> jwt.secret, THREADS_ADDR -> addr, ...
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	cfg := &Config{
		Addr:        k.String("addr"),
		DatabaseURL: k.String("database.url"),
		JWTSecret:   k.String("jwt.secret"),
		TokenTTL:    k.Duration("token.ttl"),
		BcryptCost:  k.Int("bcrypt.cost"),
		LogFormat:   k.String("log.format"),
	}

	if cfg.Addr == "" {
		cfg.Addr = ":5000"
	}
	if cfg.TokenTTL == 0 {
		cfg.TokenTTL = token.DefaultTTL
	}
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = crypto.DefaultCost
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "json"
	}

	if cfg.JWTSecret == "" {
		return nil, ErrSecretRequired
	}
	if cfg.DatabaseURL == "" {
		return nil, ErrDatabaseURLRequired
	}

	return cfg, nil
}
