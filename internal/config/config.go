// Palate - Cuisine Exploration Analytics Engine
// Copyright 2026 Kedar Bhide
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Kedar-Bhide/palate-app-sub003

// Package config loads layered application configuration.
//
// Configuration is resolved in priority order: struct defaults, then an
// optional YAML file, then PALATE_-prefixed environment variables
// (PALATE_SERVER_ADDR overrides server.addr). The merged result is
// validated before use so the process fails fast on bad config.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/Kedar-Bhide/palate-app-sub003/internal/logging"
	"github.com/Kedar-Bhide/palate-app-sub003/internal/recommend"
)

// DefaultConfigPaths lists where config files are searched, in order.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/palate/config.yaml",
}

// ConfigPathEnvVar overrides the config file path when set.
const ConfigPathEnvVar = "CONFIG_PATH"

// envPrefix namespaces all environment overrides.
const envPrefix = "PALATE_"

// Config is the full application configuration.
type Config struct {
	// Server configures the HTTP host.
	Server ServerConfig `koanf:"server"`

	// Log configures structured logging.
	Log logging.Config `koanf:"log"`

	// Recommend configures the recommendation engine.
	Recommend recommend.Config `koanf:"recommend"`
}

// ServerConfig configures the HTTP host surface.
type ServerConfig struct {
	// Addr is the listen address.
	Addr string `koanf:"addr" validate:"required"`

	// ReadTimeout bounds request reads.
	ReadTimeout time.Duration `koanf:"read_timeout" validate:"min=0"`

	// WriteTimeout bounds response writes.
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"min=0"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"min=0"`

	// CORSOrigins lists allowed CORS origins.
	CORSOrigins []string `koanf:"cors_origins"`

	// RateLimitRequests is the per-IP request budget per window.
	RateLimitRequests int `koanf:"rate_limit_requests" validate:"min=1"`

	// RateLimitWindow is the rate limit window.
	RateLimitWindow time.Duration `koanf:"rate_limit_window" validate:"min=1ms"`
}

// defaultConfig returns the full default configuration. Defaults are
// applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:              ":8080",
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      15 * time.Second,
			ShutdownTimeout:   10 * time.Second,
			CORSOrigins:       []string{"*"},
			RateLimitRequests: 300,
			RateLimitWindow:   time.Minute,
		},
		Log:       logging.DefaultConfig(),
		Recommend: recommend.DefaultConfig(),
	}
}

// Load resolves configuration from defaults, an optional YAML file, and
// environment variables. An empty path searches DefaultConfigPaths and
// the CONFIG_PATH env var; a missing file is not an error, an unreadable
// or malformed one is.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if path == "" {
		path = os.Getenv(ConfigPathEnvVar)
	}
	if path == "" {
		for _, candidate := range DefaultConfigPaths {
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envToKey), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envToKey maps PALATE_SERVER_ADDR to server.addr. Only the first
// underscore separates the section from the key, so multi-word keys
// like rate_limit_requests survive the mapping.
func envToKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
	return strings.Replace(s, "_", ".", 1)
}

// Validate checks the merged configuration.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := c.Recommend.Validate(); err != nil {
		return fmt.Errorf("invalid recommend config: %w", err)
	}
	return nil
}
