// Artwalk - Public Art Catalogue and Nearby Attraction Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artwalk

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths are searched in order when CONFIG_PATH is unset.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/artwalk/config.yaml",
	"/etc/artwalk/config.yml",
}

// ConfigPathEnvVar overrides the config file location.
const ConfigPathEnvVar = "CONFIG_PATH"

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            5000,
			Host:            "0.0.0.0",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		Security: SecurityConfig{
			JWTSecret:         "",
			TokenTTL:          24 * time.Hour,
			BcryptCost:        12,
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			LoginRate:         0.2, // one attempt every 5s per email once the burst is spent
			LoginBurst:        5,
			CORSOrigins:       []string{"*"},
		},
		Denylist: DenylistConfig{
			Backend:         "memory",
			BadgerPath:      "/data/denylist",
			RedisURL:        "",
			CleanupInterval: 5 * time.Minute,
		},
		Database: DatabaseConfig{
			URL:                "",
			MaxOpenConns:       20,
			MaxIdleConns:       5,
			ConnMaxLifetime:    30 * time.Minute,
			MigrateOnStart:     true,
			BreakerMaxFailures: 5,
			BreakerTimeout:     30 * time.Second,
		},
		Proximity: ProximityConfig{
			RadiusKm: 6.0,
			Limit:    3,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration in three layers:
//
//  1. Built-in defaults
//  2. YAML config file (CONFIG_PATH, or the first of DefaultConfigPaths that exists)
//  3. Environment variables, mapped through envTransformFunc
//
// The result is validated before it is returned.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields splits comma-separated env values into slices.
// Values that came from YAML are already slices and are left alone.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps environment variable names (lower-cased) to config keys.
// Variables not listed here are ignored.
var envMappings = map[string]string{
	// Server
	"http_port":        "server.port",
	"http_host":        "server.host",
	"read_timeout":     "server.read_timeout",
	"write_timeout":    "server.write_timeout",
	"idle_timeout":     "server.idle_timeout",
	"shutdown_timeout": "server.shutdown_timeout",
	"environment":      "server.environment",

	// Security
	"jwt_secret":          "security.jwt_secret",
	"secret_key":          "security.jwt_secret",
	"token_ttl":           "security.token_ttl",
	"bcrypt_cost":         "security.bcrypt_cost",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"login_rate":          "security.login_rate",
	"login_burst":         "security.login_burst",
	"cors_origins":        "security.cors_origins",

	// Denylist
	"denylist_backend":          "denylist.backend",
	"denylist_badger_path":      "denylist.badger_path",
	"redis_url":                 "denylist.redis_url",
	"denylist_cleanup_interval": "denylist.cleanup_interval",

	// Database
	"database_url":            "database.url",
	"db_max_open_conns":       "database.max_open_conns",
	"db_max_idle_conns":       "database.max_idle_conns",
	"db_conn_max_lifetime":    "database.conn_max_lifetime",
	"db_migrate":              "database.migrate_on_start",
	"db_breaker_max_failures": "database.breaker_max_failures",
	"db_breaker_timeout":      "database.breaker_timeout",

	// Proximity
	"proximity_radius_km": "proximity.radius_km",
	"proximity_limit":     "proximity.limit",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - JWT_SECRET -> security.jwt_secret
//   - DATABASE_URL -> database.url
//   - PROXIMITY_RADIUS_KM -> proximity.radius_km
//
// Returning "" tells koanf to skip the variable.
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}
	return ""
}
