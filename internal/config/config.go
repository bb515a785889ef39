// Artwalk - Public Art Catalogue and Nearby Attraction Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artwalk

// Package config loads Artwalk configuration from built-in defaults, an
// optional YAML file and environment variables (in that order of precedence,
// lowest first). See LoadWithKoanf.
package config

import (
	"fmt"
	"time"
)

// Config is the root configuration object.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Security  SecurityConfig  `koanf:"security"`
	Denylist  DenylistConfig  `koanf:"denylist"`
	Database  DatabaseConfig  `koanf:"database"`
	Proximity ProximityConfig `koanf:"proximity"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // development, staging, production
}

// Address returns host:port for http.Server.Addr.
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// SecurityConfig holds token signing and request throttling settings.
//
// Environment Variables:
//   - JWT_SECRET (or SECRET_KEY): HS256 signing secret, at least 32 characters
//   - TOKEN_TTL: token lifetime (default: 24h)
//   - BCRYPT_COST: password hashing cost (default: 12)
//   - RATE_LIMIT_REQUESTS / RATE_LIMIT_WINDOW / DISABLE_RATE_LIMIT
//   - LOGIN_RATE / LOGIN_BURST: per-email login attempts per second and burst
//   - CORS_ORIGINS: comma-separated list of allowed origins
type SecurityConfig struct {
	JWTSecret         string        `koanf:"jwt_secret"`
	TokenTTL          time.Duration `koanf:"token_ttl"`
	BcryptCost        int           `koanf:"bcrypt_cost"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	LoginRate         float64       `koanf:"login_rate"`
	LoginBurst        int           `koanf:"login_burst"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// DenylistConfig selects where revoked token ids are kept.
type DenylistConfig struct {
	// Backend is one of memory, badger, redis.
	Backend         string        `koanf:"backend"`
	BadgerPath      string        `koanf:"badger_path"`
	RedisURL        string        `koanf:"redis_url"`
	CleanupInterval time.Duration `koanf:"cleanup_interval"`
}

// DatabaseConfig holds PostgreSQL settings
type DatabaseConfig struct {
	URL             string        `koanf:"url"`
	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	MigrateOnStart  bool          `koanf:"migrate_on_start"`

	// Circuit breaker guarding repository calls.
	BreakerMaxFailures uint32        `koanf:"breaker_max_failures"`
	BreakerTimeout     time.Duration `koanf:"breaker_timeout"`
}

// ProximityConfig holds the defaults for the nearest-attractions query.
type ProximityConfig struct {
	RadiusKm float64 `koanf:"radius_km"`
	Limit    int     `koanf:"limit"`
}

// LoggingConfig holds logging settings for zerolog.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load reads configuration from defaults, config file and environment.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
