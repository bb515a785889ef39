// Artwalk - Public Art Catalogue and Nearby Attraction Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artwalk

package auth

import (
	"fmt"
	"strings"

	"github.com/tomtom215/artwalk/internal/config"
	"github.com/tomtom215/artwalk/internal/logging"
)

// Denylist backends accepted in configuration.
const (
	DenylistBackendMemory = "memory"
	DenylistBackendBadger = "badger"
	DenylistBackendRedis  = "redis"
)

// NewDenylist builds the denylist selected by cfg.Backend.
func NewDenylist(cfg *config.DenylistConfig) (Denylist, error) {
	backend := strings.ToLower(strings.TrimSpace(cfg.Backend))
	switch backend {
	case "", DenylistBackendMemory:
		logging.Info().Str("backend", DenylistBackendMemory).Msg("Token denylist initialized")
		return NewMemoryDenylist(), nil

	case DenylistBackendBadger:
		d, err := OpenBadgerDenylist(cfg.BadgerPath)
		if err != nil {
			return nil, err
		}
		logging.Info().
			Str("backend", DenylistBackendBadger).
			Str("path", cfg.BadgerPath).
			Msg("Token denylist initialized")
		return d, nil

	case DenylistBackendRedis:
		d, err := NewRedisDenylist(cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		logging.Info().Str("backend", DenylistBackendRedis).Msg("Token denylist initialized")
		return d, nil

	default:
		return nil, fmt.Errorf("unknown denylist backend %q", cfg.Backend)
	}
}
