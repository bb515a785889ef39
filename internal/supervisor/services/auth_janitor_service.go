// Artwalk - Public Art Catalogue and Nearby Attraction Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artwalk

package services

import (
	"context"
	"time"

	"github.com/tomtom215/artwalk/internal/logging"
)

// DefaultJanitorInterval is used when no cleanup interval is configured.
const DefaultJanitorInterval = 10 * time.Minute

// ExpiredTokenCleaner removes denylist entries whose tokens have expired.
// Satisfied by every auth.Denylist implementation.
type ExpiredTokenCleaner interface {
	CleanupExpired(ctx context.Context) (int, error)
}

// ThrottlePruner forgets idle login throttle entries.
// Satisfied by *auth.LoginThrottle.
type ThrottlePruner interface {
	Prune(idle time.Duration) int
}

// AuthJanitorService periodically trims authentication state that would
// otherwise grow without bound: expired denylist entries and per-email login
// limiters that have gone idle. Either collaborator may be nil.
type AuthJanitorService struct {
	denylist ExpiredTokenCleaner
	throttle ThrottlePruner
	interval time.Duration
	name     string
}

// NewAuthJanitorService creates the janitor. A non-positive interval uses
// DefaultJanitorInterval. Throttle entries idle for longer than one interval
// are pruned.
func NewAuthJanitorService(denylist ExpiredTokenCleaner, throttle ThrottlePruner, interval time.Duration) *AuthJanitorService {
	if interval <= 0 {
		interval = DefaultJanitorInterval
	}
	return &AuthJanitorService{
		denylist: denylist,
		throttle: throttle,
		interval: interval,
		name:     "auth-janitor",
	}
}

// Serve implements suture.Service. Cleanup errors are logged and retried on
// the next tick; they never stop the service.
func (s *AuthJanitorService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce performs a single cleanup pass.
func (s *AuthJanitorService) RunOnce(ctx context.Context) {
	log := logging.WithComponent("auth-janitor")

	if s.denylist != nil {
		removed, err := s.denylist.CleanupExpired(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("Denylist cleanup failed")
		} else if removed > 0 {
			log.Debug().Int("removed", removed).Msg("Removed expired denylist entries")
		}
	}

	if s.throttle != nil {
		if pruned := s.throttle.Prune(s.interval); pruned > 0 {
			log.Debug().Int("pruned", pruned).Msg("Pruned idle login throttle entries")
		}
	}
}

// String implements fmt.Stringer; suture uses it in log messages.
func (s *AuthJanitorService) String() string {
	return s.name
}
