// Artwalk - Public Art Catalogue and Nearby Attraction Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artwalk

package auth

import (
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type throttleEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// LoginThrottle limits login attempts per email address.
// Each email gets its own token bucket.
type LoginThrottle struct {
	mu      sync.Mutex
	entries map[string]*throttleEntry
	limit   rate.Limit
	burst   int
	now     func() time.Time
}

// NewLoginThrottle allows perSecond sustained attempts per email with the
// given burst. A non-positive rate disables throttling.
func NewLoginThrottle(perSecond float64, burst int) *LoginThrottle {
	limit := rate.Limit(perSecond)
	if perSecond <= 0 {
		limit = rate.Inf
	}
	if burst < 1 {
		burst = 1
	}
	return &LoginThrottle{
		entries: make(map[string]*throttleEntry),
		limit:   limit,
		burst:   burst,
		now:     time.Now,
	}
}

// Allow consumes one attempt for email and reports whether it is permitted.
func (t *LoginThrottle) Allow(email string) bool {
	key := strings.ToLower(strings.TrimSpace(email))

	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	entry, ok := t.entries[key]
	if !ok {
		entry = &throttleEntry{limiter: rate.NewLimiter(t.limit, t.burst)}
		t.entries[key] = entry
	}
	entry.lastAccess = now
	return entry.limiter.AllowN(now, 1)
}

// Prune forgets emails that have not attempted a login within idle.
// It returns the number of entries removed.
func (t *LoginThrottle) Prune(idle time.Duration) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	cutoff := t.now().Add(-idle)
	removed := 0
	for key, entry := range t.entries {
		if entry.lastAccess.Before(cutoff) {
			delete(t.entries, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked emails.
func (t *LoginThrottle) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}
