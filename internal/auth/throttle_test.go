// Artwalk - Public Art Catalogue and Nearby Attraction Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artwalk

package auth

import (
	"testing"
	"time"
)

func TestLoginThrottle_Allow(t *testing.T) {
	t.Parallel()

	throttle := NewLoginThrottle(0.001, 3)
	for i := 0; i < 3; i++ {
		if !throttle.Allow("ana@example.com") {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
	}
	if throttle.Allow("ANA@example.com ") {
		t.Error("fourth attempt for the same email should be throttled")
	}
	if !throttle.Allow("bob@example.com") {
		t.Error("other emails keep their own budget")
	}
}

func TestLoginThrottle_Disabled(t *testing.T) {
	t.Parallel()

	throttle := NewLoginThrottle(0, 1)
	for i := 0; i < 50; i++ {
		if !throttle.Allow("ana@example.com") {
			t.Fatalf("attempt %d throttled with throttling disabled", i+1)
		}
	}
}

func TestLoginThrottle_Prune(t *testing.T) {
	t.Parallel()

	now := time.Now()
	throttle := NewLoginThrottle(1, 1)
	throttle.now = func() time.Time { return now.Add(-2 * time.Hour) }
	throttle.Allow("stale@example.com")
	throttle.now = func() time.Time { return now }
	throttle.Allow("fresh@example.com")

	if removed := throttle.Prune(time.Hour); removed != 1 {
		t.Errorf("Prune() removed %d, want 1", removed)
	}
	if throttle.Len() != 1 {
		t.Errorf("Len() = %d, want 1", throttle.Len())
	}
}
