// Artwalk - Public Art Catalogue and Nearby Attraction Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artwalk

package auth

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// GateDecisionsTotal counts authentication gate outcomes.
	// Labels:
	//   - outcome: "allowed", "missing", "invalid", "revoked"
	GateDecisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_gate_decisions_total",
			Help: "Total number of authentication gate decisions",
		},
		[]string{"outcome"},
	)

	// TokensIssuedTotal counts tokens minted by the codec.
	TokensIssuedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "auth_tokens_issued_total",
			Help: "Total number of bearer tokens issued",
		},
	)

	// DenylistOperationsTotal counts denylist operations.
	// Labels:
	//   - backend: "memory", "badger", "redis"
	//   - operation: "revoke", "check", "cleanup"
	//   - outcome: "success", "failure"
	DenylistOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_denylist_operations_total",
			Help: "Total number of token denylist operations",
		},
		[]string{"backend", "operation", "outcome"},
	)

	// DenylistCleanedUpTotal counts expired denylist entries removed by cleanup.
	DenylistCleanedUpTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "auth_denylist_cleaned_up_total",
			Help: "Total number of expired denylist entries cleaned up",
		},
	)

	// LoginAttemptsTotal counts login attempts by outcome.
	// Labels:
	//   - outcome: "success", "invalid_credentials", "throttled", "error"
	LoginAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_login_attempts_total",
			Help: "Total number of login attempts",
		},
		[]string{"outcome"},
	)
)

func recordDenylistOp(backend, operation string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	DenylistOperationsTotal.WithLabelValues(backend, operation, outcome).Inc()
}
