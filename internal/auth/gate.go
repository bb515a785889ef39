// Artwalk - Public Art Catalogue and Nearby Attraction Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artwalk

package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/artwalk/internal/logging"
)

type contextKey string

const claimsContextKey contextKey = "auth.claims"

// TokenVerifier validates a raw bearer token. *TokenCodec implements it.
type TokenVerifier interface {
	Verify(ctx context.Context, raw string) (*Claims, error)
}

// Gate rejects requests that do not carry a valid bearer token.
// It never calls the wrapped handler for a rejected request.
type Gate struct {
	verifier TokenVerifier
}

// NewGate creates a gate backed by verifier.
func NewGate(verifier TokenVerifier) *Gate {
	return &Gate{verifier: verifier}
}

// Authenticate wraps next so that it only runs for authenticated requests.
// The verified claims are available to next through ClaimsFromContext.
func (g *Gate) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := BearerToken(r)
		if !ok {
			GateDecisionsTotal.WithLabelValues("missing").Inc()
			writeUnauthorized(w)
			return
		}

		claims, err := g.verifier.Verify(r.Context(), raw)
		if err != nil {
			outcome := "invalid"
			if errors.Is(err, ErrTokenRevoked) {
				outcome = "revoked"
			}
			GateDecisionsTotal.WithLabelValues(outcome).Inc()
			logging.Ctx(r.Context()).Debug().
				Err(err).
				Str("path", r.URL.Path).
				Msg("Rejected bearer token")
			writeUnauthorized(w)
			return
		}

		GateDecisionsTotal.WithLabelValues("allowed").Inc()
		next.ServeHTTP(w, r.WithContext(ContextWithClaims(r.Context(), claims)))
	})
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
// The scheme is matched case-insensitively.
func BearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}
	return token, true
}

// ContextWithClaims stores verified claims in ctx.
func ContextWithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

// ClaimsFromContext returns the claims stored by the gate, if any.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(*Claims)
	return claims, ok && claims != nil
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", `Bearer realm="artwalk"`)
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(map[string]string{"message": "unauthorized"}); err != nil {
		logging.Error().Err(err).Msg("Failed to encode unauthorized response")
	}
}
