// Artwalk - Public Art Catalogue and Nearby Attraction Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artwalk

// Package auth issues and verifies bearer tokens, guards protected routes,
// and hashes user passwords.
//
// A token is an HS256 JWT carrying the user's email and a unique jti.
// Tokens always expire; logout revokes a token early by recording its jti
// in a Denylist until the token's own expiry passes.
package auth

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidToken covers every reason a presented token is rejected:
	// bad signature, wrong algorithm, malformed payload, expiry, missing claims.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenRevoked is returned for a well-formed token whose jti was revoked.
	// It wraps ErrInvalidToken so callers can treat both the same way.
	ErrTokenRevoked = fmt.Errorf("token revoked: %w", ErrInvalidToken)

	// ErrInvalidCredentials is returned when an email/password pair does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrMissingSecret is returned when a codec is built without a signing secret.
	ErrMissingSecret = errors.New("signing secret is required")

	// ErrInvalidTTL is returned when a codec is built with a non-positive lifetime.
	ErrInvalidTTL = errors.New("token lifetime must be positive")

	// ErrDenylistClosed is returned by a denylist after Close.
	ErrDenylistClosed = errors.New("denylist is closed")
)
