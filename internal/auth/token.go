// Artwalk - Public Art Catalogue and Nearby Attraction Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artwalk

package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/tomtom215/artwalk/internal/logging"
)

// DefaultTokenTTL is the lifetime given to tokens when configuration omits one.
const DefaultTokenTTL = 24 * time.Hour

// Claims is the verified payload of a bearer token.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Identity returns the email the token was issued for.
func (c *Claims) Identity() string {
	return c.Email
}

// TokenCodec issues and verifies HS256 bearer tokens.
// The secret is supplied at construction and never read from globals.
type TokenCodec struct {
	secret   []byte
	ttl      time.Duration
	denylist Denylist
	now      func() time.Time
}

// NewTokenCodec creates a codec signing with secret. Every issued token expires
// after ttl. A nil denylist selects an in-process MemoryDenylist.
func NewTokenCodec(secret []byte, ttl time.Duration, denylist Denylist) (*TokenCodec, error) {
	if len(secret) == 0 {
		return nil, ErrMissingSecret
	}
	if ttl <= 0 {
		return nil, ErrInvalidTTL
	}
	if denylist == nil {
		denylist = NewMemoryDenylist()
	}

	key := make([]byte, len(secret))
	copy(key, secret)

	return &TokenCodec{
		secret:   key,
		ttl:      ttl,
		denylist: denylist,
		now:      time.Now,
	}, nil
}

// TTL returns the lifetime given to issued tokens.
func (c *TokenCodec) TTL() time.Duration {
	return c.ttl
}

// Issue mints a signed token identifying email. The token is opaque to clients.
func (c *TokenCodec) Issue(email string) (string, error) {
	if strings.TrimSpace(email) == "" {
		return "", fmt.Errorf("issue token: email is required")
	}

	now := c.now()
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	TokensIssuedTotal.Inc()
	return signed, nil
}

// Verify checks the signature, algorithm, expiry and revocation state of raw
// and returns its claims. Any failure yields an error wrapping ErrInvalidToken.
// A denylist that cannot be consulted fails closed.
func (c *TokenCodec) Verify(ctx context.Context, raw string) (*Claims, error) {
	claims, err := c.parse(raw)
	if err != nil {
		return nil, err
	}

	revoked, err := c.denylist.IsRevoked(ctx, claims.ID)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Msg("Denylist lookup failed, rejecting token")
		return nil, fmt.Errorf("%w: denylist unavailable", ErrInvalidToken)
	}
	if revoked {
		return nil, ErrTokenRevoked
	}

	return claims, nil
}

// Revoke records the jti of raw in the denylist until the token expires.
// Revoking an invalid token reports ErrInvalidToken.
func (c *TokenCodec) Revoke(ctx context.Context, raw string) error {
	claims, err := c.parse(raw)
	if err != nil {
		return err
	}
	if err := c.denylist.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

func (c *TokenCodec) parse(raw string) (*Claims, error) {
	if raw == "" {
		return nil, fmt.Errorf("%w: empty token", ErrInvalidToken)
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(c.now),
	)

	claims := &Claims{}
	token, err := parser.ParseWithClaims(raw, claims, func(_ *jwt.Token) (interface{}, error) {
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: token expired", ErrInvalidToken)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Email == "" || claims.ID == "" {
		return nil, fmt.Errorf("%w: missing identity claims", ErrInvalidToken)
	}

	return claims, nil
}
