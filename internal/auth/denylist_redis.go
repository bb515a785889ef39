// Artwalk - Public Art Catalogue and Nearby Attraction Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artwalk

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisDenylist shares revocations between server instances through Redis.
// Each entry is a key with an expiry equal to the token's remaining lifetime.
type RedisDenylist struct {
	client *redis.Client
	prefix string
}

// NewRedisDenylist connects to the Redis server described by url
// (redis://[:password@]host:port/db).
func NewRedisDenylist(url string) (*RedisDenylist, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return NewRedisDenylistFromClient(redis.NewClient(opts), ""), nil
}

// NewRedisDenylistFromClient wraps an existing client.
func NewRedisDenylistFromClient(client *redis.Client, prefix string) *RedisDenylist {
	if prefix == "" {
		prefix = "artwalk:denylist:"
	}
	return &RedisDenylist{client: client, prefix: prefix}
}

// Ping checks that the Redis server is reachable.
func (d *RedisDenylist) Ping(ctx context.Context) error {
	return d.client.Ping(ctx).Err()
}

// Revoke implements Denylist.
func (d *RedisDenylist) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	err := d.client.Set(ctx, d.prefix+jti, expiresAt.Unix(), ttl).Err()
	recordDenylistOp("redis", "revoke", err)
	if err != nil {
		return fmt.Errorf("store revoked jti: %w", err)
	}
	return nil
}

// IsRevoked implements Denylist.
func (d *RedisDenylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := d.client.Exists(ctx, d.prefix+jti).Result()
	recordDenylistOp("redis", "check", err)
	if err != nil {
		return false, fmt.Errorf("check revoked jti: %w", err)
	}
	return n > 0, nil
}

// CleanupExpired implements Denylist. Redis expires keys on its own.
func (d *RedisDenylist) CleanupExpired(_ context.Context) (int, error) {
	return 0, nil
}

// Close implements Denylist.
func (d *RedisDenylist) Close() error {
	return d.client.Close()
}
