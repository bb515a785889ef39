// Artwalk - Public Art Catalogue and Nearby Attraction Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artwalk

package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/tomtom215/artwalk/internal/config"
)

func newInMemoryBadger(t *testing.T) *badger.DB {
	t.Helper()
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		t.Fatalf("open badger: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestDenylists(t *testing.T) {
	t.Parallel()

	backends := map[string]func(t *testing.T) Denylist{
		"memory": func(t *testing.T) Denylist { return NewMemoryDenylist() },
		"badger": func(t *testing.T) Denylist { return NewBadgerDenylist(newInMemoryBadger(t), "") },
	}

	for name, factory := range backends {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()
			d := factory(t)
			defer d.Close()

			revoked, err := d.IsRevoked(ctx, "jti-1")
			if err != nil || revoked {
				t.Fatalf("IsRevoked() on empty denylist = %v, %v", revoked, err)
			}

			if err := d.Revoke(ctx, "jti-1", time.Now().Add(time.Hour)); err != nil {
				t.Fatalf("Revoke() error = %v", err)
			}
			revoked, err = d.IsRevoked(ctx, "jti-1")
			if err != nil || !revoked {
				t.Fatalf("IsRevoked() after revoke = %v, %v", revoked, err)
			}

			revoked, _ = d.IsRevoked(ctx, "jti-2")
			if revoked {
				t.Error("unrelated jti should not be revoked")
			}

			if _, err := d.CleanupExpired(ctx); err != nil {
				t.Fatalf("CleanupExpired() error = %v", err)
			}
			revoked, _ = d.IsRevoked(ctx, "jti-1")
			if !revoked {
				t.Error("unexpired entry should survive cleanup")
			}

			if err := d.Close(); err != nil {
				t.Fatalf("Close() error = %v", err)
			}
			if _, err := d.IsRevoked(ctx, "jti-1"); !errors.Is(err, ErrDenylistClosed) {
				t.Errorf("IsRevoked() after Close error = %v, want ErrDenylistClosed", err)
			}
		})
	}
}

func TestMemoryDenylist_CleanupExpired(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	d := NewMemoryDenylist()

	_ = d.Revoke(ctx, "old", time.Now().Add(-time.Minute))
	_ = d.Revoke(ctx, "fresh", time.Now().Add(time.Hour))

	revoked, _ := d.IsRevoked(ctx, "old")
	if revoked {
		t.Error("expired entry should read as not revoked")
	}

	removed, err := d.CleanupExpired(ctx)
	if err != nil {
		t.Fatalf("CleanupExpired() error = %v", err)
	}
	if removed != 1 {
		t.Errorf("CleanupExpired() removed %d, want 1", removed)
	}
	if d.Size() != 1 {
		t.Errorf("Size() = %d, want 1", d.Size())
	}
}

func TestBadgerDenylist_SkipsExpiredTokens(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	d := NewBadgerDenylist(newInMemoryBadger(t), "test:")

	if err := d.Revoke(ctx, "old", time.Now().Add(-time.Minute)); err != nil {
		t.Fatalf("Revoke() error = %v", err)
	}
	revoked, err := d.IsRevoked(ctx, "old")
	if err != nil {
		t.Fatalf("IsRevoked() error = %v", err)
	}
	if revoked {
		t.Error("already expired token should not be stored")
	}
}

func TestBadgerDenylist_Persists(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := t.TempDir()

	d, err := OpenBadgerDenylist(path)
	if err != nil {
		t.Fatalf("OpenBadgerDenylist() error = %v", err)
	}
	if err := d.Revoke(ctx, "jti-1", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("Revoke() error = %v", err)
	}
	if err := d.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reopened, err := OpenBadgerDenylist(path)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer reopened.Close()

	revoked, err := reopened.IsRevoked(ctx, "jti-1")
	if err != nil {
		t.Fatalf("IsRevoked() error = %v", err)
	}
	if !revoked {
		t.Error("revocation should survive a restart")
	}
}

func TestNewDenylist(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     config.DenylistConfig
		wantErr bool
	}{
		{name: "default memory", cfg: config.DenylistConfig{}},
		{name: "memory", cfg: config.DenylistConfig{Backend: "Memory"}},
		{name: "badger", cfg: config.DenylistConfig{Backend: "badger", BadgerPath: t.TempDir()}},
		{name: "redis bad url", cfg: config.DenylistConfig{Backend: "redis", RedisURL: "::bad"}, wantErr: true},
		{name: "unknown", cfg: config.DenylistConfig{Backend: "etcd"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d, err := NewDenylist(&tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("NewDenylist() expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewDenylist() error = %v", err)
			}
			_ = d.Close()
		})
	}
}
