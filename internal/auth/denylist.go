// Artwalk - Public Art Catalogue and Nearby Attraction Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artwalk

package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/tomtom215/artwalk/internal/logging"
)

// Denylist records revoked token ids until the token would have expired anyway.
// Entries past their expiry are treated as absent.
type Denylist interface {
	// Revoke marks jti revoked until expiresAt.
	Revoke(ctx context.Context, jti string, expiresAt time.Time) error

	// IsRevoked reports whether jti is currently revoked.
	IsRevoked(ctx context.Context, jti string) (bool, error)

	// CleanupExpired drops entries whose expiry has passed and returns how many.
	CleanupExpired(ctx context.Context) (int, error)

	// Close releases resources held by the denylist.
	Close() error
}

// MemoryDenylist is an in-process Denylist. Revocations are lost on restart
// and are not shared between instances.
type MemoryDenylist struct {
	mu      sync.RWMutex
	entries map[string]time.Time
	closed  bool
	now     func() time.Time
}

// NewMemoryDenylist creates an empty in-memory denylist.
func NewMemoryDenylist() *MemoryDenylist {
	return &MemoryDenylist{
		entries: make(map[string]time.Time),
		now:     time.Now,
	}
}

// Revoke implements Denylist.
func (d *MemoryDenylist) Revoke(_ context.Context, jti string, expiresAt time.Time) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		recordDenylistOp("memory", "revoke", ErrDenylistClosed)
		return ErrDenylistClosed
	}

	d.entries[jti] = expiresAt
	recordDenylistOp("memory", "revoke", nil)
	return nil
}

// IsRevoked implements Denylist.
func (d *MemoryDenylist) IsRevoked(_ context.Context, jti string) (bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return false, ErrDenylistClosed
	}

	expiresAt, ok := d.entries[jti]
	if !ok {
		return false, nil
	}
	return d.now().Before(expiresAt), nil
}

// CleanupExpired implements Denylist.
func (d *MemoryDenylist) CleanupExpired(_ context.Context) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return 0, ErrDenylistClosed
	}

	count := 0
	now := d.now()
	for jti, expiresAt := range d.entries {
		if !now.Before(expiresAt) {
			delete(d.entries, jti)
			count++
		}
	}

	recordDenylistOp("memory", "cleanup", nil)
	DenylistCleanedUpTotal.Add(float64(count))
	return count, nil
}

// Size returns the number of stored entries, expired ones included.
func (d *MemoryDenylist) Size() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.entries)
}

// Close implements Denylist.
func (d *MemoryDenylist) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	d.entries = nil
	return nil
}

// BadgerDenylist persists revocations in BadgerDB so they survive restarts.
// Entries carry a Badger TTL matching the token expiry.
type BadgerDenylist struct {
	db     *badger.DB
	prefix []byte
	ownsDB bool
	closed bool
	mu     sync.RWMutex
}

// NewBadgerDenylist wraps an already opened Badger database.
// The caller keeps ownership of db.
func NewBadgerDenylist(db *badger.DB, prefix string) *BadgerDenylist {
	if prefix == "" {
		prefix = "denylist:"
	}
	return &BadgerDenylist{
		db:     db,
		prefix: []byte(prefix),
	}
}

// OpenBadgerDenylist opens (or creates) a Badger database at path and returns
// a denylist that closes it on Close.
func OpenBadgerDenylist(path string) (*BadgerDenylist, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger denylist at %s: %w", path, err)
	}
	d := NewBadgerDenylist(db, "")
	d.ownsDB = true
	return d, nil
}

func (d *BadgerDenylist) makeKey(jti string) []byte {
	key := make([]byte, 0, len(d.prefix)+len(jti))
	key = append(key, d.prefix...)
	return append(key, jti...)
}

func (d *BadgerDenylist) isClosed() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.closed
}

// Revoke implements Denylist. Already expired tokens are not stored.
func (d *BadgerDenylist) Revoke(_ context.Context, jti string, expiresAt time.Time) error {
	if d.isClosed() {
		recordDenylistOp("badger", "revoke", ErrDenylistClosed)
		return ErrDenylistClosed
	}

	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		recordDenylistOp("badger", "revoke", nil)
		return nil
	}

	value := []byte(strconv.FormatInt(expiresAt.Unix(), 10))
	err := d.db.Update(func(txn *badger.Txn) error {
		return txn.SetEntry(badger.NewEntry(d.makeKey(jti), value).WithTTL(ttl))
	})
	recordDenylistOp("badger", "revoke", err)
	if err != nil {
		return fmt.Errorf("store revoked jti: %w", err)
	}
	return nil
}

// IsRevoked implements Denylist.
func (d *BadgerDenylist) IsRevoked(_ context.Context, jti string) (bool, error) {
	if d.isClosed() {
		return false, ErrDenylistClosed
	}

	revoked := false
	err := d.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(d.makeKey(jti))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		revoked = true
		return nil
	})
	recordDenylistOp("badger", "check", err)
	if err != nil {
		return false, fmt.Errorf("check revoked jti: %w", err)
	}
	return revoked, nil
}

// CleanupExpired implements Denylist. Badger already hides expired keys; this
// removes them eagerly so the value log can be reclaimed.
func (d *BadgerDenylist) CleanupExpired(_ context.Context) (int, error) {
	if d.isClosed() {
		return 0, ErrDenylistClosed
	}

	var expired [][]byte
	now := time.Now().Unix()

	err := d.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		opts.Prefix = d.prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			var expiresAt int64
			if err := item.Value(func(val []byte) error {
				v, parseErr := strconv.ParseInt(string(val), 10, 64)
				expiresAt = v
				return parseErr
			}); err != nil {
				expired = append(expired, item.KeyCopy(nil))
				continue
			}
			if expiresAt <= now {
				expired = append(expired, item.KeyCopy(nil))
			}
		}
		return nil
	})
	if err != nil {
		recordDenylistOp("badger", "cleanup", err)
		return 0, fmt.Errorf("scan denylist: %w", err)
	}

	if len(expired) > 0 {
		err = d.db.Update(func(txn *badger.Txn) error {
			for _, key := range expired {
				if err := txn.Delete(key); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			recordDenylistOp("badger", "cleanup", err)
			return 0, fmt.Errorf("delete expired denylist entries: %w", err)
		}
	}

	recordDenylistOp("badger", "cleanup", nil)
	DenylistCleanedUpTotal.Add(float64(len(expired)))
	logging.Debug().Int("removed", len(expired)).Msg("Denylist cleanup complete")
	return len(expired), nil
}

// Close implements Denylist. The underlying database is closed only when it
// was opened by OpenBadgerDenylist.
func (d *BadgerDenylist) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil
	}
	d.closed = true
	if d.ownsDB {
		return d.db.Close()
	}
	return nil
}
