// Artwalk - Public Art Catalogue and Nearby Attraction Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artwalk

package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/tomtom215/artwalk/internal/logging"
	"github.com/tomtom215/artwalk/internal/metrics"
	"github.com/tomtom215/artwalk/internal/models"
)

// Store owns the connection pool and hands out the entity repositories.
type Store struct {
	db      *sql.DB
	breaker *Breaker

	users       *UserRepository
	attractions *AttractionRepository
	authors     *AuthorRepository
	styles      *StyleRepository
	techniques  *NamedRepository[models.Technique]
	materials   *NamedRepository[models.Material]
	categories  *CategoryRepository
	macs        *MacAddressRepository
}

// NewStore wires the repositories around db. breaker may be nil, in which
// case calls go straight to the database.
func NewStore(db *sql.DB, breaker *Breaker) *Store {
	s := &Store{db: db, breaker: breaker}
	s.users = &UserRepository{store: s}
	s.attractions = &AttractionRepository{store: s}
	s.authors = &AuthorRepository{store: s}
	s.styles = &StyleRepository{store: s}
	s.techniques = newNamedRepository(s, "techniques", func(id int64, name string) models.Technique {
		return models.Technique{ID: id, Name: name}
	})
	s.materials = newNamedRepository(s, "materials", func(id int64, name string) models.Material {
		return models.Material{ID: id, Name: name}
	})
	s.categories = &CategoryRepository{store: s}
	s.macs = &MacAddressRepository{store: s}
	return s
}

// DB returns the underlying pool.
func (s *Store) DB() *sql.DB { return s.db }

// Users returns the credential store.
func (s *Store) Users() *UserRepository { return s.users }

// Attractions returns the attraction repository.
func (s *Store) Attractions() *AttractionRepository { return s.attractions }

// Authors returns the author repository.
func (s *Store) Authors() *AuthorRepository { return s.authors }

// Styles returns the style repository.
func (s *Store) Styles() *StyleRepository { return s.styles }

// Techniques returns the technique repository.
func (s *Store) Techniques() *NamedRepository[models.Technique] { return s.techniques }

// Materials returns the material repository.
func (s *Store) Materials() *NamedRepository[models.Material] { return s.materials }

// Categories returns the category repository.
func (s *Store) Categories() *CategoryRepository { return s.categories }

// MacAddresses returns the MAC address repository.
func (s *Store) MacAddresses() *MacAddressRepository { return s.macs }

// Ping checks connectivity for the readiness probe. It bypasses the breaker
// so the probe reports the real state of the server.
func (s *Store) Ping(ctx context.Context) error {
	err := s.db.PingContext(ctx)
	metrics.RecordDBStats(s.db.Stats())
	return classify(err)
}

// Close releases the pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// run executes one repository operation under the breaker, records its
// duration and maps the error onto the package sentinels.
func (s *Store) run(ctx context.Context, op, table string, fn func(ctx context.Context) error) error {
	start := time.Now()
	err := classify(s.breaker.Do(ctx, fn))
	metrics.RecordDBQuery(op, table, time.Since(start), errorLabel(err))

	if label := errorLabel(err); label == "other" || label == "unavailable" {
		logging.Ctx(ctx).Error().Err(err).
			Str("operation", op).
			Str("table", table).
			Msg("Database query failed")
	}
	return err
}

// tx runs fn inside a transaction as a single breaker-guarded operation.
func (s *Store) tx(ctx context.Context, op, table string, fn func(ctx context.Context, tx DBTX) error) error {
	return s.run(ctx, op, table, func(ctx context.Context) error {
		return WithTx(ctx, s.db, fn)
	})
}

// requireRow turns an UPDATE or soft delete that matched nothing into ErrNotFound.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
