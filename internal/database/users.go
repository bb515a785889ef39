// Artwalk - Public Art Catalogue and Nearby Attraction Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artwalk

package database

import (
	"context"
	"strings"

	"github.com/tomtom215/artwalk/internal/models"
)

const usersTable = "users"

// UserRepository is the credential store. Emails are compared case-insensitively.
type UserRepository struct {
	store *Store
}

// Create inserts a user with an already hashed password and returns its id.
// A duplicate email yields ErrConflict.
func (r *UserRepository) Create(ctx context.Context, name, email, passwordHash string) (int64, error) {
	var id int64
	err := r.store.run(ctx, "insert", usersTable, func(ctx context.Context) error {
		return r.store.db.QueryRowContext(ctx,
			`INSERT INTO users (name, email, password)
			 VALUES ($1, $2, $3)
			 RETURNING id`,
			name, normalizeEmail(email), passwordHash,
		).Scan(&id)
	})
	return id, err
}

// GetByEmail loads a user including the password hash.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := r.store.run(ctx, "select", usersTable, func(ctx context.Context) error {
		return r.store.db.QueryRowContext(ctx,
			`SELECT id, name, email, password, created_at, updated_at
			 FROM users
			 WHERE lower(email) = $1`,
			normalizeEmail(email),
		).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Get loads a user by id without the password hash.
func (r *UserRepository) Get(ctx context.Context, id int64) (*models.User, error) {
	var u models.User
	err := r.store.run(ctx, "select", usersTable, func(ctx context.Context) error {
		return r.store.db.QueryRowContext(ctx,
			`SELECT id, name, email, created_at, updated_at
			 FROM users
			 WHERE id = $1`,
			id,
		).Scan(&u.ID, &u.Name, &u.Email, &u.CreatedAt, &u.UpdatedAt)
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// List returns every user ordered by id, without password hashes.
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	err := r.store.run(ctx, "select", usersTable, func(ctx context.Context) error {
		rows, err := r.store.db.QueryContext(ctx,
			`SELECT id, name, email, created_at, updated_at
			 FROM users
			 ORDER BY id`)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var u models.User
			if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.CreatedAt, &u.UpdatedAt); err != nil {
				return err
			}
			users = append(users, u)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

// Update applies the non-nil fields of patch.
func (r *UserRepository) Update(ctx context.Context, id int64, patch models.UserPatch) error {
	var email *string
	if patch.Email != nil {
		normalized := normalizeEmail(*patch.Email)
		email = &normalized
	}

	return r.store.run(ctx, "update", usersTable, func(ctx context.Context) error {
		res, err := r.store.db.ExecContext(ctx,
			`UPDATE users
			 SET name = COALESCE($2, name),
			     email = COALESCE($3, email),
			     password = COALESCE($4, password),
			     updated_at = now()
			 WHERE id = $1`,
			id, patch.Name, email, patch.PasswordHash)
		if err != nil {
			return err
		}
		return requireRow(res)
	})
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
