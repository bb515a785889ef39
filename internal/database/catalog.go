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

// AuthorRepository stores artists.
type AuthorRepository struct {
	store *Store
}

const authorsTable = "authors"

func scanAuthor(row rowScanner) (models.Author, error) {
	var a models.Author
	err := row.Scan(&a.ID, &a.Name, &a.FatherLastname, &a.MotherLastname, &a.Birthday, &a.Death)
	return a, err
}

// List returns every active author.
func (r *AuthorRepository) List(ctx context.Context) ([]models.Author, error) {
	authors := []models.Author{}
	err := r.store.run(ctx, "select", authorsTable, func(ctx context.Context) error {
		rows, err := r.store.db.QueryContext(ctx,
			`SELECT id, name, father_lastname, mother_lastname, birthday, death
			 FROM authors WHERE NOT is_delete ORDER BY id`)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			a, err := scanAuthor(rows)
			if err != nil {
				return err
			}
			authors = append(authors, a)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return authors, nil
}

// Get loads one active author.
func (r *AuthorRepository) Get(ctx context.Context, id int64) (*models.Author, error) {
	var a models.Author
	err := r.store.run(ctx, "select", authorsTable, func(ctx context.Context) error {
		var err error
		a, err = scanAuthor(r.store.db.QueryRowContext(ctx,
			`SELECT id, name, father_lastname, mother_lastname, birthday, death
			 FROM authors WHERE id = $1 AND NOT is_delete`, id))
		return err
	})
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts an author. Dates are YYYY-MM-DD strings already validated
// by the caller.
func (r *AuthorRepository) Create(ctx context.Context, req models.AuthorRequest) (int64, error) {
	var id int64
	err := r.store.run(ctx, "insert", authorsTable, func(ctx context.Context) error {
		return r.store.db.QueryRowContext(ctx,
			`INSERT INTO authors (name, father_lastname, mother_lastname, birthday, death)
			 VALUES ($1, COALESCE($2, ''), COALESCE($3, ''), $4::date, $5::date)
			 RETURNING id`,
			req.Name, req.FatherLastname, req.MotherLastname, req.Birthday, req.Death,
		).Scan(&id)
	})
	return id, err
}

// Update applies the non-nil fields of req.
func (r *AuthorRepository) Update(ctx context.Context, id int64, req models.AuthorRequest) error {
	return r.store.run(ctx, "update", authorsTable, func(ctx context.Context) error {
		res, err := r.store.db.ExecContext(ctx,
			`UPDATE authors
			 SET name = COALESCE($2, name),
			     father_lastname = COALESCE($3, father_lastname),
			     mother_lastname = COALESCE($4, mother_lastname),
			     birthday = COALESCE($5::date, birthday),
			     death = COALESCE($6::date, death)
			 WHERE id = $1 AND NOT is_delete`,
			id, req.Name, req.FatherLastname, req.MotherLastname, req.Birthday, req.Death)
		if err != nil {
			return err
		}
		return requireRow(res)
	})
}

// SoftDelete hides an author.
func (r *AuthorRepository) SoftDelete(ctx context.Context, id int64) error {
	return softDelete(ctx, r.store, authorsTable, id)
}

// StyleRepository stores artistic styles.
type StyleRepository struct {
	store *Store
}

const stylesTable = "styles"

// List returns every active style.
func (r *StyleRepository) List(ctx context.Context) ([]models.Style, error) {
	styles := []models.Style{}
	err := r.store.run(ctx, "select", stylesTable, func(ctx context.Context) error {
		rows, err := r.store.db.QueryContext(ctx,
			`SELECT id, name, create_at, update_at FROM styles WHERE NOT is_delete ORDER BY id`)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var s models.Style
			if err := rows.Scan(&s.ID, &s.Name, &s.CreatedAt, &s.UpdatedAt); err != nil {
				return err
			}
			styles = append(styles, s)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return styles, nil
}

// Get loads one active style.
func (r *StyleRepository) Get(ctx context.Context, id int64) (*models.Style, error) {
	var s models.Style
	err := r.store.run(ctx, "select", stylesTable, func(ctx context.Context) error {
		return r.store.db.QueryRowContext(ctx,
			`SELECT id, name, create_at, update_at FROM styles WHERE id = $1 AND NOT is_delete`, id,
		).Scan(&s.ID, &s.Name, &s.CreatedAt, &s.UpdatedAt)
	})
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts a style.
func (r *StyleRepository) Create(ctx context.Context, name string) (int64, error) {
	var id int64
	err := r.store.run(ctx, "insert", stylesTable, func(ctx context.Context) error {
		return r.store.db.QueryRowContext(ctx,
			`INSERT INTO styles (name) VALUES ($1) RETURNING id`, name).Scan(&id)
	})
	return id, err
}

// Update renames a style and bumps update_at.
func (r *StyleRepository) Update(ctx context.Context, id int64, name string) error {
	return r.store.run(ctx, "update", stylesTable, func(ctx context.Context) error {
		res, err := r.store.db.ExecContext(ctx,
			`UPDATE styles SET name = $2, update_at = now() WHERE id = $1 AND NOT is_delete`, id, name)
		if err != nil {
			return err
		}
		return requireRow(res)
	})
}

// SoftDelete hides a style.
func (r *StyleRepository) SoftDelete(ctx context.Context, id int64) error {
	return softDelete(ctx, r.store, stylesTable, id)
}

// NamedRepository serves the lookup tables that only carry a name
// (techniques and materials).
type NamedRepository[T any] struct {
	store *Store
	table string
	build func(id int64, name string) T
}

func newNamedRepository[T any](s *Store, table string, build func(id int64, name string) T) *NamedRepository[T] {
	return &NamedRepository[T]{store: s, table: table, build: build}
}

// List returns every active row.
func (r *NamedRepository[T]) List(ctx context.Context) ([]T, error) {
	items := []T{}
	err := r.store.run(ctx, "select", r.table, func(ctx context.Context) error {
		rows, err := r.store.db.QueryContext(ctx,
			`SELECT id, name FROM `+r.table+` WHERE NOT is_delete ORDER BY id`)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var (
				id   int64
				name string
			)
			if err := rows.Scan(&id, &name); err != nil {
				return err
			}
			items = append(items, r.build(id, name))
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Get loads one active row.
func (r *NamedRepository[T]) Get(ctx context.Context, id int64) (*T, error) {
	var name string
	err := r.store.run(ctx, "select", r.table, func(ctx context.Context) error {
		return r.store.db.QueryRowContext(ctx,
			`SELECT name FROM `+r.table+` WHERE id = $1 AND NOT is_delete`, id).Scan(&name)
	})
	if err != nil {
		return nil, err
	}
	item := r.build(id, name)
	return &item, nil
}

// Create inserts a row.
func (r *NamedRepository[T]) Create(ctx context.Context, name string) (int64, error) {
	var id int64
	err := r.store.run(ctx, "insert", r.table, func(ctx context.Context) error {
		return r.store.db.QueryRowContext(ctx,
			`INSERT INTO `+r.table+` (name) VALUES ($1) RETURNING id`, name).Scan(&id)
	})
	return id, err
}

// Update renames a row.
func (r *NamedRepository[T]) Update(ctx context.Context, id int64, name string) error {
	return r.store.run(ctx, "update", r.table, func(ctx context.Context) error {
		res, err := r.store.db.ExecContext(ctx,
			`UPDATE `+r.table+` SET name = $2 WHERE id = $1 AND NOT is_delete`, id, name)
		if err != nil {
			return err
		}
		return requireRow(res)
	})
}

// SoftDelete hides a row.
func (r *NamedRepository[T]) SoftDelete(ctx context.Context, id int64) error {
	return softDelete(ctx, r.store, r.table, id)
}

// CategoryRepository stores attraction categories.
type CategoryRepository struct {
	store *Store
}

const categoriesTable = "categories"

// List returns every active category.
func (r *CategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	categories := []models.Category{}
	err := r.store.run(ctx, "select", categoriesTable, func(ctx context.Context) error {
		rows, err := r.store.db.QueryContext(ctx,
			`SELECT id, name, description FROM categories WHERE NOT is_delete ORDER BY id`)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var c models.Category
			if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
				return err
			}
			categories = append(categories, c)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// Get loads one active category.
func (r *CategoryRepository) Get(ctx context.Context, id int64) (*models.Category, error) {
	var c models.Category
	err := r.store.run(ctx, "select", categoriesTable, func(ctx context.Context) error {
		return r.store.db.QueryRowContext(ctx,
			`SELECT id, name, description FROM categories WHERE id = $1 AND NOT is_delete`, id,
		).Scan(&c.ID, &c.Name, &c.Description)
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a category.
func (r *CategoryRepository) Create(ctx context.Context, req models.CategoryRequest) (int64, error) {
	var id int64
	err := r.store.run(ctx, "insert", categoriesTable, func(ctx context.Context) error {
		return r.store.db.QueryRowContext(ctx,
			`INSERT INTO categories (name, description) VALUES ($1, COALESCE($2, '')) RETURNING id`,
			req.Name, req.Description).Scan(&id)
	})
	return id, err
}

// Update applies the non-nil fields of req.
func (r *CategoryRepository) Update(ctx context.Context, id int64, req models.CategoryRequest) error {
	return r.store.run(ctx, "update", categoriesTable, func(ctx context.Context) error {
		res, err := r.store.db.ExecContext(ctx,
			`UPDATE categories
			 SET name = COALESCE($2, name), description = COALESCE($3, description)
			 WHERE id = $1 AND NOT is_delete`,
			id, req.Name, req.Description)
		if err != nil {
			return err
		}
		return requireRow(res)
	})
}

// SoftDelete hides a category.
func (r *CategoryRepository) SoftDelete(ctx context.Context, id int64) error {
	return softDelete(ctx, r.store, categoriesTable, id)
}

// MacAddressRepository stores beacon hardware addresses in upper case.
type MacAddressRepository struct {
	store *Store
}

const macAddressesTable = "mac_addresses"

// List returns every active address.
func (r *MacAddressRepository) List(ctx context.Context) ([]models.MacAddress, error) {
	macs := []models.MacAddress{}
	err := r.store.run(ctx, "select", macAddressesTable, func(ctx context.Context) error {
		rows, err := r.store.db.QueryContext(ctx,
			`SELECT id, address FROM mac_addresses WHERE NOT is_delete ORDER BY id`)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var m models.MacAddress
			if err := rows.Scan(&m.ID, &m.Address); err != nil {
				return err
			}
			macs = append(macs, m)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return macs, nil
}

// Get loads one active address.
func (r *MacAddressRepository) Get(ctx context.Context, id int64) (*models.MacAddress, error) {
	var m models.MacAddress
	err := r.store.run(ctx, "select", macAddressesTable, func(ctx context.Context) error {
		return r.store.db.QueryRowContext(ctx,
			`SELECT id, address FROM mac_addresses WHERE id = $1 AND NOT is_delete`, id,
		).Scan(&m.ID, &m.Address)
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create inserts an address.
func (r *MacAddressRepository) Create(ctx context.Context, address string) (int64, error) {
	var id int64
	err := r.store.run(ctx, "insert", macAddressesTable, func(ctx context.Context) error {
		return r.store.db.QueryRowContext(ctx,
			`INSERT INTO mac_addresses (address) VALUES ($1) RETURNING id`,
			NormalizeMAC(address)).Scan(&id)
	})
	return id, err
}

// Update replaces an address.
func (r *MacAddressRepository) Update(ctx context.Context, id int64, address string) error {
	return r.store.run(ctx, "update", macAddressesTable, func(ctx context.Context) error {
		res, err := r.store.db.ExecContext(ctx,
			`UPDATE mac_addresses SET address = $2 WHERE id = $1 AND NOT is_delete`,
			id, NormalizeMAC(address))
		if err != nil {
			return err
		}
		return requireRow(res)
	})
}

// SoftDelete hides an address.
func (r *MacAddressRepository) SoftDelete(ctx context.Context, id int64) error {
	return softDelete(ctx, r.store, macAddressesTable, id)
}

// NormalizeMAC returns addr in upper case colon form.
func NormalizeMAC(addr string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(addr), "-", ":"))
}

// softDelete flags one row of table as deleted. table is a package constant.
func softDelete(ctx context.Context, s *Store, table string, id int64) error {
	return s.run(ctx, "delete", table, func(ctx context.Context) error {
		res, err := s.db.ExecContext(ctx,
			`UPDATE `+table+` SET is_delete = TRUE WHERE id = $1 AND NOT is_delete`, id)
		if err != nil {
			return err
		}
		return requireRow(res)
	})
}
