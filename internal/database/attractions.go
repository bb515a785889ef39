// Artwalk - Public Art Catalogue and Nearby Attraction Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artwalk

package database

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"github.com/tomtom215/artwalk/internal/models"
)

const attractionsTable = "attractions"

// attractionColumns selects one attraction with its active material and
// technique ids aggregated into arrays.
const attractionColumns = `
	a.id, a.name, a.lat, a.lng, a.description, a.img, a.size,
	a.id_author, a.id_style, a.id_user, a.id_mac_address, a.id_category,
	COALESCE((SELECT array_agg(am.id_material ORDER BY am.id_material)
	          FROM attraction_materials am
	          WHERE am.id_attraction = a.id AND NOT am.is_delete), '{}') AS materials,
	COALESCE((SELECT array_agg(at.id_technique ORDER BY at.id_technique)
	          FROM attraction_techniques at
	          WHERE at.id_attraction = a.id AND NOT at.is_delete), '{}') AS techniques`

// AttractionRepository stores attractions and their material and technique sets.
type AttractionRepository struct {
	store *Store
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAttraction(row rowScanner) (models.Attraction, error) {
	var (
		a   models.Attraction
		img []byte
	)
	err := row.Scan(
		&a.ID, &a.Name, &a.Lat, &a.Lng, &a.Description, &img, &a.Size,
		&a.AuthorID, &a.StyleID, &a.UserID, &a.MacAddressID, &a.CategoryID,
		pq.Array(&a.MaterialIDs), pq.Array(&a.TechniqueIDs),
	)
	if err != nil {
		return a, err
	}
	if img != nil {
		a.Img = img
	}
	if a.MaterialIDs == nil {
		a.MaterialIDs = []int64{}
	}
	if a.TechniqueIDs == nil {
		a.TechniqueIDs = []int64{}
	}
	return a, nil
}

// List returns every attraction that is not soft-deleted.
func (r *AttractionRepository) List(ctx context.Context) ([]models.Attraction, error) {
	return r.list(ctx)
}

// ListActive returns the ranking candidates: every attraction that is not
// soft-deleted. This is the only place soft-deleted attractions are filtered
// out for proximity queries.
func (r *AttractionRepository) ListActive(ctx context.Context) ([]models.Attraction, error) {
	return r.list(ctx)
}

func (r *AttractionRepository) list(ctx context.Context) ([]models.Attraction, error) {
	attractions := []models.Attraction{}
	err := r.store.run(ctx, "select", attractionsTable, func(ctx context.Context) error {
		rows, err := r.store.db.QueryContext(ctx,
			`SELECT `+attractionColumns+`
			 FROM attractions a
			 WHERE NOT a.is_delete
			 ORDER BY a.id`)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			a, err := scanAttraction(rows)
			if err != nil {
				return err
			}
			attractions = append(attractions, a)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return attractions, nil
}

// Get loads one active attraction.
func (r *AttractionRepository) Get(ctx context.Context, id int64) (*models.Attraction, error) {
	var a models.Attraction
	err := r.store.run(ctx, "select", attractionsTable, func(ctx context.Context) error {
		var err error
		a, err = scanAttraction(r.store.db.QueryRowContext(ctx,
			`SELECT `+attractionColumns+`
			 FROM attractions a
			 WHERE a.id = $1 AND NOT a.is_delete`, id))
		return err
	})
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts an attraction and its material and technique sets in one
// transaction. userID is the editor who created it.
func (r *AttractionRepository) Create(ctx context.Context, req models.AttractionRequest, userID *int64) (int64, error) {
	var id int64
	err := r.store.tx(ctx, "insert", attractionsTable, func(ctx context.Context, tx DBTX) error {
		err := tx.QueryRowContext(ctx,
			`INSERT INTO attractions
			   (name, lat, lng, description, img, size,
			    id_author, id_style, id_user, id_mac_address, id_category)
			 VALUES ($1, $2, $3, COALESCE($4, ''), $5, $6, $7, $8, $9, $10, $11)
			 RETURNING id`,
			req.Name, req.Lat, req.Lng, req.Description, nullableJSON(req.Img), req.Size,
			req.AuthorID, req.StyleID, userID, req.MacAddressID, req.CategoryID,
		).Scan(&id)
		if err != nil {
			return err
		}
		return replaceAssociations(ctx, tx, id, req.MaterialIDs, req.TechniqueIDs)
	})
	return id, err
}

// Update applies the fields present in req. Material and technique sets are
// replaced wholesale when present; the whole change commits or none of it does.
func (r *AttractionRepository) Update(ctx context.Context, id int64, req models.AttractionRequest) error {
	return r.store.tx(ctx, "update", attractionsTable, func(ctx context.Context, tx DBTX) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE attractions
			 SET name = COALESCE($2, name),
			     lat = COALESCE($3, lat),
			     lng = COALESCE($4, lng),
			     description = COALESCE($5, description),
			     img = COALESCE($6, img),
			     size = COALESCE($7, size),
			     id_author = COALESCE($8, id_author),
			     id_style = COALESCE($9, id_style),
			     id_mac_address = COALESCE($10, id_mac_address),
			     id_category = COALESCE($11, id_category)
			 WHERE id = $1 AND NOT is_delete`,
			id, req.Name, req.Lat, req.Lng, req.Description, nullableJSON(req.Img), req.Size,
			req.AuthorID, req.StyleID, req.MacAddressID, req.CategoryID)
		if err != nil {
			return err
		}
		if err := requireRow(res); err != nil {
			return err
		}
		return replaceAssociations(ctx, tx, id, req.MaterialIDs, req.TechniqueIDs)
	})
}

// SoftDelete hides an attraction and its association rows.
func (r *AttractionRepository) SoftDelete(ctx context.Context, id int64) error {
	return r.store.tx(ctx, "delete", attractionsTable, func(ctx context.Context, tx DBTX) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE attractions SET is_delete = TRUE WHERE id = $1 AND NOT is_delete`, id)
		if err != nil {
			return err
		}
		if err := requireRow(res); err != nil {
			return err
		}
		empty := []int64{}
		return replaceAssociations(ctx, tx, id, &empty, &empty)
	})
}

// replaceAssociations swaps the active join rows for the given sets. A nil
// set is left untouched.
func replaceAssociations(ctx context.Context, tx DBTX, attractionID int64, materialIDs, techniqueIDs *[]int64) error {
	if materialIDs != nil {
		if err := replaceJoin(ctx, tx, "attraction_materials", "id_material", attractionID, *materialIDs); err != nil {
			return err
		}
	}
	if techniqueIDs != nil {
		if err := replaceJoin(ctx, tx, "attraction_techniques", "id_technique", attractionID, *techniqueIDs); err != nil {
			return err
		}
	}
	return nil
}

// replaceJoin soft-deletes the current rows of one join table and inserts
// the new set. table and column are package constants, never user input.
func replaceJoin(ctx context.Context, tx DBTX, table, column string, attractionID int64, ids []int64) error {
	if _, err := tx.ExecContext(ctx,
		`UPDATE `+table+` SET is_delete = TRUE WHERE id_attraction = $1 AND NOT is_delete`,
		attractionID); err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}
	_, err := tx.ExecContext(ctx,
		`INSERT INTO `+table+` (`+column+`, id_attraction)
		 SELECT DISTINCT unnest($1::bigint[]), $2`,
		pq.Array(ids), attractionID)
	return err
}

func nullableJSON(raw []byte) any {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}

var _ rowScanner = (*sql.Row)(nil)
