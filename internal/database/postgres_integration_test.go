// Artwalk - Public Art Catalogue and Nearby Attraction Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artwalk

//go:build integration

package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tomtom215/artwalk/internal/config"
	"github.com/tomtom215/artwalk/internal/models"
	"github.com/tomtom215/artwalk/internal/testinfra"
)

func TestPostgres_Integration(t *testing.T) {
	testinfra.SkipIfNoDocker(t)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	pg, err := testinfra.NewPostgresContainer(ctx)
	if err != nil {
		t.Fatalf("start postgres: %v", err)
	}
	defer testinfra.CleanupContainer(t, ctx, pg)

	cfg := &config.DatabaseConfig{URL: pg.DSN, MaxOpenConns: 4}
	db, err := Open(ctx, cfg)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := Migrate(ctx, db); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	store := NewStore(db, NewBreaker(cfg))
	defer store.Close()

	userID, err := store.Users().Create(ctx, "Ana", "ana@example.com", "hash")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if _, err := store.Users().Create(ctx, "Ana", "ANA@example.com", "hash"); !errors.Is(err, ErrConflict) {
		t.Fatalf("duplicate email error = %v, want ErrConflict", err)
	}

	materialID, err := store.Materials().Create(ctx, "Bronze")
	if err != nil {
		t.Fatalf("create material: %v", err)
	}
	secondMaterial, err := store.Materials().Create(ctx, "Steel")
	if err != nil {
		t.Fatalf("create material: %v", err)
	}

	name := "Monumento"
	lat, lng := 19.4326, -99.1332
	materials := []int64{materialID}
	id, err := store.Attractions().Create(ctx, models.AttractionRequest{
		Name:        &name,
		Lat:         &lat,
		Lng:         &lng,
		Img:         []byte(`{"url":"m.jpg"}`),
		MaterialIDs: &materials,
	}, &userID)
	if err != nil {
		t.Fatalf("create attraction: %v", err)
	}

	replaced := []int64{secondMaterial}
	if err := store.Attractions().Update(ctx, id, models.AttractionRequest{MaterialIDs: &replaced}); err != nil {
		t.Fatalf("update attraction: %v", err)
	}

	got, err := store.Attractions().Get(ctx, id)
	if err != nil {
		t.Fatalf("get attraction: %v", err)
	}
	if len(got.MaterialIDs) != 1 || got.MaterialIDs[0] != secondMaterial {
		t.Errorf("MaterialIDs = %v, want [%d]", got.MaterialIDs, secondMaterial)
	}
	if got.UserID == nil || *got.UserID != userID {
		t.Errorf("UserID = %v, want %d", got.UserID, userID)
	}

	bad := []int64{999999}
	if err := store.Attractions().Update(ctx, id, models.AttractionRequest{MaterialIDs: &bad}); !errors.Is(err, ErrInvalidReference) {
		t.Fatalf("update with unknown material error = %v, want ErrInvalidReference", err)
	}
	got, err = store.Attractions().Get(ctx, id)
	if err != nil {
		t.Fatalf("get attraction: %v", err)
	}
	if len(got.MaterialIDs) != 1 {
		t.Errorf("failed update should leave materials intact, got %v", got.MaterialIDs)
	}

	if err := store.Attractions().SoftDelete(ctx, id); err != nil {
		t.Fatalf("soft delete: %v", err)
	}
	if _, err := store.Attractions().Get(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrNotFound", err)
	}
	active, err := store.Attractions().ListActive(ctx)
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(active) != 0 {
		t.Errorf("ListActive() = %d rows, want 0", len(active))
	}
}
