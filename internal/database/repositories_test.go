// Artwalk - Public Art Catalogue and Nearby Attraction Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artwalk

package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tomtom215/artwalk/internal/models"
)

var attractionRowColumns = []string{
	"id", "name", "lat", "lng", "description", "img", "size",
	"id_author", "id_style", "id_user", "id_mac_address", "id_category",
	"materials", "techniques",
}

func strPtr(s string) *string { return &s }

func TestUsers_Create(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("Ana", "ana@example.com", "hash").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	id, err := store.Users().Create(context.Background(), "Ana", "  Ana@Example.com ", "hash")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if id != 7 {
		t.Errorf("id = %d, want 7", id)
	}
}

func TestUsers_CreateDuplicateEmail(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	_, err := store.Users().Create(context.Background(), "Ana", "ana@example.com", "hash")
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("Create() error = %v, want ErrConflict", err)
	}
}

func TestUsers_GetByEmail(t *testing.T) {
	store, mock := newMockStore(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT id, name, email, password, created_at, updated_at\s+FROM users\s+WHERE lower\(email\) = \$1`).
		WithArgs("ana@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password", "created_at", "updated_at"}).
			AddRow(int64(3), "Ana", "ana@example.com", "$2a$12$hash", now, now))

	u, err := store.Users().GetByEmail(context.Background(), "ANA@example.com")
	if err != nil {
		t.Fatalf("GetByEmail() error = %v", err)
	}
	if u.ID != 3 || u.PasswordHash != "$2a$12$hash" {
		t.Errorf("user = %+v", u)
	}

	mock.ExpectQuery(`FROM users`).WillReturnError(sql.ErrNoRows)
	if _, err := store.Users().GetByEmail(context.Background(), "nobody@example.com"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByEmail() missing error = %v, want ErrNotFound", err)
	}
}

func TestUsers_UpdateMissing(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec(`UPDATE users`).
		WithArgs(int64(9), "New", nil, nil).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.Users().Update(context.Background(), 9, models.UserPatch{Name: strPtr("New")})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Update() error = %v, want ErrNotFound", err)
	}
}

func TestAttractions_ListActive(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`FROM attractions a\s+WHERE NOT a.is_delete`).
		WillReturnRows(sqlmock.NewRows(attractionRowColumns).
			AddRow(int64(1), "Mural", 19.43, -99.13, "", []byte(`{"url":"a.jpg"}`), 12,
				int64(2), nil, int64(3), nil, int64(4), "{5,6}", "{}").
			AddRow(int64(2), "Sin ubicación", nil, nil, "", nil, nil,
				nil, nil, nil, nil, nil, "{}", "{8}"))

	got, err := store.Attractions().ListActive(context.Background())
	if err != nil {
		t.Fatalf("ListActive() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}

	first := got[0]
	if lat, lng, ok := first.Coordinates(); !ok || lat != 19.43 || lng != -99.13 {
		t.Errorf("Coordinates() = %v, %v, %v", lat, lng, ok)
	}
	if string(first.Img) != `{"url":"a.jpg"}` {
		t.Errorf("Img = %s", first.Img)
	}
	if len(first.MaterialIDs) != 2 || first.MaterialIDs[1] != 6 {
		t.Errorf("MaterialIDs = %v", first.MaterialIDs)
	}
	if first.TechniqueIDs == nil || len(first.TechniqueIDs) != 0 {
		t.Errorf("TechniqueIDs = %v, want empty", first.TechniqueIDs)
	}

	if _, _, ok := got[1].Coordinates(); ok {
		t.Error("attraction without position should report ok=false")
	}
	if got[1].Img != nil {
		t.Errorf("Img = %s, want nil", got[1].Img)
	}
}

func TestAttractions_CreateReplacesMaterials(t *testing.T) {
	store, mock := newMockStore(t)
	materials := []int64{5, 6}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO attractions`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))
	mock.ExpectExec(`UPDATE attraction_materials SET is_delete = TRUE`).
		WithArgs(int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO attraction_materials \(id_material, id_attraction\)`).
		WithArgs("{5,6}", int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	id, err := store.Attractions().Create(context.Background(), models.AttractionRequest{
		Name:        strPtr("Mural"),
		MaterialIDs: &materials,
	}, nil)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if id != 11 {
		t.Errorf("id = %d, want 11", id)
	}
}

func TestAttractions_UpdateRollsBackOnBadReference(t *testing.T) {
	store, mock := newMockStore(t)
	techniques := []int64{999}

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE attractions`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE attraction_techniques SET is_delete = TRUE`).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`INSERT INTO attraction_techniques`).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "attraction_techniques_id_technique_fkey"})
	mock.ExpectRollback()

	err := store.Attractions().Update(context.Background(), 4, models.AttractionRequest{TechniqueIDs: &techniques})
	if !errors.Is(err, ErrInvalidReference) {
		t.Fatalf("Update() error = %v, want ErrInvalidReference", err)
	}
}

func TestAttractions_SoftDeleteMissing(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE attractions SET is_delete = TRUE`).
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	if err := store.Attractions().SoftDelete(context.Background(), 404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("SoftDelete() error = %v, want ErrNotFound", err)
	}
}

func TestAttractions_GetUnavailable(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`FROM attractions a`).WillReturnError(connRefused())

	if _, err := store.Attractions().Get(context.Background(), 1); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Get() error = %v, want ErrUnavailable", err)
	}
}

func TestNamedRepository(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT id, name FROM techniques WHERE NOT is_delete`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(int64(1), "Fresco").AddRow(int64(2), "Stencil"))
	mock.ExpectQuery(`SELECT name FROM materials WHERE id = \$1`).
		WithArgs(int64(3)).
		WillReturnError(sql.ErrNoRows)

	techniques, err := store.Techniques().List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(techniques) != 2 || techniques[1] != (models.Technique{ID: 2, Name: "Stencil"}) {
		t.Errorf("techniques = %+v", techniques)
	}

	if _, err := store.Materials().Get(context.Background(), 3); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestMacAddresses_CreateNormalizes(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`INSERT INTO mac_addresses`).
		WithArgs("00:1A:2B:3C:4D:5E").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	if _, err := store.MacAddresses().Create(context.Background(), "00-1a-2b-3c-4d-5e"); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
}

func TestAuthors_Get(t *testing.T) {
	store, mock := newMockStore(t)
	birthday := time.Date(1886, 12, 8, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM authors WHERE id = \$1 AND NOT is_delete`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "father_lastname", "mother_lastname", "birthday", "death"}).
			AddRow(int64(1), "Diego", "Rivera", "Barrientos", birthday, nil))

	a, err := store.Authors().Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if a.Birthday == nil || !a.Birthday.Equal(birthday) {
		t.Errorf("Birthday = %v", a.Birthday)
	}
	if a.Death != nil {
		t.Errorf("Death = %v, want nil", a.Death)
	}
}

func TestCategories_SoftDelete(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec(`UPDATE categories SET is_delete = TRUE WHERE id = \$1`).
		WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := store.Categories().SoftDelete(context.Background(), 2); err != nil {
		t.Fatalf("SoftDelete() error = %v", err)
	}
}

func TestNormalizeMAC(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"00:1a:2b:3c:4d:5e":   "00:1A:2B:3C:4D:5E",
		"00-1A-2B-3C-4D-5E":   "00:1A:2B:3C:4D:5E",
		" aa:bb:cc:dd:ee:ff ": "AA:BB:CC:DD:EE:FF",
	}
	for in, want := range tests {
		if got := NormalizeMAC(in); got != want {
			t.Errorf("NormalizeMAC(%q) = %q, want %q", in, got, want)
		}
	}
}
