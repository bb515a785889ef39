// Artwalk - Public Art Catalogue and Nearby Attraction Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artwalk

package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/artwalk/internal/auth"
	"github.com/tomtom215/artwalk/internal/database"
	"github.com/tomtom215/artwalk/internal/geo"
	"github.com/tomtom215/artwalk/internal/models"
)

const (
	testBcryptCost = 4
	testPassword   = "correct horse battery"
)

// stubUsers is an in-memory UserStore keyed by lower-cased email.
type stubUsers struct {
	mu      sync.Mutex
	users   map[string]*models.User
	nextID  int64
	updates []models.UserPatch
	err     error
	calls   int
}

func newStubUsers() *stubUsers {
	return &stubUsers{users: make(map[string]*models.User), nextID: 1}
}

func (s *stubUsers) add(t *testing.T, name, email, password string) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password, testBcryptCost)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	u := &models.User{ID: s.nextID, Name: name, Email: strings.ToLower(email), PasswordHash: hash}
	s.nextID++
	s.users[u.Email] = u
	return u
}

func (s *stubUsers) Create(_ context.Context, name, email, passwordHash string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return 0, s.err
	}
	key := strings.ToLower(email)
	if _, ok := s.users[key]; ok {
		return 0, database.ErrConflict
	}
	u := &models.User{ID: s.nextID, Name: name, Email: key, PasswordHash: passwordHash}
	s.nextID++
	s.users[key] = u
	return u.ID, nil
}

func (s *stubUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	u, ok := s.users[strings.ToLower(email)]
	if !ok {
		return nil, database.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *stubUsers) List(context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, *u)
	}
	return out, s.err
}

func (s *stubUsers) Update(_ context.Context, id int64, patch models.UserPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return s.err
	}
	for _, u := range s.users {
		if u.ID != id {
			continue
		}
		s.updates = append(s.updates, patch)
		if patch.PasswordHash != nil {
			u.PasswordHash = *patch.PasswordHash
		}
		return nil
	}
	return database.ErrNotFound
}

// stubAttractions is an AttractionStore over a fixed slice.
type stubAttractions struct {
	mu        sync.Mutex
	items     []models.Attraction
	err       error
	calls     int
	created   []models.AttractionRequest
	createdBy []*int64
}

func (s *stubAttractions) List(context.Context) ([]models.Attraction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.items, s.err
}

func (s *stubAttractions) ListActive(ctx context.Context) ([]models.Attraction, error) {
	return s.List(ctx)
}

func (s *stubAttractions) Get(_ context.Context, id int64) (*models.Attraction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.items {
		if s.items[i].ID == id {
			a := s.items[i]
			return &a, nil
		}
	}
	return nil, database.ErrNotFound
}

func (s *stubAttractions) Create(_ context.Context, req models.AttractionRequest, userID *int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return 0, s.err
	}
	s.created = append(s.created, req)
	s.createdBy = append(s.createdBy, userID)
	return int64(100 + len(s.created)), nil
}

func (s *stubAttractions) Update(_ context.Context, id int64, _ models.AttractionRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.err
}

func (s *stubAttractions) SoftDelete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.err
}

func (s *stubAttractions) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// stubValues is a ValueStore that keeps values in a map.
type stubValues[T any] struct {
	mu     sync.Mutex
	values map[int64]string
	build  func(id int64, value string) T
	nextID int64
	err    error
	calls  int
}

func newStubValues[T any](build func(id int64, value string) T) *stubValues[T] {
	return &stubValues[T]{values: make(map[int64]string), build: build, nextID: 1}
}

func (s *stubValues[T]) List(context.Context) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	out := make([]T, 0, len(s.values))
	for id := int64(1); id < s.nextID; id++ {
		if v, ok := s.values[id]; ok {
			out = append(out, s.build(id, v))
		}
	}
	return out, nil
}

func (s *stubValues[T]) Get(_ context.Context, id int64) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	v, ok := s.values[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	item := s.build(id, v)
	return &item, nil
}

func (s *stubValues[T]) Create(_ context.Context, value string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return 0, s.err
	}
	for _, v := range s.values {
		if v == value {
			return 0, database.ErrConflict
		}
	}
	id := s.nextID
	s.nextID++
	s.values[id] = value
	return id, nil
}

func (s *stubValues[T]) Update(_ context.Context, id int64, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return s.err
	}
	if _, ok := s.values[id]; !ok {
		return database.ErrNotFound
	}
	s.values[id] = value
	return nil
}

func (s *stubValues[T]) SoftDelete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return s.err
	}
	if _, ok := s.values[id]; !ok {
		return database.ErrNotFound
	}
	delete(s.values, id)
	return nil
}

func (s *stubValues[T]) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// stubAuthors and stubCategories only record calls and return err.
type stubAuthors struct {
	mu      sync.Mutex
	calls   int
	err     error
	created []models.AuthorRequest
}

func (s *stubAuthors) record() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.err
}

func (s *stubAuthors) List(context.Context) ([]models.Author, error) {
	return []models.Author{}, s.record()
}

func (s *stubAuthors) Get(_ context.Context, id int64) (*models.Author, error) {
	if err := s.record(); err != nil {
		return nil, err
	}
	return &models.Author{ID: id, Name: "Diego"}, nil
}

func (s *stubAuthors) Create(_ context.Context, req models.AuthorRequest) (int64, error) {
	if err := s.record(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.created = append(s.created, req)
	return 1, nil
}

func (s *stubAuthors) Update(context.Context, int64, models.AuthorRequest) error {
	return s.record()
}

func (s *stubAuthors) SoftDelete(context.Context, int64) error {
	return s.record()
}

type stubCategories struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (s *stubCategories) record() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.err
}

func (s *stubCategories) List(context.Context) ([]models.Category, error) {
	return []models.Category{{ID: 1, Name: "Murales"}}, s.record()
}

func (s *stubCategories) Get(_ context.Context, id int64) (*models.Category, error) {
	if err := s.record(); err != nil {
		return nil, err
	}
	return &models.Category{ID: id, Name: "Murales"}, nil
}

func (s *stubCategories) Create(context.Context, models.CategoryRequest) (int64, error) {
	return 1, s.record()
}

func (s *stubCategories) Update(context.Context, int64, models.CategoryRequest) error {
	return s.record()
}

func (s *stubCategories) SoftDelete(context.Context, int64) error {
	return s.record()
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

// testEnv bundles a routed handler with its stubs.
type testEnv struct {
	server      http.Handler
	codec       *auth.TokenCodec
	users       *stubUsers
	attractions *stubAttractions
	authors     *stubAuthors
	categories  *stubCategories
	styles      *stubValues[models.Style]
	techniques  *stubValues[models.Technique]
	materials   *stubValues[models.Material]
	macs        *stubValues[models.MacAddress]
}

type envOption func(*HandlerDeps)

func newTestEnv(t *testing.T, opts ...envOption) *testEnv {
	t.Helper()

	codec, err := auth.NewTokenCodec([]byte("test-secret-test-secret-test-secret"), time.Hour, auth.NewMemoryDenylist())
	if err != nil {
		t.Fatalf("NewTokenCodec() error = %v", err)
	}

	env := &testEnv{
		codec:       codec,
		users:       newStubUsers(),
		attractions: &stubAttractions{},
		authors:     &stubAuthors{},
		categories:  &stubCategories{},
		styles: newStubValues(func(id int64, v string) models.Style {
			return models.Style{ID: id, Name: v}
		}),
		techniques: newStubValues(func(id int64, v string) models.Technique {
			return models.Technique{ID: id, Name: v}
		}),
		materials: newStubValues(func(id int64, v string) models.Material {
			return models.Material{ID: id, Name: v}
		}),
		macs: newStubValues(func(id int64, v string) models.MacAddress {
			return models.MacAddress{ID: id, Address: v}
		}),
	}

	deps := HandlerDeps{
		Users:        env.users,
		Attractions:  env.attractions,
		Authors:      env.authors,
		Styles:       env.styles,
		Techniques:   env.techniques,
		Materials:    env.materials,
		Categories:   env.categories,
		MacAddresses: env.macs,
		Tokens:       codec,
		Ranker:       geo.NewRanker(6, 3),
		DB:           stubPinger{},
		BcryptCost:   testBcryptCost,
	}
	for _, opt := range opts {
		opt(&deps)
	}

	mwCfg := DefaultChiMiddlewareConfig()
	mwCfg.RateLimitDisabled = true
	router := NewRouter(NewHandler(deps), auth.NewGate(codec), NewChiMiddleware(mwCfg))
	env.server = router.Setup()
	return env
}

func (e *testEnv) token(t *testing.T, email string) string {
	t.Helper()
	tok, err := e.codec.Issue(email)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	return tok
}

// do sends a request through the full route tree. body may be nil, a string
// or any value encodable as JSON.
func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		if err := json.NewEncoder(&buf).Encode(b); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.server.ServeHTTP(w, req)
	return w
}

func decodeResponse[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return v
}
