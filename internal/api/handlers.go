// Artwalk - Public Art Catalogue and Nearby Attraction Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artwalk

package api

import (
	"context"
	"time"

	"github.com/tomtom215/artwalk/internal/auth"
	"github.com/tomtom215/artwalk/internal/geo"
	"github.com/tomtom215/artwalk/internal/models"
)

// UserStore is the credential store the user handlers need.
type UserStore interface {
	Create(ctx context.Context, name, email, passwordHash string) (int64, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, id int64, patch models.UserPatch) error
}

// AttractionStore is the attraction repository the handlers need.
type AttractionStore interface {
	List(ctx context.Context) ([]models.Attraction, error)
	ListActive(ctx context.Context) ([]models.Attraction, error)
	Get(ctx context.Context, id int64) (*models.Attraction, error)
	Create(ctx context.Context, req models.AttractionRequest, userID *int64) (int64, error)
	Update(ctx context.Context, id int64, req models.AttractionRequest) error
	SoftDelete(ctx context.Context, id int64) error
}

// AuthorStore is the author repository.
type AuthorStore interface {
	List(ctx context.Context) ([]models.Author, error)
	Get(ctx context.Context, id int64) (*models.Author, error)
	Create(ctx context.Context, req models.AuthorRequest) (int64, error)
	Update(ctx context.Context, id int64, req models.AuthorRequest) error
	SoftDelete(ctx context.Context, id int64) error
}

// CategoryStore is the category repository.
type CategoryStore interface {
	List(ctx context.Context) ([]models.Category, error)
	Get(ctx context.Context, id int64) (*models.Category, error)
	Create(ctx context.Context, req models.CategoryRequest) (int64, error)
	Update(ctx context.Context, id int64, req models.CategoryRequest) error
	SoftDelete(ctx context.Context, id int64) error
}

// ValueStore serves entities identified by a single string value: styles,
// techniques and materials (a name) and MAC addresses (the address).
type ValueStore[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, value string) (int64, error)
	Update(ctx context.Context, id int64, value string) error
	SoftDelete(ctx context.Context, id int64) error
}

// TokenService issues and revokes bearer tokens.
type TokenService interface {
	Issue(email string) (string, error)
	Revoke(ctx context.Context, raw string) error
	TTL() time.Duration
}

// Pinger reports database reachability for the readiness probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HandlerDeps lists the collaborators of Handler. Throttle may be nil to
// disable per-email login throttling.
type HandlerDeps struct {
	Users        UserStore
	Attractions  AttractionStore
	Authors      AuthorStore
	Styles       ValueStore[models.Style]
	Techniques   ValueStore[models.Technique]
	Materials    ValueStore[models.Material]
	Categories   CategoryStore
	MacAddresses ValueStore[models.MacAddress]
	Tokens       TokenService
	Throttle     *auth.LoginThrottle
	Ranker       geo.Ranker
	DB           Pinger
	BcryptCost   int
}

// Handler holds the HTTP handlers. Methods are split across files:
//   - handlers_user.go: login, logout, registration, user management
//   - handlers_attraction.go: attraction CRUD and the nearest-attractions query
//   - handlers_catalog.go: authors, styles, techniques, materials, categories, MAC addresses
//   - handlers_health.go: liveness and readiness probes
type Handler struct {
	users       UserStore
	attractions AttractionStore
	authors     AuthorStore
	categories  CategoryStore
	tokens      TokenService
	throttle    *auth.LoginThrottle
	ranker      geo.Ranker
	db          Pinger
	bcryptCost  int
	startTime   time.Time

	styles       *valueResource[models.Style]
	techniques   *valueResource[models.Technique]
	materials    *valueResource[models.Material]
	macAddresses *valueResource[models.MacAddress]
}

// NewHandler builds the handler set from deps.
func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		users:        deps.Users,
		attractions:  deps.Attractions,
		authors:      deps.Authors,
		categories:   deps.Categories,
		tokens:       deps.Tokens,
		throttle:     deps.Throttle,
		ranker:       deps.Ranker,
		db:           deps.DB,
		bcryptCost:   deps.BcryptCost,
		startTime:    time.Now(),
		styles:       newNameResource("style", deps.Styles),
		techniques:   newNameResource("technique", deps.Techniques),
		materials:    newNameResource("material", deps.Materials),
		macAddresses: newMacAddressResource(deps.MacAddresses),
	}
}
