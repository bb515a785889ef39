// Artwalk - Public Art Catalogue and Nearby Attraction Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artwalk

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/artwalk/internal/auth"
	"github.com/tomtom215/artwalk/internal/middleware"
	"github.com/tomtom215/artwalk/internal/models"
)

// Router wires handlers, the authentication gate and middleware into a chi
// route tree.
type Router struct {
	handler       *Handler
	gate          *auth.Gate
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router. A nil chiMiddleware uses the defaults.
func NewRouter(handler *Handler, gate *auth.Gate, chiMw *ChiMiddleware) *Router {
	if chiMw == nil {
		chiMw = NewChiMiddleware(nil)
	}
	return &Router{
		handler:       handler,
		gate:          gate,
		chiMiddleware: chiMw,
	}
}

// Setup builds the route tree.
//
// Public: login, attraction and category reads, the nearest-attractions
// query, health probes, metrics and API docs. Everything else passes the
// authentication gate first.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()
	h := router.handler

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestLogger(middleware.DefaultSlowRequestThreshold))
	r.Use(middleware.PrometheusMetrics)
	r.Use(chimiddleware.Compress(5, "application/json"))
	r.Use(router.chiMiddleware.CORS()) // must be global to answer OPTIONS preflight

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusNotFound, models.MessageResponse{Message: "route not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusMethodNotAllowed, models.MessageResponse{Message: "method not allowed"})
	})

	// ========================
	// Health Endpoints
	// ========================
	r.Route("/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Get("/live", h.HealthLive)
		r.Get("/ready", h.HealthReady)
	})

	// ========================
	// Users
	// ========================
	r.Route("/user", func(r chi.Router) {
		r.Use(APISecurityHeaders())
		r.With(router.chiMiddleware.RateLimitLogin()).Post("/login", h.Login)

		r.Group(func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimit())
			r.Use(router.gate.Authenticate)
			r.Post("/", h.Register)
			r.Get("/", h.ListUsers)
			r.Put("/{id}", h.UpdateUser)
			r.Post("/logout", h.Logout)
		})
	})

	// ========================
	// Catalogue
	// ========================
	r.Group(func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())

		r.Route("/attraction", func(r chi.Router) {
			r.Get("/", h.ListAttractions)
			r.Get("/GetTopAttracions/{lat}/{lng}", h.GetTopAttractions)
			r.Get("/{id}", h.GetAttraction)

			r.Group(func(r chi.Router) {
				r.Use(router.gate.Authenticate)
				r.Post("/", h.CreateAttraction)
				r.Put("/{id}", h.UpdateAttraction)
				r.Delete("/{id}", h.DeleteAttraction)
			})
		})

		r.Route("/category", func(r chi.Router) {
			r.Get("/", h.ListCategories)
			r.Get("/{id}", h.GetCategory)

			r.Group(func(r chi.Router) {
				r.Use(router.gate.Authenticate)
				r.Post("/", h.CreateCategory)
				r.Put("/{id}", h.UpdateCategory)
				r.Delete("/{id}", h.DeleteCategory)
			})
		})

		r.Route("/author", func(r chi.Router) {
			r.Use(router.gate.Authenticate)
			r.Get("/", h.ListAuthors)
			r.Get("/{id}", h.GetAuthor)
			r.Post("/", h.CreateAuthor)
			r.Put("/{id}", h.UpdateAuthor)
			r.Delete("/{id}", h.DeleteAuthor)
		})

		r.Route("/style", func(r chi.Router) {
			r.Use(router.gate.Authenticate)
			mountValueResource(r, h.styles)
		})
		r.Route("/tecnique", func(r chi.Router) {
			r.Use(router.gate.Authenticate)
			mountValueResource(r, h.techniques)
		})
		r.Route("/material", func(r chi.Router) {
			r.Use(router.gate.Authenticate)
			mountValueResource(r, h.materials)
		})
		r.Route("/mac_address", func(r chi.Router) {
			r.Use(router.gate.Authenticate)
			mountValueResource(r, h.macAddresses)
		})
	})

	// ========================
	// Operations
	// ========================
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	return r
}

func mountValueResource[T any](r chi.Router, res *valueResource[T]) {
	r.Get("/", res.List)
	r.Get("/{id}", res.Get)
	r.Post("/", res.Create)
	r.Put("/{id}", res.Update)
	r.Delete("/{id}", res.Delete)
}
