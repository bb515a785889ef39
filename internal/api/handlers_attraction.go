// Artwalk - Public Art Catalogue and Nearby Attraction Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artwalk

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/artwalk/internal/auth"
	"github.com/tomtom215/artwalk/internal/geo"
	"github.com/tomtom215/artwalk/internal/logging"
	"github.com/tomtom215/artwalk/internal/models"
	"github.com/tomtom215/artwalk/internal/validation"
)

// ListAttractions returns every attraction that has not been deleted.
//
// @Summary List attractions
// @Tags Attractions
// @Produce json
// @Success 200 {array} models.Attraction
// @Failure 503 {object} models.ErrorResponse
// @Router /attraction/ [get]
func (h *Handler) ListAttractions(w http.ResponseWriter, r *http.Request) {
	attractions, err := h.attractions.List(r.Context())
	if err != nil {
		respondStoreError(w, r, "attraction", err)
		return
	}
	respondJSON(w, http.StatusOK, attractions)
}

// GetAttraction returns one attraction with its material and technique ids.
//
// @Summary Get an attraction
// @Tags Attractions
// @Produce json
// @Param id path int true "Attraction id"
// @Success 200 {object} models.Attraction
// @Failure 400 {object} models.MessageResponse
// @Failure 404 {object} models.MessageResponse
// @Router /attraction/{id} [get]
func (h *Handler) GetAttraction(w http.ResponseWriter, r *http.Request) {
	id, ok := idOrBadRequest(w, r)
	if !ok {
		return
	}
	attraction, err := h.attractions.Get(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, "attraction", err)
		return
	}
	respondJSON(w, http.StatusOK, attraction)
}

// CreateAttraction adds an attraction owned by the authenticated user.
// name is required; materials and techniques are stored with the row in one
// transaction.
//
// @Summary Create an attraction
// @Tags Attractions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.AttractionRequest true "Attraction"
// @Success 201 {object} models.CreatedResponse
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 401 {object} models.MessageResponse
// @Router /attraction/ [post]
func (h *Handler) CreateAttraction(w http.ResponseWriter, r *http.Request) {
	var req models.AttractionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Name == nil {
		respondJSON(w, http.StatusBadRequest, validation.Required("name").ToResponse())
		return
	}

	ownerID := h.currentUserID(r)
	id, err := h.attractions.Create(r.Context(), req, ownerID)
	if err != nil {
		respondStoreError(w, r, "attraction", err)
		return
	}
	respondJSON(w, http.StatusCreated, models.CreatedResponse{Message: "attraction created", ID: id})
}

// currentUserID resolves the token identity to a user id. An identity whose
// account no longer exists yields nil; the attraction is stored unowned.
func (h *Handler) currentUserID(r *http.Request) *int64 {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		return nil
	}
	user, err := h.users.GetByEmail(r.Context(), claims.Identity())
	if err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Could not resolve attraction owner")
		return nil
	}
	return &user.ID
}

// UpdateAttraction changes the fields present in the body. materials and
// techniques, when present, replace the current sets.
//
// @Summary Update an attraction
// @Tags Attractions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Attraction id"
// @Param body body models.AttractionRequest true "Fields to change"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.MessageResponse
// @Failure 404 {object} models.MessageResponse
// @Router /attraction/{id} [put]
func (h *Handler) UpdateAttraction(w http.ResponseWriter, r *http.Request) {
	id, ok := idOrBadRequest(w, r)
	if !ok {
		return
	}
	var req models.AttractionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.attractions.Update(r.Context(), id, req); err != nil {
		respondStoreError(w, r, "attraction", err)
		return
	}
	respondMessage(w, http.StatusOK, "attraction updated")
}

// DeleteAttraction soft-deletes an attraction. It disappears from lists and
// proximity results immediately.
//
// @Summary Delete an attraction
// @Tags Attractions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Attraction id"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.MessageResponse
// @Router /attraction/{id} [delete]
func (h *Handler) DeleteAttraction(w http.ResponseWriter, r *http.Request) {
	id, ok := idOrBadRequest(w, r)
	if !ok {
		return
	}
	if err := h.attractions.SoftDelete(r.Context(), id); err != nil {
		respondStoreError(w, r, "attraction", err)
		return
	}
	respondMessage(w, http.StatusOK, "attraction deleted")
}

// GetTopAttractions returns the attractions nearest to a point, closest
// first, each with its distance in kilometers. Attractions without a valid
// position are skipped.
//
// @Summary Nearest attractions
// @Description Up to the configured limit of attractions within the configured radius
// @Tags Attractions
// @Produce json
// @Param lat path number true "Latitude in decimal degrees"
// @Param lng path number true "Longitude in decimal degrees"
// @Success 200 {array} models.NearbyAttraction
// @Failure 400 {object} models.MessageResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /attraction/GetTopAttracions/{lat}/{lng} [get]
func (h *Handler) GetTopAttractions(w http.ResponseWriter, r *http.Request) {
	origin, err := geo.ParseCoordinate(chi.URLParam(r, "lat"), chi.URLParam(r, "lng"))
	if err != nil {
		respondStoreError(w, r, "attraction", err)
		return
	}

	candidates, err := h.attractions.ListActive(r.Context())
	if err != nil {
		respondStoreError(w, r, "attraction", err)
		return
	}

	ranked := geo.Nearest(r.Context(), h.ranker, origin, candidates)
	out := make([]models.NearbyAttraction, 0, len(ranked))
	for _, rk := range ranked {
		a := rk.Item
		lat, lng, _ := a.Coordinates()
		out = append(out, models.NearbyAttraction{
			ID:          a.ID,
			Name:        a.Name,
			Lat:         lat,
			Lng:         lng,
			Description: a.Description,
			Img:         a.Img,
			Size:        a.Size,
			Distance:    rk.DistanceKm,
		})
	}
	respondJSON(w, http.StatusOK, out)
}
