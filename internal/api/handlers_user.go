// Artwalk - Public Art Catalogue and Nearby Attraction Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artwalk

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/artwalk/internal/auth"
	"github.com/tomtom215/artwalk/internal/database"
	"github.com/tomtom215/artwalk/internal/logging"
	"github.com/tomtom215/artwalk/internal/models"
)

const msgInvalidCredentials = "invalid credentials"

// Login exchanges an email and password for a bearer token.
//
// Unknown emails and wrong passwords produce the same 401 body, and a
// password check is performed in both cases so response timing does not
// reveal which accounts exist. Stored hashes using an older scheme or a lower
// bcrypt cost are upgraded after a successful check.
//
// @Summary Log in
// @Description Authenticates a user and returns a bearer token
// @Tags Users
// @Accept json
// @Produce json
// @Param body body models.LoginRequest true "Credentials"
// @Success 200 {object} models.LoginResponse
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 401 {object} models.MessageResponse
// @Failure 429 {object} models.MessageResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /user/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if h.throttle != nil && !h.throttle.Allow(req.Email) {
		auth.LoginAttemptsTotal.WithLabelValues("throttled").Inc()
		respondMessage(w, http.StatusTooManyRequests, "too many login attempts, try again later")
		return
	}

	ctx := r.Context()
	user, err := h.users.GetByEmail(ctx, req.Email)
	if errors.Is(err, database.ErrNotFound) {
		auth.BurnPasswordCheck(req.Password)
		auth.LoginAttemptsTotal.WithLabelValues("invalid_credentials").Inc()
		respondMessage(w, http.StatusUnauthorized, msgInvalidCredentials)
		return
	}
	if err != nil {
		auth.LoginAttemptsTotal.WithLabelValues("error").Inc()
		respondStoreError(w, r, "user", err)
		return
	}

	if err := auth.CheckPassword(user.PasswordHash, req.Password); err != nil {
		auth.LoginAttemptsTotal.WithLabelValues("invalid_credentials").Inc()
		respondMessage(w, http.StatusUnauthorized, msgInvalidCredentials)
		return
	}

	if auth.NeedsRehash(user.PasswordHash, h.bcryptCost) {
		h.upgradePasswordHash(r, user.ID, req.Password)
	}

	token, err := h.tokens.Issue(user.Email)
	if err != nil {
		auth.LoginAttemptsTotal.WithLabelValues("error").Inc()
		respondServerError(w, r, http.StatusInternalServerError, "internal server error", err)
		return
	}

	auth.LoginAttemptsTotal.WithLabelValues("success").Inc()
	logging.Ctx(ctx).Info().Int64("user_id", user.ID).Msg("User logged in")

	respondJSON(w, http.StatusOK, models.LoginResponse{
		Message:   "login successful",
		UserID:    user.ID,
		Name:      user.Name,
		Token:     token,
		ExpiresAt: time.Now().Add(h.tokens.TTL()).UTC(),
	})
}

// upgradePasswordHash rewrites a verified password with the current scheme.
// Failures are logged; the login itself already succeeded.
func (h *Handler) upgradePasswordHash(r *http.Request, userID int64, password string) {
	log := logging.Ctx(r.Context())
	hash, err := auth.HashPassword(password, h.bcryptCost)
	if err != nil {
		log.Warn().Err(err).Int64("user_id", userID).Msg("Failed to rehash password")
		return
	}
	if err := h.users.Update(r.Context(), userID, models.UserPatch{PasswordHash: &hash}); err != nil {
		log.Warn().Err(err).Int64("user_id", userID).Msg("Failed to store upgraded password hash")
		return
	}
	log.Info().Int64("user_id", userID).Msg("Upgraded stored password hash")
}

// Logout revokes the presented bearer token. Later requests carrying it are
// rejected with 401 even before it expires.
//
// @Summary Log out
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.MessageResponse
// @Failure 401 {object} models.MessageResponse
// @Router /user/logout [post]
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	raw, ok := auth.BearerToken(r)
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	if err := h.tokens.Revoke(r.Context(), raw); err != nil {
		if errors.Is(err, auth.ErrInvalidToken) {
			respondMessage(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		respondServerError(w, r, http.StatusServiceUnavailable, "service temporarily unavailable", err)
		return
	}
	respondMessage(w, http.StatusOK, "logged out")
}

// Register creates a user account. Only authenticated users may add editors.
//
// @Summary Register a user
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.RegisterRequest true "New user"
// @Success 201 {object} models.CreatedResponse
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 409 {object} models.MessageResponse
// @Router /user/ [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	hash, err := auth.HashPassword(req.Password, h.bcryptCost)
	if err != nil {
		respondServerError(w, r, http.StatusInternalServerError, "internal server error", err)
		return
	}

	id, err := h.users.Create(r.Context(), req.Name, req.Email, hash)
	if err != nil {
		respondStoreError(w, r, "user", err)
		return
	}

	logging.Ctx(r.Context()).Info().Int64("user_id", id).Msg("User registered")
	respondJSON(w, http.StatusCreated, models.CreatedResponse{Message: "user created", ID: id})
}

// ListUsers returns every user without credentials.
//
// @Summary List users
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.User
// @Failure 401 {object} models.MessageResponse
// @Router /user/ [get]
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		respondStoreError(w, r, "user", err)
		return
	}
	respondJSON(w, http.StatusOK, users)
}

// UpdateUser changes the fields present in the body. A new password is
// hashed before it is stored.
//
// @Summary Update a user
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User id"
// @Param body body models.UpdateUserRequest true "Fields to change"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.MessageResponse
// @Failure 409 {object} models.MessageResponse
// @Router /user/{id} [put]
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := idOrBadRequest(w, r)
	if !ok {
		return
	}
	var req models.UpdateUserRequest
	if !decodeBody(w, r, &req) {
		return
	}

	patch := models.UserPatch{Name: req.Name, Email: req.Email}
	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password, h.bcryptCost)
		if err != nil {
			respondServerError(w, r, http.StatusInternalServerError, "internal server error", err)
			return
		}
		patch.PasswordHash = &hash
	}

	if err := h.users.Update(r.Context(), id, patch); err != nil {
		respondStoreError(w, r, "user", err)
		return
	}
	respondMessage(w, http.StatusOK, "user updated")
}
