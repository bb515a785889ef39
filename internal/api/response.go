// Artwalk - Public Art Catalogue and Nearby Attraction Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artwalk

package api

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/artwalk/internal/database"
	"github.com/tomtom215/artwalk/internal/geo"
	"github.com/tomtom215/artwalk/internal/logging"
	"github.com/tomtom215/artwalk/internal/models"
	"github.com/tomtom215/artwalk/internal/validation"
)

// maxBodyBytes caps request bodies; the largest legitimate body is an
// attraction with an image descriptor.
const maxBodyBytes = 1 << 20

var (
	errEmptyBody   = errors.New("request body is empty")
	errInvalidJSON = errors.New("request body is not valid JSON")
	errInvalidID   = errors.New("id must be a positive integer")
)

// respondJSON writes v as JSON with the given status.
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondMessage writes {"message": msg}. Client errors use this shape.
func respondMessage(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, models.MessageResponse{Message: msg})
}

// respondServerError writes {"error": msg}. Server-side failures use this
// shape; the cause is logged and never sent to the client.
func respondServerError(w http.ResponseWriter, r *http.Request, status int, msg string, cause error) {
	if cause != nil {
		logging.Ctx(r.Context()).Error().
			Err(cause).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("Request failed")
	}
	respondJSON(w, status, models.ErrorResponse{Error: msg})
}

// respondStoreError maps repository and domain errors onto HTTP responses.
// noun names the entity in not-found messages, e.g. "attraction".
func respondStoreError(w http.ResponseWriter, r *http.Request, noun string, err error) {
	switch {
	case errors.Is(err, database.ErrNotFound):
		respondMessage(w, http.StatusNotFound, noun+" not found")
	case errors.Is(err, database.ErrConflict):
		respondMessage(w, http.StatusConflict, noun+" already exists")
	case errors.Is(err, database.ErrInvalidReference):
		respondMessage(w, http.StatusBadRequest, "a referenced entity does not exist")
	case errors.Is(err, geo.ErrBadCoordinate):
		respondMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, database.ErrUnavailable):
		respondServerError(w, r, http.StatusServiceUnavailable, "service temporarily unavailable", err)
	default:
		respondServerError(w, r, http.StatusInternalServerError, "internal server error", err)
	}
}

// decodeBody decodes a JSON body into dst, rejecting unknown fields and
// trailing data, then validates it. It writes the 400 response itself and
// reports whether the handler may continue.
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := decodeJSON(w, r, dst); err != nil {
		respondMessage(w, http.StatusBadRequest, err.Error())
		return false
	}
	if verr := validation.ValidateStruct(dst); verr != nil {
		respondJSON(w, http.StatusBadRequest, verr.ToResponse())
		return false
	}
	return true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return fmt.Errorf("request body exceeds %d bytes", maxErr.Limit)
		}
		return errInvalidJSON
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return errEmptyBody
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if strings.Contains(err.Error(), "unknown field") {
			return fmt.Errorf("request body has an unknown field: %s", unknownFieldName(err))
		}
		return errInvalidJSON
	}
	if dec.More() {
		return errInvalidJSON
	}
	return nil
}

// unknownFieldName extracts the quoted field name from a decoder error.
func unknownFieldName(err error) string {
	msg := err.Error()
	start := strings.Index(msg, `"`)
	end := strings.LastIndex(msg, `"`)
	if start < 0 || end <= start {
		return "unknown"
	}
	return msg[start+1 : end]
}

// pathID parses the {id} URL parameter.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// idOrBadRequest parses {id} and writes the 400 response on failure.
func idOrBadRequest(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := pathID(r)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, err.Error())
		return 0, false
	}
	return id, true
}
