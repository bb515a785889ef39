// Artwalk - Public Art Catalogue and Nearby Attraction Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artwalk

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/artwalk/internal/logging"
	"github.com/tomtom215/artwalk/internal/metrics"
	"github.com/tomtom215/artwalk/internal/models"
)

// HealthLive handles liveness probe requests (Kubernetes-style).
// It never touches the database.
//
// @Summary Liveness probe
// @Description Returns 200 while the process is serving requests
// @Tags Core
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, _ *http.Request) {
	metrics.UpdateUptime(h.startTime)
	respondJSON(w, http.StatusOK, models.HealthResponse{
		Status:        "alive",
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style).
// Returns 200 only if the database answers a ping.
//
// @Summary Readiness probe
// @Description Returns 200 when the database is reachable, 503 otherwise
// @Tags Core
// @Produce json
// @Success 200 {object} models.HealthResponse "Service is ready"
// @Failure 503 {object} models.HealthResponse "Service is not ready"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		respondJSON(w, http.StatusServiceUnavailable, models.HealthResponse{Status: "not_ready", Database: "not configured"})
		return
	}

	if err := h.db.Ping(r.Context()); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Readiness check failed")
		respondJSON(w, http.StatusServiceUnavailable, models.HealthResponse{Status: "not_ready", Database: "unreachable"})
		return
	}

	respondJSON(w, http.StatusOK, models.HealthResponse{Status: "ready", Database: "connected"})
}
