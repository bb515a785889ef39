// Artwalk - Public Art Catalogue and Nearby Attraction Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artwalk

package models

// MessageResponse carries a human readable outcome. It is also the body of
// 4xx failures.
type MessageResponse struct {
	Message string `json:"message"`
}

// CreatedResponse is returned with 201 Created.
type CreatedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// ErrorResponse is the body of 5xx failures. Driver and internal error text
// is never placed here.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse is a 400 body listing per-field problems.
type ValidationErrorResponse struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// HealthResponse reports liveness or readiness.
type HealthResponse struct {
	Status        string  `json:"status"`
	Database      string  `json:"database,omitempty"`
	UptimeSeconds float64 `json:"uptime_seconds,omitempty"`
}
