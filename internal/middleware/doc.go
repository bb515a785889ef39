// Artwalk - Public Art Catalogue and Nearby Attraction Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artwalk

/*
Package middleware provides the infrastructure HTTP middleware shared by every
route: request ids, access logging and Prometheus instrumentation.

All middleware has the chi shape func(http.Handler) http.Handler and is
installed once on the root router:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)                 // X-Request-ID + logging context
	r.Use(middleware.RequestLogger(time.Second)) // access log, slow request warnings
	r.Use(middleware.PrometheusMetrics)          // api_requests_total and friends

PrometheusMetrics and RequestLogger label requests with the matched chi route
pattern rather than the raw URL path, which keeps label cardinality bounded.
Authentication is not handled here; see package auth.
*/
package middleware
