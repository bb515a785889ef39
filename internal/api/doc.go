// Artwalk - Public Art Catalogue and Nearby Attraction Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artwalk

/*
Package api provides the HTTP JSON API for Artwalk.

Key Components:

  - Router: chi route tree with the global middleware stack
  - Handler: request handlers backed by repository interfaces
  - ChiMiddleware: CORS, per-IP rate limits and security headers
  - Response helpers: JSON encoding, body decoding and error mapping

Route Groups:

 1. Users (/user/): login is public; registration, listing, updates and
    logout require a bearer token.
 2. Attractions (/attraction/) and categories (/category/): reads are public,
    writes require a bearer token. GET /attraction/GetTopAttracions/{lat}/{lng}
    returns the nearest attractions with their distance in kilometers.
 3. Authors, styles, techniques, materials and MAC addresses: every route
    requires a bearer token.
 4. Operations: /health/live, /health/ready, /metrics and /swagger/.

Error Responses:

Client errors carry {"message": "..."}; validation failures add a "fields"
map. Server-side failures carry {"error": "..."} with a fixed message, and
the underlying cause is only logged. Repository errors are mapped in one
place (respondStoreError):

  - not found           -> 404
  - duplicate key       -> 409
  - unknown foreign key -> 400
  - bad coordinates     -> 400
  - database unavailable or circuit open -> 503

Handlers depend on small interfaces (UserStore, AttractionStore, ValueStore
and friends) so tests can supply in-memory stubs.
*/
package api
