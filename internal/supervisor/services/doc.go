// Artwalk - Public Art Catalogue and Nearby Attraction Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artwalk

/*
Package services provides suture.Service wrappers for Artwalk components.

Each wrapper implements suture.Service and fmt.Stringer:

	type Service interface {
	    Serve(ctx context.Context) error
	}

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server, translating ListenAndServe into Serve
  - Drains connections with a bounded Shutdown on cancellation

Auth Janitor (AuthJanitorService):
  - Removes expired token denylist entries on a ticker
  - Prunes per-email login throttle entries that have gone idle
  - Logs cleanup errors and keeps running
*/
package services
