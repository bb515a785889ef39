// Artwalk - Public Art Catalogue and Nearby Attraction Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artwalk

// Package testinfra starts throwaway Postgres and Redis containers for
// integration tests.
//
// Everything here is compiled only with the integration build tag:
//
//	go test -tags integration ./internal/database/... ./internal/auth/...
//
// Tests call SkipIfNoDocker first so that machines without a Docker daemon
// skip instead of failing.
//
//	func TestRepositories(t *testing.T) {
//	    testinfra.SkipIfNoDocker(t)
//	    ctx := context.Background()
//	    pg, err := testinfra.NewPostgresContainer(ctx)
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    defer testinfra.CleanupContainer(t, ctx, pg)
//
//	    db, err := database.Open(ctx, &config.DatabaseConfig{URL: pg.DSN})
//	    // ...
//	}
//
// The first run downloads the images; later runs use the local cache.
package testinfra
