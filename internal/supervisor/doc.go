// Artwalk - Public Art Catalogue and Nearby Attraction Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artwalk

/*
Package supervisor provides process supervision for Artwalk using suture v4.

# Overview

Long-running services are organized into two layers:

	RootSupervisor ("artwalk")
	├── MaintenanceSupervisor ("maintenance-layer")
	│   └── AuthJanitorService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A maintenance job that keeps failing backs off inside its own layer; the HTTP
server keeps serving.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddMaintenanceService(services.NewAuthJanitorService(denylist, throttle, cfg.Denylist.CleanupInterval))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	errCh := tree.ServeBackground(ctx)
	// cancel ctx on SIGINT/SIGTERM, then:
	err = <-errCh

# Configuration

TreeConfig zero values take suture's defaults:
  - FailureThreshold: 5 failures
  - FailureDecay: 30 seconds
  - FailureBackoff: 15 seconds
  - ShutdownTimeout: 10 seconds

# Service Interface

Return behavior of suture.Service.Serve:
  - nil: stopped cleanly, not restarted
  - error: crashed, restarted with backoff
  - ctx canceled: shutdown requested, return promptly

The PostgreSQL pool is not supervised. database/sql reconnects on its own and
the repository circuit breaker isolates outages from request handling.

# Debugging Shutdown Issues

UnstoppedServiceReport lists services that ignored cancellation past the
shutdown timeout.
*/
package supervisor
