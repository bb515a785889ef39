// Artwalk - Public Art Catalogue and Nearby Attraction Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artwalk

package main

import (
	"net/http"
	"testing"
	"time"

	"github.com/tomtom215/artwalk/internal/config"
)

func TestNewHTTPServer(t *testing.T) {
	t.Parallel()

	cfg := &config.ServerConfig{
		Host:         "127.0.0.1",
		Port:         8080,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  time.Minute,
	}
	handler := http.NotFoundHandler()

	server := newHTTPServer(cfg, handler)

	if server.Addr != "127.0.0.1:8080" {
		t.Errorf("Addr = %q, want 127.0.0.1:8080", server.Addr)
	}
	if server.ReadTimeout != 5*time.Second || server.ReadHeaderTimeout != 5*time.Second {
		t.Errorf("read timeouts = %v/%v, want 5s", server.ReadTimeout, server.ReadHeaderTimeout)
	}
	if server.WriteTimeout != 10*time.Second {
		t.Errorf("WriteTimeout = %v, want 10s", server.WriteTimeout)
	}
	if server.IdleTimeout != time.Minute {
		t.Errorf("IdleTimeout = %v, want 1m", server.IdleTimeout)
	}
	if server.Handler == nil {
		t.Error("Handler not set")
	}
}
