// Artwalk - Public Art Catalogue and Nearby Attraction Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artwalk

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/artwalk/internal/models"
)

func TestDecodeBody(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		wantOK     bool
		wantInBody string
	}{
		{name: "valid", body: `{"name":"Fresco"}`, wantOK: true},
		{name: "empty", body: "  ", wantInBody: "empty"},
		{name: "malformed", body: `{"name":`, wantInBody: "not valid JSON"},
		{name: "unknown field", body: `{"name":"x","is_delete":true}`, wantInBody: "is_delete"},
		{name: "trailing data", body: `{"name":"x"}{"name":"y"}`, wantInBody: "not valid JSON"},
		{name: "fails validation", body: `{"name":""}`, wantInBody: "name is required"},
		{name: "too large", body: `{"name":"` + strings.Repeat("a", maxBodyBytes) + `"}`, wantInBody: "exceeds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			var dst models.NameRequest
			ok := decodeBody(w, r, &dst)
			if ok != tt.wantOK {
				t.Fatalf("decodeBody() = %v, want %v (body %s)", ok, tt.wantOK, w.Body.String())
			}
			if !ok {
				if w.Code != http.StatusBadRequest {
					t.Errorf("status = %d, want 400", w.Code)
				}
				if !strings.Contains(w.Body.String(), tt.wantInBody) {
					t.Errorf("body = %s, want it to mention %q", w.Body.String(), tt.wantInBody)
				}
			}
		})
	}
}

func TestPathID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{raw: "42", want: 42},
		{raw: "0", wantErr: true},
		{raw: "-3", wantErr: true},
		{raw: "abc", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", tt.raw)
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))

		got, err := pathID(r)
		if (err != nil) != tt.wantErr {
			t.Errorf("pathID(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("pathID(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestRespondJSON_ContentType(t *testing.T) {
	t.Parallel()
	w := httptest.NewRecorder()

	respondJSON(w, http.StatusCreated, models.CreatedResponse{Message: "created", ID: 7})

	if w.Code != http.StatusCreated {
		t.Errorf("status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	if got := w.Body.String(); got != `{"message":"created","id":7}` {
		t.Errorf("body = %s", got)
	}
}
