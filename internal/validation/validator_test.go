// Artwalk - Public Art Catalogue and Nearby Attraction Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artwalk

package validation

import (
	"strings"
	"testing"

	"github.com/tomtom215/artwalk/internal/models"
)

// ===================================================================================================
// Singleton Validator Tests
// ===================================================================================================

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 == nil {
		t.Fatal("GetValidator() should not return nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
}

// ===================================================================================================
// Request Model Tests
// ===================================================================================================

func strPtr(s string) *string { return &s }

func TestValidateStruct_RequestModels(t *testing.T) {
	t.Parallel()

	lat := 19.43
	badLat := 123.0

	tests := []struct {
		name      string
		input     interface{}
		wantField string
		wantTag   string
	}{
		{
			name:  "valid register",
			input: &models.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "longenough"},
		},
		{
			name:      "register bad email",
			input:     &models.RegisterRequest{Name: "Ana", Email: "not-an-email", Password: "longenough"},
			wantField: "email",
			wantTag:   "email",
		},
		{
			name:      "register short password",
			input:     &models.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "short"},
			wantField: "password",
			wantTag:   "min",
		},
		{
			name:      "login missing password",
			input:     &models.LoginRequest{Email: "ana@example.com"},
			wantField: "password",
			wantTag:   "required",
		},
		{
			name:  "valid mac",
			input: &models.MacAddressRequest{Address: "00:1a:2b:3c:4d:5e"},
		},
		{
			name:      "invalid mac",
			input:     &models.MacAddressRequest{Address: "00:1a:2b"},
			wantField: "mac_address",
			wantTag:   "mac",
		},
		{
			name:  "attraction partial update",
			input: &models.AttractionRequest{Lat: &lat},
		},
		{
			name:      "attraction latitude out of range",
			input:     &models.AttractionRequest{Lat: &badLat},
			wantField: "lat",
			wantTag:   "latitude",
		},
		{
			name:      "author bad birthday",
			input:     &models.AuthorRequest{Name: strPtr("Diego"), Birthday: strPtr("06/12/1886")},
			wantField: "birthday",
			wantTag:   "datetime",
		},
		{
			name:      "empty name",
			input:     &models.NameRequest{},
			wantField: "name",
			wantTag:   "required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			verr := ValidateStruct(tt.input)
			if tt.wantField == "" {
				if verr != nil {
					t.Fatalf("ValidateStruct() unexpected error = %v", verr)
				}
				return
			}
			if verr == nil {
				t.Fatal("ValidateStruct() expected an error")
			}
			found := false
			for _, fe := range verr.Errors() {
				if fe.Field() == tt.wantField && fe.Tag() == tt.wantTag {
					found = true
				}
			}
			if !found {
				t.Errorf("ValidateStruct() errors = %v, want %s/%s", verr.Errors(), tt.wantField, tt.wantTag)
			}
		})
	}
}

// ===================================================================================================
// Message Translation Tests
// ===================================================================================================

func TestToResponse(t *testing.T) {
	t.Parallel()

	verr := ValidateStruct(&models.RegisterRequest{Email: "bad"})
	if verr == nil {
		t.Fatal("expected validation errors")
	}

	resp := verr.ToResponse()
	if resp.Fields["name"] != "name is required" {
		t.Errorf("name message = %q", resp.Fields["name"])
	}
	if resp.Fields["email"] != "email must be a valid email address" {
		t.Errorf("email message = %q", resp.Fields["email"])
	}
	if resp.Fields["password"] != "password is required" {
		t.Errorf("password message = %q", resp.Fields["password"])
	}
	if !strings.Contains(resp.Message, "; ") {
		t.Errorf("combined message = %q, want joined messages", resp.Message)
	}
}

func TestTranslate_DateFormat(t *testing.T) {
	t.Parallel()

	verr := ValidateStruct(&models.AuthorRequest{Death: strPtr("yesterday")})
	if verr == nil {
		t.Fatal("expected validation error")
	}
	if got := verr.Errors()[0].Error(); got != "death must be a date in the form YYYY-MM-DD" {
		t.Errorf("message = %q", got)
	}
}

func TestTranslate_StringLength(t *testing.T) {
	t.Parallel()

	verr := ValidateStruct(&models.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "abc"})
	if verr == nil {
		t.Fatal("expected validation error")
	}
	if got := verr.Errors()[0].Error(); got != "password must be at least 8 characters" {
		t.Errorf("message = %q", got)
	}
}

func TestRequired(t *testing.T) {
	t.Parallel()

	verr := Required("lat")
	if verr.Error() != "lat is required" {
		t.Errorf("Error() = %q", verr.Error())
	}
	if verr.ToResponse().Fields["lat"] != "lat is required" {
		t.Errorf("ToResponse() = %+v", verr.ToResponse())
	}
}
