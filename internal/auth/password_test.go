// Artwalk - Public Art Catalogue and Nearby Attraction Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artwalk

package auth

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/pbkdf2"
)

func TestHashAndCheckPassword(t *testing.T) {
	t.Parallel()

	hashed, err := HashPassword("s3cret-pass", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hashed == "s3cret-pass" {
		t.Fatal("hash must not equal the password")
	}

	if err := CheckPassword(hashed, "s3cret-pass"); err != nil {
		t.Errorf("CheckPassword() correct password error = %v", err)
	}
	if err := CheckPassword(hashed, "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("CheckPassword() wrong password error = %v, want ErrInvalidCredentials", err)
	}
	if err := CheckPassword("not-a-hash", "s3cret-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("CheckPassword() malformed hash error = %v, want ErrInvalidCredentials", err)
	}
}

func legacyHash(alg string, iterations int, salt, password string) string {
	var digest []byte
	switch alg {
	case "sha512":
		digest = pbkdf2.Key([]byte(password), []byte(salt), iterations, sha512.Size, sha512.New)
	default:
		digest = pbkdf2.Key([]byte(password), []byte(salt), iterations, sha256.Size, sha256.New)
	}
	return fmt.Sprintf("pbkdf2:%s:%d$%s$%s", alg, iterations, salt, hex.EncodeToString(digest))
}

func TestCheckPassword_Legacy(t *testing.T) {
	t.Parallel()

	sha256Hash := legacyHash("sha256", 1000, "NaClSalt", "hunter22")
	sha512Hash := legacyHash("sha512", 1000, "pepper", "hunter22")

	tests := []struct {
		name     string
		stored   string
		password string
		wantErr  bool
	}{
		{name: "sha256 match", stored: sha256Hash, password: "hunter22"},
		{name: "sha512 match", stored: sha512Hash, password: "hunter22"},
		{name: "sha256 mismatch", stored: sha256Hash, password: "hunter23", wantErr: true},
		{name: "unknown digest", stored: "pbkdf2:md5:1000$salt$abcd", password: "hunter22", wantErr: true},
		{name: "bad iterations", stored: "pbkdf2:sha256:x$salt$abcd", password: "hunter22", wantErr: true},
		{name: "missing digest", stored: "pbkdf2:sha256:1000$salt", password: "hunter22", wantErr: true},
		{name: "non hex digest", stored: "pbkdf2:sha256:1000$salt$zz", password: "hunter22", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := CheckPassword(tt.stored, tt.password)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidCredentials) {
					t.Errorf("CheckPassword() error = %v, want ErrInvalidCredentials", err)
				}
				return
			}
			if err != nil {
				t.Errorf("CheckPassword() error = %v", err)
			}
		})
	}
}

func TestNeedsRehash(t *testing.T) {
	t.Parallel()

	low, err := HashPassword("pw", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if !NeedsRehash(legacyHash("sha256", 10, "s", "pw"), bcrypt.MinCost) {
		t.Error("legacy hashes should be rehashed")
	}
	if NeedsRehash(low, bcrypt.MinCost) {
		t.Error("hash at the target cost should not be rehashed")
	}
	if !NeedsRehash(low, bcrypt.MinCost+1) {
		t.Error("hash below the target cost should be rehashed")
	}
}
