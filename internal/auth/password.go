// Artwalk - Public Art Catalogue and Nearby Attraction Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artwalk

package auth

import (
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/pbkdf2"
)

// legacyDefaultIterations is used for "pbkdf2:sha256$salt$hash" hashes that
// omit the iteration count.
const legacyDefaultIterations = 260000

// dummyHash keeps the unknown-user path as slow as a real comparison.
var (
	dummyHash     []byte
	dummyHashOnce sync.Once
)

// HashPassword hashes password with bcrypt at the given cost.
// Costs outside bcrypt's range fall back to bcrypt.DefaultCost.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// CheckPassword compares password against a stored hash. It accepts bcrypt
// hashes and legacy "pbkdf2:<sha256|sha512>[:iterations]$salt$hexdigest" hashes.
// A mismatch returns ErrInvalidCredentials.
func CheckPassword(stored, password string) error {
	if strings.HasPrefix(stored, "pbkdf2:") {
		return checkLegacyPBKDF2(stored, password)
	}
	err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(password))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrInvalidCredentials
	}
	return fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
}

// NeedsRehash reports whether stored should be replaced by a fresh bcrypt hash
// at cost.
func NeedsRehash(stored string, cost int) bool {
	if strings.HasPrefix(stored, "pbkdf2:") {
		return true
	}
	current, err := bcrypt.Cost([]byte(stored))
	if err != nil {
		return true
	}
	return current < cost
}

// BurnPasswordCheck performs a throwaway bcrypt comparison so that a login for
// an unknown email takes as long as one for a known email.
func BurnPasswordCheck(password string) {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("artwalk-timing-equalizer"), bcrypt.DefaultCost)
	})
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}

func checkLegacyPBKDF2(stored, password string) error {
	method, rest, ok := strings.Cut(stored, "$")
	if !ok {
		return ErrInvalidCredentials
	}
	salt, digestHex, ok := strings.Cut(rest, "$")
	if !ok {
		return ErrInvalidCredentials
	}

	// method is pbkdf2:<hash>[:<iterations>]
	parts := strings.Split(method, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return ErrInvalidCredentials
	}

	var newHash func() hash.Hash
	switch parts[1] {
	case "sha256":
		newHash = sha256.New
	case "sha512":
		newHash = sha512.New
	default:
		return ErrInvalidCredentials
	}

	iterations := legacyDefaultIterations
	if len(parts) == 3 {
		n, err := strconv.Atoi(parts[2])
		if err != nil || n <= 0 {
			return ErrInvalidCredentials
		}
		iterations = n
	}

	want, err := hex.DecodeString(digestHex)
	if err != nil || len(want) == 0 {
		return ErrInvalidCredentials
	}

	got := pbkdf2.Key([]byte(password), []byte(salt), iterations, len(want), newHash)
	if subtle.ConstantTimeCompare(got, want) != 1 {
		return ErrInvalidCredentials
	}
	return nil
}
