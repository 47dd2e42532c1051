// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package random generates identifiers and opaque tokens: RFC 4122 UUIDs
// and hex strings from a cryptographically secure source.
package random

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrInvalidLength is returned when a non-positive token length is requested.
var ErrInvalidLength = errors.New("token length must be positive")

// UUID returns a random (version 4) UUID in its canonical string form.
func UUID() string {
	return uuid.NewString()
}

// Hash returns a random hex string of exactly n characters, sourced from
// crypto/rand.
func Hash(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}

	buf := make([]byte, (n+1)/2)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("reading random bytes: %w", err)
	}
	return hex.EncodeToString(buf)[:n], nil
}

// MustHash is like [Hash] but panics on error. It is intended for token
// lengths known to be valid at compile time.
func MustHash(n int) string {
	s, err := Hash(n)
	if err != nil {
		panic(err)
	}
	return s
}
