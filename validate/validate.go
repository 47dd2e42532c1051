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

// Package validate provides format predicates for common value kinds:
// email addresses, URLs, UUIDs, numbers, dates, hex colors, and
// cryptocurrency wallet addresses.
//
// Every predicate takes a string and returns a bool, so results feed
// directly into conditionals without error plumbing:
//
//	if !validate.IsEmail(input) {
//	    return fmt.Errorf("not a valid email: %q", input)
//	}
//
// For checking that a document carries a set of keys, use [Required]:
//
//	err := validate.Required(payload, "id", "email", "created_at")
//
// All functions are safe for concurrent use.
package validate

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"rivaas.dev/shape/timeutil"
)

// ErrMissingFields is returned by [Required] when keys are absent or nil.
var ErrMissingFields = errors.New("missing required fields")

// Package-level validator state shared by all predicates.
var (
	tagValidator     *validator.Validate
	tagValidatorOnce sync.Once
)

// getValidator returns the shared validator instance, creating it if
// necessary.
func getValidator() *validator.Validate {
	tagValidatorOnce.Do(func() {
		tagValidator = validator.New(validator.WithRequiredStructEnabled())
	})

	return tagValidator
}

// checkTag reports whether value passes the given validation tag.
func checkTag(value, tag string) bool {
	return getValidator().Var(value, tag) == nil
}

// IsEmail reports whether s is a syntactically valid email address.
func IsEmail(s string) bool {
	return checkTag(s, "email")
}

// IsURL reports whether s is an absolute URL with a scheme and host.
func IsURL(s string) bool {
	return checkTag(s, "url")
}

// IsHTTPURL reports whether s is an absolute http or https URL.
func IsHTTPURL(s string) bool {
	return checkTag(s, "http_url")
}

// IsUUID reports whether s is a UUID in canonical hyphenated form, any
// version.
func IsUUID(s string) bool {
	return checkTag(s, "uuid")
}

// IsUUIDv4 reports whether s is a version 4 UUID in canonical hyphenated
// form.
func IsUUIDv4(s string) bool {
	return checkTag(s, "uuid4")
}

// IsHexColor reports whether s is a hex color such as "#fff" or "#26b4a0".
func IsHexColor(s string) bool {
	return checkTag(s, "hexcolor")
}

// IsEthereumAddress reports whether s is an Ethereum account address.
func IsEthereumAddress(s string) bool {
	return checkTag(s, "eth_addr")
}

// IsBitcoinAddress reports whether s is a Bitcoin address, either legacy
// base58 (P2PKH, P2SH) or bech32 segwit.
func IsBitcoinAddress(s string) bool {
	return checkTag(s, "btc_addr") || checkTag(s, "btc_addr_bech32")
}

// IsNumeric reports whether s is a decimal number, with an optional sign
// and fractional part.
func IsNumeric(s string) bool {
	return checkTag(s, "numeric")
}

// IsDate reports whether s parses as a date or timestamp in any of the
// common layouts known to [timeutil.ParseAny].
func IsDate(s string) bool {
	_, err := timeutil.ParseAny(s)
	return err == nil
}

// IsDateLayout reports whether s parses as a timestamp in the given layout.
func IsDateLayout(s, layout string) bool {
	_, err := time.Parse(layout, s)
	return err == nil
}

// Required checks that every named field is present and non-nil in m.
// It returns an error wrapping [ErrMissingFields] naming each absent field,
// or nil when all fields are present. Present-but-empty values (such as ""
// or 0) count as present.
func Required(m map[string]any, fields ...string) error {
	var missing []string
	for _, f := range fields {
		if v, ok := m[f]; !ok || v == nil {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(missing, ", "))
	}
	return nil
}
