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

// Package coerce converts loosely typed values (interface{}, user input,
// decoded documents) into Go scalars, with explicit defaults for the cases
// where conversion cannot succeed.
//
// Each scalar has three entry points, following the same shape:
//
//	coerce.Bool(v)           // zero value on failure
//	coerce.BoolOr(v, true)   // caller default on failure
//	coerce.BoolE(v)          // (value, error)
//
// Boolean parsing is generous: true/false, 1/0, yes/no, on/off, t/f, y/n are
// all accepted, case-insensitively. Integer parsing truncates decimal
// strings toward zero ("42.7" becomes 42). Nil input always fails, so the
// Or variants return their default for missing values.
package coerce

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// Static errors for coercion operations.
var (
	ErrNilValue       = errors.New("cannot coerce nil value")
	ErrInvalidBoolean = errors.New("invalid boolean value")
)

// Bool converts v to a bool, returning false when conversion fails.
func Bool(v any) bool {
	b, _ := BoolE(v)
	return b
}

// BoolOr converts v to a bool, returning def when conversion fails.
func BoolOr(v any, def bool) bool {
	b, err := BoolE(v)
	if err != nil {
		return def
	}
	return b
}

// BoolE converts v to a bool. String input accepts the canonical token
// pairs true/false, 1/0, yes/no, on/off, t/f, y/n (case-insensitive,
// surrounding whitespace ignored). Other input follows the usual numeric
// conventions (zero is false, non-zero is true).
func BoolE(v any) (bool, error) {
	if v == nil {
		return false, ErrNilValue
	}
	if s, ok := v.(string); ok {
		return parseBoolToken(s)
	}

	b, err := cast.ToBoolE(v)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidBoolean, v)
	}
	return b, nil
}

// parseBoolToken parses the canonical truthy and falsy string tokens.
func parseBoolToken(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "on", "t", "y":
		return true, nil
	case "false", "0", "no", "off", "f", "n":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrInvalidBoolean, s)
	}
}

// String converts v to a string, returning "" when conversion fails.
func String(v any) string {
	s, _ := StringE(v)
	return s
}

// StringOr converts v to a string, returning def when conversion fails or
// the result is empty.
func StringOr(v any, def string) string {
	s, err := StringE(v)
	if err != nil || s == "" {
		return def
	}
	return s
}

// StringE converts v to its string form. Booleans render as "true" and
// "false", numbers in their decimal form.
func StringE(v any) (string, error) {
	if v == nil {
		return "", ErrNilValue
	}
	return cast.ToStringE(v)
}

// Int converts v to an int, returning 0 when conversion fails.
func Int(v any) int {
	n, _ := IntE(v)
	return n
}

// IntOr converts v to an int, returning def when conversion fails.
func IntOr(v any, def int) int {
	n, err := IntE(v)
	if err != nil {
		return def
	}
	return n
}

// IntE converts v to an int. Decimal strings truncate toward zero, so
// "42.7" yields 42. Booleans yield 1 and 0.
func IntE(v any) (int, error) {
	if v == nil {
		return 0, ErrNilValue
	}
	if s, ok := v.(string); ok {
		v = strings.TrimSpace(s)
	}

	n, err := cast.ToIntE(v)
	if err == nil {
		return n, nil
	}

	// A decimal string such as "42.7" fails integer parsing; fall back to
	// float parsing and truncate.
	if s, ok := v.(string); ok {
		if f, ferr := strconv.ParseFloat(s, 64); ferr == nil {
			return int(f), nil
		}
	}
	return 0, err
}

// Float converts v to a float64, returning 0 when conversion fails.
func Float(v any) float64 {
	f, _ := FloatE(v)
	return f
}

// FloatOr converts v to a float64, returning def when conversion fails.
func FloatOr(v any, def float64) float64 {
	f, err := FloatE(v)
	if err != nil {
		return def
	}
	return f
}

// FloatE converts v to a float64.
func FloatE(v any) (float64, error) {
	if v == nil {
		return 0, ErrNilValue
	}
	if s, ok := v.(string); ok {
		v = strings.TrimSpace(s)
	}
	return cast.ToFloat64E(v)
}

// IsNumeric reports whether v is a numeric value or a string parseable as
// one. Booleans are not numeric.
func IsNumeric(v any) bool {
	switch n := v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	case string:
		_, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return err == nil
	default:
		return false
	}
}
