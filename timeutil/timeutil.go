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

// Package timeutil parses timestamps in common formats and converts
// wall-clock times between timezones.
//
// [ParseAny] tries a ladder of layouts from most to least common, so callers
// never hardcode a format:
//
//	t, err := timeutil.ParseAny("2024-01-15 10:30:00")
//
// [ConvertZone] re-expresses a timestamp string in another IANA timezone:
//
//	out, err := timeutil.ConvertZone("2024-01-15 10:30:00", "Europe/Berlin", "America/New_York")
//	// "2024-01-15 04:30:00"
package timeutil

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

// Static errors for time parsing operations.
var (
	ErrEmptyValue    = errors.New("empty time value")
	ErrUnknownFormat = errors.New("unable to parse time")
)

// DateTime is the layout used by [ConvertZone] output and accepted by the
// parsing ladder.
const DateTime = "2006-01-02 15:04:05"

// layouts is the parsing ladder, ordered from most to least common.
var layouts = []string{
	time.RFC3339,          // 2024-01-15T10:30:00Z (ISO 8601)
	time.RFC3339Nano,      // with nanoseconds
	"2006-01-02",          // date only
	DateTime,              // 2024-01-15 10:30:00
	time.RFC1123,          // Mon, 02 Jan 2006 15:04:05 MST
	time.RFC1123Z,         // Mon, 02 Jan 2006 15:04:05 -0700
	time.RFC822,           // 02 Jan 06 15:04 MST
	time.RFC822Z,          // 02 Jan 06 15:04 -0700
	time.RFC850,           // Monday, 02-Jan-06 15:04:05 MST
	"2006-01-02T15:04:05", // datetime without timezone
}

// Layouts returns a copy of the layout ladder tried by [ParseAny], in order.
func Layouts() []string {
	return slices.Clone(layouts)
}

// ParseAny parses a timestamp string by trying each known layout in order.
// Layouts without timezone information are interpreted as UTC.
func ParseAny(s string) (time.Time, error) {
	return ParseAnyIn(s, time.UTC)
}

// ParseAnyIn parses like [ParseAny], interpreting layouts without timezone
// information in the given location.
func ParseAnyIn(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrEmptyValue
	}
	if loc == nil {
		loc = time.UTC
	}

	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w %q (tried RFC3339, date-only, and other common formats)", ErrUnknownFormat, s)
}

// ToLocation converts t to the named IANA timezone (for example
// "Europe/Berlin"). The instant is unchanged, only the wall-clock
// representation moves.
func ToLocation(t time.Time, name string) (time.Time, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Time{}, fmt.Errorf("loading timezone %q: %w", name, err)
	}
	return t.In(loc), nil
}

// ConvertZone parses value in fromZone and formats the same instant in
// toZone using the [DateTime] layout. Values carrying their own timezone
// information (such as RFC3339 timestamps) keep it; fromZone then only
// matters for zone-less layouts.
func ConvertZone(value, fromZone, toZone string) (string, error) {
	from, err := time.LoadLocation(fromZone)
	if err != nil {
		return "", fmt.Errorf("loading timezone %q: %w", fromZone, err)
	}
	to, err := time.LoadLocation(toZone)
	if err != nil {
		return "", fmt.Errorf("loading timezone %q: %w", toZone, err)
	}

	t, err := ParseAnyIn(value, from)
	if err != nil {
		return "", err
	}
	return t.In(to).Format(DateTime), nil
}

// Reformat parses value with [ParseAny] and renders the same instant in the
// given layout.
//
//	timeutil.Reformat("2024-01-15T10:30:00Z", "02.01.2006") // "15.01.2024"
func Reformat(value, layout string) (string, error) {
	t, err := ParseAny(value)
	if err != nil {
		return "", err
	}
	return t.Format(layout), nil
}
