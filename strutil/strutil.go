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

package strutil

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// RemoveAccents strips diacritical marks from s: the string is decomposed
// (NFD), combining marks are removed, and the result is recomposed (NFC).
//
//	RemoveAccents("Café au Lait") // "Cafe au Lait"
//	RemoveAccents("über")         // "uber"
//
// Characters without a decomposed form, such as "ł" and "ß", pass through
// unchanged. Invalid UTF-8 input is returned as-is.
func RemoveAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Slugify converts s into a lowercase URL-safe slug: accents are stripped,
// runs of non-alphanumeric characters collapse into single hyphens, and
// leading and trailing hyphens are dropped.
//
//	Slugify("Crème Brûlée!") // "creme-brulee"
//	Slugify("Hello, World")  // "hello-world"
func Slugify(s string) string {
	s = strings.ToLower(RemoveAccents(s))

	var b strings.Builder
	b.Grow(len(s))
	pendingDash := false
	for _, r := range s {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !isAlnum {
			pendingDash = b.Len() > 0
			continue
		}
		if pendingDash {
			b.WriteByte('-')
			pendingDash = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SafeReplace replaces every occurrence of the keys of pairs in s with their
// mapped values in a single pass. Produced text is never re-matched, so
// replacement values containing other search keys stay intact. When search
// keys overlap, longer keys take precedence.
//
//	SafeReplace("a b", map[string]string{"a": "b", "b": "c"}) // "b c", not "c c"
func SafeReplace(s string, pairs map[string]string) string {
	if len(pairs) == 0 {
		return s
	}

	keys := make([]string, 0, len(pairs))
	for k := range pairs {
		if k != "" {
			keys = append(keys, k)
		}
	}
	// Longest first so overlapping keys resolve deterministically.
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	oldnew := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		oldnew = append(oldnew, k, pairs[k])
	}
	return strings.NewReplacer(oldnew...).Replace(s)
}

// Teaser truncates s to at most maxRunes runes at a word boundary and
// appends ellipsis. Strings that already fit are returned unchanged (apart
// from surrounding whitespace). Trailing punctuation before the ellipsis is
// trimmed. A single word longer than maxRunes is cut mid-word.
//
//	Teaser("The quick brown fox jumps", 16, "…") // "The quick brown…"
func Teaser(s string, maxRunes int, ellipsis string) string {
	s = strings.TrimSpace(s)
	if maxRunes <= 0 {
		return ""
	}

	r := []rune(s)
	if len(r) <= maxRunes {
		return s
	}

	cut := r[:maxRunes]
	if idx := lastBoundary(cut); idx > 0 {
		cut = cut[:idx]
	}
	return strings.TrimRight(string(cut), " \t\n.,;:!?") + ellipsis
}

// lastBoundary returns the index of the last whitespace rune in r, or -1.
func lastBoundary(r []rune) int {
	for i := len(r) - 1; i >= 0; i-- {
		if unicode.IsSpace(r[i]) {
			return i
		}
	}
	return -1
}

// Squish trims s and collapses every internal whitespace run into a single
// space.
//
//	Squish("  hello   world\n") // "hello world"
func Squish(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeEmail lowercases an email address and strips surrounding
// whitespace. It does not validate the address.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// CleanPhone strips formatting from a phone number, keeping digits and a
// leading plus sign.
//
//	CleanPhone("+49 (0) 170 555-0123") // "+4901705550123"
//	CleanPhone("030 / 1234 567")       // "0301234567"
func CleanPhone(s string) string {
	s = strings.TrimSpace(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if strings.HasPrefix(s, "+") {
		return "+" + b.String()
	}
	return b.String()
}
