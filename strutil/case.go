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
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToSnake converts a string in any common case format to snake_case.
//
// Acronyms stay together until a lowercase letter follows:
//
//	ToSnake("HTTPServer")          // "http_server"
//	ToSnake("getHTTPResponseCode") // "get_http_response_code"
//	ToSnake("kebab-case")          // "kebab_case"
func ToSnake(s string) string {
	return joinLower(splitWords(s), '_')
}

// ToScreamingSnake converts a string to SCREAMING_SNAKE_CASE.
func ToScreamingSnake(s string) string {
	words := splitWords(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w)
	}
	return strings.Join(words, "_")
}

// ToKebab converts a string in any common case format to kebab-case.
func ToKebab(s string) string {
	return joinLower(splitWords(s), '-')
}

// ToCamel converts a string in any common case format to camelCase.
// The first word is lowercased entirely, subsequent words are capitalized:
//
//	ToCamel("user_id")     // "userId"
//	ToCamel("HTTP-server") // "httpServer"
func ToCamel(s string) string {
	words := splitWords(s)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(strings.ToLower(words[0]))
	for _, w := range words[1:] {
		b.WriteString(Capitalize(strings.ToLower(w)))
	}
	return b.String()
}

// ToPascal converts a string in any common case format to PascalCase.
func ToPascal(s string) string {
	words := splitWords(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, w := range words {
		b.WriteString(Capitalize(strings.ToLower(w)))
	}
	return b.String()
}

// ToTitle converts a string to Title Case with single spaces between words.
// Casing follows the Unicode title mapping for the und (undetermined)
// language.
func ToTitle(s string) string {
	words := splitWords(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return cases.Title(language.Und).String(strings.Join(words, " "))
}

// Capitalize uppercases the first rune of s, leaving the rest unchanged.
func Capitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// Uncapitalize lowercases the first rune of s, leaving the rest unchanged.
func Uncapitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// splitWords breaks a string into its word components. Word boundaries are
// delimiters (underscore, hyphen, space, dot, slash), lower-to-upper case
// transitions, and the last letter of an acronym followed by a lowercase
// letter ("HTTPServer" splits as "HTTP", "Server").
func splitWords(s string) []string {
	var words []string
	var cur []rune

	runes := []rune(s)
	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || r == ' ' || r == '.' || r == '/':
			if len(cur) > 0 {
				words = append(words, string(cur))
				cur = cur[:0]
			}
		case unicode.IsUpper(r):
			if len(cur) > 0 {
				prev := runes[i-1]
				nextIsLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
				if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextIsLower) {
					words = append(words, string(cur))
					cur = cur[:0]
				}
			}
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
	}
	if len(cur) > 0 {
		words = append(words, string(cur))
	}
	return words
}

// joinLower lowercases each word and joins them with sep.
func joinLower(words []string, sep byte) string {
	var b strings.Builder
	for i, w := range words {
		if i > 0 {
			b.WriteByte(sep)
		}
		b.WriteString(strings.ToLower(w))
	}
	return b.String()
}
