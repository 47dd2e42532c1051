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

// Package strutil provides string shaping helpers: case conversion between
// common naming conventions, accent stripping, slug generation, word-boundary
// truncation, and normalization of user-entered values.
//
// # Case Conversion
//
// The conversion functions accept any mix of snake_case, kebab-case,
// camelCase, PascalCase, and space-separated words, and handle acronyms by
// keeping consecutive uppercase letters together until a lowercase letter
// follows:
//
//	strutil.ToSnake("myHTTPServer")  // "my_http_server"
//	strutil.ToCamel("user_id")       // "userId"
//	strutil.ToKebab("Hello World")   // "hello-world"
//
// # Normalization
//
// [RemoveAccents] strips combining marks after Unicode decomposition, so
// "Café" becomes "Cafe". Characters without a decomposed form (for example
// "ł" or "ß") pass through unchanged. [Slugify] builds URL-safe identifiers
// on top of it:
//
//	strutil.Slugify("Crème Brûlée!")  // "creme-brulee"
//
// # Truncation
//
// [Teaser] produces word-boundary excerpts for previews and summaries:
//
//	strutil.Teaser("The quick brown fox jumps over the lazy dog", 20, "…")
//	// "The quick brown…"
//
// # Thread Safety
//
// All functions are stateless and safe for concurrent use.
package strutil
