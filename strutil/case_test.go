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

//go:build !integration

package strutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToSnake(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"camel case", "camelCase", "camel_case"},
		{"pascal case", "PascalCase", "pascal_case"},
		{"kebab case", "kebab-case", "kebab_case"},
		{"spaces", "Title Case", "title_case"},
		{"already snake", "already_snake", "already_snake"},
		{"screaming snake", "SCREAMING_SNAKE", "screaming_snake"},
		{"acronym prefix", "HTTPServer", "http_server"},
		{"acronym middle", "getHTTPResponseCode", "get_http_response_code"},
		{"acronym suffix", "userID", "user_id"},
		{"digit boundary", "user2Name", "user2_name"},
		{"single word", "word", "word"},
		{"single letter", "X", "x"},
		{"empty", "", ""},
		{"dots", "config.server.port", "config_server_port"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ToSnake(tt.input))
		})
	}
}

func TestToCamel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"snake case", "snake_case", "snakeCase"},
		{"kebab case", "kebab-case", "kebabCase"},
		{"pascal case", "PascalCase", "pascalCase"},
		{"spaces", "space separated", "spaceSeparated"},
		{"screaming snake", "SCREAMING_SNAKE", "screamingSnake"},
		{"acronym", "HTTP_server", "httpServer"},
		{"already camel", "alreadyCamel", "alreadyCamel"},
		{"single word", "word", "word"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ToCamel(tt.input))
		})
	}
}

func TestToPascal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"snake case", "snake_case", "SnakeCase"},
		{"camel case", "camelCase", "CamelCase"},
		{"kebab case", "some-long-name", "SomeLongName"},
		{"acronym", "http_server", "HttpServer"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ToPascal(tt.input))
		})
	}
}

func TestToKebab(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"camel case", "camelCase", "camel-case"},
		{"snake case", "snake_case", "snake-case"},
		{"pascal with acronym", "XMLParser", "xml-parser"},
		{"spaces", "Hello World", "hello-world"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ToKebab(tt.input))
		})
	}
}

func TestToScreamingSnake(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "MAX_RETRY_COUNT", ToScreamingSnake("maxRetryCount"))
	assert.Equal(t, "HTTP_TIMEOUT", ToScreamingSnake("http-timeout"))
	assert.Equal(t, "", ToScreamingSnake(""))
}

func TestToTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"snake case", "hello_world", "Hello World"},
		{"camel case", "helloWorld", "Hello World"},
		{"spaces kept single", "hello   world", "Hello World"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ToTitle(tt.input))
		})
	}
}

func TestCapitalize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Hello", Capitalize("hello"))
	assert.Equal(t, "Hello world", Capitalize("hello world"))
	assert.Equal(t, "Übung", Capitalize("übung"))
	assert.Equal(t, "", Capitalize(""))
	assert.Equal(t, "9lives", Capitalize("9lives"))
}

func TestUncapitalize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hello", Uncapitalize("Hello"))
	assert.Equal(t, "hTTP", Uncapitalize("HTTP"))
	assert.Equal(t, "", Uncapitalize(""))
}
