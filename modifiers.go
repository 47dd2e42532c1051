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

package shape

import (
	"fmt"
	"strings"

	"rivaas.dev/shape/strutil"
)

// StringModifier adapts a string function into a [Modifier]. The resulting
// modifier fails with [ErrStringRequired] when the value is not a string;
// chain it after "text" to coerce scalars first.
func StringModifier(fn func(string) string) Modifier {
	return func(v Value) (Value, error) {
		s, ok := v.AsString()
		if !ok {
			return Value{}, fmt.Errorf("%w, got %s", ErrStringRequired, v.Kind())
		}
		return StringVal(fn(s)), nil
	}
}

// StandardModifiers returns a table of common modifiers for use with
// [WithModifiers]. Nothing is registered implicitly; a spec only knows the
// modifiers it was built with.
//
// The table contains:
//
//	text    render any scalar as its canonical string form
//	trim    strip surrounding whitespace
//	squish  trim and collapse inner whitespace runs
//	upper   uppercase
//	lower   lowercase
//	title   Title Case
//	snake   snake_case
//	camel   camelCase
//	kebab   kebab-case
//	slug    URL-safe slug
//
// All except "text" require a string value.
func StandardModifiers() map[string]Modifier {
	return map[string]Modifier{
		"text": func(v Value) (Value, error) {
			return StringVal(v.Text()), nil
		},
		"trim":   StringModifier(strings.TrimSpace),
		"squish": StringModifier(strutil.Squish),
		"upper":  StringModifier(strings.ToUpper),
		"lower":  StringModifier(strings.ToLower),
		"title":  StringModifier(strutil.ToTitle),
		"snake":  StringModifier(strutil.ToSnake),
		"camel":  StringModifier(strutil.ToCamel),
		"kebab":  StringModifier(strutil.ToKebab),
		"slug":   StringModifier(strutil.Slugify),
	}
}
