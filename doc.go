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

// Package shape maps loosely structured data into declared target shapes.
// It reshapes records field by field under an explicit specification,
// merges records in place, and collapses nested sequences, with a typed
// error taxonomy that separates misconfigured specs from failing data.
//
// # Quick Start
//
// Data enters as a [Value], a tagged union over null, booleans, integers,
// floats, strings, records, sequences, and field functions. Build values
// directly or convert native Go data with [FromAny]:
//
//	src := shape.FromAny(map[string]any{
//		"full_name": "  Ada Lovelace ",
//		"email":     "Ada@Example.COM",
//		"age":       36,
//	})
//
// A [Spec] declares the target shape:
//
//	spec := shape.NewSpec(shape.WithModifiers(shape.StandardModifiers())).
//		Field("name", "full_name:trim").
//		Field("contact", "email:trim,lower").
//		Own("age")
//
//	out, err := shape.Map(src, spec)
//
// The result is a record with exactly the fields name, contact, and age.
// Fields the source lacks map to explicit nulls; fields present with empty
// values copy through. The output never shares mutable containers with the
// input.
//
// # Mapping Rules
//
// Each spec entry resolves one target field:
//
//   - [Spec.Field] copies a source field, optionally through a modifier
//     chain written "field:mod1,mod2" and applied left to right.
//   - [Spec.Own] is the shorthand for same-named copies. Shorthand
//     references must not contain ":".
//   - [Spec.Compute] derives the field from the whole source record.
//   - [Spec.Const] assigns a fixed value, deep-copied per mapping.
//
// [Template] offers shape-by-example instead of per-field rules, and
// [SpecFunc] hands the whole source to a single function. A sequence
// source maps element-wise to a sequence of equal length.
//
// # Merging
//
// [Merge] copies fields from one container onto another in place. Lenient
// merging unions the fields with the source winning; strict merging only
// overwrites fields the target already has:
//
//	dst := shape.RecordVal(shape.NewRecord().
//		Set("host", shape.StringVal("localhost")).
//		Set("port", shape.IntVal(8080)))
//	src := shape.RecordVal(shape.NewRecord().
//		Set("port", shape.IntVal(9090)).
//		Set("debug", shape.BoolVal(true)))
//
//	_ = shape.Merge(dst, src, true) // port updated, debug ignored
//
// [MergeMaps] is the native-map variant for map[string]any callers.
//
// # Collapsing
//
// [Collapse] folds a sequence of pieces into one value: a one-level
// flatten, or with recursive=true a full flatten followed by
// concatenation. All-integer input concatenates digits into an integer;
// anything else concatenates canonical string forms.
//
// # Struct Decoding
//
// [Decode] materializes a record onto a Go struct using "shape" tags with
// generous input conversion. See [Record.HasFields] and
// [Record.MissingFields] for presence checks before decoding.
//
// # Error Handling
//
// Configuration mistakes and data failures are distinct types.
// [*SpecError] reports invalid rules (malformed references, unknown
// modifiers) and is returned by [Map] before any field resolves.
// [*ModifierError] reports a modifier failing on a concrete value, naming
// the field, the modifier, and the value:
//
//	out, err := shape.Map(src, spec)
//	var modErr *shape.ModifierError
//	if errors.As(err, &modErr) {
//	    log.Printf("bad input in %s: %v", modErr.Field, modErr.Err)
//	}
//
// # Thread Safety
//
// Values are immutable through the mapping API: [Map] and [Collapse]
// return fresh containers and are safe for concurrent use with shared
// inputs and specs. [Merge] mutates its target and requires external
// synchronization. [Record] and [Sequence] are plain containers with no
// internal locking.
package shape
