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
	"errors"
	"fmt"
)

// Static errors for spec building, mapping, and merging.
var (
	ErrNilSpec             = errors.New("nil spec")
	ErrNilFunc             = errors.New("nil function")
	ErrEmptyFieldRef       = errors.New("empty field reference")
	ErrEmptyModifier       = errors.New("empty modifier name")
	ErrUnknownModifier     = errors.New("unknown modifier")
	ErrReservedDelimiter   = errors.New(`shorthand field reference must not contain ":"`)
	ErrInvalidModifierName = errors.New(`modifier name must be non-empty without ":" or ","`)
	ErrConflictingForm     = errors.New("field entries cannot be added to a function or template spec")
	ErrStringRequired      = errors.New("string value required")
	ErrNotMergeable        = errors.New("not a record or sequence")
	ErrNilTarget           = errors.New("nil merge target")
)

// SpecError describes an invalid mapping rule: a malformed field reference,
// a reserved delimiter in a shorthand entry, or a reference to a modifier
// the spec does not define. Spec errors are reported by [Spec.Validate] and
// by [Map] before any field is resolved.
//
// Use [errors.As] to check for SpecError:
//
//	var specErr *shape.SpecError
//	if errors.As(err, &specErr) {
//	    fmt.Printf("field: %s, ref: %s\n", specErr.Key, specErr.Ref)
//	}
type SpecError struct {
	Key string // Target field the rule writes to
	Ref string // The field reference as given, including any modifier chain
	Err error  // The underlying error
}

// Error returns a formatted error message naming the target field.
func (e *SpecError) Error() string {
	if e.Ref != "" && e.Ref != e.Key {
		return fmt.Sprintf("invalid rule for field %q (ref %q): %v", e.Key, e.Ref, e.Err)
	}
	return fmt.Sprintf("invalid rule for field %q: %v", e.Key, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As compatibility.
func (e *SpecError) Unwrap() error {
	return e.Err
}

// newSpecError creates a SpecError for the given target field and reference.
func newSpecError(key, ref string, err error) *SpecError {
	return &SpecError{Key: key, Ref: ref, Err: err}
}

// ModifierError describes a modifier that failed while mapping a field. It
// carries the source field name, the modifier name, and the value the
// modifier was applied to, so callers can report exactly which piece of
// input misbehaved.
//
// Use [errors.As] to check for ModifierError:
//
//	var modErr *shape.ModifierError
//	if errors.As(err, &modErr) {
//	    fmt.Printf("modifier %s failed on %s\n", modErr.Modifier, modErr.Field)
//	}
type ModifierError struct {
	Field    string // Source field whose value was being modified
	Modifier string // Name of the modifier that failed
	Value    Value  // The value passed to the modifier
	Err      error  // The underlying error
}

// Error returns a formatted error message with the offending value.
func (e *ModifierError) Error() string {
	return fmt.Sprintf("modifier %q failed on field %q (value %s): %v",
		e.Modifier, e.Field, e.Value.describe(), e.Err)
}

// Unwrap returns the underlying error for errors.Is/As compatibility.
func (e *ModifierError) Unwrap() error {
	return e.Err
}
