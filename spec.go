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
	"sort"
	"strings"
)

// Modifier transforms a single value during mapping. Modifiers are named in
// field references ("email:trim,lower") and applied left to right.
type Modifier func(v Value) (Value, error)

// FieldFunc computes a target field from the whole source record. current
// is the source value stored under the target key, or null when the source
// has no such field. Implementations must treat src as read-only.
type FieldFunc func(src *Record, current Value) (Value, error)

// TransformFunc maps an entire source value in one step. See [SpecFunc].
type TransformFunc func(src Value) (Value, error)

// ruleKind discriminates the rule variants of a spec entry.
type ruleKind uint8

const (
	ruleField ruleKind = iota
	ruleCompute
	ruleConst
)

// rule is one resolution strategy for a target field.
type rule struct {
	kind  ruleKind
	field string   // source field name (ruleField)
	mods  []string // modifier chain (ruleField)
	ref   string   // the reference as written, for error messages
	fn    FieldFunc
	lit   Value
}

// specEntry pairs a target key with its rule. Entries apply in order; a
// repeated target key is overwritten by the later entry.
type specEntry struct {
	key  string
	rule rule
}

// Spec describes how [Map] builds each target field from a source record.
// A spec takes one of three forms:
//
//   - Field rules, built with [NewSpec] and the [Spec.Field], [Spec.Own],
//     [Spec.Compute], and [Spec.Const] methods. Each entry names a target
//     field and the rule that produces its value.
//   - A template, built with [Template]: an example record whose fields are
//     filled from same-named source fields, keeping the template value when
//     the source has none.
//   - A function, built with [SpecFunc]: the source is handed to the
//     function wholesale.
//
// Build methods record configuration problems instead of failing; call
// [Spec.Validate] to collect them, or rely on [Map], which validates before
// resolving any field. A Spec is immutable once handed to Map and safe for
// concurrent use.
type Spec struct {
	entries  []specEntry
	mods     map[string]Modifier
	fn       TransformFunc
	template *Record
	errs     []error
}

// SpecOption configures a [Spec] during construction.
type SpecOption func(*Spec)

// WithModifier registers a named modifier for use in field references.
// Names must be non-empty and free of the ":" and "," delimiters.
func WithModifier(name string, fn Modifier) SpecOption {
	return func(s *Spec) {
		s.addModifier(name, fn)
	}
}

// WithModifiers registers a table of named modifiers, for example
// [StandardModifiers]. Entries are added in sorted name order so recorded
// errors are deterministic.
func WithModifiers(mods map[string]Modifier) SpecOption {
	return func(s *Spec) {
		names := make([]string, 0, len(mods))
		for name := range mods {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			s.addModifier(name, mods[name])
		}
	}
}

// NewSpec returns an empty field-rule spec.
//
//	spec := shape.NewSpec(shape.WithModifiers(shape.StandardModifiers())).
//		Field("name", "full_name:trim").
//		Own("email").
//		Const("version", shape.IntVal(2))
func NewSpec(opts ...SpecOption) *Spec {
	s := &Spec{mods: make(map[string]Modifier)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SpecFunc returns a spec whose mapping is performed entirely by fn:
// Map(src, SpecFunc(fn)) yields fn(src).
func SpecFunc(fn TransformFunc) *Spec {
	s := &Spec{}
	if fn == nil {
		s.errs = append(s.errs, fmt.Errorf("function spec: %w", ErrNilFunc))
		return s
	}
	s.fn = fn
	return s
}

// Template returns a shape-by-example spec. Mapping clones the template,
// then overwrites each field whose name also exists in the source with the
// source value. Fields absent from the source keep their template value.
// The template is deep-copied; later changes to rec do not affect the spec.
func Template(rec *Record) *Spec {
	if rec == nil {
		rec = NewRecord()
	}
	return &Spec{template: rec.Clone()}
}

// addModifier validates and stores a named modifier.
func (s *Spec) addModifier(name string, fn Modifier) {
	if name == "" || strings.ContainsAny(name, ":,") {
		s.errs = append(s.errs, fmt.Errorf("registering modifier %q: %w", name, ErrInvalidModifierName))
		return
	}
	if fn == nil {
		s.errs = append(s.errs, fmt.Errorf("registering modifier %q: %w", name, ErrNilFunc))
		return
	}
	if s.mods == nil {
		s.mods = make(map[string]Modifier)
	}
	s.mods[name] = fn
}

// Field adds a rule that copies the source field named by ref into the
// target field key. ref may carry a modifier chain after a colon:
//
//	spec.Field("contact", "email")            // plain copy
//	spec.Field("contact", "email:trim,lower") // copy, then modify
//
// Modifiers apply left to right. A source field that is absent maps to an
// explicit null; a field that is present with an empty or zero value is
// copied like any other.
func (s *Spec) Field(key, ref string) *Spec {
	if !s.checkForm(key) {
		return s
	}
	field, mods, err := parseRef(ref)
	if err != nil {
		s.errs = append(s.errs, newSpecError(key, ref, err))
		return s
	}
	s.entries = append(s.entries, specEntry{
		key:  key,
		rule: rule{kind: ruleField, field: field, mods: mods, ref: ref},
	})
	return s
}

// Own adds a shorthand rule: the target field and the source field share
// the name ref. Shorthand references carry no modifier chain; a ":" in ref
// is a configuration error reported by [Spec.Validate].
func (s *Spec) Own(ref string) *Spec {
	if !s.checkForm(ref) {
		return s
	}
	if strings.Contains(ref, ":") {
		s.errs = append(s.errs, newSpecError(ref, ref, ErrReservedDelimiter))
		return s
	}
	field := strings.TrimSpace(ref)
	if field == "" {
		s.errs = append(s.errs, newSpecError(ref, ref, ErrEmptyFieldRef))
		return s
	}
	s.entries = append(s.entries, specEntry{
		key:  field,
		rule: rule{kind: ruleField, field: field, ref: ref},
	})
	return s
}

// Compute adds a rule that derives the target field by calling fn with the
// source record and the source value under key (null when absent).
func (s *Spec) Compute(key string, fn FieldFunc) *Spec {
	if !s.checkForm(key) {
		return s
	}
	if fn == nil {
		s.errs = append(s.errs, newSpecError(key, "", ErrNilFunc))
		return s
	}
	s.entries = append(s.entries, specEntry{
		key:  key,
		rule: rule{kind: ruleCompute, fn: fn},
	})
	return s
}

// Const adds a rule that assigns a fixed value to the target field. The
// value is deep-copied on every mapping, so outputs never share mutable
// containers with the spec or each other. A function value is not treated
// as a constant: it dispatches like [Spec.Compute].
func (s *Spec) Const(key string, v Value) *Spec {
	if !s.checkForm(key) {
		return s
	}
	s.entries = append(s.entries, specEntry{
		key:  key,
		rule: rule{kind: ruleConst, lit: v.Clone()},
	})
	return s
}

// checkForm records an error when field entries are added to a function or
// template spec. It reports whether the entry may proceed.
func (s *Spec) checkForm(key string) bool {
	if s.fn != nil || s.template != nil {
		s.errs = append(s.errs, newSpecError(key, "", ErrConflictingForm))
		return false
	}
	return true
}

// Validate returns every configuration problem recorded while building the
// spec, joined into one error: malformed references, reserved delimiters in
// shorthand entries, nil functions, and references to modifiers the spec
// does not define. It returns nil for a well-formed spec.
//
// [Map] calls Validate first, so configuration errors surface before any
// field is resolved.
func (s *Spec) Validate() error {
	if s == nil {
		return ErrNilSpec
	}

	errs := make([]error, 0, len(s.errs))
	errs = append(errs, s.errs...)
	for _, e := range s.entries {
		if e.rule.kind != ruleField {
			continue
		}
		for _, name := range e.rule.mods {
			if _, ok := s.mods[name]; !ok {
				errs = append(errs, newSpecError(e.key, e.rule.ref,
					fmt.Errorf("%w: %q", ErrUnknownModifier, name)))
			}
		}
	}
	return errors.Join(errs...)
}

// parseRef splits a field reference into the source field name and its
// modifier chain. "name" has no chain; "name:a,b" applies modifiers a then
// b. Whitespace around the name and each modifier is ignored.
func parseRef(ref string) (string, []string, error) {
	field := ref
	var mods []string

	if idx := strings.IndexByte(ref, ':'); idx >= 0 {
		field = ref[:idx]
		for _, name := range strings.Split(ref[idx+1:], ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				return "", nil, ErrEmptyModifier
			}
			mods = append(mods, name)
		}
	}

	field = strings.TrimSpace(field)
	if field == "" {
		return "", nil, ErrEmptyFieldRef
	}
	return field, mods, nil
}
