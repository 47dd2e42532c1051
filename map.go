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

import "fmt"

// Map builds a new value from src according to spec.
//
// A record source yields a record with exactly the target fields the spec
// names, resolved in entry order. A sequence source yields a sequence of
// the same length, each element mapped independently. A null or scalar
// source is treated as an empty record, so every field rule resolves
// against nothing and computes or defaults accordingly. A function spec
// ([SpecFunc]) receives src as-is.
//
// The result never shares mutable containers with src: copied values are
// deep copies. Absent source fields map to explicit null values under their
// target key; fields that are present with empty or zero values are copied
// like any other. Map returns spec configuration errors (see
// [Spec.Validate]) before resolving any field.
//
// Map does not modify src and is safe for concurrent use with a shared
// spec.
func Map(src Value, spec *Spec) (Value, error) {
	if spec == nil {
		return Value{}, ErrNilSpec
	}
	if err := spec.Validate(); err != nil {
		return Value{}, err
	}
	if spec.fn != nil {
		return spec.fn(src)
	}

	if seq, ok := src.AsSequence(); ok {
		out := &Sequence{items: make([]Value, 0, seq.Len())}
		for i, item := range seq.All() {
			mapped, err := mapOne(item, spec)
			if err != nil {
				return Value{}, fmt.Errorf("mapping element %d: %w", i, err)
			}
			out.Append(mapped)
		}
		return SeqVal(out), nil
	}

	return mapOne(src, spec)
}

// mapOne maps a single non-sequence source value.
func mapOne(src Value, spec *Spec) (Value, error) {
	rec, ok := src.AsRecord()
	if !ok {
		rec = NewRecord()
	}
	if spec.template != nil {
		return mapTemplate(rec, spec.template), nil
	}
	return mapEntries(rec, spec)
}

// mapTemplate clones the template and overwrites each field present in the
// source.
func mapTemplate(src, tmpl *Record) Value {
	out := tmpl.Clone()
	for _, key := range out.keys {
		if v, ok := src.Get(key); ok {
			out.Set(key, v.Clone())
		}
	}
	return RecordVal(out)
}

// mapEntries resolves each spec entry against the source record in order.
func mapEntries(src *Record, spec *Spec) (Value, error) {
	out := NewRecord()
	for _, e := range spec.entries {
		v, err := resolveRule(src, e.key, e.rule, spec.mods)
		if err != nil {
			return Value{}, err
		}
		out.Set(e.key, v)
	}
	return RecordVal(out), nil
}

// resolveRule produces the value for one target field.
func resolveRule(src *Record, key string, r rule, mods map[string]Modifier) (Value, error) {
	switch r.kind {
	case ruleField:
		v := src.GetOr(r.field, Null()).Clone()
		for _, name := range r.mods {
			next, err := mods[name](v)
			if err != nil {
				return Value{}, &ModifierError{Field: r.field, Modifier: name, Value: v, Err: err}
			}
			v = next
		}
		return v, nil

	case ruleCompute:
		return callFieldFunc(src, key, r.fn)

	default: // ruleConst
		if fn, ok := r.lit.AsFunc(); ok {
			return callFieldFunc(src, key, fn)
		}
		return r.lit.Clone(), nil
	}
}

// callFieldFunc invokes a field function with the source record and the
// current source value under the target key.
func callFieldFunc(src *Record, key string, fn FieldFunc) (Value, error) {
	current := src.GetOr(key, Null()).Clone()
	v, err := fn(src, current)
	if err != nil {
		return Value{}, fmt.Errorf("computing field %q: %w", key, err)
	}
	return v, nil
}
