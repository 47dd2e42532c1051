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
	"iter"
	"slices"
)

// Record is a collection of named fields. Iteration follows insertion
// order, so mapping output and serial walks are deterministic; equality is
// order-insensitive. The zero Record is empty and ready to use.
//
// Records are not safe for concurrent mutation.
type Record struct {
	keys []string
	vals map[string]Value
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{vals: make(map[string]Value)}
}

// Set stores v under key, appending the key on first use and overwriting
// on repeats. It returns the record for chaining:
//
//	rec := shape.NewRecord().
//		Set("name", shape.StringVal("Ada")).
//		Set("age", shape.IntVal(36))
func (r *Record) Set(key string, v Value) *Record {
	if r.vals == nil {
		r.vals = make(map[string]Value)
	}
	if _, ok := r.vals[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.vals[key] = v
	return r
}

// Get returns the value stored under key. The second return value reports
// whether the key is present.
func (r *Record) Get(key string) (Value, bool) {
	if r == nil || r.vals == nil {
		return Value{}, false
	}
	v, ok := r.vals[key]
	return v, ok
}

// GetOr returns the value stored under key, or def when the key is absent.
func (r *Record) GetOr(key string, def Value) Value {
	if v, ok := r.Get(key); ok {
		return v
	}
	return def
}

// Has reports whether key is present.
func (r *Record) Has(key string) bool {
	_, ok := r.Get(key)
	return ok
}

// Delete removes key and reports whether it was present.
func (r *Record) Delete(key string) bool {
	if r == nil || r.vals == nil {
		return false
	}
	if _, ok := r.vals[key]; !ok {
		return false
	}
	delete(r.vals, key)
	r.keys = slices.DeleteFunc(r.keys, func(k string) bool { return k == key })
	return true
}

// Len returns the number of fields.
func (r *Record) Len() int {
	if r == nil {
		return 0
	}
	return len(r.keys)
}

// Keys returns the field names in insertion order.
func (r *Record) Keys() []string {
	if r == nil {
		return nil
	}
	return slices.Clone(r.keys)
}

// All returns an iterator over fields in insertion order.
func (r *Record) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if r == nil {
			return
		}
		for _, k := range r.keys {
			if !yield(k, r.vals[k]) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the record. Field values are cloned
// recursively, so the copy shares no mutable state with the original.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	out := &Record{
		keys: slices.Clone(r.keys),
		vals: make(map[string]Value, len(r.vals)),
	}
	for k, v := range r.vals {
		out.vals[k] = v.Clone()
	}
	return out
}

// Equal reports whether r and o hold the same fields with structurally
// equal values. Insertion order does not matter. Nil and empty records are
// equal.
func (r *Record) Equal(o *Record) bool {
	if r.Len() != o.Len() {
		return false
	}
	for k, v := range r.All() {
		ov, ok := o.Get(k)
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// HasFields reports whether every named field is present.
func (r *Record) HasFields(fields ...string) bool {
	for _, f := range fields {
		if !r.Has(f) {
			return false
		}
	}
	return true
}

// MissingFields returns the named fields that are absent, in the order
// given. It returns nil when all fields are present.
func (r *Record) MissingFields(fields ...string) []string {
	var missing []string
	for _, f := range fields {
		if !r.Has(f) {
			missing = append(missing, f)
		}
	}
	return missing
}
