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

import "iter"

// Sequence is an ordered list of values. The zero Sequence is empty and
// ready to use.
//
// Sequences are not safe for concurrent mutation.
type Sequence struct {
	items []Value
}

// NewSequence returns an empty sequence.
func NewSequence() *Sequence {
	return &Sequence{}
}

// SeqOf returns a sequence holding the given values.
func SeqOf(items ...Value) *Sequence {
	return &Sequence{items: items}
}

// Append adds values to the end of the sequence and returns it for
// chaining.
func (q *Sequence) Append(items ...Value) *Sequence {
	q.items = append(q.items, items...)
	return q
}

// At returns the value at index i. The second return value reports whether
// i is in range.
func (q *Sequence) At(i int) (Value, bool) {
	if q == nil || i < 0 || i >= len(q.items) {
		return Value{}, false
	}
	return q.items[i], true
}

// SetAt replaces the value at index i and reports whether i was in range.
func (q *Sequence) SetAt(i int, v Value) bool {
	if q == nil || i < 0 || i >= len(q.items) {
		return false
	}
	q.items[i] = v
	return true
}

// Len returns the number of values.
func (q *Sequence) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Values returns a copy of the underlying slice. The values themselves are
// not cloned.
func (q *Sequence) Values() []Value {
	if q == nil {
		return nil
	}
	out := make([]Value, len(q.items))
	copy(out, q.items)
	return out
}

// All returns an iterator over index and value pairs.
func (q *Sequence) All() iter.Seq2[int, Value] {
	return func(yield func(int, Value) bool) {
		if q == nil {
			return
		}
		for i, v := range q.items {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the sequence.
func (q *Sequence) Clone() *Sequence {
	if q == nil {
		return nil
	}
	out := &Sequence{items: make([]Value, len(q.items))}
	for i, v := range q.items {
		out.items[i] = v.Clone()
	}
	return out
}

// Equal reports whether q and o hold structurally equal values in the same
// order. Nil and empty sequences are equal.
func (q *Sequence) Equal(o *Sequence) bool {
	if q.Len() != o.Len() {
		return false
	}
	for i, v := range q.All() {
		ov, _ := o.At(i)
		if !v.Equal(ov) {
			return false
		}
	}
	return true
}
