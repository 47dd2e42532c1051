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
	"sort"
	"time"

	"github.com/spf13/cast"
)

// FromAny converts a native Go value into a [Value]. It is total: input
// that fits no variant is rendered through its string form, and values
// that cannot be stringified become null.
//
// Conversions:
//   - nil, Value, *Record, *Sequence, FieldFunc pass through
//   - bool, string, []byte map to their scalar kinds
//   - all integer widths collapse to int, floats to float; a uint64 beyond
//     the int64 range becomes a float
//   - time.Time renders as an RFC 3339 string
//   - map[string]any and map[string]string become records with keys in
//     sorted order
//   - []any and []string become sequences
func FromAny(v any) Value {
	switch t := v.(type) {
	case nil:
		return Value{}
	case Value:
		return t
	case *Record:
		return RecordVal(t)
	case *Sequence:
		return SeqVal(t)
	case FieldFunc:
		return FuncVal(t)
	case func(*Record, Value) (Value, error):
		return FuncVal(t)
	case bool:
		return BoolVal(t)
	case string:
		return StringVal(t)
	case []byte:
		return StringVal(string(t))
	case int:
		return IntVal(int64(t))
	case int8:
		return IntVal(int64(t))
	case int16:
		return IntVal(int64(t))
	case int32:
		return IntVal(int64(t))
	case int64:
		return IntVal(t)
	case uint:
		return fromUint(uint64(t))
	case uint8:
		return IntVal(int64(t))
	case uint16:
		return IntVal(int64(t))
	case uint32:
		return IntVal(int64(t))
	case uint64:
		return fromUint(t)
	case float32:
		return FloatVal(float64(t))
	case float64:
		return FloatVal(t)
	case time.Time:
		return StringVal(t.Format(time.RFC3339))
	case map[string]any:
		return RecordVal(FromMap(t))
	case map[string]string:
		m := make(map[string]any, len(t))
		for k, s := range t {
			m[k] = s
		}
		return RecordVal(FromMap(m))
	case []any:
		return SeqVal(FromSlice(t))
	case []string:
		q := NewSequence()
		for _, s := range t {
			q.Append(StringVal(s))
		}
		return SeqVal(q)
	default:
		s, err := cast.ToStringE(v)
		if err != nil {
			return Value{}
		}
		return StringVal(s)
	}
}

// fromUint converts an unsigned integer, switching to float beyond the
// int64 range.
func fromUint(u uint64) Value {
	if u > 1<<63-1 {
		return FloatVal(float64(u))
	}
	return IntVal(int64(u))
}

// FromMap converts a native map into a [Record]. Keys are inserted in
// sorted order so the record iterates deterministically. Nested maps and
// slices convert recursively. A nil map yields an empty record.
func FromMap(m map[string]any) *Record {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rec := NewRecord()
	for _, k := range keys {
		rec.Set(k, FromAny(m[k]))
	}
	return rec
}

// FromSlice converts a native slice into a [Sequence]. Elements convert
// recursively. A nil slice yields an empty sequence.
func FromSlice(s []any) *Sequence {
	q := &Sequence{items: make([]Value, len(s))}
	for i, v := range s {
		q.items[i] = FromAny(v)
	}
	return q
}

// ToAny converts a [Value] back into native Go data: nil, bool, int64,
// float64, string, map[string]any, []any, or [FieldFunc]. Record insertion
// order is lost in the native map form.
func ToAny(v Value) any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindRecord:
		m := make(map[string]any, v.rec.Len())
		for k, fv := range v.rec.All() {
			m[k] = ToAny(fv)
		}
		return m
	case KindSequence:
		out := make([]any, 0, v.seq.Len())
		for _, item := range v.seq.All() {
			out = append(out, ToAny(item))
		}
		return out
	case KindFunc:
		return v.fn
	default:
		return nil
	}
}
