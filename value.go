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

	"github.com/spf13/cast"
)

// Kind identifies the variant held by a [Value].
type Kind uint8

const (
	// KindNull is the absent or empty value. The zero Value is null.
	KindNull Kind = iota

	// KindBool holds a boolean.
	KindBool

	// KindInt holds a 64-bit signed integer.
	KindInt

	// KindFloat holds a 64-bit float.
	KindFloat

	// KindString holds a string.
	KindString

	// KindRecord holds a [*Record].
	KindRecord

	// KindSequence holds a [*Sequence].
	KindSequence

	// KindFunc holds a [FieldFunc].
	KindFunc
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindRecord:
		return "record"
	case KindSequence:
		return "sequence"
	case KindFunc:
		return "func"
	default:
		return "unknown"
	}
}

// Value is a tagged union over the kinds of data the mapper works with:
// null, booleans, integers, floats, strings, records, sequences, and field
// functions. The zero Value is null. Values are small and passed by value;
// record and sequence kinds share their underlying container, so use
// [Value.Clone] when an independent copy is needed.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	rec  *Record
	seq  *Sequence
	fn   FieldFunc
}

// Null returns the null value. It is identical to the zero Value.
func Null() Value {
	return Value{}
}

// BoolVal returns a boolean value.
func BoolVal(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// IntVal returns an integer value.
func IntVal(i int64) Value {
	return Value{kind: KindInt, i: i}
}

// FloatVal returns a float value.
func FloatVal(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

// StringVal returns a string value.
func StringVal(s string) Value {
	return Value{kind: KindString, s: s}
}

// RecordVal returns a value holding r. A nil record yields the null value.
func RecordVal(r *Record) Value {
	if r == nil {
		return Value{}
	}
	return Value{kind: KindRecord, rec: r}
}

// SeqVal returns a value holding q. A nil sequence yields the null value.
func SeqVal(q *Sequence) Value {
	if q == nil {
		return Value{}
	}
	return Value{kind: KindSequence, seq: q}
}

// FuncVal returns a value holding fn. A nil function yields the null value.
// Function values used as mapping rules are invoked with the source record,
// see [Spec.Const].
func FuncVal(fn FieldFunc) Value {
	if fn == nil {
		return Value{}
	}
	return Value{kind: KindFunc, fn: fn}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether v is the null value.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// AsBool returns the boolean held by v. The second return value reports
// whether v is a bool.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// AsInt returns the integer held by v. The second return value reports
// whether v is an int.
func (v Value) AsInt() (int64, bool) {
	return v.i, v.kind == KindInt
}

// AsFloat returns the float held by v. The second return value reports
// whether v is a float.
func (v Value) AsFloat() (float64, bool) {
	return v.f, v.kind == KindFloat
}

// AsString returns the string held by v. The second return value reports
// whether v is a string.
func (v Value) AsString() (string, bool) {
	return v.s, v.kind == KindString
}

// AsRecord returns the record held by v. The second return value reports
// whether v is a record.
func (v Value) AsRecord() (*Record, bool) {
	return v.rec, v.kind == KindRecord
}

// AsSequence returns the sequence held by v. The second return value
// reports whether v is a sequence.
func (v Value) AsSequence() (*Sequence, bool) {
	return v.seq, v.kind == KindSequence
}

// AsFunc returns the field function held by v. The second return value
// reports whether v is a function.
func (v Value) AsFunc() (FieldFunc, bool) {
	return v.fn, v.kind == KindFunc
}

// Text returns the canonical string form of v: booleans as "true" and
// "false", integers and floats in decimal notation, strings verbatim.
// Null, record, sequence, and function values render as the empty string.
func (v Value) Text() string {
	switch v.kind {
	case KindBool:
		return cast.ToString(v.b)
	case KindInt:
		return cast.ToString(v.i)
	case KindFloat:
		return cast.ToString(v.f)
	case KindString:
		return v.s
	default:
		return ""
	}
}

// Clone returns a deep copy of v. Scalars are copied directly; records and
// sequences are cloned recursively so the copy shares no mutable state with
// the original. Function values keep their function reference.
func (v Value) Clone() Value {
	switch v.kind {
	case KindRecord:
		return RecordVal(v.rec.Clone())
	case KindSequence:
		return SeqVal(v.seq.Clone())
	default:
		return v
	}
}

// Equal reports whether v and o hold structurally equal data. Records
// compare by key set regardless of insertion order, sequences by position.
// Function values are not comparable and never equal.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == o.b
	case KindInt:
		return v.i == o.i
	case KindFloat:
		return v.f == o.f
	case KindString:
		return v.s == o.s
	case KindRecord:
		return v.rec.Equal(o.rec)
	case KindSequence:
		return v.seq.Equal(o.seq)
	default:
		return false
	}
}

// describe returns a short kind-tagged form of v for error messages.
func (v Value) describe() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindString:
		return fmt.Sprintf("string(%q)", v.s)
	case KindRecord:
		return fmt.Sprintf("record(%d fields)", v.rec.Len())
	case KindSequence:
		return fmt.Sprintf("sequence(%d items)", v.seq.Len())
	case KindFunc:
		return "func"
	default:
		return fmt.Sprintf("%s(%s)", v.kind, v.Text())
	}
}
