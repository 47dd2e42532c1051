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
	"strconv"
	"strings"
)

// Collapse folds a sequence of pieces into a single value.
//
// With recursive=false it flattens one level: elements that are sequences
// are spliced into the result in place, everything else passes through, and
// the result is always a sequence. An empty input yields an empty sequence.
//
// With recursive=true it flattens completely and concatenates what remains.
// When every flattened element is an integer, their decimal forms are
// concatenated and re-parsed, so Collapse of 12 and 34 is the integer 1234;
// a digit string too long for an int64 stays a string. Any non-integer
// element switches the result to string concatenation of each element's
// [Value.Text] form. An empty input yields the empty string.
//
// The result never shares mutable containers with pieces.
func Collapse(pieces *Sequence, recursive bool) Value {
	if !recursive {
		out := NewSequence()
		for _, v := range pieces.All() {
			if sub, ok := v.AsSequence(); ok {
				for _, item := range sub.All() {
					out.Append(item.Clone())
				}
				continue
			}
			out.Append(v.Clone())
		}
		return SeqVal(out)
	}

	var flat []Value
	flattenInto(&flat, pieces)

	allInt := true
	for _, v := range flat {
		if v.Kind() != KindInt {
			allInt = false
			break
		}
	}

	var b strings.Builder
	if allInt {
		for _, v := range flat {
			b.WriteString(strconv.FormatInt(v.i, 10))
		}
		if n, err := strconv.ParseInt(b.String(), 10, 64); err == nil {
			return IntVal(n)
		}
		return StringVal(b.String())
	}

	for _, v := range flat {
		b.WriteString(v.Text())
	}
	return StringVal(b.String())
}

// flattenInto appends every non-sequence element of q to out, descending
// into nested sequences.
func flattenInto(out *[]Value, q *Sequence) {
	for _, v := range q.All() {
		if sub, ok := v.AsSequence(); ok {
			flattenInto(out, sub)
			continue
		}
		*out = append(*out, v)
	}
}
