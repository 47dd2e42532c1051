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
	"strconv"

	"dario.cat/mergo"
)

// Merge copies fields from src onto dst in place. Both values must hold a
// record or a sequence; anything else returns [ErrNotMergeable].
//
// In lenient mode (strict=false) every source field lands on the target,
// creating fields the target lacks. In strict mode only fields already
// present on the target are overwritten; the source never introduces new
// ones. Assigned values are deep copies, so dst shares no mutable state
// with src afterwards.
//
// Records and sequences merge uniformly by treating sequence positions as
// decimal string keys: a sequence source writes fields "0", "1", ... onto a
// record target, and a record source addresses sequence positions by
// numeric keys. Non-numeric or out-of-range keys are skipped; in lenient
// mode a key equal to the sequence length appends.
//
// Merge mutates dst and is not safe for concurrent use on the same target.
func Merge(dst, src Value, strict bool) error {
	switch dst.Kind() {
	case KindRecord:
		switch src.Kind() {
		case KindRecord:
			mergeRecords(dst.rec, src.rec, strict)
		case KindSequence:
			mergeSeqOntoRecord(dst.rec, src.seq, strict)
		default:
			return fmt.Errorf("%w: source is %s", ErrNotMergeable, src.Kind())
		}
	case KindSequence:
		switch src.Kind() {
		case KindSequence:
			mergeSequences(dst.seq, src.seq, strict)
		case KindRecord:
			mergeRecordOntoSeq(dst.seq, src.rec, strict)
		default:
			return fmt.Errorf("%w: source is %s", ErrNotMergeable, src.Kind())
		}
	default:
		return fmt.Errorf("%w: target is %s", ErrNotMergeable, dst.Kind())
	}
	return nil
}

func mergeRecords(dst, src *Record, strict bool) {
	for k, v := range src.All() {
		if strict && !dst.Has(k) {
			continue
		}
		dst.Set(k, v.Clone())
	}
}

func mergeSeqOntoRecord(dst *Record, src *Sequence, strict bool) {
	for i, v := range src.All() {
		key := strconv.Itoa(i)
		if strict && !dst.Has(key) {
			continue
		}
		dst.Set(key, v.Clone())
	}
}

func mergeSequences(dst, src *Sequence, strict bool) {
	for i, v := range src.All() {
		if i < dst.Len() {
			dst.SetAt(i, v.Clone())
			continue
		}
		if !strict {
			dst.Append(v.Clone())
		}
	}
}

func mergeRecordOntoSeq(dst *Sequence, src *Record, strict bool) {
	for k, v := range src.All() {
		idx, err := strconv.Atoi(k)
		if err != nil || idx < 0 {
			continue
		}
		if idx < dst.Len() {
			dst.SetAt(idx, v.Clone())
			continue
		}
		if !strict && idx == dst.Len() {
			dst.Append(v.Clone())
		}
	}
}

// MergeMaps merges src onto *dst for callers working with native maps
// instead of [Record] values. Lenient merging is a deep merge: nested maps
// combine recursively with source values winning. Strict mode restricts the
// merge to top-level keys already present in *dst.
//
// A nil *dst map is allocated; a nil dst pointer returns [ErrNilTarget].
func MergeMaps(dst *map[string]any, src map[string]any, strict bool) error {
	if dst == nil {
		return ErrNilTarget
	}
	if *dst == nil {
		*dst = make(map[string]any, len(src))
	}
	if len(src) == 0 {
		return nil
	}

	if strict {
		filtered := make(map[string]any, len(src))
		for k, v := range src {
			if _, ok := (*dst)[k]; ok {
				filtered[k] = v
			}
		}
		src = filtered
	}

	if err := mergo.Map(dst, src, mergo.WithOverride); err != nil {
		return fmt.Errorf("merging maps: %w", err)
	}
	return nil
}
