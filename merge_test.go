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

//go:build !integration

package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeRecords(t *testing.T) {
	t.Parallel()

	t.Run("lenient takes every source field", func(t *testing.T) {
		t.Parallel()

		dst := RecordVal(NewRecord().
			Set("name", StringVal("old")).
			Set("city", StringVal("Paris")))
		src := RecordVal(NewRecord().
			Set("name", StringVal("new")).
			Set("email", StringVal("a@b.c")))

		require.NoError(t, Merge(dst, src, false))

		rec, _ := dst.AsRecord()
		assert.Equal(t, []string{"name", "city", "email"}, rec.Keys())
		assert.Equal(t, StringVal("new"), rec.GetOr("name", Null()))
		assert.Equal(t, StringVal("Paris"), rec.GetOr("city", Null()))
		assert.Equal(t, StringVal("a@b.c"), rec.GetOr("email", Null()))
	})

	t.Run("strict never introduces fields", func(t *testing.T) {
		t.Parallel()

		dst := RecordVal(NewRecord().Set("name", StringVal("old")))
		src := RecordVal(NewRecord().
			Set("name", StringVal("new")).
			Set("email", StringVal("a@b.c")))

		require.NoError(t, Merge(dst, src, true))

		rec, _ := dst.AsRecord()
		assert.Equal(t, []string{"name"}, rec.Keys())
		assert.Equal(t, StringVal("new"), rec.GetOr("name", Null()))
	})

	t.Run("assigned values are copies", func(t *testing.T) {
		t.Parallel()

		inner := NewRecord().Set("n", IntVal(1))
		dst := RecordVal(NewRecord())
		src := RecordVal(NewRecord().Set("nested", RecordVal(inner)))

		require.NoError(t, Merge(dst, src, false))
		inner.Set("n", IntVal(99))

		rec, _ := dst.AsRecord()
		nested, _ := rec.Get("nested")
		nestedRec, _ := nested.AsRecord()
		assert.Equal(t, IntVal(1), nestedRec.GetOr("n", Null()))
	})
}

func TestMergeSequences(t *testing.T) {
	t.Parallel()

	t.Run("positions overwrite, lenient appends", func(t *testing.T) {
		t.Parallel()

		dst := SeqVal(SeqOf(StringVal("a"), StringVal("b")))
		src := SeqVal(SeqOf(StringVal("x"), StringVal("y"), StringVal("z")))

		require.NoError(t, Merge(dst, src, false))

		seq, _ := dst.AsSequence()
		assert.Equal(t, []Value{StringVal("x"), StringVal("y"), StringVal("z")}, seq.Values())
	})

	t.Run("strict ignores extra positions", func(t *testing.T) {
		t.Parallel()

		dst := SeqVal(SeqOf(StringVal("a"), StringVal("b")))
		src := SeqVal(SeqOf(StringVal("x"), StringVal("y"), StringVal("z")))

		require.NoError(t, Merge(dst, src, true))

		seq, _ := dst.AsSequence()
		assert.Equal(t, []Value{StringVal("x"), StringVal("y")}, seq.Values())
	})
}

func TestMergeSequenceOntoRecord(t *testing.T) {
	t.Parallel()

	t.Run("positions become numeric fields", func(t *testing.T) {
		t.Parallel()

		dst := RecordVal(NewRecord().Set("0", StringVal("old")))
		src := SeqVal(SeqOf(StringVal("first"), StringVal("second")))

		require.NoError(t, Merge(dst, src, false))

		rec, _ := dst.AsRecord()
		assert.Equal(t, StringVal("first"), rec.GetOr("0", Null()))
		assert.Equal(t, StringVal("second"), rec.GetOr("1", Null()))
	})

	t.Run("strict only fills existing numeric fields", func(t *testing.T) {
		t.Parallel()

		dst := RecordVal(NewRecord().Set("1", StringVal("old")))
		src := SeqVal(SeqOf(StringVal("first"), StringVal("second")))

		require.NoError(t, Merge(dst, src, true))

		rec, _ := dst.AsRecord()
		assert.Equal(t, []string{"1"}, rec.Keys())
		assert.Equal(t, StringVal("second"), rec.GetOr("1", Null()))
	})
}

func TestMergeRecordOntoSequence(t *testing.T) {
	t.Parallel()

	t.Run("numeric keys address positions", func(t *testing.T) {
		t.Parallel()

		dst := SeqVal(SeqOf(StringVal("a"), StringVal("b")))
		src := RecordVal(NewRecord().
			Set("1", StringVal("B")).
			Set("label", StringVal("skipped")).
			Set("-1", StringVal("skipped")))

		require.NoError(t, Merge(dst, src, false))

		seq, _ := dst.AsSequence()
		assert.Equal(t, []Value{StringVal("a"), StringVal("B")}, seq.Values())
	})

	t.Run("lenient appends at the next position", func(t *testing.T) {
		t.Parallel()

		dst := SeqVal(SeqOf(StringVal("a")))
		src := RecordVal(NewRecord().
			Set("1", StringVal("b")).
			Set("5", StringVal("gap, skipped")))

		require.NoError(t, Merge(dst, src, false))

		seq, _ := dst.AsSequence()
		assert.Equal(t, []Value{StringVal("a"), StringVal("b")}, seq.Values())
	})

	t.Run("strict never grows the sequence", func(t *testing.T) {
		t.Parallel()

		dst := SeqVal(SeqOf(StringVal("a")))
		src := RecordVal(NewRecord().Set("1", StringVal("b")))

		require.NoError(t, Merge(dst, src, true))

		seq, _ := dst.AsSequence()
		assert.Equal(t, 1, seq.Len())
	})
}

func TestMergeRejectsScalars(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		dst     Value
		src     Value
		wantMsg string
	}{
		{"scalar target", StringVal("x"), RecordVal(NewRecord()), "target is string"},
		{"null target", Null(), RecordVal(NewRecord()), "target is null"},
		{"scalar source onto record", RecordVal(NewRecord()), IntVal(1), "source is int"},
		{"scalar source onto sequence", SeqVal(NewSequence()), BoolVal(true), "source is bool"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Merge(tt.dst, tt.src, false)
			require.ErrorIs(t, err, ErrNotMergeable)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestMergeMaps(t *testing.T) {
	t.Parallel()

	t.Run("lenient deep merge", func(t *testing.T) {
		t.Parallel()

		dst := map[string]any{
			"name": "svc",
			"server": map[string]any{
				"host": "localhost",
				"port": 8080,
			},
		}
		src := map[string]any{
			"server": map[string]any{"port": 9090},
			"debug":  true,
		}

		require.NoError(t, MergeMaps(&dst, src, false))

		assert.Equal(t, "svc", dst["name"])
		assert.Equal(t, true, dst["debug"])
		server, ok := dst["server"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "localhost", server["host"])
		assert.Equal(t, 9090, server["port"])
	})

	t.Run("strict drops unknown top-level keys", func(t *testing.T) {
		t.Parallel()

		dst := map[string]any{"name": "svc"}
		src := map[string]any{"name": "other", "debug": true}

		require.NoError(t, MergeMaps(&dst, src, true))

		assert.Equal(t, "other", dst["name"])
		assert.NotContains(t, dst, "debug")
	})

	t.Run("nil destination map is allocated", func(t *testing.T) {
		t.Parallel()

		var dst map[string]any
		require.NoError(t, MergeMaps(&dst, map[string]any{"a": 1}, false))
		assert.Equal(t, 1, dst["a"])
	})

	t.Run("nil pointer", func(t *testing.T) {
		t.Parallel()

		err := MergeMaps(nil, map[string]any{"a": 1}, false)
		assert.ErrorIs(t, err, ErrNilTarget)
	})

	t.Run("empty source is a no-op", func(t *testing.T) {
		t.Parallel()

		dst := map[string]any{"keep": "me"}
		require.NoError(t, MergeMaps(&dst, nil, false))
		assert.Equal(t, map[string]any{"keep": "me"}, dst)
	})
}
