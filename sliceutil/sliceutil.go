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

// Package sliceutil provides generic slice helpers for mapping, filtering,
// searching, deduplication, and padding. All functions return new slices and
// never modify their input.
package sliceutil

import "slices"

// Map applies fn to every element of s and returns the results.
// A nil input yields a nil result.
func Map[T, U any](s []T, fn func(T) U) []U {
	if s == nil {
		return nil
	}
	out := make([]U, len(s))
	for i, v := range s {
		out[i] = fn(v)
	}
	return out
}

// Filter returns the elements of s for which keep reports true.
func Filter[T any](s []T, keep func(T) bool) []T {
	if s == nil {
		return nil
	}
	out := make([]T, 0, len(s))
	for _, v := range s {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// Contains reports whether v is present in s.
func Contains[T comparable](s []T, v T) bool {
	return slices.Contains(s, v)
}

// ContainsFunc reports whether any element of s satisfies match.
func ContainsFunc[T any](s []T, match func(T) bool) bool {
	return slices.ContainsFunc(s, match)
}

// IndexOf returns the index of the first occurrence of v in s, or -1.
func IndexOf[T comparable](s []T, v T) int {
	return slices.Index(s, v)
}

// Find returns the first element of s satisfying match.
// The second return value reports whether such an element was found.
func Find[T any](s []T, match func(T) bool) (T, bool) {
	for _, v := range s {
		if match(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// First returns the first element of s, or the zero value when s is empty.
func First[T any](s []T) (T, bool) {
	if len(s) == 0 {
		var zero T
		return zero, false
	}
	return s[0], true
}

// Last returns the last element of s, or the zero value when s is empty.
func Last[T any](s []T) (T, bool) {
	if len(s) == 0 {
		var zero T
		return zero, false
	}
	return s[len(s)-1], true
}

// Unique returns the elements of s with duplicates removed, keeping the
// first occurrence of each value in its original position.
func Unique[T comparable](s []T) []T {
	if s == nil {
		return nil
	}
	seen := make(map[T]struct{}, len(s))
	out := make([]T, 0, len(s))
	for _, v := range s {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Compact returns the elements of s with zero values removed.
func Compact[T comparable](s []T) []T {
	var zero T
	return Filter(s, func(v T) bool { return v != zero })
}

// Pad returns a copy of s padded with v to the absolute value of size.
// A positive size pads on the right, a negative size on the left. When s
// already has at least |size| elements, an unpadded copy is returned.
//
//	Pad([]int{1, 2}, 4, 0)  // [1 2 0 0]
//	Pad([]int{1, 2}, -4, 0) // [0 0 1 2]
//	Pad([]int{1, 2}, 1, 0)  // [1 2]
func Pad[T any](s []T, size int, v T) []T {
	n := size
	if n < 0 {
		n = -n
	}
	if n <= len(s) {
		return slices.Clone(s)
	}

	out := make([]T, 0, n)
	fill := n - len(s)
	if size < 0 {
		for range fill {
			out = append(out, v)
		}
		return append(out, s...)
	}
	out = append(out, s...)
	for range fill {
		out = append(out, v)
	}
	return out
}
