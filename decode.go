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
	"time"

	"github.com/go-viper/mapstructure/v2"
)

// decodeOptions holds Decode configuration.
type decodeOptions struct {
	tag string
}

// DecodeOption configures [Decode].
type DecodeOption func(*decodeOptions)

// WithDecodeTag sets the struct tag name consulted when matching record
// fields to struct fields. The default is "shape".
func WithDecodeTag(tag string) DecodeOption {
	return func(o *decodeOptions) {
		o.tag = tag
	}
}

// Decode binds a value onto a Go struct. target must be a non-nil pointer.
// Field matching uses the "shape" struct tag (see [WithDecodeTag]),
// falling back to case-insensitive field names. Input is converted
// generously: numeric strings fill numeric fields, "true" fills bools,
// RFC 3339 strings fill time.Time fields, duration strings fill
// time.Duration, and comma-separated strings fill slices.
//
//	type User struct {
//		Name    string        `shape:"full_name"`
//		Age     int           `shape:"age"`
//		Joined  time.Time     `shape:"joined"`
//		Timeout time.Duration `shape:"timeout"`
//	}
//
//	var u User
//	err := shape.Decode(rec, &u)
func Decode(v Value, target any, opts ...DecodeOption) error {
	o := decodeOptions{tag: "shape"}
	for _, opt := range opts {
		opt(&o)
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          o.tag,
		Squash:           true,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
			mapstructure.StringToTimeHookFunc(time.RFC3339),
			mapstructure.StringToURLHookFunc(),
		),
	})
	if err != nil {
		return fmt.Errorf("building decoder: %w", err)
	}

	if err := dec.Decode(ToAny(v)); err != nil {
		return fmt.Errorf("decoding into %T: %w", target, err)
	}
	return nil
}
