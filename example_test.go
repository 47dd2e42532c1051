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

package shape_test

import (
	"fmt"
	"time"

	"rivaas.dev/shape"
)

// ExampleMap demonstrates reshaping a record with field rules and
// modifiers.
func ExampleMap() {
	src := shape.RecordVal(shape.NewRecord().
		Set("full_name", shape.StringVal("  Grace Hopper ")).
		Set("email", shape.StringVal("GRACE@Example.COM")))

	spec := shape.NewSpec(shape.WithModifiers(shape.StandardModifiers())).
		Field("name", "full_name:trim").
		Field("contact", "email:trim,lower").
		Const("version", shape.IntVal(2))

	out, err := shape.Map(src, spec)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	rec, _ := out.AsRecord()
	for key, v := range rec.All() {
		fmt.Printf("%s: %s\n", key, v.Text())
	}
	// Output:
	// name: Grace Hopper
	// contact: grace@example.com
	// version: 2
}

// ExampleMap_compute demonstrates deriving a field from the whole source
// record.
func ExampleMap_compute() {
	src := shape.RecordVal(shape.NewRecord().
		Set("first", shape.StringVal("Grace")).
		Set("last", shape.StringVal("Hopper")))

	spec := shape.NewSpec().
		Compute("display", func(src *shape.Record, _ shape.Value) (shape.Value, error) {
			first := src.GetOr("first", shape.Null()).Text()
			last := src.GetOr("last", shape.Null()).Text()
			return shape.StringVal(first + " " + last), nil
		})

	out, err := shape.Map(src, spec)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	rec, _ := out.AsRecord()
	fmt.Println(rec.GetOr("display", shape.Null()).Text())
	// Output: Grace Hopper
}

// ExampleMap_template demonstrates shape-by-example mapping with default
// values.
func ExampleMap_template() {
	src := shape.RecordVal(shape.NewRecord().
		Set("name", shape.StringVal("Ada")))

	spec := shape.Template(shape.NewRecord().
		Set("name", shape.StringVal("anonymous")).
		Set("role", shape.StringVal("user")))

	out, err := shape.Map(src, spec)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	rec, _ := out.AsRecord()
	for key, v := range rec.All() {
		fmt.Printf("%s: %s\n", key, v.Text())
	}
	// Output:
	// name: Ada
	// role: user
}

// ExampleMap_sequence demonstrates mapping every element of a sequence
// with one spec.
func ExampleMap_sequence() {
	src := shape.SeqVal(shape.SeqOf(
		shape.RecordVal(shape.NewRecord().Set("full_name", shape.StringVal("Ada Lovelace"))),
		shape.RecordVal(shape.NewRecord().Set("full_name", shape.StringVal("Alan Turing"))),
	))

	spec := shape.NewSpec(shape.WithModifiers(shape.StandardModifiers())).
		Field("slug", "full_name:slug")

	out, err := shape.Map(src, spec)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	seq, _ := out.AsSequence()
	for _, v := range seq.All() {
		rec, _ := v.AsRecord()
		fmt.Println(rec.GetOr("slug", shape.Null()).Text())
	}
	// Output:
	// ada-lovelace
	// alan-turing
}

// ExampleMerge demonstrates a strict in-place merge that updates existing
// fields without introducing new ones.
func ExampleMerge() {
	dst := shape.RecordVal(shape.NewRecord().
		Set("host", shape.StringVal("localhost")).
		Set("port", shape.IntVal(8080)))
	src := shape.RecordVal(shape.NewRecord().
		Set("port", shape.IntVal(9090)).
		Set("debug", shape.BoolVal(true)))

	if err := shape.Merge(dst, src, true); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	rec, _ := dst.AsRecord()
	for key, v := range rec.All() {
		fmt.Printf("%s: %s\n", key, v.Text())
	}
	// Output:
	// host: localhost
	// port: 9090
}

// ExampleCollapse demonstrates recursive flattening with numeric
// concatenation.
func ExampleCollapse() {
	pieces := shape.SeqOf(
		shape.IntVal(12),
		shape.SeqVal(shape.SeqOf(shape.IntVal(34), shape.IntVal(56))),
	)

	fmt.Println(shape.Collapse(pieces, true).Text())
	fmt.Println(shape.Collapse(shape.SeqOf(
		shape.StringVal("a"), shape.IntVal(1),
	), true).Text())
	// Output:
	// 123456
	// a1
}

// ExampleDecode demonstrates binding a record onto a struct with type
// conversion.
func ExampleDecode() {
	type Server struct {
		Host    string        `shape:"host"`
		Port    int           `shape:"port"`
		Timeout time.Duration `shape:"timeout"`
	}

	rec := shape.RecordVal(shape.NewRecord().
		Set("host", shape.StringVal("api.internal")).
		Set("port", shape.StringVal("8080")).
		Set("timeout", shape.StringVal("30s")))

	var srv Server
	if err := shape.Decode(rec, &srv); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("%s:%d timeout=%s\n", srv.Host, srv.Port, srv.Timeout)
	// Output: api.internal:8080 timeout=30s
}
