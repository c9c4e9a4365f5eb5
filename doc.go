// Package bitfield compiles declarative bit field layouts and provides
// pure accessors over the packed storage integer.
//
// A schema declares named boolean flags and multi-bit fields packed into a
// fixed-width unsigned storage value. Compilation proves the layout well
// formed - no unintended bit overlap, no field wider than its value type can
// hold, no signed field that can never be negative - and yields an immutable
// Schema. Decoding and encoding are then pure functions over the storage
// value that touch exactly the field's bits and nothing else.
//
// # Architecture Overview
//
//	bitfield/            Schema model, compiler, and accessor engine
//	├── errors/          Structured validation and accessor errors
//	└── internal/
//	    ├── types/       Kinds, storage catalog, compiled field model
//	    └── bits/        128-bit storage value arithmetic
//
// # Quick Start
//
// Declare a layout, compile it, then read and write fields:
//
//	schema, err := bitfield.Compile(bitfield.Storage8, []bitfield.FieldSpec{
//		{Name: "foreground", Offset: 0, Width: 3, Type: colors},
//		{Name: "foreground_bright", Offset: 3, Width: 1, Type: bitfield.Bool()},
//		{Name: "background", Offset: 4, Width: 3, Type: colors},
//		{Name: "blink", Offset: 7, Width: 1, Type: bitfield.Bool()},
//	})
//	if err != nil {
//		// one of the taxonomy errors, with field names and quantities
//	}
//
//	enc := bitfield.NewEncoder(schema)
//	v, _ := enc.SetEnum(bitfield.ValueOf(0), "foreground", "green")
//	v, _ = enc.SetBool(v, "blink", true)
//
//	dec := bitfield.NewDecoder(schema)
//	blink, _ := dec.Bool(v, "blink")
//
// # Compilation Flow
//
//  1. Compile(storage, specs) validates every field in declaration order,
//     failing fast on the first violation.
//  2. The resulting Schema is immutable; accessors never see an invalid
//     layout.
//
// # Decoding Flow
//
// Every field decodes with (v >> offset) & mask(width) followed by a type
// conversion. Signed fields are reinterpreted bit for bit, never truncated.
// An enumerated field whose raw bits match no variant decodes to a tagged
// unrecognized value, not an error.
//
// # Concurrency
//
// Schemas are immutable after compilation and safe for concurrent use.
// Decoding is read-only. Encoding is a read-modify-write over the whole
// storage value; callers sharing a value across goroutines must serialize
// writes to it.
package bitfield
