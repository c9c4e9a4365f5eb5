// Package errors provides structured error types for the bitfield library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). Every schema-construction failure carries the names of the
// fields involved and the numeric quantities that violated the rule, so a
// caller can report precisely which declaration is wrong without parsing
// message strings.
//
// Use the convenience constructors for the established taxonomy, or the
// Builder for less common combinations:
//
//	err := errors.TypeTooSmall("count", 9, 8)
//	err := errors.New(errors.PhaseValidate, errors.KindInvalidInput).
//		Fields("count").
//		Detail("width must be positive").
//		Build()
//
// Errors support errors.Is matching by Phase and Kind.
package errors
