// Package bits provides raw 128-bit integer arithmetic for storage values.
//
// U128 is the in-memory representation of every storage value, regardless of
// the schema's declared storage width. Masks are constructed capacity-aware:
// a width equal to the full 128 bits never relies on an oversized shift.
//
// This package is internal to the bitfield library.
package bits
