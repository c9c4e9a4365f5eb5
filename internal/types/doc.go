// Package types defines the schema model for bit field layouts.
//
// A ValueType describes what one field holds (primitive, enumeration, or a
// group of flags), a Storage selects the native integer the fields pack
// into, and Field is the validated, position-resolved form produced by the
// compiler, with its mask precomputed.
//
// # Key Types
//
//   - Kind: value type discriminator (bool, u8..u128, s8..s128, enum, flags)
//   - Storage: native storage width selector
//   - ValueType / EnumType / Variant: field type descriptors
//   - Field: compiled field with positioned mask
//
// This package is internal to the bitfield library.
package types
