package bitfield

import (
	"github.com/wippyai/bitfield/errors"
	"github.com/wippyai/bitfield/internal/bits"
)

// Encoder writes fields into storage values of one schema. Every setter
// returns a new value with exactly the field's bits replaced; all other
// bits are numerically identical to the input.
type Encoder struct {
	schema *Schema
}

func NewEncoder(s *Schema) *Encoder {
	return &Encoder{schema: s}
}

// insert masks raw to the field's width, clears the field's bits in v and
// ORs the shifted bits in.
func insert(v Value, f Field, raw Value) Value {
	return v.AndNot(f.Mask).Or(raw.Shl(f.Offset).And(f.Mask))
}

// SetBool encodes a boolean field.
func (e *Encoder) SetBool(v Value, field string, set bool) (Value, error) {
	f, ok := e.schema.Field(field)
	if !ok {
		return v, errors.NotFound(errors.PhaseEncode, field)
	}
	if f.Type.Kind != KindBool {
		return v, errors.TypeMismatch(errors.PhaseEncode, field, f.Type.Kind.String(), "bool")
	}
	var raw Value
	if set {
		raw = bits.From64(1)
	}
	return insert(v, f, raw), nil
}

// SetUint encodes an unsigned field of up to 64 bits. Bits of u beyond the
// field width are masked off.
func (e *Encoder) SetUint(v Value, field string, u uint64) (Value, error) {
	f, ok := e.schema.Field(field)
	if !ok {
		return v, errors.NotFound(errors.PhaseEncode, field)
	}
	if !f.Type.Kind.IsUnsigned() || f.Type.Kind == KindU128 {
		return v, errors.TypeMismatch(errors.PhaseEncode, field, f.Type.Kind.String(), "u8..u64")
	}
	return insert(v, f, bits.From64(u)), nil
}

// SetUint128 encodes any unsigned field, including u128.
func (e *Encoder) SetUint128(v Value, field string, u Value) (Value, error) {
	f, ok := e.schema.Field(field)
	if !ok {
		return v, errors.NotFound(errors.PhaseEncode, field)
	}
	if !f.Type.Kind.IsUnsigned() {
		return v, errors.TypeMismatch(errors.PhaseEncode, field, f.Type.Kind.String(), "unsigned")
	}
	return insert(v, f, u), nil
}

// SetInt encodes a signed field. The value's two's complement pattern is
// used directly; sign extension fills the high half for s128 fields.
func (e *Encoder) SetInt(v Value, field string, i int64) (Value, error) {
	f, ok := e.schema.Field(field)
	if !ok {
		return v, errors.NotFound(errors.PhaseEncode, field)
	}
	if !f.Type.Kind.IsSigned() {
		return v, errors.TypeMismatch(errors.PhaseEncode, field, f.Type.Kind.String(), "signed")
	}
	var hi uint64
	if i < 0 {
		hi = ^uint64(0)
	}
	return insert(v, f, bits.U128{Hi: hi, Lo: uint64(i)}), nil
}

// SetEnum encodes an enumerated field by variant name.
func (e *Encoder) SetEnum(v Value, field, variant string) (Value, error) {
	f, ok := e.schema.Field(field)
	if !ok {
		return v, errors.NotFound(errors.PhaseEncode, field)
	}
	if f.Type.Kind != KindEnum {
		return v, errors.TypeMismatch(errors.PhaseEncode, field, f.Type.Kind.String(), "enum")
	}
	raw, ok := f.Type.Enum.ValueOf(variant)
	if !ok {
		return v, errors.UnknownVariant(field, variant)
	}
	return insert(v, f, bits.From64(raw)), nil
}

// SetEnumRaw encodes an enumerated field from its raw discriminant. The
// value need not match a declared variant; this round-trips unrecognized
// values a decode reported.
func (e *Encoder) SetEnumRaw(v Value, field string, raw uint64) (Value, error) {
	f, ok := e.schema.Field(field)
	if !ok {
		return v, errors.NotFound(errors.PhaseEncode, field)
	}
	if f.Type.Kind != KindEnum {
		return v, errors.TypeMismatch(errors.PhaseEncode, field, f.Type.Kind.String(), "enum")
	}
	return insert(v, f, bits.From64(raw)), nil
}

// SetFlag sets or clears one flag of a flags group, touching only that bit.
func (e *Encoder) SetFlag(v Value, group, flag string, on bool) (Value, error) {
	f, ok := e.schema.Field(group)
	if !ok {
		return v, errors.NotFound(errors.PhaseEncode, group)
	}
	if f.Type.Kind != KindFlags {
		return v, errors.TypeMismatch(errors.PhaseEncode, group, f.Type.Kind.String(), "flags")
	}
	pos, ok := f.Type.Enum.ValueOf(flag)
	if !ok {
		return v, errors.UnknownVariant(group, flag)
	}
	return v.SetBit(uint32(pos), on), nil
}
