package bitfield

import (
	"github.com/wippyai/bitfield/errors"
	"github.com/wippyai/bitfield/internal/bits"
)

// Decoded is the result of decoding one field from a storage value. Kind
// selects which members carry the payload:
//
//	bool         Bool
//	u8..u128     Uint
//	s8..s64      Int (Uint holds the raw pattern as well)
//	s128         Uint (two's complement pattern; Int holds the low word)
//	enum         Variant and Known when recognized, otherwise Uint
//	flags        Flags, the set flag names in declaration order
type Decoded struct {
	Field   string
	Kind    Kind
	Bool    bool
	Uint    Value
	Int     int64
	Variant string
	Known   bool
	Flags   []string
}

// EnumValue is the outcome of decoding an enumerated field: either a
// recognized variant or the raw bits tagged unrecognized. It is never an
// error; callers must handle Known explicitly.
type EnumValue struct {
	Name  string
	Raw   uint64
	Known bool
}

// Decoder reads fields out of storage values of one schema.
type Decoder struct {
	schema *Schema
}

func NewDecoder(s *Schema) *Decoder {
	return &Decoder{schema: s}
}

// Decode extracts the named field from v. The only error is an unknown
// field name; an enumerated field with no matching variant decodes to an
// unrecognized value, not an error.
func (d *Decoder) Decode(v Value, field string) (Decoded, error) {
	f, ok := d.schema.Field(field)
	if !ok {
		return Decoded{}, errors.NotFound(errors.PhaseDecode, field)
	}

	raw := v.And(f.Mask).Shr(f.Offset)
	dec := Decoded{Field: f.Name, Kind: f.Type.Kind}

	switch {
	case f.Type.Kind == KindBool:
		dec.Bool = !raw.IsZero()

	case f.Type.Kind.IsUnsigned():
		dec.Uint = raw

	case f.Type.Kind.IsSigned():
		dec.Uint = raw
		dec.Int = reinterpretSigned(raw, f.Type.Kind)

	case f.Type.Kind == KindEnum:
		dec.Uint = raw
		if variant, known := f.Type.Enum.VariantOf(raw.Uint64()); known {
			dec.Variant = variant.Name
			dec.Known = true
		}

	case f.Type.Kind == KindFlags:
		for _, fl := range f.Type.Enum.Variants {
			if v.Bit(uint32(fl.Value)) {
				dec.Flags = append(dec.Flags, fl.Name)
			}
		}
	}

	return dec, nil
}

// reinterpretSigned converts the extracted bit pattern to a signed value.
// Validation guarantees the field width equals the type's full capacity, so
// this is a bit-for-bit reinterpretation, never a truncating narrowing.
// s128 does not fit int64; its pattern stays in Decoded.Uint.
func reinterpretSigned(raw bits.U128, k Kind) int64 {
	switch k {
	case KindS8:
		return int64(int8(uint8(raw.Lo)))
	case KindS16:
		return int64(int16(uint16(raw.Lo)))
	case KindS32:
		return int64(int32(uint32(raw.Lo)))
	default:
		return int64(raw.Lo)
	}
}

// Bool decodes a boolean field.
func (d *Decoder) Bool(v Value, field string) (bool, error) {
	f, ok := d.schema.Field(field)
	if !ok {
		return false, errors.NotFound(errors.PhaseDecode, field)
	}
	if f.Type.Kind != KindBool {
		return false, errors.TypeMismatch(errors.PhaseDecode, field, f.Type.Kind.String(), "bool")
	}
	return !v.And(f.Mask).IsZero(), nil
}

// Uint decodes an unsigned field of up to 64 bits.
func (d *Decoder) Uint(v Value, field string) (uint64, error) {
	f, ok := d.schema.Field(field)
	if !ok {
		return 0, errors.NotFound(errors.PhaseDecode, field)
	}
	if !f.Type.Kind.IsUnsigned() || f.Type.Kind == KindU128 {
		return 0, errors.TypeMismatch(errors.PhaseDecode, field, f.Type.Kind.String(), "u8..u64")
	}
	return v.And(f.Mask).Shr(f.Offset).Uint64(), nil
}

// Uint128 decodes any unsigned field, including u128.
func (d *Decoder) Uint128(v Value, field string) (Value, error) {
	f, ok := d.schema.Field(field)
	if !ok {
		return Value{}, errors.NotFound(errors.PhaseDecode, field)
	}
	if !f.Type.Kind.IsUnsigned() {
		return Value{}, errors.TypeMismatch(errors.PhaseDecode, field, f.Type.Kind.String(), "unsigned")
	}
	return v.And(f.Mask).Shr(f.Offset), nil
}

// Int decodes a signed field of up to 64 bits.
func (d *Decoder) Int(v Value, field string) (int64, error) {
	f, ok := d.schema.Field(field)
	if !ok {
		return 0, errors.NotFound(errors.PhaseDecode, field)
	}
	if !f.Type.Kind.IsSigned() || f.Type.Kind == KindS128 {
		return 0, errors.TypeMismatch(errors.PhaseDecode, field, f.Type.Kind.String(), "s8..s64")
	}
	return reinterpretSigned(v.And(f.Mask).Shr(f.Offset), f.Type.Kind), nil
}

// Enum decodes an enumerated field. An unmatched discriminant is reported
// through EnumValue.Known, never as an error.
func (d *Decoder) Enum(v Value, field string) (EnumValue, error) {
	f, ok := d.schema.Field(field)
	if !ok {
		return EnumValue{}, errors.NotFound(errors.PhaseDecode, field)
	}
	if f.Type.Kind != KindEnum {
		return EnumValue{}, errors.TypeMismatch(errors.PhaseDecode, field, f.Type.Kind.String(), "enum")
	}

	raw := v.And(f.Mask).Shr(f.Offset).Uint64()
	if variant, known := f.Type.Enum.VariantOf(raw); known {
		return EnumValue{Name: variant.Name, Raw: raw, Known: true}, nil
	}
	return EnumValue{Raw: raw}, nil
}
