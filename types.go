package bitfield

import (
	"github.com/wippyai/bitfield/internal/bits"
	"github.com/wippyai/bitfield/internal/types"
)

type Kind = types.Kind

const (
	KindBool  = types.KindBool
	KindU8    = types.KindU8
	KindS8    = types.KindS8
	KindU16   = types.KindU16
	KindS16   = types.KindS16
	KindU32   = types.KindU32
	KindS32   = types.KindS32
	KindU64   = types.KindU64
	KindS64   = types.KindS64
	KindU128  = types.KindU128
	KindS128  = types.KindS128
	KindEnum  = types.KindEnum
	KindFlags = types.KindFlags
)

// StorageType selects the native unsigned integer a schema packs into.
type StorageType = types.Storage

const (
	Storage8    = types.Storage8
	Storage16   = types.Storage16
	Storage32   = types.Storage32
	Storage64   = types.Storage64
	Storage128  = types.Storage128
	StorageWord = types.StorageWord
)

type ValueType = types.ValueType
type EnumType = types.EnumType
type Variant = types.Variant
type Field = types.Field

// Value is one packed storage instance. The zero Value is all bits clear.
// Storage narrower than 128 bits occupies the low bits.
type Value = bits.U128

// ValueOf returns a storage value initialized from v.
func ValueOf(v uint64) Value {
	return bits.From64(v)
}

// Value type constructors.

func Bool() ValueType { return ValueType{Kind: KindBool, Bits: 1} }

func U8() ValueType   { return ValueType{Kind: KindU8, Bits: 8} }
func U16() ValueType  { return ValueType{Kind: KindU16, Bits: 16} }
func U32() ValueType  { return ValueType{Kind: KindU32, Bits: 32} }
func U64() ValueType  { return ValueType{Kind: KindU64, Bits: 64} }
func U128() ValueType { return ValueType{Kind: KindU128, Bits: 128} }

func S8() ValueType   { return ValueType{Kind: KindS8, Bits: 8} }
func S16() ValueType  { return ValueType{Kind: KindS16, Bits: 16} }
func S32() ValueType  { return ValueType{Kind: KindS32, Bits: 32} }
func S64() ValueType  { return ValueType{Kind: KindS64, Bits: 64} }
func S128() ValueType { return ValueType{Kind: KindS128, Bits: 128} }

// V declares one enum variant or flag position.
func V(name string, value uint64) Variant {
	return Variant{Name: name, Value: value}
}

// EnumOf declares an enumerated value type. The width is the number of bits
// needed to address the largest discriminant; it is supplied by the
// declarer, not inferred.
func EnumOf(name string, width uint32, variants ...Variant) ValueType {
	return ValueType{
		Kind: KindEnum,
		Bits: width,
		Enum: &EnumType{Name: name, Variants: variants},
	}
}

// CompleteEnumOf declares an enumerated value type whose variants must cover
// every raw value the width can hold. Decoding such a field cannot produce
// an unrecognized value.
func CompleteEnumOf(name string, width uint32, variants ...Variant) ValueType {
	return ValueType{
		Kind: KindEnum,
		Bits: width,
		Enum: &EnumType{Name: name, Variants: variants, Complete: true},
	}
}

// FlagsOf declares a group of 1-bit boolean flags. Each variant's value is
// an absolute bit position in the storage integer.
func FlagsOf(name string, flags ...Variant) ValueType {
	return ValueType{
		Kind: KindFlags,
		Enum: &EnumType{Name: name, Variants: flags},
	}
}
