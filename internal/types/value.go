package types

// Variant is one named discriminant of an enumerated type. For flags types
// the value is an absolute bit position in the storage integer.
type Variant struct {
	Name  string
	Value uint64
}

// EnumType maps raw unsigned values to named variants. The mapping must be
// injective; the compiler rejects duplicate values and duplicate names.
type EnumType struct {
	Name     string
	Variants []Variant
	// Complete asserts that every raw value the field width can hold maps
	// to a variant, which makes decoding the field infallible.
	Complete bool
}

// VariantOf is the raw-to-variant capability. The second result is false
// when no variant carries the raw value.
func (e *EnumType) VariantOf(raw uint64) (Variant, bool) {
	for _, v := range e.Variants {
		if v.Value == raw {
			return v, true
		}
	}
	return Variant{}, false
}

// ValueOf is the variant-to-raw capability, by variant name.
func (e *EnumType) ValueOf(name string) (uint64, bool) {
	for _, v := range e.Variants {
		if v.Name == name {
			return v.Value, true
		}
	}
	return 0, false
}

// ValueType describes the type stored in a single field.
type ValueType struct {
	Kind Kind
	// Bits is the type's bit capacity. For primitives it equals the
	// conventional width; for enums it is the declarer-supplied
	// discriminant width. Unused for flags.
	Bits uint32
	// Enum carries the variant table for enum and flags kinds.
	Enum *EnumType
}
