package types

type Kind uint8

const (
	KindBool Kind = iota
	KindU8
	KindS8
	KindU16
	KindS16
	KindU32
	KindS32
	KindU64
	KindS64
	KindU128
	KindS128
	KindEnum
	KindFlags
)

var kindNames = [...]string{
	KindBool:  "bool",
	KindU8:    "u8",
	KindS8:    "s8",
	KindU16:   "u16",
	KindS16:   "s16",
	KindU32:   "u32",
	KindS32:   "s32",
	KindU64:   "u64",
	KindS64:   "s64",
	KindU128:  "u128",
	KindS128:  "s128",
	KindEnum:  "enum",
	KindFlags: "flags",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

func (k Kind) IsPrimitive() bool {
	return k <= KindS128
}

func (k Kind) IsSigned() bool {
	switch k {
	case KindS8, KindS16, KindS32, KindS64, KindS128:
		return true
	default:
		return false
	}
}

func (k Kind) IsUnsigned() bool {
	switch k {
	case KindU8, KindU16, KindU32, KindU64, KindU128:
		return true
	default:
		return false
	}
}

func (k Kind) IsNumeric() bool {
	return k.IsSigned() || k.IsUnsigned()
}

// Bits returns the natural bit capacity of a primitive kind.
// Enum and flags kinds have no natural capacity; the declarer supplies one.
func (k Kind) Bits() uint32 {
	switch k {
	case KindBool:
		return 1
	case KindU8, KindS8:
		return 8
	case KindU16, KindS16:
		return 16
	case KindU32, KindS32:
		return 32
	case KindU64, KindS64:
		return 64
	case KindU128, KindS128:
		return 128
	default:
		return 0
	}
}
