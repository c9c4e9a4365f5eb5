package types

import "math/bits"

// Storage selects the native unsigned integer a schema packs its fields
// into. The catalog is fixed; there is no behavior beyond width lookup.
type Storage uint8

const (
	Storage8 Storage = iota
	Storage16
	Storage32
	Storage64
	Storage128
	// StorageWord is the platform pointer width (32 or 64 bits).
	StorageWord
)

var storageNames = [...]string{
	Storage8:    "u8",
	Storage16:   "u16",
	Storage32:   "u32",
	Storage64:   "u64",
	Storage128:  "u128",
	StorageWord: "word",
}

func (s Storage) String() string {
	if int(s) < len(storageNames) {
		return storageNames[s]
	}
	return "unknown"
}

func (s Storage) Bits() uint32 {
	switch s {
	case Storage8:
		return 8
	case Storage16:
		return 16
	case Storage32:
		return 32
	case Storage64:
		return 64
	case Storage128:
		return 128
	case StorageWord:
		return uint32(bits.UintSize)
	default:
		return 0
	}
}
