package bits

import "strconv"

// U128 is a 128-bit unsigned integer stored as two 64-bit halves.
// The zero value is zero. U128 is comparable with ==.
type U128 struct {
	Hi uint64
	Lo uint64
}

func From64(v uint64) U128 {
	return U128{Lo: v}
}

// Mask returns a value with the low width bits set. Widths from 0 to the
// full 128 bits are handled without shifting by the operand size.
func Mask(width uint32) U128 {
	switch {
	case width == 0:
		return U128{}
	case width < 64:
		return U128{Lo: 1<<width - 1}
	case width == 64:
		return U128{Lo: ^uint64(0)}
	case width < 128:
		return U128{Hi: 1<<(width-64) - 1, Lo: ^uint64(0)}
	default:
		return U128{Hi: ^uint64(0), Lo: ^uint64(0)}
	}
}

func (u U128) Shl(n uint32) U128 {
	switch {
	case n == 0:
		return u
	case n < 64:
		return U128{Hi: u.Hi<<n | u.Lo>>(64-n), Lo: u.Lo << n}
	case n < 128:
		return U128{Hi: u.Lo << (n - 64)}
	default:
		return U128{}
	}
}

func (u U128) Shr(n uint32) U128 {
	switch {
	case n == 0:
		return u
	case n < 64:
		return U128{Hi: u.Hi >> n, Lo: u.Lo>>n | u.Hi<<(64-n)}
	case n < 128:
		return U128{Lo: u.Hi >> (n - 64)}
	default:
		return U128{}
	}
}

func (u U128) And(v U128) U128 {
	return U128{Hi: u.Hi & v.Hi, Lo: u.Lo & v.Lo}
}

func (u U128) AndNot(v U128) U128 {
	return U128{Hi: u.Hi &^ v.Hi, Lo: u.Lo &^ v.Lo}
}

func (u U128) Or(v U128) U128 {
	return U128{Hi: u.Hi | v.Hi, Lo: u.Lo | v.Lo}
}

func (u U128) IsZero() bool {
	return u.Hi == 0 && u.Lo == 0
}

// Bit reports whether bit i is set. Out-of-range positions are unset.
func (u U128) Bit(i uint32) bool {
	switch {
	case i < 64:
		return u.Lo&(1<<i) != 0
	case i < 128:
		return u.Hi&(1<<(i-64)) != 0
	default:
		return false
	}
}

// SetBit returns u with bit i set or cleared. Out-of-range positions are ignored.
func (u U128) SetBit(i uint32, on bool) U128 {
	if i >= 128 {
		return u
	}
	var single U128
	if i < 64 {
		single = U128{Lo: 1 << i}
	} else {
		single = U128{Hi: 1 << (i - 64)}
	}
	if on {
		return u.Or(single)
	}
	return u.AndNot(single)
}

// Uint64 returns the low 64 bits.
func (u U128) Uint64() uint64 {
	return u.Lo
}

// FitsUint64 reports whether the value is representable in 64 bits.
func (u U128) FitsUint64() bool {
	return u.Hi == 0
}

// String renders values that fit 64 bits in decimal, wider values in hex.
func (u U128) String() string {
	if u.Hi == 0 {
		return strconv.FormatUint(u.Lo, 10)
	}
	return "0x" + strconv.FormatUint(u.Hi, 16) + leftPadHex(u.Lo)
}

func leftPadHex(v uint64) string {
	s := strconv.FormatUint(v, 16)
	for len(s) < 16 {
		s = "0" + s
	}
	return s
}
