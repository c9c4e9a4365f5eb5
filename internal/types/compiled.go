package types

import (
	"github.com/wippyai/bitfield/internal/bits"
)

// Field is the validated, position-resolved form of a field declaration.
// Mask already covers the field's bits at their storage positions; for
// flags fields it is the union of the group's single-bit positions.
type Field struct {
	Name     string
	Offset   uint32
	Width    uint32
	Mask     bits.U128
	Type     ValueType
	Overlaps []string
}
