package bitfield

import (
	"iter"

	"github.com/wippyai/bitfield/errors"
)

// Flags returns a lazy, restartable sequence of the group's flag names set
// in v, in the order the flags were declared.
func (d *Decoder) Flags(v Value, group string) (iter.Seq[string], error) {
	f, ok := d.schema.Field(group)
	if !ok {
		return nil, errors.NotFound(errors.PhaseDecode, group)
	}
	if f.Type.Kind != KindFlags {
		return nil, errors.TypeMismatch(errors.PhaseDecode, group, f.Type.Kind.String(), "flags")
	}

	variants := f.Type.Enum.Variants
	return func(yield func(string) bool) {
		for _, fl := range variants {
			if v.Bit(uint32(fl.Value)) {
				if !yield(fl.Name) {
					return
				}
			}
		}
	}, nil
}
