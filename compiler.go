package bitfield

import (
	"github.com/wippyai/bitfield/errors"
	"github.com/wippyai/bitfield/internal/bits"
)

// FieldSpec declares one named unit of storage in a layout.
//
// For flags groups (KindFlags) the Offset and Width are unused: the group's
// bit positions are the variant values of its flag table.
type FieldSpec struct {
	Name   string
	Offset uint32
	Width  uint32
	Type   ValueType
	// Overlaps lists the fields this field's bit range may legally
	// intersect. Allowances must be mutual; a one-sided declaration is a
	// validation error.
	Overlaps []string
}

// Standard widths a numeric value type may carry.
var standardWidths = [...]uint32{8, 16, 32, 64, 128}

// Compile validates a layout in declaration order and returns the immutable
// Schema. It fails fast: the first violated rule is reported and later
// fields are not inspected. No partially validated schema is ever returned.
func Compile(storage StorageType, specs []FieldSpec) (*Schema, error) {
	storageBits := storage.Bits()
	if storageBits == 0 {
		return nil, errors.InvalidInput("unknown storage type %d", storage)
	}

	fields := make([]Field, 0, len(specs))
	index := make(map[string]int, len(specs))

	for _, spec := range specs {
		f, err := compileField(spec, storageBits)
		if err != nil {
			return nil, err
		}
		if _, dup := index[f.Name]; dup {
			return nil, errors.DuplicateField(f.Name)
		}
		index[f.Name] = len(fields)
		fields = append(fields, f)
		debugf("compiled field %s: kind=%s bits=[%d,%d) mask=%s",
			f.Name, f.Type.Kind, f.Offset, f.Offset+f.Width, f.Mask)
	}

	if err := validateOverlaps(fields, index); err != nil {
		return nil, err
	}

	debugf("compiled schema: storage=%s fields=%d", storage, len(fields))
	return &Schema{storage: storage, fields: fields, index: index}, nil
}

func compileField(spec FieldSpec, storageBits uint32) (Field, error) {
	if spec.Name == "" {
		return Field{}, errors.InvalidInput("field name must not be empty")
	}

	if spec.Type.Kind == KindFlags {
		return compileFlags(spec, storageBits)
	}

	if spec.Width == 0 {
		return Field{}, errors.New(errors.PhaseValidate, errors.KindInvalidInput).
			Fields(spec.Name).
			Detail("width must be positive").
			Build()
	}

	capacity := typeCapacity(spec.Type)
	if capacity == 0 {
		return Field{}, errors.New(errors.PhaseValidate, errors.KindInvalidInput).
			Fields(spec.Name).
			Detail("value type %s has no bit capacity", spec.Type.Kind).
			Build()
	}

	if spec.Width > capacity {
		return Field{}, errors.TypeTooSmall(spec.Name, spec.Width, capacity)
	}

	if spec.Type.Kind.IsSigned() && spec.Width != capacity {
		// The sign bit lives at capacity-1 of the value type, which the
		// extracted bits can never reach when width < capacity.
		return Field{}, errors.SignedNeverNegative(spec.Name, spec.Width, capacity)
	}

	if spec.Type.Kind.IsNumeric() {
		for _, w := range standardWidths {
			if capacity > w && spec.Width <= w {
				return Field{}, errors.TypeWiderThanNeeded(spec.Name, spec.Width, capacity, w)
			}
		}
	}

	if spec.Offset > storageBits || spec.Width > storageBits-spec.Offset {
		return Field{}, errors.ExceedsStorage(spec.Name, spec.Offset, spec.Width, storageBits)
	}

	if spec.Type.Kind == KindEnum {
		if err := validateEnum(spec); err != nil {
			return Field{}, err
		}
	}

	return Field{
		Name:     spec.Name,
		Offset:   spec.Offset,
		Width:    spec.Width,
		Mask:     bits.Mask(spec.Width).Shl(spec.Offset),
		Type:     spec.Type,
		Overlaps: append([]string(nil), spec.Overlaps...),
	}, nil
}

// typeCapacity returns the value type's bit capacity: the conventional
// width for primitives, the declarer-supplied width for enums.
func typeCapacity(t ValueType) uint32 {
	if t.Kind == KindEnum {
		return t.Bits
	}
	return t.Kind.Bits()
}

func validateEnum(spec FieldSpec) error {
	e := spec.Type.Enum
	if e == nil || len(e.Variants) == 0 {
		return errors.New(errors.PhaseValidate, errors.KindInvalidInput).
			Fields(spec.Name).
			Detail("enum field needs a variant table").
			Build()
	}
	if spec.Type.Bits > 64 {
		return errors.New(errors.PhaseValidate, errors.KindInvalidInput).
			Fields(spec.Name).
			Detail("enum width %d exceeds the 64-bit discriminant limit", spec.Type.Bits).
			Build()
	}

	byValue := make(map[uint64]string, len(e.Variants))
	byName := make(map[string]struct{}, len(e.Variants))
	for _, v := range e.Variants {
		if prev, dup := byValue[v.Value]; dup {
			return errors.DuplicateDiscriminant(spec.Name, prev, v.Name, v.Value)
		}
		byValue[v.Value] = v.Name
		if _, dup := byName[v.Name]; dup {
			return errors.New(errors.PhaseValidate, errors.KindDuplicateDiscriminant).
				Fields(spec.Name).
				Detail("variant name %q is declared more than once", v.Name).
				Build()
		}
		byName[v.Name] = struct{}{}

		if spec.Width < 64 && v.Value>>spec.Width != 0 {
			return errors.DiscriminantExceedsWidth(spec.Name, v.Name, v.Value, spec.Width)
		}
	}

	if e.Complete {
		// With injectivity established, a gap implies a missing raw value
		// no larger than the variant count.
		total := uint64(1) << spec.Width
		if spec.Width >= 64 || uint64(len(e.Variants)) < total {
			for raw := uint64(0); raw <= uint64(len(e.Variants)); raw++ {
				if _, ok := byValue[raw]; !ok {
					return errors.IncompleteEnum(spec.Name, raw, spec.Width)
				}
			}
		}
	}

	return nil
}

func compileFlags(spec FieldSpec, storageBits uint32) (Field, error) {
	e := spec.Type.Enum
	if e == nil || len(e.Variants) == 0 {
		return Field{}, errors.New(errors.PhaseValidate, errors.KindInvalidInput).
			Fields(spec.Name).
			Detail("flags field needs a flag table").
			Build()
	}

	byValue := make(map[uint64]string, len(e.Variants))
	byName := make(map[string]struct{}, len(e.Variants))
	var mask bits.U128
	for _, fl := range e.Variants {
		if prev, dup := byValue[fl.Value]; dup {
			return Field{}, errors.DuplicateDiscriminant(spec.Name, prev, fl.Name, fl.Value)
		}
		byValue[fl.Value] = fl.Name
		if _, dup := byName[fl.Name]; dup {
			return Field{}, errors.New(errors.PhaseValidate, errors.KindDuplicateDiscriminant).
				Fields(spec.Name).
				Detail("flag name %q is declared more than once", fl.Name).
				Build()
		}
		byName[fl.Name] = struct{}{}

		if fl.Value >= uint64(storageBits) {
			return Field{}, errors.ExceedsStorage(spec.Name, uint32(fl.Value), 1, storageBits)
		}
		mask = mask.SetBit(uint32(fl.Value), true)
	}

	return Field{
		Name:     spec.Name,
		Mask:     mask,
		Type:     spec.Type,
		Overlaps: append([]string(nil), spec.Overlaps...),
	}, nil
}

// validateOverlaps checks every pair of fields with intersecting masks for
// mutual permission, then rejects allowances that name unknown or
// non-overlapping fields. Three or more fields sharing bits must allow each
// other pairwise.
func validateOverlaps(fields []Field, index map[string]int) error {
	for i := range fields {
		for j := i + 1; j < len(fields); j++ {
			a, b := &fields[i], &fields[j]
			if a.Mask.And(b.Mask).IsZero() {
				continue
			}

			aAllows := allows(a, b.Name)
			bAllows := allows(b, a.Name)
			switch {
			case aAllows && bAllows:
			case aAllows:
				return errors.AsymmetricAllowance(a.Name, b.Name)
			case bAllows:
				return errors.AsymmetricAllowance(b.Name, a.Name)
			default:
				return errors.UnintendedOverlap(a.Name, b.Name)
			}
		}
	}

	for i := range fields {
		f := &fields[i]
		for _, name := range f.Overlaps {
			if name == f.Name {
				return errors.StaleAllowance(f.Name, name, "a self reference")
			}
			j, ok := index[name]
			if !ok {
				return errors.StaleAllowance(f.Name, name, "unknown, no such field exists")
			}
			if f.Mask.And(fields[j].Mask).IsZero() {
				return errors.StaleAllowance(f.Name, name, "unnecessary since the fields do not overlap")
			}
		}
	}

	return nil
}

func allows(f *Field, name string) bool {
	for _, n := range f.Overlaps {
		if n == name {
			return true
		}
	}
	return false
}
