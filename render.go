package bitfield

import (
	"fmt"
	"strconv"
	"strings"
)

// Describe renders every field of v by name with its decoded value, one
// line per field. Enum fields with no matching variant render as
// unrecognized(0xN). Derived purely from the schema and v.
func (s *Schema) Describe(v Value) string {
	var b strings.Builder
	b.WriteString(s.storage.String())
	b.WriteString(" {\n")

	d := NewDecoder(s)
	for _, f := range s.fields {
		dec, _ := d.Decode(v, f.Name)
		fmt.Fprintf(&b, "    %s: %s,\n", f.Name, renderDecoded(dec))
	}

	b.WriteString("}")
	return b.String()
}

func renderDecoded(dec Decoded) string {
	switch {
	case dec.Kind == KindBool:
		return strconv.FormatBool(dec.Bool)
	case dec.Kind.IsUnsigned():
		return dec.Uint.String()
	case dec.Kind == KindS128:
		return dec.Uint.String()
	case dec.Kind.IsSigned():
		return strconv.FormatInt(dec.Int, 10)
	case dec.Kind == KindEnum:
		if dec.Known {
			return dec.Variant
		}
		return fmt.Sprintf("unrecognized(0x%x)", dec.Uint.Uint64())
	case dec.Kind == KindFlags:
		return "{" + strings.Join(dec.Flags, " | ") + "}"
	default:
		return "unknown"
	}
}

// Compact lists only the set boolean flags and flag-group members of v by
// name, in declaration order.
func (s *Schema) Compact(v Value) string {
	var names []string
	for _, f := range s.fields {
		switch f.Type.Kind {
		case KindBool:
			if !v.And(f.Mask).IsZero() {
				names = append(names, f.Name)
			}
		case KindFlags:
			for _, fl := range f.Type.Enum.Variants {
				if v.Bit(uint32(fl.Value)) {
					names = append(names, fl.Name)
				}
			}
		}
	}
	return "{" + strings.Join(names, " | ") + "}"
}
