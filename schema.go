package bitfield

import (
	"fmt"
	"strings"
)

// Schema is the validated, immutable aggregate of a storage type and its
// ordered field specifications. A Schema owns no mutable state; all decode
// and encode operations are pure functions parameterized by it.
type Schema struct {
	storage StorageType
	fields  []Field
	index   map[string]int
}

func (s *Schema) StorageType() StorageType {
	return s.storage
}

// Fields returns the compiled fields in declaration order.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Field returns the compiled field with the given name.
func (s *Schema) Field(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// String renders the layout, one entry per field.
func (s *Schema) String() string {
	parts := make([]string, 0, len(s.fields))
	for _, f := range s.fields {
		if f.Type.Kind == KindFlags {
			names := make([]string, 0, len(f.Type.Enum.Variants))
			for _, fl := range f.Type.Enum.Variants {
				names = append(names, fmt.Sprintf("%s@%d", fl.Name, fl.Value))
			}
			parts = append(parts, fmt.Sprintf("%s: flags(%s)", f.Name, strings.Join(names, " ")))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s[%d:%d]",
			f.Name, f.Type.Kind, f.Offset, f.Offset+f.Width))
	}
	return fmt.Sprintf("%s{%s}", s.storage, strings.Join(parts, ", "))
}
