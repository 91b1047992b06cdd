package schema

import (
	"fmt"
	"sort"
)

const (
	maxFieldNumber      = 1<<29 - 1
	firstReservedNumber = 19000
	lastReservedNumber  = 19999
)

// Validate checks the descriptor invariants: a name, field numbers that are
// valid and unique, unique field names, and supported types.
func (m *Message) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("message has no name")
	}
	numbers := make(map[int32]string, len(m.Fields))
	names := make(map[string]struct{}, len(m.Fields))
	for _, f := range m.Fields {
		if f.Name == "" {
			return fmt.Errorf("message %s: field %d has no name", m.Name, f.Number)
		}
		if f.Number < 1 || f.Number > maxFieldNumber {
			return fmt.Errorf("message %s: field %s: number %d out of range", m.Name, f.Name, f.Number)
		}
		if f.Number >= firstReservedNumber && f.Number <= lastReservedNumber {
			return fmt.Errorf("message %s: field %s: number %d is reserved", m.Name, f.Name, f.Number)
		}
		if other, ok := numbers[f.Number]; ok {
			return fmt.Errorf("message %s: fields %s and %s share number %d", m.Name, other, f.Name, f.Number)
		}
		numbers[f.Number] = f.Name
		if _, ok := names[f.Name]; ok {
			return fmt.Errorf("message %s: duplicate field name %s", m.Name, f.Name)
		}
		names[f.Name] = struct{}{}

		switch f.Type {
		case TypeUint64, TypeString, TypeBytes:
		default:
			return fmt.Errorf("message %s: field %s: unsupported type %q", m.Name, f.Name, f.Type)
		}
		switch f.Label {
		case LabelOptional:
		case LabelRepeated:
			if f.Type != TypeString {
				return fmt.Errorf("message %s: field %s: only repeated string is supported", m.Name, f.Name)
			}
		default:
			return fmt.Errorf("message %s: field %s: unsupported label %q", m.Name, f.Name, f.Label)
		}
	}
	return nil
}

// SortedFields returns the fields in ascending field number order, which is
// the order they are written to the wire.
func (m *Message) SortedFields() []*Field {
	fields := make([]*Field, len(m.Fields))
	copy(fields, m.Fields)
	sort.SliceStable(fields, func(i, j int) bool {
		return fields[i].Number < fields[j].Number
	})
	return fields
}

// Equal reports whether two descriptors describe the same wire layout
func (m *Message) Equal(o *Message) bool {
	if m.Name != o.Name || len(m.Fields) != len(o.Fields) {
		return false
	}
	a, b := m.SortedFields(), o.SortedFields()
	for i := range a {
		if *a[i] != *b[i] {
			return false
		}
	}
	return true
}

// NewField builds a field and derives its JSON name
func NewField(number int32, name string, label FieldLabel, typ PrimitiveType) *Field {
	return &Field{
		Name:     name,
		JsonName: JSONName(name),
		Number:   number,
		Label:    label,
		Type:     typ,
	}
}

// JSONName derives the default JSON name of a field like protoc does: every
// underscore is dropped and the letter after it upper-cased.
func JSONName(s string) string {
	out := make([]byte, 0, len(s))
	upperNext := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_':
			upperNext = true
		case upperNext && c >= 'a' && c <= 'z':
			out = append(out, c-'a'+'A')
			upperNext = false
		default:
			out = append(out, c)
			upperNext = false
		}
	}
	return string(out)
}
