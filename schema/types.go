package schema

// ProtoFile represents a single .proto file
type ProtoFile struct {
	Name     string     `json:"name"`     // events.proto
	Package  string     `json:"package"`  // package name
	Syntax   string     `json:"syntax"`   // proto2 or proto3
	Imports  []string   `json:"imports"`  // imported files
	Messages []*Message `json:"messages"` // message definitions
}

// Message represents a protobuf message definition
type Message struct {
	Name   string   `json:"name"`   // fully qualified: "empowerchain.plasticcredit.EventCreateIssuer"
	Fields []*Field `json:"fields"` // message fields, in declaration order
}

// Field represents a message field
type Field struct {
	Name     string        `json:"name"`      // "issuer_id"
	JsonName string        `json:"json_name"` // "issuerId"
	Number   int32         `json:"number"`    // 1
	Label    FieldLabel    `json:"label"`     // optional or repeated
	Type     PrimitiveType `json:"type"`      // uint64, string or bytes
}

// FieldLabel represents field labels
type FieldLabel string

const (
	LabelOptional FieldLabel = "optional"
	LabelRepeated FieldLabel = "repeated"
)

// PrimitiveType represents the supported protobuf scalar types
type PrimitiveType string

const (
	TypeUint64 PrimitiveType = "uint64"
	TypeString PrimitiveType = "string"
	TypeBytes  PrimitiveType = "bytes"
)

// IsRepeated reports whether the field holds a list
func (f *Field) IsRepeated() bool {
	return f.Label == LabelRepeated
}

// IsLengthDelimited reports whether the field payload is length-prefixed
func (f *Field) IsLengthDelimited() bool {
	return f.Type == TypeString || f.Type == TypeBytes
}

// Default returns the zero value of the field in the dynamic form:
// uint64(0), "", []byte{} or []string{}.
func (f *Field) Default() interface{} {
	if f.IsRepeated() {
		return []string{}
	}
	switch f.Type {
	case TypeUint64:
		return uint64(0)
	case TypeBytes:
		return []byte{}
	default:
		return ""
	}
}

// ShortName returns the last component of the fully qualified name
func (m *Message) ShortName() string {
	for i := len(m.Name) - 1; i >= 0; i-- {
		if m.Name[i] == '.' {
			return m.Name[i+1:]
		}
	}
	return m.Name
}

// Package returns the package part of the fully qualified name
func (m *Message) Package() string {
	for i := len(m.Name) - 1; i >= 0; i-- {
		if m.Name[i] == '.' {
			return m.Name[:i]
		}
	}
	return ""
}

// FieldByName finds a field by proto name or JSON name
func (m *Message) FieldByName(name string) *Field {
	for _, f := range m.Fields {
		if f.Name == name || f.JsonName == name {
			return f
		}
	}
	return nil
}

// FieldByNumber finds a field by number
func (m *Message) FieldByNumber(number int32) *Field {
	for _, f := range m.Fields {
		if f.Number == number {
			return f
		}
	}
	return nil
}
