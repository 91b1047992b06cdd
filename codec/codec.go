// Package codec provides typed, schema-checked protobuf bindings for plain
// Go structs. Each message gets one Binding declared from its fields; the
// binding encodes, decodes and merges partial values without reflection.
package codec

import (
	"fmt"

	"github.com/empowerchain/eventwire/schema"
	"github.com/empowerchain/eventwire/wire"
)

// Codec is the untyped view of a Binding, for callers that pick the message
// type at runtime by name.
type Codec interface {
	FullName() string
	Descriptor() *schema.Message
	NewMessage() any
	Marshal(m any) ([]byte, error)
	Unmarshal(data []byte) (any, error)
	MarshalValue(v map[string]interface{}) ([]byte, error)
	UnmarshalValue(data []byte) (wire.Value, error)
}

var _ Codec = (*Binding[struct{}, struct{}])(nil)

// NewMessage returns a new *T as any
func (b *Binding[T, P]) NewMessage() any {
	return b.New()
}

// Marshal encodes m, which must be a *T or a T
func (b *Binding[T, P]) Marshal(m any) ([]byte, error) {
	switch t := m.(type) {
	case *T:
		if t == nil {
			return nil, fmt.Errorf("%s: nil message", b.desc.Name)
		}
		return b.Encode(t), nil
	case T:
		return b.Encode(&t), nil
	default:
		return nil, fmt.Errorf("%s: cannot marshal %T", b.desc.Name, m)
	}
}

// Unmarshal decodes data into a new *T
func (b *Binding[T, P]) Unmarshal(data []byte) (any, error) {
	m, err := b.Decode(data)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// MarshalValue encodes a dynamic value, coercing it through FromValue
func (b *Binding[T, P]) MarshalValue(v map[string]interface{}) ([]byte, error) {
	m, err := b.FromValue(v)
	if err != nil {
		return nil, err
	}
	return b.Encode(m), nil
}

// UnmarshalValue decodes data into the dynamic form
func (b *Binding[T, P]) UnmarshalValue(data []byte) (wire.Value, error) {
	m, err := b.Decode(data)
	if err != nil {
		return nil, err
	}
	return b.ToValue(m), nil
}
