package codec

import (
	"fmt"
	"sort"

	"github.com/empowerchain/eventwire/schema"
	"github.com/empowerchain/eventwire/wire"
)

// Binding is the typed codec for one message: T is the full message struct
// and P its partial form, where every field may be absent.
// A Binding is immutable after NewBinding and safe for concurrent use.
type Binding[T, P any] struct {
	desc     *schema.Message
	fields   []Field[T, P] // ascending field number
	byNumber map[wire.FieldNumber]int
}

// NewBinding builds a binding for the fully qualified message name. It panics
// when the fields do not form a valid descriptor, since bindings are declared
// once at package initialisation.
func NewBinding[T, P any](fullName string, fields ...Field[T, P]) *Binding[T, P] {
	desc := &schema.Message{Name: fullName}
	for _, f := range fields {
		desc.Fields = append(desc.Fields, f.desc)
	}
	if err := desc.Validate(); err != nil {
		panic(fmt.Sprintf("codec: invalid binding: %v", err))
	}

	sorted := make([]Field[T, P], len(fields))
	copy(sorted, fields)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].desc.Number < sorted[j].desc.Number
	})

	b := &Binding[T, P]{
		desc:     desc,
		fields:   sorted,
		byNumber: make(map[wire.FieldNumber]int, len(sorted)),
	}
	for i, f := range sorted {
		b.byNumber[wire.FieldNumber(f.desc.Number)] = i
	}
	return b
}

// FullName returns the fully qualified message name
func (b *Binding[T, P]) FullName() string {
	return b.desc.Name
}

// Descriptor returns the message descriptor. Callers must not modify it.
func (b *Binding[T, P]) Descriptor() *schema.Message {
	return b.desc
}

// New returns a message with every field at its default
func (b *Binding[T, P]) New() *T {
	return new(T)
}

// ENCODER METHODS

// Size returns the number of bytes Encode would produce
func (b *Binding[T, P]) Size(m *T) int {
	size := 0
	for _, f := range b.fields {
		size += f.size(m)
	}
	return size
}

// EncodeTo writes the message fields to e in ascending field number order.
// Fields holding their default are omitted.
func (b *Binding[T, P]) EncodeTo(e *wire.Encoder, m *T) {
	for _, f := range b.fields {
		f.encode(e, m)
	}
}

// Append appends the encoded message to buf
func (b *Binding[T, P]) Append(buf []byte, m *T) []byte {
	e := wire.NewEncoderBuffer(buf)
	b.EncodeTo(e, m)
	return e.Bytes()
}

// Encode returns the encoded message. An all-default message encodes to an
// empty, non-nil slice.
func (b *Binding[T, P]) Encode(m *T) []byte {
	return b.Append(make([]byte, 0, b.Size(m)), m)
}

// DECODER METHODS

// Decode decodes a whole buffer as one message
func (b *Binding[T, P]) Decode(data []byte) (*T, error) {
	return b.DecodeFrom(wire.NewDecoder(data))
}

// DecodeFrom decodes fields until the decoder limit. On error no partially
// decoded message is returned.
func (b *Binding[T, P]) DecodeFrom(d *wire.Decoder) (*T, error) {
	m := b.New()
	for !d.Done() {
		number, wireType, err := d.DecodeTag()
		if err != nil {
			return nil, fmt.Errorf("failed to decode message %s: %w", b.desc.Name, err)
		}

		i, ok := b.byNumber[number]
		if !ok {
			if err := d.SkipUnknown(number, wireType); err != nil {
				return nil, fmt.Errorf("failed to decode message %s: %w", b.desc.Name, err)
			}
			continue
		}

		f := b.fields[i]
		skip, err := d.CheckWireType(number, wireType, wire.FieldWireType(f.desc))
		if err != nil {
			return nil, wire.WrapFieldError(err, f.desc.Name, true)
		}
		if skip {
			if err := d.SkipUnknown(number, wireType); err != nil {
				return nil, wire.WrapFieldError(err, f.desc.Name, true)
			}
			continue
		}

		if err := f.decode(d, m); err != nil {
			return nil, wire.WrapFieldError(err, f.desc.Name, true)
		}
	}
	return m, nil
}

// DecodeLength decodes a message occupying the next length bytes of d
func (b *Binding[T, P]) DecodeLength(d *wire.Decoder, length uint64) (*T, error) {
	old, err := d.PushLimit(length)
	if err != nil {
		return nil, err
	}
	m, err := b.DecodeFrom(d)
	if err != nil {
		return nil, err
	}
	d.PopLimit(old)
	return m, nil
}

// PARTIAL AND DYNAMIC FORMS

// MergeFrom builds a full message from a partial one. Absent fields take
// their default; repeated fields are copied. A nil partial yields New().
func (b *Binding[T, P]) MergeFrom(p *P) *T {
	m := b.New()
	if p == nil {
		return m
	}
	for _, f := range b.fields {
		f.merge(m, p)
	}
	return m
}

// ToValue converts a message to the dynamic form keyed by proto field name,
// with every declared field present.
func (b *Binding[T, P]) ToValue(m *T) wire.Value {
	value := make(wire.Value, len(b.fields))
	for _, f := range b.fields {
		value[f.desc.Name] = f.toValue(m)
	}
	return value
}

// FromValue converts a dynamic value into a message. Keys may be proto or
// JSON names and values are coerced as wire.MergeFrom does.
func (b *Binding[T, P]) FromValue(v map[string]interface{}) (*T, error) {
	full, err := wire.MergeFrom(v, b.desc)
	if err != nil {
		return nil, err
	}
	m := b.New()
	for _, f := range b.fields {
		f.setValue(m, full[f.desc.Name])
	}
	return m, nil
}
