package codec

import (
	"github.com/empowerchain/eventwire/schema"
	"github.com/empowerchain/eventwire/wire"
)

// Field binds one descriptor field to an accessor on the message struct T
// and on its partial form P.
type Field[T, P any] struct {
	desc *schema.Field

	size     func(m *T) int
	encode   func(e *wire.Encoder, m *T)
	decode   func(d *wire.Decoder, m *T) error
	merge    func(m *T, p *P)
	toValue  func(m *T) interface{}
	setValue func(m *T, v interface{})
}

// Descriptor returns the schema field the binding was built from
func (f Field[T, P]) Descriptor() *schema.Field {
	return f.desc
}

// Uint64 binds a VARINT field. partial may return nil for an unset field.
func Uint64[T, P any](number int32, name string, get func(*T) *uint64, partial func(*P) *uint64) Field[T, P] {
	n := wire.FieldNumber(number)
	return Field[T, P]{
		desc: schema.NewField(number, name, schema.LabelOptional, schema.TypeUint64),
		size: func(m *T) int {
			v := *get(m)
			if v == 0 {
				return 0
			}
			return wire.TagSize(n) + wire.VarintSize(v)
		},
		encode: func(e *wire.Encoder, m *T) {
			e.EncodeUint64Field(n, *get(m))
		},
		decode: func(d *wire.Decoder, m *T) error {
			v, err := d.DecodeVarint()
			if err != nil {
				return err
			}
			*get(m) = v
			return nil
		},
		merge: func(m *T, p *P) {
			if v := partial(p); v != nil {
				*get(m) = *v
			}
		},
		toValue:  func(m *T) interface{} { return *get(m) },
		setValue: func(m *T, v interface{}) { *get(m) = v.(uint64) },
	}
}

// String binds a string field. partial may return nil for an unset field.
func String[T, P any](number int32, name string, get func(*T) *string, partial func(*P) *string) Field[T, P] {
	n := wire.FieldNumber(number)
	return Field[T, P]{
		desc: schema.NewField(number, name, schema.LabelOptional, schema.TypeString),
		size: func(m *T) int {
			s := *get(m)
			if s == "" {
				return 0
			}
			return wire.TagSize(n) + wire.StringSize(s)
		},
		encode: func(e *wire.Encoder, m *T) {
			e.EncodeStringField(n, *get(m))
		},
		decode: func(d *wire.Decoder, m *T) error {
			s, err := d.DecodeString()
			if err != nil {
				return err
			}
			*get(m) = s
			return nil
		},
		merge: func(m *T, p *P) {
			if v := partial(p); v != nil {
				*get(m) = *v
			}
		},
		toValue:  func(m *T) interface{} { return *get(m) },
		setValue: func(m *T, v interface{}) { *get(m) = v.(string) },
	}
}

// Bytes binds a bytes field. Decoded payloads are copied out of the input.
func Bytes[T, P any](number int32, name string, get func(*T) *[]byte, partial func(*P) []byte) Field[T, P] {
	n := wire.FieldNumber(number)
	return Field[T, P]{
		desc: schema.NewField(number, name, schema.LabelOptional, schema.TypeBytes),
		size: func(m *T) int {
			b := *get(m)
			if len(b) == 0 {
				return 0
			}
			return wire.TagSize(n) + wire.BytesSize(b)
		},
		encode: func(e *wire.Encoder, m *T) {
			e.EncodeBytesField(n, *get(m))
		},
		decode: func(d *wire.Decoder, m *T) error {
			b, err := d.DecodeBytes()
			if err != nil {
				return err
			}
			*get(m) = b
			return nil
		},
		merge: func(m *T, p *P) {
			if v := partial(p); v != nil {
				*get(m) = append([]byte(nil), v...)
			}
		},
		toValue: func(m *T) interface{} {
			b := *get(m)
			if b == nil {
				return []byte{}
			}
			return b
		},
		setValue: func(m *T, v interface{}) {
			if b := v.([]byte); len(b) > 0 {
				*get(m) = b
			}
		},
	}
}

// RepeatedString binds a repeated string field. Every element is written
// with its own tag, empty strings included; decoding appends in order.
func RepeatedString[T, P any](number int32, name string, get func(*T) *[]string, partial func(*P) []string) Field[T, P] {
	n := wire.FieldNumber(number)
	return Field[T, P]{
		desc: schema.NewField(number, name, schema.LabelRepeated, schema.TypeString),
		size: func(m *T) int {
			size := 0
			for _, s := range *get(m) {
				size += wire.TagSize(n) + wire.StringSize(s)
			}
			return size
		},
		encode: func(e *wire.Encoder, m *T) {
			e.EncodeRepeatedStringField(n, *get(m))
		},
		decode: func(d *wire.Decoder, m *T) error {
			s, err := d.DecodeString()
			if err != nil {
				return err
			}
			*get(m) = append(*get(m), s)
			return nil
		},
		merge: func(m *T, p *P) {
			*get(m) = append([]string(nil), partial(p)...)
		},
		toValue: func(m *T) interface{} {
			return append([]string{}, *get(m)...)
		},
		setValue: func(m *T, v interface{}) {
			if s := v.([]string); len(s) > 0 {
				*get(m) = s
			}
		},
	}
}
