package wire

import (
	"fmt"

	"github.com/empowerchain/eventwire/schema"
)

// MessageDecoder handles descriptor-driven message decoding
type MessageDecoder struct {
	decoder *Decoder
}

// MessageEncoder handles descriptor-driven message encoding
type MessageEncoder struct {
	encoder *Encoder
}

// NewMessageDecoder creates a new message decoder
func NewMessageDecoder(d *Decoder) *MessageDecoder {
	return &MessageDecoder{decoder: d}
}

// NewMessageEncoder creates a new message encoder
func NewMessageEncoder(e *Encoder) *MessageEncoder {
	return &MessageEncoder{encoder: e}
}

// NewDefault returns a value with every declared field set to its default
func NewDefault(msg *schema.Message) Value {
	value := make(Value, len(msg.Fields))
	for _, f := range msg.Fields {
		value[f.Name] = f.Default()
	}
	return value
}

// EncodeMessage encodes a message using schema - main entry point
func EncodeMessage(data Value, msg *schema.Message) ([]byte, error) {
	encoder := NewEncoder()
	if err := NewMessageEncoder(encoder).EncodeMessage(data, msg); err != nil {
		return nil, err
	}
	return encoder.Bytes(), nil
}

// DecodeMessage decodes protobuf bytes using schema - main entry point
func DecodeMessage(data []byte, msg *schema.Message) (Value, error) {
	return NewMessageDecoder(NewDecoder(data)).DecodeMessage(msg)
}

// MergeFrom builds a full value from a partial one. Fields missing from
// partial, or set to nil, take their default. Keys may be proto names or
// JSON names; keys the descriptor does not know are ignored.
func MergeFrom(partial map[string]interface{}, msg *schema.Message) (Value, error) {
	value := NewDefault(msg)
	for _, f := range msg.Fields {
		raw, ok := lookup(partial, f)
		if !ok || raw == nil {
			continue
		}
		v, err := coerceField(raw, f)
		if err != nil {
			return nil, wrapEncodingFieldError(err, f.Name)
		}
		value[f.Name] = v
	}
	return value, nil
}

// DECODER METHODS

// DecodeMessage decodes fields until the decoder limit. Repeated fields
// accumulate in encounter order; unknown fields are skipped.
func (md *MessageDecoder) DecodeMessage(msg *schema.Message) (Value, error) {
	d := md.decoder
	result := NewDefault(msg)

	for !d.Done() {
		fieldNumber, wireType, err := d.DecodeTag()
		if err != nil {
			return nil, fmt.Errorf("failed to decode message %s: %w", msg.Name, err)
		}

		field := msg.FieldByNumber(int32(fieldNumber))
		if field == nil {
			if err := d.skipUnknown(fieldNumber, wireType); err != nil {
				return nil, fmt.Errorf("failed to decode message %s: %w", msg.Name, err)
			}
			continue
		}

		skip, err := d.CheckWireType(fieldNumber, wireType, FieldWireType(field))
		if err != nil {
			return nil, wrapDecodingFieldError(err, field.Name)
		}
		if skip {
			if err := d.skipUnknown(fieldNumber, wireType); err != nil {
				return nil, wrapDecodingFieldError(err, field.Name)
			}
			continue
		}

		if err := md.decodeField(result, field); err != nil {
			return nil, wrapDecodingFieldError(err, field.Name)
		}
	}

	return result, nil
}

// DecodeMessageLength decodes a message that occupies the next length bytes
func (md *MessageDecoder) DecodeMessageLength(msg *schema.Message, length uint64) (Value, error) {
	old, err := md.decoder.PushLimit(length)
	if err != nil {
		return nil, err
	}
	value, err := md.DecodeMessage(msg)
	if err != nil {
		return nil, err
	}
	md.decoder.PopLimit(old)
	return value, nil
}

// decodeField reads one payload for a known field into result
func (md *MessageDecoder) decodeField(result Value, field *schema.Field) error {
	d := md.decoder
	switch {
	case field.IsRepeated():
		s, err := d.DecodeString()
		if err != nil {
			return err
		}
		result[field.Name] = append(result[field.Name].([]string), s)
	case field.Type == schema.TypeUint64:
		v, err := d.DecodeVarint()
		if err != nil {
			return err
		}
		result[field.Name] = v
	case field.Type == schema.TypeString:
		s, err := d.DecodeString()
		if err != nil {
			return err
		}
		result[field.Name] = s
	case field.Type == schema.TypeBytes:
		b, err := d.DecodeBytes()
		if err != nil {
			return err
		}
		result[field.Name] = b
	default:
		return newFieldError("unsupported field type: %s", field.Type)
	}
	return nil
}

// ENCODER METHODS

// EncodeMessage encodes every field in ascending field number order.
// Scalars equal to their default are omitted.
func (me *MessageEncoder) EncodeMessage(data Value, msg *schema.Message) error {
	for _, field := range msg.SortedFields() {
		raw, ok := lookup(data, field)
		if !ok || raw == nil {
			continue
		}
		if err := me.encodeField(raw, field); err != nil {
			return wrapEncodingFieldError(err, field.Name)
		}
	}
	return nil
}

// encodeField encodes a field value based on its type
func (me *MessageEncoder) encodeField(raw interface{}, field *schema.Field) error {
	e := me.encoder
	number := FieldNumber(field.Number)
	v, err := coerceField(raw, field)
	if err != nil {
		return err
	}
	switch t := v.(type) {
	case []string:
		e.EncodeRepeatedStringField(number, t)
	case uint64:
		e.EncodeUint64Field(number, t)
	case string:
		e.EncodeStringField(number, t)
	case []byte:
		e.EncodeBytesField(number, t)
	}
	return nil
}

// UTILITY FUNCTIONS

// FieldWireType returns the wire type used by a field
func FieldWireType(field *schema.Field) WireType {
	if field.IsRepeated() || field.IsLengthDelimited() {
		return WireBytes
	}
	return WireVarint
}

// lookup finds a field value by proto name, then by JSON name
func lookup(data map[string]interface{}, field *schema.Field) (interface{}, bool) {
	if v, ok := data[field.Name]; ok {
		return v, true
	}
	if field.JsonName != "" {
		v, ok := data[field.JsonName]
		return v, ok
	}
	return nil, false
}

// coerceField converts a loosely typed value into the field's dynamic form
func coerceField(raw interface{}, field *schema.Field) (interface{}, error) {
	if field.IsRepeated() {
		return coerceToStringSlice(raw)
	}
	switch field.Type {
	case schema.TypeUint64:
		return coerceToUint64(raw)
	case schema.TypeString:
		return coerceToString(raw)
	case schema.TypeBytes:
		return coerceToBytes(raw)
	default:
		return nil, fmt.Errorf("unsupported field type: %s", field.Type)
	}
}

// Convenience methods for direct access

// DecodeMessage - convenience method for main decoder
func (d *Decoder) DecodeMessage(msg *schema.Message) (Value, error) {
	return NewMessageDecoder(d).DecodeMessage(msg)
}

// EncodeMessage - convenience method for main encoder
func (e *Encoder) EncodeMessage(data Value, msg *schema.Message) error {
	return NewMessageEncoder(e).EncodeMessage(data, msg)
}
