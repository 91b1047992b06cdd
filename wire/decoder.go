package wire

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Decoder handles low-level protobuf wire format decoding.
// It is a cursor over buf; reads never go past limit.
type Decoder struct {
	buf     []byte
	pos     int
	limit   int
	cfg     Config
	skipped []UnknownField
}

// NewDecoder creates a new wire format decoder over the whole buffer.
// The package Config in effect at creation time applies to the decoder.
func NewDecoder(data []byte) *Decoder {
	return &Decoder{
		buf:   data,
		pos:   0,
		limit: len(data),
		cfg:   config,
	}
}

// NewDecoderWithConfig creates a decoder that uses cfg instead of the
// package Config.
func NewDecoderWithConfig(data []byte, cfg Config) *Decoder {
	d := NewDecoder(data)
	d.cfg = cfg
	return d
}

// Pos returns the current read offset
func (d *Decoder) Pos() int {
	return d.pos
}

// Done reports whether the cursor reached the current limit
func (d *Decoder) Done() bool {
	return d.pos >= d.limit
}

// Skipped returns the unknown fields skipped so far, in encounter order
func (d *Decoder) Skipped() []UnknownField {
	return d.skipped
}

// PushLimit bounds further reads to the next n bytes and returns the
// previous limit, to be handed to PopLimit once the bounded region is read.
func (d *Decoder) PushLimit(n uint64) (int, error) {
	if n > uint64(d.limit-d.pos) {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", ErrTruncatedMessage, n, d.limit-d.pos)
	}
	old := d.limit
	d.limit = d.pos + int(n)
	return old, nil
}

// PopLimit restores a limit returned by PushLimit
func (d *Decoder) PopLimit(old int) {
	d.limit = old
}

// DecodeTag reads a field tag
func (d *Decoder) DecodeTag() (FieldNumber, WireType, error) {
	tag, err := d.DecodeVarint()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to decode tag: %w", err)
	}
	if n := tag >> 3; n < uint64(MinFieldNumber) || n > uint64(MaxFieldNumber) {
		return 0, 0, fmt.Errorf("%w: %d", ErrInvalidFieldNum, n)
	}
	fieldNumber, wireType := ParseTag(Tag(tag))
	return fieldNumber, wireType, nil
}

// SkipField skips a field payload based on wire type
func (d *Decoder) SkipField(wireType WireType) error {
	switch wireType {
	case WireVarint:
		return NewVarintDecoder(d).SkipVarint()
	case WireFixed64:
		return d.skipFixed(8)
	case WireBytes:
		return NewBytesDecoder(d).SkipBytes()
	case WireFixed32:
		return d.skipFixed(4)
	default:
		return fmt.Errorf("%w: %d", ErrInvalidWireType, wireType)
	}
}

// skipUnknown skips a field the descriptor does not know and records it
func (d *Decoder) skipUnknown(fieldNumber FieldNumber, wireType WireType) error {
	if err := d.SkipField(wireType); err != nil {
		return err
	}
	d.skipped = append(d.skipped, UnknownField{FieldNumber: fieldNumber, WireType: wireType})
	if d.cfg.TraceUnknownFields {
		logrus.WithFields(logrus.Fields{
			"field":     fieldNumber,
			"wire_type": wireType.String(),
		}).Debug("Skipped unknown field")
	}
	return nil
}

// SkipUnknown skips the payload of a field that is not in the caller's
// descriptor and records it in Skipped.
func (d *Decoder) SkipUnknown(fieldNumber FieldNumber, wireType WireType) error {
	return d.skipUnknown(fieldNumber, wireType)
}

// CheckWireType decides what to do with a known field that arrived with an
// unexpected wire type. It returns skip=true when the field must be treated
// as unknown.
func (d *Decoder) CheckWireType(fieldNumber FieldNumber, got, want WireType) (skip bool, err error) {
	if got == want {
		return false, nil
	}
	if d.cfg.StrictWireType {
		return false, fmt.Errorf("%w: field %d has %s, want %s", ErrWireTypeMismatch, fieldNumber, got, want)
	}
	return true, nil
}

func (d *Decoder) skipFixed(n int) error {
	if d.limit-d.pos < n {
		return fmt.Errorf("%w: not enough data to skip %d bytes", ErrUnexpectedEOF, n)
	}
	d.pos += n
	return nil
}

// DecodeField decodes a single field without a descriptor. It returns
// nil, nil once the cursor reaches the limit.
func (d *Decoder) DecodeField() (*RawField, error) {
	if d.Done() {
		return nil, nil
	}

	fieldNumber, wireType, err := d.DecodeTag()
	if err != nil {
		return nil, err
	}

	field := &RawField{FieldNumber: fieldNumber, WireType: wireType}
	switch wireType {
	case WireVarint:
		field.Varint, err = d.DecodeVarint()
	case WireBytes:
		field.RawData, err = d.DecodeBytes()
	case WireFixed32, WireFixed64:
		start := d.pos
		err = d.SkipField(wireType)
		if err == nil {
			field.RawData = append([]byte(nil), d.buf[start:d.pos]...)
		}
	default:
		err = fmt.Errorf("%w: %d", ErrInvalidWireType, wireType)
	}
	if err != nil {
		return nil, err
	}
	return field, nil
}
