package wire

import (
	"fmt"
	"unicode/utf8"
)

// BytesDecoder handles length-delimited bytes decoding operations
type BytesDecoder struct {
	decoder *Decoder
}

// BytesEncoder handles length-delimited bytes encoding operations
type BytesEncoder struct {
	encoder *Encoder
}

// NewBytesDecoder creates a new bytes decoder
func NewBytesDecoder(d *Decoder) *BytesDecoder {
	return &BytesDecoder{decoder: d}
}

// NewBytesEncoder creates a new bytes encoder
func NewBytesEncoder(e *Encoder) *BytesEncoder {
	return &BytesEncoder{encoder: e}
}

// DECODER METHODS

// decodeLength reads a length prefix and checks it against the read limit.
// The cursor is left on the first payload byte.
func (bd *BytesDecoder) decodeLength() (int, error) {
	d := bd.decoder
	vd := NewVarintDecoder(d)
	length, err := vd.DecodeVarint()
	if err != nil {
		return 0, fmt.Errorf("failed to decode length: %w", err)
	}
	if length > uint64(d.limit-d.pos) {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", ErrTruncatedMessage, length, d.limit-d.pos)
	}
	return int(length), nil
}

// DecodeBytes decodes a length-delimited byte array
func (bd *BytesDecoder) DecodeBytes() ([]byte, error) {
	data, err := bd.DecodeRawBytes()
	if err != nil {
		return nil, err
	}
	// Copy the data to avoid sharing the underlying buffer
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// DecodeString decodes a length-delimited string and validates it as UTF-8
func (bd *BytesDecoder) DecodeString() (string, error) {
	data, err := bd.DecodeRawBytes()
	if err != nil {
		return "", err
	}
	if !bd.decoder.cfg.SkipUTF8Validation && !utf8.Valid(data) {
		return "", ErrInvalidUTF8
	}
	return string(data), nil
}

// DecodeRawBytes decodes bytes without copying (shares buffer)
func (bd *BytesDecoder) DecodeRawBytes() ([]byte, error) {
	length, err := bd.decodeLength()
	if err != nil {
		return nil, err
	}

	d := bd.decoder
	data := d.buf[d.pos : d.pos+length : d.pos+length]
	d.pos += length

	return data, nil
}

// SkipBytes skips over a length-delimited byte array
func (bd *BytesDecoder) SkipBytes() error {
	length, err := bd.decodeLength()
	if err != nil {
		return err
	}
	bd.decoder.pos += length
	return nil
}

// ENCODER METHODS

// EncodeBytes encodes a byte array as length-delimited
func (be *BytesEncoder) EncodeBytes(data []byte) {
	be.encoder.buf = AppendVarint(be.encoder.buf, uint64(len(data)))
	be.encoder.buf = append(be.encoder.buf, data...)
}

// EncodeString encodes a string as length-delimited bytes
func (be *BytesEncoder) EncodeString(s string) {
	be.encoder.buf = AppendVarint(be.encoder.buf, uint64(len(s)))
	be.encoder.buf = append(be.encoder.buf, s...)
}

// UTILITY FUNCTIONS

// BytesSize returns the size needed to encode the given bytes
func BytesSize(data []byte) int {
	return VarintSize(uint64(len(data))) + len(data)
}

// StringSize returns the size needed to encode the given string
func StringSize(s string) int {
	return VarintSize(uint64(len(s))) + len(s)
}

// Convenience methods for direct access

// DecodeBytes - convenience method for main decoder
func (d *Decoder) DecodeBytes() ([]byte, error) {
	return NewBytesDecoder(d).DecodeBytes()
}

// DecodeRawBytes - convenience method for main decoder
func (d *Decoder) DecodeRawBytes() ([]byte, error) {
	return NewBytesDecoder(d).DecodeRawBytes()
}

// DecodeString - convenience method for main decoder
func (d *Decoder) DecodeString() (string, error) {
	return NewBytesDecoder(d).DecodeString()
}

// EncodeBytes - convenience method for main encoder
func (e *Encoder) EncodeBytes(data []byte) {
	NewBytesEncoder(e).EncodeBytes(data)
}

// EncodeString - convenience method for main encoder
func (e *Encoder) EncodeString(s string) {
	NewBytesEncoder(e).EncodeString(s)
}
