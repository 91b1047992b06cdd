package wire

import (
	"fmt"
	"io"
)

// MaxVarintLen is the maximum encoded length of a 64-bit varint
const MaxVarintLen = 10

// errTruncatedVarint matches both ErrUnexpectedEOF and ErrMalformedVarint:
// a varint whose continuation bits never terminate is malformed, and it is
// also an early end of the buffer.
var errTruncatedVarint = fmt.Errorf("%w: %w", ErrUnexpectedEOF, ErrMalformedVarint)

// VarintDecoder handles varint decoding operations
type VarintDecoder struct {
	decoder *Decoder
}

// VarintEncoder handles varint encoding operations
type VarintEncoder struct {
	encoder *Encoder
}

// NewVarintDecoder creates a new varint decoder
func NewVarintDecoder(d *Decoder) *VarintDecoder {
	return &VarintDecoder{decoder: d}
}

// NewVarintEncoder creates a new varint encoder
func NewVarintEncoder(e *Encoder) *VarintEncoder {
	return &VarintEncoder{encoder: e}
}

// PURE FUNCTIONS

// AppendVarint appends v to b as a base-128 varint, least significant
// group first.
func AppendVarint(b []byte, v uint64) []byte {
	for v >= 0x80 {
		b = append(b, byte(v)|0x80)
		v >>= 7
	}
	return append(b, byte(v))
}

// DecodeVarint decodes a varint from the start of buf and returns the value
// and the number of bytes consumed.
func DecodeVarint(buf []byte) (uint64, int, error) {
	var result uint64
	for i := 0; i < MaxVarintLen; i++ {
		if i >= len(buf) {
			return 0, 0, errTruncatedVarint
		}
		b := buf[i]
		// The tenth group holds bit 63 only.
		if i == MaxVarintLen-1 && b > 1 {
			return 0, 0, ErrMalformedVarint
		}
		result |= uint64(b&0x7F) << (7 * uint(i))
		if b < 0x80 {
			return result, i + 1, nil
		}
	}
	return 0, 0, ErrMalformedVarint
}

// ReadVarint reads a single varint from a byte stream. It returns io.EOF
// only when the stream ends before the first byte.
func ReadVarint(r io.ByteReader) (uint64, error) {
	var result uint64
	for i := 0; i < MaxVarintLen; i++ {
		b, err := r.ReadByte()
		if err == io.EOF {
			if i == 0 {
				return 0, io.EOF
			}
			return 0, errTruncatedVarint
		}
		if err != nil {
			return 0, err
		}
		if i == MaxVarintLen-1 && b > 1 {
			return 0, ErrMalformedVarint
		}
		result |= uint64(b&0x7F) << (7 * uint(i))
		if b < 0x80 {
			return result, nil
		}
	}
	return 0, ErrMalformedVarint
}

// VarintSize returns the number of bytes needed to encode the given varint
func VarintSize(v uint64) int {
	switch {
	case v < 1<<7:
		return 1
	case v < 1<<14:
		return 2
	case v < 1<<21:
		return 3
	case v < 1<<28:
		return 4
	case v < 1<<35:
		return 5
	case v < 1<<42:
		return 6
	case v < 1<<49:
		return 7
	case v < 1<<56:
		return 8
	case v < 1<<63:
		return 9
	default:
		return 10
	}
}

// DECODER METHODS

// DecodeVarint decodes a varint from the current position
func (vd *VarintDecoder) DecodeVarint() (uint64, error) {
	d := vd.decoder
	v, n, err := DecodeVarint(d.buf[d.pos:d.limit])
	if err != nil {
		return 0, err
	}
	d.pos += n
	return v, nil
}

// DecodeUint64 decodes a varint as uint64
func (vd *VarintDecoder) DecodeUint64() (uint64, error) {
	return vd.DecodeVarint()
}

// SkipVarint skips over a varint. An overflowing varint is malformed even
// when its value is not needed.
func (vd *VarintDecoder) SkipVarint() error {
	d := vd.decoder
	_, n, err := DecodeVarint(d.buf[d.pos:d.limit])
	if err != nil {
		return err
	}
	d.pos += n
	return nil
}

// ENCODER METHODS

// EncodeVarint encodes a uint64 as varint
func (ve *VarintEncoder) EncodeVarint(v uint64) {
	ve.encoder.buf = AppendVarint(ve.encoder.buf, v)
}

// EncodeUint64 encodes a uint64 as varint
func (ve *VarintEncoder) EncodeUint64(v uint64) {
	ve.EncodeVarint(v)
}

// Convenience methods for direct access

// DecodeVarint - convenience method for main decoder
func (d *Decoder) DecodeVarint() (uint64, error) {
	vd := NewVarintDecoder(d)
	return vd.DecodeVarint()
}

// EncodeVarint - convenience method for main encoder
func (e *Encoder) EncodeVarint(v uint64) {
	ve := NewVarintEncoder(e)
	ve.EncodeVarint(v)
}
