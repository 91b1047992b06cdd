package wire

// Encoder handles low-level protobuf wire format encoding.
// It is an append-only buffer; the zero value is ready to use.
type Encoder struct {
	buf []byte
}

// NewEncoder creates a new wire format encoder
func NewEncoder() *Encoder {
	return &Encoder{
		buf: make([]byte, 0),
	}
}

// NewEncoderSize creates an encoder with capacity for size bytes
func NewEncoderSize(size int) *Encoder {
	return &Encoder{
		buf: make([]byte, 0, size),
	}
}

// NewEncoderBuffer creates an encoder that appends to buf
func NewEncoderBuffer(buf []byte) *Encoder {
	return &Encoder{buf: buf}
}

// Bytes returns the encoded bytes
func (e *Encoder) Bytes() []byte {
	return e.buf
}

// Len returns the number of bytes written so far
func (e *Encoder) Len() int {
	return len(e.buf)
}

// Reset clears the encoder buffer
func (e *Encoder) Reset() {
	e.buf = e.buf[:0]
}

// EncodeTag writes the tag for a field as a varint
func (e *Encoder) EncodeTag(fieldNumber FieldNumber, wireType WireType) {
	e.buf = AppendVarint(e.buf, uint64(MakeTag(fieldNumber, wireType)))
}

// EncodeUint64Field writes a VARINT field, omitting it when v is zero
func (e *Encoder) EncodeUint64Field(fieldNumber FieldNumber, v uint64) {
	if v == 0 {
		return
	}
	e.EncodeTag(fieldNumber, WireVarint)
	e.buf = AppendVarint(e.buf, v)
}

// EncodeStringField writes a string field, omitting it when s is empty
func (e *Encoder) EncodeStringField(fieldNumber FieldNumber, s string) {
	if s == "" {
		return
	}
	e.EncodeTag(fieldNumber, WireBytes)
	e.EncodeString(s)
}

// EncodeBytesField writes a bytes field, omitting it when b is empty
func (e *Encoder) EncodeBytesField(fieldNumber FieldNumber, b []byte) {
	if len(b) == 0 {
		return
	}
	e.EncodeTag(fieldNumber, WireBytes)
	e.EncodeBytes(b)
}

// EncodeRepeatedStringField writes one tag+value pair per element, including
// empty elements. An empty list writes nothing.
func (e *Encoder) EncodeRepeatedStringField(fieldNumber FieldNumber, values []string) {
	for _, v := range values {
		e.EncodeTag(fieldNumber, WireBytes)
		e.EncodeString(v)
	}
}
