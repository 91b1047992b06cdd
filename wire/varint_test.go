package wire

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"math"
	"testing"

	gogoproto "github.com/gogo/protobuf/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

func TestVarint_Boundaries(t *testing.T) {
	tests := []struct {
		name    string
		value   uint64
		encoded []byte
	}{
		{"zero", 0, []byte{0x00}},
		{"one", 1, []byte{0x01}},
		{"max_one_byte", 127, []byte{0x7f}},
		{"min_two_bytes", 128, []byte{0x80, 0x01}},
		{"three_hundred", 300, []byte{0xac, 0x02}},
		{"max_uint32", math.MaxUint32, []byte{0xff, 0xff, 0xff, 0xff, 0x0f}},
		{"max_uint64", math.MaxUint64, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := AppendVarint(nil, tt.value)
			assert.Equal(t, tt.encoded, encoded)
			assert.Equal(t, len(tt.encoded), VarintSize(tt.value))

			v, n, err := DecodeVarint(encoded)
			require.NoError(t, err)
			assert.Equal(t, tt.value, v)
			assert.Equal(t, len(encoded), n)

			// Cross-check with protobuf-go and gogo/protobuf
			assert.Equal(t, protowire.AppendVarint(nil, tt.value), encoded)
			assert.Equal(t, gogoproto.EncodeVarint(tt.value), encoded)
			gv, gn := gogoproto.DecodeVarint(encoded)
			assert.Equal(t, tt.value, gv)
			assert.Equal(t, len(encoded), gn)
		})
	}
}

func TestVarint_DecodeStopsAtTerminator(t *testing.T) {
	v, n, err := DecodeVarint([]byte{0xac, 0x02, 0xff, 0xff})
	require.NoError(t, err)
	assert.Equal(t, uint64(300), v)
	assert.Equal(t, 2, n)
}

func TestVarint_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		eof   bool
	}{
		{"empty", []byte{}, true},
		{"unterminated", []byte{0x80, 0x80}, true},
		{"ten_bytes_continuation", bytes.Repeat([]byte{0xff}, 10), false},
		{"eleven_bytes", append(bytes.Repeat([]byte{0x80}, 10), 0x00), false},
		{"overflow_in_last_group", append(bytes.Repeat([]byte{0xff}, 9), 0x02), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeVarint(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedVarint)
			assert.Equal(t, tt.eof, errors.Is(err, ErrUnexpectedEOF))
		})
	}
}

func TestReadVarint(t *testing.T) {
	var buf []byte
	for _, v := range []uint64{0, 1, 127, 128, math.MaxUint64} {
		buf = AppendVarint(buf, v)
	}
	r := bufio.NewReader(bytes.NewReader(buf))
	for _, want := range []uint64{0, 1, 127, 128, math.MaxUint64} {
		v, err := ReadVarint(r)
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}
	_, err := ReadVarint(r)
	assert.Equal(t, io.EOF, err)

	_, err = ReadVarint(bufio.NewReader(bytes.NewReader([]byte{0x80})))
	assert.ErrorIs(t, err, ErrUnexpectedEOF)
}

func TestVarintDecoder_Skip(t *testing.T) {
	d := NewDecoder([]byte{0xac, 0x02, 0x05})
	require.NoError(t, NewVarintDecoder(d).SkipVarint())
	assert.Equal(t, 2, d.Pos())

	v, err := d.DecodeVarint()
	require.NoError(t, err)
	assert.Equal(t, uint64(5), v)
	assert.True(t, d.Done())

	err = NewVarintDecoder(NewDecoder([]byte{0x80})).SkipVarint()
	assert.ErrorIs(t, err, ErrUnexpectedEOF)

	// the tenth byte may only carry bit 63
	overflow := []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f}
	d = NewDecoder(overflow)
	assert.ErrorIs(t, NewVarintDecoder(d).SkipVarint(), ErrMalformedVarint)
	assert.Equal(t, 0, d.Pos())
	_, n := protowire.ConsumeVarint(overflow)
	assert.Less(t, n, 0)
}

func TestTag_RoundTrip(t *testing.T) {
	tests := []struct {
		number   FieldNumber
		wireType WireType
		tag      Tag
	}{
		{1, WireVarint, 0x08},
		{1, WireBytes, 0x0a},
		{2, WireBytes, 0x12},
		{3, WireVarint, 0x18},
		{4, WireBytes, 0x22},
		{7, WireBytes, 0x3a},
		{MaxFieldNumber, WireFixed32, Tag(uint64(MaxFieldNumber)<<3 | 5)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.tag, MakeTag(tt.number, tt.wireType))
		n, wt := ParseTag(tt.tag)
		assert.Equal(t, tt.number, n)
		assert.Equal(t, tt.wireType, wt)
		assert.Equal(t, uint64(protowire.EncodeTag(protowire.Number(tt.number), protowire.Type(tt.wireType))), uint64(tt.tag))
	}
}

func TestFieldNumber_IsValid(t *testing.T) {
	assert.False(t, FieldNumber(0).IsValid())
	assert.True(t, FieldNumber(1).IsValid())
	assert.True(t, FieldNumber(18999).IsValid())
	assert.False(t, FieldNumber(19000).IsValid())
	assert.False(t, FieldNumber(19999).IsValid())
	assert.True(t, FieldNumber(20000).IsValid())
	assert.True(t, MaxFieldNumber.IsValid())
	assert.False(t, (MaxFieldNumber + 1).IsValid())
}
