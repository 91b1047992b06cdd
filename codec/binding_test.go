package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/empowerchain/eventwire/wire"
)

type issued struct {
	IssuerId     uint64
	Denom        string
	Amount       uint64
	Proof        []byte
	MetadataUris []string
}

type issuedPartial struct {
	IssuerId     *uint64
	Denom        *string
	Amount       *uint64
	Proof        []byte
	MetadataUris []string
}

var issuedBinding = NewBinding("test.credits.Issued",
	Uint64(1, "issuer_id",
		func(m *issued) *uint64 { return &m.IssuerId },
		func(p *issuedPartial) *uint64 { return p.IssuerId }),
	String(4, "denom",
		func(m *issued) *string { return &m.Denom },
		func(p *issuedPartial) *string { return p.Denom }),
	Uint64(5, "amount",
		func(m *issued) *uint64 { return &m.Amount },
		func(p *issuedPartial) *uint64 { return p.Amount }),
	RepeatedString(7, "metadata_uris",
		func(m *issued) *[]string { return &m.MetadataUris },
		func(p *issuedPartial) []string { return p.MetadataUris }),
	// declared out of order on purpose
	Bytes(6, "proof",
		func(m *issued) *[]byte { return &m.Proof },
		func(p *issuedPartial) []byte { return p.Proof }),
)

func ptr[V any](v V) *V { return &v }

func TestBinding_Descriptor(t *testing.T) {
	desc := issuedBinding.Descriptor()
	assert.Equal(t, "test.credits.Issued", issuedBinding.FullName())
	assert.Equal(t, "Issued", desc.ShortName())
	require.Len(t, desc.Fields, 5)
	assert.Equal(t, "metadataUris", desc.FieldByNumber(7).JsonName)
	assert.True(t, desc.FieldByNumber(7).IsRepeated())
}

func TestBinding_Encode(t *testing.T) {
	m := &issued{
		IssuerId:     7,
		Denom:        "ABC",
		Proof:        []byte{0x01},
		MetadataUris: []string{"a", ""},
	}

	var want []byte
	want = protowire.AppendTag(want, 1, protowire.VarintType)
	want = protowire.AppendVarint(want, 7)
	want = protowire.AppendTag(want, 4, protowire.BytesType)
	want = protowire.AppendString(want, "ABC")
	want = protowire.AppendTag(want, 6, protowire.BytesType)
	want = protowire.AppendBytes(want, []byte{0x01})
	want = protowire.AppendTag(want, 7, protowire.BytesType)
	want = protowire.AppendString(want, "a")
	want = protowire.AppendTag(want, 7, protowire.BytesType)
	want = protowire.AppendString(want, "")

	got := issuedBinding.Encode(m)
	assert.Equal(t, want, got)
	assert.Equal(t, len(want), issuedBinding.Size(m))

	// Append leaves the prefix alone
	prefixed := issuedBinding.Append([]byte{0xaa}, m)
	assert.Equal(t, append([]byte{0xaa}, want...), prefixed)
}

func TestBinding_EncodeDefault(t *testing.T) {
	out := issuedBinding.Encode(issuedBinding.New())
	assert.NotNil(t, out)
	assert.Empty(t, out)
	assert.Equal(t, 0, issuedBinding.Size(&issued{}))
}

func TestBinding_Decode(t *testing.T) {
	m := &issued{
		IssuerId:     1 << 40,
		Denom:        "PCRD",
		Amount:       10,
		Proof:        []byte("sig"),
		MetadataUris: []string{"ipfs://one", "", "ipfs://three"},
	}
	decoded, err := issuedBinding.Decode(issuedBinding.Encode(m))
	require.NoError(t, err)
	assert.Equal(t, m, decoded)

	empty, err := issuedBinding.Decode(nil)
	require.NoError(t, err)
	assert.Equal(t, &issued{}, empty)
}

func TestBinding_DecodeUnknownAndMismatched(t *testing.T) {
	var buf []byte
	buf = protowire.AppendTag(buf, 2, protowire.VarintType)
	buf = protowire.AppendVarint(buf, 5)
	buf = protowire.AppendTag(buf, 5, protowire.BytesType) // amount as LEN
	buf = protowire.AppendString(buf, "10")
	buf = protowire.AppendTag(buf, 4, protowire.BytesType)
	buf = protowire.AppendString(buf, "PCRD")
	buf = protowire.AppendTag(buf, 9, protowire.Fixed64Type)
	buf = protowire.AppendFixed64(buf, 1)

	d := wire.NewDecoderWithConfig(buf, wire.Config{})
	m, err := issuedBinding.DecodeFrom(d)
	require.NoError(t, err)
	assert.Equal(t, &issued{Denom: "PCRD"}, m)
	assert.Len(t, d.Skipped(), 3)

	_, err = issuedBinding.DecodeFrom(wire.NewDecoderWithConfig(buf, wire.Config{StrictWireType: true}))
	assert.ErrorIs(t, err, wire.ErrWireTypeMismatch)
}

func TestBinding_DecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		err   error
		path  string
	}{
		{"truncated_denom", []byte{0x22, 0x09, 'P'}, wire.ErrTruncatedMessage, "denom"},
		{"bad_utf8", []byte{0x3a, 0x01, 0xff}, wire.ErrInvalidUTF8, "metadata_uris"},
		{"truncated_amount", []byte{0x28, 0x80}, wire.ErrUnexpectedEOF, "amount"},
		{"overlong_amount", []byte{0x28, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f}, wire.ErrMalformedVarint, "amount"},
		{"group_tag", []byte{0x13}, wire.ErrInvalidWireType, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := issuedBinding.Decode(tt.input)
			assert.Nil(t, m)
			require.ErrorIs(t, err, tt.err)
			if tt.path != "" {
				var fe *wire.FieldError
				require.ErrorAs(t, err, &fe)
				assert.True(t, fe.IsDecoding)
				assert.Equal(t, []string{tt.path}, fe.FieldPath)
			}
		})
	}
}

func TestBinding_DecodeLength(t *testing.T) {
	inner := issuedBinding.Encode(&issued{Denom: "X", Amount: 3})
	buf := wire.AppendVarint(nil, uint64(len(inner)))
	buf = append(buf, inner...)
	buf = append(buf, 0x08, 0x01)

	d := wire.NewDecoder(buf)
	length, err := d.DecodeVarint()
	require.NoError(t, err)
	m, err := issuedBinding.DecodeLength(d, length)
	require.NoError(t, err)
	assert.Equal(t, &issued{Denom: "X", Amount: 3}, m)
	assert.Equal(t, len(buf)-2, d.Pos())

	_, err = issuedBinding.DecodeLength(wire.NewDecoder([]byte{0x08}), 5)
	assert.ErrorIs(t, err, wire.ErrTruncatedMessage)
}

func TestBinding_MergeFrom(t *testing.T) {
	assert.Equal(t, &issued{}, issuedBinding.MergeFrom(nil))
	assert.Equal(t, &issued{}, issuedBinding.MergeFrom(&issuedPartial{}))

	uris := []string{"a", "b"}
	proof := []byte{1, 2}
	m := issuedBinding.MergeFrom(&issuedPartial{
		IssuerId:     ptr(uint64(0)),
		Denom:        ptr("PCRD"),
		Proof:        proof,
		MetadataUris: uris,
	})
	assert.Equal(t, &issued{Denom: "PCRD", Proof: []byte{1, 2}, MetadataUris: []string{"a", "b"}}, m)

	// The result does not share storage with the partial
	uris[0] = "changed"
	proof[0] = 9
	assert.Equal(t, "a", m.MetadataUris[0])
	assert.Equal(t, byte(1), m.Proof[0])
}

func TestBinding_Values(t *testing.T) {
	m := &issued{IssuerId: 3, MetadataUris: []string{"x"}}
	v := issuedBinding.ToValue(m)
	assert.Equal(t, wire.Value{
		"issuer_id":     uint64(3),
		"denom":         "",
		"amount":        uint64(0),
		"proof":         []byte{},
		"metadata_uris": []string{"x"},
	}, v)

	back, err := issuedBinding.FromValue(v)
	require.NoError(t, err)
	assert.Equal(t, m, back)

	fromJSON, err := issuedBinding.FromValue(map[string]interface{}{
		"issuerId":     "3",
		"metadataUris": []interface{}{"x"},
	})
	require.NoError(t, err)
	assert.Equal(t, m, fromJSON)

	_, err = issuedBinding.FromValue(map[string]interface{}{"amount": "ten"})
	assert.Error(t, err)
}

func TestBinding_AsCodec(t *testing.T) {
	var c Codec = issuedBinding

	_, ok := c.NewMessage().(*issued)
	assert.True(t, ok)

	byPtr, err := c.Marshal(&issued{Amount: 1})
	require.NoError(t, err)
	byValue, err := c.Marshal(issued{Amount: 1})
	require.NoError(t, err)
	assert.Equal(t, byPtr, byValue)

	_, err = c.Marshal("not a message")
	assert.Error(t, err)
	_, err = c.Marshal((*issued)(nil))
	assert.Error(t, err)

	out, err := c.Unmarshal(byPtr)
	require.NoError(t, err)
	assert.Equal(t, &issued{Amount: 1}, out)

	fromValue, err := c.MarshalValue(map[string]interface{}{"amount": 1})
	require.NoError(t, err)
	assert.Equal(t, byPtr, fromValue)

	value, err := c.UnmarshalValue(byPtr)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), value["amount"])
}

func TestNewBinding_Invalid(t *testing.T) {
	assert.Panics(t, func() {
		NewBinding("test.Dup",
			String(1, "a",
				func(m *issued) *string { return &m.Denom },
				func(p *issuedPartial) *string { return p.Denom }),
			Uint64(1, "b",
				func(m *issued) *uint64 { return &m.Amount },
				func(p *issuedPartial) *uint64 { return p.Amount }),
		)
	})
	assert.Panics(t, func() {
		NewBinding("test.Reserved",
			Uint64(19000, "a",
				func(m *issued) *uint64 { return &m.Amount },
				func(p *issuedPartial) *uint64 { return p.Amount }),
		)
	})
}
