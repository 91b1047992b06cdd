package wire

// ===== PROTOBUF WIRE FORMAT TYPES =====

// WireType represents protobuf wire format types
type WireType int32

const (
	WireVarint     WireType = 0 // uint64 and the other varint scalars
	WireFixed64    WireType = 1 // skipped only
	WireBytes      WireType = 2 // string, bytes, embedded messages
	WireStartGroup WireType = 3 // deprecated, rejected
	WireEndGroup   WireType = 4 // deprecated, rejected
	WireFixed32    WireType = 5 // skipped only
)

// String returns the protobuf name of the wire type
func (wt WireType) String() string {
	switch wt {
	case WireVarint:
		return "VARINT"
	case WireFixed64:
		return "I64"
	case WireBytes:
		return "LEN"
	case WireStartGroup:
		return "SGROUP"
	case WireEndGroup:
		return "EGROUP"
	case WireFixed32:
		return "I32"
	default:
		return "INVALID"
	}
}

// FieldNumber represents a protobuf field number
type FieldNumber int32

const (
	MinFieldNumber      FieldNumber = 1
	MaxFieldNumber      FieldNumber = 1<<29 - 1
	FirstReservedNumber FieldNumber = 19000
	LastReservedNumber  FieldNumber = 19999
)

// IsValid reports whether the number may be used by a schema field.
func (n FieldNumber) IsValid() bool {
	if n < MinFieldNumber || n > MaxFieldNumber {
		return false
	}
	return n < FirstReservedNumber || n > LastReservedNumber
}

// Tag represents a protobuf field tag (field number + wire type)
type Tag uint64

// MakeTag creates a tag from field number and wire type
func MakeTag(fieldNumber FieldNumber, wireType WireType) Tag {
	return Tag(uint64(fieldNumber)<<3 | uint64(wireType&0x7))
}

// ParseTag parses a tag into field number and wire type
func ParseTag(tag Tag) (FieldNumber, WireType) {
	return FieldNumber(tag >> 3), WireType(tag & 0x7)
}

// UnknownField records a field that the decoder skipped because the
// descriptor did not declare it. It is informational, not an error.
type UnknownField struct {
	FieldNumber FieldNumber
	WireType    WireType
}

// RawField represents a field decoded without a descriptor
type RawField struct {
	FieldNumber FieldNumber
	WireType    WireType
	Varint      uint64 // for WireVarint
	RawData     []byte // payload for WireBytes, raw little-endian bytes for fixed types
}

// Value is a dynamic message value keyed by proto field name.
// Values are uint64, string, []byte or []string depending on the field kind.
type Value = map[string]interface{}

// TagSize returns the encoded size of a tag for the field number
func TagSize(fieldNumber FieldNumber) int {
	return VarintSize(uint64(MakeTag(fieldNumber, 0)))
}
