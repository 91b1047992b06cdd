// Package stream reads and writes sequences of length-delimited events.
//
// Each frame is varint(len) followed by an Envelope of len bytes. The
// envelope names the event by type URL ("/" + full message name) and holds
// the encoded event. The whole stream may be gzip compressed.
package stream

import (
	"errors"

	"github.com/c2h5oh/datasize"

	"github.com/empowerchain/eventwire/codec"
)

// DefaultMaxFrameSize bounds a single frame when Options.MaxFrameSize is 0
const DefaultMaxFrameSize = 4 * datasize.MB

var (
	// ErrFrameTooLarge is returned for a frame above the configured maximum
	ErrFrameTooLarge = errors.New("frame exceeds maximum size")
	// ErrUnknownType is returned when no codec resolves an envelope type URL
	ErrUnknownType = errors.New("unknown event type")
)

// Envelope wraps one encoded event
type Envelope struct {
	TypeURL string `json:"type_url" yaml:"type_url"`
	Value   []byte `json:"value" yaml:"value"`
}

// EnvelopePartial is Envelope with every field optional
type EnvelopePartial struct {
	TypeURL *string `json:"type_url,omitempty" yaml:"type_url,omitempty"`
	Value   []byte  `json:"value,omitempty" yaml:"value,omitempty"`
}

// EnvelopeBinding is the codec binding for Envelope
var EnvelopeBinding = codec.NewBinding("eventwire.stream.Envelope",
	codec.String(1, "type_url",
		func(m *Envelope) *string { return &m.TypeURL },
		func(p *EnvelopePartial) *string { return p.TypeURL }),
	codec.Bytes(2, "value",
		func(m *Envelope) *[]byte { return &m.Value },
		func(p *EnvelopePartial) []byte { return p.Value }),
)

// Resolver finds the codec for a type URL. events.Lookup is one.
type Resolver func(typeURL string) (codec.Codec, bool)

// Options configure a Writer or Reader
type Options struct {
	// Compress enables gzip for the whole stream
	Compress bool
	// Level is the gzip level; 0 means gzip.BestSpeed
	Level int
	// MaxFrameSize bounds a single frame, DefaultMaxFrameSize if 0
	MaxFrameSize datasize.ByteSize
}

func (o Options) maxFrameSize() uint64 {
	if o.MaxFrameSize == 0 {
		return uint64(DefaultMaxFrameSize)
	}
	return uint64(o.MaxFrameSize)
}

// Stats counts what went through a Writer or Reader
type Stats struct {
	Frames int
	Bytes  datasize.ByteSize // uncompressed, length prefixes included
}
