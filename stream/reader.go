package stream

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/c2h5oh/datasize"
	"github.com/klauspost/compress/gzip"

	"github.com/empowerchain/eventwire/codec"
	"github.com/empowerchain/eventwire/wire"
)

// Reader reads framed events
type Reader struct {
	r     *bufio.Reader
	gr    *gzip.Reader
	opts  Options
	buf   []byte
	stats Stats
}

// NewReader creates a Reader on r. For a compressed stream the gzip header
// is read right away.
func NewReader(r io.Reader, opts Options) (*Reader, error) {
	sr := &Reader{opts: opts}
	if opts.Compress {
		gr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to open compressed stream: %w", err)
		}
		sr.gr = gr
		r = gr
	}
	sr.r = bufio.NewReader(r)
	return sr, nil
}

// Next reads one envelope. It returns io.EOF at a clean end of stream and
// wire.ErrTruncatedMessage when the stream ends inside a frame.
func (r *Reader) Next() (*Envelope, error) {
	size, err := wire.ReadVarint(r.r)
	if err == io.EOF {
		return nil, io.EOF
	}
	if errors.Is(err, wire.ErrUnexpectedEOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("%w: frame length: %w", wire.ErrTruncatedMessage, err)
	}
	if err != nil {
		return nil, fmt.Errorf("frame length: %w", err)
	}
	if size > r.opts.maxFrameSize() {
		return nil, fmt.Errorf("%w: %s", ErrFrameTooLarge, datasize.ByteSize(size).HumanReadable())
	}

	if uint64(cap(r.buf)) < size {
		r.buf = make([]byte, size)
	}
	r.buf = r.buf[:size]
	if _, err := io.ReadFull(r.r, r.buf); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: frame of %d bytes", wire.ErrTruncatedMessage, size)
		}
		return nil, err
	}

	// The envelope value is copied out of buf, which is reused
	env, err := EnvelopeBinding.Decode(r.buf)
	if err != nil {
		return nil, fmt.Errorf("failed to decode envelope: %w", err)
	}
	r.stats.Frames++
	r.stats.Bytes += datasize.ByteSize(wire.VarintSize(size) + int(size))
	return env, nil
}

// NextEvent reads one envelope and decodes the event it holds with the
// codec resolve returns for its type URL.
func (r *Reader) NextEvent(resolve Resolver) (codec.Codec, any, error) {
	env, err := r.Next()
	if err != nil {
		return nil, nil, err
	}
	c, ok := resolve(env.TypeURL)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", ErrUnknownType, env.TypeURL)
	}
	m, err := c.Unmarshal(env.Value)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode %s: %w", c.FullName(), err)
	}
	return c, m, nil
}

// Stats returns the frames and bytes read so far
func (r *Reader) Stats() Stats {
	return r.stats
}

// Close releases the gzip reader of a compressed stream. It does not close
// the underlying reader.
func (r *Reader) Close() error {
	if r.gr != nil {
		return r.gr.Close()
	}
	return nil
}
