package stream

import (
	"fmt"
	"io"

	"github.com/c2h5oh/datasize"
	"github.com/klauspost/compress/gzip"

	"github.com/empowerchain/eventwire/codec"
	"github.com/empowerchain/eventwire/wire"
)

// Writer writes framed events. Close must be called to flush a compressed
// stream; it does not close the underlying writer.
type Writer struct {
	w     io.Writer
	gw    *gzip.Writer
	opts  Options
	buf   []byte
	stats Stats
}

// NewWriter creates a Writer on w
func NewWriter(w io.Writer, opts Options) (*Writer, error) {
	sw := &Writer{w: w, opts: opts}
	if opts.Compress {
		level := opts.Level
		if level == 0 {
			level = gzip.BestSpeed
		}
		gw, err := gzip.NewWriterLevel(w, level)
		if err != nil {
			return nil, err
		}
		sw.gw = gw
		sw.w = gw
	}
	return sw, nil
}

// WriteEvent encodes m with c and writes it as one frame
func (w *Writer) WriteEvent(c codec.Codec, m any) error {
	value, err := c.Marshal(m)
	if err != nil {
		return err
	}
	return w.WriteEnvelope(&Envelope{
		TypeURL: "/" + c.FullName(),
		Value:   value,
	})
}

// WriteEnvelope writes one frame
func (w *Writer) WriteEnvelope(env *Envelope) error {
	size := EnvelopeBinding.Size(env)
	if uint64(size) > w.opts.maxFrameSize() {
		return fmt.Errorf("%w: %s for %s", ErrFrameTooLarge, datasize.ByteSize(size).HumanReadable(), env.TypeURL)
	}

	w.buf = wire.AppendVarint(w.buf[:0], uint64(size))
	w.buf = EnvelopeBinding.Append(w.buf, env)
	if _, err := w.w.Write(w.buf); err != nil {
		return err
	}
	w.stats.Frames++
	w.stats.Bytes += datasize.ByteSize(len(w.buf))
	return nil
}

// Stats returns the frames and bytes written so far
func (w *Writer) Stats() Stats {
	return w.stats
}

// Close flushes the gzip trailer of a compressed stream
func (w *Writer) Close() error {
	if w.gw != nil {
		return w.gw.Close()
	}
	return nil
}
