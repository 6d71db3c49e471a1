package flushio

import (
	"bufio"
	"io"
)

// WriteFlusher is an io.Writer whose output may be held until Flush.
type WriteFlusher interface {
	io.Writer
	Flush() error
}

// Discard is a WriteFlusher that drops everything written to it.
var Discard WriteFlusher = nopFlusher{io.Discard}

// NewWriteFlusher adapts w to be flushed at every point where output must be
// visible, such as before a diagnostic snapshot:
//   - nil and io.Discard become Discard
//   - a WriteFlusher, e.g. a bufio.Writer, is used as is
//   - in memory buffers, e.g. strings.Builder, need no flushing
//   - anything else, e.g. a terminal or file, is buffered
func NewWriteFlusher(w io.Writer) WriteFlusher {
	if w == nil || w == io.Discard {
		return Discard
	}
	switch impl := w.(type) {
	case WriteFlusher:
		return impl
	case inMemory:
		return nopFlusher{impl}
	}
	return bufio.NewWriter(w)
}

type inMemory interface {
	io.Writer
	Len() int
	Reset()
}

type nopFlusher struct{ io.Writer }

func (nf nopFlusher) Flush() error { return nil }

func (nf nopFlusher) WriteByte(b byte) error { return WriteByte(nf.Writer, b) }

// WriteByte writes a single byte, through io.ByteWriter when w has it.
func WriteByte(w io.Writer, b byte) error {
	if bw, ok := w.(io.ByteWriter); ok {
		return bw.WriteByte(b)
	}
	_, err := w.Write([]byte{b})
	return err
}
