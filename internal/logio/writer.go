package logio

import (
	"bytes"
	"sync"
)

// Writer splits everything written to it into lines, passing each complete
// line to Logf. A trailing partial line is held until more arrives or the
// Writer is flushed. Writes may come from multiple goroutines.
type Writer struct {
	Logf func(string, ...interface{})

	// Prefix, if set, is prepended to every line.
	Prefix string

	mu      sync.Mutex
	partial []byte
}

func (lw *Writer) Write(p []byte) (int, error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	n := len(p)
	for {
		line, rest, found := bytes.Cut(p, []byte{'\n'})
		if !found {
			lw.partial = append(lw.partial, line...)
			return n, nil
		}
		if len(lw.partial) > 0 {
			line = append(lw.partial, line...)
			lw.partial = lw.partial[:0]
		}
		lw.Logf("%s%s", lw.Prefix, line)
		p = rest
	}
}

// Flush logs any held partial line, making Writer a flushio.WriteFlusher.
func (lw *Writer) Flush() error {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	if len(lw.partial) > 0 {
		lw.Logf("%s%s", lw.Prefix, lw.partial)
		lw.partial = lw.partial[:0]
	}
	return nil
}

// Sync is Flush, for loggers that expect it.
func (lw *Writer) Sync() error { return lw.Flush() }

// Close is Flush.
func (lw *Writer) Close() error { return lw.Flush() }
