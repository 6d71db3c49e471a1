package fileinput

import (
	"fmt"
	"io"

	"github.com/jcorbin/gobrain/internal/runeio"
)

// Location names a line in an Input file.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }

// Input implements sequential rune reading through a Queue of one or more
// input streams, tracking the Location of the last rune read. Queued streams
// that implement io.Closer are closed once exhausted.
type Input struct {
	Queue []io.Reader

	rr  io.RuneReader
	cl  io.Closer
	loc Location
	nl  bool
}

// Location returns the location of the most recently read rune.
func (in *Input) Location() Location { return in.loc }

// ReadRune reads one rune from the current input stream, advancing to the
// next queued stream when the current one ends. Returns io.EOF only once all
// queued streams are exhausted.
func (in *Input) ReadRune() (rune, int, error) {
	for {
		if in.rr == nil && !in.nextIn() {
			return 0, 0, io.EOF
		}
		if in.nl {
			in.loc.Line++
			in.nl = false
		}
		r, n, err := in.rr.ReadRune()
		if err == nil {
			in.nl = r == '\n'
			return r, n, nil
		}
		in.closeIn()
		if err != io.EOF {
			return 0, 0, err
		}
	}
}

// Close closes the current stream and any still queued.
func (in *Input) Close() (err error) {
	if cerr := in.closeIn(); err == nil {
		err = cerr
	}
	for _, r := range in.Queue {
		if cl, ok := r.(io.Closer); ok {
			if cerr := cl.Close(); err == nil {
				err = cerr
			}
		}
	}
	in.Queue = nil
	return err
}

func (in *Input) closeIn() (err error) {
	if in.cl != nil {
		err = in.cl.Close()
	}
	in.rr, in.cl = nil, nil
	return err
}

func (in *Input) nextIn() bool {
	if len(in.Queue) > 0 {
		r := in.Queue[0]
		in.Queue = in.Queue[1:]
		in.rr = runeio.NewReader(r)
		in.cl, _ = r.(io.Closer)
		in.loc = Location{nameOf(r), 1}
		in.nl = false
	}
	return in.rr != nil
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
