package runeio

import (
	"bufio"
	"io"
)

// NewReader returns r if it already reads runes, otherwise a buffered reader
// around it. Program source and pacing lines both arrive through here.
func NewReader(r io.Reader) io.RuneReader {
	if rr, ok := r.(io.RuneReader); ok {
		return rr
	}
	return bufio.NewReader(r)
}

// Pacer holds a stepping loop back to one step per line of input.
type Pacer struct {
	rr    io.RuneReader
	lines int
	done  bool
}

// NewPacer reads pacing lines from r.
func NewPacer(r io.Reader) *Pacer { return &Pacer{rr: NewReader(r)} }

// Wait blocks until the next line has been read, returning true. Once input
// has run out, Wait returns false without blocking, now and on every later
// call; a final line without a line feed counts as running out.
func (p *Pacer) Wait() (bool, error) {
	if p.done {
		return false, nil
	}
	switch err := SkipLine(p.rr); err {
	case nil:
		p.lines++
		return true, nil
	case io.EOF, io.ErrUnexpectedEOF:
		p.done = true
		return false, nil
	default:
		return false, err
	}
}

// Lines returns how many lines Wait has consumed.
func (p *Pacer) Lines() int { return p.lines }
