package main

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jcorbin/gobrain/internal/fileinput"
	"github.com/jcorbin/gobrain/internal/mem"
)

// Operators lists every byte accepted into a program. All but ',' have an
// execution effect; ',' halts the machine like any other unknown byte.
const Operators = "+-<>[].,"

func isOperator(b byte) bool { return b != 0 && strings.IndexByte(Operators, b) >= 0 }

// Program is a fixed-capacity sequence of operator bytes. A zero byte ends the
// program early; a program filling its whole capacity has no such sentinel.
type Program struct {
	code mem.Bytes
	locs []fileinput.Location

	// Truncated is set when source held more operators than capacity.
	Truncated bool
}

// NewProgram copies code into a new program of the given capacity. Code longer
// than capacity is truncated. The code is not filtered: any byte outside of
// Operators will simply halt the machine when reached.
func NewProgram(capacity int, code string) Program {
	prog := Program{code: mem.NewBytes(capacity)}
	if n := prog.Size(); len(code) > n {
		code = code[:n]
		prog.Truncated = true
	}
	_ = prog.code.Stor(0, []byte(code)...) // cannot fail once truncated to size
	return prog
}

// LoadProgram reads operators from the given inputs, in order, into a new
// program of the given capacity. All non-operator runes are discarded. Reading
// stops once capacity operators have been kept; any further operators mark the
// program as Truncated. Inputs that implement io.Closer are closed.
func LoadProgram(capacity int, inputs ...io.Reader) (_ Program, rerr error) {
	in := fileinput.Input{Queue: inputs}
	defer func() {
		if cerr := in.Close(); rerr == nil {
			rerr = cerr
		}
	}()

	prog := Program{code: mem.NewBytes(capacity)}
	code := make([]byte, 0, capacity)
	for {
		r, _, err := in.ReadRune()
		if err == io.EOF {
			break
		} else if err != nil {
			return Program{}, err
		}
		if r >= utf8.RuneSelf || !isOperator(byte(r)) {
			continue
		}
		if len(code) == capacity {
			prog.Truncated = true
			break
		}
		code = append(code, byte(r))
		prog.locs = append(prog.locs, in.Location())
	}

	if err := prog.code.Stor(0, code...); err != nil {
		return Program{}, err
	}
	return prog, nil
}

// Size returns the program's fixed capacity.
func (prog Program) Size() int { return prog.code.Size() }

// Len returns the address of the terminating zero byte, or Size if there is
// none.
func (prog Program) Len() int {
	for addr := 0; addr < prog.code.Size(); addr++ {
		if b, _ := prog.code.Load(addr); b == 0 {
			return addr
		}
	}
	return prog.code.Size()
}

// Location returns the source location of the operator at addr, if the
// program was loaded from named input.
func (prog Program) Location(addr int) (fileinput.Location, bool) {
	if addr < 0 || addr >= len(prog.locs) {
		return fileinput.Location{}, false
	}
	return prog.locs[addr], true
}

func (prog Program) String() string {
	buf := make([]byte, prog.Len())
	prog.code.LoadInto(0, buf)
	return string(buf)
}
