package main

import (
	"fmt"
	"io"

	"github.com/jcorbin/gobrain/internal/flushio"
	"github.com/jcorbin/gobrain/internal/mem"
	"github.com/jcorbin/gobrain/internal/runeio"
)

// Machine executes a Program against a fixed-capacity tape of byte cells.
//
// The machine has two memories of the same capacity: the program, which is
// never written, and the tape, which starts out all zero. Two cursors index
// them: the instruction pointer into the program, and the data pointer into
// the tape. Neither cursor ever leaves its memory; movement past either end
// saturates instead.
//
// Each step fetches the operator under the instruction pointer:
//
//	+   increment the cell under the data pointer, wrapping 255 to 0
//	-   decrement the cell under the data pointer, wrapping 0 to 255
//	<   move the data pointer left, unless already at the first cell
//	>   move the data pointer right, unless already at the last cell
//	[   if the cell is zero, jump to the matching ]
//	]   if the cell is non-zero, jump back to the matching [
//	.   output the cell
//
// Any other byte, including the terminating zero and the unimplemented input
// operator ',', halts the machine. After every non-halting step the
// instruction pointer advances by one, unless it is already pinned at the last
// program address; so jumps land just past their matching bracket.
type Machine struct {
	logging

	out       flushio.WriteFlusher
	hexOutput bool

	prog  Program
	jumps jumpTable
	tape  mem.Bytes

	dp int // data pointer
	ip int // instruction pointer

	halted bool
	ops    int
	maxOps int

	layout    snapshotLayout
	snapshots io.Writer
	pacer     *runeio.Pacer
}

type logging struct {
	logfn func(mess string, args ...interface{})
}

func (log logging) logf(mess string, args ...interface{}) {
	if log.logfn != nil {
		log.logfn(mess, args...)
	}
}

func (m *Machine) step() (err error) {
	if m.halted {
		return ErrHalted
	}

	op, err := m.prog.code.Load(m.ip)
	if err != nil {
		return boundsError{"instruction pointer", err}
	}
	val, err := m.tape.Load(m.dp)
	if err != nil {
		return boundsError{"data pointer", err}
	}

	if m.logfn != nil {
		m.logf("IP=%v, @IP=0x%02X, DP=%v, @DP=0x%02X", m.ip, op, m.dp, val)
	}

	switch op {
	case '+':
		err = m.tape.Stor(m.dp, val+1)

	case '-':
		err = m.tape.Stor(m.dp, val-1)

	case '<':
		if m.dp > 0 {
			m.dp--
		}

	case '>':
		if m.dp < m.tape.Size()-1 {
			m.dp++
		}

	case '[':
		if val == 0 {
			m.ip, err = m.jumps.target(m.ip)
		}

	case ']':
		if val != 0 {
			m.ip, err = m.jumps.target(m.ip)
		}

	case '.':
		err = m.emit(val)

	default:
		m.halted = true
		m.logf("halt @%v on 0x%02X", m.ip, op)
		return nil
	}
	if err != nil {
		return err
	}

	if m.ip < m.prog.Size()-1 {
		m.ip++
	}
	return nil
}

func (m *Machine) emit(val byte) error {
	if m.hexOutput {
		_, err := fmt.Fprintf(m.out, "0x%02X\n", val)
		return err
	}
	return flushio.WriteByte(m.out, val)
}
