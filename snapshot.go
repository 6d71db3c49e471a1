package main

import (
	"strings"

	"github.com/jcorbin/gobrain/internal/mem"
)

// Snapshot is a read-only text view of the machine around its two pointers.
type Snapshot struct {
	Data     string // tape cells as hex pairs, centered on the data pointer
	DataMark string // marks the centered cell
	Inst     string // program bytes, centered on the instruction pointer
	InstMark string // marks the centered operator
}

func (snap Snapshot) String() string {
	var sb strings.Builder
	sb.WriteString("<EVAL>\n")
	sb.WriteString("Data Memory:\n")
	writeParenLine(&sb, snap.Data)
	writeParenLine(&sb, snap.DataMark)
	sb.WriteString("\nInstruction Memory:\n")
	writeParenLine(&sb, snap.Inst)
	writeParenLine(&sb, snap.InstMark)
	return sb.String()
}

func writeParenLine(sb *strings.Builder, line string) {
	sb.WriteByte('(')
	sb.WriteString(line)
	sb.WriteString(")\n")
}

// Snapshot renders the current machine state.
func (m *Machine) Snapshot() Snapshot {
	return m.layout.render(m.tape, m.dp, m.prog, m.ip)
}

type snapshotLayout struct {
	lineLength  int
	dataPadding int
}

const hexDigits = "0123456789ABCDEF"

func (lay snapshotLayout) render(tape mem.Bytes, dp int, prog Program, ip int) (snap Snapshot) {
	center := lay.lineLength / 2

	// tape cells every 3 columns, unreadable cells shown as FF
	data := blankLine(lay.lineLength)
	for i := 0; i < 2*lay.dataPadding+1; i++ {
		col := 3*(i-lay.dataPadding) + center
		if col < 0 || col+1 >= len(data) {
			continue
		}
		if val, err := tape.Load(dp - lay.dataPadding + i); err != nil {
			data[col], data[col+1] = 'F', 'F'
		} else {
			data[col], data[col+1] = hexDigits[val>>4], hexDigits[val&0xf]
		}
	}
	snap.Data = string(data)
	snap.DataMark = string(markLine(lay.lineLength, center, center+1))

	// program bytes up to the terminating zero
	inst := blankLine(lay.lineLength)
	for col := range inst {
		addr := col - center + ip
		if addr < 0 {
			continue
		}
		op, err := prog.code.Load(addr)
		if err != nil || op == 0 {
			break
		}
		inst[col] = op
	}
	snap.Inst = string(inst)
	snap.InstMark = string(markLine(lay.lineLength, center))

	return snap
}

func blankLine(n int) []byte {
	line := make([]byte, n)
	for i := range line {
		line[i] = ' '
	}
	return line
}

func markLine(n int, cols ...int) []byte {
	line := blankLine(n)
	for _, col := range cols {
		if col >= 0 && col < n {
			line[col] = '*'
		}
	}
	return line
}
