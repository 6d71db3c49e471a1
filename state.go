package main

import (
	"io"

	"github.com/fxamacker/cbor/v2"
)

// State captures everything observable about a machine after a run.
type State struct {
	Tape     []byte `cbor:"1,keyasint"`
	DataPtr  int    `cbor:"2,keyasint"`
	InstrPtr int    `cbor:"3,keyasint"`
	Ops      int    `cbor:"4,keyasint"`
	Halted   bool   `cbor:"5,keyasint"`
}

// State returns a copy of the machine's current state.
func (m *Machine) State() State {
	return State{
		Tape:     m.tape.Snapshot(),
		DataPtr:  m.dp,
		InstrPtr: m.ip,
		Ops:      m.ops,
		Halted:   m.halted,
	}
}

// stateEncMode uses canonical CBOR so that equal states encode identically.
var stateEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	stateEncMode = em
}

// EncodeState writes st to w as CBOR.
func EncodeState(w io.Writer, st State) error {
	return stateEncMode.NewEncoder(w).Encode(st)
}

// DecodeState reads one CBOR encoded State from r.
func DecodeState(r io.Reader) (st State, err error) {
	err = cbor.NewDecoder(r).Decode(&st)
	return st, err
}
