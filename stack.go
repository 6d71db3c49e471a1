package main

import "github.com/jcorbin/gobrain/internal/mem"

// boundedStack is a fixed-capacity LIFO of program addresses, used only while
// pairing brackets. Empty slots hold -1.
type boundedStack struct {
	slots mem.Ints
	n     int
}

func newBoundedStack(capacity int) boundedStack {
	return boundedStack{slots: mem.NewInts(capacity, -1)}
}

func (st *boundedStack) len() int { return st.n }

func (st *boundedStack) push(addr int) error {
	if st.n >= st.slots.Size() {
		return errStackFull
	}
	if prior, err := st.slots.Load(st.n); err != nil {
		return err
	} else if prior != st.slots.Fill() {
		return errSlotOccupied
	}
	if err := st.slots.Stor(st.n, addr); err != nil {
		return err
	}
	st.n++
	return nil
}

func (st *boundedStack) pop() (int, error) {
	if st.n == 0 {
		return -1, errStackEmpty
	}
	st.n--
	addr, err := st.slots.Load(st.n)
	if err != nil {
		return -1, err
	}
	return addr, st.slots.Stor(st.n, st.slots.Fill())
}
