package mem

// Ints implements a fixed-capacity integer memory whose cells all start out
// at a given fill value.
type Ints struct {
	cells []int
	fill  int
}

// NewInts allocates an integer memory of the given size, with every cell set
// to fill.
func NewInts(size, fill int) Ints {
	if size < 0 {
		size = 0
	}
	m := Ints{make([]int, size), fill}
	m.Reset()
	return m
}

// Size returns the fixed capacity.
func (m Ints) Size() int { return len(m.cells) }

// Fill returns the value that unset cells hold.
func (m Ints) Fill() int { return m.fill }

// Reset sets every cell back to the fill value.
func (m Ints) Reset() {
	for i := range m.cells {
		m.cells[i] = m.fill
	}
}

// Load returns a single value from the given address.
// Returns a LimitError if addr is outside [0, Size).
func (m Ints) Load(addr int) (int, error) {
	if err := checkLimit(addr, 1, len(m.cells), "load"); err != nil {
		return m.fill, err
	}
	return m.cells[addr], nil
}

// LoadInto reads len(buf) integers from memory starting at addr.
// Returns a LimitError if the range would exceed Size; no partial load is done.
func (m Ints) LoadInto(addr int, buf []int) error {
	if err := checkLimit(addr, len(buf), len(m.cells), "load"); err != nil {
		return err
	}
	copy(buf, m.cells[addr:])
	return nil
}

// Stor stores any values at addr.
// Returns a LimitError if the range would exceed Size; no partial store is done.
func (m Ints) Stor(addr int, values ...int) error {
	if err := checkLimit(addr, len(values), len(m.cells), "stor"); err != nil {
		return err
	}
	copy(m.cells[addr:], values)
	return nil
}
