package mem

// Bytes implements a fixed-capacity byte memory. All cells start out zero and
// the capacity never changes after construction.
type Bytes struct {
	cells []byte
}

// NewBytes allocates a zeroed byte memory of the given size.
func NewBytes(size int) Bytes {
	if size < 0 {
		size = 0
	}
	return Bytes{make([]byte, size)}
}

// Size returns the fixed capacity.
func (m Bytes) Size() int { return len(m.cells) }

// Load returns a single value from the given address.
// Returns a LimitError if addr is outside [0, Size).
func (m Bytes) Load(addr int) (byte, error) {
	if err := checkLimit(addr, 1, len(m.cells), "load"); err != nil {
		return 0, err
	}
	return m.cells[addr], nil
}

// LoadInto reads len(buf) bytes from memory starting at addr.
// Returns a LimitError if the range would exceed Size; no partial load is done.
func (m Bytes) LoadInto(addr int, buf []byte) error {
	if err := checkLimit(addr, len(buf), len(m.cells), "load"); err != nil {
		return err
	}
	copy(buf, m.cells[addr:])
	return nil
}

// Stor stores any values at addr.
// Returns a LimitError if the range would exceed Size; no partial store is done.
func (m Bytes) Stor(addr int, values ...byte) error {
	if err := checkLimit(addr, len(values), len(m.cells), "stor"); err != nil {
		return err
	}
	copy(m.cells[addr:], values)
	return nil
}

// Snapshot returns a copy of all cells.
func (m Bytes) Snapshot() []byte {
	return append([]byte(nil), m.cells...)
}
