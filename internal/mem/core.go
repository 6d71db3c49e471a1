package mem

import "fmt"

// LimitError indicates that a memory operation, like load or store, addressed
// outside of a fixed capacity.
type LimitError struct {
	Addr int
	Size int
	Op   string
}

func (lim LimitError) Error() string {
	return fmt.Sprintf("memory limit exceeded by %v @%v (size %v)", lim.Op, lim.Addr, lim.Size)
}

func checkLimit(addr, n, size int, op string) error {
	if addr < 0 || n < 0 || addr+n > size {
		return LimitError{addr + n - 1, size, op}
	}
	return nil
}
