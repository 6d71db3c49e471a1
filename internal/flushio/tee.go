package flushio

import "io"

// Tee returns a WriteFlusher that copies every write into each of wfs in
// order, stopping at the first failure. Nested tees are flattened and nils
// dropped; a single remaining writer is returned as is.
func Tee(wfs ...WriteFlusher) WriteFlusher {
	var all tee
	for _, wf := range wfs {
		switch impl := wf.(type) {
		case nil:
		case tee:
			all = append(all, impl...)
		default:
			all = append(all, impl)
		}
	}
	switch len(all) {
	case 0:
		return nil
	case 1:
		return all[0]
	}
	return all
}

type tee []WriteFlusher

func (t tee) Write(p []byte) (int, error) {
	for _, wf := range t {
		if n, err := wf.Write(p); err != nil {
			return n, err
		} else if n != len(p) {
			return n, io.ErrShortWrite
		}
	}
	return len(p), nil
}

// WriteByte hands b to each writer through WriteByte, so that single byte
// output stays allocation free behind a tee.
func (t tee) WriteByte(b byte) error {
	for _, wf := range t {
		if err := WriteByte(wf, b); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes every writer, returning the first error.
func (t tee) Flush() (err error) {
	for _, wf := range t {
		if ferr := wf.Flush(); err == nil {
			err = ferr
		}
	}
	return err
}
