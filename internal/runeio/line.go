package runeio

import "io"

// SkipLine reads and discards runes up to and including the next line feed.
// Returns io.EOF if the reader ends before any rune was read, and
// io.ErrUnexpectedEOF if it ends part way through a line.
func SkipLine(rr io.RuneReader) error {
	for n := 0; ; n++ {
		r, _, err := rr.ReadRune()
		if err == io.EOF {
			if n == 0 {
				return io.EOF
			}
			return io.ErrUnexpectedEOF
		} else if err != nil {
			return err
		}
		if r == '\n' {
			return nil
		}
	}
}
