// Package panicerr runs code such that a panic or runtime.Goexit comes back
// as an error instead of taking down the caller.
package panicerr

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// ErrGoexit is wrapped by the error returned when the recovered code called
// runtime.Goexit, e.g. through testing.T.FailNow inside a trace hook.
var ErrGoexit = errors.New("runtime.Goexit called")

// Error is a recovered panic, along with the stack that raised it.
type Error struct {
	Name  string
	Value interface{}
	Stack []byte
}

func (pe *Error) Error() string { return fmt.Sprint(pe) }

// Format prints the panic value; the %+v form appends the stack.
func (pe *Error) Format(f fmt.State, c rune) {
	if pe.Name == "" {
		fmt.Fprintf(f, "paniced: %v", pe.Value)
	} else {
		fmt.Fprintf(f, "%v paniced: %v", pe.Name, pe.Value)
	}
	if c == 'v' && f.Flag('+') {
		fmt.Fprintf(f, "\nPanic stack: %s", pe.Stack)
	}
}

// Unwrap returns the panic value if it was an error.
func (pe *Error) Unwrap() error {
	err, _ := pe.Value.(error)
	return err
}

// Recover runs f on its own goroutine and waits for it to finish. A panic
// comes back as an *Error; a runtime.Goexit as an error wrapping ErrGoexit.
func Recover(name string, f func() error) (err error) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		returned := false
		defer func() {
			if e := recover(); e != nil {
				err = &Error{Name: name, Value: e, Stack: debug.Stack()}
			} else if !returned {
				if name == "" {
					err = ErrGoexit
				} else {
					err = fmt.Errorf("%v: %w", name, ErrGoexit)
				}
			}
		}()
		err = f()
		returned = true
	}()
	<-done
	return err
}

// Stack returns the stack of a panic recovered somewhere within err's chain,
// or the empty string.
func Stack(err error) string {
	var pe *Error
	if errors.As(err, &pe) {
		return string(pe.Stack)
	}
	return ""
}
