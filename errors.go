package main

import (
	"errors"
	"fmt"
)

var (
	// ErrUnbalancedBrackets is returned when a program's brackets do not
	// pair up; such a program is never run.
	ErrUnbalancedBrackets = errors.New("unbalanced brackets")

	// ErrOutOfBounds is returned when a pointer falls outside of the tape or
	// program capacity.
	ErrOutOfBounds = errors.New("out of bounds")

	// ErrHalted is returned when stepping a machine that has already halted.
	ErrHalted = errors.New("execution already halted")

	// ErrInternal wraps faults that a correctly sized machine cannot produce.
	ErrInternal = errors.New("internal fault")
)

var (
	errStackFull    = errors.New("stack full")
	errStackEmpty   = errors.New("stack empty")
	errSlotOccupied = errors.New("stack slot occupied")
)

// bracketError locates an unmatched bracket within a program.
type bracketError struct {
	addr int
	op   byte
}

func (be bracketError) Error() string {
	return fmt.Sprintf("unbalanced brackets: unmatched %q @%v", be.op, be.addr)
}

func (be bracketError) Unwrap() error { return ErrUnbalancedBrackets }

// boundsError reports which machine pointer left its memory.
type boundsError struct {
	what string
	err  error
}

func (be boundsError) Error() string { return fmt.Sprintf("%v out of bounds: %v", be.what, be.err) }

func (be boundsError) Is(target error) bool { return target == ErrOutOfBounds }

func (be boundsError) Unwrap() error { return be.err }

// internalError wraps an unexpected fault with the operation that hit it.
type internalError struct {
	op  string
	err error
}

func (ie internalError) Error() string { return fmt.Sprintf("%v: internal fault: %v", ie.op, ie.err) }

func (ie internalError) Is(target error) bool { return target == ErrInternal }

func (ie internalError) Unwrap() error { return ie.err }

type unresolvedError int

func (addr unresolvedError) Error() string { return fmt.Sprintf("unresolved bracket @%v", int(addr)) }
