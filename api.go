package main

import (
	"context"
	"io"

	"github.com/jcorbin/gobrain/internal/mem"
	"github.com/jcorbin/gobrain/internal/panicerr"
)

// New builds a machine for prog, resolving all of its brackets up front.
// Returns an error wrapping ErrUnbalancedBrackets if any bracket is unmatched;
// such a program cannot be run.
func New(prog Program, opts ...MachineOption) (*Machine, error) {
	m := Machine{prog: prog}
	defaultOptions.apply(&m)
	MachineOptions(opts...).apply(&m)

	jumps, err := buildJumps(prog)
	if err != nil {
		return nil, err
	}
	m.jumps = jumps
	m.tape = mem.NewBytes(prog.Size())

	if m.logfn != nil {
		sample := make([]int, 20)
		if n := jumps.Size(); n < len(sample) {
			sample = sample[:n]
		}
		if err := jumps.LoadInto(0, sample); err != nil {
			return nil, internalError{"sample jumps", err}
		}
		m.logf("jumps sample: %v", sample)
	}

	return &m, nil
}

// Run steps the machine until it halts, or until it has executed its maximum
// number of operations, or until ctx is done. Reaching the operation limit is
// not an error: the machine simply stops being stepped, and its state remains
// as of the last executed operation.
func (m *Machine) Run(ctx context.Context) error {
	return panicerr.Recover("Machine", func() (rerr error) {
		defer func() {
			if ferr := m.out.Flush(); rerr == nil {
				rerr = ferr
			}
		}()
		return m.run(ctx)
	})
}

func (m *Machine) run(ctx context.Context) error {
	for !m.halted && m.ops < m.maxOps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := m.display(); err != nil {
			return err
		}
		if err := m.step(); err != nil {
			return err
		}
		m.ops++
	}
	return nil
}

// Step executes a single operation, ignoring the operation limit.
// Returns ErrHalted if the machine has already halted.
func (m *Machine) Step() error {
	if err := m.step(); err != nil {
		return err
	}
	m.ops++
	return m.out.Flush()
}

// Halted returns true once the machine has reached a halting operator.
func (m *Machine) Halted() bool { return m.halted }

// Ops returns the number of operations executed so far.
func (m *Machine) Ops() int { return m.ops }

// display writes a snapshot and waits for a line from the pacer, for those
// that are enabled. A pacer that runs out of input stops pacing.
func (m *Machine) display() error {
	if m.snapshots != nil {
		if err := m.out.Flush(); err != nil {
			return err
		}
		if _, err := io.WriteString(m.snapshots, m.Snapshot().String()); err != nil {
			return err
		}
	}
	if m.pacer != nil {
		if err := m.out.Flush(); err != nil {
			return err
		}
		if paced, err := m.pacer.Wait(); err != nil {
			return err
		} else if !paced {
			m.logf("pacer exhausted after %v lines, running freely", m.pacer.Lines())
			m.pacer = nil
		}
	}
	return nil
}

// WithOutput sets where the '.' operator writes.
func WithOutput(w io.Writer) MachineOption { return withOutput(w) }

// WithTee copies all output to w as well.
func WithTee(w io.Writer) MachineOption { return teeOption{w} }

// WithLogf enables per-step trace logging.
func WithLogf(logfn func(mess string, args ...interface{})) MachineOption { return withLogfn(logfn) }

// WithHexOutput makes '.' write each cell as a 0xNN line instead of a raw byte.
func WithHexOutput(enabled bool) MachineOption { return hexOutputOption(enabled) }

// WithMaxOps sets the operation limit for Run.
func WithMaxOps(n int) MachineOption { return withMaxOps(n) }

// WithSnapshots writes a state snapshot to w before every operation run.
func WithSnapshots(w io.Writer) MachineOption { return snapshotsOption{w} }

// WithSnapshotLayout sets the snapshot line length and the number of tape
// cells shown on each side of the data pointer.
func WithSnapshotLayout(lineLength, dataPadding int) MachineOption {
	return withSnapshotLayout(lineLength, dataPadding)
}

// WithPacer makes Run wait for a line from r before every operation.
func WithPacer(r io.Reader) MachineOption { return pacerOption{r} }
