package main

import "github.com/jcorbin/gobrain/internal/mem"

// jumpTable maps the address of every bracket to the address of its partner.
// Every other address holds -1.
type jumpTable struct{ mem.Ints }

// buildJumps pairs every '[' with its matching ']' in a single pass over the
// program, stopping at its terminating zero byte.
func buildJumps(prog Program) (jumpTable, error) {
	stack := newBoundedStack(prog.Size())
	return buildJumpsWith(prog, &stack)
}

// buildJumpsWith builds using the given stack, which a balanced program
// leaves empty.
func buildJumpsWith(prog Program, stack *boundedStack) (jumpTable, error) {
	jumps := jumpTable{mem.NewInts(prog.Size(), -1)}

	for addr := 0; addr < prog.Size(); addr++ {
		op, err := prog.code.Load(addr)
		if err != nil {
			return jumps, internalError{"build jumps", err}
		}
		if op == 0 {
			break
		}

		switch op {
		case '[':
			if err := stack.push(addr); err != nil {
				return jumps, internalError{"build jumps", err}
			}

		case ']':
			open, err := stack.pop()
			if err == errStackEmpty {
				return jumps, bracketError{addr, op}
			} else if err != nil {
				return jumps, internalError{"build jumps", err}
			}
			if err := jumps.Stor(open, addr); err != nil {
				return jumps, internalError{"build jumps", err}
			}
			if err := jumps.Stor(addr, open); err != nil {
				return jumps, internalError{"build jumps", err}
			}
		}
	}

	if stack.len() != 0 {
		// report the innermost unclosed bracket
		open, _ := stack.pop()
		return jumps, bracketError{open, '['}
	}
	return jumps, nil
}

// target returns the partner of the bracket at addr.
func (jumps jumpTable) target(addr int) (int, error) {
	to, err := jumps.Load(addr)
	if err != nil {
		return addr, boundsError{"instruction pointer", err}
	}
	if to < 0 {
		return addr, internalError{"jump", unresolvedError(addr)}
	}
	return to, nil
}
