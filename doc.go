/* Package main: gobrain, a small tape machine

The machine has two fixed memories of the same capacity: a tape of byte cells,
all starting at zero, and a program of operator bytes. A data pointer selects
one tape cell; an instruction pointer selects one program byte. Execution reads
the operator under the instruction pointer, acts on it, and moves on to the
next byte.

Eight bytes make up the language:

	+  increment the current cell, wrapping 255 around to 0
	-  decrement the current cell, wrapping 0 around to 255
	>  move the data pointer right, stopping at the last cell
	<  move the data pointer left, stopping at the first cell
	[  if the current cell is zero, jump past the matching ]
	]  if the current cell is non-zero, jump past the matching [
	.  write the current cell to output
	,  halt

Every other byte halts the machine too, including the zero byte that ends any
program shorter than its capacity. A program that fills its whole capacity has
no such terminator: the instruction pointer stops on the last byte, which then
repeats until the operation limit cuts it off.

Brackets are all paired before anything runs, so a program with any unmatched
bracket is rejected outright rather than failing part way through.

Running is bounded by a maximum number of operations; reaching it is not an
error, the machine simply stops where it is.

Usage:

	gobrain [flags] [file ...]

Program text is read from the named files in order, or from stdin if there are
none. Anything that is not an operator is a comment.

With -debug every step is traced to the log, output is written as one 0xNN
line per byte, and a picture of both memories is printed before every step.
Stepping then waits for a line from stdin; once stdin runs out the machine runs
freely. Settings may also be loaded from a TOML file with -config, and the
final machine state may be saved as CBOR with -state-out.

*/
package main
