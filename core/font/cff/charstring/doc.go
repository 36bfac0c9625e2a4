/*
Package charstring rewrites Type 2 charstring programs, the path-drawing
bytecode used for CFF and CFF2 glyph outlines.

A charstring is a flat sequence of numeric operands, each group followed by
the operator consuming it. Type 2 has many operators which draw the same
segments in different ways: an `hlineto` run alternates horizontal and
vertical lines, an `hvcurveto` run alternates curves with horizontal and
vertical tangents, and so on. This package works in two directions:

▪︎ Generalize decomposes every composite operator into the three canonical
operators rmoveto (2 operands), rlineto (2 operands) and rrcurveto (6 operands).

▪︎ Specialize re-encodes a canonical program into the shortest equivalent form
it can find, combining neighbouring segments into one operator call as long
as the operand stack limit permits.

Both work on a CommandList, the structured form of a Program. Decoding binary
charstrings into a Program, and encoding Programs back to bytes, is left to
clients.

	prog := charstring.ParseProgram("10 20 rmoveto 30 0 rlineto 0 40 rlineto")
	small, err := charstring.SpecializeProgram(prog)
	// small is "10 20 rmoveto 30 40 hlineto"

Operations are pure functions; all tables are read-only and may be used from
concurrent goroutines.

# Status

The specializer produces byte-minimal output for the usual outlines, except
possibly for one byte each time the stack limit prohibits combining. Blend
operands of CFF2 variable fonts are not supported.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package charstring

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'tyse.fonts'
func tracer() tracing.Trace {
	return tracing.Select("tyse.fonts")
}
