package charstring

import "math"

// escapeOperators are encoded with the two-byte escape sequence 12 x.
var escapeOperators = map[Operator]bool{
	"and": true, "or": true, "not": true, "abs": true, "add": true,
	"sub": true, "div": true, "neg": true, "eq": true, "drop": true,
	"put": true, "get": true, "ifelse": true, "random": true, "mul": true,
	"sqrt": true, "dup": true, "exch": true, "index": true, "roll": true,
	"hflex": true, "flex": true, "hflex1": true, "flex1": true,
}

// OperandLen returns the number of bytes needed to encode x as a Type 2
// charstring operand.
func OperandLen(x float64) int {
	if x != math.Trunc(x) {
		return 5 // 16.16 fixed
	}
	switch {
	case x >= -107 && x <= 107:
		return 1
	case x >= -1131 && x <= 1131:
		return 2
	case x >= -32768 && x <= 32767:
		return 3
	}
	return 5
}

// OperatorLen returns the number of bytes needed to encode op.
func OperatorLen(op Operator) int {
	if op == NoOp {
		return 0
	}
	if escapeOperators[op] {
		return 2
	}
	return 1
}

// EncodedLen estimates the size in bytes of the binary encoding of commands.
// Mask payloads are counted as if they were operands.
func EncodedLen(commands CommandList) int {
	n := 0
	for _, c := range commands {
		for _, a := range c.Args {
			if a.IsOperator() {
				n += OperatorLen(a.op)
			} else {
				n += OperandLen(a.value)
			}
		}
		n += OperatorLen(c.Op)
	}
	return n
}
