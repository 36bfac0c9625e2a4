package charstring

import (
	"strconv"
	"strings"
)

// Operator is the name of a charstring operator, e.g. "rlineto".
// The empty Operator marks a command which carries data only.
type Operator string

// NoOp is the operator of data commands.
const NoOp Operator = ""

// Path construction operators of Type 2 charstrings.
const (
	RMoveTo    Operator = "rmoveto"
	HMoveTo    Operator = "hmoveto"
	VMoveTo    Operator = "vmoveto"
	RLineTo    Operator = "rlineto"
	HLineTo    Operator = "hlineto"
	VLineTo    Operator = "vlineto"
	RRCurveTo  Operator = "rrcurveto"
	HHCurveTo  Operator = "hhcurveto"
	VVCurveTo  Operator = "vvcurveto"
	HVCurveTo  Operator = "hvcurveto"
	VHCurveTo  Operator = "vhcurveto"
	RCurveLine Operator = "rcurveline"
	RLineCurve Operator = "rlinecurve"
)

// Mask operators. The token following a mask operator is its payload.
const (
	HintMask Operator = "hintmask"
	CntrMask Operator = "cntrmask"
)

// IsMask is true for hintmask and cntrmask.
func (op Operator) IsMask() bool {
	return op == HintMask || op == CntrMask
}

// opKind is a closed enumeration of the operators the rewrite table knows.
type opKind uint8

const (
	kindOther opKind = iota // unknown or not rewritten
	kindRMoveTo
	kindHMoveTo
	kindVMoveTo
	kindRLineTo
	kindHLineTo
	kindVLineTo
	kindRRCurveTo
	kindHHCurveTo
	kindVVCurveTo
	kindHVCurveTo
	kindVHCurveTo
	kindRCurveLine
	kindRLineCurve
	kindCount
)

func (op Operator) kind() opKind {
	switch op {
	case RMoveTo:
		return kindRMoveTo
	case HMoveTo:
		return kindHMoveTo
	case VMoveTo:
		return kindVMoveTo
	case RLineTo:
		return kindRLineTo
	case HLineTo:
		return kindHLineTo
	case VLineTo:
		return kindVLineTo
	case RRCurveTo:
		return kindRRCurveTo
	case HHCurveTo:
		return kindHHCurveTo
	case VVCurveTo:
		return kindVVCurveTo
	case HVCurveTo:
		return kindHVCurveTo
	case VHCurveTo:
		return kindVHCurveTo
	case RCurveLine:
		return kindRCurveLine
	case RLineCurve:
		return kindRLineCurve
	}
	return kindOther
}

// --- Tokens ----------------------------------------------------------------

// Token is an element of a charstring program: either a number or an operator.
type Token struct {
	op    Operator
	value float64
}

// Num creates a numeric token.
func Num(x float64) Token {
	return Token{value: x}
}

// Op creates an operator token.
func Op(op Operator) Token {
	return Token{op: op}
}

// Nums creates a slice of numeric tokens.
func Nums(x ...float64) []Token {
	t := make([]Token, len(x))
	for i, v := range x {
		t[i] = Num(v)
	}
	return t
}

// IsOperator is true if t is an operator token.
func (t Token) IsOperator() bool {
	return t.op != NoOp
}

// Operator returns the operator of t, or NoOp for numbers.
func (t Token) Operator() Operator {
	return t.op
}

// Value returns the numeric value of t, or 0 for operators.
func (t Token) Value() float64 {
	return t.value
}

func (t Token) String() string {
	if t.IsOperator() {
		return string(t.op)
	}
	return strconv.FormatFloat(t.value, 'g', -1, 64)
}

// Program is a flat sequence of tokens.
type Program []Token

func (p Program) String() string {
	var b strings.Builder
	for i, t := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
	}
	return b.String()
}

// ParseProgram reads a program in textual form, with tokens separated by
// white space. Anything parsing as a number is a number, anything else is
// an operator name.
func ParseProgram(s string) Program {
	fields := strings.Fields(s)
	p := make(Program, 0, len(fields))
	for _, f := range fields {
		if x, err := strconv.ParseFloat(f, 64); err == nil {
			p = append(p, Num(x))
		} else if n, err := strconv.ParseInt(f, 0, 64); err == nil { // hex mask payloads
			p = append(p, Num(float64(n)))
		} else {
			p = append(p, Op(Operator(f)))
		}
	}
	return p
}

// --- Commands --------------------------------------------------------------

// Command is an operator together with its arguments.
// Commands with operator NoOp carry data only: stray operands, mask
// payloads, or the remains of a malformed command.
type Command struct {
	Op   Operator
	Args []Token
}

// Cmd creates a command with numeric arguments.
func Cmd(op Operator, args ...float64) Command {
	return Command{Op: op, Args: Nums(args...)}
}

// values returns the arguments of c as numbers. ok is false if one of
// the arguments is an operator token.
func (c Command) values() (v []float64, ok bool) {
	v = make([]float64, len(c.Args))
	for i, a := range c.Args {
		if a.IsOperator() {
			return nil, false
		}
		v[i] = a.value
	}
	return v, true
}

func (c Command) String() string {
	var b strings.Builder
	b.WriteByte('(')
	if c.Op == NoOp {
		b.WriteString("-")
	} else {
		b.WriteString(string(c.Op))
	}
	b.WriteString(" [")
	for i, a := range c.Args {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(a.String())
	}
	b.WriteString("])")
	return b.String()
}

// CommandList is the structured form of a program all rewrites operate on.
type CommandList []Command

func (cl CommandList) String() string {
	var b strings.Builder
	for i, c := range cl {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.String())
	}
	return b.String()
}
