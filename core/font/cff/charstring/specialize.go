package charstring

// The specializer works in passes, each producing a new sequence:
//
//  0. Generalize, unless switched off. Afterwards every path command draws
//     a single segment using rmoveto/rlineto/rrcurveto.
//  1. Combine successive rmoveto commands.
//  2. Categorize the vectors of moves, lines and curves into r/h/v/0 and
//     tag the segments accordingly. Besides the real operators this yields
//     made-up ones like '0lineto' or '0hcurveto', which simplify the
//     following passes.
//  3. Unless topology has to be preserved: demote '00curveto' to a line,
//     drop '0lineto' and fuse adjacent lines on the same axis.
//  4. Peephole: revert h/v/0 variants to rlineto/rrcurveto if sandwiched
//     between those, as then the segment may be combined with both.
//  5. Combine adjacent segments into one operator call, keeping the operand
//     count below maxStack.
//  6. Resolve made-up operators into real ones.

// shape is the kind of drawing a segment does.
type shape uint8

const (
	shapeOpaque    shape = iota // not a path segment, passed through
	shapeMove                   // rmoveto and variants
	shapeLine                   // rlineto and variants
	shapeCurve                  // rrcurveto and variants
	shapeCurveLine              // rcurveline
	shapeLineCurve              // rlinecurve
)

// segment is a path command during specialization.
//
// For moves and lines, c0 is the category of the vector, or the axis of the
// first line for combined hlineto/vlineto runs. For curves, c0 is the
// category of the first control vector and c1 the one of the last vector.
// Args hold only the components the categories leave open.
type segment struct {
	shape  shape
	c0, c1 Category
	args   []float64
	cmd    Command // for shapeOpaque
}

func (s segment) isLine(c Category) bool {
	return s.shape == shapeLine && s.c0 == c
}

func (s segment) isCurve(c0, c1 Category) bool {
	return s.shape == shapeCurve && s.c0 == c0 && s.c1 == c1
}

// Specialize re-encodes commands into a short equivalent command list.
//
// Options are IgnoreErrors, GeneralizeFirst, PreserveTopology and MaxStack.
// Consecutive moves are always merged into one. Unless PreserveTopology(true)
// is given, zero-length lines are removed and adjacent lines on the same
// axis are fused. The result draws the same path as the input.
func Specialize(commands CommandList, opts ...Option) (CommandList, error) {
	conf, err := makeConfig(opts)
	if err != nil {
		return nil, err
	}
	n := len(commands)
	if conf.generalizeFirst {
		if commands, err = generalize(commands, conf.ignoreErrors); err != nil {
			return nil, err
		}
	}
	commands = mergeMoves(commands)
	segs := categorizeSegments(commands)
	if !conf.preserveTopology {
		segs = dropRedundant(segs)
	}
	segs = peephole(segs)
	segs = combine(segs, conf.maxStack)
	result := resolve(segs)
	tracer().Debugf("specialized %d commands into %d", n, len(result))
	return result, nil
}

// SpecializeProgram is Specialize for programs.
func SpecializeProgram(p Program, opts ...Option) (Program, error) {
	commands, err := ToCommands(p)
	if err != nil {
		return nil, err
	}
	if commands, err = Specialize(commands, opts...); err != nil {
		return nil, err
	}
	return ToProgram(commands), nil
}

// --- Pass 1 ----------------------------------------------------------------

func moveDelta(c Command) ([]float64, bool) {
	if c.Op != RMoveTo || len(c.Args) != 2 {
		return nil, false
	}
	return c.values()
}

// mergeMoves fuses adjacent rmoveto commands, scanning from right to left.
func mergeMoves(commands CommandList) CommandList {
	reversed := make(CommandList, 0, len(commands))
	for i := len(commands) - 1; i >= 0; i-- {
		c := commands[i]
		if len(reversed) > 0 {
			if v1, ok := moveDelta(c); ok {
				if v2, ok := moveDelta(reversed[len(reversed)-1]); ok {
					reversed[len(reversed)-1] = Cmd(RMoveTo, v1[0]+v2[0], v1[1]+v2[1])
					continue
				}
			}
		}
		reversed = append(reversed, c)
	}
	return reverse(reversed)
}

func reverse[T any](s []T) []T {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
	return s
}

// --- Pass 2 ----------------------------------------------------------------

func categorizeSegments(commands CommandList) []segment {
	segs := make([]segment, 0, len(commands))
	for _, c := range commands {
		segs = append(segs, categorizeCommand(c))
	}
	return segs
}

func categorizeCommand(c Command) segment {
	opaque := segment{shape: shapeOpaque, cmd: c}
	args, ok := c.values()
	if !ok {
		return opaque
	}
	switch {
	case c.Op == RMoveTo && len(args) == 2:
		cat, a := categorize(args)
		return segment{shape: shapeMove, c0: cat, args: a}
	case c.Op == RLineTo && len(args) == 2:
		cat, a := categorize(args)
		return segment{shape: shapeLine, c0: cat, args: a}
	case c.Op == RRCurveTo && len(args) == 6:
		c0, a0 := categorize(args[:2])
		c1, a1 := categorize(args[4:])
		a := make([]float64, 0, 6)
		a = append(a, a0...)
		a = append(a, args[2:4]...)
		a = append(a, a1...)
		return segment{shape: shapeCurve, c0: c0, c1: c1, args: a}
	}
	return opaque
}

// --- Pass 3 ----------------------------------------------------------------

// dropRedundant removes segments not contributing to the drawing.
func dropRedundant(segs []segment) []segment {
	reversed := make([]segment, 0, len(segs))
	for i := len(segs) - 1; i >= 0; i-- {
		s := segs[i]
		if s.isCurve(CatZero, CatZero) { // a straight line in disguise
			cat, a := categorize(s.args[1:3])
			s = segment{shape: shapeLine, c0: cat, args: a}
		}
		if s.isLine(CatZero) {
			continue
		}
		if s.isLine(CatHorizontal) || s.isLine(CatVertical) {
			if n := len(reversed); n > 0 && reversed[n-1].isLine(s.c0) && len(reversed[n-1].args) == 1 {
				sum := s.args[0] + reversed[n-1].args[0]
				if sum == 0 {
					reversed = reversed[:n-1]
				} else {
					reversed[n-1] = segment{shape: shapeLine, c0: s.c0, args: []float64{sum}}
				}
				continue
			}
		}
		reversed = append(reversed, s)
	}
	return reverse(reversed)
}

// --- Pass 4 ----------------------------------------------------------------

// peephole reverts specialized segments between two general ones back to
// the general form. This costs at most a byte, but the segment may then be
// combined with both neighbours.
func peephole(segs []segment) []segment {
	out := make([]segment, 0, len(segs))
	for i, s := range segs {
		if i == 0 || i == len(segs)-1 {
			out = append(out, s)
			continue
		}
		prev, next := out[i-1], segs[i+1]
		switch {
		case s.shape == shapeLine && s.c0 != CatRelative &&
			prev.isLine(CatRelative) && next.isLine(CatRelative):
			a := []float64{s.args[0], 0}
			if s.c0 == CatVertical {
				a = []float64{0, s.args[0]}
			}
			s = segment{shape: shapeLine, c0: CatRelative, args: a}
		case s.shape == shapeCurve && len(s.args) == 5 &&
			prev.isCurve(CatRelative, CatRelative) && next.isCurve(CatRelative, CatRelative):
			var pos int
			switch {
			case s.c0 == CatVertical:
				pos = 0
			case s.c0 != CatRelative:
				pos = 1
			case s.c1 == CatVertical:
				pos = 4
			default:
				pos = 5
			}
			a := make([]float64, 0, 6)
			a = append(a, s.args[:pos]...)
			a = append(a, 0)
			a = append(a, s.args[pos:]...)
			s = segment{shape: shapeCurve, c0: CatRelative, c1: CatRelative, args: a}
		}
		out = append(out, s)
	}
	return out
}

// --- Pass 5 ----------------------------------------------------------------

// combine merges neighbouring segments, right to left, as long as the
// operand count of a combined call stays below maxStack.
func combine(segs []segment, maxStack int) []segment {
	if len(segs) == 0 {
		return segs
	}
	reversed := make([]segment, 0, len(segs))
	acc := segs[len(segs)-1]
	for i := len(segs) - 2; i >= 0; i-- {
		s := segs[i]
		if merged, ok := combinePair(s, acc); ok && len(s.args)+len(acc.args) < maxStack {
			merged.args = make([]float64, 0, len(s.args)+len(acc.args))
			merged.args = append(merged.args, s.args...)
			merged.args = append(merged.args, acc.args...)
			acc = merged
			continue
		}
		reversed = append(reversed, acc)
		acc = s
	}
	reversed = append(reversed, acc)
	return reverse(reversed)
}

// combinePair checks if a single segment a may be prepended to segment b,
// which may be the result of earlier combinations. It returns the shape and
// categories of the combined segment, without arguments.
func combinePair(a, b segment) (segment, bool) {
	general := func(s segment) bool {
		return s.isLine(CatRelative) || s.isCurve(CatRelative, CatRelative)
	}
	switch {
	case general(a) && general(b):
		if a.shape == b.shape {
			return segment{shape: a.shape, c0: a.c0, c1: a.c1}, true
		}
		if b.shape == shapeCurve && len(b.args) == 6 {
			return segment{shape: shapeLineCurve}, true
		}
		if b.shape == shapeLine && len(b.args) == 2 {
			return segment{shape: shapeCurveLine}, true
		}
	case a.isLine(CatRelative) && b.shape == shapeLineCurve:
		return segment{shape: shapeLineCurve}, true
	case a.isCurve(CatRelative, CatRelative) && b.shape == shapeCurveLine:
		return segment{shape: shapeCurveLine}, true
	case a.shape == shapeLine && b.shape == shapeLine:
		if (a.c0 == CatHorizontal && b.c0 == CatVertical) || (a.c0 == CatVertical && b.c0 == CatHorizontal) {
			return segment{shape: shapeLine, c0: a.c0}, true
		}
	case a.shape == shapeCurve && b.shape == shapeCurve:
		return combineCurves(a, b)
	}
	return segment{}, false
}

// combineCurves merges curve categories. The combined categories are the
// start vector of a and the first end vector of the run, as the operators
// hhcurveto, vvcurveto, hvcurveto and vhcurveto need them.
func combineCurves(a, b segment) (segment, bool) {
	d0, d1 := a.c0, a.c1
	d2, d3 := b.c0, b.c1
	if d1 == CatRelative || d2 == CatRelative || (d0 == CatRelative && d3 == CatRelative) {
		return segment{}, false
	}
	d, ok := mergeCategories(d1, d2)
	if !ok {
		return segment{}, false
	}
	switch {
	case d0 == CatRelative:
		if d, ok = mergeCategories(d, d3); !ok {
			return segment{}, false
		}
		return segment{shape: shapeCurve, c0: CatRelative, c1: d}, true
	case d3 == CatRelative:
		if d0, ok = mergeCategories(d0, negateCategory(d)); !ok {
			return segment{}, false
		}
		return segment{shape: shapeCurve, c0: d0, c1: CatRelative}, true
	}
	if d0, ok = mergeCategories(d0, d3); !ok {
		return segment{}, false
	}
	return segment{shape: shapeCurve, c0: d0, c1: d}, true
}

// --- Pass 6 ----------------------------------------------------------------

func resolve(segs []segment) CommandList {
	commands := make(CommandList, 0, len(segs))
	for _, s := range segs {
		commands = append(commands, resolveSegment(s))
	}
	return commands
}

func resolveSegment(s segment) Command {
	switch s.shape {
	case shapeMove:
		return Command{Op: axisOperator(s.c0, RMoveTo, HMoveTo, VMoveTo), Args: Nums(s.args...)}
	case shapeLine:
		return Command{Op: axisOperator(s.c0, RLineTo, HLineTo, VLineTo), Args: Nums(s.args...)}
	case shapeCurveLine:
		return Command{Op: RCurveLine, Args: Nums(s.args...)}
	case shapeLineCurve:
		return Command{Op: RLineCurve, Args: Nums(s.args...)}
	case shapeCurve:
		return resolveCurve(s)
	}
	return s.cmd
}

// axisOperator selects the operator for category c. A zero vector is
// encoded as horizontal.
func axisOperator(c Category, r, h, v Operator) Operator {
	switch c {
	case CatRelative:
		return r
	case CatVertical:
		return v
	}
	return h
}

func resolveCurve(s segment) Command {
	args := s.args
	op0, op1 := s.c0, s.c1
	switch {
	case op0 == CatRelative && op1 == CatRelative:
		return Command{Op: RRCurveTo, Args: Nums(args...)}
	default:
		if op0 == CatZero {
			op0 = CatHorizontal
		}
		if op1 == CatZero {
			op1 = CatHorizontal
		}
		if op0 == CatRelative {
			op0 = op1
		}
		if op1 == CatRelative {
			op1 = negateCategory(op0)
		}
	}
	l := len(args)
	if l%2 == 1 {
		args = append([]float64(nil), args...)
		if op0 != op1 { // hvcurveto, vhcurveto: trailing scalar
			if (op0 == CatHorizontal) != (l%8 == 1) {
				args[l-2], args[l-1] = args[l-1], args[l-2]
			}
		} else if op0 == CatHorizontal { // hhcurveto: leading dy1
			args[0], args[1] = args[1], args[0]
		}
	}
	var op Operator
	switch {
	case op0 == CatHorizontal && op1 == CatHorizontal:
		op = HHCurveTo
	case op0 == CatVertical && op1 == CatVertical:
		op = VVCurveTo
	case op0 == CatHorizontal:
		op = HVCurveTo
	default:
		op = VHCurveTo
	}
	return Command{Op: op, Args: Nums(args...)}
}
