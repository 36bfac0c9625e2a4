package charstring

// rewriteRule decomposes the arguments of a composite operator into
// canonical commands. It returns ErrArity if the number of arguments does
// not fit the operator.
type rewriteRule func(a []float64) (CommandList, error)

// rewriteTable maps every operator kind to its decomposition. kindOther has
// no rule: these commands are passed through unchanged.
var rewriteTable = [kindCount]rewriteRule{
	kindOther:      nil,
	kindRMoveTo:    rmoveto,
	kindHMoveTo:    hmoveto,
	kindVMoveTo:    vmoveto,
	kindRLineTo:    rlineto,
	kindHLineTo:    hlineto,
	kindVLineTo:    vlineto,
	kindRRCurveTo:  rrcurveto,
	kindHHCurveTo:  hhcurveto,
	kindVVCurveTo:  vvcurveto,
	kindHVCurveTo:  hvcurveto,
	kindVHCurveTo:  vhcurveto,
	kindRCurveLine: rcurveline,
	kindRLineCurve: rlinecurve,
}

func line(dx, dy float64) Command {
	return Cmd(RLineTo, dx, dy)
}

func curve(dxa, dya, dxb, dyb, dxc, dyc float64) Command {
	return Cmd(RRCurveTo, dxa, dya, dxb, dyb, dxc, dyc)
}

func rmoveto(a []float64) (CommandList, error) {
	if len(a) != 2 {
		return nil, ErrArity
	}
	return CommandList{Cmd(RMoveTo, a[0], a[1])}, nil
}

func hmoveto(a []float64) (CommandList, error) {
	if len(a) != 1 {
		return nil, ErrArity
	}
	return CommandList{Cmd(RMoveTo, a[0], 0)}, nil
}

func vmoveto(a []float64) (CommandList, error) {
	if len(a) != 1 {
		return nil, ErrArity
	}
	return CommandList{Cmd(RMoveTo, 0, a[0])}, nil
}

func rlineto(a []float64) (CommandList, error) {
	if len(a) == 0 || len(a)%2 != 0 {
		return nil, ErrArity
	}
	cl := make(CommandList, 0, len(a)/2)
	for i := 0; i < len(a); i += 2 {
		cl = append(cl, line(a[i], a[i+1]))
	}
	return cl, nil
}

func hlineto(a []float64) (CommandList, error) {
	return alternatingLines(a, true)
}

func vlineto(a []float64) (CommandList, error) {
	return alternatingLines(a, false)
}

// alternatingLines draws one line per argument, switching between horizontal
// and vertical. An odd number of arguments ends on the starting axis.
func alternatingLines(a []float64, horizontal bool) (CommandList, error) {
	if len(a) < 1 {
		return nil, ErrArity
	}
	cl := make(CommandList, 0, len(a))
	for _, s := range a {
		if horizontal {
			cl = append(cl, line(s, 0))
		} else {
			cl = append(cl, line(0, s))
		}
		horizontal = !horizontal
	}
	return cl, nil
}

func rrcurveto(a []float64) (CommandList, error) {
	if len(a) == 0 || len(a)%6 != 0 {
		return nil, ErrArity
	}
	cl := make(CommandList, 0, len(a)/6)
	for i := 0; i < len(a); i += 6 {
		cl = append(cl, curve(a[i], a[i+1], a[i+2], a[i+3], a[i+4], a[i+5]))
	}
	return cl, nil
}

func hhcurveto(a []float64) (CommandList, error) {
	if len(a) < 4 || len(a)%4 > 1 {
		return nil, ErrArity
	}
	cl := make(CommandList, 0, len(a)/4)
	if len(a)%2 == 1 { // leading dy1
		cl = append(cl, curve(a[1], a[0], a[2], a[3], a[4], 0))
		a = a[5:]
	}
	for ; len(a) >= 4; a = a[4:] {
		cl = append(cl, curve(a[0], 0, a[1], a[2], a[3], 0))
	}
	return cl, nil
}

func vvcurveto(a []float64) (CommandList, error) {
	if len(a) < 4 || len(a)%4 > 1 {
		return nil, ErrArity
	}
	cl := make(CommandList, 0, len(a)/4)
	if len(a)%2 == 1 { // leading dx1
		cl = append(cl, curve(a[0], a[1], a[2], a[3], 0, a[4]))
		a = a[5:]
	}
	for ; len(a) >= 4; a = a[4:] {
		cl = append(cl, curve(0, a[0], a[1], a[2], 0, a[3]))
	}
	return cl, nil
}

func hvcurveto(a []float64) (CommandList, error) {
	return alternatingCurves(a, true)
}

func vhcurveto(a []float64) (CommandList, error) {
	return alternatingCurves(a, false)
}

// alternatingCurves decomposes hvcurveto and vhcurveto. Curves alternate
// between starting horizontally and ending vertically, and the reverse.
// With an odd number of arguments the last curve takes 5 of them, the
// extra one being the final delta otherwise fixed to 0.
func alternatingCurves(a []float64, horizontal bool) (CommandList, error) {
	n := len(a)
	if n < 4 {
		return nil, ErrArity
	}
	switch n % 8 {
	case 0, 1, 4, 5:
	default:
		return nil, ErrArity
	}
	var last []float64
	if n%2 == 1 {
		a, last = a[:n-5], a[n-5:]
	}
	cl := make(CommandList, 0, n/4)
	for ; len(a) >= 4; a = a[4:] {
		if horizontal {
			cl = append(cl, curve(a[0], 0, a[1], a[2], 0, a[3]))
		} else {
			cl = append(cl, curve(0, a[0], a[1], a[2], a[3], 0))
		}
		horizontal = !horizontal
	}
	if last != nil {
		a = last
		if horizontal {
			cl = append(cl, curve(a[0], 0, a[1], a[2], a[4], a[3]))
		} else {
			cl = append(cl, curve(0, a[0], a[1], a[2], a[3], a[4]))
		}
	}
	return cl, nil
}

func rcurveline(a []float64) (CommandList, error) {
	if len(a) < 8 || (len(a)-2)%6 != 0 {
		return nil, ErrArity
	}
	cl, _ := rrcurveto(a[:len(a)-2])
	return append(cl, line(a[len(a)-2], a[len(a)-1])), nil
}

func rlinecurve(a []float64) (CommandList, error) {
	if len(a) < 8 || len(a)%2 != 0 {
		return nil, ErrArity
	}
	n := len(a) - 6
	cl, _ := rlineto(a[:n])
	return append(cl, curve(a[n], a[n+1], a[n+2], a[n+3], a[n+4], a[n+5])), nil
}
