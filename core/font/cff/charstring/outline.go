package charstring

import (
	"math"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Outline traces the path drawn by commands in absolute coordinates,
// starting at (0, 0). Coordinates are rounded to 26.6 fixed point. Commands
// other than path construction operators are ignored.
//
// Composite operators are generalized first, therefore Outline fails on
// commands Generalize fails on.
func Outline(commands CommandList) ([]sfnt.Segment, error) {
	commands, err := generalize(commands, false)
	if err != nil {
		return nil, err
	}
	var x, y float64
	point := func(dx, dy float64) fixed.Point26_6 {
		x, y = x+dx, y+dy
		return fixed.Point26_6{X: to26_6(x), Y: to26_6(y)}
	}
	segs := make([]sfnt.Segment, 0, len(commands))
	for _, c := range commands {
		a, ok := c.values()
		if !ok {
			continue
		}
		switch {
		case c.Op == RMoveTo && len(a) == 2:
			segs = append(segs, sfnt.Segment{
				Op:   sfnt.SegmentOpMoveTo,
				Args: [3]fixed.Point26_6{point(a[0], a[1])},
			})
		case c.Op == RLineTo && len(a) == 2:
			segs = append(segs, sfnt.Segment{
				Op:   sfnt.SegmentOpLineTo,
				Args: [3]fixed.Point26_6{point(a[0], a[1])},
			})
		case c.Op == RRCurveTo && len(a) == 6:
			p1 := point(a[0], a[1])
			p2 := point(a[2], a[3])
			p3 := point(a[4], a[5])
			segs = append(segs, sfnt.Segment{
				Op:   sfnt.SegmentOpCubeTo,
				Args: [3]fixed.Point26_6{p1, p2, p3},
			})
		}
	}
	return segs, nil
}

func to26_6(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

// Equivalent checks if a and b draw the same path. Successive moves count
// as one. If preserveTopology is false, zero-length lines are ignored,
// curves with coinciding control points count as lines, and successive
// lines on the same horizontal or vertical axis count as one.
func Equivalent(a, b CommandList, preserveTopology bool) (bool, error) {
	oa, err := Outline(a)
	if err != nil {
		return false, err
	}
	ob, err := Outline(b)
	if err != nil {
		return false, err
	}
	na := normalizeOutline(oa, preserveTopology)
	nb := normalizeOutline(ob, preserveTopology)
	if len(na) != len(nb) {
		tracer().Debugf("outlines differ in length: %d vs %d", len(na), len(nb))
		return false, nil
	}
	for i := range na {
		if na[i] != nb[i] {
			tracer().Debugf("outlines differ at segment %d: %v vs %v", i, na[i], nb[i])
			return false, nil
		}
	}
	return true, nil
}

func normalizeOutline(segs []sfnt.Segment, preserveTopology bool) []sfnt.Segment {
	var cur fixed.Point26_6 // current point
	out := make([]sfnt.Segment, 0, len(segs))
	for _, s := range segs {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			if n := len(out); n > 0 && out[n-1].Op == sfnt.SegmentOpMoveTo {
				out = out[:n-1]
			}
			out = append(out, s)
			cur = s.Args[0]
			continue
		case sfnt.SegmentOpCubeTo:
			if !preserveTopology && s.Args[0] == cur && s.Args[1] == s.Args[2] {
				s = sfnt.Segment{Op: sfnt.SegmentOpLineTo, Args: [3]fixed.Point26_6{s.Args[2]}}
			} else {
				out = append(out, s)
				cur = s.Args[2]
				continue
			}
		}
		// s is a line from cur to end
		end := s.Args[0]
		if preserveTopology {
			out = append(out, s)
			cur = end
			continue
		}
		if end == cur {
			continue
		}
		if n := len(out); n > 0 && out[n-1].Op == sfnt.SegmentOpLineTo {
			start := previousPoint(out, n-1)
			prevEnd := out[n-1].Args[0]
			if sameAxis(start, prevEnd, end) {
				if end == start {
					out = out[:n-1]
				} else {
					out[n-1].Args[0] = end
				}
				cur = end
				continue
			}
		}
		out = append(out, s)
		cur = end
	}
	return out
}

// previousPoint returns the point segment i starts at.
func previousPoint(segs []sfnt.Segment, i int) fixed.Point26_6 {
	if i == 0 {
		return fixed.Point26_6{}
	}
	p := segs[i-1]
	if p.Op == sfnt.SegmentOpCubeTo {
		return p.Args[2]
	}
	return p.Args[0]
}

// sameAxis is true if a→b and b→c are both horizontal or both vertical.
func sameAxis(a, b, c fixed.Point26_6) bool {
	return (a.Y == b.Y && b.Y == c.Y) || (a.X == b.X && b.X == c.X)
}
