package charstring

// Category classifies a vector by which of its components are zero.
// The letters double as prefixes of the operators the specializer uses
// internally, e.g. "hvcurveto" or the made-up "0hcurveto".
type Category byte

// Vector categories
const (
	CatRelative   Category = 'r' // both components non-zero
	CatHorizontal Category = 'h' // only x non-zero
	CatVertical   Category = 'v' // only y non-zero
	CatZero       Category = '0' // both components zero
)

func (c Category) String() string {
	return string(c)
}

// CategorizeVector returns the category of (dx, dy).
func CategorizeVector(dx, dy float64) Category {
	if dx == 0 {
		if dy == 0 {
			return CatZero
		}
		return CatVertical
	}
	if dy == 0 {
		return CatHorizontal
	}
	return CatRelative
}

// categorize returns the category of v = (dx, dy) together with the
// components needed to encode it: both for CatRelative, the non-zero one
// for h and v, and a single 0 for CatZero.
func categorize(v []float64) (Category, []float64) {
	c := CategorizeVector(v[0], v[1])
	switch c {
	case CatZero, CatHorizontal:
		return c, []float64{v[0]}
	case CatVertical:
		return c, []float64{v[1]}
	}
	return c, []float64{v[0], v[1]}
}

// mergeCategories returns the category satisfying both a and b, if any.
// A zero vector fits every category.
func mergeCategories(a, b Category) (Category, bool) {
	switch {
	case a == CatZero:
		return b, true
	case b == CatZero:
		return a, true
	case a == b:
		return a, true
	}
	return 0, false
}

// negateCategory swaps horizontal and vertical.
func negateCategory(c Category) Category {
	switch c {
	case CatHorizontal:
		return CatVertical
	case CatVertical:
		return CatHorizontal
	}
	return c
}
