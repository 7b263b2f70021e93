package fraction

// Equal reports whether f and o are the same rational value, so 1/2 equals 2/4.
func (f Fraction) Equal(o Fraction) bool {
	return f.num*o.den == f.den*o.num
}

// NotEqual is !f.Equal(o).
func (f Fraction) NotEqual(o Fraction) bool {
	return !f.Equal(o)
}

// Less compares f.num*o.den < f.den*o.num.
//
// The result is only meaningful when both denominators are positive; a
// negative denominator flips the comparison.
func (f Fraction) Less(o Fraction) bool {
	return f.num*o.den < f.den*o.num
}

// Greater compares f.num*o.den > f.den*o.num, with the same sign caveat as
// Less.
func (f Fraction) Greater(o Fraction) bool {
	return f.num*o.den > f.den*o.num
}

// LessOrEqual is !f.Greater(o).
func (f Fraction) LessOrEqual(o Fraction) bool {
	return !f.Greater(o)
}

// GreaterOrEqual is !f.Less(o).
func (f Fraction) GreaterOrEqual(o Fraction) bool {
	return !f.Less(o)
}
