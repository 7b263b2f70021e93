package fraction

import (
	"strconv"

	"fracpoint/internal/domain"
)

// Fraction is num/den with den != 0. The zero value is not a valid fraction;
// use Zero or New.
type Fraction struct {
	num int
	den int
}

// Zero returns 0/1.
func Zero() Fraction { return Fraction{num: 0, den: 1} }

// New returns num/den unreduced, or domain.ErrInvalidDenominator if den is 0.
func New(num, den int) (Fraction, error) {
	if den == 0 {
		return Fraction{}, domain.ErrInvalidDenominator
	}
	return Fraction{num: num, den: den}, nil
}

// Num returns the numerator.
func (f Fraction) Num() int { return f.num }

// Den returns the denominator.
func (f Fraction) Den() int { return f.den }

// SetNum replaces the numerator.
func (f *Fraction) SetNum(num int) { f.num = num }

// SetDen replaces the denominator. A zero den is rejected with
// domain.ErrInvalidDenominator and f is left unchanged.
func (f *Fraction) SetDen(den int) error {
	if den == 0 {
		return domain.ErrInvalidDenominator
	}
	f.den = den
	return nil
}

// Add returns f + o without reducing.
func (f Fraction) Add(o Fraction) Fraction {
	return Fraction{num: f.num*o.den + f.den*o.num, den: f.den * o.den}
}

// Sub returns f - o without reducing.
func (f Fraction) Sub(o Fraction) Fraction {
	return Fraction{num: f.num*o.den - f.den*o.num, den: f.den * o.den}
}

// Mul returns f * o without reducing.
func (f Fraction) Mul(o Fraction) Fraction {
	return Fraction{num: f.num * o.num, den: f.den * o.den}
}

// Div returns f / o without reducing. It fails with domain.ErrDivisionByZero
// when the numerator of o is zero.
func (f Fraction) Div(o Fraction) (Fraction, error) {
	if o.num == 0 {
		return Fraction{}, domain.ErrDivisionByZero
	}
	return Fraction{num: f.num * o.den, den: f.den * o.num}, nil
}

// AddAssign sets f to f + o and returns f.
func (f *Fraction) AddAssign(o Fraction) *Fraction {
	*f = f.Add(o)
	return f
}

// String formats f as "num/den".
func (f Fraction) String() string {
	return strconv.Itoa(f.num) + "/" + strconv.Itoa(f.den)
}
