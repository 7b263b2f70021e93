// Package fraction implements an unreduced rational number.
//
// A Fraction is an integer numerator/denominator pair. Arithmetic combines
// operands by cross-multiplication and never reduces the result, so 2/4 and
// 1/2 compare equal but print differently. The denominator is never zero.
//
// # Text format
//
// Fractions are read as two whitespace-separated integers, "num den", either
// with [Parse] or from any token stream through [fmt.Fscan], and are written as
// "num/den" by [Fraction.String].
//
// # Limitations
//
//   - Ordering (Less, Greater, LessOrEqual, GreaterOrEqual) compares the
//     cross products directly and is only correct when both denominators are
//     positive. A negative denominator inverts the result.
//   - Integer products wrap on overflow.
package fraction
