package domain

import (
	"errors"
	"fmt"
)

// Error kinds returned by the value types. Compare with errors.Is.
var (
	// ErrInvalidDenominator is returned when a fraction would be given a zero
	// denominator, by construction, SetDen or parsing.
	ErrInvalidDenominator = errors.New("denominator cannot be zero")

	// ErrDivisionByZero is returned by Fraction.Div when the divisor's
	// numerator is zero.
	ErrDivisionByZero = errors.New("division by zero is not allowed")

	// ErrTrailingInput is returned by Parse when text holds more than the two
	// tokens of a value.
	ErrTrailingInput = errors.New("unexpected trailing input")
)

// ParseError reports a token stream that could not be read into a value.
type ParseError struct {
	Kind  InputKind
	Token int // zero-based index of the offending token
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: token %d: %v", e.Kind, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
