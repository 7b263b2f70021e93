package types

// InputKind names the value type a token stream was being parsed into.
type InputKind string

const (
	// FractionInput is the "numerator denominator" integer pair.
	FractionInput InputKind = "fraction"
	// PointInput is the "x y" floating-point pair.
	PointInput InputKind = "point"
)

// String returns the string form of the input kind.
func (k InputKind) String() string { return string(k) }
