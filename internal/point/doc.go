// Package point implements an immutable 2D point of float64 coordinates with
// vector addition, dot product and midpoint.
//
// Points are read as "x y" and written as "(x, y)", each coordinate using the
// shortest decimal form that parses back to the same float64.
package point
