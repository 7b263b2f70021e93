package point

import "strconv"

// Point is an (x, y) pair. Values are never mutated; operations return a new
// Point.
type Point struct {
	x, y float64
}

// New returns the point (x, y).
func New(x, y float64) Point { return Point{x: x, y: y} }

// X returns the x coordinate.
func (p Point) X() float64 { return p.x }

// Y returns the y coordinate.
func (p Point) Y() float64 { return p.y }

// Add returns the component-wise sum of p and o.
func (p Point) Add(o Point) Point {
	return Point{x: p.x + o.x, y: p.y + o.y}
}

// Dot returns x1*x2 + y1*y2.
func (p Point) Dot(o Point) float64 {
	return p.x*o.x + p.y*o.y
}

// Midpoint returns the component-wise average of p and o.
func (p Point) Midpoint(o Point) Point {
	return Point{x: (p.x + o.x) / 2, y: (p.y + o.y) / 2}
}

// String formats p as "(x, y)".
func (p Point) String() string {
	return "(" + FormatCoord(p.x) + ", " + FormatCoord(p.y) + ")"
}

// FormatCoord formats a single coordinate or scalar the way String does, so
// 4.0 prints as "4".
func FormatCoord(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
