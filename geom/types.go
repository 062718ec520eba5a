package geom

import (
	"errors"
	"math"
)

// Sentinel errors for geometric operations.
var (
	// ErrNonFinite indicates a NaN or ±Inf coordinate.
	ErrNonFinite = errors.New("geom: coordinate is NaN or Inf")

	// ErrLengthMismatch indicates two vectors of different length.
	ErrLengthMismatch = errors.New("geom: vector lengths differ")
)

// Point is an untimed planar coordinate. It is a value type and is copied freely.
type Point struct {
	X, Y float64
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Len returns the Euclidean norm of p treated as a vector.
func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// Validate returns ErrNonFinite when either coordinate is NaN or ±Inf.
func (p Point) Validate() error {
	if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
		return ErrNonFinite
	}

	return nil
}

// Rect is an axis-aligned rectangle in screen orientation: Top <= Bottom,
// Left <= Right. The zero Rect is a degenerate box at the origin.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Width returns Right-Left.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns Bottom-Top.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Area returns Width*Height.
func (r Rect) Area() float64 { return r.Width() * r.Height() }

// MidY returns the vertical center of r.
func (r Rect) MidY() float64 { return (r.Top + r.Bottom) / 2.0 }

// Union returns the smallest Rect containing both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		Left:   math.Min(r.Left, o.Left),
		Top:    math.Min(r.Top, o.Top),
		Right:  math.Max(r.Right, o.Right),
		Bottom: math.Max(r.Bottom, o.Bottom),
	}
}
