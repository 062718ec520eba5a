package geom

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Distance returns the Euclidean distance between p and q.
// Complexity: O(1).
func Distance(p, q Point) float64 {
	return math.Sqrt((p.X-q.X)*(p.X-q.X) + (p.Y-q.Y)*(p.Y-q.Y))
}

// Manhattan returns |p.X-q.X| + |p.Y-q.Y|.
// Complexity: O(1).
func Manhattan(p, q Point) float64 {
	return math.Abs(p.X-q.X) + math.Abs(p.Y-q.Y)
}

// WeightedManhattan returns wx*|p.X-q.X| + wy*|p.Y-q.Y|.
//
// The segmenter uses wx = 1-wy so that a single threshold bounds the
// combined horizontal and vertical travel between two stroke centers.
// Complexity: O(1).
func WeightedManhattan(p, q Point, wx, wy float64) float64 {
	return math.Abs(p.X-q.X)*wx + math.Abs(p.Y-q.Y)*wy
}

// PerpendicularDistance returns the distance from p to the infinite line
// through a and b, computed as |(b-a) × (p-a)| / |b-a|.
//
// When a == b the line is undefined; the distance to a is returned instead,
// so closed strokes (first point == last point) still simplify.
// Complexity: O(1).
func PerpendicularDistance(p, a, b Point) float64 {
	vl := b.Sub(a)
	vp := p.Sub(a)
	l := vl.Len()
	if l == 0 {
		return vp.Len()
	}

	return math.Abs(vl.X*vp.Y-vl.Y*vp.X) / l
}

// CosineSimilarity returns a·b / (|a||b|). A zero-norm vector yields 0.
//
// Errors:
//   - ErrLengthMismatch if len(a) != len(b).
//
// Complexity: O(n).
func CosineSimilarity(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrLengthMismatch
	}
	na := floats.Norm(a, 2)
	nb := floats.Norm(b, 2)
	if na == 0 || nb == 0 {
		return 0, nil
	}

	return floats.Dot(a, b) / (na * nb), nil
}

// Bounds returns the bounding box of pts. An empty slice yields the zero Rect
// and ok=false.
// Complexity: O(n).
func Bounds(pts []Point) (r Rect, ok bool) {
	if len(pts) == 0 {
		return Rect{}, false
	}
	r = Rect{Left: pts[0].X, Top: pts[0].Y, Right: pts[0].X, Bottom: pts[0].Y}
	for _, p := range pts[1:] {
		if p.X < r.Left {
			r.Left = p.X
		}
		if p.Y < r.Top {
			r.Top = p.Y
		}
		if p.X > r.Right {
			r.Right = p.X
		}
		if p.Y > r.Bottom {
			r.Bottom = p.Y
		}
	}

	return r, true
}

// Centroid returns the arithmetic mean of pts, or the zero Point for an
// empty slice.
// Complexity: O(n).
func Centroid(pts []Point) Point {
	if len(pts) == 0 {
		return Point{}
	}
	var c Point
	for _, p := range pts {
		c.X += p.X
		c.Y += p.Y
	}
	n := float64(len(pts))

	return Point{X: c.X / n, Y: c.Y / n}
}
