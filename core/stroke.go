package core

import (
	"fmt"
	"slices"
	"sync"

	"github.com/katalvlaran/inkstep/geom"
	"github.com/katalvlaran/inkstep/simplify"
)

// Stroke is one continuous pen-down gesture.
//
// Points must not be modified after the first call to Simplified; call
// ClearCache if they are.
type Stroke struct {
	Points []Point

	mu         sync.Mutex
	simplified []geom.Point // cached RDP result, nil when not computed
	simplThres float64      // threshold the cache was computed for
}

// NewStroke wraps pts (not copied) in a Stroke.
func NewStroke(pts []Point) *Stroke {
	return &Stroke{Points: pts}
}

// Len returns the number of points.
func (s *Stroke) Len() int { return len(s.Points) }

// XY returns the untimed coordinates in point order.
func (s *Stroke) XY() []geom.Point {
	out := make([]geom.Point, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.XY()
	}

	return out
}

// Center returns the center of mass of the points (zero Point if empty).
func (s *Stroke) Center() geom.Point {
	return geom.Centroid(s.XY())
}

// Bounds returns the bounding box of the points (zero Rect if empty).
func (s *Stroke) Bounds() geom.Rect {
	r, _ := geom.Bounds(s.XY())

	return r
}

// Length returns the polyline length.
func (s *Stroke) Length() float64 {
	l := 0.0
	for i := 0; i+1 < len(s.Points); i++ {
		l += geom.Distance(s.Points[i].XY(), s.Points[i+1].XY())
	}

	return l
}

// Density returns Length / (bounding-box area + 1).
func (s *Stroke) Density() float64 {
	return s.Length() / (s.Bounds().Area() + 1.0)
}

// Curvature returns the mean smoothed cosine of the turning angle over the
// interior points: v1·v2 / ((|v1|+1)(|v2|+1)) with v1, v2 pointing from the
// interior point to its neighbours. Strokes with fewer than 3 points yield 0.
func (s *Stroke) Curvature() float64 {
	n := len(s.Points)
	if n < 3 {
		return 0
	}
	cos := 0.0
	for i := 1; i < n-1; i++ {
		c := s.Points[i].XY()
		v1 := s.Points[i-1].XY().Sub(c)
		v2 := s.Points[i+1].XY().Sub(c)
		cos += (v1.X*v2.X + v1.Y*v2.Y) / ((v1.Len() + 1.0) * (v2.Len() + 1.0))
	}

	return cos / float64(n-2)
}

// Duration returns last point time minus first point time (0 if empty or
// if times decrease).
func (s *Stroke) Duration() uint64 {
	if len(s.Points) == 0 {
		return 0
	}
	first, last := s.Points[0].Time, s.Points[len(s.Points)-1].Time
	if last < first {
		return 0
	}

	return last - first
}

// Validate checks that the stroke is non-empty, finite and chronological.
func (s *Stroke) Validate() error {
	if len(s.Points) == 0 {
		return ErrEmptyStroke
	}
	for i, p := range s.Points {
		if p.XY().Validate() != nil {
			return fmt.Errorf("point %d: %w", i, ErrNonFinite)
		}
		if i > 0 && p.Time < s.Points[i-1].Time {
			return fmt.Errorf("point %d: %w", i, ErrNonChronological)
		}
	}

	return nil
}

// Simplified returns the RDP-simplified points for threshold dthres.
// The result is cached per stroke; a call with a different threshold
// recomputes it. The returned slice is shared and must not be modified.
func (s *Stroke) Simplified(dthres float64) []geom.Point {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.simplified == nil || s.simplThres != dthres {
		s.simplified = simplify.RDP(s.XY(), dthres)
		s.simplThres = dthres
	}

	return s.simplified
}

// ClearCache drops the simplification cache.
func (s *Stroke) ClearCache() {
	s.mu.Lock()
	s.simplified = nil
	s.mu.Unlock()
}

// Translate returns a new stroke with every point shifted by d.
func (s *Stroke) Translate(d geom.Point) *Stroke {
	pts := make([]Point, len(s.Points))
	for i, p := range s.Points {
		pts[i] = Point{Time: p.Time, X: p.X + d.X, Y: p.Y + d.Y}
	}

	return NewStroke(pts)
}

// SortByCenterX returns a copy of strokes ordered by the x coordinate of
// their centers. Equal centers keep their input order.
func SortByCenterX(strokes []*Stroke) []*Stroke {
	type keyed struct {
		s *Stroke
		x float64
	}
	ks := make([]keyed, len(strokes))
	for i, s := range strokes {
		ks[i] = keyed{s: s, x: s.Center().X}
	}
	slices.SortStableFunc(ks, func(a, b keyed) int {
		switch {
		case a.x < b.x:
			return -1
		case a.x > b.x:
			return 1
		}

		return 0
	})
	out := make([]*Stroke, len(ks))
	for i, k := range ks {
		out[i] = k.s
	}

	return out
}
