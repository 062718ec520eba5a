package core

import (
	"sync"

	"github.com/katalvlaran/inkstep/geom"
)

// normKey identifies one normalized-stroke cache entry.
type normKey struct {
	height float64
	sortX  bool
}

// Step is an answer step: strokes that share spatial and temporal locality.
//
// GroupID is the dense position of the step within its sheet; the segmenter
// reassigns it after merging. Strokes is owned by the step; use Join to build
// composite steps instead of appending to it.
type Step struct {
	GroupID int
	Strokes []*Stroke

	mu     sync.Mutex
	center *geom.Point
	norm   map[normKey][]*Stroke
}

// NewStep returns a step holding a copy of the strokes slice.
func NewStep(id int, strokes []*Stroke) *Step {
	return &Step{GroupID: id, Strokes: append([]*Stroke(nil), strokes...)}
}

// Bounds returns the bounding box over all points of all strokes.
// A step without points yields the zero Rect.
func (s *Step) Bounds() geom.Rect {
	var (
		r     geom.Rect
		found bool
	)
	for _, st := range s.Strokes {
		b, ok := geom.Bounds(st.XY())
		if !ok {
			continue
		}
		if !found {
			r, found = b, true
			continue
		}
		r = r.Union(b)
	}

	return r
}

// Center returns the mean of the stroke centers. The value is cached until
// ClearCache.
func (s *Step) Center() geom.Point {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.center == nil {
		cs := make([]geom.Point, len(s.Strokes))
		for i, st := range s.Strokes {
			cs[i] = st.Center()
		}
		c := geom.Centroid(cs)
		s.center = &c
	}

	return *s.center
}

// TimeSpan returns the start time of the last stroke minus the start time of
// the first stroke.
func (s *Step) TimeSpan() uint64 {
	if len(s.Strokes) == 0 {
		return 0
	}
	first, last := s.Strokes[0], s.Strokes[len(s.Strokes)-1]
	if first.Len() == 0 || last.Len() == 0 || last.Points[0].Time < first.Points[0].Time {
		return 0
	}

	return last.Points[0].Time - first.Points[0].Time
}

// Normalized returns the strokes rescaled so that the step's bounding box
// has the given height, each stroke moved to its own bounding-box origin.
// When sortX is set the strokes are ordered by center x first.
//
// A step whose bounding box has zero height is scaled by 1.
// The result is cached per (height, sortX) until ClearCache; callers must not
// modify it.
func (s *Step) Normalized(height float64, sortX bool) []*Stroke {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := normKey{height: height, sortX: sortX}
	if ns, ok := s.norm[key]; ok {
		return ns
	}

	scale := 1.0
	if h := s.Bounds().Height(); h > 0 {
		scale = height / h
	}

	strokes := s.Strokes
	if sortX {
		strokes = SortByCenterX(strokes)
	}

	ns := make([]*Stroke, len(strokes))
	for i, st := range strokes {
		sr := st.Bounds()
		pts := make([]Point, len(st.Points))
		for k, p := range st.Points {
			pts[k] = Point{Time: p.Time, X: (p.X - sr.Left) * scale, Y: (p.Y - sr.Top) * scale}
		}
		ns[i] = NewStroke(pts)
	}

	if s.norm == nil {
		s.norm = make(map[normKey][]*Stroke)
	}
	s.norm[key] = ns

	return ns
}

// ClearCache drops the cached center and normalized strokes.
func (s *Step) ClearCache() {
	s.mu.Lock()
	s.center = nil
	s.norm = nil
	s.mu.Unlock()
}

// Clone returns a step with the same GroupID and its own strokes slice.
// Strokes themselves are shared; they are read-only after loading.
func (s *Step) Clone() *Step {
	return NewStep(s.GroupID, s.Strokes)
}

// Join returns a new step holding s's strokes followed by translated copies
// of o's strokes. The copies are shifted so that o's bounding box starts at
// s's left edge with both vertical centers aligned, overlaying the two
// steps. Neither s nor o is modified.
func (s *Step) Join(o *Step) *Step {
	joined := s.Clone()
	if len(o.Strokes) == 0 {
		return joined
	}
	if len(s.Strokes) == 0 {
		joined.Strokes = append(joined.Strokes, o.Strokes...)
		return joined
	}

	org := s.Bounds()
	add := o.Bounds()
	offset := geom.Point{X: org.Left - add.Left, Y: org.MidY() - add.MidY()}
	for _, st := range o.Strokes {
		joined.Strokes = append(joined.Strokes, st.Translate(offset))
	}

	return joined
}
