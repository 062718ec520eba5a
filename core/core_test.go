package core_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/inkstep/core"
	"github.com/katalvlaran/inkstep/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// line builds a stroke of n evenly spaced points from (x0,y0) to (x1,y1)
// starting at time t0 with 10ms spacing.
func line(t0 uint64, x0, y0, x1, y1 float64, n int) *core.Stroke {
	pts := make([]core.Point, n)
	for i := 0; i < n; i++ {
		f := float64(i) / float64(n-1)
		pts[i] = core.Point{Time: t0 + uint64(i)*10, X: x0 + f*(x1-x0), Y: y0 + f*(y1-y0)}
	}

	return core.NewStroke(pts)
}

// TestStroke_DerivedAttributes checks center, bounds, length, density and duration.
func TestStroke_DerivedAttributes(t *testing.T) {
	s := line(100, 0, 0, 30, 40, 3)

	assert.Equal(t, geom.Point{X: 15, Y: 20}, s.Center())
	assert.Equal(t, geom.Rect{Left: 0, Top: 0, Right: 30, Bottom: 40}, s.Bounds())
	assert.InDelta(t, 50.0, s.Length(), 1e-9)
	assert.InDelta(t, 50.0/(30*40+1), s.Density(), 1e-12)
	assert.Equal(t, uint64(20), s.Duration())
}

// TestStroke_Curvature checks straight, right-angle and short strokes.
func TestStroke_Curvature(t *testing.T) {
	assert.Equal(t, 0.0, line(0, 0, 0, 1, 1, 2).Curvature(), "fewer than 3 points")

	// A straight line turns by 180° at every interior point: cos is strongly negative.
	straight := line(0, 0, 0, 100, 0, 3)
	assert.Less(t, straight.Curvature(), -0.9)

	// A right angle gives cos 0.
	corner := core.NewStroke([]core.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}})
	assert.InDelta(t, 0.0, corner.Curvature(), 1e-12)
}

// TestStroke_Validate rejects empty, non-finite and non-chronological strokes.
func TestStroke_Validate(t *testing.T) {
	assert.ErrorIs(t, core.NewStroke(nil).Validate(), core.ErrEmptyStroke)
	assert.ErrorIs(t, core.NewStroke([]core.Point{{X: math.NaN()}}).Validate(), core.ErrNonFinite)
	assert.ErrorIs(t, core.NewStroke([]core.Point{{Time: 5}, {Time: 4}}).Validate(), core.ErrNonChronological)
	assert.NoError(t, line(0, 0, 0, 1, 1, 4).Validate())
}

// TestStroke_SimplifiedCache verifies memoization and explicit invalidation.
func TestStroke_SimplifiedCache(t *testing.T) {
	s := line(0, 0, 0, 100, 0, 11)
	first := s.Simplified(5)
	require.Len(t, first, 2, "colinear stroke keeps endpoints")

	second := s.Simplified(5)
	assert.Same(t, &first[0], &second[0], "same threshold returns the cached slice")

	s.Points[5].Y = 50 // mutate, cache is now stale
	assert.Len(t, s.Simplified(5), 2, "stale cache until cleared")
	s.ClearCache()
	// The raised point and the two corners it creates now survive.
	assert.Len(t, s.Simplified(5), 5, "recomputed after ClearCache")
}

// TestSortByCenterX orders by center x and is stable.
func TestSortByCenterX(t *testing.T) {
	a := line(0, 50, 0, 60, 0, 2)
	b := line(0, 0, 0, 10, 0, 2)
	c := line(0, 0, 5, 10, 5, 2) // same center x as b
	got := core.SortByCenterX([]*core.Stroke{a, b, c})
	assert.Equal(t, []*core.Stroke{b, c, a}, got)
}

// TestStep_NormalizedAndJoin checks normalization scale and that Join never mutates inputs.
func TestStep_NormalizedAndJoin(t *testing.T) {
	s1 := core.NewStep(0, []*core.Stroke{line(0, 100, 100, 150, 150, 3)})
	s2 := core.NewStep(1, []*core.Stroke{line(50, 0, 0, 20, 10, 3)})

	ns := s1.Normalized(100, true)
	require.Len(t, ns, 1)
	assert.Equal(t, geom.Rect{Left: 0, Top: 0, Right: 100, Bottom: 100}, ns[0].Bounds(), "height 50 scaled to 100")
	assert.Equal(t, ns, s1.Normalized(100, true), "cached")

	j := s1.Join(s2)
	require.Len(t, j.Strokes, 2)
	assert.Len(t, s1.Strokes, 1, "receiver untouched")
	assert.Equal(t, 0.0, s2.Strokes[0].Points[0].X, "argument untouched")

	// s2 is overlaid from s1's left edge with vertical centers aligned.
	jb := j.Strokes[1].Bounds()
	assert.Equal(t, geom.Rect{Left: 100, Top: 120, Right: 120, Bottom: 130}, jb)
	assert.InDelta(t, s1.Bounds().MidY(), jb.MidY(), 1e-12)
	assert.Equal(t, s1.Bounds(), j.Bounds(), "a smaller joined step stays inside")
}

// TestStep_NormalizedFlat scales a zero-height step by 1.
func TestStep_NormalizedFlat(t *testing.T) {
	s := core.NewStep(0, []*core.Stroke{line(0, 10, 5, 40, 5, 4)})
	ns := s.Normalized(100, false)
	assert.Equal(t, geom.Rect{Left: 0, Top: 0, Right: 30, Bottom: 0}, ns[0].Bounds())
}

// TestSheet_Stats checks answer time, writing time, ratio and speed moments.
func TestSheet_Stats(t *testing.T) {
	// Stroke A: 12 points, 110ms, length 110 → speed 1.0
	// Stroke B: 12 points, 110ms, length 330 → speed 3.0
	// Stroke C: 3 points, excluded from speed statistics
	a := line(0, 0, 0, 110, 0, 12)
	b := line(1000, 0, 0, 330, 0, 12)
	c := line(2000, 0, 0, 5, 0, 3)
	sheet := core.NewSheet(0, "s0", []*core.Stroke{a, b, c})
	require.NoError(t, sheet.Validate())

	st, err := sheet.Stats()
	require.NoError(t, err)
	assert.Equal(t, uint64(2020), st.AnswerTime)
	assert.Equal(t, uint64(110+110+20), st.WritingTime)
	assert.InDelta(t, 240.0/2020.0, st.WritingRatio, 1e-12)
	assert.Equal(t, 2, st.SpeedSamples)
	assert.InDelta(t, 2.0, st.SpeedMean, 1e-9)
	assert.InDelta(t, 1.0, st.SpeedVar, 1e-9)
}

// TestSheet_Empty fails fast on an empty sheet.
func TestSheet_Empty(t *testing.T) {
	sheet := core.NewSheet(3, "empty", nil)
	_, err := sheet.AnswerTime()
	assert.ErrorIs(t, err, core.ErrEmptySheet)
	_, err = sheet.Stats()
	assert.ErrorIs(t, err, core.ErrEmptySheet)
	assert.ErrorIs(t, sheet.Validate(), core.ErrEmptySheet)
}
