package align_test

import (
	"testing"

	"github.com/katalvlaran/inkstep/align"
	"github.com/katalvlaran/inkstep/core"
	"github.com/katalvlaran/inkstep/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stroke builds a stroke through the given xy pairs with 10ms spacing.
func stroke(xy ...float64) *core.Stroke {
	pts := make([]core.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		pts = append(pts, core.Point{Time: uint64(i * 5), X: xy[i], Y: xy[i+1]})
	}

	return core.NewStroke(pts)
}

func sampleSteps() []*core.Step {
	return []*core.Step{
		core.NewStep(0, []*core.Stroke{stroke(0, 0, 50, 0, 50, 40), stroke(80, 0, 80, 40)}),
		core.NewStep(1, []*core.Stroke{stroke(0, 300, 100, 330)}),
		core.NewStep(2, []*core.Stroke{stroke(0, 600, 40, 620, 0, 640), stroke(60, 600, 90, 640)}),
	}
}

func TestConfig_Strokes(t *testing.T) {
	cfg := align.DefaultConfig()
	s := stroke(0, 0, 0, 30, 30, 30)

	r, err := cfg.Strokes(s, s)
	require.NoError(t, err)
	assert.Equal(t, 0.0, r.Distance)
	for _, m := range r.Matches {
		assert.Equal(t, align.NoScore, m.Score, "point level carries no scores")
	}

	far := stroke(500, 500, 500, 530, 530, 530)
	r, err = cfg.Strokes(s, far)
	require.NoError(t, err)
	assert.Greater(t, r.Distance, 0.0)
}

// TestConfig_StrokesDot aligns a single-point stroke, which simplifies to
// nothing and so takes the empty-side distance.
func TestConfig_StrokesDot(t *testing.T) {
	cfg := align.DefaultConfig()
	dot := stroke(7, 7)
	vee := stroke(0, 0, 20, 30, 40, 0)
	require.Len(t, vee.Simplified(cfg.SimplifyThreshold), 3)

	r, err := cfg.Strokes(dot, vee)
	require.NoError(t, err)
	assert.Equal(t, 1.0/(3*align.DefaultPointGap), r.Distance)
	assert.Empty(t, r.Matches)

	r, err = cfg.Strokes(vee, dot)
	require.NoError(t, err)
	assert.Equal(t, 1.0/(3*align.DefaultPointGap), r.Distance)
}

// TestConfig_StepsSymmetric checks that stroke-level alignment gives the
// same distance in both directions, including steps whose strokes were
// written right to left and get reordered by x.
func TestConfig_StepsSymmetric(t *testing.T) {
	cfg := align.DefaultConfig()
	s := sampleSteps()
	rtl := core.NewStep(3, []*core.Stroke{
		stroke(200, 0, 240, 40),
		stroke(0, 0, 30, 0, 30, 30),
		stroke(100, 10, 100, 50, 120, 50),
	})

	pairs := [][2]*core.Step{{s[0], s[1]}, {s[2], rtl}, {s[0], rtl}}
	for i, p := range pairs {
		ab, err := cfg.Steps(p[0], p[1])
		require.NoError(t, err)
		ba, err := cfg.Steps(p[1], p[0])
		require.NoError(t, err)

		assert.Greater(t, ab.Distance, 0.0, "pair %d", i)
		assert.InDelta(t, ab.Distance, ba.Distance, 1e-12, "pair %d", i)
	}
}

func TestConfig_StepsEmptySide(t *testing.T) {
	cfg := align.DefaultConfig()
	empty := core.NewStep(0, nil)
	steps := sampleSteps()

	r, err := cfg.Steps(empty, steps[0])
	require.NoError(t, err)
	assert.Equal(t, 0.005, r.Distance, "1/(2 strokes * gap 100)")
	assert.Empty(t, r.Matches)
}

func TestConfig_StepsTranslationInvariant(t *testing.T) {
	cfg := align.DefaultConfig()
	s := sampleSteps()[0]
	moved := core.NewStep(0, []*core.Stroke{
		s.Strokes[0].Translate(geom.Point{X: 1000, Y: 250}),
		s.Strokes[1].Translate(geom.Point{X: 1000, Y: 250}),
	})

	r, err := cfg.Steps(s, moved)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, r.Distance, 1e-9)
}

func TestConfig_ProcessIdentical(t *testing.T) {
	cfg := align.DefaultConfig()
	a := sampleSteps()

	r, err := cfg.Process(a, a)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, r.Distance, 1e-9)
	require.Len(t, r.Matches, len(a))
	for i, m := range r.Matches {
		assert.Equal(t, align.Match{Left: i, Right: i, Score: 0}, m)
	}
}

// TestConfig_ProcessDoesNotMutate compares a split answer against a merged
// one, which exercises the join path, and checks the inputs afterwards.
func TestConfig_ProcessDoesNotMutate(t *testing.T) {
	cfg := align.DefaultConfig()
	a := sampleSteps()
	merged := []*core.Step{a[0].Join(a[1]).Join(a[2])}

	before := make([]int, len(a))
	for i, s := range a {
		before[i] = len(s.Strokes)
	}

	ab, err := cfg.Process(a, merged)
	require.NoError(t, err)
	ba, err := cfg.Process(merged, a)
	require.NoError(t, err)

	for i, s := range a {
		assert.Len(t, s.Strokes, before[i], "step %d", i)
	}
	assert.Len(t, merged[0].Strokes, 5)
	assert.Len(t, ab.Matches, 3)
	assert.Len(t, ba.Matches, 3)

	var joins int
	for _, m := range ab.Matches {
		joins += m.Joins
	}
	assert.LessOrEqual(t, joins, 2)
}

func TestConfig_Anchored(t *testing.T) {
	cfg := align.AnchoredConfig()
	require.NoError(t, cfg.Validate())
	a := sampleSteps()

	r, err := cfg.Process(a, a)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, r.Distance, 1e-9)
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, align.DefaultConfig().Validate())

	c := align.DefaultConfig()
	c.NormHeight = 0
	assert.ErrorIs(t, c.Validate(), align.ErrBadOptions)

	c = align.DefaultConfig()
	c.Stroke.GapCost = -1
	assert.ErrorIs(t, c.Validate(), align.ErrBadOptions)
}
