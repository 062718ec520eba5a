package segment_test

import (
	"testing"

	"github.com/katalvlaran/inkstep/core"
	"github.com/katalvlaran/inkstep/segment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// line builds a 3-point stroke from (x0,y0) to (x1,y1) starting at t0.
func line(t0 uint64, x0, y0, x1, y1 float64) *core.Stroke {
	return core.NewStroke([]core.Point{
		{Time: t0, X: x0, Y: y0},
		{Time: t0 + 10, X: (x0 + x1) / 2, Y: (y0 + y1) / 2},
		{Time: t0 + 20, X: x1, Y: y1},
	})
}

// rect builds a single-stroke step spanning the given box.
func rect(id int, l, t, r, b float64) *core.Step {
	return core.NewStep(id, []*core.Stroke{line(0, l, t, r, b)})
}

// reworkSheet: A and B share a line, C starts a new line below,
// D returns to the first line far to the right.
func reworkSheet() (a, b, c, d *core.Stroke) {
	// centers: (50,50) (100,55) (50,400) (600,52)
	a = line(0, 0, 40, 100, 60)
	b = line(100, 80, 45, 120, 65)
	c = line(200, 0, 390, 100, 410)
	d = line(300, 580, 42, 620, 62)

	return a, b, c, d
}

func TestSplit_Threshold(t *testing.T) {
	a, b, c, d := reworkSheet()
	steps := segment.Split([]*core.Stroke{a, b, c, d}, segment.DefaultOptions())
	require.Len(t, steps, 3)
	assert.Equal(t, []*core.Stroke{a, b}, steps[0].Strokes)
	assert.Equal(t, []*core.Stroke{c}, steps[1].Strokes)
	assert.Equal(t, []*core.Stroke{d}, steps[2].Strokes)
	for i, s := range steps {
		assert.Equal(t, i, s.GroupID)
	}
}

func TestSegment_MergesRework(t *testing.T) {
	a, b, c, d := reworkSheet()
	steps, err := segment.Segment([]*core.Stroke{a, b, c, d}, segment.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, steps, 2)

	assert.Equal(t, []*core.Stroke{a, b, d}, steps[0].Strokes)
	assert.Equal(t, []*core.Stroke{c}, steps[1].Strokes)
	assert.Equal(t, 0, steps[0].GroupID)
	assert.Equal(t, 1, steps[1].GroupID, "ids are dense after merge")
}

func TestSegment_SingleStroke(t *testing.T) {
	a, _, _, _ := reworkSheet()
	steps, err := segment.Segment([]*core.Stroke{a}, segment.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, steps, 1)
	assert.Equal(t, 0, steps[0].GroupID)
}

func TestSegment_Errors(t *testing.T) {
	_, err := segment.Segment(nil, segment.DefaultOptions())
	assert.ErrorIs(t, err, segment.ErrNoStrokes)

	_, err = segment.Segment([]*core.Stroke{core.NewStroke(nil)}, segment.DefaultOptions())
	assert.ErrorIs(t, err, core.ErrEmptyStroke)

	bad := segment.DefaultOptions()
	bad.YWeight = 1
	_, err = segment.Segment([]*core.Stroke{line(0, 0, 0, 1, 1)}, bad)
	assert.ErrorIs(t, err, segment.ErrBadOptions)
}

// TestMerge_Idempotent: no pair of the output is mergeable, so a second
// pass changes nothing.
func TestMerge_Idempotent(t *testing.T) {
	a, b, c, d := reworkSheet()
	opts := segment.DefaultOptions()
	once, err := segment.Segment([]*core.Stroke{a, b, c, d}, opts)
	require.NoError(t, err)

	twice := segment.Merge(once, opts)
	require.Len(t, twice, len(once))
	for i := range once {
		assert.Equal(t, once[i].Strokes, twice[i].Strokes)
	}
	for i := range once {
		for k := i + 1; k < len(once); k++ {
			assert.False(t, segment.Mergeable(once[i], once[k], opts))
		}
	}
}

func TestMerge_DoesNotMutateInput(t *testing.T) {
	in := []*core.Step{rect(0, 0, 0, 100, 100), rect(1, 200, 10, 300, 90)}
	out := segment.Merge(in, segment.DefaultOptions())
	require.Len(t, out, 1)
	assert.Len(t, in, 2)
	assert.Len(t, in[0].Strokes, 1)
	assert.Len(t, out[0].Strokes, 2)
}

func TestMergeable(t *testing.T) {
	opts := segment.DefaultOptions()
	base := rect(0, 0, 0, 100, 100)

	tests := []struct {
		name  string
		other *core.Step
		want  bool
	}{
		{"overlap 0.5 is not enough", rect(1, 0, 50, 100, 150), false},
		{"overlap 0.7 merges", rect(1, 0, 30, 100, 130), true},
		{"contained extent", rect(1, 0, 20, 100, 40), true},
		{"touching edges do not overlap", rect(1, 0, 100, 100, 200), false},
		{"within horizontal reach", rect(1, 1050, 10, 1200, 90), true},
		{"beyond horizontal reach", rect(1, 1100, 10, 1200, 90), false},
		{"flat step inside band", rect(1, 10, 50, 90, 50), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, segment.Mergeable(base, tc.other, opts))
			assert.Equal(t, tc.want, segment.Mergeable(tc.other, base, opts), "symmetric")
		})
	}
}

func TestOptions_Validate(t *testing.T) {
	assert.NoError(t, segment.DefaultOptions().Validate())
	assert.InDelta(t, 1000.0, segment.DefaultOptions().MergeReach(), 1e-9)

	bad := segment.DefaultOptions()
	bad.Threshold = 0
	assert.ErrorIs(t, bad.Validate(), segment.ErrBadOptions)

	bad = segment.DefaultOptions()
	bad.OverlapY = 1.5
	assert.ErrorIs(t, bad.Validate(), segment.ErrBadOptions)
}
