package align

import (
	"math"

	"github.com/katalvlaran/inkstep/core"
	"github.com/katalvlaran/inkstep/geom"
)

// Config wires the three alignment levels together.
//
// Fields:
//   - Point             — options for point sequences of two strokes.
//   - Stroke            — options for stroke sequences of two steps.
//   - Step              — options for step sequences of two answers.
//   - SimplifyThreshold — RDP threshold applied before point alignment.
//   - NormHeight        — bounding-box height steps are normalized to.
type Config struct {
	Point             Options
	Stroke            Options
	Step              Options
	SimplifyThreshold float64
	NormHeight        float64
}

// DefaultConfig returns gaps 40/100/40, join weight 1.0, process scores
// scaled by 100, strict borders at the step level, simplification
// threshold 5 and normalizing height 100.
func DefaultConfig() Config {
	return Config{
		Point:  Options{GapCost: DefaultPointGap, JoinWeight: DefaultJoinWeight},
		Stroke: Options{GapCost: DefaultStrokeGap, JoinWeight: DefaultJoinWeight},
		Step: Options{
			GapCost:       DefaultStepGap,
			StrictBorders: true,
			JoinWeight:    DefaultJoinWeight,
			ScoreScale:    DefaultScoreScale,
		},
		SimplifyThreshold: DefaultSimplifyEps,
		NormHeight:        DefaultNormHeight,
	}
}

// AnchoredConfig is DefaultConfig with the point and stroke levels in
// Anchored mode.
func AnchoredConfig() Config {
	c := DefaultConfig()
	c.Point.Anchored = true
	c.Stroke.Anchored = true

	return c
}

// Validate checks all three levels and the geometric parameters.
func (c Config) Validate() error {
	for _, o := range []Options{c.Point, c.Stroke, c.Step} {
		if err := o.Validate(); err != nil {
			return err
		}
	}
	if math.IsNaN(c.SimplifyThreshold) || c.SimplifyThreshold < 0 {
		return ErrBadOptions
	}
	if !isFinite(c.NormHeight) || c.NormHeight <= 0 {
		return ErrBadOptions
	}

	return nil
}

// Points aligns two point sequences with Euclidean element cost.
func Points(a, b []geom.Point, opts Options) (Result, error) {
	return Sequences(a, b, euclidean, nil, opts)
}

func euclidean(p, q geom.Point) (float64, error) {
	return geom.Distance(p, q), nil
}

// Strokes aligns the simplified points of two strokes.
func (c Config) Strokes(s1, s2 *core.Stroke) (Result, error) {
	return Points(s1.Simplified(c.SimplifyThreshold), s2.Simplified(c.SimplifyThreshold), c.Point)
}

// Steps aligns the normalized, x-sorted strokes of two steps. A step with
// no strokes degrades to the empty-side distance with the stroke gap.
func (c Config) Steps(s1, s2 *core.Step) (Result, error) {
	return Sequences(
		s1.Normalized(c.NormHeight, true),
		s2.Normalized(c.NormHeight, true),
		c.strokeCost, nil, c.Stroke,
	)
}

// Process aligns two answers step by step, joining runs of skipped steps
// into composites (see core.Step.Join). The input steps are not mutated.
func (c Config) Process(a, b []*core.Step) (Result, error) {
	return Sequences(a, b, c.stepCost, joinSteps, c.Step)
}

func (c Config) strokeCost(a, b *core.Stroke) (float64, error) {
	r, err := c.Strokes(a, b)

	return r.Distance, err
}

func (c Config) stepCost(a, b *core.Step) (float64, error) {
	r, err := c.Steps(a, b)

	return r.Distance, err
}

func joinSteps(acc, next *core.Step) *core.Step {
	return acc.Join(next)
}
