package segment

import (
	"fmt"

	"github.com/katalvlaran/inkstep/core"
	"github.com/katalvlaran/inkstep/geom"
)

// Segment splits strokes into answer steps (Split) and then merges rework
// (Merge). Strokes must be in chronological order.
//
// Stage 1 (Validate): options, non-empty input, every stroke valid.
// Stage 2 (Execute): Split, then Merge.
// Stage 3 (Finalize): GroupIDs are dense in output order.
//
// Complexity: O(S + K³) for S strokes and K initial steps.
func Segment(strokes []*core.Stroke, opts Options) ([]*core.Step, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if len(strokes) == 0 {
		return nil, ErrNoStrokes
	}
	for i, s := range strokes {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("Segment: stroke %d: %w", i, err)
		}
	}

	return Merge(Split(strokes, opts), opts), nil
}

// Split is the threshold pass: a new step starts whenever the weighted
// Manhattan distance between consecutive stroke centers exceeds
// opts.Threshold. It assumes validated, non-empty input.
func Split(strokes []*core.Stroke, opts Options) []*core.Step {
	if len(strokes) == 0 {
		return nil
	}
	wy := opts.YWeight
	wx := 1.0 - wy

	var steps []*core.Step
	current := []*core.Stroke{strokes[0]}
	for i := 1; i < len(strokes); i++ {
		d := geom.WeightedManhattan(strokes[i-1].Center(), strokes[i].Center(), wx, wy)
		if d > opts.Threshold {
			steps = append(steps, core.NewStep(len(steps), current))
			current = nil
		}
		current = append(current, strokes[i])
	}

	return append(steps, core.NewStep(len(steps), current))
}

// Merge is the rework pass. It repeatedly scans pairs (i, k), i<k, in
// row-major order; the first Mergeable pair is merged (strokes of k appended
// to i, k removed) and the scan restarts from the top. It stops when a full
// scan finds nothing, then renumbers GroupIDs densely.
//
// The input slice and its steps are not modified.
func Merge(steps []*core.Step, opts Options) []*core.Step {
	work := make([]*core.Step, len(steps))
	copy(work, steps)

	for {
		i, k, found := firstMergeable(work, opts)
		if !found {
			break
		}
		merged := append(append([]*core.Stroke(nil), work[i].Strokes...), work[k].Strokes...)
		work[i] = core.NewStep(work[i].GroupID, merged)
		work = append(work[:k], work[k+1:]...)
	}

	out := make([]*core.Step, len(work))
	for i, s := range work {
		if s.GroupID == i {
			out[i] = s
			continue
		}
		out[i] = core.NewStep(i, s.Strokes)
	}

	return out
}

// firstMergeable returns the first pair in row-major scan order that
// satisfies Mergeable.
func firstMergeable(steps []*core.Step, opts Options) (int, int, bool) {
	bounds := make([]geom.Rect, len(steps))
	for i, s := range steps {
		bounds[i] = s.Bounds()
	}
	for i := 0; i < len(steps); i++ {
		for k := i + 1; k < len(steps); k++ {
			if mergeableRects(bounds[i], bounds[k], opts) {
				return i, k, true
			}
		}
	}

	return 0, 0, false
}

// Mergeable reports whether two steps are rework of each other: their
// vertical extents overlap by more than opts.OverlapY of the smaller height
// and their horizontal extents are within opts.MergeReach() of each other.
// The predicate is symmetric.
func Mergeable(a, b *core.Step, opts Options) bool {
	return mergeableRects(a.Bounds(), b.Bounds(), opts)
}

func mergeableRects(ri, rk geom.Rect, opts Options) bool {
	if !(rk.Top < ri.Bottom && ri.Top < rk.Bottom) {
		return false
	}

	minH := ri.Height()
	if rk.Height() < minH {
		minH = rk.Height()
	}

	var overlap float64
	switch {
	case minH <= 0:
		overlap = 1.0
	case ri.Top <= rk.Top && ri.Bottom <= rk.Bottom:
		overlap = (ri.Bottom - rk.Top) / minH
	case rk.Top <= ri.Top && rk.Bottom <= ri.Bottom:
		overlap = (rk.Bottom - ri.Top) / minH
	default:
		// one extent contains the other
		overlap = 1.0
	}
	if !(opts.OverlapY < overlap) {
		return false
	}

	dx := opts.MergeReach()

	return rk.Left < ri.Right+dx && ri.Left-dx < rk.Right
}
