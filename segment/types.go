package segment

import (
	"errors"
	"math"
)

// Sentinel errors for segmentation.
var (
	// ErrNoStrokes indicates an empty stroke sequence.
	ErrNoStrokes = errors.New("segment: no strokes to segment")

	// ErrBadOptions indicates out-of-range segmentation options.
	ErrBadOptions = errors.New("segment: invalid options")
)

// Defaults for Options.
const (
	// DefaultYWeight weights vertical travel; horizontal travel gets 1-YWeight.
	DefaultYWeight = 0.80

	// DefaultThreshold is the weighted-Manhattan distance that opens a new step.
	DefaultThreshold = 200.0

	// DefaultOverlapY is the minimum vertical overlap ratio (of the smaller
	// step height) for two steps to be merged as rework.
	DefaultOverlapY = 0.6
)

// Options configures the segmenter.
//
// Fields:
//   - YWeight   — weight of |Δy| in the center distance, in [0, 1).
//   - Threshold — new-step distance threshold, > 0.
//   - OverlapY  — vertical overlap ratio for rework merges, in [0, 1].
type Options struct {
	YWeight   float64
	Threshold float64
	OverlapY  float64
}

// DefaultOptions returns Options with YWeight=0.80, Threshold=200, OverlapY=0.6.
func DefaultOptions() Options {
	return Options{
		YWeight:   DefaultYWeight,
		Threshold: DefaultThreshold,
		OverlapY:  DefaultOverlapY,
	}
}

// MergeReach returns the horizontal reach Threshold/(1-YWeight) used by the
// merge predicate (1000 with the defaults).
func (o Options) MergeReach() float64 {
	return o.Threshold / (1.0 - o.YWeight)
}

// Validate checks option ranges.
func (o Options) Validate() error {
	switch {
	case math.IsNaN(o.YWeight) || o.YWeight < 0 || o.YWeight >= 1:
		return ErrBadOptions
	case math.IsNaN(o.Threshold) || o.Threshold <= 0:
		return ErrBadOptions
	case math.IsNaN(o.OverlapY) || o.OverlapY < 0 || o.OverlapY > 1:
		return ErrBadOptions
	}

	return nil
}
