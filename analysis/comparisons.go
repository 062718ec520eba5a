package analysis

import (
	"fmt"

	"github.com/katalvlaran/inkstep/cluster"
	"github.com/katalvlaran/inkstep/core"
)

// StrokeComparisons samples point-level alignments between the normalized
// strokes of two sheets: for every step pair, every stroke pair, in order,
// until limit results are collected. limit <= 0 means no limit.
func (a *Analyzer) StrokeComparisons(left, right *core.Sheet, limit int) ([]StrokeComparison, error) {
	steps1, err := a.Steps(left)
	if err != nil {
		return nil, err
	}
	steps2, err := a.Steps(right)
	if err != nil {
		return nil, err
	}

	var out []StrokeComparison
	h, eps := a.align.NormHeight, a.align.SimplifyThreshold
	for _, s1 := range steps1 {
		n1 := s1.Normalized(h, false)
		for _, s2 := range steps2 {
			n2 := s2.Normalized(h, false)
			for _, k1 := range n1 {
				for _, k2 := range n2 {
					r, err := a.align.Strokes(k1, k2)
					if err != nil {
						return nil, fmt.Errorf("StrokeComparisons: %w", err)
					}
					out = append(out, StrokeComparison{
						Left:            k1,
						Right:           k2,
						LeftSimplified:  k1.Simplified(eps),
						RightSimplified: k2.Simplified(eps),
						Result:          r,
					})
					if limit > 0 && len(out) >= limit {
						return out, nil
					}
				}
			}
		}
	}

	return out, nil
}

// StepComparisons samples stroke-level alignments for every sheet pair
// (i<k) of the group and every step pair of those sheets, in order, until
// limit results are collected. limit <= 0 means no limit.
func (a *Analyzer) StepComparisons(g cluster.Group, limit int) ([]StepComparison, error) {
	if len(g.Sheets) < 2 {
		return nil, ErrTooFewSheets
	}
	steps, err := a.segmentAll(g.Sheets)
	if err != nil {
		return nil, err
	}

	var out []StepComparison
	for i := 0; i < len(g.Sheets); i++ {
		for k := i + 1; k < len(g.Sheets); k++ {
			for _, s1 := range steps[i] {
				for _, s2 := range steps[k] {
					r, err := a.align.Steps(s1, s2)
					if err != nil {
						return nil, fmt.Errorf("StepComparisons: %w", err)
					}
					out = append(out, StepComparison{
						LeftSheet:  g.Sheets[i].ID,
						RightSheet: g.Sheets[k].ID,
						Left:       s1,
						Right:      s2,
						Result:     r,
					})
					if limit > 0 && len(out) >= limit {
						return out, nil
					}
				}
			}
		}
	}

	return out, nil
}
