// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Standardize a distance matrix so that features on unrelated scales
//     (process distance, answer-time difference) can be compared.
//
// Determinism:
//   - Statistics are taken over the strict upper triangle in row-major order.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Standardize returns a new matrix whose off-diagonal entries are
// (v - mean) / std, where mean and std are the population statistics of the
// strict upper triangle of m. The diagonal is 0.
//
// Implementation:
//   - Stage 1: validate square; collect the upper triangle.
//   - Stage 2: population mean and standard deviation (gonum stat).
//   - Stage 3: z-score every off-diagonal cell.
//
// Behavior highlights:
//   - Degenerate std=0 (or a 1×1 matrix) → all-zero matrix and
//     Stats.Degenerate; no Inf/NaN is ever produced from a finite input.
//
// Complexity: Time O(n²), Space O(n²).
func Standardize(m Matrix) (*Dense, Stats, error) {
	vals, err := UpperTriangle(m)
	if err != nil {
		return nil, Stats{}, matrixErrorf("Standardize", err)
	}
	n := m.Rows()
	out, err := NewSquare(n)
	if err != nil {
		return nil, Stats{}, matrixErrorf("Standardize", err)
	}

	st := Stats{Samples: len(vals)}
	if len(vals) == 0 {
		st.Degenerate = true
		return out, st, nil
	}
	st.Mean, st.Std = stat.PopMeanStdDev(vals, nil)
	if math.IsNaN(st.Mean) || math.IsInf(st.Mean, 0) {
		return nil, st, matrixErrorf("Standardize", ErrNaNInf)
	}
	if st.Std == 0 || math.IsNaN(st.Std) {
		st.Std = 0
		st.Degenerate = true
		return out, st, nil
	}

	for i := 0; i < n; i++ {
		for k := 0; k < n; k++ {
			if i == k {
				continue
			}
			v, _ := m.At(i, k)
			out.data[i*n+k] = (v - st.Mean) / st.Std
		}
	}

	return out, st, nil
}
