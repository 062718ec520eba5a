// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// PairFunc returns the distance between items i and k (i < k).
type PairFunc func(i, k int) (float64, error)

// NewPairwise builds the n×n symmetric distance matrix of n items.
//
// Implementation:
//   - Stage 1: validate n>0 and fn non-nil.
//   - Stage 2: call fn once per strict upper-triangle pair in row-major
//     order (i<k) and mirror the value into [k,i].
//   - Stage 3: the diagonal stays 0.
//
// Errors:
//   - ErrInvalidDimensions, ErrNilMatrix (nil fn).
//   - ErrNaNInf when fn yields a non-finite value under the default policy.
//   - any error from fn, wrapped with the pair.
//
// Complexity: n(n-1)/2 calls to fn; O(n²) memory.
func NewPairwise(n int, fn PairFunc, opts ...Option) (*Dense, error) {
	if fn == nil {
		return nil, matrixErrorf("NewPairwise", ErrNilMatrix)
	}
	d, err := NewSquare(n, opts...)
	if err != nil {
		return nil, matrixErrorf("NewPairwise", err)
	}

	for i := 0; i < n; i++ {
		for k := i + 1; k < n; k++ {
			v, err := fn(i, k)
			if err != nil {
				return nil, fmt.Errorf("NewPairwise(%d,%d): %w", i, k, err)
			}
			if err = d.Set(i, k, v); err != nil {
				return nil, matrixErrorf("NewPairwise", err)
			}
			d.data[k*d.c+i] = v
		}
	}

	return d, nil
}

// UpperTriangle returns the strict upper-triangle entries of a square
// matrix in row-major order.
func UpperTriangle(m Matrix) ([]float64, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, err
	}
	n := m.Rows()
	out := make([]float64, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for k := i + 1; k < n; k++ {
			v, _ := m.At(i, k)
			out = append(out, v)
		}
	}

	return out, nil
}
