// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/inkstep/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fromUpper(t *testing.T, n int, upper ...float64) *matrix.Dense {
	t.Helper()
	idx := 0
	d, err := matrix.NewPairwise(n, func(i, k int) (float64, error) {
		v := upper[idx]
		idx++
		return v, nil
	})
	require.NoError(t, err)

	return d
}

func TestStandardize_ZScores(t *testing.T) {
	d := fromUpper(t, 3, 1, 2, 3)
	z, st, err := matrix.Standardize(d)
	require.NoError(t, err)

	std := math.Sqrt(2.0 / 3.0)
	assert.False(t, st.Degenerate)
	assert.Equal(t, 3, st.Samples)
	assert.InDelta(t, 2.0, st.Mean, 1e-12)
	assert.InDelta(t, std, st.Std, 1e-12)

	v, _ := z.At(0, 1)
	assert.InDelta(t, -1/std, v, 1e-12)
	v, _ = z.At(2, 1)
	assert.InDelta(t, 1/std, v, 1e-12)
	assert.NoError(t, matrix.ValidateDistance(z), "symmetric with zero diagonal")

	upper, _ := matrix.UpperTriangle(z)
	var sum, sq float64
	for _, u := range upper {
		sum += u
		sq += u * u
	}
	assert.InDelta(t, 0.0, sum/3, 1e-12, "mean 0")
	assert.InDelta(t, 1.0, sq/3, 1e-12, "variance 1")

	orig, _ := d.At(0, 1)
	assert.Equal(t, 1.0, orig, "input untouched")
}

func TestStandardize_Degenerate(t *testing.T) {
	z, st, err := matrix.Standardize(fromUpper(t, 3, 5, 5, 5))
	require.NoError(t, err)
	assert.True(t, st.Degenerate)
	upper, _ := matrix.UpperTriangle(z)
	assert.Equal(t, []float64{0, 0, 0}, upper)

	single, _ := matrix.NewSquare(1)
	z, st, err = matrix.Standardize(single)
	require.NoError(t, err)
	assert.True(t, st.Degenerate)
	assert.Equal(t, 1, z.Rows())
}

func TestStandardize_NonSquare(t *testing.T) {
	rect, _ := matrix.NewDense(2, 3)
	_, _, err := matrix.Standardize(rect)
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}
