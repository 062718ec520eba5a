// SPDX-License-Identifier: MIT

package matrix

// Matrix is a two-dimensional mutable array of float64 values.
// All methods are O(1) except Clone (O(rows*cols)).
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At returns the element at (i, j) or ErrOutOfRange.
	At(i, j int) (float64, error)

	// Set assigns v at (i, j); ErrOutOfRange or ErrNaNInf on violation.
	Set(i, j int, v float64) error

	// Clone returns an independent deep copy.
	Clone() Matrix
}

// Stats describes a standardization: the population mean and standard
// deviation of the upper-triangle entries, their count, and whether the
// input was degenerate (fewer than one entry or zero deviation), in which
// case the standardized matrix is all zeros.
type Stats struct {
	Mean       float64
	Std        float64
	Samples    int
	Degenerate bool
}
