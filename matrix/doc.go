// Package matrix provides the square distance matrix used by clustering.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and an
//     optional NaN/Inf rejection policy.
//   - NewPairwise, which fills the strict upper triangle from a distance
//     callback, mirrors it and keeps a zero diagonal.
//   - Standardize, which z-scores the off-diagonal entries using the
//     population mean and standard deviation of the upper triangle.
//   - Validators for square, symmetric, zero-diagonal and finite matrices.
//
// A distance matrix is written once and then treated as read-only; every
// transform returns a new *Dense.
package matrix
