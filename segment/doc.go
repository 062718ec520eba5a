// Package segment groups a chronological stroke sequence into answer steps.
//
// What:
//
//   - Phase 1 (Split): walk consecutive stroke pairs in time order and start a
//     new step whenever the y-weighted Manhattan distance between their
//     centers exceeds Options.Threshold.
//   - Phase 2 (Merge): repeatedly scan all step pairs (i<k, row-major) and
//     merge the first pair whose bounding boxes overlap vertically by more
//     than Options.OverlapY of the smaller height and lie horizontally within
//     Threshold/(1-YWeight) of each other; restart the scan after each merge.
//   - GroupIDs are reassigned densely (0..k-1) in final order.
//
// Why:
//
//	Phase 1 captures "new region = new step"; Phase 2 catches rework, where
//	a student returns to an earlier line and extends it.
//
// Complexity:
//
//   - Split: O(S). Merge: O(K³) worst case over K steps (brute-force rescans
//     keep the documented scan order exact).
//
// Errors:
//
//   - ErrNoStrokes:   empty stroke sequence.
//   - ErrBadOptions:  weights or thresholds out of range.
//   - core.ErrEmptyStroke / core.ErrNonFinite from stroke validation.
package segment
