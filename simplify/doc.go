// Package simplify reduces a polyline to the points that carry its shape,
// using the Ramer–Douglas–Peucker (RDP) rule.
//
// 🚀 What is RDP?
//
//	For a run of points, draw the chord between its two endpoints and find the
//	interior point farthest from that chord. If that distance exceeds the
//	threshold the point is kept and both halves are processed again; otherwise
//	every interior point of the run is dropped.
//
// ✨ Key features:
//   - Iterative: a FIFO work queue of index ranges, no recursion depth limit.
//   - Order preserving: survivors are emitted in original stroke order.
//   - Recursive reference variant (Recursive) for cross-checking.
//
// ⚙️ Usage:
//
//	kept := simplify.RDP(points, simplify.DefaultThreshold)
//
// Guarantees:
//
//   - The result is a subset of the input and always contains the first and
//     last input points (for inputs of length ≥ 2). Shorter inputs yield
//     an empty result.
//   - With threshold 0 strictly colinear runs collapse; any point off the
//     chord survives.
//
// Performance:
//
//   - Time:   O(n log n) typical, O(n²) worst case.
//   - Memory: O(n).
package simplify
