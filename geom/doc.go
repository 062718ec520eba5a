// Package geom provides the planar primitives shared by every inkstep
// algorithm: points, axis-aligned rectangles and the distance metrics used
// for stroke simplification, step segmentation and point-level alignment.
//
// What:
//
//   - Point is an untimed (x, y) value; Rect is an axis-aligned box.
//   - Distance metrics: Euclidean, Manhattan, WeightedManhattan.
//   - PerpendicularDistance from a point to the line through two points.
//   - CosineSimilarity between two equal-length feature vectors.
//   - Bounds / Union helpers for point sets and rectangles.
//
// Why:
//
//   - Segmentation compares stroke centers with a y-weighted Manhattan metric,
//     because handwritten answers progress top-to-bottom far more than
//     left-to-right.
//   - Simplification keeps points whose perpendicular distance from a chord
//     exceeds a threshold.
//
// Complexity:
//
//   - All metrics: O(1). Bounds: O(n). CosineSimilarity: O(n).
//
// Errors:
//
//   - ErrNonFinite: a coordinate is NaN or ±Inf (see Point.Validate).
//   - ErrLengthMismatch: CosineSimilarity vectors differ in length.
package geom
