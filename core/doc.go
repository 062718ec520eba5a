// Package core defines the handwriting data model shared by every inkstep
// algorithm: timed pen points, strokes, answer steps and answer sheets.
//
// The model G = (Sheet → Steps → Strokes → Points) is layered:
//
//   - Point   – a timestamped (x, y) sample, value type.
//   - Stroke  – one pen-down gesture: points in non-decreasing time order.
//   - Step    – a spatially coherent set of strokes ("answer step"), built by
//     the segment package and combined by Join during alignment.
//   - Sheet   – one subject's full, chronological stroke sequence plus a dense
//     integer ID that doubles as its distance-matrix index.
//
// Derived attributes are computed on demand and never stored:
//
//	Stroke: Center, Bounds, Length, Density, Curvature, Duration
//	Step:   Bounds, Center, TimeSpan
//	Sheet:  AnswerTime, WritingTime, WritingRatio, Stats (speed mean/variance)
//
// Memoized caches (compute once, explicit invalidation):
//
//	Stroke.Simplified(dthres) – RDP-simplified points, keyed by threshold.
//	Step.Center()             – mean of stroke centers.
//	Step.Normalized(h, sort)  – strokes rescaled to a fixed step height.
//
// Caches are guarded by a sync.Mutex so steps may be shared by concurrent
// readers. Strokes and steps are never mutated by alignment: Step.Join
// returns a fresh Step built from translated copies.
//
// Errors:
//
//	ErrEmptySheet        - sheet has no strokes.
//	ErrEmptyStroke       - stroke has no points.
//	ErrNonChronological  - point times decrease within the sheet.
//	ErrNonFinite         - NaN or ±Inf coordinate.
package core
