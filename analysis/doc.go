// Package analysis ties segmentation, alignment and clustering together.
//
// An Analyzer holds the tuning of every stage and exposes the operations a
// caller needs:
//
//   - Cluster: pairwise distances for one Feature, standardization and a
//     dendrogram.
//   - Group: Cluster for both features of the same sheets.
//   - RankByModel: candidates ordered by process distance to a model answer.
//   - StrokeComparisons / StepComparisons: bounded samples of lower-level
//     alignments for renderers.
//
// Steps are segmented once per sheet per call and reused for every pairwise
// comparison in that call. Work is single-threaded and synchronous; callers
// wanting responsiveness run the call on their own goroutine.
package analysis
