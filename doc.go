// Package inkstep analyzes how handwritten answers were written, not only
// what they say.
//
// 🚀 What is inkstep?
//
//	A pure-Go pipeline over timestamped pen strokes:
//		• Segmentation: strokes → answer steps, with rework merged back
//		• Alignment: one DP aligner for points, strokes and steps, with
//		  joins that absorb split or merged steps
//		• Distance matrices: pairwise fill and standardization
//		• Clustering: UPGMA dendrogram, depth / threshold / optimal cuts
//		• Ranking: answers ordered by process distance to a model answer
//
// Under the hood, everything is organized by stage:
//
//	geom/      — points, rectangles and distances
//	simplify/  — Ramer–Douglas–Peucker polyline simplification
//	core/      — Point, Stroke, Step, Sheet and timing statistics
//	segment/   — stroke sequence → answer steps
//	align/     — generic sequence aligner and its three levels
//	matrix/    — square distance matrices, standardization
//	cluster/   — dendrogram build and cuts
//	analysis/  — the facade tying the stages together
//	config/    — JSON tuning files
//	cmd/inkstep — command-line front end
//
// Quick example:
//
//	a, _ := analysis.New()
//	res, _ := a.Cluster(sheets, analysis.ProcessSimilarity)
//	groups, depth, _ := res.OptimalGroups(cluster.DefaultDepthWeight)
//
//	go install github.com/katalvlaran/inkstep/cmd/inkstep@latest
package inkstep
