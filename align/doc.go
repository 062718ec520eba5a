// Package align computes global alignments between two sequences with a
// Needleman–Wunsch style dynamic program, optionally allowing adjacent
// skipped elements to be joined into one composite before matching.
//
// What:
//
//	One generic aligner, Sequences, parameterized by an element cost and an
//	optional join function. Config wires three levels on top of it, each
//	one calling the level below as its element cost:
//	  • point level   — simplified points of two strokes, Euclidean cost, gap 40
//	  • stroke level  — normalized strokes of two steps, point-level cost, gap 100
//	  • step level    — steps of two answers, stroke-level cost, gap 40, joins
//
// Recurrence (plain mode):
//
//	m[i,0] = i·gap, m[0,j] = j·gap
//	m[i,j] = min(m[i-1,j-1]+d(A[i],B[j]), m[i-1,j]+gap, m[i,j-1]+gap)
//	ties prefer match, then skip-A, then skip-B.
//	distance = m[M,N] / (min(M,N)+1)
//
// Degenerate inputs:
//
//	both empty → 0; one empty → 1/(len(other)·gap), no matches.
//
// Joins:
//
//	When the best path into (i-1,k-1) was a skip on one side, the element
//	at the current position is tried joined with up to n preceding skipped
//	elements of that side; the cheapest composite wins and n·gap·JoinWeight
//	is refunded from the match cost.
//
// Composite elements are always built on copies; inputs are never mutated.
//
// Complexity:
//
//	Time   = O(M·N) cost evaluations plus O(M·N·J) for J-long skip runs with joins.
//	Memory = O(M·N).
package align
