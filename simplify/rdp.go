package simplify

import "github.com/katalvlaran/inkstep/geom"

// DefaultThreshold is the perpendicular-distance threshold used for stroke
// comparison, in input coordinate units.
const DefaultThreshold = 5.0

// span is a closed index range [lo, hi] awaiting inspection.
type span struct {
	lo, hi int
}

// RDP returns the points of pts that survive Ramer–Douglas–Peucker
// simplification with the given perpendicular-distance threshold.
//
// Algorithm Outline:
//  1. Keep the first and last point; enqueue the range [0, n-1].
//  2. Pop a range; find the interior point with maximum perpendicular
//     distance from the chord of the range endpoints (first maximum wins).
//  3. If that distance is strictly greater than dthres, keep the point and
//     enqueue both sub-ranges.
//  4. Emit kept points in original index order.
//
// Edge cases:
//   - len(pts) < 2 → empty result; a lone point has no chord.
//   - len(pts) == 2 → both points, no inspection.
//
// Complexity: O(n²) worst case, O(n) memory.
func RDP(pts []geom.Point, dthres float64) []geom.Point {
	n := len(pts)
	if n < 2 {
		return []geom.Point{}
	}

	keep := make([]bool, n)
	keep[0], keep[n-1] = true, true

	queue := []span{{lo: 0, hi: n - 1}}
	for len(queue) > 0 {
		r := queue[0]
		queue = queue[1:]

		dmax, idx := 0.0, 0
		for i := r.lo + 1; i < r.hi; i++ {
			d := geom.PerpendicularDistance(pts[i], pts[r.lo], pts[r.hi])
			if dmax < d {
				dmax, idx = d, i
			}
		}
		if dthres < dmax {
			keep[idx] = true
			queue = append(queue, span{lo: r.lo, hi: idx}, span{lo: idx, hi: r.hi})
		}
	}

	out := make([]geom.Point, 0, n)
	for i, k := range keep {
		if k {
			out = append(out, pts[i])
		}
	}

	return out
}

// Recursive is the textbook recursive form of RDP. It produces the same
// point set as RDP and exists to cross-check the iterative variant.
func Recursive(pts []geom.Point, dthres float64) []geom.Point {
	if len(pts) < 2 {
		return []geom.Point{}
	}
	if len(pts) == 2 {
		return append([]geom.Point(nil), pts...)
	}
	end := len(pts) - 1
	dmax, idx := 0.0, 0
	for i := 1; i < end; i++ {
		d := geom.PerpendicularDistance(pts[i], pts[0], pts[end])
		if dmax < d {
			dmax, idx = d, i
		}
	}
	if !(dthres < dmax) {
		return []geom.Point{pts[0], pts[end]}
	}
	left := Recursive(pts[:idx+1], dthres)
	right := Recursive(pts[idx:], dthres)

	return append(left[:len(left)-1], right...)
}
