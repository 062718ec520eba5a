package simplify_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/inkstep/geom"
	"github.com/katalvlaran/inkstep/simplify"
	"github.com/stretchr/testify/assert"
)

// zigzag builds a noisy polyline used by several tests.
func zigzag(n int) []geom.Point {
	pts := make([]geom.Point, n)
	for i := 0; i < n; i++ {
		pts[i] = geom.Point{X: float64(i) * 3, Y: 20 * math.Sin(float64(i)/3)}
	}

	return pts
}

// TestRDP_EdgeCases covers 0, 1 and 2 point inputs.
func TestRDP_EdgeCases(t *testing.T) {
	assert.Empty(t, simplify.RDP(nil, 5))

	one := []geom.Point{{X: 1, Y: 1}}
	assert.Empty(t, simplify.RDP(one, 5), "a lone point is dropped")
	assert.Empty(t, simplify.Recursive(one, 5))

	two := []geom.Point{{X: 1, Y: 1}, {X: 9, Y: 9}}
	assert.Equal(t, two, simplify.RDP(two, 5))
}

// TestRDP_ColinearCollapses verifies that a straight run keeps only its endpoints
// even at threshold zero.
func TestRDP_ColinearCollapses(t *testing.T) {
	line := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}}
	got := simplify.RDP(line, 0)
	assert.Equal(t, []geom.Point{{X: 0, Y: 0}, {X: 3, Y: 3}}, got)
}

// TestRDP_ZeroThresholdKeepsCorners verifies that every non-colinear point survives at dthres=0.
func TestRDP_ZeroThresholdKeepsCorners(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 5}, {X: 10, Y: 10}}
	got := simplify.RDP(pts, 0)
	want := []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("RDP mismatch (-want +got):\n%s", diff)
	}
}

// TestRDP_SubsetAndOrder checks the subset, endpoint and order guarantees.
func TestRDP_SubsetAndOrder(t *testing.T) {
	pts := zigzag(60)
	got := simplify.RDP(pts, 2)

	assert.Equal(t, pts[0], got[0], "first point kept")
	assert.Equal(t, pts[len(pts)-1], got[len(got)-1], "last point kept")
	assert.Less(t, len(got), len(pts), "noisy curve must shrink")

	// Each kept point appears in the input strictly after the previous one.
	j := 0
	for _, p := range got {
		for j < len(pts) && pts[j] != p {
			j++
		}
		assert.Less(t, j, len(pts), "kept point %v not found in order", p)
		j++
	}
}

// TestRDP_MatchesRecursive cross-checks the iterative and recursive variants.
func TestRDP_MatchesRecursive(t *testing.T) {
	pts := zigzag(80)
	for _, th := range []float64{0, 0.5, 2, 5, 50} {
		if diff := cmp.Diff(simplify.Recursive(pts, th), simplify.RDP(pts, th)); diff != "" {
			t.Errorf("threshold %v: (-recursive +iterative):\n%s", th, diff)
		}
	}
}
