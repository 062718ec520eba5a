package align

import (
	"fmt"
	"math"
)

// CostFunc returns the non-negative distance between two elements.
type CostFunc[T any] func(a, b T) (float64, error)

// JoinFunc returns a new composite element with next appended to acc.
// It must not mutate either argument.
type JoinFunc[T any] func(acc, next T) T

// Sequences aligns a and b under opts, using cost for matched pairs and, if
// join is non-nil, trying composites of skipped elements as described in
// the package documentation.
//
// Algorithm Outline:
//  1. Degenerate inputs return the empty-side distance without a table.
//  2. Allocate (M+1)x(N+1) tables (MxN when Anchored) for cost, direction,
//     join count and matched element distance; fill the gap borders.
//  3. Fill row-major. Ties prefer match, then skip-A, then skip-B.
//  4. Backtrack from the last cell to the origin and reverse.
//
// Errors:
//   - ErrNilCost, ErrBadOptions for invalid arguments.
//   - ErrNonFinite when cost returns NaN or Inf.
//   - any error returned by cost, wrapped with the cell position.
func Sequences[T any](a, b []T, cost CostFunc[T], join JoinFunc[T], opts Options) (Result, error) {
	if cost == nil {
		return Result{}, ErrNilCost
	}
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}

	na, nb := len(a), len(b)
	gap := opts.GapCost
	switch {
	case na == 0 && nb == 0:
		return Result{Distance: 0, Matches: []Match{}}, nil
	case na == 0:
		return Result{Distance: 1.0 / (float64(nb) * gap), Matches: []Match{}}, nil
	case nb == 0:
		return Result{Distance: 1.0 / (float64(na) * gap), Matches: []Match{}}, nil
	}

	off := 0
	if opts.Anchored {
		off = 1
	}
	rows, cols := na+1-off, nb+1-off

	// Stage 1: tables and borders
	t := newTable(rows, cols)
	for i := 1; i < rows; i++ {
		t.m[i][0] = float64(i) * gap
		t.dir[i][0] = skipA
	}
	for k := 1; k < cols; k++ {
		t.m[0][k] = float64(k) * gap
		t.dir[0][k] = skipB
	}
	t.dir[0][0] = origin

	// Stage 2: fill
	inf := math.Inf(1)
	for i := 1; i < rows; i++ {
		for k := 1; k < cols; k++ {
			d, n, err := cellCost(a, b, i, k, off, t.dir, cost, join)
			if err != nil {
				return Result{}, fmt.Errorf("Sequences: cell (%d,%d): %w", i, k, err)
			}

			fromMatch := t.m[i-1][k-1] + d - float64(n)*gap*opts.JoinWeight
			fromA := t.m[i-1][k] + gap
			fromB := t.m[i][k-1] + gap
			if opts.StrictBorders {
				switch {
				case i == 1 && k == 1:
					fromA, fromB = inf, inf
				case k == 1:
					fromB = inf
				case i == 1:
					fromA = inf
				}
			}

			switch {
			case fromMatch <= fromA && fromMatch <= fromB:
				t.m[i][k], t.dir[i][k] = fromMatch, match
				t.joins[i][k], t.dm[i][k] = n, d
			case fromA <= fromB && fromA <= fromMatch:
				t.m[i][k], t.dir[i][k] = fromA, skipA
			default:
				t.m[i][k], t.dir[i][k] = fromB, skipB
			}
		}
	}

	// Stage 3: backtrack
	matches := make([]Match, 0, rows+cols)
	for i, k := rows-1, cols-1; i != 0 || k != 0; {
		switch t.dir[i][k] {
		case skipA:
			matches = append(matches, Match{Left: i - 1 + off, Right: -1, Score: NoScore})
			i--
		case skipB:
			matches = append(matches, Match{Left: -1, Right: k - 1 + off, Score: NoScore})
			k--
		default:
			matches = append(matches, Match{
				Left:  i - 1 + off,
				Right: k - 1 + off,
				Score: score(t.dm[i][k], opts.ScoreScale),
				Joins: t.joins[i][k],
			})
			i--
			k--
		}
	}
	// reverse in-place
	for l, r := 0, len(matches)-1; l < r; l, r = l+1, r-1 {
		matches[l], matches[r] = matches[r], matches[l]
	}

	norm := float64(min(na, nb) + 1 - off)

	return Result{Distance: t.m[rows-1][cols-1] / norm, Matches: matches}, nil
}

// cellCost returns the element distance for cell (i,k) and the number of
// joined elements. Without a join function, or when (i-1,k-1) was reached
// by a match, it is the plain pair cost. After a skip run on one side, the
// current element of that side is joined with 0..n preceding elements while
// the run continues, and the first minimal composite wins.
func cellCost[T any](a, b []T, i, k, off int, dir [][]direction, cost CostFunc[T], join JoinFunc[T]) (float64, int, error) {
	ea, eb := a[i-1+off], b[k-1+off]
	prev := dir[i-1][k-1]
	if join == nil || prev == match || prev == origin {
		d, err := checkedCost(cost, ea, eb)

		return d, 0, err
	}

	best, bestN := math.Inf(1), 0
	if prev == skipA {
		comp := ea
		for n := 0; dir[i-1-n][k-1] == skipA; n++ {
			if n > 0 {
				comp = join(comp, a[i-1-n+off])
			}
			d, err := checkedCost(cost, comp, eb)
			if err != nil {
				return 0, 0, err
			}
			if d < best {
				best, bestN = d, n
			}
		}

		return best, bestN, nil
	}

	comp := eb
	for n := 0; dir[i-1][k-1-n] == skipB; n++ {
		if n > 0 {
			comp = join(comp, b[k-1-n+off])
		}
		d, err := checkedCost(cost, ea, comp)
		if err != nil {
			return 0, 0, err
		}
		if d < best {
			best, bestN = d, n
		}
	}

	return best, bestN, nil
}

func checkedCost[T any](cost CostFunc[T], a, b T) (float64, error) {
	d, err := cost(a, b)
	if err != nil {
		return 0, err
	}
	if !isFinite(d) {
		return 0, ErrNonFinite
	}

	return d, nil
}

// score converts a matched element distance to its display integer.
func score(d, scale float64) int {
	if scale == 0 {
		return NoScore
	}

	return int(d * scale)
}

// table holds the DP state for one alignment.
type table struct {
	m     [][]float64
	dm    [][]float64
	dir   [][]direction
	joins [][]int
}

func newTable(rows, cols int) *table {
	t := &table{
		m:     make([][]float64, rows),
		dm:    make([][]float64, rows),
		dir:   make([][]direction, rows),
		joins: make([][]int, rows),
	}
	for i := 0; i < rows; i++ {
		t.m[i] = make([]float64, cols)
		t.dm[i] = make([]float64, cols)
		t.dir[i] = make([]direction, cols)
		t.joins[i] = make([]int, cols)
	}

	return t
}
