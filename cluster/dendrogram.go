package cluster

import (
	"fmt"
	"math"

	"github.com/katalvlaran/inkstep/core"
	"github.com/katalvlaran/inkstep/matrix"
	"gonum.org/v1/gonum/floats"
)

// Dendrogram is the binary merge tree of one clustering run.
// It is immutable after Build.
type Dendrogram struct {
	nodes  []Node
	sheets []*core.Sheet // indexed by Sheet.ID
	dist   matrix.Matrix
}

// Build clusters sheets with group-average linkage over dist, where
// dist[i][k] is the distance between the sheets with IDs i and k.
//
// Implementation:
//   - Stage 1: validate sheets (non-empty, IDs a permutation of 0..N-1)
//     and the matrix (square, finite, symmetric, zero diagonal).
//   - Stage 2: one leaf per sheet in input order; these are the active set.
//   - Stage 3: while more than one cluster is active, scan pairs (i<k) of
//     the active list and keep the first strictly smaller group average.
//     The merged node is appended to the active list and both children are
//     removed.
//
// The matrix is read, never written.
func Build(sheets []*core.Sheet, dist matrix.Matrix) (*Dendrogram, error) {
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}
	n := len(sheets)
	byID := make([]*core.Sheet, n)
	for i, s := range sheets {
		if s == nil || s.ID < 0 || s.ID >= n || byID[s.ID] != nil {
			return nil, fmt.Errorf("Build: sheet %d: %w", i, ErrSheetID)
		}
		byID[s.ID] = s
	}
	if err := matrix.ValidateSquare(dist); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	if dist.Rows() != n {
		return nil, fmt.Errorf("Build: %d×%d for %d sheets: %w", dist.Rows(), dist.Cols(), n, ErrMatrixSize)
	}
	if err := matrix.ValidateDistance(dist); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	d := &Dendrogram{nodes: make([]Node, 0, 2*n-1), sheets: byID, dist: dist}
	active := make([]int, 0, n)
	for _, s := range sheets {
		id := len(d.nodes)
		d.nodes = append(d.nodes, Node{ID: id, Sheet: s.ID, Members: []int{s.ID}})
		active = append(active, id)
	}

	for len(active) > 1 {
		best := math.Inf(1)
		bi, bk := 0, 1
		for i := 0; i < len(active); i++ {
			for k := i + 1; k < len(active); k++ {
				g := d.groupAverage(d.nodes[active[i]].Members, d.nodes[active[k]].Members)
				if g < best {
					best, bi, bk = g, i, k
				}
			}
		}

		left, right := d.nodes[active[bi]], d.nodes[active[bk]]
		members := make([]int, 0, len(left.Members)+len(right.Members))
		members = append(append(members, left.Members...), right.Members...)
		id := len(d.nodes)
		d.nodes = append(d.nodes, Node{
			ID:       id,
			Sheet:    -1,
			Children: []int{left.ID, right.ID},
			Inter:    best,
			Intra:    d.intraDistance(members),
			Members:  members,
		})

		// bk > bi: remove the later index first
		active = append(active[:bk], active[bk+1:]...)
		active = append(active[:bi], active[bi+1:]...)
		active = append(active, id)
	}

	return d, nil
}

// groupAverage is the mean of dist over all cross pairs of a and b.
func (d *Dendrogram) groupAverage(a, b []int) float64 {
	vals := make([]float64, 0, len(a)*len(b))
	for _, i := range a {
		for _, k := range b {
			v, _ := d.dist.At(i, k)
			vals = append(vals, v)
		}
	}

	return floats.Sum(vals) / float64(len(vals))
}

// intraDistance is the mean of dist over all unordered pairs of members;
// 0 for a single member.
func (d *Dendrogram) intraDistance(members []int) float64 {
	if len(members) < 2 {
		return 0
	}
	vals := make([]float64, 0, len(members)*(len(members)-1)/2)
	for i := 0; i < len(members); i++ {
		for k := i + 1; k < len(members); k++ {
			v, _ := d.dist.At(members[i], members[k])
			vals = append(vals, v)
		}
	}

	return floats.Sum(vals) / float64(len(vals))
}

// Root returns the root node.
func (d *Dendrogram) Root() Node { return d.nodes[len(d.nodes)-1] }

// Node returns the node with arena index id.
func (d *Dendrogram) Node(id int) (Node, bool) {
	if id < 0 || id >= len(d.nodes) {
		return Node{}, false
	}

	return d.nodes[id], true
}

// Len returns the number of nodes (2N-1 for N sheets).
func (d *Dendrogram) Len() int { return len(d.nodes) }

// Members returns the sheets below node id, left subtree first.
func (d *Dendrogram) Members(id int) []*core.Sheet {
	n, ok := d.Node(id)
	if !ok {
		return nil
	}
	out := make([]*core.Sheet, len(n.Members))
	for i, sid := range n.Members {
		out[i] = d.sheets[sid]
	}

	return out
}

// Distances returns the matrix the tree was built from.
func (d *Dendrogram) Distances() matrix.Matrix { return d.dist }

// Height returns the number of edges on the longest root-to-leaf path.
func (d *Dendrogram) Height() int {
	return d.height(len(d.nodes) - 1)
}

func (d *Dendrogram) height(id int) int {
	n := d.nodes[id]
	h := 0
	for _, c := range n.Children {
		if ch := d.height(c) + 1; ch > h {
			h = ch
		}
	}

	return h
}
