package cluster

import "math"

// GroupsAtDepth expands the root breadth-first for depth levels and returns
// one group per resulting node, in level order. Depth 0 yields a single
// group with every sheet; any depth ≥ Height() yields one group per sheet.
func (d *Dendrogram) GroupsAtDepth(depth int) ([]Group, error) {
	if depth < 0 {
		return nil, ErrBadDepth
	}
	level := []int{len(d.nodes) - 1}
	for i := 0; i < depth; i++ {
		level = d.expand(level)
	}

	return d.groups(level), nil
}

// GroupsByThreshold walks down the trunk while the current node is internal
// and its Inter distance is at least thres. At each node the trunk
// continues into the child with the lower Inter distance (the first child
// on ties, and always the internal child when the other is a leaf); the
// sibling is peeled off as a group. The final trunk node is the last group.
func (d *Dendrogram) GroupsByThreshold(thres float64) []Group {
	var list []int
	cur := d.nodes[len(d.nodes)-1]
	for !cur.IsLeaf() && cur.Inter >= thres {
		c1, c2 := d.nodes[cur.Children[0]], d.nodes[cur.Children[1]]
		bothInternal := !c1.IsLeaf() && !c2.IsLeaf()
		if (bothInternal && c1.Inter <= c2.Inter) || c2.IsLeaf() {
			list = append(list, c2.ID)
			cur = c1
			continue
		}
		list = append(list, c1.ID)
		cur = c2
	}
	list = append(list, cur.ID)

	return d.groups(list)
}

// OptimalDepth evaluates, for depth i = 0..Height(), the score
// w·mean(Intra over the nodes at depth i) + (1-w)·(node count) and returns
// the last depth before the score first increases. Equal scores continue
// the descent.
func (d *Dendrogram) OptimalDepth(w float64) int {
	optimal := 0
	parent := math.MaxFloat64
	level := []int{len(d.nodes) - 1}
	for i, h := 0, d.Height(); i <= h; i++ {
		var sum float64
		for _, id := range level {
			sum += d.nodes[id].Intra
		}
		score := w*(sum/float64(len(level))) + (1-w)*float64(len(level))
		if parent < score {
			break
		}
		parent = score
		optimal = i
		level = d.expand(level)
	}

	return optimal
}

// expand replaces every internal node of level by its children.
func (d *Dendrogram) expand(level []int) []int {
	next := make([]int, 0, 2*len(level))
	for _, id := range level {
		n := d.nodes[id]
		if n.IsLeaf() {
			next = append(next, id)
			continue
		}
		next = append(next, n.Children...)
	}

	return next
}

func (d *Dendrogram) groups(ids []int) []Group {
	out := make([]Group, len(ids))
	for i, id := range ids {
		out[i] = NewGroup(i, d.Members(id))
	}

	return out
}
