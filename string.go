package bananatree

// StringIterator walks a tree's outer boundary: for each banana, its
// minimum, then the (recursively unrolled) in-trail up to its maximum,
// the maximum itself, then the (recursively unrolled, reversed) mid-trail
// back down to the minimum. This traces the same contour a planar
// drawing of the tree's bananas would have if laid out side by side.
//
// Unlike WalkIterator, the full sequence is computed eagerly at Outline
// time rather than stepped lazily node by node: the traversal order
// depends on nested bananas' own boundaries, which is simplest to get
// right as a recursive unroll rather than an explicit resumable state
// machine.
type StringIterator struct {
	nodes []*Node
	pos   int
}

// Outline returns a fresh string iterator over the tree's outer
// boundary, positioned before the first node. Named Outline rather than
// String to keep Tree from accidentally satisfying fmt.Stringer.
func (t *Tree) Outline() *StringIterator {
	assertThat(t.constructed, "Outline called before Construct")
	return &StringIterator{nodes: stringBoundary(t.specialRoot), pos: -1}
}

func stringBoundary(max *Node) []*Node {
	min := max.low
	seq := []*Node{min}
	seq = append(seq, stringTrail(max.in, min)...)
	seq = append(seq, max)
	mid := stringTrail(max.mid, min)
	for i := len(mid) - 1; i >= 0; i-- {
		seq = append(seq, mid[i])
	}
	return seq
}

func stringTrail(start, stop *Node) []*Node {
	var seq []*Node
	for n := start; n != nil && n != stop; n = n.down {
		if n.IsBanana() {
			seq = append(seq, stringBoundary(n)...)
		} else {
			seq = append(seq, n)
		}
	}
	return seq
}

// Next advances to the next node on the boundary and reports whether
// one was found.
func (it *StringIterator) Next() bool {
	if it.pos+1 >= len(it.nodes) {
		return false
	}
	it.pos++
	return true
}

// Node returns the node at the current position.
func (it *StringIterator) Node() *Node { return it.nodes[it.pos] }

// Len returns the total number of nodes on the boundary.
func (it *StringIterator) Len() int { return len(it.nodes) }
