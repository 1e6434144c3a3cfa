package bananatree

// MapInTrail visits every node on max's in-trail, from max's direct
// in-child down to (but not including) its partner minimum.
func MapInTrail(max *Node, visit func(*Node)) {
	min := max.low
	for n := max.in; n != nil && n != min; n = n.down {
		visit(n)
	}
}

// MapMidTrail visits every node on max's mid-trail, from max's direct
// mid-child down to (but not including) its partner minimum.
func MapMidTrail(max *Node, visit func(*Node)) {
	min := max.low
	for n := max.mid; n != nil && n != min; n = n.down {
		visit(n)
	}
}

// BananaVisit receives, for each banana found during MapBananaDFS, its
// minimum and maximum nodes and its position in the nesting structure.
type BananaVisit func(min, max *Node, nestingDepth, nodeDepth int)

// MapBananaDFS performs the same banana-by-banana depth-first traversal
// as WalkIterator, but pushes every visit through visit rather than
// requiring the caller to step an iterator. Grounded directly on
// map_banana_dfs: an explicit stack of (node, nestingDepth, nodeDepth),
// seeded with the root, visiting in-trail children before mid-trail
// children.
func MapBananaDFS(root *Node, visit BananaVisit) {
	type item struct {
		max          *Node
		nestingDepth int
		nodeDepth    int
	}
	stack := []item{{max: root, nestingDepth: 0, nodeDepth: 0}}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visit(cur.max.low, cur.max, cur.nestingDepth, cur.nodeDepth)

		// Collect in-trail then mid-trail children in left-to-right
		// order, then push back to front: stack is LIFO, so pushing in
		// reverse makes the leftmost child pop next, matching encounter
		// order instead of reversing it.
		var children []item
		depth := cur.nodeDepth
		for n := cur.max.in; n != nil; n = n.down {
			depth++
			if n.IsBanana() {
				children = append(children, item{max: n, nestingDepth: cur.nestingDepth + 1, nodeDepth: depth})
			}
		}
		for n := cur.max.mid; n != nil; n = n.down {
			depth++
			if n.IsBanana() {
				children = append(children, item{max: n, nestingDepth: cur.nestingDepth + 1, nodeDepth: depth})
			}
		}
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
}
