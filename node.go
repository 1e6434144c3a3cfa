package bananatree

// Node is a banana-tree node: six links (up, down, in, mid, low, death)
// plus a back-reference to the sample item it was built for and a spine
// label. Minimum nodes are self-loops on low (low == self); internal
// (maximum) nodes have low pointing at their partner minimum.
//
// Trail membership -- whether a node lies on its banana's in-trail or
// mid-trail -- is never cached on the node. IsOnInTrail/IsOnMidTrail
// derive it on demand by walking the in- and mid-chains of n.up; the
// interval order of the node's item is not consulted.
type Node struct {
	item Item
	sign Sign

	up, down *Node
	in, mid  *Node
	low      *Node
	death    *Node

	spine SpineLabel
}

// newNode allocates a node for item under sign, initialized as its own
// minimum (low == self) until construction proves otherwise.
func newNode(sign Sign, item Item) *Node {
	n := &Node{item: item, sign: sign}
	n.low = n
	return n
}

// Item returns the sample item this node was built for.
func (n *Node) Item() Item { return n.item }

// Sign returns which of the two dual trees this node belongs to.
func (n *Node) Sign() Sign { return n.sign }

// Spine returns this node's spine label, valid only after the owning
// tree's construction has completed.
func (n *Node) Spine() SpineLabel { return n.spine }

// replaceItem swaps in a new item for this node, returning the old one,
// without reallocating the node. Nothing in this package calls it.
func (n *Node) replaceItem(item Item) Item {
	old := n.item
	n.item = item
	return old
}

// IsMinimum reports whether n is a minimum node, i.e. low points at n
// itself.
func (n *Node) IsMinimum() bool { return n.low == n }

// IsInternal reports whether n is an internal (maximum) node.
func (n *Node) IsInternal() bool { return !n.IsMinimum() }

// IsBanana reports whether n is the death node of some banana, i.e. its
// partner minimum's death link points back at n.
func (n *Node) IsBanana() bool {
	return n.IsInternal() && n.low.death == n
}

// Partner returns this node's minimum (if n is internal) or this node
// itself (if n is already a minimum).
func (n *Node) Partner() *Node { return n.low }

// IsOnInTrail reports whether n lies on its enclosing banana's in-trail,
// i.e. whether n.up's in-chain passes through n. Every non-minimum node
// is wired onto exactly one of its parent's two trails when attached
// (see attachBelowOnLeft/attachBelowOnRight), so this is a direct
// membership check against n.up rather than a recomputation from item
// ordering.
func (n *Node) IsOnInTrail() bool {
	if n.IsMinimum() || n.up == nil {
		return false
	}
	for p := n.up.in; p != nil; p = p.down {
		if p == n {
			return true
		}
	}
	return false
}

// IsOnMidTrail reports whether n lies on its enclosing banana's
// mid-trail, symmetric to IsOnInTrail.
func (n *Node) IsOnMidTrail() bool {
	if n.IsMinimum() || n.up == nil {
		return false
	}
	for p := n.up.mid; p != nil; p = p.down {
		if p == n {
			return true
		}
	}
	return false
}
