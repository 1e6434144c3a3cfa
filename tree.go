package bananatree

import "github.com/banana-persist/bananatree/pool"

// Option configures a Tree before construction. Grounded on the
// teacher's functional-options pattern (persistent/btree's Option /
// Degree(n int) Option).
type Option func(*Tree)

// WithPool injects a pre-built node pool, letting a caller reuse
// allocations across repeated constructions instead of letting each Tree
// own a fresh one.
func WithPool(p *pool.Pool[Node]) Option {
	return func(t *Tree) { t.pool = p }
}

// Tree is one of the two dual banana trees (up or down) built over an
// ordered sample sequence. Construct must be called before Walk, Outline,
// or any accessor is used.
type Tree struct {
	sign Sign
	pool *pool.Pool[Node]

	specialRoot *Node
	globalMax   Item

	constructed bool
}

// New creates an unconstructed tree for the given sign. Call Construct
// with the left and right endpoints of the sample sequence to build it.
func New(sign Sign, opts ...Option) *Tree {
	t := &Tree{sign: sign}
	for _, opt := range opts {
		opt(t)
	}
	if t.pool == nil {
		t.pool = pool.New[Node]()
	}
	return t
}

// Sign returns which dual tree this is.
func (t *Tree) Sign() Sign { return t.sign }

// SpecialRoot returns the tree's special root node, representing
// sign-oriented infinity. Valid only after Construct.
func (t *Tree) SpecialRoot() *Node {
	assertThat(t.constructed, "SpecialRoot called before Construct")
	return t.specialRoot
}

// GlobalMax returns the sample item with the most extreme oriented value
// encountered during construction.
func (t *Tree) GlobalMax() Item {
	assertThat(t.constructed, "GlobalMax called before Construct")
	return t.globalMax
}

func (t *Tree) allocNode(item Item) *Node {
	n := t.pool.Construct(func(n *Node) {
		*n = Node{item: item, sign: t.sign}
		n.low = n
	})
	return n
}

// freeNode returns a node to the tree's pool. Construction uses it to
// release the temporary fake-left node; other nodes are left to Go's
// garbage collector, which -- unlike the original's manual recycling
// allocator -- reclaims unreachable nodes on its own.
func (t *Tree) freeNode(n *Node) {
	t.pool.Free(n)
}
