package sample

import (
	"fmt"

	bt "github.com/banana-persist/bananatree"
)

// Item is one sample of a piecewise linear function: an (order, value)
// pair linked to its neighbors in a doubly-linked list. It implements
// bananatree.Item.
type Item struct {
	order float64
	value float64

	left, right *Item
	isLeftEnd   bool
	isRightEnd  bool

	upNode   *bt.Node
	downNode *bt.Node
}

// New creates a detached item at the given order with the given
// function value.
func New(order, value float64) *Item {
	return &Item{order: order, value: value}
}

// NewSequence builds a linked sequence of items from parallel
// order/value slices and flags the first and last as endpoints. It
// panics if the slices differ in length or either is empty.
func NewSequence(orders, values []float64) []*Item {
	if len(orders) != len(values) {
		panic("sample: orders and values must have equal length")
	}
	if len(orders) == 0 {
		panic("sample: cannot build a sequence with no items")
	}
	items := make([]*Item, len(orders))
	for i := range orders {
		items[i] = New(orders[i], values[i])
	}
	for i := 0; i < len(items)-1; i++ {
		items[i].linkItem(items[i+1])
	}
	items[0].isLeftEnd = true
	items[len(items)-1].isRightEnd = true
	return items
}

func (it *Item) String() string {
	return fmt.Sprintf("%.4g@%.4g", it.value, it.order)
}

func (it *Item) IntervalOrder() float64 { return it.order }

func (it *Item) Value(sign bt.Sign) float64 { return sign.Oriented(it.value) }

func (it *Item) IsEndpoint() bool      { return it.isLeftEnd || it.isRightEnd }
func (it *Item) IsLeftEndpoint() bool  { return it.isLeftEnd }
func (it *Item) IsRightEndpoint() bool { return it.isRightEnd }

// IsMaximum reports whether it is a local maximum under sign: an
// interior item whose both neighbors have a strictly smaller oriented
// value. Endpoints are never classified as maxima in this
// representation -- they are either natural minima or down-type.
func (it *Item) IsMaximum(sign bt.Sign) bool {
	if it.IsEndpoint() {
		return false
	}
	return it.Value(sign) > it.left.Value(sign) && it.Value(sign) > it.right.Value(sign)
}

// IsMinimum reports whether it is a local minimum under sign, or -- for
// an endpoint -- whether its single neighbor already has a greater
// oriented value, making a hook unnecessary.
func (it *Item) IsMinimum(sign bt.Sign) bool {
	switch {
	case it.isLeftEnd && it.isRightEnd:
		return true // the only sample in the sequence: trivially a minimum
	case it.isLeftEnd:
		return it.Value(sign) < it.right.Value(sign)
	case it.isRightEnd:
		return it.Value(sign) < it.left.Value(sign)
	default:
		return it.Value(sign) < it.left.Value(sign) && it.Value(sign) < it.right.Value(sign)
	}
}

// IsDownType reports whether an endpoint behaves, under sign, like a
// one-sided maximum: its single neighbor has a smaller oriented value,
// so a hook is needed to manufacture a minimum partner for it. Always
// false for interior items and for the single sample of a singleton
// sequence.
func (it *Item) IsDownType(sign bt.Sign) bool {
	switch {
	case it.isLeftEnd && it.isRightEnd:
		return false
	case it.isLeftEnd:
		return it.Value(sign) > it.right.Value(sign)
	case it.isRightEnd:
		return it.Value(sign) > it.left.Value(sign)
	default:
		return false
	}
}

// IsHook always reports false: every Item comes from the caller's own
// sequence, never from Construct's internal hook synthesis.
func (it *Item) IsHook() bool { return false }

func (it *Item) LeftNeighbor() bt.Item {
	if it.left == nil {
		return nil
	}
	return it.left
}

func (it *Item) RightNeighbor() bt.Item {
	if it.right == nil {
		return nil
	}
	return it.right
}

func (it *Item) AssignNode(sign bt.Sign, n *bt.Node) {
	if sign == bt.Up {
		it.upNode = n
	} else {
		it.downNode = n
	}
}

func (it *Item) GetNode(sign bt.Sign) *bt.Node {
	if sign == bt.Up {
		return it.upNode
	}
	return it.downNode
}

// linkItem splices other in as it's immediate right neighbor, severing
// it's previous right link (and other's previous left link) if any.
func (it *Item) linkItem(other *Item) {
	it.right = other
	other.left = it
	tracer().Debugf("linked %v -> %v", it, other)
}

// Link implements bt.Item's Link(bt.Item) in terms of linkItem, so
// *Item satisfies the interface.
func (it *Item) Link(other bt.Item) {
	o, ok := other.(*Item)
	if !ok {
		panic("sample: Link requires another *sample.Item")
	}
	it.linkItem(o)
}

func (it *Item) CutLeft() {
	if it.left != nil {
		it.left.right = nil
	}
	it.left = nil
}

func (it *Item) CutRight() {
	if it.right != nil {
		it.right.left = nil
	}
	it.right = nil
}

var _ bt.Item = (*Item)(nil)
