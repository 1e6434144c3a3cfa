package bananatree

// testItem is a minimal Item implementation used only by this package's
// own tests, so they need not depend on the sibling sample package (that
// would invert the dependency direction sample relies on).
type testItem struct {
	order, value float64
	left, right  *testItem
	isLeftEnd    bool
	isRightEnd   bool
	upNode       *Node
	downNode     *Node
}

func newTestSequence(orders, values []float64) []*testItem {
	items := make([]*testItem, len(orders))
	for i := range orders {
		items[i] = &testItem{order: orders[i], value: values[i]}
	}
	for i := 0; i < len(items)-1; i++ {
		items[i].right = items[i+1]
		items[i+1].left = items[i]
	}
	items[0].isLeftEnd = true
	items[len(items)-1].isRightEnd = true
	return items
}

func (it *testItem) IntervalOrder() float64  { return it.order }
func (it *testItem) Value(sign Sign) float64 { return sign.Oriented(it.value) }
func (it *testItem) IsEndpoint() bool        { return it.isLeftEnd || it.isRightEnd }
func (it *testItem) IsLeftEndpoint() bool    { return it.isLeftEnd }
func (it *testItem) IsRightEndpoint() bool   { return it.isRightEnd }

func (it *testItem) IsMaximum(sign Sign) bool {
	if it.IsEndpoint() {
		return false
	}
	return it.Value(sign) > it.left.Value(sign) && it.Value(sign) > it.right.Value(sign)
}

func (it *testItem) IsMinimum(sign Sign) bool {
	switch {
	case it.isLeftEnd && it.isRightEnd:
		return true
	case it.isLeftEnd:
		return it.Value(sign) < it.right.Value(sign)
	case it.isRightEnd:
		return it.Value(sign) < it.left.Value(sign)
	default:
		return it.Value(sign) < it.left.Value(sign) && it.Value(sign) < it.right.Value(sign)
	}
}

func (it *testItem) IsDownType(sign Sign) bool {
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

func (it *testItem) IsHook() bool { return false }

func (it *testItem) LeftNeighbor() Item {
	if it.left == nil {
		return nil
	}
	return it.left
}

func (it *testItem) RightNeighbor() Item {
	if it.right == nil {
		return nil
	}
	return it.right
}

func (it *testItem) AssignNode(sign Sign, n *Node) {
	if sign == Up {
		it.upNode = n
	} else {
		it.downNode = n
	}
}

func (it *testItem) GetNode(sign Sign) *Node {
	if sign == Up {
		return it.upNode
	}
	return it.downNode
}

func (it *testItem) Link(other Item) {
	o := other.(*testItem)
	it.right = o
	o.left = it
}

func (it *testItem) CutLeft() {
	if it.left != nil {
		it.left.right = nil
	}
	it.left = nil
}

func (it *testItem) CutRight() {
	if it.right != nil {
		it.right.left = nil
	}
	it.right = nil
}

var _ Item = (*testItem)(nil)

// nestedSequence is the fixture used across this package's tests: five
// samples whose Up-tree has one banana nested inside another, plus a
// third banana surviving to the special root.
//
//	order:  0    1    2    3    4
//	value:  0    2    1    3   -1
func nestedSequence() []*testItem {
	return newTestSequence(
		[]float64{0, 1, 2, 3, 4},
		[]float64{0, 2, 1, 3, -1},
	)
}

// siblingSequence is the fixture exercising the multi-sibling case: the
// last maximum (index 5) closes two open components in the same
// construction pass, giving it two sibling banana children on its
// mid-trail (items[1]'s banana and items[3]'s banana) instead of one.
//
//	order:  0    1    2    3    4    5    6
//	value:  0    3    1    2   0.5   10   -5
func siblingSequence() []*testItem {
	return newTestSequence(
		[]float64{0, 1, 2, 3, 4, 5, 6},
		[]float64{0, 3, 1, 2, 0.5, 10, -5},
	)
}
