package bananatree

// hookItem and infinityItem are synthetic Items used only during
// construction: a hook manufactures a minimum partner for an endpoint
// that is "down type" under sign, and the two infinity items bound the
// scan on both sides so the construction stack never underflows.
type hookItem struct {
	sign  Sign
	order float64
	value float64
}

func (h *hookItem) IntervalOrder() float64          { return h.order }
func (h *hookItem) Value(sign Sign) float64         { return sign.Oriented(h.value) }
func (h *hookItem) IsEndpoint() bool                 { return false }
func (h *hookItem) IsLeftEndpoint() bool             { return false }
func (h *hookItem) IsRightEndpoint() bool            { return false }
func (h *hookItem) IsMaximum(Sign) bool              { return false }
func (h *hookItem) IsMinimum(Sign) bool              { return true }
func (h *hookItem) IsDownType(Sign) bool             { return false }
func (h *hookItem) IsHook() bool                      { return true }
func (h *hookItem) LeftNeighbor() Item                { return nil }
func (h *hookItem) RightNeighbor() Item               { return nil }
func (h *hookItem) AssignNode(sign Sign, n *Node)     {}
func (h *hookItem) GetNode(sign Sign) *Node           { return nil }
func (h *hookItem) Link(Item)                         {}
func (h *hookItem) CutLeft()                          {}
func (h *hookItem) CutRight()                         {}

type infinityItem struct {
	order float64
}

func (f *infinityItem) IntervalOrder() float64      { return f.order }
func (f *infinityItem) Value(sign Sign) float64     { return sign.Infinity() }
func (f *infinityItem) IsEndpoint() bool             { return false }
func (f *infinityItem) IsLeftEndpoint() bool         { return false }
func (f *infinityItem) IsRightEndpoint() bool        { return false }
func (f *infinityItem) IsMaximum(Sign) bool          { return true }
func (f *infinityItem) IsMinimum(Sign) bool          { return false }
func (f *infinityItem) IsDownType(Sign) bool         { return false }
func (f *infinityItem) IsHook() bool                  { return false }
func (f *infinityItem) LeftNeighbor() Item            { return nil }
func (f *infinityItem) RightNeighbor() Item           { return nil }
func (f *infinityItem) AssignNode(sign Sign, n *Node) {}
func (f *infinityItem) GetNode(sign Sign) *Node       { return nil }
func (f *infinityItem) Link(Item)                     {}
func (f *infinityItem) CutLeft()                      {}
func (f *infinityItem) CutRight()                     {}

// recordRole classifies a construction record for the purposes of the
// construction stack: every record is either a candidate minimum or a
// maximum/down-type boundary.
type recordRole uint8

const (
	roleMinimum recordRole = iota
	roleMaxOrDown
)

type constructionRecord struct {
	item Item
	role recordRole
	node *Node
}

// frame is an open component on the construction stack: min is the
// lowest (in sign-oriented terms) minimum known to be part of this
// component so far, max is the maximum node that currently bounds it on
// the right.
type frame struct {
	min *Node
	max *Node
}

// Construct builds the tree over the ordered sample sequence delimited
// by left and right (inclusive), using the elder-rule merge algorithm:
// a single left-to-right scan with a stack of open components, pairing
// each minimum with the boundary maximum at which its component merges
// into an older (lower, in sign-oriented terms) one.
func Construct(sign Sign, left, right Item, opts ...Option) (*Tree, error) {
	if left == nil || right == nil {
		return nil, ErrEmptySequence
	}
	t := New(sign, opts...)
	if err := t.construct(left, right); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Tree) construct(left, right Item) error {
	if t.constructed {
		return ErrAlreadyConstruct
	}

	records := t.buildRecords(left, right)
	if len(records) == 0 {
		return ErrEmptySequence
	}

	fakeLeft := t.allocNode(&infinityItem{order: left.IntervalOrder() - 1})
	stack := []frame{{min: fakeLeft, max: fakeLeft}}
	var currentMin *Node

	attach := func(j *Node) {
		top := stack[len(stack)-1]
		t.attachBelowOnLeft(j, top.max)
		stack = append(stack, frame{min: currentMin, max: j})
	}

	for _, rec := range records {
		n := t.allocNode(rec.item)
		rec.item.AssignNode(t.sign, n)
		rec.node = n

		if rec.role == roleMinimum {
			currentMin = n
			continue
		}
		for len(stack) > 1 && stack[len(stack)-1].max.Value() < n.Value() {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			// top.max heads the in-trail of the frame below it; unhook it
			// there before it moves onto n's mid-trail.
			if below := stack[len(stack)-1].max; below.in == top.max {
				below.in = top.max.down
			}
			t.attachBelowOnRight(top.max, n)
			if currentMin.Value() > top.min.Value() {
				t.fixBanana(currentMin, top.max)
				currentMin = top.min
			} else {
				t.fixBanana(top.min, top.max)
			}
			tracer().Debugf("construct: closed component bounded by %v", top.max)
		}
		attach(n)
	}

	specialRoot := t.allocNode(&infinityItem{order: right.IntervalOrder() + 1})
	for len(stack) > 1 && stack[len(stack)-1].max.Value() < specialRoot.Value() {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if below := stack[len(stack)-1].max; below.in == top.max {
			below.in = top.max.down
		}
		t.attachBelowOnRight(top.max, specialRoot)
		if currentMin.Value() > top.min.Value() {
			t.fixBanana(currentMin, top.max)
			currentMin = top.min
		} else {
			t.fixBanana(top.min, top.max)
		}
	}
	top := stack[len(stack)-1]
	t.attachBelowOnLeft(specialRoot, top.max)
	t.fixBanana(currentMin, specialRoot)

	specialRoot.up, specialRoot.down = nil, nil
	t.freeNode(fakeLeft)
	t.specialRoot = specialRoot
	t.globalMax = t.computeGlobalMax(records)
	t.constructed = true
	t.initializeSpineLabels()
	return nil
}

// Value returns this node's sign-oriented function value: its item's
// oriented value, which for an infinity sentinel node is the sign's
// infinity.
func (n *Node) Value() float64 {
	return n.item.Value(n.sign)
}

// buildRecords scans [left,right] admitting endpoints and sign-critical
// items, inserting hook records where an endpoint is down-type under
// sign.
func (t *Tree) buildRecords(left, right Item) []*constructionRecord {
	var records []*constructionRecord

	if left.IsDownType(t.sign) {
		h := &hookItem{sign: t.sign, order: left.IntervalOrder() - 0.5,
			value: t.sign.TinyOffset(left.Value(t.sign) * float64(t.sign))}
		records = append(records, &constructionRecord{item: h, role: roleMinimum})
	}
	records = append(records, &constructionRecord{item: left, role: classify(left, t.sign)})

	if left != right {
		for cur := left.RightNeighbor(); cur != nil && cur != right; cur = cur.RightNeighbor() {
			if cur.IsEndpoint() || IsCritical(cur, t.sign) {
				records = append(records, &constructionRecord{item: cur, role: classify(cur, t.sign)})
			}
		}
		records = append(records, &constructionRecord{item: right, role: classify(right, t.sign)})
	}
	if right.IsDownType(t.sign) {
		h := &hookItem{sign: t.sign, order: right.IntervalOrder() + 0.5,
			value: t.sign.TinyOffset(right.Value(t.sign) * float64(t.sign))}
		records = append(records, &constructionRecord{item: h, role: roleMinimum})
	}
	return records
}

func classify(item Item, sign Sign) recordRole {
	if item.IsMinimum(sign) {
		return roleMinimum
	}
	assertThat(item.IsMaximum(sign) || item.IsDownType(sign),
		"item %v is neither minimum, maximum, nor down-type under sign %v", item, sign)
	return roleMaxOrDown
}

func (t *Tree) computeGlobalMax(records []*constructionRecord) Item {
	var best Item
	var bestValue float64
	for _, rec := range records {
		if _, isHook := rec.item.(*hookItem); isHook {
			continue
		}
		v := rec.item.Value(t.sign)
		if best == nil || v > bestValue {
			best, bestValue = rec.item, v
		}
	}
	return best
}

// attachBelowOnLeft wires child onto parent's in-trail, as the new entry
// point; whatever was previously parent's in-trail head continues below
// child via child.down.
func (t *Tree) attachBelowOnLeft(child, parent *Node) {
	child.up = parent
	child.down = parent.in
	parent.in = child
}

// attachBelowOnRight wires child onto parent's mid-trail, symmetric to
// attachBelowOnLeft.
func (t *Tree) attachBelowOnRight(child, parent *Node) {
	child.up = parent
	child.down = parent.mid
	parent.mid = child
}

// fixBanana finalizes min as the minimum of a banana whose maximum is
// max: min becomes its own low (a genuine minimum) and max's partner.
func (t *Tree) fixBanana(min, max *Node) {
	assertThat(min.IsMinimum(), "fixBanana: %v is not a minimum", min)
	min.death = max
	max.low = min
	tracer().Debugf("construct: fixed banana (%v, %v)", min, max)
}

// initializeSpineLabels walks the special root's in-trail (left spine)
// and mid-trail-then-in-trail chain (right spine), labeling each node
// encountered.
func (t *Tree) initializeSpineLabels() {
	for n := t.specialRoot.in; n != nil; n = n.in {
		n.spine = mergeSpine(n.spine, LeftSpine)
		if n.IsMinimum() {
			break
		}
	}
	for n := t.specialRoot.mid; n != nil; {
		n.spine = mergeSpine(n.spine, RightSpine)
		if n.IsMinimum() {
			break
		}
		if n.in != nil {
			n = n.in
		} else {
			break
		}
	}
}

func mergeSpine(existing, add SpineLabel) SpineLabel {
	if existing == NoSpine {
		return add
	}
	if existing != add {
		return BothSpines
	}
	return existing
}
