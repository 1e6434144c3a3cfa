package diagram

import (
	"fmt"
	"sort"

	bt "github.com/banana-persist/bananatree"
)

// Kind classifies a persistence pair.
type Kind uint8

const (
	// Ordinary pairs are up-tree pairs that die at a finite maximum.
	Ordinary Kind = iota
	// Essential pairs are up-tree pairs that die at the special root
	// (sign-oriented infinity); the tree's global max is recorded as
	// their death.
	Essential
	// Relative pairs are the pairs of the down-tree. Pairs born at a hook
	// are not recorded in either tree.
	Relative
)

func (k Kind) String() string {
	switch k {
	case Essential:
		return "essential"
	case Relative:
		return "relative"
	default:
		return "ordinary"
	}
}

// Pair is one persistence pair: the item at which a component is born
// and the item at which it dies (merges into an older one), together
// with the sign of the tree it came from.
type Pair struct {
	Sign  bt.Sign
	Birth bt.Item
	Death bt.Item
	Kind  Kind
}

func (p Pair) String() string {
	return fmt.Sprintf("%s:(%v,%v)[%s]", p.Sign, p.Birth, p.Death, p.Kind)
}

// birthKey identifies a pair by the sign of the tree it came from and
// its birth item: a singleton sequence's one item is simultaneously a
// minimum of the up-tree and of the down-tree, so the sign must be part
// of the key or the second AddPair would collide with the first.
type birthKey struct {
	sign  bt.Sign
	birth bt.Item
}

// Diagram is the persistence diagram of one sample sequence: the union
// of the pairs extracted from its up-tree and down-tree, plus the
// nesting arrows between them.
type Diagram struct {
	byBirth map[birthKey]*Pair
	pairs   []*Pair
	arrows  map[birthKey]bt.Item // child birth -> parent birth
}

// New returns an empty diagram.
func New() *Diagram {
	return &Diagram{
		byBirth: make(map[birthKey]*Pair),
		arrows:  make(map[birthKey]bt.Item),
	}
}

// AddPair records a persistence pair. It panics if (sign, birth) already
// has a pair, or if death is nil.
func (d *Diagram) AddPair(sign bt.Sign, birth, death bt.Item, kind Kind) {
	assertThat(death != nil, "AddPair: death must not be nil")
	key := birthKey{sign, birth}
	_, exists := d.byBirth[key]
	assertThat(!exists, "AddPair: (%v, %v) already has a pair", sign, birth)
	p := &Pair{Sign: sign, Birth: birth, Death: death, Kind: kind}
	d.byBirth[key] = p
	d.pairs = append(d.pairs, p)
	tracer().Debugf("diagram: added pair %s", p)
}

// AddArrow records that the banana born at child is nested directly
// inside the banana born at parent, both under sign. Both must already
// have pairs under that sign.
func (d *Diagram) AddArrow(sign bt.Sign, child, parent bt.Item) {
	childKey, parentKey := birthKey{sign, child}, birthKey{sign, parent}
	_, ok1 := d.byBirth[childKey]
	_, ok2 := d.byBirth[parentKey]
	assertThat(ok1 && ok2, "AddArrow: both child and parent must already have pairs")
	d.arrows[childKey] = parent
}

// Pairs returns all pairs in the diagram, in the order they were added.
func (d *Diagram) Pairs() []*Pair { return d.pairs }

// Death returns the death item paired with birth under sign, if any.
func (d *Diagram) Death(sign bt.Sign, birth bt.Item) (bt.Item, bool) {
	p, ok := d.byBirth[birthKey{sign, birth}]
	if !ok {
		return nil, false
	}
	return p.Death, true
}

// Parent returns the birth item of the banana directly enclosing the
// one born at birth under sign, if any.
func (d *Diagram) Parent(sign bt.Sign, birth bt.Item) (bt.Item, bool) {
	p, ok := d.arrows[birthKey{sign, birth}]
	return p, ok
}

// Extract walks up and down's bananas and assembles their combined
// persistence diagram.
func Extract(up, down *bt.Tree) *Diagram {
	d := New()
	extractTree(d, up)
	extractTree(d, down)
	return d
}

func extractTree(d *Diagram, t *bt.Tree) {
	var parentStack []bt.Item
	bt.MapBananaDFS(t.SpecialRoot(), func(min, max *bt.Node, nestingDepth, _ int) {
		birth, death := min.Item(), max.Item()
		if birth.IsHook() {
			return
		}
		kind := Ordinary
		if max == t.SpecialRoot() {
			kind = Essential
			death = t.GlobalMax()
		}
		if t.Sign() == bt.Down {
			kind = Relative
		}
		d.AddPair(t.Sign(), birth, death, kind)
		if nestingDepth > 0 && len(parentStack) >= nestingDepth {
			d.AddArrow(t.Sign(), birth, parentStack[nestingDepth-1])
		}
		if len(parentStack) < nestingDepth+1 {
			parentStack = append(parentStack, birth)
		} else {
			parentStack = parentStack[:nestingDepth]
			parentStack = append(parentStack, birth)
		}
	})
}

// SymmetricDifference reports, for two diagrams, how many points differ
// (present in exactly one of a, b) and how many arrows differ, treating
// each as an unordered comparison over (sign, birth, death) and
// (child, parent) tuples respectively.
func SymmetricDifference(a, b *Diagram) (points, arrows int) {
	pa := pointKeys(a)
	pb := pointKeys(b)
	points = symDiffCount(pa, pb)

	aa := arrowKeys(a)
	ab := arrowKeys(b)
	arrows = symDiffCount(aa, ab)
	return
}

func pointKeys(d *Diagram) []string {
	keys := make([]string, 0, len(d.pairs))
	for _, p := range d.pairs {
		keys = append(keys, fmt.Sprintf("%s|%v|%v", p.Sign, p.Birth, p.Death))
	}
	sort.Strings(keys)
	return keys
}

func arrowKeys(d *Diagram) []string {
	keys := make([]string, 0, len(d.arrows))
	for child, parent := range d.arrows {
		keys = append(keys, fmt.Sprintf("%v|%v", child, parent))
	}
	sort.Strings(keys)
	return keys
}

func symDiffCount(a, b []string) int {
	i, j, diff := 0, 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			i++
			j++
		case a[i] < b[j]:
			diff++
			i++
		default:
			diff++
			j++
		}
	}
	diff += (len(a) - i) + (len(b) - j)
	return diff
}

func assertThat(cond bool, msg string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf("diagram: "+msg, args...))
	}
}
