package bananatree

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestConstructRejectsNilEndpoints(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bananatree")
	defer teardown()
	//
	items := nestedSequence()
	if _, err := Construct(Up, nil, items[len(items)-1]); err != ErrEmptySequence {
		t.Errorf("expected ErrEmptySequence for nil left, got %v", err)
	}
	if _, err := Construct(Up, items[0], nil); err != ErrEmptySequence {
		t.Errorf("expected ErrEmptySequence for nil right, got %v", err)
	}
}

func TestConstructSingleItemIsSelfLoop(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bananatree")
	defer teardown()
	//
	items := newTestSequence([]float64{0}, []float64{5})
	only := items[0]
	tr, err := Construct(Up, only, only)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	root := tr.SpecialRoot()
	if !root.IsBanana() {
		t.Fatalf("expected special root to be a banana")
	}
	if root.low.Item() != only {
		t.Errorf("expected special root's minimum to be the single item, got %v", root.low.Item())
	}
}

func TestConstructMonotonicIncreasingUpPairsHookAtRight(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bananatree")
	defer teardown()
	//
	items := newTestSequence([]float64{0, 1, 2, 3}, []float64{0, 1, 2, 3})
	left, right := items[0], items[len(items)-1]
	tr, err := Construct(Up, left, right)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	root := tr.SpecialRoot()
	if root.low.Item() != left {
		t.Errorf("expected global survivor to be the left endpoint, got %v", root.low.Item())
	}
	rightNode := right.GetNode(Up)
	if rightNode == nil {
		t.Fatalf("expected right endpoint to have an Up node")
	}
	if !rightNode.IsBanana() {
		t.Fatalf("expected right endpoint's node to be a banana (paired with its hook)")
	}
	if !rightNode.low.IsMinimum() || rightNode.low.Item() == right {
		t.Errorf("expected right endpoint's partner to be a synthetic hook minimum")
	}
}

func TestConstructNestedBananas(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bananatree")
	defer teardown()
	//
	items := nestedSequence()
	left, right := items[0], items[len(items)-1]
	tr, err := Construct(Up, left, right)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	root := tr.SpecialRoot()
	if root.low.Item() != items[4] {
		t.Fatalf("expected global survivor to be items[4] (value -1), got %v", root.low.Item())
	}
	if tr.GlobalMax() != items[3] {
		t.Errorf("expected global max to be items[3] (value 3), got %v", tr.GlobalMax())
	}

	n1 := items[1].GetNode(Up) // value 2, paired with items[2] (value 1)
	n3 := items[3].GetNode(Up) // value 3, paired with items[0] (value 0)
	if n1 == nil || n3 == nil {
		t.Fatalf("expected items[1] and items[3] to have Up nodes")
	}
	if !n1.IsBanana() || n1.low.Item() != items[2] {
		t.Errorf("expected items[1] banana to be paired with items[2], got low=%v", n1.low.Item())
	}
	if !n3.IsBanana() || n3.low.Item() != items[0] {
		t.Errorf("expected items[3] banana to be paired with items[0], got low=%v", n3.low.Item())
	}

	// n1's banana must nest inside n3's: n3's mid-trail holds n1.
	found := false
	MapMidTrail(n3, func(n *Node) {
		if n == n1 {
			found = true
		}
	})
	if !found {
		t.Errorf("expected n1 to be reachable on n3's mid-trail")
	}
}

func TestConstructTwiceFails(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bananatree")
	defer teardown()
	//
	items := nestedSequence()
	tr, err := Construct(Up, items[0], items[len(items)-1])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := tr.construct(items[0], items[len(items)-1]); err != ErrAlreadyConstruct {
		t.Errorf("expected ErrAlreadyConstruct on second construct, got %v", err)
	}
}
