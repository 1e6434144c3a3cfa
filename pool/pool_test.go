package pool

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

type widget struct {
	n int
}

func TestConstructInitializesValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bananatree.pool")
	defer teardown()
	//
	p := New[widget]()
	w := p.Construct(func(w *widget) { w.n = 7 })
	if w.n != 7 {
		t.Errorf("expected constructed value to be initialized, got %d", w.n)
	}
}

func TestFreeReusesSlotAndBumpsGeneration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bananatree.pool")
	defer teardown()
	//
	p := New[widget]()
	a := p.Construct(func(w *widget) { w.n = 1 })
	genBefore := p.Generation(a)
	p.Free(a)
	b := p.Construct(func(w *widget) { w.n = 2 })
	if b != a {
		t.Fatalf("expected Construct to reuse the freed slot")
	}
	if p.Generation(b) != genBefore+1 {
		t.Errorf("expected generation to be bumped by Free, got %d, want %d", p.Generation(b), genBefore+1)
	}
}

func TestFreeOnForeignPointerPanics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bananatree.pool")
	defer teardown()
	//
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected Free on a foreign pointer to panic")
		}
	}()
	p := New[widget]()
	p.Free(&widget{})
}

func TestGenerationOfUnknownPointerIsZero(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bananatree.pool")
	defer teardown()
	//
	p := New[widget]()
	if g := p.Generation(&widget{}); g != 0 {
		t.Errorf("expected generation of an unknown pointer to be 0, got %d", g)
	}
}
