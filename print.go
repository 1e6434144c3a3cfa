package bananatree

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// Sprint renders the tree as an indented diagnostic dump, banana by
// banana, in the same spirit as the teacher's printTree/ppt test
// helpers: a root node labeled with the special root's pair, branches
// for each nested banana found along in-trail then mid-trail.
func (t *Tree) Sprint() string {
	assertThat(t.constructed, "Sprint called before Construct")
	root := tp.New()
	root.SetValue(fmt.Sprintf("special-root(%v)", t.sign))
	printBanana(root, t.specialRoot)
	return root.String()
}

func printBanana(branch tp.Tree, max *Node) {
	min := max.low
	label := fmt.Sprintf("(%v, %v)", min.item, max.item)
	b := branch.AddBranch(label)
	MapInTrail(max, func(n *Node) {
		if n.IsBanana() {
			printBanana(b, n)
		}
	})
	MapMidTrail(max, func(n *Node) {
		if n.IsBanana() {
			printBanana(b, n)
		}
	})
}

func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%v", n.item)
}
