package abstract

import "github.com/ansel1/merry"

// Check verifies the structural invariants of the subtree rooted at root:
// every height is 1 + the larger child height, every stored balance factor
// equals height(right) - height(left) and lies in [-1, 1], and an in-order
// walk is non-decreasing under cmp. It returns the number of nodes.
func Check[E any](root *Node[E], cmp func(a, b *E) int) (count int, err error) {
	var prev *E
	return check(root, cmp, &prev)
}

func check[E any](n *Node[E], cmp func(a, b *E) int, prev **E) (int, error) {
	if n == nil {
		return 0, nil
	}
	if n.elem == nil {
		return 0, merry.New("node holds no element")
	}
	lc, err := check(n.left, cmp, prev)
	if err != nil {
		return 0, err
	}
	if *prev != nil && cmp(*prev, n.elem) > 0 {
		return 0, merry.Errorf("out of order: %v before %v", **prev, *n.elem)
	}
	*prev = n.elem
	rc, err := check(n.right, cmp, prev)
	if err != nil {
		return 0, err
	}
	lh, rh := n.left.Height(), n.right.Height()
	expHeight := 1 + lh
	if rh > lh {
		expHeight = 1 + rh
	}
	switch {
	case n.height != expHeight:
		return 0, merry.Errorf("node %v: height %d, expected %d", *n.elem, n.height, expHeight)
	case n.balance != rh-lh:
		return 0, merry.Errorf("node %v: balance %d, expected %d", *n.elem, n.balance, rh-lh)
	case n.balance < -1 || n.balance > 1:
		return 0, merry.Errorf("node %v: unbalanced (%d)", *n.elem, n.balance)
	}
	return lc + rc + 1, nil
}
