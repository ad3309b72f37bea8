// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package abstract

import (
	"fmt"
	"strings"
)

// Node is a node of an AVL tree. It owns one element and its two children.
//
// The height of a leaf is 0 and the height of an absent child is -1. The
// balance factor is height(right) - height(left); outside of an ongoing
// mutation it is always in [-1, 1].
type Node[E any] struct {
	elem    *E
	height  int
	balance int
	left    *Node[E]
	right   *Node[E]
}

// Probe compares the value being searched for against elem in the
// cmp.Compare convention: negative if the probe sorts before elem (the
// search descends left), positive if it sorts after (the search descends
// right), zero on a match.
type Probe[E any] func(elem *E) int

// Order is the order in which Traverse visits elements.
type Order int

const (
	// PreOrder visits a node, then its left and right subtrees.
	PreOrder Order = iota
	// InOrder visits the left subtree, the node, then the right subtree.
	InOrder
	// PostOrder visits the left and right subtrees, then the node.
	PostOrder
)

func (o Order) String() string {
	switch o {
	case PreOrder:
		return "pre-order"
	case InOrder:
		return "in-order"
	case PostOrder:
		return "post-order"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// Element returns the element stored in the node.
func (n *Node[E]) Element() *E { return n.elem }

// Left returns the left child, which may be nil.
func (n *Node[E]) Left() *Node[E] { return n.left }

// Right returns the right child, which may be nil.
func (n *Node[E]) Right() *Node[E] { return n.right }

// Balance returns the node's balance factor.
func (n *Node[E]) Balance() int { return n.balance }

// Height returns the height of the subtree rooted at n, -1 for a nil node.
func (n *Node[E]) Height() int {
	if n == nil {
		return -1
	}
	return n.height
}

// update recomputes height and balance from the children.
func (n *Node[E]) update() {
	lh, rh := n.left.Height(), n.right.Height()
	if lh > rh {
		n.height = 1 + lh
	} else {
		n.height = 1 + rh
	}
	n.balance = rh - lh
}

// NewNode returns a leaf holding elem, or nil if elem is nil.
func (c *Config[E]) NewNode(elem *E) *Node[E] {
	if elem == nil {
		return nil
	}
	n := c.np.get()
	n.elem = elem
	return n
}

// Find returns the first node on the search path whose element matches
// probe, or nil.
func Find[E any](root *Node[E], probe Probe[E]) *Node[E] {
	if root == nil || probe == nil {
		return nil
	}
	switch c := probe(root.elem); {
	case c < 0:
		return Find(root.left, probe)
	case c > 0:
		return Find(root.right, probe)
	default:
		return root
	}
}

// Insert inserts elem into the subtree rooted at root and returns the new
// subtree root along with whether a node was added. probe must compare elem
// against stored elements.
//
// A nil elem or probe leaves the subtree untouched, as does an element equal
// to a stored one when allowDuplicates is false. With duplicates allowed an
// equal element descends into the right subtree, so equal elements keep
// their insertion order in an in-order walk.
func (c *Config[E]) Insert(
	root *Node[E], elem *E, probe Probe[E], allowDuplicates bool,
) (_ *Node[E], inserted bool) {
	if elem == nil || probe == nil {
		return root, false
	}
	if root == nil {
		return c.NewNode(elem), true
	}
	switch cmp := probe(root.elem); {
	case cmp < 0:
		root.left, inserted = c.Insert(root.left, elem, probe, allowDuplicates)
	case cmp > 0 || allowDuplicates:
		root.right, inserted = c.Insert(root.right, elem, probe, allowDuplicates)
	default:
		return root, false
	}
	if !inserted {
		return root, false
	}
	root.update()
	return c.rebalance(root), true
}

// Remove removes the first node on the search path whose element matches
// probe and returns the new subtree root along with whether anything was
// removed.
//
// When the matching node has two children its element is overwritten by
// the predecessor (if the left subtree is strictly taller) or the successor,
// and the node which held that element is the one released. Callers which
// need the removed element must read it from Find before calling Remove.
func (c *Config[E]) Remove(root *Node[E], probe Probe[E]) (_ *Node[E], removed bool) {
	if root == nil || probe == nil {
		return root, false
	}
	switch cmp := probe(root.elem); {
	case cmp < 0:
		root.left, removed = c.Remove(root.left, probe)
	case cmp > 0:
		root.right, removed = c.Remove(root.right, probe)
	default:
		switch {
		case root.right == nil:
			child := root.left
			c.np.put(root)
			return child, true
		case root.left == nil:
			child := root.right
			c.np.put(root)
			return child, true
		case root.left.height > root.right.height:
			var pred *Node[E]
			root.left, pred = c.removeMax(root.left)
			root.elem = pred.elem
			c.np.put(pred)
		default:
			var succ *Node[E]
			root.right, succ = c.removeMin(root.right)
			root.elem = succ.elem
			c.np.put(succ)
		}
		removed = true
	}
	if !removed {
		return root, false
	}
	root.update()
	return c.rebalance(root), true
}

// removeMin unlinks the leftmost node of the subtree rooted at n. It returns
// the new subtree root and the unlinked node.
func (c *Config[E]) removeMin(n *Node[E]) (_, leftmost *Node[E]) {
	if n.left == nil {
		return n.right, n
	}
	n.left, leftmost = c.removeMin(n.left)
	n.update()
	return c.rebalance(n), leftmost
}

// removeMax unlinks the rightmost node of the subtree rooted at n. It
// returns the new subtree root and the unlinked node.
func (c *Config[E]) removeMax(n *Node[E]) (_, rightmost *Node[E]) {
	if n.right == nil {
		return n.left, n
	}
	n.right, rightmost = c.removeMax(n.right)
	n.update()
	return c.rebalance(n), rightmost
}

// rebalance restores the balance of n, whose children are balanced and whose
// height and balance factor are current. It returns the new subtree root.
func (c *Config[E]) rebalance(n *Node[E]) *Node[E] {
	switch {
	case n.balance <= -2:
		if n.left.balance <= 0 {
			// Left-left.
			return c.rotateRight(n)
		}
		// Left-right.
		n.left = c.rotateLeft(n.left)
		return c.rotateRight(n)
	case n.balance >= 2:
		if n.right.balance >= 0 {
			// Right-right.
			return c.rotateLeft(n)
		}
		// Right-left.
		n.right = c.rotateRight(n.right)
		return c.rotateLeft(n)
	}
	return n
}

// rotateRight promotes the left child of n.
//
// Before:
//
//	      n
//	     / \
//	    p   c
//	   / \
//	  a   b
//
// After:
//
//	    p
//	   / \
//	  a   n
//	     / \
//	    b   c
func (c *Config[E]) rotateRight(n *Node[E]) *Node[E] {
	p := n.left
	n.left = p.right
	p.right = n
	n.update()
	p.update()
	c.rotated(RotateRight, p)
	return p
}

// rotateLeft promotes the right child of n. It mirrors rotateRight.
func (c *Config[E]) rotateLeft(n *Node[E]) *Node[E] {
	p := n.right
	n.right = p.left
	p.left = n
	n.update()
	p.update()
	c.rotated(RotateLeft, p)
	return p
}

// Traverse calls visit with every element of the subtree rooted at root in
// the given order. A nil root or visit does nothing.
func Traverse[E any](root *Node[E], visit func(*E), order Order) {
	if root == nil || visit == nil {
		return
	}
	switch order {
	case PreOrder:
		visit(root.elem)
		Traverse(root.left, visit, order)
		Traverse(root.right, visit, order)
	case InOrder:
		Traverse(root.left, visit, order)
		visit(root.elem)
		Traverse(root.right, visit, order)
	case PostOrder:
		Traverse(root.left, visit, order)
		Traverse(root.right, visit, order)
		visit(root.elem)
	}
}

// Destroy releases every node of the subtree rooted at root, children
// first. If destroy is non-nil it is called with each element before the
// element's slot is cleared. It returns the number of nodes released.
func (c *Config[E]) Destroy(root *Node[E], destroy func(*E)) int {
	if root == nil {
		return 0
	}
	released := c.Destroy(root.left, destroy)
	released += c.Destroy(root.right, destroy)
	if destroy != nil && root.elem != nil {
		destroy(root.elem)
	}
	root.elem = nil
	c.np.put(root)
	return released + 1
}

// WriteString writes the subtree rooted at n to b. The format is similar to
// the https://en.wikipedia.org/wiki/Newick_format.
func (n *Node[E]) WriteString(b *strings.Builder) {
	if n.left != nil {
		b.WriteString("(")
		n.left.WriteString(b)
		b.WriteString(")")
	}
	fmt.Fprintf(b, "%v", *n.elem)
	if n.right != nil {
		b.WriteString("(")
		n.right.WriteString(b)
		b.WriteString(")")
	}
}
