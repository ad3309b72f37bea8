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

package avl

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ajwerner/avl/internal/abstract"
	"github.com/ajwerner/avl/internal/logger"
	"github.com/ajwerner/avl/status"
)

// Tree is an AVL tree of *E.
//
// A nil *Tree reports status.ContainerNull from every operation, as does a
// Tree after Destroy.
type Tree[E any] struct {
	root            *abstract.Node[E]
	allowDuplicates bool
	count           int
	destroyed       bool
	cfg             abstract.Config[E]
	log             logrus.FieldLogger
}

// New returns an empty tree.
func New[E any](allowDuplicates bool) *Tree[E] {
	return NewWithConfig[E](Config{AllowDuplicates: allowDuplicates})
}

// NewWithConfig returns an empty tree configured by cfg.
func NewWithConfig[E any](cfg Config) *Tree[E] {
	t := &Tree[E]{
		allowDuplicates: cfg.AllowDuplicates,
		log:             logger.Wrap(cfg.Logger, "avl"),
	}
	t.cfg = abstract.MakeConfig[E](t.rotated)
	return t
}

func (t *Tree[E]) usable() bool {
	return t != nil && !t.destroyed
}

func (t *Tree[E]) logger() logrus.FieldLogger {
	if t.log == nil {
		t.log = logger.For("avl")
	}
	return t.log
}

func (t *Tree[E]) rotated(r abstract.Rotation, promoted *abstract.Node[E]) {
	t.logger().Debugf("rotated %s, subtree height %d", r, promoted.Height())
}

// Find returns the stored element equal to probe under cmp, or nil. With
// duplicates the element returned is the first one met on the search path
// from the root.
func (t *Tree[E]) Find(probe *E, cmp Compare[E]) *E {
	if probe == nil || cmp == nil {
		return nil
	}
	return t.FindFunc(cmp.probe(probe))
}

// FindFunc is like Find but searches with probe, which compares the sought
// value against a stored element in the cmp.Compare convention. It allows
// searching by something other than an *E.
func (t *Tree[E]) FindFunc(probe func(elem *E) int) *E {
	if !t.usable() || probe == nil {
		return nil
	}
	if n := abstract.Find(t.root, abstract.Probe[E](probe)); n != nil {
		return n.Element()
	}
	return nil
}

// Insert adds elem to the tree. Inserting an element equal to a stored one
// into a tree which does not allow duplicates fails with
// status.DuplicateElement and leaves the tree unchanged.
func (t *Tree[E]) Insert(elem *E, cmp Compare[E]) error {
	switch {
	case !t.usable():
		return status.NewError(status.ContainerNull, "insert: tree is nil")
	case elem == nil:
		return status.NewError(status.ElementNull, "insert: element is nil")
	case cmp == nil:
		return status.NewError(status.MissingCallback, "insert: comparator is nil")
	}
	probe := cmp.probe(elem)
	if !t.allowDuplicates && abstract.Find(t.root, probe) != nil {
		t.logger().Debugf("insert refused, %d elements stored: duplicate", t.count)
		return status.NewError(status.DuplicateElement, "insert: element is already stored")
	}
	root, inserted := t.cfg.Insert(t.root, elem, probe, t.allowDuplicates)
	if !inserted {
		return status.NewError(status.NodeAllocation, "insert: no node was allocated")
	}
	t.root = root
	t.count++
	return nil
}

// Remove removes the element equal to probe under cmp and hands it back to
// the caller. It returns a nil element and a nil error if there is no such
// element, and status.ContainerEmpty if the tree is empty.
func (t *Tree[E]) Remove(probe *E, cmp Compare[E]) (*E, error) {
	switch {
	case !t.usable():
		return nil, status.NewError(status.ContainerNull, "remove: tree is nil")
	case probe == nil:
		return nil, status.NewError(status.ElementNull, "remove: probe is nil")
	case cmp == nil:
		return nil, status.NewError(status.MissingCallback, "remove: comparator is nil")
	}
	return t.remove(cmp.probe(probe))
}

// RemoveFunc is like Remove but searches with probe, see FindFunc.
func (t *Tree[E]) RemoveFunc(probe func(elem *E) int) (*E, error) {
	switch {
	case !t.usable():
		return nil, status.NewError(status.ContainerNull, "remove: tree is nil")
	case probe == nil:
		return nil, status.NewError(status.MissingCallback, "remove: probe is nil")
	}
	return t.remove(probe)
}

func (t *Tree[E]) remove(probe abstract.Probe[E]) (*E, error) {
	if t.root == nil {
		return nil, status.NewError(status.ContainerEmpty, "remove: tree is empty")
	}
	n := abstract.Find(t.root, probe)
	if n == nil {
		return nil, nil
	}
	// The element must be read before the engine runs: a node with two
	// children is kept and handed its neighbour's element.
	removed := n.Element()
	t.root, _ = t.cfg.Remove(t.root, probe)
	t.count--
	return removed, nil
}

// Traverse calls visit with every element in the given order.
func (t *Tree[E]) Traverse(order Order, visit func(elem *E)) error {
	switch {
	case !t.usable():
		return status.NewError(status.ContainerNull, "traverse: tree is nil")
	case t.root == nil:
		return status.NewError(status.ContainerEmpty, "traverse: tree is empty")
	case visit == nil:
		return status.NewError(status.MissingCallback, "traverse: visitor is nil")
	}
	abstract.Traverse(t.root, visit, order)
	return nil
}

// Clear removes every element, calling destroy with each of them if destroy
// is non-nil. The tree is emptied in every case, but the returned error
// reports status.ContainerEmpty if it already was empty and
// status.MissingCallback if destroy was nil, in which case the elements are
// left to the caller.
func (t *Tree[E]) Clear(destroy func(elem *E)) error {
	if !t.usable() {
		return status.NewError(status.ContainerNull, "clear: tree is nil")
	}
	var err error
	switch {
	case t.root == nil:
		err = status.NewError(status.ContainerEmpty, "clear: tree is empty")
	case destroy == nil:
		err = status.NewError(status.MissingCallback, "clear: destructor is nil")
	}
	released := t.cfg.Destroy(t.root, destroy)
	t.root = nil
	t.count = 0
	t.logger().Debugf("cleared %d nodes", released)
	return err
}

// Destroy clears the tree like Clear and then retires it: later operations
// report status.ContainerNull. It returns Clear's error.
func (t *Tree[E]) Destroy(destroy func(elem *E)) error {
	if !t.usable() {
		return status.NewError(status.ContainerNull, "destroy: tree is nil")
	}
	err := t.Clear(destroy)
	t.destroyed = true
	return err
}

// Len returns the number of elements currently in the tree.
func (t *Tree[E]) Len() int {
	if t == nil {
		return 0
	}
	return t.count
}

// AllowsDuplicates returns whether the tree accepts equal elements.
func (t *Tree[E]) AllowsDuplicates() bool {
	return t != nil && t.allowDuplicates
}

// Height returns the height of the tree: 0 for a single element and -1 when
// empty.
func (t *Tree[E]) Height() int {
	if t == nil {
		return -1
	}
	return t.root.Height()
}

// String returns a string description of the tree. The format is
// similar to the https://en.wikipedia.org/wiki/Newick_format.
func (t *Tree[E]) String() string {
	if t.Len() == 0 {
		return ";"
	}
	var b strings.Builder
	t.root.WriteString(&b)
	return b.String()
}
