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

// Package ordmap implements a key-ordered map of Pairs on top of an AVL tree.
//
// Keys are unique. Like the tree, the map stores the key and value pointers
// it is given and never copies them.
package ordmap

import (
	"github.com/ajwerner/avl"
	"github.com/ajwerner/avl/status"
)

// KeyCompare orders two keys in the cmp.Compare convention.
type KeyCompare[K any] func(a, b *K) int

// Map is an ordered map from *K to *V.
type Map[K, V any] struct {
	tree *avl.Tree[Pair[K, V]]
}

// New returns an empty map.
func New[K, V any]() *Map[K, V] {
	return &Map[K, V]{tree: avl.New[Pair[K, V]](false)}
}

func pairCompare[K, V any](cmp KeyCompare[K]) avl.Compare[Pair[K, V]] {
	return func(a, b *Pair[K, V]) int { return cmp(a.key, b.key) }
}

func keyProbe[K, V any](key *K, cmp KeyCompare[K]) func(*Pair[K, V]) int {
	return func(p *Pair[K, V]) int { return cmp(key, p.key) }
}

// Find returns the value stored under key.
func (m *Map[K, V]) Find(key *K, cmp KeyCompare[K]) (*V, bool) {
	p := m.find(key, cmp)
	if p == nil {
		return nil, false
	}
	return p.value, true
}

func (m *Map[K, V]) find(key *K, cmp KeyCompare[K]) *Pair[K, V] {
	if m == nil || key == nil || cmp == nil {
		return nil
	}
	return m.tree.FindFunc(keyProbe[K, V](key, cmp))
}

// Insert stores value under key. It fails with status.DuplicateKey if key
// is already present, leaving the map unchanged.
func (m *Map[K, V]) Insert(key *K, value *V, cmp KeyCompare[K]) error {
	switch {
	case m == nil:
		return status.NewError(status.ContainerNull, "insert: map is nil")
	case key == nil:
		return status.NewError(status.KeyNull, "insert: key is nil")
	case cmp == nil:
		return status.NewError(status.PairCallbackNull, "insert: key comparator is nil")
	}
	return m.tree.Insert(NewPair(key, value), pairCompare[K, V](cmp))
}

// Replace stores newValue under key in place of the current value, which is
// returned. It returns false if key is not present.
func (m *Map[K, V]) Replace(key *K, newValue *V, cmp KeyCompare[K]) (*V, bool) {
	p := m.find(key, cmp)
	if p == nil {
		return nil, false
	}
	old := p.value
	p.value = newValue
	return old, true
}

// Remove removes key from the map and returns its Pair, which now belongs to
// the caller. A missing key yields a nil Pair and a nil error.
func (m *Map[K, V]) Remove(key *K, cmp KeyCompare[K]) (*Pair[K, V], error) {
	switch {
	case m == nil:
		return nil, status.NewError(status.ContainerNull, "remove: map is nil")
	case key == nil:
		return nil, status.NewError(status.KeyNull, "remove: key is nil")
	case cmp == nil:
		return nil, status.NewError(status.PairCallbackNull, "remove: key comparator is nil")
	}
	return m.tree.RemoveFunc(keyProbe[K, V](key, cmp))
}

// Traverse calls visit with every Pair in ascending key order.
func (m *Map[K, V]) Traverse(visit func(p *Pair[K, V])) error {
	if m == nil {
		return status.NewError(status.ContainerNull, "traverse: map is nil")
	}
	return m.tree.Traverse(avl.InOrder, visit)
}

// Clear removes every Pair, handing each to pairDestroy. See avl.Tree.Clear.
func (m *Map[K, V]) Clear(pairDestroy func(p *Pair[K, V])) error {
	if m == nil {
		return status.NewError(status.ContainerNull, "clear: map is nil")
	}
	return m.tree.Clear(pairDestroy)
}

// Destroy clears the map and retires it. See avl.Tree.Destroy.
func (m *Map[K, V]) Destroy(pairDestroy func(p *Pair[K, V])) error {
	if m == nil {
		return status.NewError(status.ContainerNull, "destroy: map is nil")
	}
	return m.tree.Destroy(pairDestroy)
}

// Len returns the number of keys in the map.
func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return m.tree.Len()
}
