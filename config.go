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
	"github.com/sirupsen/logrus"

	"github.com/ajwerner/avl/internal/abstract"
)

// Config is used to configure a Tree at creation.
type Config struct {

	// AllowDuplicates permits elements comparing equal to a stored element
	// to be inserted. It cannot be changed after creation.
	AllowDuplicates bool

	// Logger receives the tree's debug logs. If nil, the module's shared
	// logger is used, which only emits them once debug logging is enabled.
	Logger logrus.FieldLogger
}

// Compare orders two elements in the cmp.Compare convention: negative if a
// sorts before b, zero if they are equal, positive if a sorts after b. It
// must define a strict total order which stays the same for every call on
// a given tree.
type Compare[E any] func(a, b *E) int

// Order is the order in which Traverse visits elements.
type Order = abstract.Order

// Traversal orders.
const (
	PreOrder  = abstract.PreOrder
	InOrder   = abstract.InOrder
	PostOrder = abstract.PostOrder
)

// probe adapts cmp into a search for probe among stored elements.
func (cmp Compare[E]) probe(probe *E) abstract.Probe[E] {
	return func(elem *E) int { return cmp(probe, elem) }
}
