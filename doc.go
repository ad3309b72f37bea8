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

// Package avl implements an AVL tree of element pointers ordered by a
// caller-supplied comparator.
//
// The tree stores the pointers it is given and hands the very same pointers
// back: Find returns a pointer == to the one inserted, and Remove returns the
// pointer a Find performed just before it would have returned. This holds
// even when the removed element sat in a node with two children. In that
// case the node keeps its place in the tree and takes over the element of its
// in-order predecessor or successor, and it is that neighbour's node which is
// released. Elements are never copied.
//
// The comparator is passed to each call rather than bound at creation;
// callers must pass comparators which agree with each other for the lifetime
// of a tree.
//
// A Tree is not safe for concurrent use. Errors carry a status.Code, see
// package status.
package avl
