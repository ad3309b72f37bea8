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

import "fmt"

// Rotation identifies a single rotation performed while rebalancing.
type Rotation int

const (
	// RotateLeft promotes a node's right child.
	RotateLeft Rotation = iota
	// RotateRight promotes a node's left child.
	RotateRight
)

func (r Rotation) String() string {
	switch r {
	case RotateLeft:
		return "left"
	case RotateRight:
		return "right"
	default:
		return fmt.Sprintf("Rotation(%d)", int(r))
	}
}

// Config is used to configure the engine for one tree. It consists of the
// node pool shared by every tree of the same element type and an optional
// hook observing rotations.
type Config[E any] struct {

	// Rotated, if non-nil, is called after each single rotation with the
	// node which was promoted to the root of the rotated subtree. A double
	// rotation is reported as two calls.
	Rotated func(r Rotation, promoted *Node[E])

	np *nodePool[E]
}

// MakeConfig returns a Config for element type E.
func MakeConfig[E any](rotated func(Rotation, *Node[E])) (c Config[E]) {
	c.Rotated = rotated
	c.np = getNodePool[E]()
	return c
}

func (c *Config[E]) rotated(r Rotation, promoted *Node[E]) {
	if c.Rotated != nil {
		c.Rotated(r, promoted)
	}
}
