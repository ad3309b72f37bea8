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

import "sync"

type nodePool[E any] struct {
	pool sync.Pool
}

// syncPoolMap holds one *nodePool per element type, keyed by a typed nil
// *Node.
var syncPoolMap sync.Map

func getNodePool[E any]() *nodePool[E] {
	var nilNode *Node[E]
	v, ok := syncPoolMap.Load(nilNode)
	if !ok {
		v, _ = syncPoolMap.LoadOrStore(nilNode, newNodePool[E]())
	}
	return v.(*nodePool[E])
}

func newNodePool[E any]() *nodePool[E] {
	np := nodePool[E]{}
	np.pool = sync.Pool{
		New: func() interface{} {
			return new(Node[E])
		},
	}
	return &np
}

func (np *nodePool[E]) get() *Node[E] {
	if np == nil {
		return new(Node[E])
	}
	return np.pool.Get().(*Node[E])
}

// put clears n, dropping its element and children, and recycles it.
func (np *nodePool[E]) put(n *Node[E]) {
	*n = Node[E]{}
	if np != nil {
		np.pool.Put(n)
	}
}
