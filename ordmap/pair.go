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

package ordmap

// Pair associates a key with a value. Both are held by reference.
type Pair[K, V any] struct {
	key   *K
	value *V
}

// NewPair returns a Pair of key and value.
func NewPair[K, V any](key *K, value *V) *Pair[K, V] {
	return &Pair[K, V]{key: key, value: value}
}

// Key returns the pair's key.
func (p *Pair[K, V]) Key() *K {
	if p == nil {
		return nil
	}
	return p.key
}

// Value returns the pair's value.
func (p *Pair[K, V]) Value() *V {
	if p == nil {
		return nil
	}
	return p.value
}

// Destroy hands the key to keyDestroy and the value to valueDestroy and
// clears the fields which were handed off. Either function may be nil.
func (p *Pair[K, V]) Destroy(keyDestroy func(key *K), valueDestroy func(value *V)) {
	if p == nil {
		return
	}
	if keyDestroy != nil {
		keyDestroy(p.key)
		p.key = nil
	}
	if valueDestroy != nil {
		valueDestroy(p.value)
		p.value = nil
	}
}
