// Copyright 2015 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mist

import "fmt"

// Previous returns n's previous sibling, or nil if n is the leftmost child
// (or a root).
func (n *Node[V]) Previous() *Node[V] { return n.left }

// Next returns n's next sibling, or nil if n is the rightmost child (or a
// root with no following sibling).
func (n *Node[V]) Next() *Node[V] { return n.right }

// Child returns n's first child, or nil if n has no children.
func (n *Node[V]) Child() *Node[V] { return n.bottom }

// Head walks left to the first sibling in n's run (which may be n itself).
func (n *Node[V]) Head() *Node[V] {
	h := n
	for h.left != nil {
		h = h.left
	}
	return h
}

// Tail walks right to the last sibling in n's run (which may be n itself).
func (n *Node[V]) Tail() *Node[V] {
	t := n
	for t.right != nil {
		t = t.right
	}
	return t
}

// Parent returns n's parent, reached via the top link of n's leftmost
// sibling, or nil if n is a root.
func (n *Node[V]) Parent() *Node[V] {
	return n.Head().top
}

// Root walks up through successive parents and returns the topmost
// ancestor (which is n itself if n is already a root).
func (n *Node[V]) Root() *Node[V] {
	r := n
	for {
		p := r.Parent()
		if p == nil {
			return r
		}
		r = p
	}
}

// Children returns n's children left-to-right as a slice.  It is a
// convenience wrapper around repeatedly following Next from Child.
func (n *Node[V]) Children() []*Node[V] {
	var out []*Node[V]
	for c := n.bottom; c != nil; c = c.right {
		out = append(out, c)
	}
	return out
}

// Hierarchy returns n's descendants (not including n itself) in depth-first
// pre-order: each child is visited before its own children, and siblings
// are visited left to right.
func (n *Node[V]) Hierarchy() []*Node[V] {
	var out []*Node[V]
	var walk func(*Node[V])
	walk = func(x *Node[V]) {
		for c := x.bottom; c != nil; c = c.right {
			out = append(out, c)
			walk(c)
		}
	}
	walk(n)
	return out
}

// At returns the node reached by following a path of child indices: At(0,2)
// is the 0th child's 2nd child.  An empty path is an error.  A missing
// index at any depth returns nil and ok==false.
func (n *Node[V]) At(path ...int) (node *Node[V], ok bool) {
	if len(path) == 0 {
		return nil, false
	}
	cur := n
	for _, idx := range path {
		if idx < 0 {
			return nil, false
		}
		c := cur.bottom
		for i := 0; c != nil && i < idx; i++ {
			c = c.right
		}
		if c == nil {
			return nil, false
		}
		cur = c
	}
	return cur, true
}

// MustAt is like At but panics if the path does not resolve, for callers
// that have already established the path is valid (e.g. tests).
func (n *Node[V]) MustAt(path ...int) *Node[V] {
	node, ok := n.At(path...)
	if !ok {
		panic(fmt.Sprintf("mist: no node at path %v", path))
	}
	return node
}

// Collect performs a generic traversal starting at n and returns every
// visited node, in visit order, as a slice built eagerly.  expand is
// called on each visited node and returns the neighbors to continue the
// walk through; Collect pushes those neighbors onto a queue, but skips the
// single most-recently-visited node when it reappears immediately in an
// expansion (the same zig-zag suppression documented for the upstream
// collect primitive: only the single most recent node is checked, not a
// full visited set, so a node reachable via two distinct edges in a
// cyclic neighbor selection can be visited twice — this is accepted,
// documented behavior, not a bug).
//
// If inclusive is true, n itself is included as the first visited node.
func (n *Node[V]) Collect(inclusive bool, expand func(*Node[V]) []*Node[V]) []*Node[V] {
	type queued struct {
		node *Node[V]
		back bool // sentinel: pop the back-stack instead of visiting
	}

	var out []*Node[V]
	var backStack []*Node[V]
	var queue []queued

	if inclusive {
		queue = append(queue, queued{node: n})
	} else {
		for _, nb := range expand(n) {
			queue = append(queue, queued{node: nb})
		}
	}

	for len(queue) > 0 {
		q := queue[0]
		queue = queue[1:]

		if q.back {
			if len(backStack) > 0 {
				backStack = backStack[:len(backStack)-1]
			}
			continue
		}

		var cameFrom *Node[V]
		if len(backStack) > 0 {
			cameFrom = backStack[len(backStack)-1]
		}
		if q.node == cameFrom {
			continue
		}

		out = append(out, q.node)
		backStack = append(backStack, q.node)

		var next []queued
		for _, nb := range expand(q.node) {
			next = append(next, queued{node: nb})
		}
		next = append(next, queued{back: true})
		queue = append(queue, next...)
	}

	return out
}
