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

// Clear detaches n's children (n.Bottom and everything reachable through
// it), leaving n in place with no children.  The detached first child
// becomes the head of a standalone sibling run: it loses its top link and
// already has no left link (it was the leftmost child).
func Clear[V any](n *Node[V]) error {
	if err := checkFlippedT(n); err != nil {
		return err
	}
	if c := n.bottom; c != nil {
		n.bottom = nil
		c.top = nil
	}
	return nil
}

// slot describes where a node sits relative to its neighbors, so Pop and
// Remove can reinstall whatever takes its place using the same two link
// primitives that Offer uses.
type slot[V any] struct {
	parent *Node[V] // set if n was a leftmost child
	left   *Node[V] // set if n was a non-leftmost sibling
	right  *Node[V] // n's former right sibling, if any
}

func nodeSlot[V any](n *Node[V]) slot[V] {
	return slot[V]{parent: n.Parent(), left: n.left, right: n.right}
}

// install places replacement (which may be nil) into s, the slot n used to
// occupy, and links tail (the rightmost element of whatever replacement
// heads, or replacement itself) to s.right.
func (s slot[V]) install(replacement, tail *Node[V]) {
	switch {
	case replacement == nil:
		if s.left != nil {
			linkHorizontal(s.left, s.right)
		} else if s.parent != nil {
			linkVertical(s.parent, s.right)
		} else if s.right != nil {
			s.right.top = nil
			s.right.left = nil
		}
		return
	}
	if s.left != nil {
		linkHorizontal(s.left, replacement)
	} else if s.parent != nil {
		linkVertical(s.parent, replacement)
	} else {
		replacement.top = nil
		replacement.left = nil
	}
	if s.right != nil {
		linkHorizontal(tail, s.right)
	} else if tail != nil {
		tail.right = nil
	}
}

// Pop detaches n alone, inlining n's children (if any) in its former slot.
// If n had children, its first child takes n's place and its last child
// (the tail of its child run) connects to n's former right sibling. If n
// had no children, n's former left and right neighbors collapse together.
// Afterward n is fully isolated: Top, Left, Right and Bottom are all nil.
func Pop[V any](n *Node[V]) error {
	if err := checkFlippedT(n); err != nil {
		return err
	}
	s := nodeSlot(n)
	first := n.bottom
	if first == nil {
		s.install(nil, nil)
	} else {
		tail := first.Tail()
		s.install(first, tail)
	}
	isolate(n)
	return nil
}

// Remove detaches n together with its entire subtree: n's children stay
// attached to n, but n itself is spliced out of its former sibling chain
// exactly as Pop would splice out a childless node. n.Bottom is left
// untouched; n.Top, n.Left and n.Right become nil.
func Remove[V any](n *Node[V]) error {
	if err := checkFlippedT(n); err != nil {
		return err
	}
	s := nodeSlot(n)
	s.install(nil, nil)
	n.top, n.left, n.right = nil, nil, nil
	return nil
}
