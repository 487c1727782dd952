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

// Offer inserts incoming into the structure this belongs to, at the unique
// position the range algebra dictates relative to this and its neighbors.
// incoming may currently belong to another (or the same) structure; it is
// popped out of it as part of a successful Offer.
//
// On success, incoming is linked into its new position and nil is
// returned.  On failure (TreeClash or TreeTakeover), neither structure is
// mutated: every check that can fail is
// performed before the first Pop.  CorruptedTree, should it ever be
// detected mid-walk, means the structure was already invalid before this
// call and is not a recoverable condition.
func Offer[V any](this, incoming *Node[V]) error {
	if err := checkFlippedT(this); err != nil {
		return err
	}
	if err := checkFlippedT(incoming); err != nil {
		return err
	}
	switch RelationOfNodes(this, incoming) {
	case Clash:
		return newTreeClash(this, incoming)
	case Self:
		return offerSelf(this, incoming)
	case Child:
		return offerChild(this, incoming)
	case Parent:
		return offerParent(this, incoming)
	case Next:
		return offerNext(this, incoming)
	default: // Previous
		return offerPrevious(this, incoming)
	}
}

// offerSelf handles the case where incoming has exactly this's range. The
// weights of this and incoming must differ (equal weight is a takeover).
func offerSelf[V any](this, incoming *Node[V]) error {
	switch PrecedenceOf(this.weight, incoming.weight) {
	case PrecedenceEqual:
		return newTreeTakeover(this, incoming)
	case Lower:
		// incoming has higher weight: it nests directly under this,
		// adopting this's previous first child (if the two don't
		// share that child's exact range too, in which case we
		// recurse one level further down).
		if b := this.bottom; b != nil && RelationOfNodes(b, incoming) == Self {
			return offerSelf(b, incoming)
		}
		Pop(incoming)
		oldBottom := this.bottom
		linkVertical(this, incoming)
		if oldBottom != nil {
			linkVertical(incoming, oldBottom)
		}
		return nil
	default: // Higher
		// incoming has lower weight: it becomes the new parent of
		// this, taking over this's former slot among its siblings.
		parent := this.Parent()
		wasLeftmost := this.isLeftmost()
		left, right := this.left, this.right
		Pop(incoming)
		if wasLeftmost {
			linkVertical(parent, incoming)
		} else {
			linkHorizontal(left, incoming)
		}
		if right != nil {
			linkHorizontal(incoming, right)
		}
		linkVertical(incoming, this)
		return nil
	}
}

// offerChild handles the case where incoming fits strictly within this.
func offerChild[V any](this, incoming *Node[V]) error {
	first := this.bottom
	if first == nil {
		Pop(incoming)
		linkVertical(this, incoming)
		return nil
	}
	switch RelationOfNodes(first, incoming) {
	case Self:
		return offerSelf(first, incoming)
	case Child:
		return offerChild(first, incoming)
	case Clash:
		return newTreeClash(first, incoming)
	case Previous:
		// incoming precedes the current first child: it becomes the
		// new first child, displacing the old one rightward.
		Pop(incoming)
		linkVertical(this, incoming)
		linkHorizontal(incoming, first)
		return nil
	case Parent:
		return offerChildAdoptsFirst(this, first, incoming)
	default: // Next
		return offerChildWalkRight(this, first, incoming)
	}
}

// offerChildAdoptsFirst handles incoming strictly containing the current
// first child: incoming becomes the new first child, and the current first
// child (plus however many of its right siblings also fit inside incoming)
// becomes incoming's own children.
func offerChildAdoptsFirst[V any](this, first, incoming *Node[V]) error {
	run, after, err := containedRun(first, incoming)
	if err != nil {
		return err
	}
	Pop(incoming)
	linkVertical(this, incoming)
	linkVertical(incoming, run)
	if after != nil {
		linkHorizontal(incoming, after)
	}
	return nil
}

// offerChildWalkRight handles incoming lying after the current first
// child: it scans rightward through the sibling chain, classifying each
// sibling against incoming, until it finds incoming's unique slot.
func offerChildWalkRight[V any](this, first, incoming *Node[V]) error {
	prev := first
	for cur := first.right; cur != nil; cur = cur.right {
		switch RelationOfNodes(cur, incoming) {
		case Self:
			return offerSelf(cur, incoming)
		case Child:
			return offerChild(cur, incoming)
		case Clash:
			return newTreeClash(cur, incoming)
		case Next:
			prev = cur
			continue
		case Parent:
			return adoptSiblingRun(prev, cur, incoming)
		default: // Previous
			Pop(incoming)
			linkHorizontal(prev, incoming)
			linkHorizontal(incoming, cur)
			return nil
		}
	}
	Pop(incoming)
	linkHorizontal(prev, incoming)
	return nil
}

// containedRun walks right from runStart, collecting the contiguous run of
// siblings that incoming strictly contains, and returns runStart together
// with the node right after that run (or nil if the run reaches the end of
// the chain).
func containedRun[V any](runStart, incoming *Node[V]) (first *Node[V], after *Node[V], err error) {
	cur := runStart
	for cur.right != nil {
		next := cur.right
		switch RelationOfNodes(next, incoming) {
		case Parent:
			cur = next
			continue
		case Next, Previous:
		case Clash:
			return nil, nil, newTreeClash(incoming, next)
		default:
			return nil, nil, newCorruptedTree[V]("sibling unexpectedly overlaps new parent mid-run", []*Node[V]{incoming, next})
		}
		break
	}
	return runStart, cur.right, nil
}

// adoptSiblingRun splices incoming in right after before, adopting the
// contiguous run of siblings starting at runStart that incoming strictly
// contains.
func adoptSiblingRun[V any](before, runStart, incoming *Node[V]) error {
	_, after, err := containedRun(runStart, incoming)
	if err != nil {
		return err
	}
	Pop(incoming)
	linkHorizontal(before, incoming)
	linkVertical(incoming, runStart)
	if after != nil {
		linkHorizontal(incoming, after)
	}
	return nil
}

// containedRunLeft walks left from runStart, collecting the contiguous run
// of siblings that incoming strictly contains, and returns the leftmost
// member of that run along with the node right before it (or nil if the
// run reaches the start of the chain).
func containedRunLeft[V any](runStart, incoming *Node[V]) (leftmost *Node[V], before *Node[V], err error) {
	cur := runStart
	for cur.left != nil {
		prevSibling := cur.left
		switch RelationOfNodes(prevSibling, incoming) {
		case Parent:
			cur = prevSibling
			continue
		case Next, Previous:
		case Clash:
			return nil, nil, newTreeClash(incoming, prevSibling)
		default:
			return nil, nil, newCorruptedTree[V]("sibling unexpectedly overlaps new parent mid-run", []*Node[V]{incoming, prevSibling})
		}
		break
	}
	return cur, cur.left, nil
}

// adoptSiblingRunLeft splices incoming in right before after, adopting the
// contiguous run of siblings ending at runStart (walking leftward) that
// incoming strictly contains.
func adoptSiblingRunLeft[V any](after, runStart, incoming *Node[V]) error {
	leftmost, before, err := containedRunLeft(runStart, incoming)
	if err != nil {
		return err
	}
	Pop(incoming)
	if before != nil {
		linkHorizontal(before, incoming)
	}
	linkHorizontal(incoming, after)
	linkVertical(incoming, leftmost)
	return nil
}

// offerParent handles incoming strictly containing this.
func offerParent[V any](this, incoming *Node[V]) error {
	if parent := this.Parent(); parent != nil {
		switch IntersectNodes(parent, incoming) {
		case Same:
			return offerSelf(parent, incoming)
		case Container, Ahead, Behind:
			return offerParent(parent, incoming)
		case Fragment, Start, End:
			return offerChild(parent, incoming)
		case Overflow, Underflow:
			return newTreeClash(parent, incoming)
		default:
			return newCorruptedTree[V]("parent does not overlap new ancestor", []*Node[V]{parent, incoming})
		}
	}

	// this is a root: find, among this and its siblings, the widest
	// contiguous run that incoming strictly contains.
	leftmost := this
	for leftmost.left != nil && RelationOfNodes(incoming, leftmost.left) == Child {
		leftmost = leftmost.left
	}
	before := leftmost.left
	if before != nil {
		switch RelationOfNodes(incoming, before) {
		case Next, Previous:
		case Clash:
			return newTreeClash(incoming, before)
		default:
			return newCorruptedTree[V]("left boundary sibling unexpectedly overlaps new ancestor", []*Node[V]{incoming, before})
		}
	}

	rightmost := this
	for rightmost.right != nil && RelationOfNodes(incoming, rightmost.right) == Child {
		rightmost = rightmost.right
	}
	after := rightmost.right
	if after != nil {
		switch RelationOfNodes(incoming, after) {
		case Next, Previous:
		case Clash:
			return newTreeClash(incoming, after)
		default:
			return newCorruptedTree[V]("right boundary sibling unexpectedly overlaps new ancestor", []*Node[V]{incoming, after})
		}
	}

	Pop(incoming)
	if before != nil {
		linkHorizontal(before, incoming)
	}
	if after != nil {
		linkHorizontal(incoming, after)
	}
	linkVertical(incoming, leftmost)
	return nil
}

// offerNext handles incoming lying entirely after this, at the same
// generation: it scans this's right siblings for incoming's slot, and
// delegates to this's parent if the chain is exhausted without finding one.
func offerNext[V any](this, incoming *Node[V]) error {
	prev := this
	for cur := this.right; cur != nil; cur = cur.right {
		switch RelationOfNodes(cur, incoming) {
		case Self:
			return offerSelf(cur, incoming)
		case Child:
			return offerChild(cur, incoming)
		case Clash:
			return newTreeClash(cur, incoming)
		case Next:
			prev = cur
			continue
		case Parent:
			return adoptSiblingRun(prev, cur, incoming)
		default: // Previous
			Pop(incoming)
			linkHorizontal(prev, incoming)
			linkHorizontal(incoming, cur)
			return nil
		}
	}
	if parent := prev.Parent(); parent != nil {
		return Offer(parent, incoming)
	}
	Pop(incoming)
	linkHorizontal(prev, incoming)
	return nil
}

// offerPrevious handles incoming lying entirely before this, at the same
// generation: it scans this's left siblings for incoming's slot, and
// delegates to this's parent if the chain is exhausted without finding one.
func offerPrevious[V any](this, incoming *Node[V]) error {
	next := this
	for cur := this.left; cur != nil; cur = cur.left {
		switch RelationOfNodes(cur, incoming) {
		case Self:
			return offerSelf(cur, incoming)
		case Child:
			return offerChild(cur, incoming)
		case Clash:
			return newTreeClash(cur, incoming)
		case Previous:
			next = cur
			continue
		case Parent:
			return adoptSiblingRunLeft(next, cur, incoming)
		default: // Next
			Pop(incoming)
			linkHorizontal(cur, incoming)
			linkHorizontal(incoming, next)
			return nil
		}
	}
	if parent := next.Parent(); parent != nil {
		return Offer(parent, incoming)
	}
	Pop(incoming)
	linkHorizontal(incoming, next)
	return nil
}
