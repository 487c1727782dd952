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

// Compute is the non-mutating twin of Offer: it walks the exact same
// decision path, but instead of performing the splice it reports the
// neighbors incoming would acquire, keyed by the side of incoming they
// would occupy. Neither this's structure nor incoming is touched, and
// incoming need not currently be isolated.
//
// A nil map together with a nil error never happens: success always
// reports at least one side (an incoming landing as the sole root of a
// brand new structure is not expressible through Compute, since Compute
// always starts from an existing anchor this).
func Compute[V any](this, incoming *Node[V]) (map[Side]*Node[V], error) {
	if err := checkFlippedT(this); err != nil {
		return nil, err
	}
	if err := checkFlippedT(incoming); err != nil {
		return nil, err
	}
	switch RelationOfNodes(this, incoming) {
	case Clash:
		return nil, newTreeClash(this, incoming)
	case Self:
		return computeSelf(this, incoming)
	case Child:
		return computeChild(this, incoming)
	case Parent:
		return computeParent(this, incoming)
	case Next:
		return computeNext(this, incoming)
	default: // Previous
		return computePrevious(this, incoming)
	}
}

func computeSelf[V any](this, incoming *Node[V]) (map[Side]*Node[V], error) {
	switch PrecedenceOf(this.weight, incoming.weight) {
	case PrecedenceEqual:
		return nil, newTreeTakeover(this, incoming)
	case Lower:
		if b := this.bottom; b != nil && RelationOfNodes(b, incoming) == Self {
			return computeSelf(b, incoming)
		}
		result := map[Side]*Node[V]{Top: this}
		if this.bottom != nil {
			result[Bottom] = this.bottom
		}
		return result, nil
	default: // Higher
		result := map[Side]*Node[V]{Bottom: this}
		if this.isLeftmost() {
			if parent := this.Parent(); parent != nil {
				result[Top] = parent
			}
		} else if this.left != nil {
			result[Left] = this.left
		}
		if this.right != nil {
			result[Right] = this.right
		}
		return result, nil
	}
}

func computeChild[V any](this, incoming *Node[V]) (map[Side]*Node[V], error) {
	first := this.bottom
	if first == nil {
		return map[Side]*Node[V]{Top: this}, nil
	}
	switch RelationOfNodes(first, incoming) {
	case Self:
		return computeSelf(first, incoming)
	case Child:
		return computeChild(first, incoming)
	case Clash:
		return nil, newTreeClash(first, incoming)
	case Previous:
		return map[Side]*Node[V]{Top: this, Right: first}, nil
	case Parent:
		return computeChildAdoptsFirst(this, first, incoming)
	default: // Next
		return computeChildWalkRight(this, first, incoming)
	}
}

func computeChildAdoptsFirst[V any](this, first, incoming *Node[V]) (map[Side]*Node[V], error) {
	run, after, err := containedRun(first, incoming)
	if err != nil {
		return nil, err
	}
	result := map[Side]*Node[V]{Top: this, Bottom: run}
	if after != nil {
		result[Right] = after
	}
	return result, nil
}

func computeChildWalkRight[V any](this, first, incoming *Node[V]) (map[Side]*Node[V], error) {
	prev := first
	for cur := first.right; cur != nil; cur = cur.right {
		switch RelationOfNodes(cur, incoming) {
		case Self:
			return computeSelf(cur, incoming)
		case Child:
			return computeChild(cur, incoming)
		case Clash:
			return nil, newTreeClash(cur, incoming)
		case Next:
			prev = cur
			continue
		case Parent:
			return computeAdoptSiblingRun(prev, cur, incoming)
		default: // Previous
			return map[Side]*Node[V]{Left: prev, Right: cur}, nil
		}
	}
	return map[Side]*Node[V]{Left: prev}, nil
}

func computeAdoptSiblingRun[V any](before, runStart, incoming *Node[V]) (map[Side]*Node[V], error) {
	_, after, err := containedRun(runStart, incoming)
	if err != nil {
		return nil, err
	}
	result := map[Side]*Node[V]{Left: before, Bottom: runStart}
	if after != nil {
		result[Right] = after
	}
	return result, nil
}

func computeAdoptSiblingRunLeft[V any](after, runStart, incoming *Node[V]) (map[Side]*Node[V], error) {
	leftmost, before, err := containedRunLeft(runStart, incoming)
	if err != nil {
		return nil, err
	}
	result := map[Side]*Node[V]{Right: after, Bottom: leftmost}
	if before != nil {
		result[Left] = before
	}
	return result, nil
}

func computeParent[V any](this, incoming *Node[V]) (map[Side]*Node[V], error) {
	if parent := this.Parent(); parent != nil {
		switch IntersectNodes(parent, incoming) {
		case Same:
			return computeSelf(parent, incoming)
		case Container, Ahead, Behind:
			return computeParent(parent, incoming)
		case Fragment, Start, End:
			return computeChild(parent, incoming)
		case Overflow, Underflow:
			return nil, newTreeClash(parent, incoming)
		default:
			return nil, newCorruptedTree[V]("parent does not overlap new ancestor", []*Node[V]{parent, incoming})
		}
	}

	leftmost := this
	for leftmost.left != nil && RelationOfNodes(incoming, leftmost.left) == Child {
		leftmost = leftmost.left
	}
	before := leftmost.left
	if before != nil {
		switch RelationOfNodes(incoming, before) {
		case Next, Previous:
		case Clash:
			return nil, newTreeClash(incoming, before)
		default:
			return nil, newCorruptedTree[V]("left boundary sibling unexpectedly overlaps new ancestor", []*Node[V]{incoming, before})
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
			return nil, newTreeClash(incoming, after)
		default:
			return nil, newCorruptedTree[V]("right boundary sibling unexpectedly overlaps new ancestor", []*Node[V]{incoming, after})
		}
	}

	result := map[Side]*Node[V]{Bottom: leftmost}
	if before != nil {
		result[Left] = before
	}
	if after != nil {
		result[Right] = after
	}
	return result, nil
}

func computeNext[V any](this, incoming *Node[V]) (map[Side]*Node[V], error) {
	prev := this
	for cur := this.right; cur != nil; cur = cur.right {
		switch RelationOfNodes(cur, incoming) {
		case Self:
			return computeSelf(cur, incoming)
		case Child:
			return computeChild(cur, incoming)
		case Clash:
			return nil, newTreeClash(cur, incoming)
		case Next:
			prev = cur
			continue
		case Parent:
			return computeAdoptSiblingRun(prev, cur, incoming)
		default: // Previous
			return map[Side]*Node[V]{Left: prev, Right: cur}, nil
		}
	}
	if parent := prev.Parent(); parent != nil {
		return Compute(parent, incoming)
	}
	return map[Side]*Node[V]{Left: prev}, nil
}

func computePrevious[V any](this, incoming *Node[V]) (map[Side]*Node[V], error) {
	next := this
	for cur := this.left; cur != nil; cur = cur.left {
		switch RelationOfNodes(cur, incoming) {
		case Self:
			return computeSelf(cur, incoming)
		case Child:
			return computeChild(cur, incoming)
		case Clash:
			return nil, newTreeClash(cur, incoming)
		case Previous:
			next = cur
			continue
		case Parent:
			return computeAdoptSiblingRunLeft(next, cur, incoming)
		default: // Next
			return map[Side]*Node[V]{Left: cur, Right: next}, nil
		}
	}
	if parent := next.Parent(); parent != nil {
		return Compute(parent, incoming)
	}
	return map[Side]*Node[V]{Right: next}, nil
}
