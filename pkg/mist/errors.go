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

import (
	"fmt"
	"strings"
)

// IllegalTree is the supertype of TreeClash and TreeTakeover. No operation
// in this package returns a bare *IllegalTree: it only appears embedded in
// a TreeClash or TreeTakeover, and the unexported offer helpers do not
// check their own pre-conditions. Nodes is the chain of offending nodes; the last entry is the direct
// cause. IllegalTree is recoverable: a failed Offer or Compute call leaves
// both the source and destination structures untouched.
type IllegalTree[V any] struct {
	Msg   string
	Nodes []*Node[V]
}

func (e *IllegalTree[V]) Error() string {
	if len(e.Nodes) == 0 {
		return e.Msg
	}
	ranges := make([]string, len(e.Nodes))
	for i, n := range e.Nodes {
		ranges[i] = n.SyntaxRange().String()
	}
	return fmt.Sprintf("%s: %s", e.Msg, strings.Join(ranges, " -> "))
}

// newIllegalTree builds an *IllegalTree with a formatted message.
func newIllegalTree[V any](format string, nodes []*Node[V], args ...any) *IllegalTree[V] {
	return &IllegalTree[V]{Msg: fmt.Sprintf(format, args...), Nodes: nodes}
}

// TreeClash reports that an incoming node has Share dominance (Overflow or
// Underflow) with an existing node along the path Offer or Compute had to
// take: the two ranges overlap without one containing the other, which a
// structure can never represent.
type TreeClash[V any] struct {
	*IllegalTree[V]
}

func newTreeClash[V any](this, incoming *Node[V]) *TreeClash[V] {
	return &TreeClash[V]{newIllegalTree[V]("clash", []*Node[V]{this, incoming})}
}

// TreeTakeover reports that an incoming node has an identical range and
// equal weight to an existing node: there is no tie-break left to decide
// which one nests inside the other.
type TreeTakeover[V any] struct {
	*IllegalTree[V]
}

func newTreeTakeover[V any](this, incoming *Node[V]) *TreeTakeover[V] {
	return &TreeTakeover[V]{newIllegalTree[V]("takeover", []*Node[V]{this, incoming})}
}

// CorruptedTree reports that a structural invariant was violated mid-walk:
// a node with both top and left set ("flipped T"), or a containment/sibling
// ordering impossibility.  Unlike IllegalTree, CorruptedTree is not
// recoverable — the structure that produced it is already invalid and no
// further use of it is safe.
type CorruptedTree[V any] struct {
	Msg   string
	Nodes []*Node[V]
}

func (e *CorruptedTree[V]) Error() string {
	if len(e.Nodes) == 0 {
		return "corrupted tree: " + e.Msg
	}
	ranges := make([]string, len(e.Nodes))
	for i, n := range e.Nodes {
		ranges[i] = n.SyntaxRange().String()
	}
	return fmt.Sprintf("corrupted tree: %s: %s", e.Msg, strings.Join(ranges, " -> "))
}

func newCorruptedTree[V any](format string, nodes []*Node[V], args ...any) *CorruptedTree[V] {
	return &CorruptedTree[V]{Msg: fmt.Sprintf(format, args...), Nodes: nodes}
}

// checkFlippedT returns a *CorruptedTree if n has both top and left set,
// the one structural corruption that navigation alone can detect in O(1).
func checkFlippedT[V any](n *Node[V]) *CorruptedTree[V] {
	if n != nil && n.top != nil && n.left != nil {
		return newCorruptedTree[V]("node has both top and left set", []*Node[V]{n})
	}
	return nil
}
