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

// A Dominance is a coarser quotient of Intersection: it answers "how do
// these two ranges nest", read like Relation as what the second range is to
// the first, but without saying which boundary (if any) the ranges share.
type Dominance int

const (
	// Exact means the two ranges are identical.
	Exact Dominance = iota
	// Contain means the second range contains the first (Container, Ahead
	// or Behind).
	Contain
	// Part means the second range is contained by the first (Fragment,
	// Start or End).
	Part
	// Share means the ranges overlap without either containing the other.
	Share
	// None means the ranges do not overlap at all, or merely touch.
	None
)

var dominanceNames = [...]string{
	Exact:   "Exact",
	Contain: "Contain",
	Part:    "Part",
	Share:   "Share",
	None:    "None",
}

// String returns the name of the Dominance variant.
func (d Dominance) String() string {
	if d < 0 || int(d) >= len(dominanceNames) {
		return fmt.Sprintf("Dominance(%d)", int(d))
	}
	return dominanceNames[d]
}

// DominanceOf classifies two half-open intervals by Dominance; see Intersect.
func DominanceOf(i, j, s, e uint64) Dominance {
	return Intersect(i, j, s, e).Dominance()
}

// DominanceOfRanges classifies two Ranges by Dominance.
func DominanceOfRanges(a, b Range) Dominance {
	return IntersectRanges(a, b).Dominance()
}

// DominanceOfNodes classifies two nodes' ranges by Dominance.
func DominanceOfNodes[V any](a, b *Node[V]) Dominance {
	return IntersectNodes(a, b).Dominance()
}
