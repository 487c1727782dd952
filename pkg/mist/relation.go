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

// A Relation is the oriented quotient of Intersection, read as "what is the
// second range to the first": Self, Parent, Child, Clash, Next or Previous.
type Relation int

const (
	// Self means the second range is identical to the first.
	Self Relation = iota
	// Parent means the second range strictly (or boundary-sharing) contains the first.
	Parent
	// Child means the second range is strictly (or boundary-sharing) contained by the first.
	Child
	// Clash means the ranges overlap without nesting: forbidden in a tree.
	Clash
	// Next means the second range lies entirely at or after the first, disjoint.
	Next
	// Previous means the second range lies entirely at or before the first, disjoint.
	Previous
)

var relationNames = [...]string{
	Self:     "Self",
	Parent:   "Parent",
	Child:    "Child",
	Clash:    "Clash",
	Next:     "Next",
	Previous: "Previous",
}

// String returns the name of the Relation variant.
func (r Relation) String() string {
	if r < 0 || int(r) >= len(relationNames) {
		return fmt.Sprintf("Relation(%d)", int(r))
	}
	return relationNames[r]
}

// RelationOf classifies two half-open intervals by Relation; see Intersect.
func RelationOf(i, j, s, e uint64) Relation {
	return Intersect(i, j, s, e).Relation()
}

// RelationOfRanges classifies two Ranges by Relation.
func RelationOfRanges(a, b Range) Relation {
	return IntersectRanges(a, b).Relation()
}

// RelationOfNodes classifies two nodes' ranges by Relation.
func RelationOfNodes[V any](a, b *Node[V]) Relation {
	return IntersectNodes(a, b).Relation()
}
