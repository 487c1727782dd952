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

// Package mist implements the Managed Index Syntax Tree: a self-ordering
// two-dimensional tree of half-open byte ranges.
//
// Every node carries a range [offset, offset+length) over some externally
// owned text buffer and an integer weight used only to break ties between
// nodes that share an identical range.  Nodes are linked along two axes —
// top/bottom (parent/first-child) and left/right (siblings) — with the
// invariant that a node's top and left links are never both set: a node is
// either the leftmost child of its parent (top set, left nil) or a later
// sibling (left set, top nil).  The parent of any node is reached by
// walking left to the head of its sibling run and following that head's
// top link.
//
// Offer is the single mutating entry point.  It classifies the incoming
// range against the existing tree using the range algebra in this package
// (Intersection, Dominance, Relation, Precedence) and splices the new node
// into the unique position the algebra dictates, or fails with one of the
// typed errors in errors.go without touching the tree.  Compute performs
// the identical classification without mutating anything, for callers that
// want to preview where a range would land.
package mist
