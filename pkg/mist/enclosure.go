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

// EnclosurePair is one balanced opener/closer match produced by
// ComputeEnclosure. Outer spans from the opener's start to the closer's
// end; Inner spans the gap strictly between them (what a caller would
// typically Offer as a single node's range).
type EnclosurePair struct {
	Open  Range
	Close Range
	Outer Range
	Inner Range
}

func newEnclosurePair(open, close Range) EnclosurePair {
	return EnclosurePair{
		Open:  open,
		Close: close,
		Outer: Range{Offset: open.Offset, Length: close.Terminal() - open.Offset},
		Inner: Range{Offset: open.Terminal(), Length: close.Offset - open.Terminal()},
	}
}

// ComputeEnclosure matches a sequence of opener ranges against a sequence
// of closer ranges, both already ordered by position, producing balanced,
// non-overlapping (open, close) pairs.
//
// Openers are pushed onto a stack in the order given. For each closer, in
// order, the stack is scanned from the top for the first opener whose
// terminal offset is at or before the closer's start; that opener is
// removed from the stack (wherever it sits) and paired with the closer.
// A closer with no eligible opener is skipped. Every opener is used in at
// most one pair, and the result is well-nested: this is exactly classical
// bracket matching when opens and closes are interleaved from one stream.
func ComputeEnclosure(opens, closes []Range) []EnclosurePair {
	stack := append([]Range(nil), opens...)
	var pairs []EnclosurePair
	for _, c := range closes {
		for i := len(stack) - 1; i >= 0; i-- {
			if stack[i].Terminal() <= c.Offset {
				open := stack[i]
				stack = append(stack[:i], stack[i+1:]...)
				pairs = append(pairs, newEnclosurePair(open, c))
				break
			}
		}
	}
	return pairs
}

// Delimiter tags a single range from a combined opener/closer stream.
type Delimiter struct {
	Range Range
	Open  bool
}

// ComputeEnclosureStream is the "same-set" variant of ComputeEnclosure: it
// accepts one combined, position-ordered stream of tagged delimiters and
// splits it into opens/closes before matching, preserving each group's
// relative order.
func ComputeEnclosureStream(delims []Delimiter) []EnclosurePair {
	var opens, closes []Range
	for _, d := range delims {
		if d.Open {
			opens = append(opens, d.Range)
		} else {
			closes = append(closes, d.Range)
		}
	}
	return ComputeEnclosure(opens, closes)
}
