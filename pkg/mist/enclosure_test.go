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

import "testing"

func rng(off, ln uint64) Range { return Range{Offset: off, Length: ln} }

func wantPairs(t *testing.T, got []EnclosurePair, want [][2]uint64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d pairs, want %d: got=%v want=%v", len(got), len(want), got, want)
	}
	for i, w := range want {
		if got[i].Outer.Offset != w[0] || got[i].Outer.Terminal() != w[1] {
			t.Errorf("pair %d: Outer = [%d,%d), want [%d,%d)", i, got[i].Outer.Offset, got[i].Outer.Terminal(), w[0], w[1])
		}
	}
}

// Scenario F: "( { [ < > ] } )" — single-stream, fully nested delimiters
// produce classical innermost-first bracket matching.
func TestScenarioF_NestedSingleStream(t *testing.T) {
	// indices:  0 2 4 6 8 10 12 14
	//           (  {  [  <  >  ]  }  )
	delims := []Delimiter{
		{Range: rng(0, 1), Open: true},
		{Range: rng(2, 1), Open: true},
		{Range: rng(4, 1), Open: true},
		{Range: rng(6, 1), Open: true},
		{Range: rng(8, 1), Open: false},
		{Range: rng(10, 1), Open: false},
		{Range: rng(12, 1), Open: false},
		{Range: rng(14, 1), Open: false},
	}
	got := ComputeEnclosureStream(delims)
	wantPairs(t, got, [][2]uint64{
		{6, 9},
		{4, 11},
		{2, 13},
		{0, 15},
	})
}

// Scenario G: "< ( ) ( ) [ ] [ ] { } { } >" — one outer opener wraps six
// independent same-depth pairs; each closer must find its own opener by
// scanning down from the top of the stack, not by discarding everything
// above the eventual match.
func TestScenarioG_SiblingPairsUnderOneOuter(t *testing.T) {
	delims := []Delimiter{
		{Range: rng(0, 1), Open: true},   // <
		{Range: rng(2, 1), Open: true},   // (
		{Range: rng(4, 1), Open: false},  // )
		{Range: rng(6, 1), Open: true},   // (
		{Range: rng(8, 1), Open: false},  // )
		{Range: rng(10, 1), Open: true},  // [
		{Range: rng(12, 1), Open: false}, // ]
		{Range: rng(14, 1), Open: true},  // [
		{Range: rng(16, 1), Open: false}, // ]
		{Range: rng(18, 1), Open: true},  // {
		{Range: rng(20, 1), Open: false}, // }
		{Range: rng(22, 1), Open: true},  // {
		{Range: rng(24, 1), Open: false}, // }
		{Range: rng(26, 1), Open: false}, // >
	}
	got := ComputeEnclosureStream(delims)
	wantPairs(t, got, [][2]uint64{
		{2, 5},
		{6, 9},
		{10, 13},
		{14, 17},
		{18, 21},
		{22, 25},
		{0, 27},
	})
}

// checkEnclosureBalance verifies the well-nestedness property any
// ComputeEnclosure result must satisfy: every opener is used at most once,
// and each pair's opener ends at or before its closer starts.
func checkEnclosureBalance(t *testing.T, opens, closes []Range, pairs []EnclosurePair) {
	t.Helper()
	used := map[Range]int{}
	for _, p := range pairs {
		if p.Open.Terminal() > p.Close.Offset {
			t.Errorf("pair %v/%v: opener terminal %d > closer offset %d", p.Open, p.Close, p.Open.Terminal(), p.Close.Offset)
		}
		used[p.Open]++
	}
	for _, o := range opens {
		if used[o] > 1 {
			t.Errorf("opener %v used %d times, want at most 1", o, used[o])
		}
	}
	// Well-nestedness: verify, for every two pairs in whatever order they
	// were emitted, that they do not partially overlap — one must either
	// nest fully inside or sit fully outside the other.
	for i := range pairs {
		for j := range pairs {
			if i == j {
				continue
			}
			a, b := pairs[i].Outer, pairs[j].Outer
			nested := (a.Offset >= b.Offset && a.Terminal() <= b.Terminal()) ||
				(b.Offset >= a.Offset && b.Terminal() <= a.Terminal())
			disjoint := a.Terminal() <= b.Offset || b.Terminal() <= a.Offset
			if !nested && !disjoint {
				t.Errorf("pairs %v and %v partially overlap", a, b)
			}
		}
	}
}

func TestEnclosureBalanceProperty(t *testing.T) {
	opens := []Range{rng(0, 1), rng(2, 1), rng(6, 1), rng(10, 1), rng(14, 1), rng(18, 1), rng(22, 1)}
	closes := []Range{rng(4, 1), rng(8, 1), rng(12, 1), rng(16, 1), rng(20, 1), rng(24, 1), rng(26, 1)}
	got := ComputeEnclosure(opens, closes)
	checkEnclosureBalance(t, opens, closes, got)
	if len(got) != 7 {
		t.Fatalf("got %d pairs, want 7", len(got))
	}
}

// An unmatched closer (no eligible opener precedes it) is simply skipped.
func TestEnclosureUnmatchedCloserSkipped(t *testing.T) {
	opens := []Range{rng(4, 1)}
	closes := []Range{rng(0, 1), rng(6, 1)}
	got := ComputeEnclosure(opens, closes)
	wantPairs(t, got, [][2]uint64{{4, 7}})
}
