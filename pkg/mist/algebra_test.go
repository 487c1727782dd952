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

// legalIntervals returns every (i,j) with 0<=i<=j<=bound, used to exercise
// Intersect over all legal interval pairs up to a small bound.
func legalIntervals(bound uint64) [][2]uint64 {
	var out [][2]uint64
	for i := uint64(0); i <= bound; i++ {
		for j := i; j <= bound; j++ {
			out = append(out, [2]uint64{i, j})
		}
	}
	return out
}

func TestIntersectTotality(t *testing.T) {
	ivals := legalIntervals(5)
	for _, a := range ivals {
		for _, b := range ivals {
			func() {
				defer func() {
					if r := recover(); r != nil {
						t.Errorf("Intersect(%d,%d,%d,%d) panicked: %v", a[0], a[1], b[0], b[1], r)
					}
				}()
				Intersect(a[0], a[1], b[0], b[1])
			}()
		}
	}
}

func TestIntersectDuality(t *testing.T) {
	ivals := legalIntervals(5)
	for _, a := range ivals {
		for _, b := range ivals {
			got := Intersect(a[0], a[1], b[0], b[1]).Opposite()
			want := Intersect(b[0], b[1], a[0], a[1])
			if got != want {
				t.Errorf("Intersect(%v,%v).Opposite() = %v, want Intersect(%v,%v) = %v", a, b, got, b, a, want)
			}
		}
	}
}

func TestDerivationConsistency(t *testing.T) {
	ivals := legalIntervals(5)
	for _, a := range ivals {
		for _, b := range ivals {
			x := Intersect(a[0], a[1], b[0], b[1])
			if got, want := x.Dominance(), DominanceOf(a[0], a[1], b[0], b[1]); got != want {
				t.Errorf("Intersect(%v,%v).Dominance() = %v, want %v", a, b, got, want)
			}
			if got, want := x.Relation(), RelationOf(a[0], a[1], b[0], b[1]); got != want {
				t.Errorf("Intersect(%v,%v).Relation() = %v, want %v", a, b, got, want)
			}
		}
	}
}

func TestIntersectionOppositeInvolution(t *testing.T) {
	for x := Before; x <= Overflow; x++ {
		if got := x.Opposite().Opposite(); got != x {
			t.Errorf("%v.Opposite().Opposite() = %v, want %v", x, got, x)
		}
	}
}

func TestPrecedenceOf(t *testing.T) {
	tests := []struct {
		k, w int64
		want Precedence
	}{
		{1, 0, Higher},
		{0, 1, Lower},
		{3, 3, PrecedenceEqual},
	}
	for _, tt := range tests {
		if got := PrecedenceOf(tt.k, tt.w); got != tt.want {
			t.Errorf("PrecedenceOf(%d,%d) = %v, want %v", tt.k, tt.w, got, tt.want)
		}
	}
}
