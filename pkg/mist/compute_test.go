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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/openconfig/gnmi/errdiff"
)

// sideValues flattens a Compute result down to side -> node value, so it
// can be compared with cmp.Diff without reaching into unexported fields.
func sideValues(m map[Side]*Node[string]) map[Side]string {
	if m == nil {
		return nil
	}
	out := make(map[Side]string, len(m))
	for side, n := range m {
		out[side] = n.Value
	}
	return out
}

func TestComputeMatchesOfferOutcome(t *testing.T) {
	root := NewNode("root", 0, 10, 0)
	mustOffer(t, root, NewNode("a", 0, 5, 0))
	b := NewNode("b", 5, 5, 0)
	mustOffer(t, root, b)

	incoming := NewNode("c", 2, 2, 0)
	got, err := Compute(root, incoming)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	want := map[Side]string{Top: "a"}
	if diff := cmp.Diff(want, sideValues(got), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("Compute() sides mismatch (-want +got):\n%s", diff)
	}

	// incoming must remain untouched and root's structure unaffected.
	if incoming.top != nil || incoming.left != nil || incoming.right != nil || incoming.bottom != nil {
		t.Errorf("Compute mutated incoming: %+v", incoming)
	}
	wantChildren(t, root, "a", "b")
}

func TestComputeAgreesWithOfferAcrossScenarioB(t *testing.T) {
	a := buildScenarioB(t)
	d := a.Previous().Previous().Previous()
	c := d.Next()
	f := c.Child()

	// Compute from f must predict the exact same re-rooting Offer performs,
	// without mutating anything reachable from f.
	preview := NewNode("root", 0, 10, 0)
	got, err := Compute(f, preview)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	want := map[Side]string{Bottom: "d"}
	if diff := cmp.Diff(want, sideValues(got), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("Compute() sides mismatch (-want +got):\n%s", diff)
	}

	root := NewNode("root", 0, 10, 0)
	mustOffer(t, root, preview)
	if got := root.Child(); got == nil || got.Value != "d" {
		t.Fatalf("after Offer following Compute: root.Child() = %v, want d", got)
	}
}

func TestComputeReportsClashWithoutMutating(t *testing.T) {
	root := NewNode("root", 0, 10, 0)
	mustOffer(t, root, NewNode("left", 0, 5, 0))
	mustOffer(t, root, NewNode("right", 5, 5, 0))

	_, err := Compute(root, NewNode("straddle", 3, 4, 0))
	if diff := errdiff.Substring(err, "clash"); diff != "" {
		t.Errorf("Compute() error mismatch: %s", diff)
	}
	wantChildren(t, root, "left", "right")
}

func TestComputeReportsTakeoverWithoutMutating(t *testing.T) {
	root := NewNode("root", 0, 10, 0)
	mustOffer(t, root, NewNode("child", 3, 3, 0))

	_, err := Compute(root, NewNode("dup", 3, 3, 0))
	if diff := errdiff.Substring(err, "takeover"); diff != "" {
		t.Errorf("Compute() error mismatch: %s", diff)
	}
	wantChildren(t, root, "child")
}
