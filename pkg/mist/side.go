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

// A Side names one of a node's four neighbor links.
type Side int

const (
	// Top is the parent link, set only on a leftmost child.
	Top Side = iota
	// Left is the previous-sibling link, set only on a non-leftmost child.
	Left
	// Right is the next-sibling link.
	Right
	// Bottom is the first-child link.
	Bottom
)

var sideNames = [...]string{
	Top:    "Top",
	Left:   "Left",
	Right:  "Right",
	Bottom: "Bottom",
}

// String returns the name of the Side.
func (s Side) String() string {
	if s < 0 || int(s) >= len(sideNames) {
		return fmt.Sprintf("Side(%d)", int(s))
	}
	return sideNames[s]
}
