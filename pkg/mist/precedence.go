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

// A Precedence compares two weights, used as a tie-break when two nodes
// share an identical range.  Higher weight nests inside lower weight.
type Precedence int

const (
	// Higher means the first weight is greater than the second.
	Higher Precedence = iota
	// Lower means the first weight is less than the second.
	Lower
	// PrecedenceEqual means the two weights are identical.
	PrecedenceEqual
)

var precedenceNames = [...]string{
	Higher:          "Higher",
	Lower:           "Lower",
	PrecedenceEqual: "Equal",
}

// String returns the name of the Precedence variant.
func (p Precedence) String() string {
	if p < 0 || int(p) >= len(precedenceNames) {
		return fmt.Sprintf("Precedence(%d)", int(p))
	}
	return precedenceNames[p]
}

// PrecedenceOf compares two weights k and w.
func PrecedenceOf(k, w int64) Precedence {
	switch {
	case k > w:
		return Higher
	case k < w:
		return Lower
	default:
		return PrecedenceEqual
	}
}
