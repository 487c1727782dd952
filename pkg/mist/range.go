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

// A Range is a half-open interval [Offset, Offset+Length) of buffer
// indices.
type Range struct {
	Offset uint64
	Length uint64
}

// Terminal returns one past the last index covered by r, i.e. Offset+Length.
func (r Range) Terminal() uint64 { return r.Offset + r.Length }

// String returns r in "[offset,terminal)" notation.
func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Offset, r.Terminal())
}

// Empty reports whether r covers no indices.
func (r Range) Empty() bool { return r.Length == 0 }

// A SyntaxRange is a Range extended with a Weight, the tie-break used when
// two nodes would otherwise occupy the identical range: higher weight
// nests inside lower weight.
type SyntaxRange struct {
	Range
	Weight int64
}

// String returns r in "[offset,terminal)@weight" notation.
func (r SyntaxRange) String() string {
	return fmt.Sprintf("%s@%d", r.Range, r.Weight)
}
