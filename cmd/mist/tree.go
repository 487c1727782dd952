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

package main

import (
	"fmt"
	"io"

	"github.com/jamfn/mist/pkg/indent"
	"github.com/jamfn/mist/pkg/mist"
)

// Write prints n and its descendants as a nested hierarchy, each depth
// indented two spaces further than its parent.
func Write(w io.Writer, src string, n *mist.Node[string]) {
	r := n.Range()
	fmt.Fprintf(w, "%s %s\n", r.String(), n.Value)
	children := n.Children()
	if len(children) == 0 {
		return
	}
	cw := indent.NewWriter(w, "  ")
	for _, c := range children {
		Write(cw, src, c)
	}
}
