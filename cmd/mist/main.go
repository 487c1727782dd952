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

// Program mist reads a source buffer, matches its bracket-like delimiters
// into balanced enclosures, offers each enclosure into a single root
// covering the whole buffer, and prints the resulting hierarchy.
//
// Usage: mist [--inner] [FILE]
//
// If FILE is omitted, standard input is read.
package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/jamfn/mist/pkg/mist"
	"github.com/pborman/getopt"
)

func main() {
	var inner bool
	var help bool
	getopt.BoolVarLong(&inner, "inner", 0, "use each enclosure's inner range (delimiters excluded) instead of its outer range")
	getopt.BoolVarLong(&help, "help", '?', "display help")
	getopt.SetParameters("[FILE]")

	if err := getopt.Getopt(nil); err != nil {
		fmt.Fprintln(os.Stderr, err)
		getopt.PrintUsage(os.Stderr)
		os.Exit(1)
	}
	if help {
		getopt.CommandLine.PrintUsage(os.Stderr)
		os.Exit(0)
	}

	var data []byte
	var err error
	if args := getopt.Args(); len(args) > 0 {
		data, err = ioutil.ReadFile(args[0])
	} else {
		data, err = ioutil.ReadAll(os.Stdin)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	src := string(data)

	if err := run(os.Stdout, src, inner); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(w io.Writer, src string, inner bool) error {
	pairs := mist.ComputeEnclosureStream(lexDelimiters(src))

	root := mist.NewNode(src, 0, uint64(len(src)), 0)
	for _, p := range pairs {
		r := p.Outer
		if inner {
			r = p.Inner
		}
		n := mist.NewNode(src[r.Offset:r.Terminal()], r.Offset, r.Length, 0)
		if err := mist.Offer(root, n); err != nil {
			return fmt.Errorf("offering %s: %w", describe(src, r), err)
		}
	}

	Write(w, src, root)
	return nil
}
