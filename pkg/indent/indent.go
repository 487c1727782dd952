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

// Package indent prefixes every line of text with a fixed string, for
// building the nested, readable hierarchy dumps the mist CLI prints.
package indent

import (
	"bytes"
	"io"
	"strings"
)

// String returns in with prefix inserted at the start of every line,
// including blank lines produced by consecutive newlines. A trailing
// newline in in does not get a prefix of its own.
func String(prefix, in string) string {
	if in == "" {
		return ""
	}
	lines := strings.Split(in, "\n")
	trailing := lines[len(lines)-1] == ""
	if trailing {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = prefix + l
	}
	out := strings.Join(lines, "\n")
	if trailing {
		out += "\n"
	}
	return out
}

// Bytes is String for byte slices.
func Bytes(prefix, in []byte) []byte {
	if len(in) == 0 {
		return nil
	}
	lines := bytes.Split(in, []byte("\n"))
	trailing := len(lines[len(lines)-1]) == 0
	if trailing {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = append(append([]byte{}, prefix...), l...)
	}
	out := bytes.Join(lines, []byte("\n"))
	if trailing {
		out = append(out, '\n')
	}
	return out
}

// writer wraps an io.Writer, inserting prefix at the start of every line
// written to it. State (whether the next byte starts a new line) carries
// across Write calls so prefix never depends on how the caller chunks
// its writes.
type writer struct {
	w      io.Writer
	prefix []byte
	atBOL  bool
}

// NewWriter returns an io.Writer that copies to w, prefixing every line
// with prefix.
func NewWriter(w io.Writer, prefix string) io.Writer {
	return &writer{w: w, prefix: []byte(prefix), atBOL: true}
}

// Write transforms p into its prefixed form and writes it to the
// underlying writer in a single call. If the underlying writer accepts
// only part of the transformed output, Write reports how many bytes of
// p that partial acceptance corresponds to (not the transformed byte
// count), so callers see a conventional io.Writer short-write contract
// against their own input.
func (iw *writer) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	var out []byte
	bounds := make([]int, len(p)+1)
	atBOL := iw.atBOL
	for i, b := range p {
		if atBOL {
			out = append(out, iw.prefix...)
		}
		out = append(out, b)
		atBOL = b == '\n'
		bounds[i+1] = len(out)
	}

	n, err := iw.w.Write(out)
	if n > len(out) {
		n = len(out)
	}

	consumed := 0
	for consumed < len(p) && bounds[consumed+1] <= n {
		consumed++
	}

	if consumed == len(p) {
		iw.atBOL = atBOL
	} else {
		bol := iw.atBOL
		for i := 0; i < consumed; i++ {
			bol = p[i] == '\n'
		}
		iw.atBOL = bol
	}
	return consumed, err
}
