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

// This file implements the lexical scan that turns a source buffer into a
// stream of delimiter tokens for the enclosure matcher. It only ever needs
// two states: scanning ordinary text, and skipping the character right
// after a backslash, which never starts or ends an enclosure.

package main

import (
	"fmt"

	"github.com/jamfn/mist/pkg/mist"
)

// pairs maps each opener rune to its closer. A rune that appears in
// neither role is ordinary text.
var pairs = map[rune]rune{
	'(': ')',
	'{': '}',
	'[': ']',
	'<': '>',
}

var closers = func() map[rune]bool {
	m := make(map[rune]bool, len(pairs))
	for _, c := range pairs {
		m[c] = true
	}
	return m
}()

// stateFn represents a state in the lexer as a function returning the
// next state, or nil at end of input.
type stateFn func(*lexer) stateFn

type lexer struct {
	src   []rune
	pos   int
	delim []mist.Delimiter
	byte  []int // byte offset of each rune in src, plus a final sentinel
}

// lexDelimiters scans src for opener/closer runes and returns them, in
// source order, as a stream of tagged Delimiter ranges ready for
// mist.ComputeEnclosureStream.
func lexDelimiters(src string) []mist.Delimiter {
	runes := []rune(src)
	offs := make([]int, len(runes)+1)
	b := 0
	for i, r := range runes {
		offs[i] = b
		b += len(string(r))
	}
	offs[len(runes)] = b

	l := &lexer{src: runes, byte: offs}
	for state := lexText; state != nil; {
		state = state(l)
	}
	return l.delim
}

func lexText(l *lexer) stateFn {
	for l.pos < len(l.src) {
		r := l.src[l.pos]
		switch {
		case r == '\\':
			l.pos++
			return lexEscaped
		case pairs[r] != 0:
			l.emit(r, true)
		case closers[r]:
			l.emit(r, false)
		}
		l.pos++
	}
	return nil
}

func lexEscaped(l *lexer) stateFn {
	if l.pos < len(l.src) {
		l.pos++
	}
	return lexText
}

func (l *lexer) emit(r rune, open bool) {
	l.delim = append(l.delim, mist.Delimiter{
		Range: mist.Range{Offset: uint64(l.byte[l.pos]), Length: uint64(len(string(r)))},
		Open:  open,
	})
}

// describe renders the source text covered by rg, and its offset, for
// diagnostics.
func describe(src string, rg mist.Range) string {
	return fmt.Sprintf("%q@%d", src[rg.Offset:rg.Terminal()], rg.Offset)
}
