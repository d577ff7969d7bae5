// Copyright 2024 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package osml

import (
	"golang.org/x/net/html/atom"
)

// style is an inline formatting toggle.
type style int

const (
	bold style = iota
	italic
	underline
	strikethrough

	numStyles
)

var styles = [numStyles]struct {
	tag      atom.Atom
	unclosed ErrorKind
}{
	bold:          {atom.B, UnclosedBold},
	italic:        {atom.I, UnclosedItalic},
	underline:     {atom.U, UnclosedUnderline},
	strikethrough: {atom.S, UnclosedStrikethrough},
}

// inlineState records which styles are open and where they were opened.
type inlineState struct {
	open  [numStyles]bool
	since [numStyles]Pos
}

// check returns an error for the first style that is still open.
func (st *inlineState) check() error {
	for s := style(0); s < numStyles; s++ {
		if st.open[s] {
			return errorAt(styles[s].unclosed, st.since[s].Line)
		}
	}
	return nil
}

// toggle flips style s at the current position and writes its tag.
func (p *Parser) toggle(st *inlineState, s style) {
	if st.open[s] {
		st.open[s] = false
		p.closeTag(styles[s].tag)
		return
	}
	st.open[s] = true
	st.since[s] = p.pos
	p.openTag(styles[s].tag)
}

// isEscapable reports whether c may follow a `\`.
func isEscapable(c rune) bool {
	switch c {
	case '\\', '*', '/', '_', '~', '[', ']', '+', '=':
		return true
	default:
		return false
	}
}

// parseLine parses from the current position to the end of the line
// or to the `]` that closes f.
//
// Runs of whitespace collapse to a single space.
// An empty line produces a line break,
// and a line that ends in text is followed by a space
// so that it joins the next line.
func (p *Parser) parseLine(f *frame, allowLists bool, list ListState) (closed bool, open ListState, err error) {
	if p.pos.Line >= p.src.NumLines() {
		return false, ListState{}, errorAt(BlockNoEnd, f.startLine)
	}
	line := p.src.Line(p.pos.Line)
	if list.Depth > 0 && firstNonWhitespace(line, p.pos.Offset) != list.Kind.marker() {
		p.closeLists(list.Kind, list.Depth)
		list = ListState{}
	}

	prev := ' '         // last rune consumed, for collapsing whitespace
	leading := true     // only whitespace consumed so far
	afterBlock := false // last thing consumed was a nested block
	for p.pos.Offset < len(line) {
		c := line[p.pos.Offset]
		switch {
		case c == '\\':
			if p.pos.Offset+1 >= len(line) || !isEscapable(line[p.pos.Offset+1]) {
				return false, ListState{}, errorAt(StrayBackslash, p.pos.Line)
			}
			p.pos.Offset++
			c = line[p.pos.Offset]
			p.writeRune(c)
			p.pos.Offset++
			if c == '~' && p.pos.Offset < len(line) && line[p.pos.Offset] == '~' {
				// `\~~` is a literal `~~`.
				p.writeRune('~')
				p.pos.Offset++
			}
		case c == '[':
			p.pos.Offset++
			if err := p.parseBlock(); err != nil {
				return false, ListState{}, err
			}
			// The block may have spanned lines.
			line = p.src.Line(p.pos.Line)
			leading = false
			afterBlock = true
			prev = c
			continue
		case c == ']':
			p.pos.Offset++
			if err := f.inline.check(); err != nil {
				return false, ListState{}, err
			}
			return true, ListState{}, nil
		case (c == '+' || c == '=') && leading:
			if !allowLists {
				return false, ListState{}, errorAt(RecursiveList, p.pos.Line)
			}
			kind := UnorderedList
			if c == '=' {
				kind = OrderedList
			}
			depth := 0
			if list.Kind == kind {
				depth = list.Depth
			}
			return p.parseList(f, kind, depth)
		case c == '*':
			p.toggle(&f.inline, bold)
			p.pos.Offset++
		case c == '/':
			p.toggle(&f.inline, italic)
			p.pos.Offset++
		case c == '_':
			p.toggle(&f.inline, underline)
			p.pos.Offset++
		case c == '~' && p.pos.Offset+1 < len(line) && line[p.pos.Offset+1] == '~':
			p.toggle(&f.inline, strikethrough)
			p.pos.Offset += 2
		case isWhitespace(c):
			if !isWhitespace(prev) {
				p.dst = append(p.dst, ' ')
			}
			p.pos.Offset++
			prev = c
			continue
		default:
			p.writeRune(c)
			p.pos.Offset++
		}
		prev = c
		leading = false
		afterBlock = false
	}

	switch {
	case len(line) == 0:
		p.dst = append(p.dst, lineBreak...)
	case !f.item && !afterBlock && !isWhitespace(prev):
		p.dst = append(p.dst, ' ')
	}
	p.pos = Pos{Line: p.pos.Line + 1}
	return false, ListState{}, nil
}
