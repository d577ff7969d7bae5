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

// ListKind is the kind of list a line belongs to.
type ListKind uint8

// List kinds.
const (
	NoList ListKind = iota
	// UnorderedList lines start with `+`.
	UnorderedList
	// OrderedList lines start with `=`.
	OrderedList
)

func (kind ListKind) marker() rune {
	switch kind {
	case UnorderedList:
		return '+'
	case OrderedList:
		return '='
	default:
		return 0
	}
}

func (kind ListKind) tag() atom.Atom {
	if kind == OrderedList {
		return atom.Ol
	}
	return atom.Ul
}

// ListState describes the lists left open by the previous line of a block.
// The zero value means no list is open.
type ListState struct {
	Kind ListKind
	// Depth is the number of nested lists that are open.
	Depth int
}

// parseList parses a list item line.
// The current position must be at the first marker of the line.
// prev is the depth of the open list of the same kind, or zero.
//
// An item may be at most one level deeper than the previous item.
// Shallower items close the lists in between.
func (p *Parser) parseList(f *frame, kind ListKind, prev int) (closed bool, open ListState, err error) {
	line := p.src.Line(p.pos.Line)
	marker := kind.marker()
	end := p.pos.Offset
	for end < len(line) && line[end] == marker {
		end++
	}
	depth := end - p.pos.Offset

	switch {
	case prev == 0:
		p.openLists(kind, depth)
	case depth == prev+1:
		p.openLists(kind, 1)
	case depth <= prev:
		p.closeLists(kind, prev-depth)
	default:
		return false, ListState{}, errorAt(InvalidListDepth, p.pos.Line)
	}

	p.openTag(atom.Li)
	p.pos.Offset = end
	item := &frame{
		name:      f.name,
		startLine: f.startLine,
		item:      true,
	}
	closed, _, err = p.parseLine(item, false, ListState{})
	if err != nil {
		return false, ListState{}, err
	}
	if err := item.inline.check(); err != nil {
		return false, ListState{}, err
	}
	p.closeTag(atom.Li)

	if closed {
		p.closeLists(kind, depth)
		if err := f.inline.check(); err != nil {
			return false, ListState{}, err
		}
		return true, ListState{}, nil
	}
	return false, ListState{Kind: kind, Depth: depth}, nil
}
