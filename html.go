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
	"unicode/utf8"

	"golang.org/x/net/html/atom"
)

// lineBreak is written for every empty source line.
const lineBreak = "<br><br>"

func (p *Parser) openTag(name atom.Atom) {
	p.dst = append(p.dst, '<')
	p.dst = append(p.dst, name.String()...)
	p.dst = append(p.dst, '>')
}

func (p *Parser) closeTag(name atom.Atom) {
	p.dst = append(p.dst, "</"...)
	p.dst = append(p.dst, name.String()...)
	p.dst = append(p.dst, '>')
}

// openContainer writes the opening tag of a generic block.
// Block names only contain letters and underscores,
// so the name never needs escaping.
func (p *Parser) openContainer(name string) {
	p.dst = append(p.dst, "<div class='"...)
	p.dst = append(p.dst, name...)
	p.dst = append(p.dst, "'>"...)
}

func (p *Parser) closeContainer() {
	p.closeTag(atom.Div)
}

func (p *Parser) writeRune(c rune) {
	p.dst = utf8.AppendRune(p.dst, c)
}

func (p *Parser) openLists(kind ListKind, n int) {
	for i := 0; i < n; i++ {
		p.openTag(kind.tag())
	}
}

func (p *Parser) closeLists(kind ListKind, n int) {
	for i := 0; i < n; i++ {
		p.closeTag(kind.tag())
	}
}

// appendDocumentStart appends the HTML that precedes all block output.
func appendDocumentStart(dst []byte, ctx *Context) []byte {
	dst = append(dst, "<html><head>"...)
	dst = append(dst, ctx.HeadInsert...)
	dst = append(dst, "</head><body>"...)
	dst = append(dst, ctx.BodyInsert...)
	return dst
}

// appendDocumentEnd appends the HTML that follows all block output.
func appendDocumentEnd(dst []byte) []byte {
	return append(dst, "</body></html>"...)
}
