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

// Package osml provides a compiler from OSML markup to HTML.
//
// An OSML document is a sequence of blocks.
// A block starts with `[` and a name, and ends with a matching `]`:
//
//	[section Some *bold*, /italic/, _underlined_,
//	and ~~struck~~ text.
//	+ an unordered list item
//	++ a nested item
//	= an ordered list item
//	[note Blocks nest.]
//	]
//
// Blocks compile to <div class='name'> elements
// unless a [Plugin] is registered for the name in the [Context].
package osml

import (
	"io"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'osml.core'.
func tracer() tracing.Trace {
	return tracing.Select("osml.core")
}

// A Parser compiles an OSML document one top-level block at a time.
type Parser struct {
	src   *Source
	ctx   *Context
	pos   Pos
	dst   []byte
	depth int // number of blocks currently open

	err error // sticky error from NextBlock
}

// NewParser returns a parser that reads from source.
// A nil ctx is treated like a pointer to the zero Context.
func NewParser(source []byte, ctx *Context) *Parser {
	if ctx == nil {
		ctx = new(Context)
	}
	return &Parser{
		src: NewSource(source),
		ctx: ctx,
	}
}

// Parse compiles a complete OSML document into an HTML document.
// On failure, Parse returns a nil slice and an [*Error].
func Parse(source []byte, ctx *Context) ([]byte, error) {
	p := NewParser(source, ctx)
	p.dst = appendDocumentStart(p.dst, p.ctx)
	for {
		err := p.NextBlock()
		if err == io.EOF {
			break
		}
		if err != nil {
			tracer().Debugf("compile failed: %v", err)
			return nil, err
		}
	}
	return appendDocumentEnd(p.dst), nil
}

// NextBlock compiles the next top-level block.
// It returns [io.EOF] once only whitespace remains.
// Any other error is an [*Error] and will be returned from all subsequent calls.
func (p *Parser) NextBlock() error {
	if p.err != nil {
		return p.err
	}
	for p.pos.Line < p.src.NumLines() {
		line := p.src.Line(p.pos.Line)
		for ; p.pos.Offset < len(line); p.pos.Offset++ {
			c := line[p.pos.Offset]
			if c == '[' {
				p.pos.Offset++
				if err := p.parseBlock(); err != nil {
					p.err = err
					return err
				}
				return nil
			}
			if !isWhitespace(c) {
				p.err = errorAt(ExpectedBlockStart, p.pos.Line)
				return p.err
			}
		}
		p.pos = Pos{Line: p.pos.Line + 1}
	}
	return io.EOF
}

// Bytes returns the HTML produced by the blocks compiled so far.
// It does not include the document envelope that [Parse] adds.
// The returned slice is valid until the next call to NextBlock.
func (p *Parser) Bytes() []byte {
	return p.dst
}
