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

// frame is the parse state of one open block.
type frame struct {
	name      string
	startLine int // 0-based line of the opening `[`
	inline    inlineState

	// item is set for the pseudo-frame of a single list item.
	// Items are not soft-wrapped at the end of their line.
	item bool
}

// parseBlock parses a block whose `[` has just been consumed,
// leaving the position just after the block's `]`.
func (p *Parser) parseBlock() error {
	start := p.pos.Line
	if p.depth >= p.ctx.maxDepth() {
		return &Error{Kind: OtherError, Line: start + 1, Err: errTooDeep}
	}
	p.depth++
	defer func() { p.depth-- }()

	line := p.src.Line(start)
	end := p.pos.Offset
	for ; end < len(line); end++ {
		c := line[end]
		if isWhitespace(c) || c == ']' {
			break
		}
		if !isNameChar(c) {
			return errorAt(BadBlockName, start)
		}
	}
	if end == p.pos.Offset {
		return errorAt(BlockNameNoEnd, start)
	}
	f := &frame{
		name:      string(line[p.pos.Offset:end]),
		startLine: start,
	}
	if end < len(line) && isWhitespace(line[end]) {
		// A single separator is part of the name.
		end++
	}
	p.pos.Offset = end

	if plugin := p.ctx.plugin(f.name); plugin != nil {
		tracer().Debugf("line %d: rendering [%s] with plugin", start+1, f.name)
		if err := plugin.Render(&Scanner{p: p, f: f}); err != nil {
			return asError(err, start)
		}
		return nil
	}
	p.openContainer(f.name)
	if err := p.parseContent(f); err != nil {
		return err
	}
	p.closeContainer()
	return nil
}

// parseContent parses the lines of the block f until its `]`.
func (p *Parser) parseContent(f *frame) error {
	var list ListState
	for {
		closed, next, err := p.parseLine(f, true, list)
		if err != nil {
			return err
		}
		if closed {
			return nil
		}
		list = next
	}
}
