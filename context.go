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
	"fmt"
)

// DefaultMaxDepth is the block nesting limit
// used when [Context.MaxDepth] is zero.
const DefaultMaxDepth = 256

// Context is the configuration of a single compilation.
// The zero value compiles with no plugins and no inserts.
type Context struct {
	// Plugins maps block names to the plugin that renders them.
	// Blocks whose names are not present are rendered as
	// <div class='name'> containers.
	Plugins map[string]Plugin

	// HeadInsert is copied verbatim into the document's <head>.
	HeadInsert string
	// BodyInsert is copied verbatim to the start of the document's <body>.
	BodyInsert string

	// MaxDepth limits how deeply blocks may nest.
	// If MaxDepth is zero, DefaultMaxDepth is used.
	MaxDepth int
}

func (ctx *Context) plugin(name string) Plugin {
	if ctx == nil {
		return nil
	}
	return ctx.Plugins[name]
}

func (ctx *Context) maxDepth() int {
	if ctx == nil || ctx.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return ctx.MaxDepth
}

// A Plugin renders every block with a particular name.
//
// Render is called with the scanner positioned just after the block name
// (and the single whitespace character that follows it, if any).
// Render must write the block's HTML with the scanner's write methods
// and must leave the scanner positioned just after the block's closing `]`.
// Render may use [*Scanner.ParseLine], [*Scanner.ParseContent],
// and [*Scanner.ParseBlock] to reuse the built-in parsers.
// An error that is not an [*Error] is reported as an [OtherError]
// on the line that the block starts on.
type Plugin interface {
	Render(s *Scanner) error
}

// PluginFunc is a function that implements [Plugin].
type PluginFunc func(s *Scanner) error

// Render calls f(s).
func (f PluginFunc) Render(s *Scanner) error {
	return f(s)
}

// A Scanner gives a [Plugin] access to the compilation of its block.
// It is only valid for the duration of the Render call.
type Scanner struct {
	p *Parser
	f *frame
}

// Name returns the name of the block being rendered.
func (s *Scanner) Name() string {
	return s.f.name
}

// StartLine returns the 1-based line number of the block's opening `[`.
func (s *Scanner) StartLine() int {
	return s.f.startLine + 1
}

// Context returns the compilation's context.
func (s *Scanner) Context() *Context {
	return s.p.ctx
}

// Source returns the document being compiled.
func (s *Scanner) Source() *Source {
	return s.p.src
}

// Pos returns the scanner's current position.
func (s *Scanner) Pos() Pos {
	return s.p.pos
}

// Seek moves the scanner forward to pos.
// Seek panics if pos is before the scanner's current position.
func (s *Scanner) Seek(pos Pos) {
	if pos.Less(s.p.pos) {
		panic(fmt.Sprintf("osml: Seek to %v before current position %v", pos, s.p.pos))
	}
	s.p.pos = pos
}

// Write appends HTML to the output. It never returns an error.
func (s *Scanner) Write(b []byte) (int, error) {
	s.p.dst = append(s.p.dst, b...)
	return len(b), nil
}

// WriteString appends HTML to the output. It never returns an error.
func (s *Scanner) WriteString(str string) (int, error) {
	s.p.dst = append(s.p.dst, str...)
	return len(str), nil
}

// ParseLine runs the text-line parser from the current position
// to the end of the line or to the closing `]` of the block,
// whichever comes first.
// If allowLists is false, a list marker at the start of the line
// is reported as a [RecursiveList] error.
// list must be the state returned by the previous ParseLine call
// for the same block, or the zero value for the first line.
// closed reports whether the block's `]` was consumed;
// open is the state to pass to the next call.
func (s *Scanner) ParseLine(allowLists bool, list ListState) (closed bool, open ListState, err error) {
	return s.p.parseLine(s.f, allowLists, list)
}

// ParseContent parses lines until the block's closing `]`,
// exactly as a block without a plugin would, minus the surrounding <div>.
func (s *Scanner) ParseContent() error {
	return s.p.parseContent(s.f)
}

// ParseBlock parses a nested block.
// The scanner must be positioned just after the nested block's `[`.
func (s *Scanner) ParseBlock() error {
	return s.p.parseBlock()
}

// Errorf returns an [OtherError] located at the scanner's current line.
func (s *Scanner) Errorf(format string, args ...any) error {
	return &Error{
		Kind: OtherError,
		Line: s.p.pos.Line + 1,
		Err:  fmt.Errorf(format, args...),
	}
}
