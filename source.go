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
	"bytes"
	"strconv"
)

// A Pos is a position in a [Source].
// Line is the 0-based line index
// and Offset is the 0-based rune index within the line.
type Pos struct {
	Line   int
	Offset int
}

// String formats the position as 1-based "line:column".
func (pos Pos) String() string {
	return strconv.Itoa(pos.Line+1) + ":" + strconv.Itoa(pos.Offset+1)
}

// Less reports whether pos comes before other.
func (pos Pos) Less(other Pos) bool {
	return pos.Line < other.Line || pos.Line == other.Line && pos.Offset < other.Offset
}

// Source is an OSML document split into lines of runes.
// A Source is not modified once created.
type Source struct {
	lines [][]rune
}

// NewSource splits text into lines.
// Lines are separated by "\n"; a "\r" before the separator is dropped.
// NUL bytes and invalid UTF-8 are replaced with U+FFFD.
func NewSource(text []byte) *Source {
	if bytes.IndexByte(text, 0) >= 0 {
		// Contains one or more NUL bytes.
		// Replace with Unicode replacement character.
		text = bytes.ReplaceAll(text, []byte{0}, []byte("�"))
	}
	raw := bytes.Split(text, []byte("\n"))
	src := &Source{lines: make([][]rune, len(raw))}
	for i, line := range raw {
		src.lines[i] = bytes.Runes(bytes.TrimSuffix(line, []byte("\r")))
	}
	return src
}

// NumLines returns the number of lines in the source.
// A trailing newline counts as the start of a final empty line.
func (src *Source) NumLines() int {
	return len(src.lines)
}

// Line returns the runes of the i'th line
// or nil if i is out of range.
// The caller must not modify the returned slice.
func (src *Source) Line(i int) []rune {
	if i < 0 || i >= len(src.lines) {
		return nil
	}
	return src.lines[i]
}

// LineString returns the i'th line as a string.
func (src *Source) LineString(i int) string {
	return string(src.Line(i))
}

func isWhitespace(c rune) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// isNameChar reports whether c may appear in a block name.
func isNameChar(c rune) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_'
}

// firstNonWhitespace returns the first rune at or after start
// that is not whitespace, or zero if the rest of the line is blank.
func firstNonWhitespace(line []rune, start int) rune {
	for i := start; i < len(line); i++ {
		if !isWhitespace(line[i]) {
			return line[i]
		}
	}
	return 0
}
