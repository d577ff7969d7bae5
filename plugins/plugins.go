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

// Package plugins provides a standard library of OSML block plugins.
package plugins

import (
	"go4.org/bytereplacer"
	"golang.org/x/net/html/atom"
	"zombiezen.com/go/osml"
)

// Default returns a new map of the standard plugins:
//
//	[code ...]      preformatted text, see [Code]
//	[title ...]     <h1>
//	[subtitle ...]  <h2>
//	[section ...]   <h3>
//	[quote ...]     <blockquote>
//	[p ...]         <p>
func Default() map[string]osml.Plugin {
	return map[string]osml.Plugin{
		"code":     Code,
		"title":    Element(atom.H1),
		"subtitle": Element(atom.H2),
		"section":  Element(atom.H3),
		"quote":    Element(atom.Blockquote),
		"p":        Element(atom.P),
	}
}

// Element returns a plugin that wraps the block's content in the given element
// instead of a <div>.
func Element(tag atom.Atom) osml.Plugin {
	return osml.PluginFunc(func(s *osml.Scanner) error {
		s.WriteString("<" + tag.String() + ">")
		if err := s.ParseContent(); err != nil {
			return err
		}
		s.WriteString("</" + tag.String() + ">")
		return nil
	})
}

var codeEscaper = bytereplacer.New(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// Code renders the block's raw text as <pre><code>.
// Markup is not interpreted and line breaks are preserved.
// The block ends at the first `]` not preceded by a backslash;
// `\]` and `\\` stand for `]` and `\`.
// If nothing follows the block name on its line,
// that empty remainder is not part of the text.
var Code osml.Plugin = osml.PluginFunc(renderCode)

func renderCode(s *osml.Scanner) error {
	src := s.Source()
	start := s.Pos()
	var text []byte
	for lineno := start.Line; lineno < src.NumLines(); lineno++ {
		line := src.Line(lineno)
		i := 0
		if lineno == start.Line {
			i = start.Offset
		}
		if lineno > start.Line && (lineno > start.Line+1 || start.Offset < len(src.Line(start.Line))) {
			text = append(text, '\n')
		}
		for ; i < len(line); i++ {
			c := line[i]
			if c == '\\' && i+1 < len(line) && (line[i+1] == ']' || line[i+1] == '\\') {
				i++
				text = append(text, string(line[i])...)
				continue
			}
			if c == ']' {
				s.WriteString("<pre><code>")
				s.Write(codeEscaper.Replace(text))
				s.WriteString("</code></pre>")
				s.Seek(osml.Pos{Line: lineno, Offset: i + 1})
				return nil
			}
			text = append(text, string(c)...)
		}
	}
	return &osml.Error{Kind: osml.BlockNoEnd, Line: s.StartLine()}
}
