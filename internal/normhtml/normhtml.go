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

// Package normhtml provides functions for inspecting compiler output
// without depending on insignificant output differences.
package normhtml

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var whitespaceRE = regexp.MustCompile(`\s+`)

// Check verifies that every start tag in b has a matching end tag
// and that elements are properly nested.
// Void elements like <br> are ignored.
func Check(b []byte) error {
	tok := html.NewTokenizer(bytes.NewReader(b))
	var stack []string
	for {
		switch tok.Next() {
		case html.ErrorToken:
			if len(stack) > 0 {
				return fmt.Errorf("unclosed elements: %s", strings.Join(stack, " > "))
			}
			return nil
		case html.StartTagToken:
			name, _ := tok.TagName()
			if isVoid(name) {
				continue
			}
			stack = append(stack, string(name))
		case html.EndTagToken:
			name, _ := tok.TagName()
			if len(stack) == 0 {
				return fmt.Errorf("</%s> without start tag", name)
			}
			if top := stack[len(stack)-1]; top != string(name) {
				return fmt.Errorf("</%s> closes <%s>", name, top)
			}
			stack = stack[:len(stack)-1]
		}
	}
}

// Tags returns the names of the start and end tags in b, in order.
// End tags are prefixed with a slash.
func Tags(b []byte) []string {
	tok := html.NewTokenizer(bytes.NewReader(b))
	var tags []string
	for {
		switch tok.Next() {
		case html.ErrorToken:
			return tags
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := tok.TagName()
			tags = append(tags, string(name))
		case html.EndTagToken:
			name, _ := tok.TagName()
			tags = append(tags, "/"+string(name))
		}
	}
}

// Text returns the unescaped text content of b
// with runs of whitespace collapsed to a single space.
func Text(b []byte) string {
	tok := html.NewTokenizer(bytes.NewReader(b))
	var text []byte
	for {
		switch tok.Next() {
		case html.ErrorToken:
			return string(whitespaceRE.ReplaceAll(text, []byte(" ")))
		case html.TextToken:
			text = append(text, tok.Text()...)
		}
	}
}

func isVoid(name []byte) bool {
	switch atom.Lookup(name) {
	case atom.Br, atom.Hr, atom.Img, atom.Input, atom.Link, atom.Meta, atom.Wbr:
		return true
	default:
		return false
	}
}
