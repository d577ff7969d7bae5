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

//go:generate stringer -type=ErrorKind -output=errorkind_string.go

package osml

import (
	"errors"
	"fmt"
)

// ErrorKind is an enumeration of the ways an OSML document can be malformed.
type ErrorKind int

const (
	// BlockNameNoEnd indicates a `[` that is not followed by a block name.
	BlockNameNoEnd ErrorKind = 1 + iota
	// ExpectedBlockStart indicates text outside of any block.
	ExpectedBlockStart
	// BlockNoEnd indicates a block whose `]` was never found.
	BlockNoEnd
	// BadBlockName indicates a block name with a disallowed character.
	BadBlockName
	// UnclosedBold indicates a `*` without a matching `*`.
	UnclosedBold
	// UnclosedItalic indicates a `/` without a matching `/`.
	UnclosedItalic
	// UnclosedUnderline indicates a `_` without a matching `_`.
	UnclosedUnderline
	// UnclosedStrikethrough indicates a `~~` without a matching `~~`.
	UnclosedStrikethrough
	// StrayBackslash indicates a `\` before a character that cannot be escaped.
	StrayBackslash
	// RecursiveList indicates a list marker inside a list item.
	RecursiveList
	// InvalidListDepth indicates a list nested more than one level
	// deeper than the previous list line.
	InvalidListDepth
	// OtherError is a failure reported by a plugin.
	OtherError
)

// Error is a located error in an OSML document.
// Errors returned by [Parse] and [*Parser.NextBlock] are always of type *Error.
type Error struct {
	Kind ErrorKind
	// Line is the 1-based line number that the error is attributed to.
	// Zero means the error has no location.
	Line int
	// Err is the underlying error of an [OtherError], if any.
	Err error
}

// errorAt returns an error attributed to the given 0-based line index.
func errorAt(kind ErrorKind, line int) *Error {
	return &Error{Kind: kind, Line: line + 1}
}

// Error returns the message prefixed with the line number.
func (e *Error) Error() string {
	if e.Line <= 0 {
		return e.Message()
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Message())
}

// Unwrap returns e.Err.
func (e *Error) Unwrap() error {
	return e.Err
}

// Message returns a human-readable description of the error
// without location information.
func (e *Error) Message() string {
	switch e.Kind {
	case BlockNameNoEnd:
		return "Block's name is not defined correctly as `[my_name ...]`."
	case ExpectedBlockStart:
		return "Text must be inside a block. Start one with `[my_name ...]`."
	case BlockNoEnd:
		return "Block's opening `[` is not matched with a corresponding `]`."
	case BadBlockName:
		return "Block names must only use characters a-z, A-Z, or '_'."
	case UnclosedBold:
		return "Opening `*` must be matched with a closing `*`. " +
			"Or, you meant to escape the `*` with `\\*`."
	case UnclosedItalic:
		return "Opening `/` must be matched with a closing `/`. " +
			"Or, you meant to escape the `/` with `\\/`."
	case UnclosedUnderline:
		return "Opening `_` must be matched with a closing `_`. " +
			"Or, you meant to escape the `_` with `\\_`."
	case UnclosedStrikethrough:
		return "Opening `~~` must be matched with a closing `~~`. " +
			"Or, you meant to escape the `~` with `\\~~`."
	case StrayBackslash:
		return "A stray `\\` is not allowed. However, you can escape it using `\\\\`."
	case RecursiveList:
		return "Lists cannot recurse. In other words, you cannot do this: " +
			"`+ + Hello World`. Perhaps you meant to use `++ Hello World`."
	case InvalidListDepth:
		return "List nesting depth is invalid. In other words: " +
			"`+ Layer One` cannot be followed by `++++ Layer Four!`."
	case OtherError:
		if e.Err != nil {
			return e.Err.Error()
		}
		return "Unknown error."
	default:
		return e.Kind.String()
	}
}

// errTooDeep is the cause of the error returned
// when blocks nest deeper than [Context.MaxDepth].
var errTooDeep = errors.New("Blocks are nested too deeply.")

// asError converts an error returned by a plugin into an *Error
// attributed to the given 0-based line.
func asError(err error, line int) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Kind: OtherError, Line: line + 1, Err: err}
}
