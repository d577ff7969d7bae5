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
	"errors"
	"fmt"
	"strings"
	"testing"

	"zombiezen.com/go/osml/internal/normhtml"
)

// TestListDepths checks every sequence of three list item depths:
// a document compiles exactly when each item is at most
// one level deeper than the item before it.
func TestListDepths(t *testing.T) {
	const maxDepth = 4
	for d0 := 1; d0 <= maxDepth; d0++ {
		for d1 := 1; d1 <= maxDepth; d1++ {
			for d2 := 1; d2 <= maxDepth; d2++ {
				depths := []int{d0, d1, d2}
				t.Run(fmt.Sprint(depths), func(t *testing.T) {
					source := new(strings.Builder)
					source.WriteString("[list\n")
					for i, d := range depths {
						fmt.Fprintf(source, "%s item%d\n", strings.Repeat("+", d), i)
					}
					source.WriteString("]\n")

					wantOK := true
					wantLine := 0
					for i := 1; i < len(depths); i++ {
						if depths[i] > depths[i-1]+1 {
							wantOK = false
							wantLine = i + 2
							break
						}
					}

					got, err := Parse([]byte(source.String()), nil)
					if !wantOK {
						var e *Error
						if !errors.As(err, &e) || e.Kind != InvalidListDepth || e.Line != wantLine {
							t.Errorf("Parse(%q) = _, %v; want InvalidListDepth on line %d", source, err, wantLine)
						}
						return
					}
					if err != nil {
						t.Fatalf("Parse(%q): %v", source, err)
					}
					if err := normhtml.Check(got); err != nil {
						t.Errorf("Parse(%q) = %q: %v", source, got, err)
					}
					if n := strings.Count(string(got), "<li>"); n != len(depths) {
						t.Errorf("Parse(%q) = %q; has %d items, want %d", source, got, n, len(depths))
					}
					if n := strings.Count(string(got), "<ul>"); n < depths[0] {
						t.Errorf("Parse(%q) = %q; opened %d lists, want at least %d", source, got, n, depths[0])
					}
				})
			}
		}
	}
}

func TestListItemStyles(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
		err    ErrorKind
	}{
		{
			name:   "Closed",
			source: "[a\n+ /x/\n]",
			want:   "<div class='a'><ul><li><i>x</i></li></ul></div>",
		},
		{
			name:   "OpenAtEndOfItem",
			source: "[a\n+ /x\n/]",
			err:    UnclosedItalic,
		},
		{
			name:   "BlockStyleDoesNotLeakIntoItem",
			source: "[a *x\n+ y\n*]",
			want:   "<div class='a'><b>x <ul><li>y</li></ul></b></div>",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := Parse([]byte(test.source), nil)
			if test.err != 0 {
				var e *Error
				if !errors.As(err, &e) || e.Kind != test.err {
					t.Errorf("Parse(%q) = _, %v; want %v", test.source, err, test.err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if want := "<html><head></head><body>" + test.want + "</body></html>"; string(got) != want {
				t.Errorf("Parse(%q) = %q; want %q", test.source, got, want)
			}
		})
	}
}
