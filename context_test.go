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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestInserts(t *testing.T) {
	got, err := Parse([]byte("[a x]"), &Context{
		HeadInsert: "<title>T</title>",
		BodyInsert: "<nav></nav>",
	})
	if err != nil {
		t.Fatal(err)
	}
	const want = "<html><head><title>T</title></head><body><nav></nav><div class='a'>x</div></body></html>"
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestPlugin(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		plugin  PluginFunc
		want    string
		wantErr *Error
	}{
		{
			name:   "ParseContent",
			source: "[a [em *x*]]",
			plugin: func(s *Scanner) error {
				s.WriteString("<em>")
				if err := s.ParseContent(); err != nil {
					return err
				}
				s.WriteString("</em>")
				return nil
			},
			want: "<div class='a'><em><b>x</b></em></div>",
		},
		{
			name:   "Metadata",
			source: "\n[a\n[em x]]",
			plugin: func(s *Scanner) error {
				if s.Name() != "em" || s.StartLine() != 3 || s.Context() == nil {
					return errors.New("bad metadata")
				}
				if got, want := s.Pos(), (Pos{Line: 2, Offset: 4}); got != want {
					return s.Errorf("Pos() = %v; want %v", got, want)
				}
				s.Seek(Pos{Line: 2, Offset: 6})
				return nil
			},
			want: "<div class='a'></div>",
		},
		{
			name:   "RawSource",
			source: "[a [em *x*]]",
			plugin: func(s *Scanner) error {
				pos := s.Pos()
				line := s.Source().Line(pos.Line)
				end := pos.Offset
				for line[end] != ']' {
					end++
				}
				s.WriteString(string(line[pos.Offset:end]))
				s.Seek(Pos{Line: pos.Line, Offset: end + 1})
				return nil
			},
			want: "<div class='a'>*x*</div>",
		},
		{
			name:   "NestedBlock",
			source: "[em [b y]]",
			plugin: func(s *Scanner) error {
				s.WriteString("<em>")
				s.Seek(Pos{Line: 0, Offset: 5})
				if err := s.ParseBlock(); err != nil {
					return err
				}
				s.Seek(Pos{Line: 0, Offset: 10})
				s.WriteString("</em>")
				return nil
			},
			want: "<em><div class='b'>y</div></em>",
		},
		{
			name:   "PlainError",
			source: "[a\n\n[em x]]",
			plugin: func(s *Scanner) error {
				return errors.New("bork")
			},
			wantErr: &Error{Kind: OtherError, Line: 3},
		},
		{
			name:   "Errorf",
			source: "[em\nx]",
			plugin: func(s *Scanner) error {
				s.Seek(Pos{Line: 1})
				return s.Errorf("bork")
			},
			wantErr: &Error{Kind: OtherError, Line: 2},
		},
		{
			name:   "ParseError",
			source: "[em\n/x]",
			plugin: func(s *Scanner) error {
				return s.ParseContent()
			},
			wantErr: &Error{Kind: UnclosedItalic, Line: 2},
		},
		{
			name:   "RecursiveListWithoutLists",
			source: "[em\n+ x]",
			plugin: func(s *Scanner) error {
				var list ListState
				for {
					closed, next, err := s.ParseLine(false, list)
					if err != nil || closed {
						return err
					}
					list = next
				}
			},
			wantErr: &Error{Kind: RecursiveList, Line: 2},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctx := &Context{Plugins: map[string]Plugin{"em": test.plugin}}
			got, err := Parse([]byte(test.source), ctx)
			if test.wantErr != nil {
				var e *Error
				if !errors.As(err, &e) {
					t.Fatalf("Parse(%q) = _, %v; want %v", test.source, err, test.wantErr)
				}
				if e.Kind != test.wantErr.Kind || e.Line != test.wantErr.Line {
					t.Errorf("Parse(%q) = _, %v (%v); want %v (%v)", test.source, e, e.Kind, test.wantErr, test.wantErr.Kind)
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

func TestSeekBackwardsPanics(t *testing.T) {
	ctx := &Context{Plugins: map[string]Plugin{
		"a": PluginFunc(func(s *Scanner) error {
			defer func() {
				if recover() == nil {
					t.Error("Seek did not panic")
				}
				s.Seek(Pos{Line: 0, Offset: 3})
			}()
			s.Seek(Pos{Line: 0, Offset: 0})
			return nil
		}),
	}}
	if _, err := Parse([]byte("[a]"), ctx); err != nil {
		t.Error(err)
	}
}
