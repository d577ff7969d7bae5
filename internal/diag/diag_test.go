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

package diag

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"zombiezen.com/go/osml"
)

func TestShowError(t *testing.T) {
	tests := []struct {
		name   string
		source string
		err    error
		color  bool
		want   string
	}{
		{
			name: "Plain",
			err:  errors.New("ERROR"),
			want: "Error: ERROR\n",
		},
		{
			name:  "PlainColor",
			err:   errors.New("ERROR"),
			color: true,
			want:  "\033[31;1mError:\033[m ERROR\n",
		},
		{
			name:   "Unlocated",
			source: "[a x]",
			err:    &osml.Error{Kind: osml.OtherError, Err: errors.New("bork")},
			want:   "Error: bork\n",
		},
		{
			name:   "Context",
			source: "[a\nb\n*c]\nd\n",
			err:    &osml.Error{Kind: osml.OtherError, Line: 3, Err: errors.New("bork")},
			want: "Error: bork\n" +
				"  --> doc.osml:3\n" +
				" 1 | [a\n" +
				" 2 | b\n" +
				" 3 | *c]\n" +
				" 4 | d\n" +
				" 5 |\n",
		},
		{
			name:   "FirstLine",
			source: "oops\n[a x]",
			err:    &osml.Error{Kind: osml.OtherError, Line: 1, Err: errors.New("bork")},
			want: "Error: bork\n" +
				"  --> doc.osml:1\n" +
				" 1 | oops\n" +
				" 2 | [a x]\n",
		},
		{
			name:   "WideLineNumbers",
			source: strings.Repeat("x\n", 9) + "[a\n*y]",
			err:    &osml.Error{Kind: osml.UnclosedBold, Line: 11},
			want: "Error: " + (&osml.Error{Kind: osml.UnclosedBold}).Message() + "\n" +
				"   --> doc.osml:11\n" +
				"  9 | x\n" +
				" 10 | [a\n" +
				" 11 | *y]\n",
		},
		{
			name:   "Wrapped",
			source: "[a\n/x]",
			err:    errors.Join(errors.New("compile"), &osml.Error{Kind: osml.OtherError, Line: 2, Err: errors.New("bork")}),
			color:  true,
			want: "\033[31;1mError:\033[m bork\n" +
				"  --> doc.osml:2\n" +
				" 1 | [a\n" +
				" \033[1m2\033[m | /x]\n",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			sb := new(strings.Builder)
			NewPrinter(sb, test.color).ShowError("doc.osml", []byte(test.source), test.err)
			if diff := cmp.Diff(test.want, sb.String()); diff != "" {
				t.Errorf("output (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStatus(t *testing.T) {
	sb := new(strings.Builder)
	pr := NewPrinter(sb, false)
	pr.OK("src/a.osml", "dist/a.html")
	pr.Failed("src/b.osml", "dist/b.html")
	pr.Complainf("%d problem", 1)
	pr.Success("done")
	const want = "\tOK: src/a.osml --> dist/a.html\n" +
		"\tError: src/b.osml --> dist/b.html\n" +
		"Error: 1 problem\n" +
		"OK: done\n"
	if diff := cmp.Diff(want, sb.String()); diff != "" {
		t.Errorf("output (-want +got):\n%s", diff)
	}
}
