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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewSource(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{"", []string{""}},
		{"abc", []string{"abc"}},
		{"abc\n", []string{"abc", ""}},
		{"a\nb\r\nc", []string{"a", "b", "c"}},
		{"a\rb", []string{"a\rb"}},
		{"a\x00b", []string{"a�b"}},
		{"h\xffi", []string{"h�i"}},
		{"日本\n語", []string{"日本", "語"}},
	}
	for _, test := range tests {
		src := NewSource([]byte(test.text))
		var got []string
		for i := 0; i < src.NumLines(); i++ {
			got = append(got, src.LineString(i))
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("NewSource(%q) lines (-want +got):\n%s", test.text, diff)
		}
	}
}

func TestSourceLineOutOfRange(t *testing.T) {
	src := NewSource([]byte("a"))
	if got := src.Line(-1); got != nil {
		t.Errorf("Line(-1) = %q; want nil", got)
	}
	if got := src.Line(1); got != nil {
		t.Errorf("Line(1) = %q; want nil", got)
	}
}

func TestPos(t *testing.T) {
	a := Pos{Line: 1, Offset: 5}
	b := Pos{Line: 2, Offset: 0}
	if !a.Less(b) || b.Less(a) || a.Less(a) {
		t.Errorf("Less does not order %v before %v", a, b)
	}
	if got, want := a.String(), "2:6"; got != want {
		t.Errorf("%#v.String() = %q; want %q", a, got, want)
	}
}
