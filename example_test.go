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

package osml_test

import (
	"errors"
	"fmt"
	"io"
	"os"

	"zombiezen.com/go/osml"
)

func Example() {
	html, err := osml.Parse([]byte("[greeting Hello, *World*!]\n"), nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	fmt.Println(string(html))
	// Output:
	// <html><head></head><body><div class='greeting'>Hello, <b>World</b>!</div></body></html>
}

func ExampleParse_error() {
	_, err := osml.Parse([]byte("[note\n*unfinished\n]\n"), nil)
	var e *osml.Error
	if errors.As(err, &e) {
		fmt.Println(e.Kind, "on line", e.Line)
	}
	// Output:
	// UnclosedBold on line 2
}

func ExamplePluginFunc() {
	// Render [shout ...] blocks as headings.
	shout := osml.PluginFunc(func(s *osml.Scanner) error {
		s.WriteString("<h1>")
		if err := s.ParseContent(); err != nil {
			return err
		}
		s.WriteString("</h1>")
		return nil
	})

	html, err := osml.Parse([]byte("[shout Hi /there/]"), &osml.Context{
		Plugins: map[string]osml.Plugin{"shout": shout},
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	fmt.Println(string(html))
	// Output:
	// <html><head></head><body><h1>Hi <i>there</i></h1></body></html>
}

func ExampleParser() {
	p := osml.NewParser([]byte("[a\n+ one\n+ two\n]\n[b done]\n"), nil)
	for {
		err := p.NextBlock()
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
	}
	fmt.Println(string(p.Bytes()))
	// Output:
	// <div class='a'><ul><li>one</li><li>two</li></ul></div><div class='b'>done</div>
}
