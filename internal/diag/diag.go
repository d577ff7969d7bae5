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

// Package diag prints compiler diagnostics for the command-line tools.
package diag

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"zombiezen.com/go/osml"
)

// contextLines is the number of source lines shown on each side
// of the line an error is reported on.
const contextLines = 2

// Printer writes diagnostics to a writer,
// optionally with ANSI colors.
type Printer struct {
	w     io.Writer
	color bool
}

// NewPrinter returns a new printer that writes to w.
func NewPrinter(w io.Writer, color bool) *Printer {
	return &Printer{w: w, color: color}
}

// IsATTY reports whether f is a terminal.
func IsATTY(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (pr *Printer) style(code, s string) string {
	if !pr.color {
		return s
	}
	return "\033[" + code + "m" + s + "\033[m"
}

// Complain prints a message prefixed with "Error:".
func (pr *Printer) Complain(msg string) {
	fmt.Fprintf(pr.w, "%s %s\n", pr.style("31;1", "Error:"), msg)
}

// Complainf is like Complain, but accepts a format string and arguments.
func (pr *Printer) Complainf(format string, args ...any) {
	pr.Complain(fmt.Sprintf(format, args...))
}

// OK reports that from was successfully turned into to.
func (pr *Printer) OK(from, to string) {
	fmt.Fprintf(pr.w, "\t%s %s --> %s\n", pr.style("32;1", "OK:"), from, to)
}

// Failed reports that from could not be turned into to.
func (pr *Printer) Failed(from, to string) {
	fmt.Fprintf(pr.w, "\t%s %s --> %s\n", pr.style("31;1", "Error:"), from, to)
}

// Success prints a message prefixed with "OK:".
func (pr *Printer) Success(msg string) {
	fmt.Fprintf(pr.w, "%s %s\n", pr.style("32;1", "OK:"), msg)
}

// ShowError prints err.
// If err is an [*osml.Error] with a line,
// the surrounding lines of source are shown as well.
func (pr *Printer) ShowError(name string, source []byte, err error) {
	var e *osml.Error
	if !errors.As(err, &e) || e.Line <= 0 {
		pr.Complain(err.Error())
		return
	}
	pr.Complain(e.Message())

	src := osml.NewSource(source)
	first := e.Line - contextLines
	if first < 1 {
		first = 1
	}
	last := e.Line + contextLines
	if last > src.NumLines() {
		last = src.NumLines()
	}
	width := len(strconv.Itoa(last))
	fmt.Fprintf(pr.w, "%*s--> %s:%d\n", width+1, "", name, e.Line)
	for n := first; n <= last; n++ {
		num := fmt.Sprintf("%*d", width, n)
		if n == e.Line {
			num = pr.style("1", num)
		}
		text := src.LineString(n - 1)
		if text == "" {
			fmt.Fprintf(pr.w, " %s |\n", num)
		} else {
			fmt.Fprintf(pr.w, " %s | %s\n", num, text)
		}
	}
}
