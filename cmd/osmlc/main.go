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

// osmlc compiles a single OSML document to HTML.
//
// Usage:
//
//	osmlc [flags] INPUT -o OUTPUT
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"zombiezen.com/go/osml"
	"zombiezen.com/go/osml/internal/diag"
	"zombiezen.com/go/osml/internal/input"
	"zombiezen.com/go/osml/plugins"
)

type flags struct {
	output string
	color  bool
	lame   bool
	dryRun bool
	head   string
	body   string
	stdlib bool
	nfc    bool
}

func newFlagSet(f *flags) *flag.FlagSet {
	fs := flag.NewFlagSet("osmlc", flag.ContinueOnError)
	// Errors and usage are printed explicitly.
	fs.SetOutput(io.Discard)

	fs.StringVar(&f.output, "o", "", "write HTML to `file`")
	fs.BoolVar(&f.color, "c", false, "always print diagnostics in color")
	fs.BoolVar(&f.color, "color", false, "same as -c")
	fs.BoolVar(&f.lame, "l", false, "never print diagnostics in color; overrides -c")
	fs.BoolVar(&f.lame, "lame", false, "same as -l")
	fs.BoolVar(&f.dryRun, "d", false, "compile without writing output")
	fs.BoolVar(&f.dryRun, "dryrun", false, "same as -d")
	fs.StringVar(&f.head, "head", "", "insert the contents of `file` into <head>")
	fs.StringVar(&f.body, "body", "", "insert the contents of `file` at the start of <body>")
	fs.BoolVar(&f.stdlib, "stdlib", false, "enable the standard plugins")
	fs.BoolVar(&f.nfc, "nfc", false, "normalize input to Unicode Normalization Form C")
	return fs
}

func usage(out io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(out, "Usage: osmlc [flags] INPUT -o OUTPUT")
	fmt.Fprintln(out, "Supported flags:")
	fs.SetOutput(out)
	fs.PrintDefaults()
	fs.SetOutput(io.Discard)
}

// parseArgs parses flags that may appear before, between, or after
// positional arguments.
func parseArgs(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		args = fs.Args()
		if len(args) == 0 {
			return positional, nil
		}
		positional = append(positional, args[0])
		args = args[1:]
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr, diag.IsATTY(os.Stderr)))
}

// run compiles a document as directed by args
// and returns the process exit code.
// tty reports whether stderr is a terminal.
func run(args []string, stderr io.Writer, tty bool) int {
	f := new(flags)
	fs := newFlagSet(f)
	inputs, err := parseArgs(fs, args)
	if errors.Is(err, flag.ErrHelp) {
		usage(stderr, fs)
		return 0
	}
	color := (tty || f.color) && !f.lame
	pr := diag.NewPrinter(stderr, color)
	if err != nil {
		pr.Complain(err.Error())
		usage(stderr, fs)
		return 2
	}

	bad := false
	switch {
	case len(inputs) == 0:
		pr.Complain("No inputs given")
		bad = true
	case len(inputs) > 1:
		pr.Complainf("Multiple inputs given, including: %s", quoteList(inputs))
		bad = true
	}
	if f.output == "" {
		pr.Complain("No outputs given")
		bad = true
	}
	if bad {
		usage(stderr, fs)
		return 2
	}

	readOpts := &input.Options{NFC: f.nfc}
	ctx := new(osml.Context)
	if f.stdlib {
		ctx.Plugins = plugins.Default()
	}
	if f.head != "" {
		head, err := input.ReadFile(f.head, readOpts)
		if err != nil {
			pr.Complainf("Couldn't open head file: `%s`, %v", f.head, err)
			return 1
		}
		ctx.HeadInsert = string(head)
	}
	if f.body != "" {
		body, err := input.ReadFile(f.body, readOpts)
		if err != nil {
			pr.Complainf("Couldn't open body file: `%s`, %v", f.body, err)
			return 1
		}
		ctx.BodyInsert = string(body)
	}

	name := inputs[0]
	text, err := input.ReadFile(name, readOpts)
	if err != nil {
		pr.Complainf("Couldn't open input file: `%s`, %v", name, err)
		return 1
	}
	html, err := osml.Parse(text, ctx)
	if err != nil {
		pr.ShowError(name, text, err)
		return 1
	}
	if f.dryRun {
		return 0
	}
	if err := os.WriteFile(f.output, html, 0o666); err != nil {
		pr.Complainf("Couldn't open output file: `%s`, %v", f.output, err)
		return 1
	}
	return 0
}

func quoteList(list []string) string {
	sb := new(strings.Builder)
	for i, s := range list {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString("`" + s + "`")
	}
	return sb.String()
}
