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

// osmlmk builds a directory of OSML documents into a static site.
//
// Usage:
//
//	osmlmk [flags] COMMAND [PROJECT]
//
// The commands are:
//
//	i, init    create the project layout
//	b, build   compile changed sources and copy static files
//	c, clean   remove the build output and cache
//	l, live    serve the project and rebuild on change (not supported)
//
// PROJECT defaults to the current directory
// and is created if it does not exist.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"zombiezen.com/go/osml/internal/build"
	"zombiezen.com/go/osml/internal/diag"
)

type flags struct {
	color  bool
	lame   bool
	dryRun bool
}

func newFlagSet(f *flags) *flag.FlagSet {
	fs := flag.NewFlagSet("osmlmk", flag.ContinueOnError)
	// Errors and usage are printed explicitly.
	fs.SetOutput(io.Discard)

	fs.BoolVar(&f.color, "c", false, "always print in color")
	fs.BoolVar(&f.color, "color", false, "same as -c")
	fs.BoolVar(&f.lame, "l", false, "never print in color; overrides -c")
	fs.BoolVar(&f.lame, "lame", false, "same as -l")
	fs.BoolVar(&f.dryRun, "d", false, "build without writing any files")
	fs.BoolVar(&f.dryRun, "dryrun", false, "same as -d")
	return fs
}

func usage(out io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(out, "Usage: osmlmk [flags] COMMAND [PROJECT]")
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  i, init    create the project layout")
	fmt.Fprintln(out, "  b, build   compile changed sources and copy static files")
	fmt.Fprintln(out, "  c, clean   remove the build output and cache")
	fmt.Fprintln(out, "  l, live    serve the project and rebuild on change (not supported)")
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

type command string

const (
	cmdInit  command = "init"
	cmdBuild command = "build"
	cmdClean command = "clean"
	cmdLive  command = "live"
)

func parseCommand(arg string) (command, bool) {
	switch arg {
	case "i", "init":
		return cmdInit, true
	case "b", "build":
		return cmdBuild, true
	case "c", "clean":
		return cmdClean, true
	case "l", "live":
		return cmdLive, true
	default:
		return "", false
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr, diag.IsATTY(os.Stderr)))
}

// run runs the command named in args and returns the process exit code.
// tty reports whether stderr is a terminal.
func run(args []string, stderr io.Writer, tty bool) int {
	f := new(flags)
	fs := newFlagSet(f)
	positional, err := parseArgs(fs, args)
	if errors.Is(err, flag.ErrHelp) {
		usage(stderr, fs)
		return 0
	}
	pr := diag.NewPrinter(stderr, (tty || f.color) && !f.lame)
	if err != nil {
		pr.Complain(err.Error())
		usage(stderr, fs)
		return 2
	}

	var commands []command
	var dirs []string
	for _, arg := range positional {
		if c, ok := parseCommand(arg); ok {
			commands = append(commands, c)
		} else {
			dirs = append(dirs, arg)
		}
	}
	switch {
	case len(commands) == 0:
		pr.Complain("No commands given")
		usage(stderr, fs)
		return 2
	case len(commands) > 1:
		names := make([]string, len(commands))
		for i, c := range commands {
			names[i] = string(c)
		}
		pr.Complainf("Multiple commands given, including: %s", quoteList(names))
		usage(stderr, fs)
		return 2
	}
	cmd := commands[0]
	dir := "./"
	switch {
	case len(dirs) == 1:
		dir = dirs[0]
	case len(dirs) > 1:
		pr.Complainf("Multiple projects given, including: %s", quoteList(dirs))
		usage(stderr, fs)
		return 2
	}

	if cmd == cmdLive {
		pr.Complain("The `live` command is not supported")
		return 1
	}
	if !(cmd == cmdBuild && f.dryRun) {
		if err := ensureProject(dir); err != nil {
			pr.Complainf("Unable to create project folder at `%s`: %v", dir, err)
			return 1
		}
	}

	switch cmd {
	case cmdInit:
		err = build.Init(dir)
	case cmdClean:
		err = build.Clean(dir)
	case cmdBuild:
		err = build.Build(dir, &build.Options{DryRun: f.dryRun, Printer: pr})
	}
	if err != nil {
		var compileErr *build.CompileError
		if errors.As(err, &compileErr) {
			pr.ShowError(filepath.Join(dir, filepath.FromSlash(compileErr.Path)), compileErr.Source, compileErr.Err)
		} else {
			pr.Complainf("Failed to %s `%s`: %v", cmd, dir, err)
		}
		return 1
	}
	fmt.Fprintln(stderr)
	pr.Success(fmt.Sprintf("Successfully ran `%s` at %s", cmd, dir))
	return 0
}

// ensureProject creates and initializes dir if it does not exist.
func ensureProject(dir string) error {
	_, err := os.Stat(dir)
	if err == nil || !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if err := os.MkdirAll(dir, 0o777); err != nil {
		return err
	}
	return build.Init(dir)
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
