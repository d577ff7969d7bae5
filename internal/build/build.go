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

// Package build implements the commands of the OSML project build tool.
//
// A project directory contains:
//
//	src/        OSML sources, compiled to dist/ with an .html extension
//	static/     files copied as-is to dist/static/
//	dist/       build output
//	osml.toml   configuration (or osml.yaml)
//	osml.cache  modification times of the sources as of their last build
package build

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"zombiezen.com/go/osml"
	"zombiezen.com/go/osml/internal/diag"
	"zombiezen.com/go/osml/internal/input"
)

// tracer traces with key 'osml.build'.
func tracer() tracing.Trace {
	return tracing.Select("osml.build")
}

// Project directory layout.
const (
	SourceDir = "src"
	StaticDir = "static"
	DistDir   = "dist"

	sourceExt = ".osml"
	outputExt = ".html"
)

// Options controls a build.
type Options struct {
	// DryRun compiles sources without writing any files.
	DryRun bool
	// Printer receives a status line for each file.
	// If nil, status is discarded.
	Printer *diag.Printer
}

// CompileError is returned by [Build] when a source fails to compile.
type CompileError struct {
	// Path is the source path relative to the project directory.
	Path string
	// Source is the decoded source text.
	Source []byte
	// Err is the [*osml.Error] describing the failure.
	Err error
}

func (e *CompileError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

func (e *CompileError) Unwrap() error {
	return e.Err
}

// Init creates the project directories in dir and a default configuration.
// Existing directories and configuration are left untouched.
func Init(dir string) error {
	for _, d := range []string{SourceDir, StaticDir, DistDir, filepath.Join(DistDir, StaticDir)} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o777); err != nil {
			return fmt.Errorf("init %s: %w", dir, err)
		}
	}
	if err := writeDefaultConfig(dir); err != nil {
		return fmt.Errorf("init %s: %w", dir, err)
	}
	return nil
}

// Clean removes the build output and the cache, then runs [Init].
func Clean(dir string) error {
	if err := os.RemoveAll(filepath.Join(dir, DistDir)); err != nil {
		return fmt.Errorf("clean %s: %w", dir, err)
	}
	if err := os.Remove(filepath.Join(dir, CacheName)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("clean %s: %w", dir, err)
	}
	return Init(dir)
}

// Build compiles every source in the project in dir
// that changed since the last build
// and mirrors the static directory into the output.
// Build stops at the first source that fails to compile
// and returns a [*CompileError] for it.
func Build(dir string, opts *Options) error {
	if opts == nil {
		opts = new(Options)
	}
	pr := opts.Printer
	if pr == nil {
		pr = diag.NewPrinter(io.Discard, false)
	}
	if !opts.DryRun {
		if err := Init(dir); err != nil {
			return err
		}
	}
	cfg, err := LoadConfig(dir)
	if err != nil {
		return err
	}
	ctx, err := cfg.context(dir)
	if err != nil {
		return err
	}
	excluded, err := cfg.excluder(dir)
	if err != nil {
		return err
	}
	c, err := openCache(filepath.Join(dir, CacheName), opts.DryRun)
	if err != nil {
		return err
	}
	defer c.Close()

	sources, err := listFiles(filepath.Join(dir, SourceDir))
	if err != nil {
		return err
	}
	seen := make(map[string]struct{})
	for _, rel := range sources {
		if path.Ext(rel) != sourceExt {
			continue
		}
		name := strings.TrimSuffix(rel, sourceExt)
		seen[name] = struct{}{}
		srcPath := filepath.Join(dir, SourceDir, filepath.FromSlash(rel))
		if excluded(srcPath) {
			tracer().Debugf("%s: excluded", rel)
			continue
		}
		info, err := os.Stat(srcPath)
		if err != nil {
			return err
		}
		if ok, err := c.upToDate(name, info.ModTime()); err != nil {
			return err
		} else if ok {
			tracer().Debugf("%s: up to date", rel)
			continue
		}

		from := path.Join(SourceDir, rel)
		to := path.Join(DistDir, name+outputExt)
		dstPath := filepath.Join(dir, filepath.FromSlash(to))
		if err := compileFile(from, srcPath, dstPath, ctx, cfg.inputOptions(), opts.DryRun); err != nil {
			pr.Failed(from, to)
			return err
		}
		pr.OK(from, to)
		if !opts.DryRun {
			if err := c.record(name, info.ModTime()); err != nil {
				return err
			}
		}
	}
	if !opts.DryRun {
		n, err := c.prune(seen)
		if err != nil {
			return err
		}
		if n > 0 {
			tracer().Debugf("pruned %d deleted sources from cache", n)
		}
	}

	return syncStatic(dir, opts.DryRun, pr)
}

// compileFile compiles the source at srcPath to dstPath.
// name is the path reported in a compile error.
func compileFile(name, srcPath, dstPath string, ctx *osml.Context, readOpts *input.Options, dryRun bool) error {
	text, err := input.ReadFile(srcPath, readOpts)
	if err != nil {
		return err
	}
	html, err := osml.Parse(text, ctx)
	if err != nil {
		tracer().Infof("%s: %v", name, err)
		return &CompileError{Path: name, Source: text, Err: err}
	}
	if dryRun {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(dstPath), 0o777); err != nil {
		return err
	}
	return os.WriteFile(dstPath, html, 0o666)
}

// listFiles returns the slash-separated paths of the regular files under root,
// relative to root, in lexical order.
// A missing root has no files.
func listFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == root && errors.Is(err, fs.ErrNotExist) {
				return fs.SkipDir
			}
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", root, err)
	}
	return files, nil
}
