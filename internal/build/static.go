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

package build

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"zombiezen.com/go/osml/internal/diag"
)

// syncStatic makes dist/static mirror static.
// Files missing from static are removed from dist/static
// and new files are hard-linked (or copied) into it.
// Existing output files are not replaced:
// a hard link already reflects changes to its source.
func syncStatic(dir string, dryRun bool, pr *diag.Printer) error {
	srcRoot := filepath.Join(dir, StaticDir)
	dstRoot := filepath.Join(dir, DistDir, StaticDir)
	statics, err := listFiles(srcRoot)
	if err != nil {
		return err
	}
	outputs, err := listFiles(dstRoot)
	if err != nil {
		return err
	}

	want := make(map[string]struct{}, len(statics))
	for _, rel := range statics {
		want[rel] = struct{}{}
	}
	for _, rel := range outputs {
		if _, ok := want[rel]; ok {
			continue
		}
		name := path.Join(DistDir, StaticDir, rel)
		if !dryRun {
			if err := os.Remove(filepath.Join(dstRoot, filepath.FromSlash(rel))); err != nil {
				tracer().Errorf("%s: %v", name, err)
				pr.Failed(name, os.DevNull)
				continue
			}
		}
		pr.OK(name, os.DevNull)
	}

	for _, rel := range statics {
		dst := filepath.Join(dstRoot, filepath.FromSlash(rel))
		if _, err := os.Lstat(dst); err == nil {
			continue
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		if !dryRun {
			if err := linkFile(filepath.Join(srcRoot, filepath.FromSlash(rel)), dst); err != nil {
				return err
			}
		}
		pr.OK(path.Join(StaticDir, rel), path.Join(DistDir, StaticDir, rel))
	}
	return nil
}

// linkFile hard-links src to dst, falling back to a copy
// when the file system does not support the link.
func linkFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o777); err != nil {
		return err
	}
	err := os.Link(src, dst)
	if err == nil {
		return nil
	}
	tracer().Debugf("link %s: %v; copying instead", src, err)
	return copyFile(src, dst)
}

func copyFile(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o666)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := out.Close(); err == nil && closeErr != nil {
			err = closeErr
		}
	}()
	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copy %s: %w", src, err)
	}
	return nil
}
