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

// Package input reads OSML source files.
package input

import (
	"fmt"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Decode converts text to UTF-8.
// A leading byte order mark selects UTF-8, UTF-16LE, or UTF-16BE
// and is removed.
// Text without a byte order mark is treated as UTF-8.
func Decode(text []byte) ([]byte, error) {
	out, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), text)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Normalize returns text in Unicode Normalization Form C.
func Normalize(text []byte) []byte {
	return norm.NFC.Bytes(text)
}

// Options controls how ReadFile interprets a file.
type Options struct {
	// NFC enables normalizing the text to Unicode Normalization Form C.
	NFC bool
}

// ReadFile reads the named file and decodes it to UTF-8.
func ReadFile(name string, opts *Options) ([]byte, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	text, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	if opts != nil && opts.NFC {
		text = Normalize(text)
	}
	return text, nil
}
