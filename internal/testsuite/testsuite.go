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

// Package testsuite provides access to the OSML conformance examples.
package testsuite

import (
	_ "embed"
	"encoding/json"
)

// Example is a single OSML document and its expected compilation.
type Example struct {
	Name string
	OSML string
	// HTML is the expected output between <body> and </body>
	// when compiled with an empty context.
	HTML string

	// Error is the name of the expected error kind, if any.
	// Line is the expected 1-based line of the error.
	Error string
	Line  int
}

//go:embed testsuite.json
var testsuiteData []byte

// Load returns the examples.
func Load() ([]Example, error) {
	var testsuite []Example
	if err := json.Unmarshal(testsuiteData, &testsuite); err != nil {
		return nil, err
	}
	return testsuite, nil
}
