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
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
	"zombiezen.com/go/osml"
	"zombiezen.com/go/osml/internal/input"
	"zombiezen.com/go/osml/plugins"
)

// Names of the project configuration files, in order of preference.
const (
	ConfigName     = "osml.toml"
	YAMLConfigName = "osml.yaml"
)

// Config is a project's configuration.
type Config struct {
	// Excluded lists paths relative to the project directory
	// that are not compiled.
	// Excluding a directory excludes everything under it.
	Excluded []string `toml:"excluded" yaml:"excluded"`

	// Head and Body name files relative to the project directory
	// whose contents are inserted into every page's <head> and <body>.
	Head string `toml:"head,omitempty" yaml:"head,omitempty"`
	Body string `toml:"body,omitempty" yaml:"body,omitempty"`

	// Stdlib enables the standard plugins.
	Stdlib bool `toml:"stdlib" yaml:"stdlib"`
	// NFC normalizes sources to Unicode Normalization Form C before compiling.
	NFC bool `toml:"nfc" yaml:"nfc"`
}

// LoadConfig reads the configuration of the project in dir.
// osml.toml takes precedence over osml.yaml.
// If neither exists, LoadConfig returns the default configuration.
func LoadConfig(dir string) (*Config, error) {
	cfg := new(Config)
	tomlPath := filepath.Join(dir, ConfigName)
	_, err := toml.DecodeFile(tomlPath, cfg)
	if err == nil {
		tracer().Debugf("loaded %s", tomlPath)
		return cfg, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load config: %w", err)
	}

	yamlPath := filepath.Join(dir, YAMLConfigName)
	data, err := os.ReadFile(yamlPath)
	if errors.Is(err, fs.ErrNotExist) {
		tracer().Debugf("no config in %s; using defaults", dir)
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("load config: %s: %w", yamlPath, err)
	}
	tracer().Debugf("loaded %s", yamlPath)
	return cfg, nil
}

// writeDefaultConfig creates osml.toml in dir
// unless the project already has a configuration file.
func writeDefaultConfig(dir string) (err error) {
	for _, name := range []string{ConfigName, YAMLConfigName} {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return nil
		}
	}
	f, err := os.OpenFile(filepath.Join(dir, ConfigName), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o666)
	if err != nil {
		return fmt.Errorf("write default config: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("write default config: %w", closeErr)
		}
	}()
	if err := toml.NewEncoder(f).Encode(&Config{Excluded: []string{}}); err != nil {
		return fmt.Errorf("write default config: %w", err)
	}
	return nil
}

// context returns the compilation context for the project in dir.
func (cfg *Config) context(dir string) (*osml.Context, error) {
	ctx := new(osml.Context)
	if cfg.Stdlib {
		ctx.Plugins = plugins.Default()
	}
	if cfg.Head != "" {
		head, err := input.ReadFile(filepath.Join(dir, cfg.Head), cfg.inputOptions())
		if err != nil {
			return nil, fmt.Errorf("head insert: %w", err)
		}
		ctx.HeadInsert = string(head)
	}
	if cfg.Body != "" {
		body, err := input.ReadFile(filepath.Join(dir, cfg.Body), cfg.inputOptions())
		if err != nil {
			return nil, fmt.Errorf("body insert: %w", err)
		}
		ctx.BodyInsert = string(body)
	}
	return ctx, nil
}

func (cfg *Config) inputOptions() *input.Options {
	return &input.Options{NFC: cfg.NFC}
}

// excluder returns a function that reports whether a file path
// is excluded by the configuration.
func (cfg *Config) excluder(dir string) (func(path string) bool, error) {
	var prefixes []string
	for _, ex := range cfg.Excluded {
		p, err := filepath.Abs(filepath.Join(dir, filepath.FromSlash(ex)))
		if err != nil {
			return nil, fmt.Errorf("excluded path %q: %w", ex, err)
		}
		prefixes = append(prefixes, p)
	}
	return func(path string) bool {
		path, err := filepath.Abs(path)
		if err != nil {
			return false
		}
		for _, p := range prefixes {
			if path == p || strings.HasPrefix(path, p+string(filepath.Separator)) {
				return true
			}
		}
		return false
	}, nil
}
