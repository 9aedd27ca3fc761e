// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"cogentcore.org/meshbuf/base/errors"
	"cogentcore.org/meshbuf/base/iox/tomlx"
)

// Includer is implemented by config types that can name other
// config files to be loaded underneath them.
type Includer interface {

	// IncludesPtr returns a pointer to the list of included files.
	// Relative paths are relative to the directory of the includer.
	IncludesPtr() *[]string
}

// Open sets the given config object from its `default:` tags and then
// from the given TOML file, if it exists. A missing file is not an error,
// so that tools run with their defaults until a config file is made.
// Files included by the config are opened first so that the includer
// overrides the included settings.
func Open(cfg any, file string) error {
	if err := SetFromDefaults(cfg); err != nil {
		return err
	}
	if file == "" {
		return nil
	}
	if _, err := os.Stat(file); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return openWithIncludes(cfg, file)
}

// openWithIncludes reads the config struct from the given config file.
// It opens any Includes specified in the given config file in the natural
// include order so that includers overwrite included settings.
// Is equivalent to [tomlx.Open] if there are no Includes.
func openWithIncludes(cfg any, file string) error {
	err := tomlx.Open(cfg, file)
	if err != nil {
		return err
	}
	incfg, ok := cfg.(Includer)
	if !ok {
		return nil
	}
	incs, err := includeStack(incfg, file)
	if err != nil {
		return err
	}
	if len(incs) == 0 {
		return nil
	}
	// deepest includes first, then the original again on top
	files := slices.Clone(incs)
	slices.Reverse(files)
	if err := tomlx.OpenFiles(cfg, append(files, file)...); err != nil {
		return err
	}
	*incfg.IncludesPtr() = incs
	return nil
}

// includeStack returns the files included by the given config file,
// directly or indirectly, in depth-first order. It reads each include
// into a fresh copy of its includes list only, so cfg itself is left
// to be set in order by the caller.
func includeStack(incfg Includer, file string) ([]string, error) {
	var stack []string
	seen := map[string]bool{file: true}
	var visit func(from string, incs []string) error
	visit = func(from string, incs []string) error {
		dir := filepath.Dir(from)
		for _, inc := range incs {
			if !filepath.IsAbs(inc) {
				inc = filepath.Join(dir, inc)
			}
			if seen[inc] {
				return fmt.Errorf("cli: include cycle at %q", inc)
			}
			seen[inc] = true
			stack = append(stack, inc)
			sub := &includes{}
			if err := tomlx.Open(sub, inc); err != nil {
				return err
			}
			if err := visit(inc, sub.Includes); err != nil {
				return err
			}
		}
		return nil
	}
	err := visit(file, slices.Clone(*incfg.IncludesPtr()))
	return stack, err
}

// includes reads only the includes list of a config file.
type includes struct {
	Includes []string `toml:"includes"`
}
