// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tomlx provides functions for reading and writing
// values as TOML files.
package tomlx

import (
	"bytes"
	"io"
	"os"

	"cogentcore.org/meshbuf/base/errors"
	"github.com/pelletier/go-toml/v2"
)

// Open reads the given value from the given TOML file.
func Open(v any, filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return errors.Wrapf(Read(v, f), "tomlx.Open %s", filename)
}

// OpenFiles reads the given value from the given TOML files,
// in order, so that later files override earlier ones.
func OpenFiles(v any, filenames ...string) error {
	var errs []error
	for _, fn := range filenames {
		if err := Open(v, fn); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Read reads the given value from the given reader as TOML.
func Read(v any, r io.Reader) error {
	return toml.NewDecoder(r).Decode(v)
}

// ReadBytes reads the given value from the given TOML bytes.
func ReadBytes(v any, data []byte) error {
	return Read(v, bytes.NewReader(data))
}

// Write writes the given value to the given writer as TOML.
func Write(v any, w io.Writer) error {
	return toml.NewEncoder(w).Encode(v)
}

// WriteBytes returns the given value encoded as TOML.
func WriteBytes(v any) ([]byte, error) {
	var b bytes.Buffer
	err := Write(v, &b)
	return b.Bytes(), err
}

// Save writes the given value to the given TOML file.
func Save(v any, filename string) error {
	b, err := WriteBytes(v)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0666)
}
