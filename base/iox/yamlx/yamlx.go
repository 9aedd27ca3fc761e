// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package yamlx provides functions for reading and writing
// values as YAML files.
package yamlx

import (
	"bytes"
	"io"
	"os"

	"cogentcore.org/meshbuf/base/errors"
	"gopkg.in/yaml.v3"
)

// Open reads the given value from the given YAML file.
func Open(v any, filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return errors.Wrapf(Read(v, f), "yamlx.Open %s", filename)
}

// Read reads the given value from the given reader as YAML.
// An empty document leaves the value unchanged.
func Read(v any, r io.Reader) error {
	err := yaml.NewDecoder(r).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// ReadBytes reads the given value from the given YAML bytes.
func ReadBytes(v any, data []byte) error {
	return Read(v, bytes.NewReader(data))
}

// Write writes the given value to the given writer as YAML.
func Write(v any, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// WriteBytes returns the given value encoded as YAML.
func WriteBytes(v any) ([]byte, error) {
	var b bytes.Buffer
	err := Write(v, &b)
	return b.Bytes(), err
}

// Save writes the given value to the given YAML file.
func Save(v any, filename string) error {
	b, err := WriteBytes(v)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0666)
}
