// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Name  string
	Scale float32
	Tags  []string
}

func TestSaveOpen(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "a.toml")
	require.NoError(t, Save(&testConfig{Name: "a", Scale: 2, Tags: []string{"x"}}, fn))

	var cfg testConfig
	require.NoError(t, Open(&cfg, fn))
	assert.Equal(t, testConfig{Name: "a", Scale: 2, Tags: []string{"x"}}, cfg)
}

func TestOpenFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.toml")
	b := filepath.Join(dir, "b.toml")
	require.NoError(t, os.WriteFile(a, []byte("Name = \"a\"\nScale = 1.5\n"), 0666))
	require.NoError(t, os.WriteFile(b, []byte("Name = \"b\"\n"), 0666))

	var cfg testConfig
	require.NoError(t, OpenFiles(&cfg, a, b))
	assert.Equal(t, "b", cfg.Name)
	assert.Equal(t, float32(1.5), cfg.Scale)

	assert.Error(t, OpenFiles(&cfg, filepath.Join(dir, "missing.toml")))
	assert.Error(t, ReadBytes(&cfg, []byte("Name = ")))
}
