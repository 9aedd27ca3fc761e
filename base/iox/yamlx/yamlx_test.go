// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yamlx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Name  string    `yaml:"name"`
	Value []float32 `yaml:"value"`
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "a.yaml")
	require.NoError(t, Save(&testConfig{Name: "a", Value: []float32{1, 2.5}}, fn))

	var cfg testConfig
	require.NoError(t, Open(&cfg, fn))
	assert.Equal(t, testConfig{Name: "a", Value: []float32{1, 2.5}}, cfg)
}

func TestReadBytes(t *testing.T) {
	cfg := testConfig{Name: "keep"}
	require.NoError(t, ReadBytes(&cfg, nil))
	assert.Equal(t, "keep", cfg.Name)

	require.NoError(t, ReadBytes(&cfg, []byte("value: [3, 4]\n")))
	assert.Equal(t, []float32{3, 4}, cfg.Value)

	assert.Error(t, ReadBytes(&cfg, []byte("value: [3, 4\n")))
}
