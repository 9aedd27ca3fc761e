// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	om := New[string, int]()
	om.Add("positions", 0)
	om.Add("colors", 1)
	om.Add("indices", 2)

	assert.Equal(t, 3, om.Len())
	assert.Equal(t, []string{"positions", "colors", "indices"}, om.Keys())
	assert.Equal(t, []int{0, 1, 2}, om.Values())

	om.Add("colors", 10)
	assert.Equal(t, 3, om.Len())
	assert.Equal(t, 1, om.IndexByKey("colors"))
	v, ok := om.ValueByKeyTry("colors")
	assert.True(t, ok)
	assert.Equal(t, 10, v)

	_, ok = om.ValueByKeyTry("normals")
	assert.False(t, ok)
	assert.Equal(t, -1, om.IndexByKey("normals"))

	assert.True(t, om.DeleteKey("positions"))
	assert.False(t, om.DeleteKey("positions"))
	assert.Equal(t, []string{"colors", "indices"}, om.Keys())
	assert.Equal(t, 1, om.IndexByKey("indices"))
	assert.Equal(t, 2, om.ValueByIndex(1))

	om.Reset()
	assert.Equal(t, 0, om.Len())
}

func TestNilLen(t *testing.T) {
	var om *Map[string, int]
	assert.Equal(t, 0, om.Len())
}
