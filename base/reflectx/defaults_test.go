// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

type inner struct {
	Depth float32 `default:"0.5"`
}

type testConfig struct {
	Name    string    `default:"quad"`
	Watch   bool      `default:"true"`
	Count   int       `default:"12"`
	Index   uint16    `default:"3"`
	Color   []float32 `default:"1 0 0 1"`
	Inner   inner
	NoTag   string
	private int
}

func TestSetFromDefaultTags(t *testing.T) {
	cfg := &testConfig{Count: 4}
	assert.NoError(t, SetFromDefaultTags(cfg))
	assert.Equal(t, "quad", cfg.Name)
	assert.True(t, cfg.Watch)
	assert.Equal(t, 4, cfg.Count) // already set
	assert.Equal(t, uint16(3), cfg.Index)
	assert.Equal(t, []float32{1, 0, 0, 1}, cfg.Color)
	assert.Equal(t, float32(0.5), cfg.Inner.Depth)
	assert.Equal(t, "", cfg.NoTag)

	assert.Error(t, SetFromDefaultTags(testConfig{}))
	assert.Error(t, SetFromDefaultTags(new(int)))
	assert.NoError(t, SetFromDefaultTags(nil))
}

func TestSetFromDefaultTagsBad(t *testing.T) {
	type bad struct {
		N int `default:"many"`
	}
	assert.Error(t, SetFromDefaultTags(&bad{}))
}

func TestNonPointerValue(t *testing.T) {
	v := 1
	p := &v
	rv := reflect.ValueOf(v)
	assert.True(t, NonPointerValue(reflect.ValueOf(&p)).Equal(rv))
}
