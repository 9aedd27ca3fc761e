// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordMaterial struct {
	name  string
	calls []Options
	ctxs  []Context
}

func (rm *recordMaterial) Render(ctx Context, m *Mesh, opts *Options) error {
	rm.calls = append(rm.calls, *opts)
	rm.ctxs = append(rm.ctxs, ctx)
	return nil
}

func TestRegistry(t *testing.T) {
	rg := NewRegistry()
	a, b := &recordMaterial{name: "a"}, &recordMaterial{name: "b"}
	rg.Add("a", a)
	rg.Add("b", b)
	assert.Equal(t, []string{"a", "b"}, rg.Names())
	mat, err := rg.Find("b")
	require.NoError(t, err)
	assert.Same(t, b, mat)

	_, err = rg.Find("c")
	assert.ErrorIs(t, err, ErrMaterialNotFound)

	rg.Add("a", b)
	mat, _ = rg.Find("a")
	assert.Same(t, b, mat)
	assert.Equal(t, 2, rg.Len())
	assert.True(t, rg.Delete("a"))
	assert.False(t, rg.Delete("a"))
	assert.Equal(t, []string{"b"}, rg.Names())
}

func TestRenderUnresolved(t *testing.T) {
	m := New(Config{Builder: BuilderFunc(quadBuilder), Registry: NewRegistry()})
	err := m.Render(nil, nil)
	assert.ErrorIs(t, err, ErrUnresolvedMaterial)
	assert.ErrorIs(t, err, ErrMaterialNotFound)
	assert.True(t, m.IsValid(), "mesh is validated before resolving")

	err = m.Render(nil, &Options{MaterialName: "missing", DefaultMaterial: "none"})
	assert.ErrorIs(t, err, ErrUnresolvedMaterial)
	assert.ErrorIs(t, err, ErrMaterialNotFound)
}

func TestRenderPrecedence(t *testing.T) {
	rg := NewRegistry()
	def := &recordMaterial{name: "default"}
	red := &recordMaterial{name: "red"}
	blue := &recordMaterial{name: "blue"}
	rg.Add("default", def)
	rg.Add("red", red)
	rg.Add("blue", blue)
	inst := &recordMaterial{name: "instance"}

	type test struct {
		name string
		cfg  Config
		opts *Options
		want *recordMaterial
	}
	tests := []test{
		{"default", Config{}, nil, def},
		{"mesh name", Config{MaterialName: "red"}, nil, red},
		{"mesh instance", Config{Material: inst, MaterialName: "red"}, nil, inst},
		{"option name", Config{MaterialName: "red"}, &Options{MaterialName: "blue"}, blue},
		{"option name over mesh instance", Config{Material: inst}, &Options{MaterialName: "blue"}, blue},
		{"option instance", Config{MaterialName: "red"}, &Options{Material: inst, MaterialName: "blue"}, inst},
		{"option default", Config{}, &Options{DefaultMaterial: "blue"}, blue},
		{"mesh default", Config{DefaultMaterial: "red"}, &Options{}, red},
		{"unknown name falls back", Config{MaterialName: "green"}, nil, def},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.cfg.Registry = rg
			tt.cfg.Builder = BuilderFunc(quadBuilder)
			m := New(tt.cfg)
			n := len(tt.want.calls)
			require.NoError(t, m.Render("ctx", tt.opts))
			require.Len(t, tt.want.calls, n+1)
			got := tt.want.calls[n]
			assert.Same(t, tt.want, got.Material)
			assert.Equal(t, "ctx", tt.want.ctxs[n])
		})
	}
}

func TestRenderDrawMode(t *testing.T) {
	rg := NewRegistry()
	def := &recordMaterial{name: "default"}
	rg.Add("default", def)
	m := New(Config{Builder: BuilderFunc(quadBuilder), Registry: rg, DrawMode: TriangleStrip})

	require.NoError(t, m.Render(nil, nil))
	assert.Equal(t, TriangleStrip, def.calls[0].DrawMode)
	require.NoError(t, m.Render(nil, &Options{DrawMode: TriangleFan}))
	assert.Equal(t, TriangleFan, def.calls[1].DrawMode)
	assert.Equal(t, TriangleStrip, m.DrawMode(), "options do not change the mesh")
	assert.Equal(t, "default", def.calls[1].DefaultMaterial)
}
