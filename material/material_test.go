// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package material

import (
	"image/color"
	"testing"

	"cogentcore.org/meshbuf/gpu"
	"cogentcore.org/meshbuf/math32"
	"cogentcore.org/meshbuf/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quad(l *mesh.Lists) {
	n := math32.Vec3(0, 0, 1)
	l.AddVertex(math32.Vec3(0, 0, 0), n, math32.Vec2(0, 0))
	l.AddVertex(math32.Vec3(1, 0, 0), n, math32.Vec2(1, 0))
	l.AddVertex(math32.Vec3(1, 1, 0), n, math32.Vec2(1, 1))
	l.AddVertex(math32.Vec3(0, 1, 0), n, math32.Vec2(0, 1))
	l.AddIndex(0, 1, 2, 0, 2, 3)
}

func TestPhongDefaults(t *testing.T) {
	ph := NewPhong("")
	assert.Equal(t, "phong", ph.Name)
	assert.Equal(t, float32(30), ph.Shiny)
	assert.Equal(t, float32(1), ph.Reflective)
	assert.Equal(t, float32(1), ph.Bright)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, ph.Color)
	assert.NoError(t, ph.Validate())

	ph.Bright = 0
	assert.Error(t, ph.Validate())
	ph.Bright = 1
	ph.Shiny = -1
	assert.Error(t, ph.Validate())

	cl := NewPhong("red")
	cl.Color = color.RGBA{255, 0, 0, 255}
	assert.Equal(t, math32.Vec4(1, 0, 0, 1), cl.Colors().Color)
	assert.Equal(t, math32.Vec4(30, 1, 1, 0), cl.Colors().ShinyBright)
}

func TestRenderDefault(t *testing.T) {
	rg := mesh.NewRegistry()
	Register(rg)
	def, err := rg.Find(mesh.DefaultMaterialName)
	require.NoError(t, err)
	Register(rg)
	again, _ := rg.Find(mesh.DefaultMaterialName)
	assert.Same(t, def, again)

	m := mesh.New(mesh.Config{Name: "quad", Builder: mesh.BuilderFunc(quad), Registry: rg})
	rc := &Recorder{}
	require.NoError(t, m.Render(rc, nil))
	require.Len(t, rc.Calls, 1)
	dc := rc.Calls[0]
	assert.Equal(t, "quad", dc.Mesh)
	assert.Equal(t, mesh.DefaultMaterialName, dc.Material)
	assert.Equal(t, mesh.Triangles, dc.DrawMode)
	assert.True(t, dc.Indexed)
	assert.Equal(t, 6, dc.Count)
	assert.Len(t, dc.Buffers, 5)
	require.Len(t, dc.Layouts, 4)
	assert.Equal(t, uint64(16), dc.Layouts[mesh.Colors].ArrayStride)
	assert.Equal(t, uint32(mesh.Normals), dc.Layouts[mesh.Normals].Attributes[0].ShaderLocation)
	assert.Equal(t, gpu.IndexTarget, dc.Buffers[mesh.Indices].Target())
	assert.Nil(t, dc.Tangents)

	require.NoError(t, m.Render(rc, &mesh.Options{DrawMode: mesh.TriangleFan}))
	assert.Equal(t, mesh.TriangleFan, rc.Calls[1].DrawMode)
}

func TestRenderUnindexed(t *testing.T) {
	rg := mesh.NewRegistry()
	rg.Add("flat", NewPhong("flat"))
	m := mesh.New(mesh.Config{MaterialName: "flat", Registry: rg, Builder: mesh.BuilderFunc(func(l *mesh.Lists) {
		l.Positions.Append(0, 0, 0, 1, 0, 0, 0, 1, 0)
	})})
	rc := &Recorder{}
	require.NoError(t, m.Render(rc, nil))
	dc := rc.Calls[0]
	assert.False(t, dc.Indexed)
	assert.Equal(t, 3, dc.Count)
	assert.Len(t, dc.Buffers, 2)
	require.Len(t, dc.Layouts, 2)
	assert.Equal(t, uint32(mesh.Colors), dc.Layouts[1].Attributes[0].ShaderLocation)

	empty := mesh.New(mesh.Config{MaterialName: "flat", Registry: rg})
	require.NoError(t, empty.Render(rc, nil))
	assert.Len(t, rc.Calls, 1, "empty mesh draws nothing")
}

func TestRenderNotDrawer(t *testing.T) {
	rg := mesh.NewRegistry()
	Register(rg)
	m := mesh.New(mesh.Config{Builder: mesh.BuilderFunc(quad), Registry: rg})
	assert.ErrorIs(t, m.Render("not a drawer", nil), ErrNotDrawer)
}

func TestNormalMapped(t *testing.T) {
	rg := mesh.NewRegistry()
	rg.Add("bumpy", NewNormalMapped("bumpy", "bricks_normal.png"))
	dev := &gpu.HostDevice{}
	m := mesh.New(mesh.Config{Name: "quad", MaterialName: "bumpy", Registry: rg, Device: dev, Builder: mesh.BuilderFunc(quad)})
	rc := &Recorder{}
	require.NoError(t, m.Render(rc, nil))
	dc := rc.Calls[0]
	require.NotNil(t, dc.Tangents)
	assert.Equal(t, "quad.tangents", dc.Tangents.Label())
	assert.Equal(t, "bumpy", dc.Material)
	assert.Equal(t, 4*3*4, dc.Tangents.Size())

	flat := mesh.New(mesh.Config{MaterialName: "bumpy", Registry: rg, Builder: mesh.BuilderFunc(func(l *mesh.Lists) {
		l.Positions.Append(0, 0, 0, 1, 0, 0, 0, 1, 0)
	})})
	assert.Error(t, flat.Render(rc, nil))
}
