// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package material provides materials that render meshes by issuing
// a [DrawCall] to a render context implementing [Drawer].
package material

import (
	"fmt"

	"cogentcore.org/meshbuf/base/errors"
	"cogentcore.org/meshbuf/gpu"
	"cogentcore.org/meshbuf/math32"
	"cogentcore.org/meshbuf/mesh"
	"github.com/cogentcore/webgpu/wgpu"
)

// ErrNotDrawer is returned when rendering into a context that
// is not a [Drawer].
var ErrNotDrawer = errors.New("material: render context is not a Drawer")

// Colors are the material colors and factors, laid out for direct
// uploading to a shader uniform.
type Colors struct {

	// Color is the main color of the surface, used for both ambient
	// and diffuse color. The alpha component determines transparency.
	Color math32.Vector4

	// Emissive is the color that the surface emits independent of
	// any lighting, i.e., glow.
	Emissive math32.Vector4

	// ShinyBright has X = shininess, Y = reflectiveness,
	// Z = brightness, and W unused.
	ShinyBright math32.Vector4
}

// DrawCall is one draw of a mesh: the buffers to bind, the number
// of elements to draw and how to assemble them, and the colors.
type DrawCall struct {

	// Mesh is the name of the mesh.
	Mesh string

	// Material is the name of the material.
	Material string

	// DrawMode is the primitive topology.
	DrawMode mesh.DrawModes

	// Count is the number of indices to draw if Indexed,
	// and otherwise the number of vertices.
	Count int

	// Indexed is whether to draw through the index buffer.
	Indexed bool

	// Buffers are the vertex and index buffers of the mesh, by kind.
	Buffers map[mesh.Kinds]gpu.Buffer

	// Layouts are the vertex buffer layouts, one for each vertex
	// buffer in kind order, with the shader location of the kind.
	Layouts []wgpu.VertexBufferLayout

	// Tangents is the tangent buffer, for normal mapping.
	Tangents gpu.Buffer

	// Colors are the material colors.
	Colors Colors

	// Texture is the name of the texture, if any.
	Texture string
}

func (dc *DrawCall) String() string {
	return fmt.Sprintf("%s/%s %s count: %d indexed: %v buffers: %d", dc.Mesh, dc.Material, dc.DrawMode, dc.Count, dc.Indexed, len(dc.Buffers))
}

// newDrawCall returns the draw call for the given mesh and
// resolved render options.
func newDrawCall(material string, m *mesh.Mesh, opts *mesh.Options) *DrawCall {
	dc := &DrawCall{Mesh: m.Name(), Material: material, DrawMode: opts.DrawMode, Buffers: map[mesh.Kinds]gpu.Buffer{}}
	for _, k := range mesh.AllKinds() {
		buf := m.Buffer(k)
		if buf == nil {
			continue
		}
		dc.Buffers[k] = buf
		if k != mesh.Indices {
			dc.Layouts = append(dc.Layouts, gpu.VertexLayout(uint32(k), k.Stride()))
		}
	}
	if _, has := dc.Buffers[mesh.Indices]; has {
		dc.Indexed = true
		dc.Count = m.Indices().Len()
	} else {
		dc.Count = m.Vertices().Len()
	}
	return dc
}

// Drawer is a render context that executes draw calls.
type Drawer interface {
	Draw(dc *DrawCall) error
}

// drawer returns the given context as a [Drawer].
func drawer(ctx mesh.Context) (Drawer, error) {
	dr, ok := ctx.(Drawer)
	if !ok {
		return nil, fmt.Errorf("%T: %w", ctx, ErrNotDrawer)
	}
	return dr, nil
}

// Recorder is a [Drawer] that records the draw calls it is given,
// for headless rendering and testing.
type Recorder struct {
	Calls []*DrawCall
}

func (rc *Recorder) Draw(dc *DrawCall) error {
	rc.Calls = append(rc.Calls, dc)
	return nil
}

// Reset clears the recorded calls.
func (rc *Recorder) Reset() {
	rc.Calls = nil
}
