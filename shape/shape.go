// Copyright 2022 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape provides [mesh.Builder] implementations for basic
// shapes: planes, boxes, discs drawn as a triangle fan, and ribbons
// drawn as a triangle strip.
package shape

import (
	"cogentcore.org/meshbuf/math32"
	"cogentcore.org/meshbuf/mesh"
)

// Shape is a [mesh.Builder] that knows the draw mode of its geometry.
type Shape interface {
	mesh.Builder

	// DrawMode returns the primitive topology of the shape.
	DrawMode() mesh.DrawModes
}

// Base has the parameters shared by all shapes.
type Base struct {

	// Pos is the position offset of the shape, so that
	// shapes can be composed.
	Pos math32.Vector3

	// Color, if HasColor, is the color of every vertex.
	Color math32.Vector4

	// HasColor is whether to add per-vertex colors.
	HasColor bool
}

// SetColor sets the uniform color of the shape.
func (sb *Base) SetColor(clr math32.Vector4) {
	sb.Color = clr
	sb.HasColor = true
}

// addColors appends the shape color for the vertices
// added since the given vertex count.
func (sb *Base) addColors(l *mesh.Lists, from int) {
	if !sb.HasColor {
		return
	}
	for range l.NumVertex() - from {
		l.Colors.AppendVector4(sb.Color)
	}
}

// Config returns a mesh configuration that builds the given shape
// with its draw mode.
func Config(name string, sh Shape) mesh.Config {
	return mesh.Config{Name: name, DrawMode: sh.DrawMode(), Builder: sh}
}

// maxPlaneSegs is the largest number of segments per side of a plane,
// which keeps all vertex indices within uint16.
const maxPlaneSegs = 254

// addPlane appends a plane of wsegs by hsegs quads, starting at origin
// and spanning the edge vectors u and v, all facing along norm.
// Texture coordinates go from 0 to 1 along u and v.
func addPlane(l *mesh.Lists, origin, u, v, norm math32.Vector3, wsegs, hsegs int) {
	wsegs = math32.Clamp(wsegs, 1, maxPlaneSegs)
	hsegs = math32.Clamp(hsegs, 1, maxPlaneSegs)
	voff := l.NumVertex()
	for iy := 0; iy <= hsegs; iy++ {
		fy := float32(iy) / float32(hsegs)
		for ix := 0; ix <= wsegs; ix++ {
			fx := float32(ix) / float32(wsegs)
			pos := origin.Add(u.MulScalar(fx)).Add(v.MulScalar(fy))
			l.AddVertex(pos, norm, math32.Vec2(fx, fy))
		}
	}
	ccw := u.Cross(v).Dot(norm) >= 0
	row := wsegs + 1
	for iy := range hsegs {
		for ix := range wsegs {
			a := uint16(voff + ix + row*iy)
			b := a + 1
			d := a + uint16(row)
			c := d + 1
			if ccw {
				l.AddIndex(a, b, c, a, c, d)
			} else {
				l.AddIndex(a, c, b, a, d, c)
			}
		}
	}
}
