// Copyright 2022 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"cogentcore.org/meshbuf/math32"
	"cogentcore.org/meshbuf/mesh"
)

// Plane is a flat rectangle in the XY plane facing +Z,
// centered on its position.
type Plane struct {
	Base

	// Size is the width and height of the plane.
	Size math32.Vector2

	// Segs is the number of segments along the width and height,
	// at least 1.
	Segs [2]int
}

// NewPlane returns a plane of the given size with the
// given number of segments along each side.
func NewPlane(width, height float32, wsegs, hsegs int) *Plane {
	return &Plane{Size: math32.Vec2(width, height), Segs: [2]int{wsegs, hsegs}}
}

// NewQuad returns a single quad of the given size.
func NewQuad(width, height float32) *Plane {
	return NewPlane(width, height, 1, 1)
}

func (pl *Plane) DrawMode() mesh.DrawModes { return mesh.Triangles }

func (pl *Plane) Build(l *mesh.Lists) {
	from := l.NumVertex()
	origin := pl.Pos.Add(math32.Vec3(-pl.Size.X/2, -pl.Size.Y/2, 0))
	addPlane(l, origin, math32.Vec3(pl.Size.X, 0, 0), math32.Vec3(0, pl.Size.Y, 0), math32.Vec3(0, 0, 1), pl.Segs[0], pl.Segs[1])
	pl.addColors(l, from)
}

// maxBoxSegs is the largest number of segments per side of a box face.
const maxBoxSegs = 64

// Box is a rectangular solid (cuboid) centered on its position.
type Box struct {
	Base

	// Size is the size along each dimension.
	Size math32.Vector3

	// Segs is the number of segments to divide each face side into,
	// at least 1.
	Segs int
}

// NewBox returns a box with the given size.
func NewBox(width, height, depth float32) *Box {
	return &Box{Size: math32.Vec3(width, height, depth), Segs: 1}
}

func (bx *Box) DrawMode() mesh.DrawModes { return mesh.Triangles }

func (bx *Box) Build(l *mesh.Lists) {
	from := l.NumVertex()
	segs := math32.Clamp(bx.Segs, 1, maxBoxSegs)
	sz := bx.Size
	h := sz.MulScalar(0.5)
	at := func(x, y, z float32) math32.Vector3 {
		return bx.Pos.Add(math32.Vec3(x, y, z))
	}
	// back, front, right, left, top, bottom; u and v run so that
	// textures read correctly from outside
	addPlane(l, at(h.X, -h.Y, -h.Z), math32.Vec3(-sz.X, 0, 0), math32.Vec3(0, sz.Y, 0), math32.Vec3(0, 0, -1), segs, segs)
	addPlane(l, at(-h.X, -h.Y, h.Z), math32.Vec3(sz.X, 0, 0), math32.Vec3(0, sz.Y, 0), math32.Vec3(0, 0, 1), segs, segs)
	addPlane(l, at(h.X, -h.Y, h.Z), math32.Vec3(0, 0, -sz.Z), math32.Vec3(0, sz.Y, 0), math32.Vec3(1, 0, 0), segs, segs)
	addPlane(l, at(-h.X, -h.Y, -h.Z), math32.Vec3(0, 0, sz.Z), math32.Vec3(0, sz.Y, 0), math32.Vec3(-1, 0, 0), segs, segs)
	addPlane(l, at(-h.X, h.Y, h.Z), math32.Vec3(sz.X, 0, 0), math32.Vec3(0, 0, -sz.Z), math32.Vec3(0, 1, 0), segs, segs)
	addPlane(l, at(-h.X, -h.Y, -h.Z), math32.Vec3(sz.X, 0, 0), math32.Vec3(0, 0, sz.Z), math32.Vec3(0, -1, 0), segs, segs)
	bx.addColors(l, from)
}

// Disc is a flat circle in the XY plane facing +Z, drawn as a
// triangle fan around its center, without indices.
type Disc struct {
	Base

	// Radius is the radius of the disc.
	Radius float32

	// Segments is the number of segments around the edge, at least 3.
	Segments int
}

// NewDisc returns a disc with the given radius and segments.
func NewDisc(radius float32, segments int) *Disc {
	return &Disc{Radius: radius, Segments: segments}
}

func (dc *Disc) DrawMode() mesh.DrawModes { return mesh.TriangleFan }

func (dc *Disc) Build(l *mesh.Lists) {
	from := l.NumVertex()
	segs := max(dc.Segments, 3)
	norm := math32.Vec3(0, 0, 1)
	l.AddVertex(dc.Pos, norm, math32.Vec2(0.5, 0.5))
	for i := 0; i <= segs; i++ {
		ang := 2 * math32.Pi * float32(i) / float32(segs)
		cs, sn := math32.Cos(ang), math32.Sin(ang)
		pos := dc.Pos.Add(math32.Vec3(dc.Radius*cs, dc.Radius*sn, 0))
		l.AddVertex(pos, norm, math32.Vec2(0.5+0.5*cs, 0.5+0.5*sn))
	}
	dc.addColors(l, from)
}

// Ribbon is a flat strip along the X axis facing +Z, drawn as
// a triangle strip, without indices.
type Ribbon struct {
	Base

	// Length is the length of the ribbon along X.
	Length float32

	// Width is the width of the ribbon along Y.
	Width float32

	// Segments is the number of quads along the length, at least 1.
	Segments int
}

// NewRibbon returns a ribbon of the given length, width and segments.
func NewRibbon(length, width float32, segments int) *Ribbon {
	return &Ribbon{Length: length, Width: width, Segments: segments}
}

func (rb *Ribbon) DrawMode() mesh.DrawModes { return mesh.TriangleStrip }

func (rb *Ribbon) Build(l *mesh.Lists) {
	from := l.NumVertex()
	segs := max(rb.Segments, 1)
	norm := math32.Vec3(0, 0, 1)
	hw := rb.Width / 2
	for i := 0; i <= segs; i++ {
		f := float32(i) / float32(segs)
		x := -rb.Length/2 + rb.Length*f
		l.AddVertex(rb.Pos.Add(math32.Vec3(x, hw, 0)), norm, math32.Vec2(f, 1))
		l.AddVertex(rb.Pos.Add(math32.Vec3(x, -hw, 0)), norm, math32.Vec2(f, 0))
	}
	rb.addColors(l, from)
}
