// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"fmt"

	"cogentcore.org/meshbuf/math32"
)

// Bounds is the axis-aligned bounding box of the vertex positions of
// a mesh. Front is the maximum z and Back the minimum z, so that Depth
// is positive like Width and Height.
type Bounds struct {
	Left, Right float32
	Top, Bottom float32
	Front, Back float32

	// Width is Right - Left.
	Width float32

	// Height is Top - Bottom.
	Height float32

	// Depth is Front - Back.
	Depth float32
}

// CalcBounds returns the bounds of the given flat list of xyz
// position triples. An empty list gives all zero bounds, and a
// trailing partial triple is ignored.
func CalcBounds(positions []float32) Bounds {
	var bb Bounds
	n := len(positions) / 3
	if n == 0 {
		return bb
	}
	bb.Left, bb.Bottom, bb.Back = math32.Infinity, math32.Infinity, math32.Infinity
	bb.Right, bb.Top, bb.Front = -math32.Infinity, -math32.Infinity, -math32.Infinity
	for i := range n {
		x, y, z := positions[i*3], positions[i*3+1], positions[i*3+2]
		bb.Left = math32.Min(bb.Left, x)
		bb.Right = math32.Max(bb.Right, x)
		bb.Bottom = math32.Min(bb.Bottom, y)
		bb.Top = math32.Max(bb.Top, y)
		bb.Back = math32.Min(bb.Back, z)
		bb.Front = math32.Max(bb.Front, z)
	}
	bb.Width = bb.Right - bb.Left
	bb.Height = bb.Top - bb.Bottom
	bb.Depth = bb.Front - bb.Back
	return bb
}

// Box returns the bounds as a [math32.Box3].
func (bb Bounds) Box() math32.Box3 {
	return math32.B3(bb.Left, bb.Bottom, bb.Back, bb.Right, bb.Top, bb.Front)
}

// Center returns the center point of the bounds.
func (bb Bounds) Center() math32.Vector3 {
	return bb.Box().Center()
}

func (bb Bounds) String() string {
	return fmt.Sprintf("x [%g, %g] y [%g, %g] z [%g, %g] size (%g, %g, %g)", bb.Left, bb.Right, bb.Bottom, bb.Top, bb.Back, bb.Front, bb.Width, bb.Height, bb.Depth)
}
