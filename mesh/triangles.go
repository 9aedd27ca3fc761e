// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"iter"

	"cogentcore.org/meshbuf/math32"
	"cogentcore.org/meshbuf/region"
)

// Triangle is one triangle of a mesh, as produced by [EachTriangle].
type Triangle struct {

	// Index are the vertex indices of the three corners, after
	// indirection through the index list if there is one.
	Index [3]int

	// Positions are the xyz positions of the three corners. They alias
	// the mesh memory, so they are only valid until the next rebuild.
	Positions [3][]float32
}

// Vectors returns the corner positions as a [math32.Triangle].
func (tr *Triangle) Vectors() math32.Triangle {
	var mt math32.Triangle
	mt.A.FromSlice(tr.Positions[0], 0)
	mt.B.FromSlice(tr.Positions[1], 0)
	mt.C.FromSlice(tr.Positions[2], 0)
	return mt
}

// Normal returns the face normal of the triangle.
func (tr *Triangle) Normal() math32.Vector3 {
	mt := tr.Vectors()
	return mt.Normal()
}

// EachTriangle returns the sequence of triangles formed by the given
// vertex positions under the given draw mode. If indices is non-nil,
// vertices are looked up through it, and an empty index group gives
// no triangles. Corners that fall outside of the data are skipped,
// as are all triangles of an unknown draw mode. The sequence reads
// the groups when iterated and can be iterated more than once.
func EachTriangle(mode DrawModes, vertices *region.Group[float32], indices *region.Group[uint16]) iter.Seq[Triangle] {
	return func(yield func(Triangle) bool) {
		if vertices.Len() == 0 {
			return
		}
		count := vertices.Len()
		var idx []uint16
		if indices != nil {
			if indices.Len() == 0 {
				return
			}
			idx = indices.Array()
			count = len(idx)
		}
		resolve := func(i int) int {
			if idx == nil {
				return i
			}
			if i >= len(idx) {
				return -1
			}
			return int(idx[i])
		}
		emit := func(a, b, c int) bool {
			var tr Triangle
			for k, i := range [3]int{a, b, c} {
				vi := resolve(i)
				pos := vertices.Element(vi)
				if pos == nil {
					return true
				}
				tr.Index[k] = vi
				tr.Positions[k] = pos
			}
			return yield(tr)
		}
		switch mode {
		case Triangles:
			for a := 0; a < count; a += 3 {
				if !emit(a, a+1, a+2) {
					return
				}
			}
		case TriangleStrip:
			for a := 2; a < count; a += 2 {
				if !emit(a-2, a-1, a) {
					return
				}
				if a+1 < count && !emit(a, a-1, a+1) {
					return
				}
			}
		case TriangleFan:
			for a := 2; a < count; a++ {
				if !emit(0, a-1, a) {
					return
				}
			}
		}
	}
}
