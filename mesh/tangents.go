// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"cogentcore.org/meshbuf/math32"
	"cogentcore.org/meshbuf/region"
)

// uvEpsilon is the smallest texture space triangle area, in
// determinant units, that contributes to vertex tangents.
const uvEpsilon = 1e-12

// ComputeTangents returns per-vertex tangent and bitangent vectors,
// as flat xyz lists with one triple per vertex, for normal mapping.
// The tangent of each triangle, from the derivatives of its texture
// coordinates, is accumulated onto its three vertices. Each vertex
// tangent is then made orthogonal to the vertex normal and normalized,
// and the bitangent is the cross product of normal and tangent with
// the handedness of the accumulated bitangent. Vertices without a
// normal or texture coordinate get zero vectors, and triangles that
// are degenerate in texture space are skipped.
func ComputeTangents(mode DrawModes, vertices, normals, texcoords *region.Group[float32], indices *region.Group[uint16]) (tangents, bitangents []float32) {
	nv := vertices.Len()
	tangents = make([]float32, nv*3)
	bitangents = make([]float32, nv*3)
	if nv == 0 {
		return
	}
	tan := make([]math32.Vector3, nv)
	bitan := make([]math32.Vector3, nv)
	for tr := range EachTriangle(mode, vertices, indices) {
		var uv [3]math32.Vector2
		ok := true
		for k, vi := range tr.Index {
			tc := texcoords.Element(vi)
			if tc == nil {
				ok = false
				break
			}
			uv[k].FromSlice(tc, 0)
		}
		if !ok {
			continue
		}
		pt := tr.Vectors()
		e1 := pt.B.Sub(pt.A)
		e2 := pt.C.Sub(pt.A)
		d1 := uv[1].Sub(uv[0])
		d2 := uv[2].Sub(uv[0])
		det := d1.X*d2.Y - d2.X*d1.Y
		if math32.Abs(det) < uvEpsilon {
			continue
		}
		r := 1 / det
		t := e1.MulScalar(d2.Y).Sub(e2.MulScalar(d1.Y)).MulScalar(r)
		b := e2.MulScalar(d1.X).Sub(e1.MulScalar(d2.X)).MulScalar(r)
		for _, vi := range tr.Index {
			tan[vi].SetAdd(t)
			bitan[vi].SetAdd(b)
		}
	}
	for vi := range nv {
		ne := normals.Element(vi)
		if ne == nil || texcoords.Element(vi) == nil {
			continue
		}
		var n math32.Vector3
		n.FromSlice(ne, 0)
		n = n.Normal()
		t := tan[vi]
		t = t.Sub(n.MulScalar(n.Dot(t))).Normal()
		if t.IsZero() {
			continue
		}
		b := n.Cross(t)
		if b.Dot(bitan[vi]) < 0 {
			b = b.MulScalar(-1)
		}
		t.ToSlice(tangents, vi*3)
		b.ToSlice(bitangents, vi*3)
	}
	return
}
