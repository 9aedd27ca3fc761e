// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"cogentcore.org/meshbuf/region"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testGroups returns a vertex group of n positions (i, 0, 0)
// and an index group of the given indices, nil if idx is nil.
func testGroups(t *testing.T, n int, idx []uint16) (*region.Group[float32], *region.Group[uint16]) {
	pos := make([]float32, n*3)
	for i := range n {
		pos[i*3] = float32(i)
	}
	rg := region.New(len(pos)*4 + len(idx)*2)
	pf, err := region.Map(rg, "positions", pos)
	require.NoError(t, err)
	vg, err := region.NewGroup[float32](pf, 3)
	require.NoError(t, err)
	if idx == nil {
		return vg, nil
	}
	xf, err := region.Map(rg, "indices", idx)
	require.NoError(t, err)
	ig, err := region.NewGroup[uint16](xf, 1)
	require.NoError(t, err)
	return vg, ig
}

func triangleIndexes(mode DrawModes, vg *region.Group[float32], ig *region.Group[uint16]) [][3]int {
	var res [][3]int
	for tr := range EachTriangle(mode, vg, ig) {
		res = append(res, tr.Index)
	}
	return res
}

func TestTrianglesList(t *testing.T) {
	vg, _ := testGroups(t, 6, nil)
	assert.Equal(t, [][3]int{{0, 1, 2}, {3, 4, 5}}, triangleIndexes(Triangles, vg, nil))

	vg, _ = testGroups(t, 7, nil)
	assert.Equal(t, [][3]int{{0, 1, 2}, {3, 4, 5}}, triangleIndexes(Triangles, vg, nil), "partial triangle is skipped")
}

func TestTrianglesFan(t *testing.T) {
	vg, _ := testGroups(t, 5, nil)
	assert.Equal(t, [][3]int{{0, 1, 2}, {0, 2, 3}, {0, 3, 4}}, triangleIndexes(TriangleFan, vg, nil))
}

func TestTrianglesStrip(t *testing.T) {
	vg, _ := testGroups(t, 4, nil)
	assert.Equal(t, [][3]int{{0, 1, 2}, {2, 1, 3}}, triangleIndexes(TriangleStrip, vg, nil))

	vg, _ = testGroups(t, 5, nil)
	assert.Equal(t, [][3]int{{0, 1, 2}, {2, 1, 3}, {2, 3, 4}}, triangleIndexes(TriangleStrip, vg, nil))
}

func TestTrianglesIndexed(t *testing.T) {
	vg, ig := testGroups(t, 4, []uint16{0, 1, 2, 2, 3, 0})
	assert.Equal(t, [][3]int{{0, 1, 2}, {2, 3, 0}}, triangleIndexes(Triangles, vg, ig))

	vg, ig = testGroups(t, 4, []uint16{0, 1, 9, 1, 2, 3})
	assert.Equal(t, [][3]int{{1, 2, 3}}, triangleIndexes(Triangles, vg, ig), "out of range index is skipped")

	vg, ig = testGroups(t, 4, []uint16{3, 2, 1, 0})
	assert.Equal(t, [][3]int{{3, 2, 1}, {3, 1, 0}}, triangleIndexes(TriangleFan, vg, ig))
}

func TestTrianglesEmpty(t *testing.T) {
	vg, ig := testGroups(t, 4, []uint16{})
	assert.Empty(t, triangleIndexes(Triangles, vg, ig), "empty index group")

	vg, _ = testGroups(t, 0, nil)
	assert.Empty(t, triangleIndexes(Triangles, vg, nil))
	assert.Empty(t, triangleIndexes(Triangles, nil, nil))

	vg, _ = testGroups(t, 6, nil)
	assert.Empty(t, triangleIndexes(UnknownDrawMode, vg, nil))
	assert.Empty(t, triangleIndexes(DrawModes(42), vg, nil))
}

func TestTrianglesPositions(t *testing.T) {
	vg, _ := testGroups(t, 3, nil)
	seq := EachTriangle(Triangles, vg, nil)
	var trs []Triangle
	for tr := range seq {
		trs = append(trs, tr)
	}
	require.Len(t, trs, 1)
	assert.Equal(t, []float32{1, 0, 0}, trs[0].Positions[1])

	// positions alias the region
	trs[0].Positions[2][1] = 7
	assert.Equal(t, []float32{2, 7, 0}, vg.Element(2))

	// restartable
	n := 0
	for range seq {
		n++
	}
	assert.Equal(t, 1, n)
}

func TestTrianglesBreak(t *testing.T) {
	vg, _ := testGroups(t, 9, nil)
	n := 0
	for range EachTriangle(Triangles, vg, nil) {
		n++
		break
	}
	assert.Equal(t, 1, n)
}
