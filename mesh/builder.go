// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"cogentcore.org/meshbuf/math32"
)

// Lists are the growable attribute lists that a [Builder] fills
// with the geometry of a mesh. The lists are loosely coupled: any
// of them may be left empty, and colors are synthesized when empty.
type Lists struct {

	// Positions are the xyz vertex positions.
	Positions math32.ArrayF32

	// Colors are the rgba vertex colors.
	Colors math32.ArrayF32

	// TexCoords are the uv texture coordinates.
	TexCoords math32.ArrayF32

	// Normals are the xyz vertex normals.
	Normals math32.ArrayF32

	// Indices are element indices into the vertex lists.
	Indices []uint16
}

// NumVertex returns the number of vertices: the number of
// complete position triples.
func (l *Lists) NumVertex() int {
	return len(l.Positions) / 3
}

// AddVertex appends one vertex with the given position,
// normal and texture coordinate.
func (l *Lists) AddVertex(pos, norm math32.Vector3, tex math32.Vector2) {
	l.Positions.AppendVector3(pos)
	l.Normals.AppendVector3(norm)
	l.TexCoords.AppendVector2(tex)
}

// AddIndex appends the given element indices.
func (l *Lists) AddIndex(idx ...uint16) {
	l.Indices = append(l.Indices, idx...)
}

// kindLen returns the number of values in the list of the given kind.
func (l *Lists) kindLen(k Kinds) int {
	switch k {
	case Positions:
		return len(l.Positions)
	case Colors:
		return len(l.Colors)
	case TexCoords:
		return len(l.TexCoords)
	case Normals:
		return len(l.Normals)
	case Indices:
		return len(l.Indices)
	}
	return 0
}

// floats returns the float32 list of the given vertex kind.
func (l *Lists) floats(k Kinds) []float32 {
	switch k {
	case Positions:
		return l.Positions
	case Colors:
		return l.Colors
	case TexCoords:
		return l.TexCoords
	case Normals:
		return l.Normals
	}
	return nil
}

// Builder is the geometry source of a [Mesh]. Build is called
// exactly once per rebuild, with empty lists to be filled.
type Builder interface {
	Build(l *Lists)
}

// BuilderFunc is a function that implements [Builder].
type BuilderFunc func(l *Lists)

func (f BuilderFunc) Build(l *Lists) {
	f(l)
}
