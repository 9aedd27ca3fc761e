// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"fmt"
	"strings"

	"cogentcore.org/meshbuf/gpu"
)

// DrawModes are the primitive topologies that determine how a
// flat or indexed sequence of vertices maps onto triangles.
type DrawModes int32

const (
	// UnknownDrawMode is the zero value, meaning that no draw mode
	// has been set. [New] replaces it with [Triangles].
	UnknownDrawMode DrawModes = iota

	// Triangles draws every three vertices as a separate triangle.
	Triangles

	// TriangleStrip draws a strip where every vertex after the
	// first two forms a triangle with the two before it.
	TriangleStrip

	// TriangleFan draws a fan of triangles that all share the
	// first vertex.
	TriangleFan

	drawModesN
)

var drawModeNames = [...]string{"UnknownDrawMode", "Triangles", "TriangleStrip", "TriangleFan"}

func (dm DrawModes) String() string {
	if dm < 0 || dm >= drawModesN {
		return fmt.Sprintf("DrawModes(%d)", int32(dm))
	}
	return drawModeNames[dm]
}

// SetString sets the draw mode from its name, ignoring case
// and any dashes or underscores, so that "triangle-strip"
// and "TriangleStrip" are equivalent.
func (dm *DrawModes) SetString(s string) error {
	key := strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
	for i, nm := range drawModeNames {
		if strings.EqualFold(key, nm) {
			*dm = DrawModes(i)
			return nil
		}
	}
	switch strings.ToLower(key) {
	case "list", "trianglelist":
		*dm = Triangles
		return nil
	case "strip":
		*dm = TriangleStrip
		return nil
	case "fan":
		*dm = TriangleFan
		return nil
	}
	return fmt.Errorf("mesh.DrawModes: %q is not a valid draw mode", s)
}

// MarshalText implements [encoding.TextMarshaler].
func (dm DrawModes) MarshalText() ([]byte, error) {
	return []byte(dm.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (dm *DrawModes) UnmarshalText(text []byte) error {
	return dm.SetString(string(text))
}

// Kinds are the vertex attribute kinds of a [Mesh], in the order
// their fields are laid out in the mesh memory region.
type Kinds int32

const (
	// Positions are xyz vertex positions.
	Positions Kinds = iota

	// Colors are rgba vertex colors.
	Colors

	// TexCoords are uv texture coordinates.
	TexCoords

	// Normals are xyz vertex normals.
	Normals

	// Indices are element indices into the vertex attributes.
	Indices

	KindsN
)

var kindNames = [KindsN]string{"positions", "colors", "texcoords", "normals", "indices"}

// kindStrides are the number of values per element for each kind.
var kindStrides = [KindsN]int{3, 4, 2, 3, 1}

func (k Kinds) String() string {
	if k < 0 || k >= KindsN {
		return fmt.Sprintf("Kinds(%d)", int32(k))
	}
	return kindNames[k]
}

// Stride returns the number of values per element of the kind.
func (k Kinds) Stride() int {
	return kindStrides[k]
}

// Target returns the GPU buffer target for the kind.
func (k Kinds) Target() gpu.Targets {
	if k == Indices {
		return gpu.IndexTarget
	}
	return gpu.VertexTarget
}

// AllKinds returns all of the attribute kinds in layout order.
func AllKinds() []Kinds {
	return []Kinds{Positions, Colors, TexCoords, Normals, Indices}
}
