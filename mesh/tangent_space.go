// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"fmt"

	"cogentcore.org/meshbuf/base/errors"
	"cogentcore.org/meshbuf/gpu"
	"cogentcore.org/meshbuf/region"
)

// tangentSpace is the tangent data of a mesh, kept in its own
// region since it is only computed on request.
type tangentSpace struct {
	region     *region.Region
	tangents   *region.Group[float32]
	bitangents *region.Group[float32]
	buffer     gpu.Buffer
}

// Tangents returns the per-vertex tangent and bitangent vectors of the
// mesh, computing them on the first call. They are not updated by a
// rebuild: call [Mesh.RebuildTangents] after changing the geometry.
// They are recomputed anyway if the number of vertices has changed.
func (m *Mesh) Tangents() (tangents, bitangents *region.Group[float32], err error) {
	if err := m.Validate(); err != nil {
		return nil, nil, err
	}
	ts := &m.tangents
	if ts.tangents == nil || ts.tangents.Len() != m.groups[Positions].Len() {
		if err := m.RebuildTangents(); err != nil {
			return nil, nil, err
		}
	}
	return ts.tangents, ts.bitangents, nil
}

// RebuildTangents computes the tangents of the mesh from its current
// positions, normals and texture coordinates, and uploads them again
// if there is a tangent buffer.
func (m *Mesh) RebuildTangents() error {
	if err := m.Validate(); err != nil {
		return err
	}
	tan, bitan := ComputeTangents(m.Config.DrawMode, m.groups[Positions], m.groups[Normals], m.groups[TexCoords], m.indexGroup())
	ts := &m.tangents
	if ts.region == nil {
		rg := region.New(4 * (len(tan) + len(bitan)))
		tf, err := region.Map(rg, "tangents", tan)
		if err != nil {
			return errors.Log(fmt.Errorf("mesh %q: tangents: %w", m.Config.Name, err))
		}
		bf, err := region.Map(rg, "bitangents", bitan)
		if err != nil {
			return errors.Log(fmt.Errorf("mesh %q: tangents: %w", m.Config.Name, err))
		}
		ts.region = rg
		ts.tangents = errors.Must1(region.NewGroup[float32](tf, 3))
		ts.bitangents = errors.Must1(region.NewGroup[float32](bf, 3))
	} else {
		tf, bf := ts.tangents.Field(), ts.bitangents.Field()
		errors.Must(region.Remap(ts.region, tf, tan))
		errors.Must(region.Remap(ts.region, bf, bitan))
	}
	if ts.buffer != nil {
		return errors.Log(ts.buffer.Refresh())
	}
	return nil
}

// TangentBuffer returns a vertex buffer of the tangents of the mesh,
// for normal mapped materials, computing the tangents if needed.
// It returns nil if the mesh has no vertices.
func (m *Mesh) TangentBuffer() (gpu.Buffer, error) {
	tan, _, err := m.Tangents()
	if err != nil {
		return nil, err
	}
	ts := &m.tangents
	if ts.buffer != nil {
		return ts.buffer, nil
	}
	if tan.Len() == 0 {
		return nil, nil
	}
	buf, err := m.Config.Device.NewBuffer(m.bufferLabel("tangents"), gpu.VertexTarget, tan.Field())
	if err != nil {
		return nil, errors.Log(fmt.Errorf("mesh %q: tangent buffer: %w", m.Config.Name, err))
	}
	ts.buffer = buf
	return buf, nil
}
