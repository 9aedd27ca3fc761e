// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh provides meshes whose vertex attributes are packed
// into a single memory region and uploaded to GPU buffers. A [Mesh]
// is built lazily from a [Builder] on first use, and rebuilt only
// when asked to: per-frame edits should instead write through the
// attribute groups and call [Mesh.Refresh]. Meshes are rendered by
// a [Material] resolved by name from a [Registry].
package mesh

import (
	"fmt"
	"iter"
	"log/slog"

	"cogentcore.org/meshbuf/base/errors"
	"cogentcore.org/meshbuf/base/reflectx"
	"cogentcore.org/meshbuf/gpu"
	"cogentcore.org/meshbuf/region"
)

// Config is the configuration of a [Mesh].
type Config struct {

	// Name is the name of the mesh, used in buffer labels and errors.
	Name string

	// DrawMode is the primitive topology of the vertex data.
	DrawMode DrawModes `default:"Triangles"`

	// Builder fills in the geometry of the mesh on each rebuild.
	// A mesh without a builder is empty.
	Builder Builder

	// Material is the material that renders the mesh.
	// It takes precedence over MaterialName.
	Material Material

	// MaterialName is the registry name of the material
	// that renders the mesh.
	MaterialName string

	// DefaultMaterial is the registry name of the material
	// used when no other material is set.
	DefaultMaterial string `default:"default"`

	// Color, if set, is the uniform rgba color of every vertex,
	// replacing any colors from the builder. Missing components
	// are 1, and more than four are an error.
	Color []float32

	// Registry is where material names are looked up.
	// It is [DefaultRegistry] if nil.
	Registry *Registry

	// Device creates the GPU buffers. It is a new
	// [gpu.HostDevice] if nil.
	Device gpu.Device

	// AfterBuild, if set, is called at the end of each
	// successful rebuild.
	AfterBuild func(m *Mesh)
}

// Mesh is a set of vertex attributes and indices packed into one
// memory region, with a GPU buffer for each attribute that has data.
type Mesh struct {

	// Config is the configuration of the mesh. Changes to the
	// geometry related fields take effect on the next rebuild.
	Config Config

	// built is whether the mesh is valid.
	built bool

	// region holds all the attribute data, and is
	// created on the first build.
	region *region.Region

	// fields are the region fields by kind.
	fields [KindsN]*region.Field

	// groups are the vertex attribute groups by kind.
	groups [Indices]*region.Group[float32]

	indices *region.Group[uint16]

	bounds Bounds

	// buffers has a buffer for each non-empty kind.
	buffers map[Kinds]gpu.Buffer

	// triangles is the cache of TriangleList.
	triangles []Triangle

	tangents tangentSpace
}

// New returns a new unbuilt mesh with the given configuration, with
// defaults set for the draw mode, default material and device.
func New(cfg Config) *Mesh {
	errors.Log(reflectx.SetFromDefaultTags(&cfg))
	if cfg.Device == nil {
		cfg.Device = &gpu.HostDevice{}
	}
	return &Mesh{Config: cfg}
}

// Name returns the name of the mesh.
func (m *Mesh) Name() string {
	return m.Config.Name
}

// DrawMode returns the draw mode of the mesh.
func (m *Mesh) DrawMode() DrawModes {
	return m.Config.DrawMode
}

// IsValid returns whether the mesh is built. An invalid mesh
// is rebuilt by the next call to [Mesh.Validate].
func (m *Mesh) IsValid() bool {
	return m.built
}

// Invalidate marks the mesh as needing a rebuild, without
// releasing its buffers until then.
func (m *Mesh) Invalidate() {
	m.built = false
}

// Validate rebuilds the mesh if it is not valid.
func (m *Mesh) Validate() error {
	if m.built {
		return nil
	}
	return m.Rebuild()
}

// Rebuild releases the buffers of the mesh and builds it again from
// its builder: the attribute lists are packed into the memory region,
// the bounds are computed, and a buffer is created for each kind of
// attribute that has data. If it fails, the mesh is left unbuilt
// without any buffers, and the next [Mesh.Validate] starts over.
func (m *Mesh) Rebuild() error {
	m.Dispose()
	var l Lists
	if m.Config.Builder != nil {
		m.Config.Builder.Build(&l)
	}
	if err := m.normalizeColors(&l); err != nil {
		return m.buildError(err)
	}
	if err := m.layout(&l); err != nil {
		for _, k := range AllKinds() {
			m.clearGroup(k)
		}
		return m.buildError(err)
	}
	m.bounds = CalcBounds(m.groups[Positions].Array())
	m.triangles = nil
	if err := m.createBuffers(); err != nil {
		m.releaseBuffers()
		return m.buildError(err)
	}
	m.built = true
	slog.Debug("mesh: built", "name", m.Config.Name, "vertices", m.groups[Positions].Len(), "indices", m.indices.Len(), "bytes", m.region.Size())
	if m.Config.AfterBuild != nil {
		m.Config.AfterBuild(m)
	}
	return nil
}

func (m *Mesh) buildError(err error) error {
	return errors.Log(fmt.Errorf("mesh %q: rebuild: %w", m.Config.Name, err))
}

// layout packs the lists into the memory region, mapping the fields on
// the first build and remapping them afterwards, and derives the groups
// of the fields that are new or have changed length.
func (m *Mesh) layout(l *Lists) error {
	if m.region == nil {
		total := 0
		for _, k := range AllKinds() {
			sz := region.Float32.Bytes()
			if k == Indices {
				sz = region.Uint16.Bytes()
			}
			total += l.kindLen(k) * sz
		}
		rg := region.New(total)
		for _, k := range AllKinds() {
			var f *region.Field
			var err error
			if k == Indices {
				f, err = region.Map(rg, k.String(), l.Indices)
			} else {
				f, err = region.Map(rg, k.String(), l.floats(k))
			}
			if err != nil {
				return err
			}
			m.fields[k] = f
		}
		m.region = rg
	} else {
		for _, k := range AllKinds() {
			prev := m.fields[k].N
			var err error
			if k == Indices {
				err = region.Remap(m.region, m.fields[k], l.Indices)
			} else {
				err = region.Remap(m.region, m.fields[k], l.floats(k))
			}
			if err != nil {
				return err
			}
			if m.fields[k].N != prev {
				m.clearGroup(k)
			}
		}
	}
	for _, k := range AllKinds() {
		f := m.fields[k]
		if k == Indices {
			if m.indices == nil {
				g, err := region.NewGroup[uint16](f, k.Stride())
				if err != nil {
					return err
				}
				m.indices = g
			}
			continue
		}
		if m.groups[k] == nil {
			g, err := region.NewGroup[float32](f, k.Stride())
			if err != nil {
				return err
			}
			m.groups[k] = g
		}
	}
	return nil
}

func (m *Mesh) clearGroup(k Kinds) {
	if k == Indices {
		m.indices = nil
		return
	}
	m.groups[k] = nil
}

// createBuffers creates a buffer for each kind that has data.
func (m *Mesh) createBuffers() error {
	if m.buffers == nil {
		m.buffers = make(map[Kinds]gpu.Buffer)
	}
	for _, k := range AllKinds() {
		f := m.fields[k]
		if f.N == 0 {
			delete(m.buffers, k)
			continue
		}
		if _, has := m.buffers[k]; has {
			continue
		}
		buf, err := m.Config.Device.NewBuffer(m.bufferLabel(k.String()), k.Target(), f)
		if err != nil {
			return err
		}
		m.buffers[k] = buf
	}
	return nil
}

func (m *Mesh) bufferLabel(kind string) string {
	if m.Config.Name == "" {
		return kind
	}
	return m.Config.Name + "." + kind
}

func (m *Mesh) releaseBuffers() {
	for k, buf := range m.buffers {
		buf.Release()
		delete(m.buffers, k)
	}
}

// Dispose releases all of the GPU buffers of the mesh, including
// the tangent buffer, and marks it as unbuilt. It is safe to call
// on a mesh that is already disposed.
func (m *Mesh) Dispose() {
	m.releaseBuffers()
	if m.tangents.buffer != nil {
		m.tangents.buffer.Release()
		m.tangents.buffer = nil
	}
	m.built = false
}

// Render validates the mesh and renders it with the material
// selected by the mesh configuration and the given options,
// which may be nil. See [Options] for the order in which
// materials are tried.
func (m *Mesh) Render(ctx Context, opts *Options) error {
	if err := m.Validate(); err != nil {
		return err
	}
	merged, err := m.mergeOptions(opts)
	if err != nil {
		return errors.Log(fmt.Errorf("mesh %q: render options: %w", m.Config.Name, err))
	}
	rg := m.Config.Registry
	if rg == nil {
		rg = DefaultRegistry
	}
	mat, err := resolveMaterial(rg, &merged)
	if err != nil {
		return errors.Log(fmt.Errorf("mesh %q: render: %w", m.Config.Name, err))
	}
	merged.Material = mat
	return mat.Render(ctx, m, &merged)
}

// Refresh uploads the data of the given kind again, after it has
// been edited in place through its group. It does nothing if the
// kind has no buffer.
func (m *Mesh) Refresh(kind Kinds) error {
	buf, has := m.buffers[kind]
	if !has {
		return nil
	}
	return errors.Log(buf.Refresh())
}

// Buffer returns the buffer of the given kind, validating the
// mesh first. It returns nil if the kind has no data.
func (m *Mesh) Buffer(kind Kinds) gpu.Buffer {
	if errors.Log(m.Validate()) != nil {
		return nil
	}
	return m.buffers[kind]
}

// group returns the group of the given vertex kind, validating first.
func (m *Mesh) group(kind Kinds) *region.Group[float32] {
	errors.Log(m.Validate())
	return m.groups[kind]
}

// Vertices returns the xyz vertex positions, validating the mesh first.
func (m *Mesh) Vertices() *region.Group[float32] { return m.group(Positions) }

// Colors returns the rgba vertex colors, validating the mesh first.
func (m *Mesh) Colors() *region.Group[float32] { return m.group(Colors) }

// TexCoords returns the uv texture coordinates, validating the mesh first.
func (m *Mesh) TexCoords() *region.Group[float32] { return m.group(TexCoords) }

// Normals returns the xyz vertex normals, validating the mesh first.
func (m *Mesh) Normals() *region.Group[float32] { return m.group(Normals) }

// Indices returns the element indices, validating the mesh first.
func (m *Mesh) Indices() *region.Group[uint16] {
	errors.Log(m.Validate())
	return m.indices
}

// Region returns the memory region holding the mesh data.
// It is nil before the first build.
func (m *Mesh) Region() *region.Region {
	return m.region
}

// Bounds returns the bounds of the vertex positions,
// validating the mesh first.
func (m *Mesh) Bounds() Bounds {
	errors.Log(m.Validate())
	return m.bounds
}

// indexGroup returns the index group if there are indices, else nil.
func (m *Mesh) indexGroup() *region.Group[uint16] {
	if m.indices.Len() == 0 {
		return nil
	}
	return m.indices
}

// Triangles returns the triangles of the mesh under its draw mode,
// validating the mesh first. See [EachTriangle].
func (m *Mesh) Triangles() iter.Seq[Triangle] {
	errors.Log(m.Validate())
	return EachTriangle(m.Config.DrawMode, m.groups[Positions], m.indexGroup())
}

// TriangleList returns the triangles of the mesh as a slice, which
// is cached until the next rebuild.
func (m *Mesh) TriangleList() []Triangle {
	if errors.Log(m.Validate()) != nil {
		return nil
	}
	if m.triangles != nil {
		return m.triangles
	}
	trs := []Triangle{}
	for tr := range m.Triangles() {
		trs = append(trs, tr)
	}
	m.triangles = trs
	return trs
}

func (m *Mesh) String() string {
	if !m.built {
		return fmt.Sprintf("mesh %q (unbuilt)", m.Config.Name)
	}
	return fmt.Sprintf("mesh %q %s: %d vertices, %d indices, %d buffers", m.Config.Name, m.Config.DrawMode, m.groups[Positions].Len(), m.indices.Len(), len(m.buffers))
}
