// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"fmt"

	"cogentcore.org/meshbuf/base/errors"
	"cogentcore.org/meshbuf/base/ordmap"
	"github.com/jinzhu/copier"
)

var (
	// ErrMaterialNotFound is returned by [Registry.Find] for
	// a name that has not been registered.
	ErrMaterialNotFound = errors.New("mesh: material not found")

	// ErrUnresolvedMaterial is returned by [Mesh.Render] when
	// no material could be resolved for the mesh.
	ErrUnresolvedMaterial = errors.New("mesh: unresolved material")
)

// DefaultMaterialName is the default material of a mesh.
const DefaultMaterialName = "default"

// Context is the render target that a [Material] draws into.
// The mesh passes it through without looking at it.
type Context any

// Material renders a mesh into a context, using the buffers of the
// mesh and the resolved render options.
type Material interface {
	Render(ctx Context, m *Mesh, opts *Options) error
}

// Options are the render options of [Mesh.Render]. Zero fields
// are not set. The material used is the first that is set of
// Material, MaterialName, the mesh material and the mesh material
// name, falling back to DefaultMaterial and then to the mesh
// default material.
type Options struct {

	// DrawMode overrides the draw mode of the mesh.
	DrawMode DrawModes

	// Material overrides the material of the mesh.
	Material Material

	// MaterialName overrides the material of the mesh by name.
	MaterialName string

	// DefaultMaterial is the name of the material to use
	// when no other material resolves.
	DefaultMaterial string
}

// mergeOptions returns the options of the mesh with the fields
// that are set in opts copied over them.
func (m *Mesh) mergeOptions(opts *Options) (Options, error) {
	merged := Options{
		DrawMode:        m.Config.DrawMode,
		Material:        m.Config.Material,
		MaterialName:    m.Config.MaterialName,
		DefaultMaterial: m.Config.DefaultMaterial,
	}
	if opts == nil {
		return merged, nil
	}
	if opts.Material != nil || opts.MaterialName != "" {
		merged.Material = nil
		merged.MaterialName = ""
	}
	if err := copier.CopyWithOption(&merged, opts, copier.Option{IgnoreEmpty: true}); err != nil {
		return merged, err
	}
	if opts.Material != nil {
		merged.MaterialName = ""
	}
	return merged, nil
}

// Registry is a set of materials by name.
type Registry struct {
	materials ordmap.Map[string, Material]
}

// DefaultRegistry is the registry used by meshes that do not
// have one set in their [Config].
var DefaultRegistry = NewRegistry()

// NewRegistry returns a new empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add adds the given material under the given name,
// replacing any existing material of the same name.
func (rg *Registry) Add(name string, mat Material) {
	rg.materials.Add(name, mat)
}

// Delete removes the material of the given name,
// returning false if there was none.
func (rg *Registry) Delete(name string) bool {
	return rg.materials.DeleteKey(name)
}

// Find returns the material of the given name, or
// [ErrMaterialNotFound] if there is none.
func (rg *Registry) Find(name string) (Material, error) {
	mat, ok := rg.materials.ValueByKeyTry(name)
	if !ok {
		return nil, fmt.Errorf("mesh.Registry: %q: %w", name, ErrMaterialNotFound)
	}
	return mat, nil
}

// Names returns the registered names, in the order they were added.
func (rg *Registry) Names() []string {
	return rg.materials.Keys()
}

// Len returns the number of registered materials.
func (rg *Registry) Len() int {
	return rg.materials.Len()
}

// resolveMaterial returns the material that the given merged
// options select from the registry.
func resolveMaterial(rg *Registry, opts *Options) (Material, error) {
	if opts.Material != nil {
		return opts.Material, nil
	}
	var errs []error
	if opts.MaterialName != "" {
		mat, err := rg.Find(opts.MaterialName)
		if err == nil {
			return mat, nil
		}
		errs = append(errs, err)
	}
	def := opts.DefaultMaterial
	if def == "" {
		def = DefaultMaterialName
	}
	mat, err := rg.Find(def)
	if err == nil {
		return mat, nil
	}
	errs = append(errs, err)
	return nil, fmt.Errorf("%w: %w", ErrUnresolvedMaterial, errors.Join(errs...))
}
