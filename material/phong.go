// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package material

import (
	"fmt"
	"image/color"

	"cogentcore.org/meshbuf/base/errors"
	"cogentcore.org/meshbuf/base/reflectx"
	"cogentcore.org/meshbuf/math32"
	"cogentcore.org/meshbuf/mesh"
)

// Phong describes the Blinn-Phong lighting parameters of a surface.
// The main color is used for both ambient and diffuse color, and its
// alpha component is used for opacity. The vertex colors of the mesh
// are multiplied by it.
type Phong struct {

	// Name is the name of the material, used in draw calls.
	Name string `default:"phong"`

	// Color is the main color of the surface.
	Color color.RGBA

	// Emissive is the color that the surface emits independent of
	// any lighting, i.e., glow.
	Emissive color.RGBA

	// Shiny is the specular shininess factor: how focally the surface
	// shines back directional light. It is an exponential factor, with
	// 0 being a very broad diffuse reflection, and higher values
	// (typically up to 128) a more focal specular reflection.
	Shiny float32 `default:"30"`

	// Reflective is the specular reflectiveness factor: how much
	// it shines back directional light.
	Reflective float32 `default:"1"`

	// Bright is an overall multiplier on the final computed color.
	Bright float32 `default:"1"`

	// Texture is the name of a texture providing the surface color.
	Texture string
}

// NewPhong returns a new Phong material with default parameters.
func NewPhong(name string) *Phong {
	ph := &Phong{Name: name}
	ph.Defaults()
	return ph
}

// Defaults sets default surface parameters
func (ph *Phong) Defaults() {
	errors.Log(reflectx.SetFromDefaultTags(ph))
	if ph.Color == (color.RGBA{}) {
		ph.Color = color.RGBA{255, 255, 255, 255}
	}
}

// Validate returns an error if the parameters are out of range.
func (ph *Phong) Validate() error {
	if ph.Shiny < 0 {
		return fmt.Errorf("material.Phong %s: Shiny must be >= 0, is %g", ph.Name, ph.Shiny)
	}
	if ph.Bright <= 0 {
		return fmt.Errorf("material.Phong %s: Bright must be > 0, is %g", ph.Name, ph.Bright)
	}
	return nil
}

// Colors returns the shader colors of the material.
func (ph *Phong) Colors() Colors {
	return Colors{
		Color:       math32.NewVector4Color(ph.Color),
		Emissive:    math32.NewVector4Color(ph.Emissive),
		ShinyBright: math32.Vec4(ph.Shiny, ph.Reflective, ph.Bright, 0),
	}
}

// drawCall returns the draw call of the material for the mesh.
func (ph *Phong) drawCall(m *mesh.Mesh, opts *mesh.Options) (*DrawCall, error) {
	if err := ph.Validate(); err != nil {
		return nil, err
	}
	dc := newDrawCall(ph.Name, m, opts)
	if _, has := dc.Buffers[mesh.Positions]; !has {
		return nil, fmt.Errorf("material.Phong %s: mesh %q has no vertices", ph.Name, m.Name())
	}
	dc.Colors = ph.Colors()
	dc.Texture = ph.Texture
	return dc, nil
}

// Render implements [mesh.Material]. An empty mesh draws nothing.
func (ph *Phong) Render(ctx mesh.Context, m *mesh.Mesh, opts *mesh.Options) error {
	dr, err := drawer(ctx)
	if err != nil {
		return errors.Log(err)
	}
	if m.Vertices().Len() == 0 {
		return nil
	}
	dc, err := ph.drawCall(m, opts)
	if err != nil {
		return errors.Log(err)
	}
	return dr.Draw(dc)
}

// NormalMapped is a [Phong] material whose surface normals are
// perturbed by a normal map texture, which requires the tangents
// of the mesh. The mesh must have normals and texture coordinates.
type NormalMapped struct {
	Phong

	// NormalMap is the name of the normal map texture.
	NormalMap string
}

// NewNormalMapped returns a new normal mapped material
// with default parameters.
func NewNormalMapped(name, normalMap string) *NormalMapped {
	nm := &NormalMapped{Phong: Phong{Name: name}, NormalMap: normalMap}
	nm.Defaults()
	return nm
}

// Render implements [mesh.Material].
func (nm *NormalMapped) Render(ctx mesh.Context, m *mesh.Mesh, opts *mesh.Options) error {
	dr, err := drawer(ctx)
	if err != nil {
		return errors.Log(err)
	}
	if m.Vertices().Len() == 0 {
		return nil
	}
	if m.Normals().Len() == 0 || m.TexCoords().Len() == 0 {
		return errors.Log(fmt.Errorf("material.NormalMapped %s: mesh %q needs normals and texture coordinates", nm.Name, m.Name()))
	}
	dc, err := nm.drawCall(m, opts)
	if err != nil {
		return errors.Log(err)
	}
	dc.Tangents, err = m.TangentBuffer()
	if err != nil {
		return err
	}
	return dr.Draw(dc)
}

// Register adds a default [Phong] material to the given registry
// under [mesh.DefaultMaterialName], if there is no material of
// that name already.
func Register(rg *mesh.Registry) {
	if _, err := rg.Find(mesh.DefaultMaterialName); err == nil {
		return
	}
	rg.Add(mesh.DefaultMaterialName, NewPhong(mesh.DefaultMaterialName))
}
