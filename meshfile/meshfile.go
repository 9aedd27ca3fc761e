// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package meshfile reads mesh descriptions from TOML and YAML files.
// A description gives the mesh settings and its attribute lists
// literally, optionally on top of a basic shape from package shape.
package meshfile

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"cogentcore.org/meshbuf/base/errors"
	"cogentcore.org/meshbuf/base/iox/tomlx"
	"cogentcore.org/meshbuf/base/iox/yamlx"
	"cogentcore.org/meshbuf/math32"
	"cogentcore.org/meshbuf/mesh"
	"cogentcore.org/meshbuf/shape"
)

// ErrUnknownFormat is returned for a file extension that
// is not a known description format.
var ErrUnknownFormat = errors.New("meshfile: unknown format")

// MaxVertices is the largest number of vertices a description can
// have, shape and lists together, for them all to be indexable.
const MaxVertices = 1 << 16

// Formats are the description file formats.
type Formats int32

const (
	UnknownFormat Formats = iota
	TOML
	YAML
)

// FormatFromFilename returns the format for the extension of
// the given file name.
func FormatFromFilename(filename string) Formats {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return TOML
	case ".yaml", ".yml":
		return YAML
	}
	return UnknownFormat
}

// Shape describes a basic shape that the mesh is built from.
type Shape struct {

	// Kind is one of plane, quad, box, disc or ribbon.
	Kind string `toml:"kind" yaml:"kind"`

	// Size is the size of the shape: width and height for a plane
	// or quad, width, height and depth for a box, the radius for a
	// disc, and length and width for a ribbon.
	Size []float32 `toml:"size" yaml:"size"`

	// Segments is the number of segments, where applicable.
	Segments int `toml:"segments" yaml:"segments"`

	// Pos is the position offset of the shape.
	Pos []float32 `toml:"pos" yaml:"pos"`
}

// size returns size component i, or 1 if it is not given.
func (sh *Shape) size(i int) float32 {
	if i < len(sh.Size) {
		return sh.Size[i]
	}
	return 1
}

// Shape returns the shape described.
func (sh *Shape) Shape() (shape.Shape, error) {
	segs := max(sh.Segments, 1)
	var base *shape.Base
	var res shape.Shape
	switch strings.ToLower(sh.Kind) {
	case "plane":
		pl := shape.NewPlane(sh.size(0), sh.size(1), segs, segs)
		base, res = &pl.Base, pl
	case "quad":
		pl := shape.NewQuad(sh.size(0), sh.size(1))
		base, res = &pl.Base, pl
	case "box":
		bx := shape.NewBox(sh.size(0), sh.size(1), sh.size(2))
		bx.Segs = segs
		base, res = &bx.Base, bx
	case "disc":
		dsegs := sh.Segments
		if dsegs == 0 {
			dsegs = 16
		}
		dc := shape.NewDisc(sh.size(0), dsegs)
		base, res = &dc.Base, dc
	case "ribbon":
		rb := shape.NewRibbon(sh.size(0), sh.size(1), segs)
		base, res = &rb.Base, rb
	default:
		return nil, fmt.Errorf("meshfile: unknown shape kind %q", sh.Kind)
	}
	if len(sh.Pos) > 0 {
		var pos [3]float32
		copy(pos[:], sh.Pos)
		base.Pos = math32.Vec3(pos[0], pos[1], pos[2])
	}
	return res, nil
}

// Description is a mesh description.
type Description struct {

	// Name is the name of the mesh.
	Name string `toml:"name" yaml:"name"`

	// DrawMode is the draw mode. It defaults to that of the
	// shape if there is one, and to triangles otherwise.
	DrawMode mesh.DrawModes `toml:"draw_mode" yaml:"draw_mode"`

	// Material is the name of the material.
	Material string `toml:"material,omitempty" yaml:"material,omitempty"`

	// DefaultMaterial is the name of the fallback material.
	DefaultMaterial string `toml:"default_material,omitempty" yaml:"default_material,omitempty"`

	// Color is a uniform color override of up to four components.
	Color []float32 `toml:"color,omitempty" yaml:"color,omitempty"`

	// Shape is an optional shape that is built before the lists.
	// The indices of the lists are relative to their own positions.
	Shape *Shape `toml:"shape,omitempty" yaml:"shape,omitempty"`

	Positions []float32 `toml:"positions,omitempty" yaml:"positions,omitempty"`
	Colors    []float32 `toml:"colors,omitempty" yaml:"colors,omitempty"`
	TexCoords []float32 `toml:"texcoords,omitempty" yaml:"texcoords,omitempty"`
	Normals   []float32 `toml:"normals,omitempty" yaml:"normals,omitempty"`
	Indices   []uint16  `toml:"indices,omitempty" yaml:"indices,omitempty"`
}

// Open reads a description from the given file, in the
// format given by its extension.
func Open(filename string) (*Description, error) {
	d := &Description{}
	var err error
	switch FormatFromFilename(filename) {
	case TOML:
		err = tomlx.Open(d, filename)
	case YAML:
		err = yamlx.Open(d, filename)
	default:
		return nil, fmt.Errorf("meshfile.Open %s: %w", filename, ErrUnknownFormat)
	}
	if err != nil {
		return nil, err
	}
	if d.Name == "" {
		d.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}
	return d, nil
}

// Read reads a description in the given format from the given reader.
func Read(r io.Reader, format Formats) (*Description, error) {
	d := &Description{}
	var err error
	switch format {
	case TOML:
		err = tomlx.Read(d, r)
	case YAML:
		err = yamlx.Read(d, r)
	default:
		return nil, ErrUnknownFormat
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Write writes the description in the given format to the given writer.
func (d *Description) Write(w io.Writer, format Formats) error {
	switch format {
	case TOML:
		return tomlx.Write(d, w)
	case YAML:
		return yamlx.Write(d, w)
	}
	return ErrUnknownFormat
}

// Validate checks the description for errors that can be found
// before building the mesh.
func (d *Description) Validate() error {
	var errs []error
	if _, err := mesh.ColorQuad(d.Color...); err != nil {
		errs = append(errs, err)
	}
	nv := len(d.Positions) / 3
	total := nv
	if d.Shape != nil {
		sh, err := d.Shape.Shape()
		if err != nil {
			errs = append(errs, err)
		} else {
			var l mesh.Lists
			sh.Build(&l)
			total += l.NumVertex()
		}
	}
	if total > MaxVertices {
		errs = append(errs, fmt.Errorf("meshfile: %d vertices exceed the maximum of %d", total, MaxVertices))
	}
	for _, idx := range d.Indices {
		if int(idx) >= nv {
			errs = append(errs, fmt.Errorf("meshfile: index %d out of range of %d vertices", idx, nv))
			break
		}
	}
	return errors.Join(errs...)
}

// Config returns the mesh configuration for the description.
func (d *Description) Config() (mesh.Config, error) {
	if err := d.Validate(); err != nil {
		return mesh.Config{}, err
	}
	cfg := mesh.Config{
		Name:            d.Name,
		DrawMode:        d.DrawMode,
		MaterialName:    d.Material,
		DefaultMaterial: d.DefaultMaterial,
		Color:           d.Color,
	}
	var sh shape.Shape
	if d.Shape != nil {
		sh, _ = d.Shape.Shape()
		if cfg.DrawMode == mesh.UnknownDrawMode {
			cfg.DrawMode = sh.DrawMode()
		}
	}
	cfg.Builder = mesh.BuilderFunc(func(l *mesh.Lists) {
		if sh != nil {
			sh.Build(l)
		}
		off := uint16(l.NumVertex())
		l.Positions.Append(d.Positions...)
		l.Colors.Append(d.Colors...)
		l.TexCoords.Append(d.TexCoords...)
		l.Normals.Append(d.Normals...)
		for _, idx := range d.Indices {
			l.AddIndex(idx + off)
		}
	})
	return cfg, nil
}
