// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"cogentcore.org/meshbuf/material"
	"cogentcore.org/meshbuf/mesh"
	"cogentcore.org/meshbuf/meshfile"
	"github.com/muesli/termenv"
)

// newMesh returns the built mesh for the given description, with
// its materials registered according to cfg.
func newMesh(d *meshfile.Description, cfg *Config) (*mesh.Mesh, error) {
	mcfg, err := d.Config()
	if err != nil {
		return nil, err
	}
	rg := mesh.NewRegistry()
	for _, name := range slices.Sorted(maps.Keys(cfg.Materials)) {
		ph := material.NewPhong(name)
		ph.Shiny = cfg.Materials[name]
		rg.Add(name, ph)
	}
	if _, err := rg.Find(mesh.DefaultMaterialName); err != nil {
		def := material.NewPhong(mesh.DefaultMaterialName)
		def.Shiny = cfg.Shiny
		rg.Add(def.Name, def)
	}
	mcfg.Registry = rg
	m := mesh.New(mcfg)
	return m, m.Validate()
}

// report writes a summary of the mesh for the given description to w:
// its attribute counts, bounds, triangles, tangent space and the
// draw call its material makes.
func report(w io.Writer, d *meshfile.Description, cfg *Config) error {
	m, err := newMesh(d, cfg)
	if err != nil {
		return err
	}
	out := termenv.NewOutput(w)
	head := func(s string) string {
		return out.String(s).Bold().Foreground(out.Color("6")).String()
	}

	fmt.Fprintf(w, "%s %s\n", head("mesh"), m.Name())
	fmt.Fprintf(w, "  draw mode: %s\n", m.DrawMode())
	counts := []int{m.Vertices().Len(), m.Colors().Len(), m.TexCoords().Len(), m.Normals().Len(), m.Indices().Len()}
	for _, k := range mesh.AllKinds() {
		fmt.Fprintf(w, "  %-10s %d\n", k.String()+":", counts[k])
	}

	bb := m.Bounds()
	fmt.Fprintf(w, "%s %s\n", head("bounds"), bb)
	fmt.Fprintf(w, "  center: %v\n", bb.Center())

	trs := m.TriangleList()
	fmt.Fprintf(w, "%s %d\n", head("triangles"), len(trs))
	for i, tr := range trs {
		if i == cfg.Triangles {
			fmt.Fprintf(w, "  ...\n")
			break
		}
		fmt.Fprintf(w, "  %v normal: %v\n", tr.Index, tr.Normal())
	}

	if cfg.Tangents && m.Normals().Len() > 0 && m.TexCoords().Len() > 0 {
		tan, bit, err := m.Tangents()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s %d\n", head("tangents"), tan.Len())
		if tan.Len() > 0 {
			fmt.Fprintf(w, "  first: %v bitangent: %v\n", tan.Element(0), bit.Element(0))
		}
	}

	rec := &material.Recorder{}
	opts := &mesh.Options{}
	if cfg.Material != "" {
		opts.MaterialName = cfg.Material
	}
	if err := m.Render(rec, opts); err != nil {
		return err
	}
	for _, dc := range rec.Calls {
		fmt.Fprintf(w, "%s %s\n", head("draw"), dc)
	}
	m.Dispose()
	return nil
}
