// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"fmt"

	"cogentcore.org/meshbuf/base/errors"
	"cogentcore.org/meshbuf/base/slicesx"
	"cogentcore.org/meshbuf/math32"
)

// ErrMalformedColor is returned for a color with more than
// four components.
var ErrMalformedColor = errors.New("mesh: color has more than 4 components")

// White is the color of vertices that have no other color.
var White = math32.Vec4(1, 1, 1, 1)

// ColorQuad returns the rgba color given by up to four components,
// with missing components set to 1. No components gives [White].
func ColorQuad(c ...float32) ([4]float32, error) {
	quad := White.Array()
	if len(c) > 4 {
		return quad, fmt.Errorf("%v: %w", c, ErrMalformedColor)
	}
	copy(quad[:], c)
	return quad, nil
}

// normalizeColors fills in one color per vertex when the builder
// gave none or the configuration has a uniform color.
func (m *Mesh) normalizeColors(l *Lists) error {
	if len(l.Colors) > 0 && m.Config.Color == nil {
		return nil
	}
	quad, err := ColorQuad(m.Config.Color...)
	if err != nil {
		return err
	}
	l.Colors = slicesx.SetLength(l.Colors, l.NumVertex()*4)
	slicesx.Fill(l.Colors, quad[:])
	return nil
}

// SetColor sets the color of every vertex to the given color, given
// either as four components or as one slice of components expanded
// with ..., with missing components set to 1. Only the color buffer
// is uploaded again; the mesh is not rebuilt.
func (m *Mesh) SetColor(c ...float32) error {
	quad, err := ColorQuad(c...)
	if err != nil {
		return errors.Log(fmt.Errorf("mesh %q: SetColor: %w", m.Config.Name, err))
	}
	if err := m.Validate(); err != nil {
		return err
	}
	slicesx.Fill(m.groups[Colors].Array(), quad[:])
	return m.Refresh(Colors)
}
