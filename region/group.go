// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package region

import "fmt"

// Group is a strided view over a [Field], exposing it as a sequence
// of fixed-size element groups, for example the three floats of one
// vertex position. A Group performs no GPU interaction: after editing
// elements in place, the owner must refresh any buffer uploaded from it.
type Group[E Element] struct {
	field  *Field
	stride int
}

// NewGroup returns a group view over the given field with the given
// stride. It returns [ErrInvalidStride] if the stride is not positive
// or does not evenly divide the field length, and [ErrTypeMismatch]
// if E does not match the field type.
func NewGroup[E Element](f *Field, stride int) (*Group[E], error) {
	if typ := TypeOf[E](); typ != f.Type {
		return nil, fmt.Errorf("region.NewGroup %q: %s group of %s field: %w", f.Name, typ, f.Type, ErrTypeMismatch)
	}
	if stride <= 0 || f.N%stride != 0 {
		return nil, fmt.Errorf("region.NewGroup %q: length %d, stride %d: %w", f.Name, f.N, stride, ErrInvalidStride)
	}
	return &Group[E]{field: f, stride: stride}, nil
}

// Field returns the field this group views.
func (g *Group[E]) Field() *Field {
	return g.field
}

// Stride returns the number of values per element.
func (g *Group[E]) Stride() int {
	return g.stride
}

// Len returns the number of elements: the field length / stride.
func (g *Group[E]) Len() int {
	if g == nil {
		return 0
	}
	return g.field.N / g.stride
}

// Array returns the flat values of the group, for bulk access.
func (g *Group[E]) Array() []E {
	return View[E](g.field)
}

// Element returns the values of element i, as a stride-length slice
// backed directly by the region memory: writes through it mutate the
// field in place. It returns nil if i is out of range.
func (g *Group[E]) Element(i int) []E {
	if i < 0 || i >= g.Len() {
		return nil
	}
	st := i * g.stride
	ed := st + g.stride
	return g.Array()[st:ed:ed]
}

// Bytes returns the raw bytes of the group, for GPU upload.
func (g *Group[E]) Bytes() []byte {
	return g.field.Bytes()
}

func (g *Group[E]) String() string {
	return fmt.Sprintf("%s / %d = %d", g.field, g.stride, g.Len())
}
