// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package region provides a single contiguous memory region that is
// sliced into named, typed, resizable fields, and strided [Group]
// views over those fields. All fields of a region share one backing
// allocation, so that the per-vertex data of a mesh is kept together
// and can be handed to the GPU as byte slices without copying.
package region

import (
	"fmt"
	"strings"
	"unsafe"

	"cogentcore.org/meshbuf/base/errors"
	"cogentcore.org/meshbuf/base/ordmap"
)

var (
	// ErrOutOfCapacity is returned by [Map] when a new field does not
	// fit in the remaining capacity of the region.
	ErrOutOfCapacity = errors.New("region: out of capacity")

	// ErrInvalidStride is returned by [NewGroup] when the field length
	// is not evenly divisible by the stride.
	ErrInvalidStride = errors.New("region: invalid stride")

	// ErrTypeMismatch is returned when a field is accessed with an
	// element type other than the one it was mapped with.
	ErrTypeMismatch = errors.New("region: element type mismatch")

	// ErrFieldExists is returned by [Map] for a duplicate field name.
	ErrFieldExists = errors.New("region: field already exists")
)

// Field is a named, typed, contiguous sub-range of a [Region].
// A Field keeps its identity across [Remap] calls: its offset and
// length change, but pointers to it stay valid.
type Field struct {

	// Name is the unique name of the field within its region.
	Name string

	// Type is the element type of the field.
	Type Types

	// N is the number of elements in the field.
	N int

	// Offset is the offset in bytes from the start of the region.
	Offset int

	region *Region
}

// MemSize returns the number of bytes occupied by the field.
func (f *Field) MemSize() int {
	return f.N * f.Type.Bytes()
}

// End returns the one-past-the-end byte offset of the field.
func (f *Field) End() int {
	return f.Offset + f.MemSize()
}

// Region returns the region this field belongs to.
func (f *Field) Region() *Region {
	return f.region
}

// Bytes returns the raw bytes of the field. The slice aliases the
// region memory; it is invalidated by a [Remap] that changes sizes.
func (f *Field) Bytes() []byte {
	if f.N == 0 {
		return nil
	}
	end := f.End()
	return f.region.buf[f.Offset:end:end]
}

func (f *Field) String() string {
	return fmt.Sprintf("%s: %s[%d] @%d", f.Name, f.Type, f.N, f.Offset)
}

// Region owns one contiguous byte buffer, handed out as fields
// at computed offsets. The zero value is an empty region with
// no capacity; use [New].
type Region struct {

	// words is the backing allocation; it is 8 byte aligned so that
	// every field offset that is a multiple of its element size is
	// properly aligned for typed views.
	words []uint64

	// buf is the byte view of words, with len equal to the capacity.
	buf []byte

	// size is the number of bytes up to the end of the last field.
	size int

	fields ordmap.Map[string, *Field]
}

// New returns a new empty region with the given capacity in bytes.
func New(capacity int) *Region {
	r := &Region{}
	r.alloc(capacity)
	return r
}

// alloc sets the backing buffer to a new zeroed allocation of
// at least the given number of bytes.
func (r *Region) alloc(capacity int) {
	if capacity <= 0 {
		r.words = nil
		r.buf = nil
		return
	}
	r.words = make([]uint64, (capacity+7)/8)
	r.buf = unsafe.Slice((*byte)(unsafe.Pointer(&r.words[0])), capacity)
}

// Cap returns the capacity of the region in bytes.
func (r *Region) Cap() int {
	return len(r.buf)
}

// Size returns the number of bytes occupied by fields,
// including alignment padding.
func (r *Region) Size() int {
	return r.size
}

// Fields returns the fields in declaration order.
func (r *Region) Fields() []*Field {
	return r.fields.Values()
}

// FieldByName returns the field with the given name.
func (r *Region) FieldByName(name string) (*Field, bool) {
	return r.fields.ValueByKeyTry(name)
}

func (r *Region) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "region %d/%d bytes", r.size, r.Cap())
	for _, f := range r.Fields() {
		b.WriteString("\n\t")
		b.WriteString(f.String())
	}
	return b.String()
}

// Map appends a new field with the given name to the region, sized to
// hold len(src) elements, copies src into it and returns it. The field
// offset is aligned to the element size. It returns [ErrOutOfCapacity]
// if the field would extend past the region capacity.
func Map[E Element](r *Region, name string, src []E) (*Field, error) {
	if _, has := r.fields.ValueByKeyTry(name); has {
		return nil, fmt.Errorf("region.Map %q: %w", name, ErrFieldExists)
	}
	typ := TypeOf[E]()
	off := r.size
	if len(src) > 0 {
		off = alignUp(off, typ.Bytes())
	}
	f := &Field{Name: name, Type: typ, N: len(src), Offset: off, region: r}
	if end := f.End(); end > r.Cap() {
		return nil, fmt.Errorf("region.Map %q: %d bytes at offset %d exceed capacity %d: %w", name, f.MemSize(), off, r.Cap(), ErrOutOfCapacity)
	}
	r.fields.Add(name, f)
	if f.N > 0 {
		r.size = f.End()
	}
	copy(View[E](f), src)
	return f, nil
}

// Remap replaces the contents of the given field with src. If the
// element count is unchanged the values are copied in place. Otherwise
// the region is reallocated and every field is repacked contiguously in
// declaration order, with the live contents of all other fields copied
// across. Field pointers remain valid in both cases, but slices obtained
// from the field before a resize must not be used afterwards.
func Remap[E Element](r *Region, f *Field, src []E) error {
	if f.region != r {
		return fmt.Errorf("region.Remap %q: field does not belong to this region", f.Name)
	}
	if typ := TypeOf[E](); typ != f.Type {
		return fmt.Errorf("region.Remap %q: %s into %s field: %w", f.Name, typ, f.Type, ErrTypeMismatch)
	}
	if len(src) != f.N {
		r.repack(f, len(src))
	}
	copy(View[E](f), src)
	return nil
}

// repack reallocates the region with the given field resized to n
// elements, preserving the contents of every field up to its new size.
func (r *Region) repack(rf *Field, n int) {
	type layout struct {
		off, n int
	}
	fields := r.Fields()
	lays := make([]layout, len(fields))
	size := 0
	for i, f := range fields {
		fn := f.N
		if f == rf {
			fn = n
		}
		off := size
		if fn > 0 {
			off = alignUp(size, f.Type.Bytes())
			size = off + fn*f.Type.Bytes()
		}
		lays[i] = layout{off: off, n: fn}
	}
	oldBuf := r.buf
	r.alloc(max(r.Cap(), size))
	for i, f := range fields {
		nb := min(f.N, lays[i].n) * f.Type.Bytes()
		copy(r.buf[lays[i].off:lays[i].off+nb], oldBuf[f.Offset:f.Offset+nb])
		f.Offset = lays[i].off
		f.N = lays[i].n
	}
	r.size = size
}

// View returns a typed slice over the memory of the given field,
// aliasing the region: writes through it mutate the field in place.
// It panics if E does not match the field type.
func View[E Element](f *Field) []E {
	if typ := TypeOf[E](); typ != f.Type || sizeOf[E]() != typ.Bytes() {
		panic(fmt.Sprintf("region.View %q: %s view of %s field", f.Name, typ, f.Type))
	}
	if f.N == 0 {
		return nil
	}
	return unsafe.Slice((*E)(unsafe.Pointer(&f.region.buf[f.Offset])), f.N)
}
