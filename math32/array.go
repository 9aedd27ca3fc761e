// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// ArrayF32 is a slice of float32 with additional convenience methods
// for appending and reading packed vectors. It is the growable list
// type that mesh builders fill with vertex attribute values.
type ArrayF32 []float32

// NewArrayF32 creates a returns a new array of floats
// with the specified initial size and capacity
func NewArrayF32(size, capacity int) ArrayF32 {
	return make([]float32, size, capacity)
}

// Len returns the number of float32 elements in the array
func (a ArrayF32) Len() int {
	return len(a)
}

// Append appends any number of values to the array
func (a *ArrayF32) Append(v ...float32) {
	*a = append(*a, v...)
}

// AppendVector2 appends any number of Vector2 to the array
func (a *ArrayF32) AppendVector2(v ...Vector2) {
	for i := 0; i < len(v); i++ {
		*a = append(*a, v[i].X, v[i].Y)
	}
}

// AppendVector3 appends any number of Vector3 to the array
func (a *ArrayF32) AppendVector3(v ...Vector3) {
	for i := 0; i < len(v); i++ {
		*a = append(*a, v[i].X, v[i].Y, v[i].Z)
	}
}

// AppendVector4 appends any number of Vector4 to the array
func (a *ArrayF32) AppendVector4(v ...Vector4) {
	for i := 0; i < len(v); i++ {
		*a = append(*a, v[i].X, v[i].Y, v[i].Z, v[i].W)
	}
}

// Vector3 returns the Vector3 stored starting at the given
// vector index (not float index).
func (a ArrayF32) Vector3(idx int) Vector3 {
	var v Vector3
	v.FromSlice(a, idx*3)
	return v
}

// SetVector3 stores the given Vector3 at the given vector index.
func (a ArrayF32) SetVector3(idx int, v Vector3) {
	v.ToSlice(a, idx*3)
}
