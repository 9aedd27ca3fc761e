// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit mesh buffer functionality.

package math32

import (
	"fmt"
	"image/color"
)

// Vector4 is a 4D vector with X, Y, Z and W components,
// used for RGBA vertex colors.
type Vector4 struct {
	X float32
	Y float32
	Z float32
	W float32
}

// Vec4 returns a new [Vector4] with the given x, y, z, and w components.
func Vec4(x, y, z, w float32) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: w}
}

// Vector4Scalar returns a new [Vector4] with all components set to the given scalar value.
func Vector4Scalar(scalar float32) Vector4 {
	return Vector4{X: scalar, Y: scalar, Z: scalar, W: scalar}
}

func (v Vector4) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", v.X, v.Y, v.Z, v.W)
}

// FromSlice sets this vector's components from the given slice, starting at offset.
func (v *Vector4) FromSlice(array []float32, offset int) {
	v.X = array[offset]
	v.Y = array[offset+1]
	v.Z = array[offset+2]
	v.W = array[offset+3]
}

// ToSlice copies this vector's components to the given slice, starting at offset.
func (v Vector4) ToSlice(array []float32, offset int) {
	array[offset] = v.X
	array[offset+1] = v.Y
	array[offset+2] = v.Z
	array[offset+3] = v.W
}

// Array returns the components as a four element array.
func (v Vector4) Array() [4]float32 {
	return [4]float32{v.X, v.Y, v.Z, v.W}
}

// NewVector4Color returns a [Vector4] with the non-premultiplied
// red, green, blue and alpha components of the given color,
// each in the range 0 to 1.
func NewVector4Color(c color.Color) Vector4 {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Vec4(float32(nc.R)/255, float32(nc.G)/255, float32(nc.B)/255, float32(nc.A)/255)
}
