// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"cogentcore.org/meshbuf/math32"
	"github.com/stretchr/testify/assert"
)

func TestCalcBoundsEmpty(t *testing.T) {
	assert.Equal(t, Bounds{}, CalcBounds(nil))
	assert.Equal(t, Bounds{}, CalcBounds([]float32{1, 2}))
}

func TestCalcBoundsSingle(t *testing.T) {
	bb := CalcBounds([]float32{2, 3, 4})
	assert.Equal(t, Bounds{Left: 2, Right: 2, Top: 3, Bottom: 3, Front: 4, Back: 4}, bb)
}

func TestCalcBounds(t *testing.T) {
	bb := CalcBounds([]float32{0, 0, 0, 1, 2, -3, -1, 5, 2, 9, 9})
	assert.Equal(t, float32(-1), bb.Left)
	assert.Equal(t, float32(1), bb.Right)
	assert.Equal(t, float32(0), bb.Bottom)
	assert.Equal(t, float32(5), bb.Top)
	assert.Equal(t, float32(2), bb.Front, "front is the max z")
	assert.Equal(t, float32(-3), bb.Back, "back is the min z")
	assert.Equal(t, float32(2), bb.Width)
	assert.Equal(t, float32(5), bb.Height)
	assert.Equal(t, float32(5), bb.Depth)
	assert.Equal(t, math32.Vec3(0, 2.5, -0.5), bb.Center())
	assert.Equal(t, math32.B3(-1, 0, -3, 1, 5, 2), bb.Box())
}
