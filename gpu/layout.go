// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// IndexFormat is the WebGPU format of index buffer elements.
const IndexFormat = wgpu.IndexFormatUint16

// VertexFormat returns the WebGPU format of a float32 vertex
// attribute with the given number of components (1-4).
func VertexFormat(components int) wgpu.VertexFormat {
	switch components {
	case 1:
		return wgpu.VertexFormatFloat32
	case 2:
		return wgpu.VertexFormatFloat32x2
	case 3:
		return wgpu.VertexFormatFloat32x3
	case 4:
		return wgpu.VertexFormatFloat32x4
	}
	return wgpu.VertexFormatUndefined
}

// VertexLayout returns the layout of a vertex buffer holding one
// tightly packed float32 attribute per vertex, bound to the given
// shader location.
func VertexLayout(location uint32, components int) wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: uint64(4 * components),
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{{
			Format:         VertexFormat(components),
			ShaderLocation: location,
		}},
	}
}
