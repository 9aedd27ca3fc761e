// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// Targets are the binding targets of a [Buffer], which determine
// how the device may use the buffer memory.
type Targets int32

const (
	UndefinedTarget Targets = iota

	// VertexTarget is for per-vertex attribute data:
	// positions, colors, texture coordinates, normals and tangents.
	VertexTarget

	// IndexTarget is for element index data.
	IndexTarget
)

// BufferUsages returns the WebGPU buffer usage flags for the target.
// All buffers are writable so that they can be refreshed in place.
func (tg Targets) BufferUsages() wgpu.BufferUsage {
	switch tg {
	case VertexTarget:
		return wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst
	case IndexTarget:
		return wgpu.BufferUsageIndex | wgpu.BufferUsageCopyDst
	}
	return wgpu.BufferUsageCopyDst
}

func (tg Targets) String() string {
	switch tg {
	case VertexTarget:
		return "Vertex"
	case IndexTarget:
		return "Index"
	}
	return "UndefinedTarget"
}

// copyAlign is the alignment required for the size of
// buffer writes on the device.
const copyAlign = 4

// padBytes returns b extended with zeros to a multiple of [copyAlign].
// It returns b itself when it is already aligned.
func padBytes(b []byte) []byte {
	rem := len(b) % copyAlign
	if rem == 0 {
		return b
	}
	pb := make([]byte, len(b)+copyAlign-rem)
	copy(pb, b)
	return pb
}
