// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu provides the GPU buffer resources that mesh attribute
// data is uploaded into. A [Device] creates a [Buffer] from a [Source]
// of bytes; the buffer can later re-read its source with
// [Buffer.Refresh] and must be released with [Buffer.Release].
// [WebGPU] implements the device on top of WebGPU, and [HostDevice]
// keeps buffers in host memory for headless use and testing.
package gpu

import (
	"cogentcore.org/meshbuf/base/errors"
)

// ErrReleased is returned when using a buffer after it was released.
var ErrReleased = errors.New("gpu: buffer has been released")

// Source is the data source of a [Buffer]. The bytes it returns
// may alias memory that is edited in place between refreshes.
type Source interface {
	Bytes() []byte
}

// Buffer is a device buffer bound to a target, holding a copy of
// the bytes of its [Source] as of the last upload.
type Buffer interface {

	// Label returns the debugging label of the buffer.
	Label() string

	// Target returns the binding target of the buffer.
	Target() Targets

	// Size returns the number of source bytes last uploaded.
	Size() int

	// Refresh uploads the current bytes of the source again,
	// after its contents were changed in place.
	Refresh() error

	// Release frees the device memory. It is safe to call
	// more than once.
	Release()
}

// Device creates buffers.
type Device interface {

	// NewBuffer creates a buffer bound to the given target and
	// uploads the current bytes of src into it.
	NewBuffer(label string, target Targets, src Source) (Buffer, error)
}

// Bytes is a [Source] over a fixed byte slice.
type Bytes []byte

func (b Bytes) Bytes() []byte {
	return b
}
