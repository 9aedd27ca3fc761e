// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"log/slog"

	"cogentcore.org/meshbuf/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// WebGPU is a [Device] that creates WebGPU buffers on
// the given device, writing through its queue.
type WebGPU struct {

	// Device is the logical WebGPU device.
	Device *wgpu.Device

	// Queue is the queue of Device, used for buffer writes.
	Queue *wgpu.Queue
}

// NewWebGPU returns a new [WebGPU] device using the default queue
// of the given device.
func NewWebGPU(dev *wgpu.Device) *WebGPU {
	return &WebGPU{Device: dev, Queue: dev.GetQueue()}
}

// NewBuffer implements [Device] by creating a [Value] and
// uploading the source bytes into it.
func (wg *WebGPU) NewBuffer(label string, target Targets, src Source) (Buffer, error) {
	vl := &Value{Name: label, target: target, source: src, device: wg}
	if err := vl.Refresh(); err != nil {
		return nil, err
	}
	return vl, nil
}

// Value is a WebGPU [Buffer], created by [WebGPU.NewBuffer].
type Value struct {

	// Name is the debugging label of the buffer.
	Name string

	// AllocSize is the allocated size of the device buffer in bytes,
	// which is the source size rounded up to the copy alignment.
	AllocSize int

	// size is the number of source bytes last uploaded.
	size int

	target Targets

	source Source

	device *WebGPU

	buffer *wgpu.Buffer

	released bool
}

func (vl *Value) Label() string   { return vl.Name }
func (vl *Value) Target() Targets { return vl.target }
func (vl *Value) Size() int       { return vl.size }

// Buffer returns the underlying WebGPU buffer, for binding
// in a render pass. It is nil when the source is empty.
func (vl *Value) Buffer() *wgpu.Buffer {
	return vl.buffer
}

// Refresh copies the current source bytes into the device buffer,
// making the buffer if it has not yet been constructed or the size
// has changed, and writing through the queue otherwise.
func (vl *Value) Refresh() error {
	if vl.released {
		return errors.Log(fmt.Errorf("gpu.Value Refresh %s: %w", vl.Name, ErrReleased))
	}
	from := vl.source.Bytes()
	nb := len(from)
	if nb == 0 {
		vl.releaseBuffer()
		vl.size = 0
		return nil
	}
	from = padBytes(from)
	if vl.buffer == nil || vl.AllocSize != len(from) {
		vl.releaseBuffer()
		buf, err := vl.device.Device.CreateBufferInit(&wgpu.BufferInitDescriptor{
			Label:    vl.Name,
			Contents: from,
			Usage:    vl.target.BufferUsages(),
		})
		if errors.Log(err) != nil {
			return err
		}
		vl.buffer = buf
		vl.AllocSize = len(from)
		slog.Debug("gpu: created buffer", "label", vl.Name, "target", vl.target, "bytes", nb)
	} else {
		err := vl.device.Queue.WriteBuffer(vl.buffer, 0, from)
		if errors.Log(err) != nil {
			return err
		}
	}
	vl.size = nb
	return nil
}

// Release releases the device buffer for this value.
func (vl *Value) Release() {
	vl.releaseBuffer()
	vl.released = true
}

func (vl *Value) releaseBuffer() {
	if vl.buffer != nil {
		vl.buffer.Release()
		vl.buffer = nil
	}
	vl.AllocSize = 0
}
