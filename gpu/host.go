// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"slices"

	"cogentcore.org/meshbuf/base/errors"
)

// HostDevice is a [Device] whose buffers live in host memory.
// It is used for headless operation and for testing, and keeps
// track of every buffer it has created.
type HostDevice struct {

	// Buffers are all of the buffers created by this device,
	// in creation order, including released ones.
	Buffers []*HostBuffer

	// FailOn, if set, is called before each buffer creation,
	// and a non-nil return is returned as the creation error.
	FailOn func(label string, target Targets) error
}

// NewBuffer implements [Device].
func (hd *HostDevice) NewBuffer(label string, target Targets, src Source) (Buffer, error) {
	if hd.FailOn != nil {
		if err := hd.FailOn(label, target); err != nil {
			return nil, fmt.Errorf("gpu.HostDevice NewBuffer %s: %w", label, err)
		}
	}
	hb := &HostBuffer{Name: label, target: target, source: src}
	hd.Buffers = append(hd.Buffers, hb)
	errors.Must(hb.Refresh())
	return hb, nil
}

// Live returns the buffers that have not been released.
func (hd *HostDevice) Live() []*HostBuffer {
	var live []*HostBuffer
	for _, hb := range hd.Buffers {
		if !hb.Released {
			live = append(live, hb)
		}
	}
	return live
}

// LiveByLabel returns the unreleased buffer with the given label, or nil.
func (hd *HostDevice) LiveByLabel(label string) *HostBuffer {
	for _, hb := range hd.Live() {
		if hb.Name == label {
			return hb
		}
	}
	return nil
}

// HostBuffer is a [Buffer] made by a [HostDevice].
type HostBuffer struct {

	// Name is the label of the buffer.
	Name string

	// Data is a copy of the source bytes as of the last upload.
	Data []byte

	// Uploads is the number of uploads, including the initial one.
	Uploads int

	// Released is set once Release has been called.
	Released bool

	target Targets
	source Source
}

func (hb *HostBuffer) Label() string   { return hb.Name }
func (hb *HostBuffer) Target() Targets { return hb.target }
func (hb *HostBuffer) Size() int       { return len(hb.Data) }

// Refresh implements [Buffer].
func (hb *HostBuffer) Refresh() error {
	if hb.Released {
		return fmt.Errorf("gpu.HostBuffer Refresh %s: %w", hb.Name, ErrReleased)
	}
	hb.Data = slices.Clone(hb.source.Bytes())
	hb.Uploads++
	return nil
}

// Release implements [Buffer].
func (hb *HostBuffer) Release() {
	hb.Released = true
	hb.Data = nil
}
