// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package region

import "unsafe"

// Types are the element types that can be stored in a [Field].
type Types int32

const (
	UndefinedType Types = iota
	Uint16
	Uint32
	Float32
)

// TypeSizes gives our data type sizes in bytes
var TypeSizes = map[Types]int{
	Uint16:  2,
	Uint32:  4,
	Float32: 4,
}

// Bytes returns number of bytes for this type
func (tp Types) Bytes() int {
	return TypeSizes[tp]
}

func (tp Types) String() string {
	switch tp {
	case Uint16:
		return "Uint16"
	case Uint32:
		return "Uint32"
	case Float32:
		return "Float32"
	}
	return "UndefinedType"
}

// Element is the set of Go types that map onto [Types].
type Element interface {
	uint16 | uint32 | float32
}

// TypeOf returns the [Types] value for the element type E.
func TypeOf[E Element]() Types {
	var z E
	switch any(z).(type) {
	case uint16:
		return Uint16
	case uint32:
		return Uint32
	case float32:
		return Float32
	}
	return UndefinedType
}

// sizeOf returns the in-memory size of E, which must agree with TypeOf[E]().Bytes().
func sizeOf[E Element]() int {
	var z E
	return int(unsafe.Sizeof(z))
}

// alignUp rounds off up to the next multiple of align.
func alignUp(off, align int) int {
	if align <= 1 || off%align == 0 {
		return off
	}
	return (off/align + 1) * align
}
