// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package slicesx provides additional slice functions
// beyond those in the standard [slices] package.
package slicesx

import "slices"

// SetLength sets the length of the given slice, re-using and
// preserving existing values to the extent possible.
// New elements are zero.
func SetLength[E any](s []E, n int) []E {
	if len(s) == n {
		return s
	}
	if s == nil {
		return make([]E, n)
	}
	if cap(s) < n {
		s = slices.Grow(s, n-len(s))
	}
	ol := len(s)
	s = s[:n]
	if n > ol {
		clear(s[ol:])
	}
	return s
}

// Fill sets every element of s to the repeating pattern p,
// which must evenly divide len(s). It returns false otherwise.
func Fill[E any](s []E, p []E) bool {
	np := len(p)
	if np == 0 || len(s)%np != 0 {
		return false
	}
	for i := 0; i < len(s); i += np {
		copy(s[i:i+np], p)
	}
	return true
}
