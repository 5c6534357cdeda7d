// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality of numbers
// with tolerance (in other words, it checks whether numbers are about equal).
package tolassert

import (
	"cogentcore.org/tumble/math32"
	"github.com/stretchr/testify/assert"
)

// Equal asserts that the given two numbers are about equal to each other,
// using a default tolerance of 0.001.
func Equal(t assert.TestingT, expected, actual float32, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	return EqualTol(t, expected, actual, 0.001, msgAndArgs...)
}

// EqualTol asserts that the given two numbers are about equal to each other,
// using the given tolerance value.
func EqualTol(t assert.TestingT, expected, actual, tolerance float32, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	return assert.InDelta(t, expected, actual, float64(tolerance), msgAndArgs...)
}

// EqualVector3 asserts that the given two vectors are about equal
// component-wise, using the given tolerance value.
func EqualVector3(t assert.TestingT, expected, actual math32.Vector3, tolerance float32, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	ok := EqualTol(t, expected.X, actual.X, tolerance, msgAndArgs...)
	ok = EqualTol(t, expected.Y, actual.Y, tolerance, msgAndArgs...) && ok
	return EqualTol(t, expected.Z, actual.Z, tolerance, msgAndArgs...) && ok
}

// EqualQuat asserts that the given two quaternions encode about the same
// rotation, using the given tolerance value.
func EqualQuat(t assert.TestingT, expected, actual math32.Quat, tolerance float32, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	if expected.IsEqualTol(actual, tolerance) {
		return true
	}
	return assert.Fail(t, "quaternions differ: expected "+expected.String()+", actual "+actual.String(), msgAndArgs...)
}
