// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import (
	"testing"

	"cogentcore.org/tumble/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestSeeded(t *testing.T) {
	a := NewSysRand(42)
	b := NewSysRand(42)
	for range 10 {
		assert.Equal(t, a.Float32(), b.Float32())
	}
	a.Seed(7)
	b.Seed(7)
	assert.Equal(t, a.Intn(100), b.Intn(100))
}

func TestUniformMinMax(t *testing.T) {
	rnd := NewSysRand(1)
	for range 1000 {
		v := UniformMinMax(-2, 3, rnd)
		assert.GreaterOrEqual(t, v, float32(-2))
		assert.Less(t, v, float32(3))
	}
}

func TestUnitVector3(t *testing.T) {
	rnd := NewSysRand(3)
	for range 100 {
		tolassert.EqualTol(t, 1, UnitVector3(rnd).Length(), 1e-5)
		tolassert.EqualTol(t, 1, Quat(rnd).Length(), 1e-5)
	}
}
