// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import "cogentcore.org/tumble/math32"

// UniformMinMax returns a uniform random value in [min, max).
// Optionally can pass a single Rand interface to use --
// otherwise uses system global Rand source.
func UniformMinMax(min, max float32, randOpt ...Rand) float32 {
	return min + (max-min)*pick(randOpt).Float32()
}

// UnitVector3 returns a random direction, uniformly distributed
// on the unit sphere.
// Optionally can pass a single Rand interface to use --
// otherwise uses system global Rand source.
func UnitVector3(randOpt ...Rand) math32.Vector3 {
	rnd := pick(randOpt)
	for {
		v := math32.Vec3(float32(rnd.NormFloat64()), float32(rnd.NormFloat64()), float32(rnd.NormFloat64()))
		if l := v.Length(); l > 1e-6 {
			return v.DivScalar(l)
		}
	}
}

// Quat returns a random rotation, uniformly distributed.
// Optionally can pass a single Rand interface to use --
// otherwise uses system global Rand source.
func Quat(randOpt ...Rand) math32.Quat {
	rnd := pick(randOpt)
	q := math32.NewQuat(float32(rnd.NormFloat64()), float32(rnd.NormFloat64()), float32(rnd.NormFloat64()), float32(rnd.NormFloat64()))
	q.Normalize()
	return q
}
