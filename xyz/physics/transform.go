// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import "cogentcore.org/tumble/math32"

// Transform is a rigid transform: a translation and a rotation,
// without scale.
type Transform struct {
	Origin   math32.Vector3
	Rotation math32.Quat
}

// IdentityTransform returns a Transform with no translation or rotation.
func IdentityTransform() Transform {
	return Transform{Rotation: math32.QuatIdentity()}
}

// NewTransform returns a Transform at the given origin with the
// given rotation, which is normalized.
func NewTransform(origin math32.Vector3, rot math32.Quat) Transform {
	rot.Normalize()
	return Transform{Origin: origin, Rotation: rot}
}

// SetIdentity resets the transform to no translation or rotation.
func (tr *Transform) SetIdentity() {
	tr.Origin.SetZero()
	tr.Rotation.SetIdentity()
}

// Apply transforms the given local point into world coordinates.
func (tr *Transform) Apply(local math32.Vector3) math32.Vector3 {
	return local.MulQuat(tr.Rotation).Add(tr.Origin)
}

// InvApply transforms the given world point into local coordinates.
func (tr *Transform) InvApply(world math32.Vector3) math32.Vector3 {
	return world.Sub(tr.Origin).MulQuat(tr.Rotation.Conjugate())
}

// MotionState is the record of a body's current world transform,
// which the body writes after each simulation step and which the
// visual layer reads from.
type MotionState interface {

	// WorldTransform copies the current world transform into xf,
	// so that a single scratch value can be reused.
	WorldTransform(xf *Transform)

	// SetWorldTransform is called by the world to record the
	// body transform after a step.
	SetWorldTransform(xf Transform)
}

// DefaultMotionState is a [MotionState] that just stores the
// most recent world transform.
type DefaultMotionState struct {

	// GraphicsWorldTrans is the latest world transform.
	GraphicsWorldTrans Transform
}

// NewDefaultMotionState returns a new [DefaultMotionState]
// starting at the given transform.
func NewDefaultMotionState(start Transform) *DefaultMotionState {
	return &DefaultMotionState{GraphicsWorldTrans: start}
}

func (ms *DefaultMotionState) WorldTransform(xf *Transform) {
	*xf = ms.GraphicsWorldTrans
}

func (ms *DefaultMotionState) SetWorldTransform(xf Transform) {
	ms.GraphicsWorldTrans = xf
}
