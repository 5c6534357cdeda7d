// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import (
	"math"

	"cogentcore.org/tumble/math32"
)

// State contains the basic physical state including position, orientation, velocity.
// Other physical properties such as Mass go on the [RigidBody].
type State struct {

	// position of center of mass of object
	Pos math32.Vector3

	// rotation specified as a Quat
	Quat math32.Quat

	// linear velocity
	LinVel math32.Vector3

	// angular velocity
	AngVel math32.Vector3
}

// Defaults sets defaults only if current values are nil
func (ps *State) Defaults() {
	if ps.Quat.IsNil() {
		ps.Quat.SetIdentity()
	}
}

// Transform returns the position and rotation of the state.
func (ps *State) Transform() Transform {
	return Transform{Origin: ps.Pos, Rotation: ps.Quat}
}

//////// 	State updates

// AngMotionMax is maximum angular motion that can be taken per update
const AngMotionMax = math.Pi / 4

// StepByAngVel steps the Quat rotation from angular velocity
func (ps *State) StepByAngVel(step float32) {
	ang := math32.Sqrt(ps.AngVel.Dot(ps.AngVel))

	// limit the angular motion
	if ang*step > AngMotionMax {
		ang = AngMotionMax / step
	}
	var axis math32.Vector3
	if ang < 0.001 {
		// use Taylor's expansions of sync function
		axis = ps.AngVel.MulScalar(0.5*step - (step*step*step)*0.020833333333*ang*ang)
	} else {
		// sync(fAngle) = sin(c*fAngle)/t
		axis = ps.AngVel.MulScalar(math32.Sin(0.5*ang*step) / ang)
	}
	dq := math32.NewQuat(axis.X, axis.Y, axis.Z, math32.Cos(0.5*ang*step))
	ps.Quat = dq.Mul(ps.Quat)
	ps.Quat.Normalize()
}

// StepByLinVel steps the Pos from the linear velocity
func (ps *State) StepByLinVel(step float32) {
	ps.Pos = ps.Pos.Add(ps.LinVel.MulScalar(step))
}
