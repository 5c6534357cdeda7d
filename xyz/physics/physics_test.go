// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import (
	"math"
	"testing"

	"cogentcore.org/tumble/base/tolassert"
	"cogentcore.org/tumble/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const step = float32(1.0 / 60.0)

func newBox(t *testing.T, w *World, mass float32, half, pos math32.Vector3) (*RigidBody, *DefaultMotionState) {
	t.Helper()
	shape, err := NewBoxShape(half)
	require.NoError(t, err)
	ms := NewDefaultMotionState(NewTransform(pos, math32.QuatIdentity()))
	rb, err := NewRigidBody(NewRigidBodyConstructionInfo(mass, ms, shape))
	require.NoError(t, err)
	_, err = w.AddRigidBody(rb)
	require.NoError(t, err)
	return rb, ms
}

func newGround(t *testing.T, w *World) *RigidBody {
	t.Helper()
	rb, _ := newBox(t, w, 0, math32.Vec3(20, 0.5, 20), math32.Vec3(0, -1, 0))
	return rb
}

func TestNewRigidBody(t *testing.T) {
	shape, err := NewBoxShape(math32.Vector3Scalar(0.5))
	require.NoError(t, err)

	_, err = NewRigidBody(NewRigidBodyConstructionInfo(-1, nil, shape))
	assert.ErrorIs(t, err, ErrNegativeMass)
	_, err = NewRigidBody(NewRigidBodyConstructionInfo(float32(math.NaN()), nil, shape))
	assert.ErrorIs(t, err, ErrInvalidMass)
	_, err = NewRigidBody(NewRigidBodyConstructionInfo(float32(math.Inf(1)), nil, shape))
	assert.ErrorIs(t, err, ErrInvalidMass)

	_, err = NewRigidBody(NewRigidBodyConstructionInfo(1, nil, nil))
	assert.Error(t, err)

	_, err = NewBoxShape(math32.Vec3(1, 0, 1))
	assert.Error(t, err)

	info := NewRigidBodyConstructionInfo(1, nil, shape)
	info.StartTransform.Origin = math32.Vec3(1, 2, 3)
	rb, err := NewRigidBody(info)
	require.NoError(t, err)
	assert.True(t, rb.IsDynamic())
	assert.Equal(t, math32.Vec3(1, 2, 3), rb.WorldTransform().Origin)
	assert.Equal(t, ActiveTag, rb.ActivationState())

	static, err := NewRigidBody(NewRigidBodyConstructionInfo(0, nil, shape))
	require.NoError(t, err)
	assert.True(t, static.IsStatic())
	static.SetLinearVelocity(math32.Vec3(1, 0, 0))
	assert.Equal(t, math32.Vector3{}, static.LinearVelocity())
}

func TestLocalInertia(t *testing.T) {
	shape, err := NewBoxShape(math32.Vector3Scalar(0.5))
	require.NoError(t, err)
	tolassert.EqualVector3(t, math32.Vector3Scalar(2), shape.LocalInertia(12), 1e-5)

	bb, err := NewBoxShapeFromBox(math32.B3(-1, -2, -0.5, 1, 1, 0.5))
	require.NoError(t, err)
	assert.Equal(t, math32.Vec3(1, 2, 0.5), bb.HalfExtents)
	assert.Equal(t, float32(DefaultMargin), bb.Margin)
}

func TestAddRemove(t *testing.T) {
	w := NewWorld()
	a, ms := newBox(t, w, 1, math32.Vector3Scalar(0.5), math32.Vec3(0, 3, 0))
	b, _ := newBox(t, w, 1, math32.Vector3Scalar(0.5), math32.Vec3(0, 6, 0))
	assert.NotEqual(t, a.ID, b.ID)
	assert.Same(t, a, w.Body(a.ID))
	assert.Equal(t, 2, w.NumBodies())

	var xf Transform
	ms.WorldTransform(&xf)
	assert.Equal(t, math32.Vec3(0, 3, 0), xf.Origin)

	_, err := w.AddRigidBody(b)
	assert.Error(t, err)

	assert.True(t, w.RemoveRigidBody(a.ID))
	assert.False(t, w.RemoveRigidBody(a.ID))
	assert.Nil(t, w.Body(a.ID))
	assert.Equal(t, []*RigidBody{b}, w.Bodies())
}

func TestStepSimulationZero(t *testing.T) {
	w := NewWorld()
	rb, ms := newBox(t, w, 1, math32.Vector3Scalar(0.5), math32.Vec3(0, 5, 0))
	rb.SetLinearVelocity(math32.Vec3(3, 0, 0))

	assert.Equal(t, 0, w.StepSimulation(0, 10, step))
	assert.Equal(t, 0, w.StepSimulation(-1, 10, step))
	assert.Equal(t, 0, w.StepSimulation(float32(math.Inf(1)), 10, step))
	assert.Equal(t, 0, w.StepSimulation(float32(math.NaN()), 0, 0))
	assert.Equal(t, math32.Vec3(0, 5, 0), rb.WorldTransform().Origin)
	assert.Equal(t, math32.Vec3(0, 5, 0), ms.GraphicsWorldTrans.Origin)
	assert.Equal(t, 0.0, w.Time())
}

func TestFreeFall(t *testing.T) {
	w := NewWorld()
	rb, ms := newBox(t, w, 1, math32.Vector3Scalar(0.5), math32.Vector3{})
	for range 60 {
		assert.Equal(t, 1, w.StepSimulation(step, 10, step))
	}
	tolassert.EqualTol(t, -9.8, rb.LinearVelocity().Y, 1e-3)
	// semi-implicit Euler: y = -g h^2 (1 + 2 + ... + 60)
	tolassert.EqualTol(t, -9.8*1830/3600.0, rb.WorldTransform().Origin.Y, 0.01)
	assert.Equal(t, rb.WorldTransform(), ms.GraphicsWorldTrans)
	assert.InDelta(t, 1.0, w.Time(), 1e-4)
}

func TestMaxSubSteps(t *testing.T) {
	w := NewWorld()
	rb, _ := newBox(t, w, 1, math32.Vector3Scalar(0.5), math32.Vector3{})
	assert.Equal(t, 10, w.StepSimulation(1, 10, step))
	tolassert.EqualTol(t, -9.8*10*step, rb.LinearVelocity().Y, 1e-4)

	w1 := NewWorld()
	newBox(t, w1, 1, math32.Vector3Scalar(0.5), math32.Vector3{})
	// partial steps accumulate
	assert.Equal(t, 0, w1.StepSimulation(step/2, 10, step))
	assert.Equal(t, 1, w1.StepSimulation(step/2, 10, step))

	w2 := NewWorld()
	rb2, _ := newBox(t, w2, 1, math32.Vector3Scalar(0.5), math32.Vector3{})
	assert.Equal(t, 1, w2.StepSimulation(0.1, 0, 0))
	tolassert.EqualTol(t, -0.98, rb2.LinearVelocity().Y, 1e-4)
}

func TestStaticNeverMoves(t *testing.T) {
	w := NewWorld()
	ground := newGround(t, w)
	box, ms := newBox(t, w, 1, math32.Vector3Scalar(0.5), math32.Vec3(0, 2, 0))
	for range 6 * 60 {
		w.StepSimulation(step, 10, step)
	}
	assert.Equal(t, math32.Vec3(0, -1, 0), ground.WorldTransform().Origin)
	assert.Equal(t, math32.Vector3{}, ground.LinearVelocity())
	tolassert.EqualTol(t, 0, box.WorldTransform().Origin.Y, 0.05)
	tolassert.EqualTol(t, 0, ms.GraphicsWorldTrans.Origin.Y, 0.05)
	assert.Equal(t, IslandSleeping, box.ActivationState())
}

func TestDisableDeactivation(t *testing.T) {
	w := NewWorld()
	newGround(t, w)
	box, _ := newBox(t, w, 1, math32.Vector3Scalar(0.5), math32.Vec3(0, 1, 0))
	box.ForceActivationState(DisableDeactivation)
	box.SetActivationState(IslandSleeping)
	assert.Equal(t, DisableDeactivation, box.ActivationState())
	for range 6 * 60 {
		w.StepSimulation(step, 10, step)
	}
	assert.Equal(t, DisableDeactivation, box.ActivationState())
	assert.True(t, box.IsActive())
}

func TestCollideBoxes(t *testing.T) {
	w := NewWorld()
	b, _ := newBox(t, w, 1, math32.Vector3Scalar(0.5), math32.Vector3{})
	a, _ := newBox(t, w, 1, math32.Vector3Scalar(0.5), math32.Vec3(0, 0.9, 0))
	cs := collideBoxes(nil, a, b)
	require.Len(t, cs, 8)
	deepest := 0
	for _, c := range cs {
		tolassert.EqualVector3(t, math32.Vector3Y, c.normal, 1e-5)
		tolassert.EqualTol(t, 0.1, c.pen, 1e-5)
		if c.deepest {
			deepest++
		}
	}
	assert.Equal(t, 1, deepest)

	far, _ := newBox(t, w, 1, math32.Vector3Scalar(0.5), math32.Vec3(3, 0, 0))
	assert.Empty(t, collideBoxes(nil, far, b))
}

func TestStateStep(t *testing.T) {
	var st State
	st.Defaults()
	st.AngVel = math32.Vec3(0, math32.Pi/2, 0)
	for range 100 {
		st.StepByAngVel(0.01)
	}
	tolassert.EqualVector3(t, math32.Vec3(0, 0, -1), math32.Vector3X.MulQuat(st.Quat), 1e-3)

	st.LinVel = math32.Vec3(1, 2, 3)
	st.StepByLinVel(0.5)
	assert.Equal(t, math32.Vec3(0.5, 1, 1.5), st.Pos)
}
