// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package demos

import (
	"image"
	"math"
	"testing"

	"cogentcore.org/tumble/base/tolassert"
	"cogentcore.org/tumble/colors"
	"cogentcore.org/tumble/math32"
	"cogentcore.org/tumble/xyz"
	"cogentcore.org/tumble/xyz/physics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = float32(1.0 / 60.0)

var testOptions = Options{Size: image.Point{64, 48}, Seed: 1}

func TestRegistry(t *testing.T) {
	assert.Equal(t, []string{"dice", "spin", "stack", "tower"}, Names())
	assert.Len(t, Entries(), 4)
	assert.True(t, HasDemo("stack"))
	assert.False(t, HasDemo("pool"))
	_, err := Build("pool", testOptions)
	assert.Error(t, err)
}

func TestTower(t *testing.T) {
	in, err := Build("tower", testOptions)
	require.NoError(t, err)
	w := in.World
	assert.Equal(t, 21, w.Scene.NumSolids())
	assert.Equal(t, 21, w.Physics.NumBodies())
	require.Len(t, w.Tracked(), 20)
	for _, tr := range w.Tracked() {
		assert.Equal(t, physics.DisableDeactivation, tr.Body.ActivationState())
		assert.Equal(t, float32(10), tr.Body.Mass)
	}
	top := w.Tracked()[19]
	tolassert.EqualVector3(t, math32.Vec3(0, 19, 0), top.Solid.Pose.Pos, 1e-6)

	for range 60 {
		in.Update(frame)
	}
	var xf physics.Transform
	top.Body.MotionState.WorldTransform(&xf)
	assert.Equal(t, xf.Origin, top.Solid.Pose.Pos)
	assert.Less(t, top.Solid.Pose.Pos.Y, float32(19))

	handled, err := in.PointerDown(32, 24)
	assert.False(t, handled)
	assert.NoError(t, err)
}

func TestStack(t *testing.T) {
	in, err := Build("stack", testOptions)
	require.NoError(t, err)
	w := in.World
	assert.Equal(t, 34, w.Scene.NumSolids())
	require.Len(t, w.Tracked(), 33)
	tolassert.EqualVector3(t, math32.Vec3(3.2, 32, 3.2), w.Tracked()[32].Solid.Pose.Pos, 1e-5)
	assert.Equal(t, float32(StackFriction), w.Tracked()[0].Body.Friction)

	handled, err := in.PointerDown(32, 24)
	require.NoError(t, err)
	assert.True(t, handled)
	require.Len(t, w.Tracked(), 34)
	thrown := w.Tracked()[33]
	assert.Equal(t, float32(35), thrown.Body.Mass)
	assert.Equal(t, float32(StackFriction), thrown.Body.Friction)
	tolassert.EqualTol(t, 24, thrown.Body.LinearVelocity().Length(), 1e-3)
	assert.Contains(t, in.Status(), "stack: 35 solids")
}

func TestSpin(t *testing.T) {
	in, err := Build("spin", testOptions)
	require.NoError(t, err)
	assert.Equal(t, 3, in.World.Scene.NumSolids())
	assert.Zero(t, in.World.Physics.NumBodies())
	in.Update(1)
	green := in.World.Scene.Solids()[1]
	tolassert.EqualQuat(t, math32.NewQuatAxisAngle(math32.Vector3Y, math32.Pi/2), green.Pose.Quat, 1e-5)
	tolassert.EqualVector3(t, math32.Vector3{}, green.Pose.Pos, 0)
}

func TestOrbit(t *testing.T) {
	in, err := Build("tower", testOptions)
	require.NoError(t, err)
	cam := &in.World.Scene.Camera
	target := math32.Vec3(0, 0.5, 0)
	assert.Equal(t, target, in.Controls.Target)
	ndc := cam.Project(target)
	tolassert.EqualTol(t, 0, ndc.X, 1e-4)
	tolassert.EqualTol(t, 0, ndc.Y, 1e-4)

	var solids []xyz.Pose
	var bodies []physics.Transform
	for _, tr := range in.World.Tracked() {
		solids = append(solids, tr.Solid.Pose)
		bodies = append(bodies, tr.Body.WorldTransform())
	}
	dist := cam.Pose.Pos.Sub(target).Length()

	// a quarter turn: 12 of 48 pixels, eased in over many frames
	in.Orbit(12, 0)
	in.Update(0)
	assert.True(t, in.Controls.Pending())
	for range 300 {
		assert.Equal(t, 0, in.Update(0))
	}
	assert.False(t, in.Controls.Pending())
	in.Orbit(float32(math.NaN()), 0)
	assert.False(t, in.Controls.Pending())
	tolassert.EqualVector3(t, math32.Vec3(-5, 5, 5), cam.Pose.Pos, 1e-3)
	tolassert.EqualTol(t, dist, cam.Pose.Pos.Sub(target).Length(), 1e-3)
	ndc = cam.Project(target)
	tolassert.EqualTol(t, 0, ndc.X, 1e-4)
	tolassert.EqualTol(t, 0, ndc.Y, 1e-4)
	for i, tr := range in.World.Tracked() {
		assert.Equal(t, solids[i], tr.Solid.Pose)
		assert.Equal(t, bodies[i], tr.Body.WorldTransform())
	}

	in.Zoom(-1)
	in.Update(0)
	tolassert.EqualTol(t, 0.95*dist, cam.Pose.Pos.Sub(target).Length(), 1e-3)

	// the camera cannot pass over the top
	in.Orbit(0, 1000)
	for range 300 {
		in.Update(0)
	}
	assert.Greater(t, cam.Pose.Pos.Y, target.Y)
}

func TestBackground(t *testing.T) {
	opts := testOptions
	opts.Background = colors.Green
	in, err := Build("spin", opts)
	require.NoError(t, err)
	assert.Equal(t, colors.Green, in.Render().RGBAAt(0, 0))
}

func TestDieFace(t *testing.T) {
	assert.Equal(t, 1, DieFace(math32.QuatIdentity()))
	assert.Equal(t, 6, DieFace(math32.NewQuatAxisAngle(math32.Vector3X, math32.Pi)))
	assert.Equal(t, 3, DieFace(math32.NewQuatAxisAngle(math32.Vector3Z, math32.Pi/2)))
	assert.Equal(t, 5, DieFace(math32.NewQuatAxisAngle(math32.Vector3X, math32.Pi/2)))
}

func TestDice(t *testing.T) {
	in, err := Build("dice", testOptions)
	require.NoError(t, err)
	_, err = in.World.Scene.MeshByName("die")
	require.NoError(t, err)

	handled, err := in.PointerDown(32, 24)
	require.NoError(t, err)
	assert.True(t, handled)
	require.Len(t, in.World.Tracked(), 1)
	die := in.World.Tracked()[0]
	tolassert.EqualVector3(t, math32.Vector3Scalar(0.25), die.Body.Shape.HalfExtents, 1e-6)
	assert.Equal(t, physics.ActiveTag, die.Body.ActivationState())
	assert.Contains(t, in.Status(), "1 dice thrown")

	again, err := Build("dice", testOptions)
	require.NoError(t, err)
	_, err = again.PointerDown(32, 24)
	require.NoError(t, err)
	assert.Equal(t, die.Solid.Pose.Quat, again.World.Tracked()[0].Solid.Pose.Quat)
	assert.Equal(t, die.Body.AngularVelocity(), again.World.Tracked()[0].Body.AngularVelocity())
}

func TestRender(t *testing.T) {
	in, err := Build("tower", testOptions)
	require.NoError(t, err)
	img := in.Render()
	assert.Equal(t, image.Rect(0, 0, 64, 48), img.Bounds())
	assert.Equal(t, SceneBackground, img.RGBAAt(0, 0))
	assert.Equal(t, SceneBackground, img.RGBAAt(63, 0))

	assert.True(t, in.Resize(image.Point{32, 32}))
	assert.Equal(t, float32(1), in.World.Scene.Camera.Aspect)
	assert.Equal(t, image.Rect(0, 0, 32, 32), in.Render().Bounds())
}
