// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package world

import (
	"image"
	"math"
	"testing"

	"cogentcore.org/tumble/base/tolassert"
	"cogentcore.org/tumble/math32"
	"cogentcore.org/tumble/xyz"
	"cogentcore.org/tumble/xyz/physics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = float32(1.0 / 60.0)

func newTestWorld() (*World, *Spawner) {
	sc := xyz.NewScene("test")
	sc.Camera.Pose.Pos.Set(5, 5, 5)
	sc.Camera.LookAtOrigin()
	w := NewWorld(sc, physics.NewWorld())
	return w, NewSpawner(w)
}

func groundRequest() SpawnRequest {
	return SpawnRequest{Name: "ground", Size: math32.Vec3(40, 1, 40), Pos: math32.Vec3(0, -1, 0)}
}

func assertSynced(t *testing.T, tr Tracked) {
	t.Helper()
	var xf physics.Transform
	tr.Body.MotionState.WorldTransform(&xf)
	assert.Equal(t, xf.Origin, tr.Solid.Pose.Pos)
	assert.Equal(t, xf.Rotation, tr.Solid.Pose.Quat)
}

func TestUpdateSyncsDynamic(t *testing.T) {
	w, sp := newTestWorld()
	_, err := sp.Spawn(groundRequest())
	require.NoError(t, err)
	var cubes []Tracked
	for i := range 5 {
		tr, err := sp.Spawn(SpawnRequest{
			Name: "cube",
			Size: math32.Vector3Scalar(0.5),
			Mass: 10,
			Pos:  math32.Vec3(0, float32(i+1), 0),
			Quat: math32.NewQuat(10, 5, 0, 1),
		})
		require.NoError(t, err)
		cubes = append(cubes, tr)
	}
	require.Len(t, w.Tracked(), 5)
	start := cubes[4].Solid.Pose.Pos

	for range 30 {
		assert.Equal(t, 1, w.Update(frame))
		for _, tr := range cubes {
			assertSynced(t, tr)
		}
	}
	assert.Less(t, cubes[4].Solid.Pose.Pos.Y, start.Y)
	tolassert.EqualQuat(t, cubes[4].Body.WorldTransform().Rotation, cubes[4].Solid.Pose.Quat, 1e-6)
}

func TestStaticNotSynced(t *testing.T) {
	w, sp := newTestWorld()
	ground, err := sp.Spawn(groundRequest())
	require.NoError(t, err)
	assert.Empty(t, w.Tracked())
	assert.Same(t, ground.Body, w.BodyFor(ground.Solid.ID))

	_, err = sp.Spawn(SpawnRequest{Name: "cube", Size: math32.Vector3Scalar(1), Mass: 1, Pos: math32.Vec3(0, 2, 0)})
	require.NoError(t, err)

	// the ground solid is never overwritten, even if moved by hand
	ground.Solid.Pose.Pos.Set(3, 4, 5)
	for range 60 {
		w.Update(frame)
	}
	assert.Equal(t, math32.Vec3(3, 4, 5), ground.Solid.Pose.Pos)
	assert.Equal(t, math32.Vec3(0, -1, 0), ground.Body.WorldTransform().Origin)
}

func TestUpdateZero(t *testing.T) {
	w, sp := newTestWorld()
	tr, err := sp.Spawn(SpawnRequest{
		Name:   "thrown",
		Size:   math32.Vector3Scalar(0.4),
		Mass:   35,
		Pos:    math32.Vec3(1, 2, 3),
		LinVel: math32.Vec3(0, 0, -24),
		AngVel: math32.Vec3(1, 0, 0),
	})
	require.NoError(t, err)
	pose := tr.Solid.Pose

	assert.Equal(t, 0, w.Update(0))
	assert.Equal(t, pose.Pos, tr.Solid.Pose.Pos)
	assert.Equal(t, pose.Quat, tr.Solid.Pose.Quat)
	assert.Equal(t, math32.Vec3(0, 0, -24), tr.Body.LinearVelocity())

	// zero steps after a real step too
	assert.Equal(t, 1, w.Update(frame))
	moved := tr.Solid.Pose.Pos
	assert.Equal(t, 0, w.Update(0))
	assert.Equal(t, moved, tr.Solid.Pose.Pos)
}

func TestMaxSubSteps(t *testing.T) {
	w, sp := newTestWorld()
	_, err := sp.Spawn(SpawnRequest{Name: "cube", Size: math32.Vector3Scalar(1), Mass: 1})
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxSubSteps, w.Update(5))
}

func TestUpdateHugeDt(t *testing.T) {
	for _, dt := range []float32{float32(math.Inf(1)), float32(math.Inf(-1)), 1e30, math.MaxFloat32} {
		w, sp := newTestWorld()
		tr, err := sp.Spawn(SpawnRequest{Name: "cube", Size: math32.Vector3Scalar(0.5), Mass: 1, Pos: math32.Vec3(0, 5, 0)})
		require.NoError(t, err)
		steps := w.Update(dt)
		assert.GreaterOrEqual(t, steps, 0, dt)
		assert.LessOrEqual(t, steps, DefaultMaxSubSteps, dt)

		// the world keeps running at normal frame rates
		y := tr.Solid.Pose.Pos.Y
		for range 30 {
			assert.Equal(t, 1, w.Update(frame), dt)
		}
		assert.Less(t, tr.Solid.Pose.Pos.Y, y, dt)
		assertSynced(t, tr)
	}
}

func TestMissingMotionState(t *testing.T) {
	w, _ := newTestWorld()
	ms := xyz.NewBox(w.Scene, "box", 1, 1, 1)
	sld := xyz.NewSolid("cube", ms)
	shape, err := physics.NewBoxShape(math32.Vector3Scalar(0.5))
	require.NoError(t, err)
	info := physics.NewRigidBodyConstructionInfo(1, nil, shape)
	info.StartTransform.Origin = math32.Vec3(0, 10, 0)
	rb, err := physics.NewRigidBody(info)
	require.NoError(t, err)
	require.NoError(t, w.Add(sld, rb))
	require.Len(t, w.Tracked(), 1)

	sld.Pose.Pos.Set(7, 7, 7)
	w.Update(frame)
	assert.Equal(t, math32.Vec3(7, 7, 7), sld.Pose.Pos)
	assert.Less(t, rb.WorldTransform().Origin.Y, float32(10))
}

func TestResize(t *testing.T) {
	w, sp := newTestWorld()
	tr, err := sp.Spawn(SpawnRequest{Name: "cube", Size: math32.Vector3Scalar(1), Mass: 1, Pos: math32.Vec3(0, 3, 0)})
	require.NoError(t, err)
	w.Update(frame)
	pose := tr.Solid.Pose
	bodyXf := tr.Body.WorldTransform()
	camPose := w.Scene.Camera.Pose

	assert.True(t, w.Resize(image.Point{1000, 500}))
	assert.Equal(t, float32(2), w.Scene.Camera.Aspect)
	assert.Equal(t, image.Point{1000, 500}, w.Scene.Size)
	assert.Equal(t, pose, tr.Solid.Pose)
	assert.Equal(t, bodyXf, tr.Body.WorldTransform())
	assert.Equal(t, camPose.Pos, w.Scene.Camera.Pose.Pos)
	assert.Equal(t, camPose.Quat, w.Scene.Camera.Pose.Quat)
}

func TestThrow(t *testing.T) {
	w, sp := newTestWorld()
	w.Resize(image.Point{640, 480})
	_, err := sp.Spawn(groundRequest())
	require.NoError(t, err)
	tr, err := sp.Throw(320, 240)
	require.NoError(t, err)
	assert.Equal(t, "thrown-0", tr.Solid.Name)
	dir := math32.Vector3Scalar(-1).Normal()
	tolassert.EqualVector3(t, math32.Vector3Scalar(5).Add(dir), tr.Solid.Pose.Pos, 1e-3)
	tolassert.EqualVector3(t, dir.MulScalar(24), tr.Body.LinearVelocity(), 1e-2)
	assert.Equal(t, float32(35), tr.Body.Mass)
	assert.Equal(t, physics.DisableDeactivation, tr.Body.ActivationState())
	tolassert.EqualVector3(t, math32.Vector3Scalar(0.2), tr.Body.Shape.HalfExtents, 1e-6)
	assert.Equal(t, 2, sp.Count)
	assert.Equal(t, 1, sp.Thrown)
	assert.Equal(t, 2, w.Scene.NumSolids())

	// objects accumulate
	tr, err = sp.Throw(320, 240)
	require.NoError(t, err)
	assert.Equal(t, "thrown-1", tr.Solid.Name)
	assert.Len(t, w.Tracked(), 2)
	assert.Equal(t, 3, w.Physics.NumBodies())
	assert.Len(t, w.Scene.Meshes, 2)

	w.Scene.Size = image.Point{}
	_, err = sp.Throw(1, 1)
	assert.ErrorIs(t, err, ErrNoSize)
}

func TestSpawnErrors(t *testing.T) {
	w, sp := newTestWorld()
	_, err := sp.Spawn(SpawnRequest{Name: "neg", Size: math32.Vector3Scalar(1), Mass: -1})
	assert.ErrorIs(t, err, physics.ErrNegativeMass)
	for _, m := range []float32{float32(math.NaN()), float32(math.Inf(1)), float32(math.Inf(-1))} {
		_, err = sp.Spawn(SpawnRequest{Name: "bad", Size: math32.Vector3Scalar(1), Mass: m})
		assert.ErrorIs(t, err, physics.ErrInvalidMass, m)
	}
	_, err = sp.Spawn(SpawnRequest{Name: "flat", Size: math32.Vec3(1, 0, 1), Mass: 1})
	assert.Error(t, err)
	assert.Zero(t, w.Scene.NumSolids())
	assert.Zero(t, w.Physics.NumBodies())
	assert.Zero(t, sp.Count)
}

func TestSpawnMesh(t *testing.T) {
	w, sp := newTestWorld()
	ms := xyz.NewBox(w.Scene, "slab", 2, 1, 4)
	tr, err := sp.Spawn(SpawnRequest{Name: "slab", Mesh: ms, Scale: math32.Vec3(0.5, 2, 1), Mass: 3})
	require.NoError(t, err)
	tolassert.EqualVector3(t, math32.Vec3(0.5, 1, 2), tr.Body.Shape.HalfExtents, 1e-6)
	assert.Equal(t, physics.ActiveTag, tr.Body.ActivationState())
}

func TestRemove(t *testing.T) {
	w, sp := newTestWorld()
	tr, err := sp.Spawn(SpawnRequest{Name: "cube", Size: math32.Vector3Scalar(1), Mass: 1})
	require.NoError(t, err)
	assert.True(t, w.Remove(tr.Solid.ID))
	assert.False(t, w.Remove(tr.Solid.ID))
	assert.Empty(t, w.Tracked())
	assert.Zero(t, w.Physics.NumBodies())
	assert.Zero(t, w.Scene.NumSolids())
	assert.Nil(t, w.BodyFor(tr.Solid.ID))
}

func TestAnimator(t *testing.T) {
	w, _ := newTestWorld()
	total := float32(0)
	w.AddAnimator(func(dt float32) { total += dt })
	w.Update(0.5)
	w.Update(0.25)
	assert.Equal(t, float32(0.75), total)
}
