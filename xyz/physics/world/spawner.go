// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package world

import (
	"errors"
	"fmt"
	"image/color"

	"cogentcore.org/tumble/colors"
	"cogentcore.org/tumble/math32"
	"cogentcore.org/tumble/xyz"
	"cogentcore.org/tumble/xyz/physics"
)

// SpawnRequest describes a solid and body pair to create.
type SpawnRequest struct {

	// Name of the solid.
	Name string

	// Mesh is the shape of the solid; if nil, a box of Size is used.
	Mesh *xyz.Mesh

	// Size of the box mesh, used when Mesh is nil.
	Size math32.Vector3

	// Scale of the solid; zero means 1.
	Scale math32.Vector3

	// Color of the solid; zero means the default material color.
	Color color.RGBA

	// Mass of the body; zero makes a static body that is never synced.
	Mass float32

	// Pos is the initial position.
	Pos math32.Vector3

	// Quat is the initial rotation; zero means identity.
	Quat math32.Quat

	// LinVel is the initial linear velocity.
	LinVel math32.Vector3

	// AngVel is the initial angular velocity in radians per second.
	AngVel math32.Vector3

	// Friction of the body; zero means the physics default.
	Friction float32

	// Restitution (bounciness) of the body.
	Restitution float32

	// KeepActive disables deactivation of dynamic bodies so they
	// never fall asleep.
	KeepActive bool
}

// Spawner creates solid and body pairs in a [World], as from user input.
type Spawner struct {

	// World receives the spawned pairs.
	World *World

	// ThrowSpeed is the launch speed of thrown boxes.
	ThrowSpeed float32

	// ThrowSize is the edge length of thrown boxes.
	ThrowSize float32

	// ThrowMass is the mass of thrown boxes.
	ThrowMass float32

	// ThrowColor is the color of thrown boxes.
	ThrowColor color.RGBA

	// ThrowFriction is the friction of thrown boxes; zero means the physics default.
	ThrowFriction float32

	// KeepActive disables deactivation of thrown boxes.
	KeepActive bool

	// Count is the number of pairs spawned.
	Count int

	// Thrown is the number of boxes thrown.
	Thrown int
}

// NewSpawner returns a new Spawner for the given world, with
// default throw parameters.
func NewSpawner(w *World) *Spawner {
	return &Spawner{
		World:      w,
		ThrowSpeed: 24,
		ThrowSize:  0.4,
		ThrowMass:  35,
		ThrowColor: colors.AlmostWhite,
		KeepActive: true,
	}
}

// Spawn creates a solid and a box body sized to the solid mesh bounds,
// at the requested pose and velocity, and adds them to the world.
// Pairs are never deduplicated.
func (sp *Spawner) Spawn(req SpawnRequest) (Tracked, error) {
	if err := physics.CheckMass(req.Mass); err != nil {
		return Tracked{}, fmt.Errorf("world.Spawn %q: %w", req.Name, err)
	}
	ms := req.Mesh
	if ms == nil {
		if req.Size.X <= 0 || req.Size.Y <= 0 || req.Size.Z <= 0 {
			return Tracked{}, fmt.Errorf("world.Spawn %q: box size must be positive, got %v", req.Name, req.Size)
		}
		ms = sp.boxMesh(req.Size)
	}
	sld := xyz.NewSolid(req.Name, ms)
	if req.Color != (color.RGBA{}) {
		sld.SetColor(req.Color)
	}
	if !req.Scale.IsNil() {
		sld.Pose.Scale = req.Scale
	}
	quat := req.Quat
	if quat.IsNil() {
		quat.SetIdentity()
	}
	xf := physics.NewTransform(req.Pos, quat)
	sld.Pose.Pos = xf.Origin
	sld.Pose.Quat = xf.Rotation

	shape, err := physics.NewBoxShapeFromBox(sld.LocalBox())
	if err != nil {
		return Tracked{}, fmt.Errorf("world.Spawn %q: %w", req.Name, err)
	}
	info := physics.NewRigidBodyConstructionInfo(req.Mass, physics.NewDefaultMotionState(xf), shape)
	if req.Friction != 0 {
		info.Friction = req.Friction
	}
	info.Restitution = req.Restitution
	rb, err := physics.NewRigidBody(info)
	if err != nil {
		return Tracked{}, fmt.Errorf("world.Spawn %q: %w", req.Name, err)
	}
	rb.Name = req.Name
	if req.KeepActive && rb.IsDynamic() {
		rb.ForceActivationState(physics.DisableDeactivation)
	}
	if err := sp.World.Add(sld, rb); err != nil {
		return Tracked{}, err
	}
	rb.SetLinearVelocity(req.LinVel)
	rb.SetAngularVelocity(req.AngVel)
	sp.Count++
	return Tracked{Solid: sld, Body: rb}, nil
}

// boxMesh returns the scene mesh for a box of the given size,
// creating it if needed.
func (sp *Spawner) boxMesh(size math32.Vector3) *xyz.Mesh {
	sc := sp.World.Scene
	name := fmt.Sprintf("box-%gx%gx%g", size.X, size.Y, size.Z)
	if ms, err := sc.MeshByName(name); err == nil {
		return ms
	}
	return xyz.NewBox(sc, name, size.X, size.Y, size.Z)
}

// ErrNoSize is returned by Throw when the scene has no output size.
var ErrNoSize = errors.New("world: scene has no size")

// Throw spawns a box along the camera ray through the given pixel
// position, one unit in front of the camera, moving along the ray
// at ThrowSpeed.
func (sp *Spawner) Throw(px, py float32) (Tracked, error) {
	sc := sp.World.Scene
	if sc.Size.X <= 0 || sc.Size.Y <= 0 {
		return Tracked{}, ErrNoSize
	}
	ndc := math32.PixelToNDC(px, py, sc.Size)
	ray := sc.Camera.RayFromNDC(ndc)
	tr, err := sp.Spawn(SpawnRequest{
		Name:       fmt.Sprintf("thrown-%d", sp.Thrown),
		Size:       math32.Vector3Scalar(sp.ThrowSize),
		Color:      sp.ThrowColor,
		Mass:       sp.ThrowMass,
		Pos:        ray.At(1),
		LinVel:     ray.Dir.MulScalar(sp.ThrowSpeed),
		Friction:   sp.ThrowFriction,
		KeepActive: sp.KeepActive,
	})
	if err == nil {
		sp.Thrown++
	}
	return tr, err
}
