// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package world connects a [physics.World] to an [xyz.Scene]:
// each frame it steps the physics and copies body transforms
// into the poses of the paired solids.
package world

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"slices"

	"cogentcore.org/tumble/xyz"
	"cogentcore.org/tumble/xyz/physics"
)

// DefaultMaxSubSteps is the maximum number of physics steps per frame.
const DefaultMaxSubSteps = 10

// Tracked is a solid paired with the rigid body that drives it.
type Tracked struct {
	Solid *xyz.Solid
	Body  *physics.RigidBody
}

// Animator is called on every [World.Update] after the physics
// poses have been copied, for scripted motion.
type Animator func(dt float32)

// World owns the pairing between solids in a scene and bodies in a
// physics world. The scene owns the solids and the physics world
// owns the bodies; World only refers to them.
type World struct {

	// Scene is the view.
	Scene *xyz.Scene

	// Physics is the simulation.
	Physics *physics.World

	// MaxSubSteps is the maximum number of physics steps per Update.
	MaxSubSteps int

	// FixedTimeStep is the physics step size in seconds.
	FixedTimeStep float32

	tracked   []Tracked
	bodies    map[xyz.SolidID]physics.BodyID
	xf        physics.Transform
	animators []Animator
}

// NewWorld returns a new World for the given scene and physics world.
func NewWorld(sc *xyz.Scene, pw *physics.World) *World {
	return &World{
		Scene:         sc,
		Physics:       pw,
		MaxSubSteps:   DefaultMaxSubSteps,
		FixedTimeStep: physics.DefaultFixedTimeStep,
		bodies:        make(map[xyz.SolidID]physics.BodyID),
	}
}

// Add adds the solid to the scene and the body to the physics world,
// and tracks the pair.
func (w *World) Add(sld *xyz.Solid, rb *physics.RigidBody) error {
	if sld == nil || rb == nil {
		return errors.New("world.Add: nil solid or body")
	}
	if _, err := w.Physics.AddRigidBody(rb); err != nil {
		return fmt.Errorf("world.Add %q: %w", sld.Name, err)
	}
	w.Scene.AddSolid(sld)
	w.Track(sld, rb)
	return nil
}

// Track records the association between the solid and body, which
// must already be in the scene and physics world. Only dynamic bodies
// are synced on Update; it returns whether the pair will be synced.
func (w *World) Track(sld *xyz.Solid, rb *physics.RigidBody) bool {
	w.bodies[sld.ID] = rb.ID
	if rb.IsStatic() {
		return false
	}
	w.tracked = append(w.tracked, Tracked{Solid: sld, Body: rb})
	return true
}

// Tracked returns the synced pairs, in the order they were added.
// The slice must not be modified.
func (w *World) Tracked() []Tracked {
	return w.tracked
}

// BodyFor returns the body paired with the solid of the given ID, or nil.
func (w *World) BodyFor(id xyz.SolidID) *physics.RigidBody {
	bid, ok := w.bodies[id]
	if !ok {
		return nil
	}
	return w.Physics.Body(bid)
}

// Remove removes the solid with the given ID and its paired body,
// returning false if the solid is unknown.
func (w *World) Remove(id xyz.SolidID) bool {
	bid, ok := w.bodies[id]
	if !ok {
		return false
	}
	delete(w.bodies, id)
	w.tracked = slices.DeleteFunc(w.tracked, func(tr Tracked) bool { return tr.Solid.ID == id })
	w.Physics.RemoveRigidBody(bid)
	w.Scene.RemoveSolid(id)
	return true
}

// AddAnimator adds a function called on every Update.
func (w *World) AddAnimator(an Animator) {
	w.animators = append(w.animators, an)
}

// Update advances the physics by dt seconds and copies the transform
// of each tracked body into its solid. Bodies without a motion state
// are skipped. It returns the number of physics steps taken.
func (w *World) Update(dt float32) int {
	steps := w.Physics.StepSimulation(dt, w.MaxSubSteps, w.FixedTimeStep)
	for _, tr := range w.tracked {
		ms := tr.Body.MotionState
		if ms == nil {
			continue
		}
		ms.WorldTransform(&w.xf)
		UpdatePose(&w.xf, tr.Solid)
	}
	for _, an := range w.animators {
		an(dt)
	}
	if steps > 0 {
		slog.Debug("world update", "dt", dt, "substeps", steps)
	}
	return steps
}

// Resize resizes the scene output, which only changes the camera
// aspect ratio and the image size.
func (w *World) Resize(size image.Point) bool {
	return w.Scene.Resize(size)
}

// UpdatePose updates the solid pose from the body transform.
func UpdatePose(xf *physics.Transform, sld *xyz.Solid) {
	sld.Pose.Pos = xf.Origin
	sld.Pose.Quat = xf.Rotation
}
