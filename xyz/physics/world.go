// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import (
	"fmt"
	"log/slog"
	"math"
	"slices"

	"cogentcore.org/tumble/math32"
)

// DefaultFixedTimeStep is the internal step used when none is given.
const DefaultFixedTimeStep = float32(1.0 / 60.0)

// Sleep thresholds: a body slower than both for DeactivationTime
// seconds falls asleep.
const (
	LinearSleepThreshold  = 0.08
	AngularSleepThreshold = 0.1
	DeactivationTime      = 2.0
)

// World is a dynamics world that owns a set of rigid bodies and
// advances them through time.
type World struct {

	// Gravity acceleration applied to dynamic bodies.
	Gravity math32.Vector3

	// SolverIterations is the number of contact solver passes per step.
	SolverIterations int

	bodies    []*RigidBody
	byID      map[BodyID]*RigidBody
	nextID    BodyID
	localTime float64
	simTime   float64
	contacts  []contact
}

// NewWorld returns a new world with earth gravity.
func NewWorld() *World {
	return &World{
		Gravity:          math32.Vec3(0, -9.8, 0),
		SolverIterations: 10,
		byID:             make(map[BodyID]*RigidBody),
	}
}

// AddRigidBody adds the body to the world and assigns its ID.
func (w *World) AddRigidBody(rb *RigidBody) (BodyID, error) {
	if rb == nil {
		return 0, fmt.Errorf("physics.World.AddRigidBody: nil body")
	}
	if rb.ID != 0 {
		if _, has := w.byID[rb.ID]; has {
			return 0, fmt.Errorf("physics.World.AddRigidBody: body %d already added", rb.ID)
		}
	}
	w.nextID++
	rb.ID = w.nextID
	w.bodies = append(w.bodies, rb)
	w.byID[rb.ID] = rb
	if rb.MotionState != nil {
		rb.syncMotionState()
	}
	return rb.ID, nil
}

// RemoveRigidBody removes the body with the given ID, returning
// false if there is none.
func (w *World) RemoveRigidBody(id BodyID) bool {
	rb, has := w.byID[id]
	if !has {
		return false
	}
	delete(w.byID, id)
	w.bodies = slices.DeleteFunc(w.bodies, func(b *RigidBody) bool { return b == rb })
	rb.ID = 0
	return true
}

// Body returns the body with the given ID, or nil.
func (w *World) Body(id BodyID) *RigidBody {
	return w.byID[id]
}

// Bodies returns the bodies in the order they were added.
// The slice must not be modified.
func (w *World) Bodies() []*RigidBody {
	return w.bodies
}

// NumBodies returns the number of bodies in the world.
func (w *World) NumBodies() int {
	return len(w.bodies)
}

// Time returns the total simulated time in seconds.
func (w *World) Time() float64 {
	return w.simTime
}

// StepSimulation advances the world by dt seconds in steps of
// fixedTimeStep, taking at most maxSubSteps steps. Time left over
// is carried to the next call, unless more than maxSubSteps steps
// were due, in which case all of the extra time is dropped.
// If maxSubSteps <= 0 a single step of dt is taken.
// Motion states are updated after any step. It returns the number
// of steps taken. Negative and non-finite dt are ignored.
func (w *World) StepSimulation(dt float32, maxSubSteps int, fixedTimeStep float32) int {
	if dt < 0 || !math32.IsFinite(dt) {
		return 0
	}
	steps := 0
	if maxSubSteps > 0 {
		if fixedTimeStep <= 0 {
			fixedTimeStep = DefaultFixedTimeStep
		}
		fixed := float64(fixedTimeStep)
		w.localTime += float64(dt)
		n := math.Floor(w.localTime / fixed)
		switch {
		case n > float64(maxSubSteps):
			slog.Debug("physics: dropping sub-steps", "wanted", n, "max", maxSubSteps)
			steps = maxSubSteps
			w.localTime = 0
		case n >= 1:
			steps = int(n)
			w.localTime -= n * fixed
		}
	} else {
		fixedTimeStep = dt
		w.localTime = 0
		if dt > 0 {
			steps = 1
		}
	}
	for range steps {
		w.singleStep(fixedTimeStep)
	}
	if steps > 0 {
		w.syncMotionStates()
	}
	return steps
}

// singleStep advances all active bodies by h seconds.
func (w *World) singleStep(h float32) {
	w.applyGravity(h)
	w.contacts = w.detectContacts(w.contacts[:0])
	w.solveContacts(h)
	w.integrate(h)
	w.correctPositions()
	w.updateDeactivation(h)
	w.simTime += float64(h)
}

func (w *World) applyGravity(h float32) {
	for _, rb := range w.bodies {
		if rb.IsStatic() || !rb.IsActive() {
			continue
		}
		rb.State.LinVel.SetAdd(w.Gravity.MulScalar(h))
		if rb.LinearDamping > 0 {
			rb.State.LinVel.SetMulScalar(math32.Pow(1-rb.LinearDamping, h))
		}
		if rb.AngularDamping > 0 {
			rb.State.AngVel.SetMulScalar(math32.Pow(1-rb.AngularDamping, h))
		}
	}
}

func (w *World) integrate(h float32) {
	for _, rb := range w.bodies {
		if rb.IsStatic() || !rb.IsActive() {
			continue
		}
		rb.State.StepByLinVel(h)
		rb.State.StepByAngVel(h)
	}
}

func (w *World) updateDeactivation(h float32) {
	for _, rb := range w.bodies {
		if rb.IsStatic() || !rb.IsActive() || rb.activation == DisableDeactivation {
			continue
		}
		if rb.State.LinVel.LengthSquared() < LinearSleepThreshold*LinearSleepThreshold &&
			rb.State.AngVel.LengthSquared() < AngularSleepThreshold*AngularSleepThreshold {
			rb.deactivation += h
		} else {
			rb.deactivation = 0
			rb.SetActivationState(ActiveTag)
			continue
		}
		switch {
		case rb.activation == WantsDeactivation:
			rb.SetActivationState(IslandSleeping)
			rb.State.LinVel.SetZero()
			rb.State.AngVel.SetZero()
		case rb.deactivation > DeactivationTime:
			rb.SetActivationState(WantsDeactivation)
		}
	}
}

func (w *World) syncMotionStates() {
	for _, rb := range w.bodies {
		if rb.IsDynamic() {
			rb.syncMotionState()
		}
	}
}
