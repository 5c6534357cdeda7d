// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import (
	"errors"
	"fmt"

	"cogentcore.org/tumble/math32"
)

// BodyID identifies a [RigidBody] within its [World].
// The zero value is never assigned to a body.
type BodyID int

// ActivationStates are the simulation states of a body.
type ActivationStates int32

const (
	// ActiveTag is a body that is simulated and may fall asleep.
	ActiveTag ActivationStates = iota + 1

	// IslandSleeping is a body at rest that is not simulated
	// until something touches it.
	IslandSleeping

	// WantsDeactivation is a body that has been slow long enough
	// to fall asleep on the next step.
	WantsDeactivation

	// DisableDeactivation is a body that is always simulated.
	DisableDeactivation

	// DisableSimulation is a body that is never simulated.
	DisableSimulation
)

func (as ActivationStates) String() string {
	switch as {
	case ActiveTag:
		return "ActiveTag"
	case IslandSleeping:
		return "IslandSleeping"
	case WantsDeactivation:
		return "WantsDeactivation"
	case DisableDeactivation:
		return "DisableDeactivation"
	case DisableSimulation:
		return "DisableSimulation"
	}
	return fmt.Sprintf("ActivationStates(%d)", int32(as))
}

// ErrNegativeMass is returned when constructing a body with negative mass.
var ErrNegativeMass = errors.New("physics: negative mass")

// ErrInvalidMass is returned when constructing a body with a NaN or
// infinite mass.
var ErrInvalidMass = errors.New("physics: mass is not finite")

// CheckMass returns an error unless mass is finite and not negative.
func CheckMass(mass float32) error {
	switch {
	case !math32.IsFinite(mass):
		return fmt.Errorf("%w: %g", ErrInvalidMass, mass)
	case mass < 0:
		return fmt.Errorf("%w: %g", ErrNegativeMass, mass)
	}
	return nil
}

// RigidBodyConstructionInfo holds the parameters used to create a [RigidBody].
type RigidBodyConstructionInfo struct {

	// Mass of the body; zero makes a static body.
	Mass float32

	// MotionState receives the body transform after each step.
	// If set, the initial transform is read from it.
	MotionState MotionState

	// Shape is the collision shape.
	Shape *BoxShape

	// LocalInertia is the diagonal inertia tensor; computed from the
	// shape when zero.
	LocalInertia math32.Vector3

	// StartTransform is the initial transform used when there is no MotionState.
	StartTransform Transform

	// Friction coefficient.
	Friction float32

	// Restitution (bounciness).
	Restitution float32

	// LinearDamping is the fraction of linear velocity lost per second.
	LinearDamping float32

	// AngularDamping is the fraction of angular velocity lost per second.
	AngularDamping float32
}

// NewRigidBodyConstructionInfo returns construction info with
// default friction and an identity start transform.
func NewRigidBodyConstructionInfo(mass float32, ms MotionState, shape *BoxShape) RigidBodyConstructionInfo {
	return RigidBodyConstructionInfo{
		Mass:           mass,
		MotionState:    ms,
		Shape:          shape,
		StartTransform: IdentityTransform(),
		Friction:       0.5,
	}
}

// RigidBody is a simulated box-shaped body.
type RigidBody struct {

	// ID is assigned when the body is added to a [World].
	ID BodyID

	// Name is an optional label used in logging.
	Name string

	// State is the position, orientation and velocity.
	State State

	// Mass is zero for static bodies.
	Mass float32

	// Shape is the collision shape.
	Shape *BoxShape

	// Friction coefficient.
	Friction float32

	// Restitution (bounciness).
	Restitution float32

	// LinearDamping is the fraction of linear velocity lost per second.
	LinearDamping float32

	// AngularDamping is the fraction of angular velocity lost per second.
	AngularDamping float32

	// MotionState, if set, receives the transform after each step.
	MotionState MotionState

	invMass         float32
	invInertiaLocal math32.Vector3
	activation      ActivationStates
	deactivation    float32
}

// NewRigidBody returns a new body from the given construction info.
func NewRigidBody(info RigidBodyConstructionInfo) (*RigidBody, error) {
	if err := CheckMass(info.Mass); err != nil {
		return nil, fmt.Errorf("physics.NewRigidBody: %w", err)
	}
	if info.Shape == nil {
		return nil, errors.New("physics.NewRigidBody: nil shape")
	}
	rb := &RigidBody{
		Mass:           info.Mass,
		Shape:          info.Shape,
		Friction:       info.Friction,
		Restitution:    info.Restitution,
		LinearDamping:  math32.Clamp(info.LinearDamping, 0, 1),
		AngularDamping: math32.Clamp(info.AngularDamping, 0, 1),
		MotionState:    info.MotionState,
		activation:     ActiveTag,
	}
	xf := info.StartTransform
	if info.MotionState != nil {
		info.MotionState.WorldTransform(&xf)
	}
	rb.State.Pos = xf.Origin
	rb.State.Quat = xf.Rotation
	rb.State.Defaults()
	rb.State.Quat.Normalize()
	if info.Mass > 0 {
		rb.invMass = 1 / info.Mass
		inertia := info.LocalInertia
		if inertia == (math32.Vector3{}) {
			inertia = info.Shape.LocalInertia(info.Mass)
		}
		rb.invInertiaLocal = math32.Vec3(inv(inertia.X), inv(inertia.Y), inv(inertia.Z))
	}
	return rb, nil
}

func inv(x float32) float32 {
	if x == 0 {
		return 0
	}
	return 1 / x
}

// IsStatic returns true if the body has zero mass.
func (rb *RigidBody) IsStatic() bool {
	return rb.invMass == 0
}

// IsDynamic returns true if the body has non-zero mass.
func (rb *RigidBody) IsDynamic() bool {
	return rb.invMass != 0
}

// InvMass returns the inverse mass, zero for static bodies.
func (rb *RigidBody) InvMass() float32 {
	return rb.invMass
}

// WorldTransform returns the current transform of the body.
func (rb *RigidBody) WorldTransform() Transform {
	return rb.State.Transform()
}

// SetWorldTransform moves the body to the given transform and
// updates the motion state.
func (rb *RigidBody) SetWorldTransform(xf Transform) {
	rb.State.Pos = xf.Origin
	rb.State.Quat = xf.Rotation
	rb.State.Quat.Normalize()
	if rb.MotionState != nil {
		rb.MotionState.SetWorldTransform(rb.State.Transform())
	}
}

// LinearVelocity returns the linear velocity.
func (rb *RigidBody) LinearVelocity() math32.Vector3 {
	return rb.State.LinVel
}

// SetLinearVelocity sets the linear velocity, waking the body.
// It has no effect on static bodies.
func (rb *RigidBody) SetLinearVelocity(v math32.Vector3) {
	if rb.IsStatic() {
		return
	}
	rb.State.LinVel = v
	rb.Activate(false)
}

// AngularVelocity returns the angular velocity in radians per second.
func (rb *RigidBody) AngularVelocity() math32.Vector3 {
	return rb.State.AngVel
}

// SetAngularVelocity sets the angular velocity, waking the body.
// It has no effect on static bodies.
func (rb *RigidBody) SetAngularVelocity(v math32.Vector3) {
	if rb.IsStatic() {
		return
	}
	rb.State.AngVel = v
	rb.Activate(false)
}

// ActivationState returns the current activation state.
func (rb *RigidBody) ActivationState() ActivationStates {
	return rb.activation
}

// SetActivationState sets the activation state, unless the body has
// deactivation or simulation disabled.
func (rb *RigidBody) SetActivationState(as ActivationStates) {
	if rb.activation == DisableDeactivation || rb.activation == DisableSimulation {
		return
	}
	rb.activation = as
}

// ForceActivationState sets the activation state unconditionally.
func (rb *RigidBody) ForceActivationState(as ActivationStates) {
	rb.activation = as
}

// Activate wakes the body. Static bodies are only woken when force is set.
func (rb *RigidBody) Activate(force bool) {
	if force || rb.IsDynamic() {
		rb.SetActivationState(ActiveTag)
		rb.deactivation = 0
	}
}

// IsActive returns true if the body is currently simulated.
func (rb *RigidBody) IsActive() bool {
	return rb.activation != IslandSleeping && rb.activation != DisableSimulation
}

// WorldBox returns the world-space bounding box, including the shape margin.
func (rb *RigidBody) WorldBox() math32.Box3 {
	return rb.Shape.LocalBox().MulQuat(rb.State.Quat).Translate(rb.State.Pos)
}

// invInertiaMul multiplies v by the world-space inverse inertia tensor.
func (rb *RigidBody) invInertiaMul(v math32.Vector3) math32.Vector3 {
	if rb.invMass == 0 || !rb.IsActive() {
		return math32.Vector3{}
	}
	local := v.MulQuat(rb.State.Quat.Conjugate()).Mul(rb.invInertiaLocal)
	return local.MulQuat(rb.State.Quat)
}

// solverInvMass is the inverse mass seen by the contact solver:
// sleeping bodies are treated as static.
func (rb *RigidBody) solverInvMass() float32 {
	if !rb.IsActive() {
		return 0
	}
	return rb.invMass
}

// velocityAt returns the velocity of the body point at offset r
// from the center of mass.
func (rb *RigidBody) velocityAt(r math32.Vector3) math32.Vector3 {
	return rb.State.LinVel.Add(rb.State.AngVel.Cross(r))
}

// applyImpulse applies impulse j at offset r from the center of mass.
func (rb *RigidBody) applyImpulse(j, r math32.Vector3) {
	if rb.invMass == 0 || !rb.IsActive() {
		return
	}
	rb.State.LinVel.SetAdd(j.MulScalar(rb.invMass))
	rb.State.AngVel.SetAdd(rb.invInertiaMul(r.Cross(j)))
}

// syncMotionState writes the current transform into the motion state.
func (rb *RigidBody) syncMotionState() {
	if rb.MotionState != nil {
		rb.MotionState.SetWorldTransform(rb.State.Transform())
	}
}
