// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import (
	"cogentcore.org/tumble/math32"
)

// Contact solver constants.
const (
	// MaxFriction is the upper bound on combined friction.
	MaxFriction = 10

	// RestitutionThreshold is the approach speed below which
	// contacts do not bounce.
	RestitutionThreshold = 1

	// PenetrationSlop is the penetration depth left uncorrected.
	PenetrationSlop = 0.005

	// CorrectionPercent is the fraction of penetration removed per step.
	CorrectionPercent = 0.4
)

// contact is a single point of contact between two bodies.
// The normal points from b toward a.
type contact struct {
	a, b     *RigidBody
	point    math32.Vector3
	normal   math32.Vector3
	pen      float32
	deepest  bool
	ra, rb   math32.Vector3
	t1, t2   math32.Vector3
	massN    float32
	massT1   float32
	massT2   float32
	friction float32
	bias     float32
	jn       float32
	jt1      float32
	jt2      float32
}

// boxFrame is a box shape placed in the world.
type boxFrame struct {
	xf   Transform
	half math32.Vector3
	axes [3]math32.Vector3
}

func newBoxFrame(rb *RigidBody) boxFrame {
	bf := boxFrame{xf: rb.WorldTransform(), half: rb.Shape.HalfExtents}
	bf.axes[0] = math32.Vector3X.MulQuat(bf.xf.Rotation)
	bf.axes[1] = math32.Vector3Y.MulQuat(bf.xf.Rotation)
	bf.axes[2] = math32.Vector3Z.MulQuat(bf.xf.Rotation)
	return bf
}

// radius returns the half length of the box projected onto axis.
func (bf *boxFrame) radius(axis math32.Vector3) float32 {
	return bf.half.X*math32.Abs(axis.Dot(bf.axes[0])) +
		bf.half.Y*math32.Abs(axis.Dot(bf.axes[1])) +
		bf.half.Z*math32.Abs(axis.Dot(bf.axes[2]))
}

// contains returns true if the world point is inside the box
// grown by margin.
func (bf *boxFrame) contains(pt math32.Vector3, margin float32) bool {
	lp := bf.xf.InvApply(pt)
	return math32.Abs(lp.X) <= bf.half.X+margin &&
		math32.Abs(lp.Y) <= bf.half.Y+margin &&
		math32.Abs(lp.Z) <= bf.half.Z+margin
}

func (bf *boxFrame) corners() [8]math32.Vector3 {
	cs := math32.B3FromHalfExtents(bf.half).Corners()
	for i := range cs {
		cs[i] = bf.xf.Apply(cs[i])
	}
	return cs
}

// detectContacts appends the contacts between all pairs of bodies
// that can interact.
func (w *World) detectContacts(dst []contact) []contact {
	nb := len(w.bodies)
	for i := 0; i < nb; i++ {
		a := w.bodies[i]
		for j := i + 1; j < nb; j++ {
			b := w.bodies[j]
			if a.activation == DisableSimulation || b.activation == DisableSimulation {
				continue
			}
			if !a.WorldBox().IntersectsBox(b.WorldBox()) {
				continue
			}
			wakeOnTouch(a, b)
			wakeOnTouch(b, a)
			if !simulated(a) && !simulated(b) {
				continue
			}
			dst = collideBoxes(dst, a, b)
		}
	}
	return dst
}

func simulated(rb *RigidBody) bool {
	return rb.IsDynamic() && rb.IsActive()
}

// wakeOnTouch wakes the sleeping body sleeper when it is touched
// by a moving body.
func wakeOnTouch(mover, sleeper *RigidBody) {
	if !simulated(mover) || sleeper.IsStatic() || sleeper.IsActive() {
		return
	}
	if mover.State.LinVel.LengthSquared() > LinearSleepThreshold*LinearSleepThreshold ||
		mover.State.AngVel.LengthSquared() > AngularSleepThreshold*AngularSleepThreshold {
		sleeper.Activate(false)
	}
}

// collideBoxes appends the contacts between boxes a and b.
// The contact normal is the face axis of least overlap, and the
// contact points are the corners of each box that lie within
// the other.
func collideBoxes(dst []contact, a, b *RigidBody) []contact {
	fa := newBoxFrame(a)
	fb := newBoxFrame(b)
	margin := max(a.Shape.Margin, b.Shape.Margin)
	delta := fa.xf.Origin.Sub(fb.xf.Origin)

	best := float32(math32.Infinity)
	var normal math32.Vector3
	for _, axes := range [2]*[3]math32.Vector3{&fa.axes, &fb.axes} {
		for _, axis := range axes {
			dist := axis.Dot(delta)
			overlap := fa.radius(axis) + fb.radius(axis) - math32.Abs(dist)
			if overlap < -margin {
				return dst
			}
			if overlap < best {
				best = overlap
				normal = axis
				if dist < 0 {
					normal = axis.Negate()
				}
			}
		}
	}

	start := len(dst)
	// support planes: the face of b toward a and of a toward b.
	planeB := normal.Dot(fb.xf.Origin) + fb.radius(normal)
	planeA := normal.Dot(fa.xf.Origin) - fa.radius(normal)
	for _, pt := range fa.corners() {
		pen := planeB - normal.Dot(pt)
		if pen > -margin && fb.contains(pt, margin) {
			dst = append(dst, contact{a: a, b: b, point: pt, normal: normal, pen: pen})
		}
	}
	for _, pt := range fb.corners() {
		pen := normal.Dot(pt) - planeA
		if pen > -margin && fa.contains(pt, margin) {
			dst = append(dst, contact{a: a, b: b, point: pt, normal: normal, pen: pen})
		}
	}
	deepest := -1
	for i := start; i < len(dst); i++ {
		if deepest < 0 || dst[i].pen > dst[deepest].pen {
			deepest = i
		}
	}
	if deepest >= 0 {
		dst[deepest].deepest = true
	}
	return dst
}

// effectiveMass returns the inverse of the impulse needed for a unit
// change in relative velocity along dir at the contact.
func (c *contact) effectiveMass(dir math32.Vector3) float32 {
	k := c.a.solverInvMass() + c.b.solverInvMass()
	k += dir.Dot(c.a.invInertiaMul(c.ra.Cross(dir)).Cross(c.ra))
	k += dir.Dot(c.b.invInertiaMul(c.rb.Cross(dir)).Cross(c.rb))
	if k <= 0 {
		return 0
	}
	return 1 / k
}

func (c *contact) relativeVelocity() math32.Vector3 {
	return c.a.velocityAt(c.ra).Sub(c.b.velocityAt(c.rb))
}

func (c *contact) apply(j math32.Vector3) {
	c.a.applyImpulse(j, c.ra)
	c.b.applyImpulse(j.Negate(), c.rb)
}

// perpendicular returns a unit vector perpendicular to unit vector n.
func perpendicular(n math32.Vector3) math32.Vector3 {
	if math32.Abs(n.X) > 0.57 {
		return math32.Vec3(n.Y, -n.X, 0).Normal()
	}
	return math32.Vec3(0, n.Z, -n.Y).Normal()
}

// solveContacts applies sequential impulses to the contacts for
// the configured number of iterations.
func (w *World) solveContacts(h float32) {
	for i := range w.contacts {
		c := &w.contacts[i]
		c.ra = c.point.Sub(c.a.State.Pos)
		c.rb = c.point.Sub(c.b.State.Pos)
		vrel := c.relativeVelocity()
		vn := vrel.Dot(c.normal)
		vt := vrel.Sub(c.normal.MulScalar(vn))
		if vt.LengthSquared() > 1e-12 {
			c.t1 = vt.Normal()
		} else {
			c.t1 = perpendicular(c.normal)
		}
		c.t2 = c.normal.Cross(c.t1)
		c.massN = c.effectiveMass(c.normal)
		c.massT1 = c.effectiveMass(c.t1)
		c.massT2 = c.effectiveMass(c.t2)
		c.friction = math32.Clamp(c.a.Friction*c.b.Friction, 0, MaxFriction)
		c.bias = 0
		switch {
		case c.pen < 0:
			c.bias = c.pen / h
		case vn < -RestitutionThreshold:
			c.bias = -c.a.Restitution * c.b.Restitution * vn
		}
	}
	for range w.SolverIterations {
		for i := range w.contacts {
			c := &w.contacts[i]

			vn := c.relativeVelocity().Dot(c.normal)
			dj := (c.bias - vn) * c.massN
			old := c.jn
			c.jn = max(old+dj, 0)
			c.apply(c.normal.MulScalar(c.jn - old))

			limit := c.friction * c.jn
			vt := c.relativeVelocity().Dot(c.t1)
			old = c.jt1
			c.jt1 = math32.Clamp(old-vt*c.massT1, -limit, limit)
			c.apply(c.t1.MulScalar(c.jt1 - old))

			vt = c.relativeVelocity().Dot(c.t2)
			old = c.jt2
			c.jt2 = math32.Clamp(old-vt*c.massT2, -limit, limit)
			c.apply(c.t2.MulScalar(c.jt2 - old))
		}
	}
}

// correctPositions pushes apart penetrating pairs, using the
// deepest contact of each pair.
func (w *World) correctPositions() {
	for i := range w.contacts {
		c := &w.contacts[i]
		if !c.deepest || c.pen <= PenetrationSlop {
			continue
		}
		ima := c.a.solverInvMass()
		imb := c.b.solverInvMass()
		if ima+imb == 0 {
			continue
		}
		corr := CorrectionPercent * (c.pen - PenetrationSlop) / (ima + imb)
		c.a.State.Pos.SetAdd(c.normal.MulScalar(corr * ima))
		c.b.State.Pos.SetSub(c.normal.MulScalar(corr * imb))
	}
}
