// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import "cogentcore.org/tumble/math32"

// OrbitControls moves a camera around a target point: pointer drags
// rotate it and wheel steps move it closer or further away. Rotation
// eases in over several updates when damping is on. The camera always
// stays upright and keeps looking at the target.
type OrbitControls struct {

	// Camera is the camera that is moved.
	Camera *Camera

	// Target is the point the camera orbits and looks at.
	Target math32.Vector3

	// DampingFactor is the fraction of pending rotation applied per
	// update; 0 applies all of it at once.
	DampingFactor float32

	// RotateSpeed scales rotation; a drag across the full image
	// height at speed 1 is one full turn.
	RotateSpeed float32

	// ZoomScale is the distance factor per wheel step.
	ZoomScale float32

	// MinDistance and MaxDistance bound the distance to the target.
	MinDistance, MaxDistance float32

	// MinPolar and MaxPolar bound the angle from the up axis, in radians.
	MinPolar, MaxPolar float32

	azimuth float32
	polar   float32
	scale   float32
}

// NewOrbitControls returns controls for the camera orbiting the
// given target, and points the camera at it.
func NewOrbitControls(cam *Camera, target math32.Vector3) *OrbitControls {
	oc := &OrbitControls{
		Camera:        cam,
		Target:        target,
		DampingFactor: 0.05,
		RotateSpeed:   1,
		ZoomScale:     0.95,
		MinDistance:   0.5,
		MaxDistance:   500,
		MinPolar:      0.01,
		MaxPolar:      math32.Pi - 0.01,
		scale:         1,
	}
	cam.LookAt(target, math32.Vector3Y)
	return oc
}

// Drag adds the rotation for a pointer drag of dx, dy pixels on an
// image of the given height. Dragging right turns the view right and
// dragging down raises the camera. Non-finite input is ignored.
func (oc *OrbitControls) Drag(dx, dy float32, height int) {
	if height <= 0 || !math32.IsFinite(dx) || !math32.IsFinite(dy) {
		return
	}
	f := 2 * math32.Pi * oc.RotateSpeed / float32(height)
	oc.azimuth -= dx * f
	oc.polar -= dy * f
}

// Wheel moves the camera by the given number of wheel steps:
// negative steps move closer, positive steps further away.
func (oc *OrbitControls) Wheel(steps float32) {
	if !math32.IsFinite(steps) || steps == 0 {
		return
	}
	oc.scale *= math32.Pow(oc.ZoomScale, -steps)
}

// Pending returns whether any rotation or zoom has yet to be applied.
func (oc *OrbitControls) Pending() bool {
	return oc.azimuth != 0 || oc.polar != 0 || oc.scale != 1
}

// Update applies pending rotation and zoom to the camera. It returns
// whether the camera moved.
func (oc *OrbitControls) Update() bool {
	if !oc.Pending() {
		return false
	}
	cam := oc.Camera
	off := cam.Pose.Pos.Sub(oc.Target)
	r := off.Length()
	if r == 0 {
		off.Set(0, 0, 1)
		r = 1
	}
	azimuth := math32.Atan2(off.X, off.Z)
	polar := math32.Acos(math32.Clamp(off.Y/r, -1, 1))

	f := oc.DampingFactor
	if f <= 0 || f > 1 {
		f = 1
	}
	azimuth += oc.azimuth * f
	polar = math32.Clamp(polar+oc.polar*f, oc.MinPolar, oc.MaxPolar)
	r = math32.Clamp(r*oc.scale, oc.MinDistance, oc.MaxDistance)

	sp := math32.Sin(polar)
	cam.Pose.Pos = math32.Vec3(r*sp*math32.Sin(azimuth), r*math32.Cos(polar), r*sp*math32.Cos(azimuth)).Add(oc.Target)
	cam.LookAt(oc.Target, math32.Vector3Y)

	oc.azimuth *= 1 - f
	oc.polar *= 1 - f
	if math32.Abs(oc.azimuth) < 1e-5 {
		oc.azimuth = 0
	}
	if math32.Abs(oc.polar) < 1e-5 {
		oc.polar = 0
	}
	oc.scale = 1
	return true
}
