// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import "cogentcore.org/tumble/math32"

// Camera defines the properties of a perspective camera.
type Camera struct {

	// overall orientation and direction of the camera, relative to pointing at negative Z axis with up (positive Y) direction
	Pose Pose

	// target location for the camera, where it is pointing at; reset by a call to LookAt method
	Target math32.Vector3

	// up direction for camera, which way is up; reset by call to LookAt method
	UpDir math32.Vector3

	// field of view in degrees
	FOV float32

	// aspect ratio (width/height)
	Aspect float32

	// near plane z coordinate
	Near float32

	// far plane z coordinate
	Far float32

	// view matrix (inverse of the Pose.Matrix)
	ViewMatrix math32.Matrix4 `display:"-"`

	// projection matrix, defining the camera perspective transform
	ProjectionMatrix math32.Matrix4 `display:"-"`

	// inverse of the projection matrix
	InvProjectionMatrix math32.Matrix4 `display:"-"`
}

// Defaults sets the default perspective (75 degree field of view,
// near 0.1, far 1000) and pose.
func (cm *Camera) Defaults() {
	cm.FOV = 75
	cm.Aspect = 1.5
	cm.Near = 0.1
	cm.Far = 1000
	cm.DefaultPose()
}

// DefaultPose resets the camera pose to default location and orientation, looking
// at the origin from 0,0,10, with up Y axis
func (cm *Camera) DefaultPose() {
	cm.Pose.Defaults()
	cm.Pose.Pos.Set(0, 0, 10)
	cm.LookAtOrigin()
}

// UpdateMatrix updates the view and projection matrices.
func (cm *Camera) UpdateMatrix() {
	cm.Pose.UpdateMatrix()
	if err := cm.ViewMatrix.SetInverse(&cm.Pose.Matrix); err != nil {
		cm.ViewMatrix.SetIdentity()
	}
	cm.ProjectionMatrix.SetPerspective(cm.FOV, cm.Aspect, cm.Near, cm.Far)
	if err := cm.InvProjectionMatrix.SetInverse(&cm.ProjectionMatrix); err != nil {
		cm.InvProjectionMatrix.SetIdentity()
	}
}

// SetAspect sets the aspect ratio (width/height) and updates the
// projection. Non-positive values are ignored.
func (cm *Camera) SetAspect(aspect float32) {
	if aspect <= 0 || math32.IsNaN(aspect) {
		return
	}
	cm.Aspect = aspect
	cm.UpdateMatrix()
}

// LookAt points the camera at given target location, using given up direction,
// and sets the Target, UpDir fields for future camera movements.
func (cm *Camera) LookAt(target, upDir math32.Vector3) {
	cm.Target = target
	if upDir.IsNil() {
		upDir = math32.Vector3Y
	}
	cm.UpDir = upDir
	cm.Pose.LookAt(target, upDir)
	cm.UpdateMatrix()
}

// LookAtOrigin points the camera at origin with Y axis pointing Up (i.e., standard)
func (cm *Camera) LookAtOrigin() {
	cm.LookAt(math32.Vector3{}, math32.Vector3Y)
}

// RayFromNDC returns the world-space ray from the camera through the
// given normalized display coordinates, each in -1..1 with +Y up.
func (cm *Camera) RayFromNDC(ndc math32.Vector2) math32.Ray {
	cm.UpdateMatrix()
	cam := math32.Vec4(ndc.X, ndc.Y, 0.5, 1).MulMatrix4(&cm.InvProjectionMatrix).PerspDiv()
	world := cam.MulMatrix4AsPoint(&cm.Pose.Matrix)
	return *math32.NewRay(cm.Pose.Pos, world.Sub(cm.Pose.Pos).Normal())
}

// Project returns the normalized display coordinates of the given
// world point, with Z the depth in -1..1 between the near and far planes.
func (cm *Camera) Project(world math32.Vector3) math32.Vector3 {
	cm.UpdateMatrix()
	var vp math32.Matrix4
	vp.MulMatrices(&cm.ProjectionMatrix, &cm.ViewMatrix)
	return math32.Vector4FromVector3(world, 1).MulMatrix4(&vp).PerspDiv()
}
