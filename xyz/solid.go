// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image/color"

	"cogentcore.org/tumble/math32"
)

// SolidID identifies a [Solid] within its [Scene].
// The zero value is never assigned to a solid.
type SolidID int

// Solid represents an individual 3D solid element.
// It has its own unique spatial transforms and material properties,
// and points to a mesh structure defining the shape of the solid.
type Solid struct {

	// ID is assigned when the solid is added to a [Scene].
	ID SolidID

	// Name is an optional label.
	Name string

	// Pose is the position, rotation and scale of the solid.
	Pose Pose

	// Material contains the material properties of the surface.
	Material Material

	// Mesh is the shape of the solid, shared with other solids.
	Mesh *Mesh
}

// NewSolid returns a new solid with default pose and material, using
// the given mesh.
func NewSolid(name string, ms *Mesh) *Solid {
	sld := &Solid{Name: name, Mesh: ms}
	sld.Defaults()
	return sld
}

// Defaults sets default initial settings for solid params.
func (sld *Solid) Defaults() {
	sld.Pose.Defaults()
	sld.Material.Defaults()
}

// SetColor sets the [Material.Color].
func (sld *Solid) SetColor(v color.RGBA) *Solid {
	sld.Material.Color = v
	return sld
}

// SetPos sets the position of the [Pose].
func (sld *Solid) SetPos(x, y, z float32) *Solid {
	sld.Pose.Pos.Set(x, y, z)
	return sld
}

// SetScale sets the scale of the [Pose].
func (sld *Solid) SetScale(x, y, z float32) *Solid {
	sld.Pose.Scale.Set(x, y, z)
	return sld
}

// LocalBox returns the mesh bounding box scaled by the pose scale,
// without rotation or translation.
func (sld *Solid) LocalBox() math32.Box3 {
	if sld.Mesh == nil {
		return math32.B3Empty()
	}
	sld.Pose.Defaults()
	a := sld.Mesh.BBox.Min.Mul(sld.Pose.Scale)
	b := sld.Mesh.BBox.Max.Mul(sld.Pose.Scale)
	return math32.Box3{Min: a.Min(b), Max: a.Max(b)}
}

// WorldBox returns the world-space bounding box.
func (sld *Solid) WorldBox() math32.Box3 {
	if sld.Mesh == nil {
		return math32.B3Empty()
	}
	sld.Pose.UpdateMatrix()
	return sld.Mesh.BBox.MulMatrix4(&sld.Pose.Matrix)
}
