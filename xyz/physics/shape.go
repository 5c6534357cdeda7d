// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import (
	"fmt"

	"cogentcore.org/tumble/math32"
)

// DefaultMargin is the default collision margin of shapes.
const DefaultMargin = 0.05

// BoxShape is a box collision shape centered on the body origin.
type BoxShape struct {

	// HalfExtents are half the box size along each local axis.
	HalfExtents math32.Vector3

	// Margin expands the broadphase bounds and is the distance within
	// which resting contacts are kept.
	Margin float32
}

// NewBoxShape returns a new [BoxShape] with the given half extents,
// which must all be positive.
func NewBoxShape(halfExtents math32.Vector3) (*BoxShape, error) {
	if halfExtents.X <= 0 || halfExtents.Y <= 0 || halfExtents.Z <= 0 {
		return nil, fmt.Errorf("physics.NewBoxShape: half extents must be positive, got %v", halfExtents)
	}
	return &BoxShape{HalfExtents: halfExtents, Margin: DefaultMargin}, nil
}

// NewBoxShapeFromBox returns a new [BoxShape] sized to enclose the
// given bounding box, which is assumed to be centered on the body
// origin; an off-center box is made symmetric about the origin.
func NewBoxShapeFromBox(bb math32.Box3) (*BoxShape, error) {
	if bb.IsEmpty() {
		return nil, fmt.Errorf("physics.NewBoxShapeFromBox: empty bounding box")
	}
	half := bb.Min.Abs().Max(bb.Max.Abs())
	return NewBoxShape(half)
}

// LocalInertia returns the diagonal of the inertia tensor of a solid
// box with the given mass.
func (bs *BoxShape) LocalInertia(mass float32) math32.Vector3 {
	lx := 2 * bs.HalfExtents.X
	ly := 2 * bs.HalfExtents.Y
	lz := 2 * bs.HalfExtents.Z
	return math32.Vec3(
		mass/12*(ly*ly+lz*lz),
		mass/12*(lx*lx+lz*lz),
		mass/12*(lx*lx+ly*ly))
}

// LocalBox returns the local bounding box, including the margin.
func (bs *BoxShape) LocalBox() math32.Box3 {
	return math32.B3FromHalfExtents(bs.HalfExtents.AddScalar(bs.Margin))
}

// corners returns the eight local corners of the box.
func (bs *BoxShape) corners() [8]math32.Vector3 {
	return math32.B3FromHalfExtents(bs.HalfExtents).Corners()
}
