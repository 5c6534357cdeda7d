// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image/color"

	"cogentcore.org/tumble/colors"
)

// Material describes the material properties of a surface.
// Color is used for both ambient and diffuse lighting, and its alpha
// component is used for opacity. The Emissive color is only for
// glowing objects.
type Material struct {

	// Color is the main color of the surface.
	Color color.RGBA

	// Emissive is the color that surface emits independent of any lighting -- i.e., glow -- can be used for marking lights with an object
	Emissive color.RGBA

	// Bright is an overall multiplier on final computed color value.
	Bright float32

	// CullBack indicates to cull the back-facing surfaces.
	CullBack bool
}

// Defaults sets default surface parameters
func (mt *Material) Defaults() {
	mt.Color = colors.Grey
	mt.Emissive = color.RGBA{}
	mt.Bright = 1
	mt.CullBack = true
}

// NewMaterial returns a default material with the given color.
func NewMaterial(clr color.RGBA) Material {
	mt := Material{}
	mt.Defaults()
	mt.Color = clr
	return mt
}
