// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package demos

import (
	"fmt"
	"image/color"

	"cogentcore.org/tumble/colors"
	"cogentcore.org/tumble/math32"
	"cogentcore.org/tumble/xyz"
)

// SpinSpeed is the rotation speed of the spin demo cubes in degrees per second.
const SpinSpeed = 90

// spinner is a cube rotating about a fixed axis.
type spinner struct {
	solid *xyz.Solid
	axis  math32.Vector3
}

// NewSpin builds the spin demo: three cubes rotating in place, with
// no physics.
func NewSpin(opts Options) (*Instance, error) {
	in := newInstance("spin", opts)
	sc := in.World.Scene
	xyz.NewBox(sc, "cube", 1, 1, 1)
	specs := []struct {
		x    float32
		clr  color.RGBA
		axis math32.Vector3
	}{
		{-2, colors.Red, math32.Vector3X},
		{0, colors.Green, math32.Vector3Y},
		{2, colors.Blue, math32.Vec3(1, 1, 0)},
	}
	spinners := make([]spinner, len(specs))
	for i, s := range specs {
		sld, err := sc.NewSolidIn(fmt.Sprintf("spinner-%d", i), "cube")
		if err != nil {
			return nil, err
		}
		sld.SetPos(s.x, 0, 0).SetColor(s.clr)
		spinners[i] = spinner{solid: sld, axis: s.axis}
	}
	in.World.AddAnimator(func(dt float32) {
		for _, sp := range spinners {
			sp.solid.Pose.RotateOnAxis(sp.axis.X, sp.axis.Y, sp.axis.Z, SpinSpeed*dt)
		}
	})
	return in, nil
}
