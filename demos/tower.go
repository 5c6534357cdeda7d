// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package demos

import "cogentcore.org/tumble/math32"

// NewTower builds the tower demo: 20 small cubes stacked one unit
// apart above the ground, which fall and scatter.
func NewTower(opts Options) (*Instance, error) {
	in := newInstance("tower", opts)
	in.Controls.Target = math32.Vec3(0, 0.5, 0)
	in.World.Scene.Camera.LookAt(in.Controls.Target, math32.Vector3Y)
	if err := addGround(in.Spawner, 0); err != nil {
		return nil, err
	}
	err := addCubes(in.Spawner, 20, 0.5, 10, 0, func(i int) math32.Vector3 {
		return math32.Vec3(0, float32(i), 0)
	})
	if err != nil {
		return nil, err
	}
	return in, nil
}
